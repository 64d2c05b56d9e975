package utils

import (
	"fmt"
	"log"
	"os"
	"time"
)

// AppLogger представляет логгер для сервиса данных о пассажирах
type AppLogger struct {
	infoLogger  *log.Logger
	warnLogger  *log.Logger
	errorLogger *log.Logger
	debugLogger *log.Logger
	isVerbose   bool
}

// NewAppLogger создает новый экземпляр логгера приложения
func NewAppLogger(verbose bool) *AppLogger {
	// Создаем или открываем лог-файл для записи
	currentTime := time.Now().Format("2006-01-02")
	logFileName := fmt.Sprintf("titanic_api_%s.log", currentTime)

	file, err := os.OpenFile(logFileName, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0666)
	if err != nil {
		log.Fatalf("Не удалось открыть или создать файл лога: %v", err)
	}

	// Инициализируем логгеры для разных уровней
	infoLogger := log.New(file, "INFO: ", log.Ldate|log.Ltime|log.Lshortfile)
	warnLogger := log.New(file, "WARN: ", log.Ldate|log.Ltime|log.Lshortfile)
	errorLogger := log.New(file, "ERROR: ", log.Ldate|log.Ltime|log.Lshortfile)
	debugLogger := log.New(file, "DEBUG: ", log.Ldate|log.Ltime|log.Lshortfile)

	return &AppLogger{
		infoLogger:  infoLogger,
		warnLogger:  warnLogger,
		errorLogger: errorLogger,
		debugLogger: debugLogger,
		isVerbose:   verbose,
	}
}

// Info логирует информационное сообщение
func (l *AppLogger) Info(format string, v ...interface{}) {
	msg := fmt.Sprintf(format, v...)
	l.infoLogger.Println(msg)

	// Также выводим в стандартный вывод
	log.Println("INFO:", msg)
}

// Warn логирует предупреждение (деградация данных: пропущенные ячейки и записи)
func (l *AppLogger) Warn(format string, v ...interface{}) {
	msg := fmt.Sprintf(format, v...)
	l.warnLogger.Println(msg)

	// Также выводим в стандартный вывод
	log.Println("WARN:", msg)
}

// Error логирует сообщение об ошибке
func (l *AppLogger) Error(format string, v ...interface{}) {
	msg := fmt.Sprintf(format, v...)
	l.errorLogger.Println(msg)

	// Также выводим в стандартный вывод
	log.Println("ERROR:", msg)
}

// Debug логирует отладочное сообщение (только если включен verbose режим)
func (l *AppLogger) Debug(format string, v ...interface{}) {
	if !l.isVerbose {
		return
	}

	msg := fmt.Sprintf(format, v...)
	l.debugLogger.Println(msg)

	// Также выводим в стандартный вывод
	log.Println("DEBUG:", msg)
}

// LogLoadStart логирует начало загрузки набора данных
func (l *AppLogger) LogLoadStart(sourceKind string) {
	l.Info("Начало загрузки набора данных из источника %q", sourceKind)
}

// LogLoadComplete логирует завершение загрузки набора данных
func (l *AppLogger) LogLoadComplete(startTime time.Time, totalRows int, totalColumns int) {
	duration := time.Since(startTime)
	l.Info("Загрузка набора данных завершена. Длительность: %v", duration)
	l.Info("Загружено: %d строк, %d колонок", totalRows, totalColumns)
}
