package config

import (
	"fmt"
	"os"
	"strconv"
)

// Виды источников набора данных
const (
	SourceCSV    = "csv"    // текстовый файл с разделителями
	SourceSQLite = "sqlite" // встраиваемая БД SQLite
	SourceMySQL  = "mysql"  // серверная БД MySQL
)

// AppConfig содержит конфигурацию сервиса данных о пассажирах
type AppConfig struct {
	// Вид источника данных: csv, sqlite или mysql
	DataSource string

	// Путь к CSV-файлу (для источника csv)
	CSVPath string

	// Путь к файлу БД SQLite (для источника sqlite)
	SQLitePath string

	// Имя таблицы с пассажирами (для источников sqlite и mysql)
	TableName string

	// Настройки подключения к MySQL (для источника mysql)
	MySQL DatabaseConfig

	// Адрес HTTP-сервера
	ServerAddr string

	// Включение/отключение подробного логирования
	EnableDetailedLogging bool
}

// DatabaseConfig содержит настройки подключения к базе данных
type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	DBName   string
}

// DSN собирает строку подключения к MySQL
func (c DatabaseConfig) DSN() string {
	return fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?parseTime=true",
		c.User,
		c.Password,
		c.Host,
		c.Port,
		c.DBName,
	)
}

// Значения конфигурации по умолчанию
var (
	DefaultMySQLConfig = DatabaseConfig{
		Host:   "localhost",
		Port:   3306,
		User:   "root",
		DBName: "titanic",
	}

	DefaultAppConfig = AppConfig{
		DataSource:            SourceCSV,
		CSVPath:               "/data/titanic.csv",
		SQLitePath:            "/data/titanic.db",
		TableName:             "passengers",
		MySQL:                 DefaultMySQLConfig,
		ServerAddr:            ":8000",
		EnableDetailedLogging: true,
	}
)

// GetConfig возвращает конфигурацию приложения,
// перекрывая значения по умолчанию переменными окружения
func GetConfig() AppConfig {
	cfg := DefaultAppConfig

	cfg.DataSource = getEnv("DATA_SOURCE", cfg.DataSource)
	cfg.CSVPath = getEnv("CSV_PATH", cfg.CSVPath)
	cfg.SQLitePath = getEnv("SQLITE_PATH", cfg.SQLitePath)
	cfg.TableName = getEnv("TABLE_NAME", cfg.TableName)
	cfg.ServerAddr = getEnv("SERVER_ADDR", cfg.ServerAddr)

	cfg.MySQL.Host = getEnv("MYSQL_HOST", cfg.MySQL.Host)
	cfg.MySQL.User = getEnv("MYSQL_USER", cfg.MySQL.User)
	cfg.MySQL.Password = getEnv("MYSQL_PASSWORD", cfg.MySQL.Password)
	cfg.MySQL.DBName = getEnv("MYSQL_DBNAME", cfg.MySQL.DBName)

	if port, err := strconv.Atoi(getEnv("MYSQL_PORT", "")); err == nil {
		cfg.MySQL.Port = port
	}

	if verbose, err := strconv.ParseBool(getEnv("ENABLE_DETAILED_LOGGING", "")); err == nil {
		cfg.EnableDetailedLogging = verbose
	}

	return cfg
}

// ValidateConfig проверяет конфигурацию перед запуском.
// Неизвестный вид источника — фатальная ошибка старта
func ValidateConfig(cfg AppConfig) error {
	switch cfg.DataSource {
	case SourceCSV, SourceSQLite, SourceMySQL:
		return nil
	}
	return fmt.Errorf("неподдерживаемый вид источника данных: %q (ожидается csv, sqlite или mysql)", cfg.DataSource)
}

// getEnv возвращает значение переменной окружения или значение по умолчанию
func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
