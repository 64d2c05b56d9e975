// main.go
package main

import (
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/LilVoxy/coursework_titanic/analytics"
	"github.com/LilVoxy/coursework_titanic/config"
	"github.com/LilVoxy/coursework_titanic/dataset"
	"github.com/LilVoxy/coursework_titanic/routes"
	"github.com/LilVoxy/coursework_titanic/utils"
	"github.com/gorilla/mux"
)

func main() {
	fmt.Println("Запуск сервера данных о пассажирах...")

	// Получаем и проверяем конфигурацию
	cfg := config.GetConfig()
	if err := config.ValidateConfig(cfg); err != nil {
		log.Fatalf("❌ Некорректная конфигурация: %v", err)
	}

	// Инициализируем логгер
	logger := utils.NewAppLogger(cfg.EnableDetailedLogging)

	// Загружаем набор данных. Загрузка выполняется один раз на старте;
	// при ошибке сервис не запускается
	data, err := dataset.LoadDataset(cfg, logger)
	if err != nil {
		log.Fatalf("❌ Не удалось загрузить набор данных: %v", err)
	}

	// Создаем сервис аналитики
	analyticsService := analytics.NewAnalyticsService(data, logger)

	// Создаем маршрутизатор и регистрируем обработчики
	router := mux.NewRouter().StrictSlash(true)
	routes.SetupRoutes(router, data, analyticsService)

	// Настраиваем сервер
	server := &http.Server{
		Addr:         cfg.ServerAddr,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Запускаем сервер в отдельной горутине
	go func() {
		log.Printf("✅ Сервер запущен на http://localhost%s", server.Addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("❌ Ошибка запуска сервера: %v", err)
		}
	}()

	// Канал для сигналов завершения
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	// Ожидаем сигнал завершения
	<-stop
	log.Println("⚠️ Получен сигнал завершения, останавливаем сервер...")

	if err := server.Close(); err != nil {
		log.Printf("❌ Ошибка при остановке сервера: %v", err)
	}

	log.Println("👋 Сервер остановлен")
}
