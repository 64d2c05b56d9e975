// routes/api_routes.go
package routes

import (
	"github.com/LilVoxy/coursework_titanic/analytics"
	"github.com/LilVoxy/coursework_titanic/dataset"
	"github.com/LilVoxy/coursework_titanic/middleware"
	"github.com/gorilla/mux"
)

// Версия API
const APIVersion = "1.0.0"

// SetupRoutes настраивает все маршруты API
func SetupRoutes(router *mux.Router, data *dataset.Dataset, analyticsService *analytics.AnalyticsService) {
	// Применяем CORS middleware и идентификаторы запросов
	router.Use(middleware.CORSMiddleware)
	router.Use(middleware.RequestIDMiddleware)

	// Информация об API
	router.HandleFunc("/", InfoHandler()).Methods("GET", "OPTIONS")

	// API пассажиров
	router.HandleFunc("/passengers", GetPassengersHandler(data)).Methods("GET", "OPTIONS")

	// Аналитика: гистограмма тарифов. Фиксированный путь analytics
	// не должен разбираться маршрутом с {id} как ID пассажира
	router.HandleFunc("/passengers/analytics/fare-histogram", GetFareHistogramHandler(analyticsService)).Methods("GET", "OPTIONS")

	// Пассажир по ID (с необязательной выборкой атрибутов)
	router.HandleFunc("/passengers/{id}", GetPassengerHandler(data)).Methods("GET", "OPTIONS")
}
