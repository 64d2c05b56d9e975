// routes/analytics_handlers.go
package routes

import (
	"log"
	"net/http"
	"strconv"

	"github.com/LilVoxy/coursework_titanic/analytics"
)

// DefaultPercentiles — число перцентильных корзин по умолчанию
const DefaultPercentiles = 10

// GetFareHistogramHandler обрабатывает запросы на построение
// гистограммы тарифов по перцентилям
func GetFareHistogramHandler(analyticsService *analytics.AnalyticsService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		// Получаем параметры запроса
		percentiles := DefaultPercentiles
		if raw := r.URL.Query().Get("percentiles"); raw != "" {
			value, err := strconv.Atoi(raw)
			if err != nil {
				http.Error(w, "Неверный формат параметра percentiles", http.StatusBadRequest)
				return
			}
			percentiles = value
		}

		// Строим гистограмму
		result, err := analyticsService.FareHistogram(percentiles)
		if err != nil {
			log.Printf("❌ Ошибка при построении гистограммы тарифов: %v", err)
			writeError(w, err)
			return
		}

		writeJSON(w, result)
		log.Printf("✅ Отправлена гистограмма тарифов: %d корзин, %d значений [%s]",
			len(result.Data), result.TotalPassengers, r.Header.Get("X-Request-ID"))
	}
}
