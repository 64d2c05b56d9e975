package analytics

import (
	"github.com/LilVoxy/coursework_titanic/dataset"
	"github.com/LilVoxy/coursework_titanic/utils"
)

// AnalyticsService вычисляет аналитику над загруженным набором данных
type AnalyticsService struct {
	data   *dataset.Dataset
	logger *utils.AppLogger
}

// NewAnalyticsService создает новый экземпляр AnalyticsService
func NewAnalyticsService(data *dataset.Dataset, logger *utils.AppLogger) *AnalyticsService {
	return &AnalyticsService{
		data:   data,
		logger: logger,
	}
}

// FareHistogram строит гистограмму тарифов по перцентилям.
// Из набора данных извлекаются все непустые значения колонки Fare
func (s *AnalyticsService) FareHistogram(percentiles int) (*HistogramResponse, error) {
	fareValues := s.data.NumericColumn(dataset.ColFare)

	result, err := Histogram(fareValues, percentiles)
	if err != nil {
		s.logger.Error("Ошибка при построении гистограммы тарифов: %v", err)
		return nil, err
	}

	s.logger.Info("Построена гистограмма тарифов: %d перцентилей, %d значений",
		percentiles, result.TotalPassengers)
	return result, nil
}
