package analytics

// HistogramData представляет одну корзину гистограммы тарифов
type HistogramData struct {
	Percentile float64 `json:"percentile"` // Накопленный перцентиль корзины
	Count      int     `json:"count"`      // Число пассажиров в диапазоне тарифа
	FareRange  string  `json:"fare_range"` // Диапазон тарифа, например "7.25 - 45.00"
}

// HistogramResponse представляет результат построения гистограммы
type HistogramResponse struct {
	Data            []HistogramData `json:"data"`
	TotalPassengers int             `json:"total_passengers"` // Общее число учтенных значений
}
