package analytics

import (
	"fmt"
	"math"
	"sort"

	"github.com/LilVoxy/coursework_titanic/dataset"
)

// Допустимый диапазон числа перцентильных корзин
const (
	MinPercentiles = 5
	MaxPercentiles = 100
)

// ValidatePercentiles проверяет число перцентильных корзин
func ValidatePercentiles(percentiles int) error {
	if percentiles < MinPercentiles || percentiles > MaxPercentiles {
		return fmt.Errorf("%w: число перцентилей должно быть в диапазоне [%d, %d], получено: %d",
			dataset.ErrInvalidArgument, MinPercentiles, MaxPercentiles, percentiles)
	}
	return nil
}

// percentileValue вычисляет значение перцентиля p над отсортированным
// по возрастанию срезом методом линейной интерполяции:
// индекс границы i = p/100 * (n-1);
// при дробном i результат интерполируется между соседними значениями:
// v = sorted[floor(i)] + (i - floor(i)) * (sorted[ceil(i)] - sorted[floor(i)])
func percentileValue(sorted []float64, p float64) float64 {
	n := len(sorted)
	if n == 1 {
		return sorted[0]
	}

	index := p / 100 * float64(n-1)

	lower := int(math.Floor(index))
	upper := int(math.Ceil(index))

	// Защита от выхода за границы из-за погрешности вещественной арифметики
	if lower < 0 {
		lower = 0
	}
	if upper > n-1 {
		upper = n - 1
	}

	if lower == upper {
		return sorted[lower]
	}

	fraction := index - float64(lower)
	return sorted[lower] + fraction*(sorted[upper]-sorted[lower])
}

// Histogram строит гистограмму значений по перцентильным корзинам.
//
// Границы корзин вычисляются в перцентильных точках
// 0, 100/percentiles, 2*100/percentiles, ..., 100 методом линейной
// интерполяции. Каждая корзина включает нижнюю границу и не включает
// верхнюю, кроме последней корзины: она включает обе границы, поэтому
// максимальное значение всегда учтено и ни одно значение не теряется
// на верхнем крае. Сумма счетчиков корзин всегда равна числу входных
// значений
func Histogram(values []float64, percentiles int) (*HistogramResponse, error) {
	if err := ValidatePercentiles(percentiles); err != nil {
		return nil, err
	}

	if len(values) == 0 {
		return nil, fmt.Errorf("%w: нет значений для построения гистограммы", dataset.ErrEmptyInput)
	}

	// Сортируем копию по возрастанию, дубликаты сохраняются
	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)

	// Вычисляем percentiles+1 граничных точек
	boundaries := make([]float64, percentiles+1)
	for i := 0; i <= percentiles; i++ {
		p := float64(i) * 100 / float64(percentiles)
		boundaries[i] = percentileValue(sorted, p)
	}

	// Строим корзины из соседних пар границ и считаем попадания
	// линейным проходом по значениям
	data := make([]HistogramData, 0, percentiles)
	for i := 0; i < percentiles; i++ {
		lowerBound := boundaries[i]
		upperBound := boundaries[i+1]
		lastBucket := i == percentiles-1

		count := 0
		for _, v := range sorted {
			if v < lowerBound {
				continue
			}
			if v < upperBound || (lastBucket && v <= upperBound) {
				count++
			}
		}

		data = append(data, HistogramData{
			Percentile: float64(i+1) * 100 / float64(percentiles),
			Count:      count,
			FareRange:  fmt.Sprintf("%.2f - %.2f", lowerBound, upperBound),
		})
	}

	return &HistogramResponse{
		Data:            data,
		TotalPassengers: len(values),
	}, nil
}
