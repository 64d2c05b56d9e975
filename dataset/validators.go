package dataset

import (
	"fmt"
	"strings"
)

// Чистые функции проверки параметров. Вызываются до входа
// в операции Dataset и движка аналитики

// ValidatePassengerID проверяет, что ID пассажира — положительное целое
func ValidatePassengerID(passengerID int) error {
	if passengerID <= 0 {
		return fmt.Errorf("%w: ID пассажира должен быть положительным, получено: %d", ErrInvalidArgument, passengerID)
	}
	return nil
}

// ValidateAttributes проверяет, что список атрибутов не пуст и все
// запрошенные имена существуют среди колонок набора данных.
// Неизвестные имена перечисляются в ошибке
func ValidateAttributes(attributes []string, columnSet map[string]bool) error {
	if len(attributes) == 0 {
		return fmt.Errorf("%w: требуется хотя бы один атрибут, получен пустой список", ErrInvalidArgument)
	}

	var invalid []string
	for _, attr := range attributes {
		if !columnSet[attr] {
			invalid = append(invalid, attr)
		}
	}

	if len(invalid) > 0 {
		return fmt.Errorf("%w: запрошены неизвестные атрибуты: %s", ErrInvalidArgument, strings.Join(invalid, ", "))
	}

	return nil
}

// ValidateDataNotEmpty проверяет, что загруженный набор данных не пуст
func ValidateDataNotEmpty(rows []RawRow) error {
	if len(rows) == 0 {
		return fmt.Errorf("%w: источник не содержит ни одной строки данных", ErrSourceCorrupt)
	}
	return nil
}
