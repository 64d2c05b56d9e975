package dataset

import (
	"strconv"
	"strings"

	"github.com/LilVoxy/coursework_titanic/utils"
)

// Колонки, объявленные целочисленными и вещественными в схеме набора данных.
// Список колонок берется из источника, а не выводится из первой строки,
// поэтому объявление типов фиксировано здесь
var (
	intColumns = map[string]bool{
		ColPassengerID: true,
		ColSurvived:    true,
		ColPclass:      true,
		ColSibSp:       true,
		ColParch:       true,
	}

	floatColumns = map[string]bool{
		ColAge:  true,
		ColFare: true,
	}

	// Строковые маркеры отсутствующего значения
	nullSentinels = map[string]bool{
		"":     true,
		"None": true,
		"NULL": true,
		"null": true,
		"none": true,
		"Null": true,
		"NONE": true,
	}
)

// coerceRow приводит значения строки к объявленным типам колонок.
// Ошибка приведения никогда не фатальна: проблемная ячейка становится nil,
// остальная часть строки сохраняется, а деградация фиксируется в логе
func coerceRow(row RawRow, logger *utils.AppLogger) {
	for name, value := range row {
		switch {
		case intColumns[name]:
			row[name] = coerceInt(row, name, value, logger)
		case floatColumns[name]:
			row[name] = coerceFloat(row, name, value, logger)
		default:
			row[name] = coerceString(value)
		}
	}
}

// coerceInt приводит значение ячейки к int
func coerceInt(row RawRow, name string, value interface{}, logger *utils.AppLogger) interface{} {
	switch v := value.(type) {
	case nil:
		return nil
	case int:
		return v
	case int64:
		return int(v)
	case float64:
		// Динамическая типизация SQLite может вернуть вещественное
		// значение в целочисленной колонке
		if v == float64(int(v)) {
			return int(v)
		}
	case string:
		if nullSentinels[v] {
			return nil
		}
		n, err := strconv.Atoi(v)
		if err == nil {
			return n
		}
	}

	logger.Warn("Не удалось привести %s=%v к целому для пассажира %v", name, value, row[ColPassengerID])
	return nil
}

// coerceFloat приводит значение ячейки к float64
func coerceFloat(row RawRow, name string, value interface{}, logger *utils.AppLogger) interface{} {
	switch v := value.(type) {
	case nil:
		return nil
	case float64:
		return v
	case int:
		return float64(v)
	case int64:
		return float64(v)
	case string:
		if nullSentinels[v] {
			return nil
		}
		f, err := strconv.ParseFloat(v, 64)
		if err == nil {
			return f
		}
	}

	logger.Warn("Не удалось привести %s=%v к вещественному для пассажира %v", name, value, row[ColPassengerID])
	return nil
}

// coerceString нормализует строковую ячейку: маркеры отсутствия становятся nil
func coerceString(value interface{}) interface{} {
	switch v := value.(type) {
	case nil:
		return nil
	case string:
		if nullSentinels[strings.TrimSpace(v)] {
			return nil
		}
		return v
	}
	return value
}
