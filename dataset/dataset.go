package dataset

import (
	"fmt"
	"time"

	"github.com/LilVoxy/coursework_titanic/config"
	"github.com/LilVoxy/coursework_titanic/utils"
)

// Dataset хранит загруженный набор данных на все время жизни процесса.
// После загрузки набор неизменяем, поэтому все операции чтения могут
// выполняться из параллельных обработчиков без синхронизации
type Dataset struct {
	rows      []RawRow
	columns   []string
	columnSet map[string]bool
	logger    *utils.AppLogger
}

// LoadDataset выбирает загрузчик по конфигурации и выполняет
// единственную загрузку источника. Вызывается один раз на старте процесса;
// при ошибке сервис не должен обслуживать запросы
func LoadDataset(cfg config.AppConfig, logger *utils.AppLogger) (*Dataset, error) {
	loader, err := NewLoader(cfg, logger)
	if err != nil {
		return nil, err
	}

	logger.LogLoadStart(cfg.DataSource)
	startTime := time.Now()

	rows, columns, err := loader.Load()
	if err != nil {
		return nil, fmt.Errorf("ошибка при загрузке набора данных: %w", err)
	}

	if err := ValidateDataNotEmpty(rows); err != nil {
		return nil, err
	}

	columnSet := make(map[string]bool, len(columns))
	for _, name := range columns {
		columnSet[name] = true
	}

	logger.LogLoadComplete(startTime, len(rows), len(columns))

	return &Dataset{
		rows:      rows,
		columns:   columns,
		columnSet: columnSet,
		logger:    logger,
	}, nil
}

// Columns возвращает список колонок, зафиксированный при загрузке
func (d *Dataset) Columns() []string {
	return d.columns
}

// Len возвращает число загруженных строк
func (d *Dataset) Len() int {
	return len(d.rows)
}

// AllPassengers возвращает все валидные записи о пассажирах
// в порядке исходных строк. Строка, не прошедшая валидацию, не ломает
// весь список: она пропускается с предупреждением в логе
func (d *Dataset) AllPassengers() []Passenger {
	passengers := make([]Passenger, 0, len(d.rows))

	var skipped []interface{}
	for _, row := range d.rows {
		p, err := PassengerFromRow(row)
		if err != nil {
			d.logger.Warn("Пропущена невалидная запись о пассажире: %v", err)
			skipped = append(skipped, row[ColPassengerID])
			continue
		}
		passengers = append(passengers, *p)
	}

	if len(skipped) > 0 {
		d.logger.Warn("При выборке пропущено %d записей, ID: %v", len(skipped), skipped)
	}

	d.logger.Info("Найдено %d валидных записей о пассажирах", len(passengers))
	return passengers
}

// findRow выполняет линейный поиск первой строки с указанным ID пассажира.
// Повторяющиеся ID не схлопываются: выигрывает первое вхождение
func (d *Dataset) findRow(passengerID int) (RawRow, bool) {
	for _, row := range d.rows {
		if id, ok := intCell(row, ColPassengerID); ok && id == passengerID {
			return row, true
		}
	}
	return nil, false
}

// PassengerByID возвращает валидированную запись о пассажире по ID.
// Возвращает ErrNotFound, если строки с таким ID нет или найденная
// строка не проходит валидацию
func (d *Dataset) PassengerByID(passengerID int) (*Passenger, error) {
	if err := ValidatePassengerID(passengerID); err != nil {
		return nil, err
	}

	row, found := d.findRow(passengerID)
	if !found {
		return nil, fmt.Errorf("%w: пассажир с ID %d", ErrNotFound, passengerID)
	}

	p, err := PassengerFromRow(row)
	if err != nil {
		d.logger.Error("Невалидные данные пассажира с ID %d: %v", passengerID, err)
		return nil, fmt.Errorf("%w: пассажир с ID %d", ErrNotFound, passengerID)
	}

	return p, nil
}

// AttributesByID возвращает сырые значения запрошенных атрибутов
// для пассажира с указанным ID. Валидация записи намеренно не выполняется:
// выборка атрибутов обслуживает и строки, непригодные для полного списка
func (d *Dataset) AttributesByID(passengerID int, attributes []string) (map[string]interface{}, error) {
	if err := ValidatePassengerID(passengerID); err != nil {
		return nil, err
	}

	if err := ValidateAttributes(attributes, d.columnSet); err != nil {
		return nil, err
	}

	row, found := d.findRow(passengerID)
	if !found {
		return nil, fmt.Errorf("%w: пассажир с ID %d", ErrNotFound, passengerID)
	}

	result := make(map[string]interface{}, len(attributes))
	for _, attr := range attributes {
		result[attr] = row[attr]
	}

	return result, nil
}

// NumericColumn возвращает все непустые значения колонки, приведенные
// к float64, в порядке исходных строк. Строки, где значение отсутствует
// или не является числом, пропускаются
func (d *Dataset) NumericColumn(name string) []float64 {
	values := make([]float64, 0, len(d.rows))

	for _, row := range d.rows {
		if v, ok := floatCell(row, name); ok {
			values = append(values, v)
		}
	}

	return values
}
