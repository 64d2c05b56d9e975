package dataset

import (
	"database/sql"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/LilVoxy/coursework_titanic/config"
	"github.com/LilVoxy/coursework_titanic/utils"
	"github.com/golang/snappy"

	_ "github.com/go-sql-driver/mysql"
	_ "modernc.org/sqlite"
)

// Loader загружает источник целиком и возвращает строки с приведенными
// типами и список колонок, объявленный самим источником (строка заголовка
// или метаданные таблицы)
type Loader interface {
	Load() ([]RawRow, []string, error)
}

// NewLoader выбирает конкретный загрузчик по виду источника.
// Набор источников закрытый: csv, sqlite, mysql
func NewLoader(cfg config.AppConfig, logger *utils.AppLogger) (Loader, error) {
	switch cfg.DataSource {
	case config.SourceCSV:
		return &CSVLoader{path: cfg.CSVPath, logger: logger}, nil
	case config.SourceSQLite:
		// DSN в форме URI: без префикса file: драйвер игнорирует mode=ro
		// и создает отсутствующий файл БД вместо ошибки открытия
		return &SQLLoader{
			driver: "sqlite",
			dsn:    "file:" + cfg.SQLitePath + "?mode=ro",
			table:  cfg.TableName,
			logger: logger,
		}, nil
	case config.SourceMySQL:
		return &SQLLoader{
			driver: "mysql",
			dsn:    cfg.MySQL.DSN(),
			table:  cfg.TableName,
			logger: logger,
		}, nil
	}
	return nil, fmt.Errorf("%w: неподдерживаемый вид источника %q", ErrInvalidArgument, cfg.DataSource)
}

// CSVLoader загружает набор данных из текстового файла с разделителями.
// Файлы с расширением .snappy прозрачно распаковываются при чтении
type CSVLoader struct {
	path   string
	logger *utils.AppLogger
}

// Load читает CSV-файл целиком в память
func (l *CSVLoader) Load() ([]RawRow, []string, error) {
	file, err := os.Open(l.path)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: не удалось открыть CSV-файл %s: %v", ErrSourceUnavailable, l.path, err)
	}
	defer file.Close()

	var reader io.Reader = file

	// Сжатый экспорт набора данных читается без отдельной распаковки
	if strings.HasSuffix(l.path, ".snappy") {
		reader = snappy.NewReader(file)
	}

	records, err := csv.NewReader(reader).ReadAll()
	if err != nil {
		return nil, nil, fmt.Errorf("%w: ошибка при разборе CSV-файла %s: %v", ErrSourceCorrupt, l.path, err)
	}

	if len(records) == 0 {
		return nil, nil, fmt.Errorf("%w: CSV-файл %s не содержит строки заголовка", ErrSourceCorrupt, l.path)
	}

	// Список колонок берется из строки заголовка
	columns := records[0]

	rows := make([]RawRow, 0, len(records)-1)
	for _, record := range records[1:] {
		row := make(RawRow, len(columns))
		for i, name := range columns {
			row[name] = record[i]
		}
		coerceRow(row, l.logger)
		rows = append(rows, row)
	}

	return rows, columns, nil
}

// SQLLoader загружает набор данных полным чтением одной таблицы
// через database/sql. Используется для встраиваемой БД SQLite и для
// серверной MySQL — оба варианта дают одинаковую форму строк и колонок
type SQLLoader struct {
	driver string
	dsn    string
	table  string
	logger *utils.AppLogger
}

// Load выполняет полное чтение таблицы в память.
// Соединение с БД открывается только на время загрузки
func (l *SQLLoader) Load() ([]RawRow, []string, error) {
	db, err := sql.Open(l.driver, l.dsn)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: ошибка подключения к базе данных (%s): %v", ErrSourceUnavailable, l.driver, err)
	}
	defer db.Close()

	// Проверка подключения
	if err := db.Ping(); err != nil {
		return nil, nil, fmt.Errorf("%w: не удалось установить соединение с базой данных (%s): %v", ErrSourceUnavailable, l.driver, err)
	}

	rows, err := db.Query("SELECT * FROM " + l.table)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: ошибка при запросе таблицы %s: %v", ErrSourceCorrupt, l.table, err)
	}
	defer rows.Close()

	// Список колонок берется из метаданных таблицы
	columns, err := rows.Columns()
	if err != nil {
		return nil, nil, fmt.Errorf("%w: не удалось получить список колонок таблицы %s: %v", ErrSourceCorrupt, l.table, err)
	}

	var result []RawRow

	values := make([]interface{}, len(columns))
	pointers := make([]interface{}, len(columns))

	for rows.Next() {
		for i := range values {
			pointers[i] = &values[i]
		}

		if err := rows.Scan(pointers...); err != nil {
			return nil, nil, fmt.Errorf("%w: ошибка при сканировании строки таблицы %s: %v", ErrSourceCorrupt, l.table, err)
		}

		row := make(RawRow, len(columns))
		for i, name := range columns {
			row[name] = normalizeSQLValue(values[i])
		}
		coerceRow(row, l.logger)
		result = append(result, row)
	}

	// Проверяем ошибки после итерации
	if err := rows.Err(); err != nil {
		return nil, nil, fmt.Errorf("%w: ошибка при итерации по таблице %s: %v", ErrSourceCorrupt, l.table, err)
	}

	return result, columns, nil
}

// normalizeSQLValue приводит значение драйвера к одному из типов ячейки.
// Драйвер MySQL возвращает текстовые колонки как []byte
func normalizeSQLValue(value interface{}) interface{} {
	if b, ok := value.([]byte); ok {
		return string(b)
	}
	return value
}
