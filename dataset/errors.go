package dataset

import "errors"

// Категории ошибок сервиса данных. Обработчики HTTP сопоставляют
// категорию со статус-кодом через errors.Is, поэтому все ошибки
// пакета оборачивают один из этих сентинелов через %w.
var (
	// ErrSourceUnavailable — источник данных отсутствует или недоступен
	// (нет файла, нет соединения с БД). Фатально на старте, без повторов
	ErrSourceUnavailable = errors.New("источник данных недоступен")

	// ErrSourceCorrupt — источник открыт, но не разбирается как таблица
	ErrSourceCorrupt = errors.New("источник данных поврежден")

	// ErrInvalidArgument — вызывающая сторона передала некорректный
	// параметр (id <= 0, пустой или неизвестный список атрибутов,
	// число перцентилей вне диапазона). Исправляется повтором с
	// корректными параметрами
	ErrInvalidArgument = errors.New("некорректный параметр запроса")

	// ErrEmptyInput — нет данных для вычисления (например, ни одного
	// значения тарифа для гистограммы). Отличается от ErrInvalidArgument:
	// это состояние данных, а не ошибка параметров
	ErrEmptyInput = errors.New("нет данных для вычисления")

	// ErrNotFound — пассажир с указанным ID не найден. Не является
	// ошибкой выполнения, обработчик превращает его в 404
	ErrNotFound = errors.New("запись не найдена")
)
