// routes/passenger_handlers.go
package routes

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"
	"strings"

	"github.com/LilVoxy/coursework_titanic/dataset"
	"github.com/gorilla/mux"
)

// APIInfoResponse структура ответа API с информацией о сервисе
type APIInfoResponse struct {
	Message string `json:"message"`
	Version string `json:"version"`
	Docs    string `json:"docs"`
}

// PassengersListResponse структура ответа API для списка пассажиров
type PassengersListResponse struct {
	Passengers []dataset.Passenger `json:"passengers"`
	TotalCount int                 `json:"total_count"`
}

// PassengerResponse структура ответа API для одной записи о пассажире
type PassengerResponse struct {
	Data *dataset.Passenger `json:"data"`
}

// PassengerAttributesResponse структура ответа API для выборки атрибутов
type PassengerAttributesResponse struct {
	Data map[string]interface{} `json:"data"`
}

// writeJSON кодирует и отправляет JSON-ответ
func writeJSON(w http.ResponseWriter, response interface{}) {
	// Устанавливаем заголовок для JSON
	w.Header().Set("Content-Type", "application/json")

	// Кодируем и отправляем ответ
	if err := json.NewEncoder(w).Encode(response); err != nil {
		log.Printf("❌ Ошибка при кодировании JSON: %v", err)
		http.Error(w, "Ошибка при формировании ответа", http.StatusInternalServerError)
	}
}

// writeError сопоставляет категорию ошибки со статус-кодом HTTP
func writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, dataset.ErrInvalidArgument):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, dataset.ErrEmptyInput):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, dataset.ErrNotFound):
		http.Error(w, "Пассажир не найден", http.StatusNotFound)
	default:
		http.Error(w, "Внутренняя ошибка сервера", http.StatusInternalServerError)
	}
}

// InfoHandler обрабатывает запросы информации об API
func InfoHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, APIInfoResponse{
			Message: "Titanic Passenger Data API",
			Version: APIVersion,
			Docs:    "/docs",
		})
	}
}

// GetPassengersHandler обрабатывает запросы на получение списка пассажиров
func GetPassengersHandler(data *dataset.Dataset) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		// Получаем все валидные записи о пассажирах
		passengers := data.AllPassengers()

		// Подготавливаем ответ
		response := PassengersListResponse{
			Passengers: passengers,
			TotalCount: len(passengers),
		}

		writeJSON(w, response)
		log.Printf("✅ Отправлен список из %d пассажиров [%s]", len(passengers), r.Header.Get("X-Request-ID"))
	}
}

// parseAttributes извлекает список запрошенных атрибутов из параметров
// запроса. Поддерживаются повторяющийся параметр attributes и значения,
// перечисленные через запятую; пустые элементы отбрасываются
func parseAttributes(r *http.Request) []string {
	var attributes []string

	for _, raw := range r.URL.Query()["attributes"] {
		for _, attr := range strings.Split(raw, ",") {
			if trimmed := strings.TrimSpace(attr); trimmed != "" {
				attributes = append(attributes, trimmed)
			}
		}
	}

	return attributes
}

// GetPassengerHandler обрабатывает запросы на получение пассажира по ID.
// Необязательный параметр attributes переключает ответ на выборку
// сырых значений указанных атрибутов
func GetPassengerHandler(data *dataset.Dataset) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		// Преобразуем ID в число
		passengerID, err := strconv.Atoi(mux.Vars(r)["id"])
		if err != nil {
			http.Error(w, "Неверный формат ID пассажира", http.StatusBadRequest)
			return
		}

		attributes := parseAttributes(r)

		// Без атрибутов возвращаем полную валидированную запись
		if len(attributes) == 0 {
			passenger, err := data.PassengerByID(passengerID)
			if err != nil {
				log.Printf("❌ Пассажир с ID %d: %v", passengerID, err)
				writeError(w, err)
				return
			}

			writeJSON(w, PassengerResponse{Data: passenger})
			log.Printf("✅ Отправлена запись о пассажире %d [%s]", passengerID, r.Header.Get("X-Request-ID"))
			return
		}

		// С атрибутами возвращаем сырые значения запрошенных колонок
		result, err := data.AttributesByID(passengerID, attributes)
		if err != nil {
			log.Printf("❌ Атрибуты пассажира %d: %v", passengerID, err)
			writeError(w, err)
			return
		}

		writeJSON(w, PassengerAttributesResponse{Data: result})
		log.Printf("✅ Отправлены атрибуты %v пассажира %d [%s]", attributes, passengerID, r.Header.Get("X-Request-ID"))
	}
}
