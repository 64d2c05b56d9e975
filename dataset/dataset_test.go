package dataset

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/LilVoxy/coursework_titanic/config"
	"github.com/LilVoxy/coursework_titanic/utils"
)

// Тестовый набор данных: строка 3 содержит невалидный флаг выживания,
// строка 4 — нечисловой тариф, строка 5 — пустые необязательные поля
var testCSV = `PassengerId,Survived,Pclass,Name,Sex,Age,SibSp,Parch,Ticket,Fare,Cabin,Embarked
1,0,3,"Braund, Mr. Owen Harris",male,22,1,0,A/5 21171,7.25,,S
2,1,1,"Cumings, Mrs. John Bradley",female,38,1,0,PC 17599,71.2833,C85,C
3,abc,3,"Heikkinen, Miss. Laina",female,26,0,0,STON/O2. 3101282,7.925,,S
4,1,1,"Futrelle, Mrs. Jacques Heath",female,35,1,0,113803,abc,C123,S
5,0,3,"Allen, Mr. William Henry",male,None,0,0,373450,8.05,NULL,null
`

// newTestDataset загружает тестовый CSV во временном каталоге
func newTestDataset(t *testing.T, csvContent string) *Dataset {
	t.Helper()
	oldWD, err := os.Getwd()
	if err != nil {
		t.Fatalf("не удалось получить рабочий каталог: %v", err)
	}
	if err := os.Chdir(t.TempDir()); err != nil {
		t.Fatalf("не удалось сменить рабочий каталог: %v", err)
	}
	t.Cleanup(func() { os.Chdir(oldWD) })

	path := filepath.Join(t.TempDir(), "titanic.csv")
	if err := os.WriteFile(path, []byte(csvContent), 0644); err != nil {
		t.Fatalf("не удалось записать тестовый CSV: %v", err)
	}

	cfg := config.DefaultAppConfig
	cfg.DataSource = config.SourceCSV
	cfg.CSVPath = path

	data, err := LoadDataset(cfg, utils.NewAppLogger(false))
	if err != nil {
		t.Fatalf("LoadDataset вернул ошибку: %v", err)
	}
	return data
}

// TestLoadDatasetCSV проверяет загрузку и приведение типов
func TestLoadDatasetCSV(t *testing.T) {
	data := newTestDataset(t, testCSV)

	if data.Len() != 5 {
		t.Errorf("Len = %d, ожидалось 5: невалидные строки не выбрасываются при загрузке", data.Len())
	}

	wantColumns := []string{
		ColPassengerID, ColSurvived, ColPclass, ColName, ColSex, ColAge,
		ColSibSp, ColParch, ColTicket, ColFare, ColCabin, ColEmbarked,
	}
	if !reflect.DeepEqual(data.Columns(), wantColumns) {
		t.Errorf("Columns = %v, ожидалось %v", data.Columns(), wantColumns)
	}

	// Приведение типов первой строки
	row := data.rows[0]
	if id, ok := row[ColPassengerID].(int); !ok || id != 1 {
		t.Errorf("PassengerId = %v (%T), ожидалось int 1", row[ColPassengerID], row[ColPassengerID])
	}
	if age, ok := row[ColAge].(float64); !ok || age != 22 {
		t.Errorf("Age = %v (%T), ожидалось float64 22", row[ColAge], row[ColAge])
	}
	if row[ColCabin] != nil {
		t.Errorf("пустая ячейка Cabin = %v, ожидалось nil", row[ColCabin])
	}

	// Нечисловой тариф деградирует до nil, строка сохраняется
	if data.rows[3][ColFare] != nil {
		t.Errorf("Fare=abc должно стать nil, получено: %v", data.rows[3][ColFare])
	}

	// Строковые маркеры отсутствия становятся nil
	row = data.rows[4]
	if row[ColAge] != nil || row[ColCabin] != nil || row[ColEmbarked] != nil {
		t.Errorf("маркеры None/NULL/null должны стать nil, получено: %v, %v, %v",
			row[ColAge], row[ColCabin], row[ColEmbarked])
	}
}

// TestAllPassengersSkipsInvalid проверяет, что невалидная запись
// пропускается, не ломая весь список, и порядок строк сохраняется
func TestAllPassengersSkipsInvalid(t *testing.T) {
	data := newTestDataset(t, testCSV)

	passengers := data.AllPassengers()

	// Строка 3 (Survived=abc -> nil) не проходит валидацию
	if len(passengers) != 4 {
		t.Fatalf("len(AllPassengers) = %d, ожидалось 4", len(passengers))
	}

	wantIDs := []int{1, 2, 4, 5}
	for i, p := range passengers {
		if p.PassengerID != wantIDs[i] {
			t.Errorf("passengers[%d].PassengerID = %d, ожидалось %d", i, p.PassengerID, wantIDs[i])
		}
	}

	// Строка 4 валидна: отсутствующий тариф допустим
	if passengers[2].Fare != nil {
		t.Errorf("Fare пассажира 4 = %v, ожидалось nil", passengers[2].Fare)
	}
}

// TestPassengerByID проверяет поиск по ID
func TestPassengerByID(t *testing.T) {
	data := newTestDataset(t, testCSV)

	p, err := data.PassengerByID(2)
	if err != nil {
		t.Fatalf("PassengerByID(2) вернул ошибку: %v", err)
	}
	if p.Name != "Cumings, Mrs. John Bradley" || p.Survived != 1 || p.Pclass != 1 {
		t.Errorf("PassengerByID(2) вернул неожиданную запись: %+v", p)
	}

	// Повторный вызов возвращает идентичный результат
	p2, err := data.PassengerByID(2)
	if err != nil {
		t.Fatalf("повторный PassengerByID(2) вернул ошибку: %v", err)
	}
	if !reflect.DeepEqual(p, p2) {
		t.Errorf("повторный вызов вернул другой результат: %+v != %+v", p, p2)
	}
}

// TestPassengerByIDNotFound проверяет отсутствие записи и невалидный ID
func TestPassengerByIDNotFound(t *testing.T) {
	data := newTestDataset(t, testCSV)

	// Несуществующий ID — не ошибка выполнения, а ErrNotFound
	if _, err := data.PassengerByID(999); !errors.Is(err, ErrNotFound) {
		t.Errorf("PassengerByID(999): ожидался ErrNotFound, получено: %v", err)
	}

	// Строка найдена, но не проходит валидацию — тоже ErrNotFound
	if _, err := data.PassengerByID(3); !errors.Is(err, ErrNotFound) {
		t.Errorf("PassengerByID(3): ожидался ErrNotFound, получено: %v", err)
	}

	// Неположительный ID — ошибка параметра
	for _, id := range []int{0, -1} {
		if _, err := data.PassengerByID(id); !errors.Is(err, ErrInvalidArgument) {
			t.Errorf("PassengerByID(%d): ожидался ErrInvalidArgument, получено: %v", id, err)
		}
	}
}

// TestAttributesByID проверяет выборку сырых значений атрибутов
func TestAttributesByID(t *testing.T) {
	data := newTestDataset(t, testCSV)

	result, err := data.AttributesByID(1, []string{ColName, ColAge})
	if err != nil {
		t.Fatalf("AttributesByID вернул ошибку: %v", err)
	}

	want := map[string]interface{}{
		ColName: "Braund, Mr. Owen Harris",
		ColAge:  22.0,
	}
	if !reflect.DeepEqual(result, want) {
		t.Errorf("AttributesByID = %v, ожидалось %v", result, want)
	}

	// Выборка атрибутов намеренно обходит валидацию записи:
	// строка 3 невалидна для полного списка, но атрибуты доступны
	result, err = data.AttributesByID(3, []string{ColName, ColSurvived})
	if err != nil {
		t.Fatalf("AttributesByID для невалидной строки вернул ошибку: %v", err)
	}
	if result[ColName] != "Heikkinen, Miss. Laina" {
		t.Errorf("Name = %v, ожидалось Heikkinen, Miss. Laina", result[ColName])
	}
	if result[ColSurvived] != nil {
		t.Errorf("Survived невалидной строки = %v, ожидалось nil", result[ColSurvived])
	}
}

// TestAttributesByIDInvalid проверяет ошибки параметров выборки атрибутов
func TestAttributesByIDInvalid(t *testing.T) {
	data := newTestDataset(t, testCSV)

	// Неизвестный атрибут — всегда ошибка, без частичного результата
	_, err := data.AttributesByID(1, []string{ColName, "Nationality"})
	if !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("неизвестный атрибут: ожидался ErrInvalidArgument, получено: %v", err)
	}

	// Пустой список атрибутов
	if _, err := data.AttributesByID(1, nil); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("пустой список: ожидался ErrInvalidArgument, получено: %v", err)
	}

	// Несуществующий ID при корректных атрибутах
	if _, err := data.AttributesByID(999, []string{ColName}); !errors.Is(err, ErrNotFound) {
		t.Errorf("ожидался ErrNotFound, получено: %v", err)
	}
}

// TestNumericColumn проверяет извлечение числовой колонки
func TestNumericColumn(t *testing.T) {
	data := newTestDataset(t, testCSV)

	// Строка 4 (Fare=abc -> nil) пропускается, порядок сохраняется
	want := []float64{7.25, 71.2833, 7.925, 8.05}
	got := data.NumericColumn(ColFare)
	if !reflect.DeepEqual(got, want) {
		t.Errorf("NumericColumn(Fare) = %v, ожидалось %v", got, want)
	}

	// Целочисленная колонка тоже извлекается как float64
	if got := data.NumericColumn(ColPclass); len(got) != 5 {
		t.Errorf("NumericColumn(Pclass) вернул %d значений, ожидалось 5", len(got))
	}

	// Несуществующая колонка дает пустой результат
	if got := data.NumericColumn("Nationality"); len(got) != 0 {
		t.Errorf("NumericColumn для неизвестной колонки = %v, ожидался пустой срез", got)
	}
}
