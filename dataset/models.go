package dataset

import (
	"fmt"
)

// RawRow представляет одну строку источника после приведения типов:
// значение ячейки — int, float64, string или nil (отсутствующее значение)
type RawRow map[string]interface{}

// Названия колонок набора данных о пассажирах
const (
	ColPassengerID = "PassengerId"
	ColSurvived    = "Survived"
	ColPclass      = "Pclass"
	ColName        = "Name"
	ColSex         = "Sex"
	ColAge         = "Age"
	ColSibSp       = "SibSp"
	ColParch       = "Parch"
	ColTicket      = "Ticket"
	ColFare        = "Fare"
	ColCabin       = "Cabin"
	ColEmbarked    = "Embarked"
)

// Passenger представляет валидированную запись о пассажире
type Passenger struct {
	PassengerID int      `json:"PassengerId"` // Уникальный ID пассажира (> 0)
	Survived    int      `json:"Survived"`    // Флаг выживания: 0 или 1
	Pclass      int      `json:"Pclass"`      // Класс каюты (1, 2 или 3)
	Name        string   `json:"Name"`        // Полное имя
	Sex         string   `json:"Sex"`         // Пол: male или female
	Age         *float64 `json:"Age"`         // Возраст в годах (может отсутствовать)
	SibSp       int      `json:"SibSp"`       // Число братьев/сестер и супругов на борту
	Parch       int      `json:"Parch"`       // Число родителей и детей на борту
	Ticket      string   `json:"Ticket"`      // Номер билета
	Fare        *float64 `json:"Fare"`        // Стоимость билета (может отсутствовать)
	Cabin       *string  `json:"Cabin"`       // Номер каюты (может отсутствовать)
	Embarked    *string  `json:"Embarked"`    // Порт посадки (может отсутствовать)
}

// intCell извлекает целочисленное значение ячейки.
// Второй результат false, если значение отсутствует или имеет другой тип
func intCell(row RawRow, name string) (int, bool) {
	v, ok := row[name].(int)
	return v, ok
}

// floatCell извлекает вещественное значение ячейки.
// Целые значения также принимаются — источник мог объявить колонку как integer
func floatCell(row RawRow, name string) (float64, bool) {
	switch v := row[name].(type) {
	case float64:
		return v, true
	case int:
		return float64(v), true
	}
	return 0, false
}

// stringCell извлекает строковое значение ячейки
func stringCell(row RawRow, name string) (string, bool) {
	v, ok := row[name].(string)
	return v, ok
}

// PassengerFromRow строит валидированную запись Passenger из сырой строки.
// Возвращает ошибку с описанием первого нарушенного ограничения —
// вызывающая сторона решает, пропустить запись или сообщить об ошибке
func PassengerFromRow(row RawRow) (*Passenger, error) {
	p := &Passenger{}

	// Обязательные целочисленные поля с ограничениями диапазона
	id, ok := intCell(row, ColPassengerID)
	if !ok || id <= 0 {
		return nil, fmt.Errorf("поле %s должно быть положительным целым, получено: %v", ColPassengerID, row[ColPassengerID])
	}
	p.PassengerID = id

	survived, ok := intCell(row, ColSurvived)
	if !ok || (survived != 0 && survived != 1) {
		return nil, fmt.Errorf("поле %s должно быть 0 или 1, получено: %v", ColSurvived, row[ColSurvived])
	}
	p.Survived = survived

	pclass, ok := intCell(row, ColPclass)
	if !ok || pclass < 1 || pclass > 3 {
		return nil, fmt.Errorf("поле %s должно быть в диапазоне 1..3, получено: %v", ColPclass, row[ColPclass])
	}
	p.Pclass = pclass

	sibsp, ok := intCell(row, ColSibSp)
	if !ok || sibsp < 0 {
		return nil, fmt.Errorf("поле %s должно быть неотрицательным целым, получено: %v", ColSibSp, row[ColSibSp])
	}
	p.SibSp = sibsp

	parch, ok := intCell(row, ColParch)
	if !ok || parch < 0 {
		return nil, fmt.Errorf("поле %s должно быть неотрицательным целым, получено: %v", ColParch, row[ColParch])
	}
	p.Parch = parch

	// Обязательные строковые поля
	name, ok := stringCell(row, ColName)
	if !ok {
		return nil, fmt.Errorf("поле %s обязательно, получено: %v", ColName, row[ColName])
	}
	p.Name = name

	sex, ok := stringCell(row, ColSex)
	if !ok || (sex != "male" && sex != "female") {
		return nil, fmt.Errorf("поле %s должно быть male или female, получено: %v", ColSex, row[ColSex])
	}
	p.Sex = sex

	ticket, ok := stringCell(row, ColTicket)
	if !ok {
		return nil, fmt.Errorf("поле %s обязательно, получено: %v", ColTicket, row[ColTicket])
	}
	p.Ticket = ticket

	// Необязательные вещественные поля: отсутствие допустимо,
	// но присутствующее значение должно быть неотрицательным
	if row[ColAge] != nil {
		age, ok := floatCell(row, ColAge)
		if !ok || age < 0 {
			return nil, fmt.Errorf("поле %s должно быть неотрицательным числом, получено: %v", ColAge, row[ColAge])
		}
		p.Age = &age
	}

	if row[ColFare] != nil {
		fare, ok := floatCell(row, ColFare)
		if !ok || fare < 0 {
			return nil, fmt.Errorf("поле %s должно быть неотрицательным числом, получено: %v", ColFare, row[ColFare])
		}
		p.Fare = &fare
	}

	// Необязательные строковые поля
	if row[ColCabin] != nil {
		cabin, ok := stringCell(row, ColCabin)
		if !ok {
			return nil, fmt.Errorf("поле %s должно быть строкой, получено: %v", ColCabin, row[ColCabin])
		}
		p.Cabin = &cabin
	}

	if row[ColEmbarked] != nil {
		embarked, ok := stringCell(row, ColEmbarked)
		if !ok {
			return nil, fmt.Errorf("поле %s должно быть строкой, получено: %v", ColEmbarked, row[ColEmbarked])
		}
		p.Embarked = &embarked
	}

	return p, nil
}
