package form

import (
	"regexp"

	"github.com/Freeeeeet/tutor_market/internal/catalog"
)

// Errors ошибки валидации по полям формы. Пустая map - форма валидна.
// Тексты показываются пользователю рядом с полем, поэтому они на русском.
type Errors map[string]string

var timeFormat = regexp.MustCompile(`^([01]?[0-9]|2[0-3]):00$`)

// BookingSubmission данные формы бронирования
type BookingSubmission struct {
	Name    string `json:"client_name"`
	Phone   string `json:"client_phone"`
	Teacher int64  `json:"client_teacher"`
	Weekday string `json:"client_weekday"`
	Time    string `json:"client_time"`
}

// Validate проверяет поля формы бронирования. Каталог дней передаётся
// явно, чтобы не тащить в валидатор состояние приложения.
func (s BookingSubmission) Validate(days catalog.Days) Errors {
	errs := Errors{}

	if s.Name == "" {
		errs["client_name"] = "Нужно ввести свое имя"
	}
	if s.Phone == "" {
		errs["client_phone"] = "Введите номер телефона"
	}
	if s.Teacher <= 0 {
		errs["client_teacher"] = "Не указан преподаватель"
	}
	if !days.Has(s.Weekday) {
		errs["client_weekday"] = "Неизвестный день недели"
	}
	if !timeFormat.MatchString(s.Time) {
		errs["client_time"] = "Время должно быть в формате ЧЧ:00"
	}

	return errs
}
