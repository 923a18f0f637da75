package form

import (
	"slices"
	"strings"

	"github.com/Freeeeeet/tutor_market/internal/model"
)

// WeeklyHours варианты ответа "сколько времени есть", как на форме
var WeeklyHours = []string{
	"1-2 часа в неделю",
	"3-5 часов в неделю",
	"5-7 часов в неделю",
	"7-10 часов в неделю",
}

// RequestSubmission данные формы заявки на подбор преподавателя
type RequestSubmission struct {
	Name  string `json:"name"`
	Phone string `json:"phone"`
	Goal  string `json:"goal"`
	Time  string `json:"time"`
}

// Validate проверяет поля заявки. Список целей передаётся актуальный,
// из БД на момент запроса - новые цели подхватываются без рестарта.
func (s RequestSubmission) Validate(goals []*model.Goal) Errors {
	errs := Errors{}

	if s.Name == "" {
		errs["name"] = "Нужно ввести свое имя"
	}
	if s.Phone == "" {
		errs["phone"] = "Введите номер телефона"
	}
	if !slices.ContainsFunc(goals, func(g *model.Goal) bool { return g.Key == s.Goal }) {
		errs["goal"] = "Нужно выбрать цель"
	}
	if !slices.Contains(WeeklyHours, s.Time) {
		errs["time"] = "Выберите количество свободного времени"
	}

	return errs
}

// BucketValue превращает вариант ответа в хранимое значение:
// "3-5 часов в неделю" -> "3-5"
func BucketValue(bucket string) string {
	return strings.SplitN(bucket, " ", 2)[0]
}
