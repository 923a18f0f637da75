package form

import (
	"testing"

	"github.com/Freeeeeet/tutor_market/internal/model"
	"github.com/stretchr/testify/assert"
)

var testGoals = []*model.Goal{
	{ID: 1, Key: "travel", Title: "Для путешествий"},
	{ID: 2, Key: "work", Title: "Для работы"},
}

func validRequest() RequestSubmission {
	return RequestSubmission{
		Name:  "Пётр",
		Phone: "+7 911 000-00-00",
		Goal:  "travel",
		Time:  "3-5 часов в неделю",
	}
}

func TestRequestSubmission_Valid(t *testing.T) {
	errs := validRequest().Validate(testGoals)
	assert.Empty(t, errs)
}

func TestRequestSubmission_EmptyFields(t *testing.T) {
	sub := RequestSubmission{}

	errs := sub.Validate(testGoals)
	assert.Equal(t, "Нужно ввести свое имя", errs["name"])
	assert.Equal(t, "Введите номер телефона", errs["phone"])
	assert.Equal(t, "Нужно выбрать цель", errs["goal"])
	assert.Equal(t, "Выберите количество свободного времени", errs["time"])
}

func TestRequestSubmission_UnknownGoal(t *testing.T) {
	sub := validRequest()
	sub.Goal = "piano"

	errs := sub.Validate(testGoals)
	assert.Contains(t, errs, "goal")
}

// Цели приходят из БД на момент запроса: новая цель проходит
// валидацию без перезапуска процесса.
func TestRequestSubmission_FreshGoalSet(t *testing.T) {
	sub := validRequest()
	sub.Goal = "piano"

	withPiano := append(testGoals, &model.Goal{ID: 3, Key: "piano", Title: "Для музыки"})
	errs := sub.Validate(withPiano)
	assert.Empty(t, errs)
}

func TestRequestSubmission_BadBucket(t *testing.T) {
	sub := validRequest()
	sub.Time = "3-5"

	errs := sub.Validate(testGoals)
	assert.Contains(t, errs, "time")
}

func TestBucketValue(t *testing.T) {
	assert.Equal(t, "1-2", BucketValue("1-2 часа в неделю"))
	assert.Equal(t, "3-5", BucketValue("3-5 часов в неделю"))
	assert.Equal(t, "5-7", BucketValue("5-7 часов в неделю"))
	assert.Equal(t, "7-10", BucketValue("7-10 часов в неделю"))
}
