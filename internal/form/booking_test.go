package form

import (
	"testing"

	"github.com/Freeeeeet/tutor_market/internal/catalog"
	"github.com/stretchr/testify/assert"
)

var testDays = catalog.Days{"mon": "Понедельник", "tue": "Вторник"}

func validBooking() BookingSubmission {
	return BookingSubmission{
		Name:    "Анна",
		Phone:   "+7 900 123-45-67",
		Teacher: 1,
		Weekday: "mon",
		Time:    "14:00",
	}
}

func TestBookingSubmission_Valid(t *testing.T) {
	errs := validBooking().Validate(testDays)
	assert.Empty(t, errs)
}

func TestBookingSubmission_EmptyName(t *testing.T) {
	sub := validBooking()
	sub.Name = ""

	errs := sub.Validate(testDays)
	assert.Equal(t, "Нужно ввести свое имя", errs["client_name"])
}

func TestBookingSubmission_EmptyPhone(t *testing.T) {
	sub := validBooking()
	sub.Phone = ""

	errs := sub.Validate(testDays)
	assert.Equal(t, "Введите номер телефона", errs["client_phone"])
}

func TestBookingSubmission_UnknownWeekday(t *testing.T) {
	sub := validBooking()
	sub.Weekday = "someday"

	errs := sub.Validate(testDays)
	assert.Contains(t, errs, "client_weekday")
}

func TestBookingSubmission_BadTime(t *testing.T) {
	for _, bad := range []string{"", "14", "14:30", "25:00", "ten"} {
		sub := validBooking()
		sub.Time = bad

		errs := sub.Validate(testDays)
		assert.Contains(t, errs, "client_time", "time %q should be rejected", bad)
	}
}

func TestBookingSubmission_TimeFormats(t *testing.T) {
	for _, good := range []string{"9:00", "09:00", "14:00", "23:00"} {
		sub := validBooking()
		sub.Time = good

		errs := sub.Validate(testDays)
		assert.Empty(t, errs, "time %q should be accepted", good)
	}
}

func TestBookingSubmission_MissingTeacher(t *testing.T) {
	sub := validBooking()
	sub.Teacher = 0

	errs := sub.Validate(testDays)
	assert.Contains(t, errs, "client_teacher")
}
