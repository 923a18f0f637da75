package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/Freeeeeet/tutor_market/internal/form"
	"github.com/Freeeeeet/tutor_market/internal/model"
	"github.com/Freeeeeet/tutor_market/internal/service"
	"github.com/julienschmidt/httprouter"
)

// bookingSlot разбирает и проверяет параметры /booking/:id/:day/:hour/.
// Неизвестный учитель, день не из каталога и нечисловые параметры
// отдают 404.
func (h *Handlers) bookingSlot(w http.ResponseWriter, r *http.Request, ps httprouter.Params) (*model.Teacher, string, int, bool) {
	id, err := strconv.ParseInt(ps.ByName("id"), 10, 64)
	if err != nil {
		h.respondError(w, http.StatusNotFound, "teacher not found")
		return nil, "", 0, false
	}

	hour, err := strconv.Atoi(ps.ByName("hour"))
	if err != nil || hour < 0 || hour > 23 {
		h.respondError(w, http.StatusNotFound, "page not found")
		return nil, "", 0, false
	}

	day := ps.ByName("day")
	if !h.days.Has(day) {
		h.respondError(w, http.StatusNotFound, "unknown weekday")
		return nil, "", 0, false
	}

	teacher, err := h.teacherService.Profile(r.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrNotFound):
			h.respondError(w, http.StatusNotFound, "teacher not found")
		case errors.Is(err, model.ErrMalformedSchedule):
			h.internalError(w, err, "Stored schedule is corrupted")
		default:
			h.internalError(w, err, "Failed to load teacher")
		}
		return nil, "", 0, false
	}

	return teacher, day, hour, true
}

// BookingPage форма бронирования с предзаполненными скрытыми полями
func (h *Handlers) BookingPage(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	teacher, day, hour, ok := h.bookingSlot(w, r, ps)
	if !ok {
		return
	}

	available, err := h.bookingService.IsSlotAvailable(teacher, day, hour)
	if err != nil {
		// день уже проверен по каталогу, сюда попадать не должны
		h.internalError(w, err, "Failed to resolve slot")
		return
	}

	dayLabel, _ := h.days.Label(day)
	h.respondJSON(w, http.StatusOK, map[string]any{
		"teacher":   teacher,
		"day":       day,
		"day_label": dayLabel,
		"time":      fmt.Sprintf("%d:00", hour),
		"available": available,
		"form": form.BookingSubmission{
			Teacher: teacher.ID,
			Weekday: day,
			Time:    fmt.Sprintf("%d:00", hour),
		},
	})
}

// BookingSubmit принимает заполненную форму и создаёт бронирование
func (h *Handlers) BookingSubmit(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	_, _, _, ok := h.bookingSlot(w, r, ps)
	if !ok {
		return
	}

	var sub form.BookingSubmission
	if err := json.NewDecoder(r.Body).Decode(&sub); err != nil {
		h.respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	booking, errs, err := h.bookingService.Submit(r.Context(), sub)
	if err != nil {
		h.internalError(w, err, "Failed to create booking")
		return
	}
	if len(errs) > 0 {
		h.respondFieldErrors(w, errs)
		return
	}

	dayLabel, _ := h.days.Label(booking.Day)
	h.respondJSON(w, http.StatusCreated, map[string]any{
		"ref":        booking.Ref,
		"name":       booking.Name,
		"phone":      booking.Phone,
		"day":        booking.Day,
		"day_label":  dayLabel,
		"time":       booking.Time,
		"teacher_id": booking.TeacherID,
	})
}
