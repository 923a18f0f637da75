package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/Freeeeeet/tutor_market/internal/model"
	"github.com/Freeeeeet/tutor_market/internal/service"
	"github.com/julienschmidt/httprouter"
)

// Main главная: случайная подборка учителей и все цели
func (h *Handlers) Main(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	teachers, goals, err := h.teacherService.Main(r.Context())
	if err != nil {
		h.internalError(w, err, "Failed to load main page")
		return
	}

	h.respondJSON(w, http.StatusOK, map[string]any{
		"teachers": teachers,
		"goals":    goals,
	})
}

// Goal учителя, отфильтрованные по цели занятий
func (h *Handlers) Goal(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	goal, teachers, err := h.teacherService.ByGoal(r.Context(), ps.ByName("goal"))
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			h.respondError(w, http.StatusNotFound, "goal not found")
			return
		}
		h.internalError(w, err, "Failed to load goal page")
		return
	}

	h.respondJSON(w, http.StatusOK, map[string]any{
		"goal":     goal,
		"teachers": teachers,
	})
}

// Profile профиль учителя с расписанием и целями.
// httprouter не умеет статический маршрут рядом с параметрическим,
// поэтому /profiles/all/ разбирается здесь же.
func (h *Handlers) Profile(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	raw := ps.ByName("id")
	if raw == "all" {
		h.allProfiles(w, r)
		return
	}

	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		h.respondError(w, http.StatusNotFound, "teacher not found")
		return
	}

	teacher, err := h.teacherService.Profile(r.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrNotFound):
			h.respondError(w, http.StatusNotFound, "teacher not found")
		case errors.Is(err, model.ErrMalformedSchedule):
			h.internalError(w, err, "Stored schedule is corrupted")
		default:
			h.internalError(w, err, "Failed to load profile")
		}
		return
	}

	h.respondJSON(w, http.StatusOK, map[string]any{
		"teacher": teacher,
		"goals":   teacher.Goals,
		"days":    h.days,
	})
}

func (h *Handlers) allProfiles(w http.ResponseWriter, r *http.Request) {
	teachers, err := h.teacherService.All(r.Context())
	if err != nil {
		h.internalError(w, err, "Failed to list teachers")
		return
	}

	h.respondJSON(w, http.StatusOK, map[string]any{"teachers": teachers})
}
