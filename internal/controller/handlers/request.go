package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/Freeeeeet/tutor_market/internal/form"
	"github.com/julienschmidt/httprouter"
)

// RequestPage форма заявки: актуальные цели и варианты времени
func (h *Handlers) RequestPage(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	goals, err := h.requestService.Choices(r.Context())
	if err != nil {
		h.internalError(w, err, "Failed to load request form")
		return
	}

	h.respondJSON(w, http.StatusOK, map[string]any{
		"goals":        goals,
		"time_options": form.WeeklyHours,
	})
}

// RequestSubmit принимает заявку на подбор преподавателя
func (h *Handlers) RequestSubmit(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var sub form.RequestSubmission
	if err := json.NewDecoder(r.Body).Decode(&sub); err != nil {
		h.respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	request, goal, errs, err := h.requestService.Submit(r.Context(), sub)
	if err != nil {
		h.internalError(w, err, "Failed to create request")
		return
	}
	if len(errs) > 0 {
		h.respondFieldErrors(w, errs)
		return
	}

	h.respondJSON(w, http.StatusCreated, map[string]any{
		"ref":   request.Ref,
		"name":  request.Name,
		"phone": request.Phone,
		"goal":  goal,
		"time":  sub.Time,
	})
}
