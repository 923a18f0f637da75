package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/Freeeeeet/tutor_market/internal/catalog"
	"github.com/Freeeeeet/tutor_market/internal/form"
	"github.com/Freeeeeet/tutor_market/internal/service"
	"github.com/julienschmidt/httprouter"
	"go.uber.org/zap"
)

type Handlers struct {
	teacherService *service.TeacherService
	bookingService *service.BookingService
	requestService *service.RequestService
	days           catalog.Days
	logger         *zap.Logger
}

func New(
	teacherService *service.TeacherService,
	bookingService *service.BookingService,
	requestService *service.RequestService,
	days catalog.Days,
	logger *zap.Logger,
) *Handlers {
	return &Handlers{
		teacherService: teacherService,
		bookingService: bookingService,
		requestService: requestService,
		days:           days,
		logger:         logger,
	}
}

// Health проверка живости сервиса
func (h *Handlers) Health(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	fmt.Fprint(w, "200")
}

func (h *Handlers) respondJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		h.logger.Error("Failed to encode response", zap.Error(err))
	}
}

func (h *Handlers) respondError(w http.ResponseWriter, status int, message string) {
	h.respondJSON(w, status, map[string]string{"error": message})
}

// respondFieldErrors отдаёт форму обратно с ошибками по полям,
// клиент перерисовывает форму с этими сообщениями
func (h *Handlers) respondFieldErrors(w http.ResponseWriter, errs form.Errors) {
	h.respondJSON(w, http.StatusUnprocessableEntity, map[string]any{"errors": errs})
}

func (h *Handlers) internalError(w http.ResponseWriter, err error, context string) {
	h.logger.Error(context, zap.Error(err))
	h.respondError(w, http.StatusInternalServerError, "internal error")
}
