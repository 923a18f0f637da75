package controller

import (
	"github.com/Freeeeeet/tutor_market/internal/controller/handlers"
	"github.com/julienschmidt/httprouter"
)

// NewRouter собирает роутер со всеми маршрутами сайта
func NewRouter(h *handlers.Handlers) *httprouter.Router {
	router := httprouter.New()
	router.GET("/health", h.Health)

	AddTeacherRoutes(router, h)
	AddBookingRoutes(router, h)
	AddRequestRoutes(router, h)

	return router
}

func AddTeacherRoutes(router *httprouter.Router, h *handlers.Handlers) {
	router.GET("/", h.Main)
	router.GET("/goals/:goal/", h.Goal)
	// /profiles/all/ обслуживается тем же обработчиком, см. Profile
	router.GET("/profiles/:id/", h.Profile)
}

func AddBookingRoutes(router *httprouter.Router, h *handlers.Handlers) {
	router.GET("/booking/:id/:day/:hour/", h.BookingPage)
	router.POST("/booking/:id/:day/:hour/", h.BookingSubmit)
}

func AddRequestRoutes(router *httprouter.Router, h *handlers.Handlers) {
	router.GET("/request/", h.RequestPage)
	router.POST("/request/", h.RequestSubmit)
}
