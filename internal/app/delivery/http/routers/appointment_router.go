package routers

import (
	"opd-scheduler-service/internal/app/delivery/http/controllers"
	"opd-scheduler-service/internal/app/delivery/http/middlewares"

	"github.com/go-chi/chi/v5"
)

func attachAppointmentRoutes(router chi.Router, middlewares *middlewares.Middlewares, appointmentController *controllers.AppointmentController) {
	router.Get("/", appointmentController.FindAll)
	router.Post("/", appointmentController.CreateAppointment)
	router.Get("/slots", appointmentController.FindAvailableSlots)
	router.With(middlewares.RequireSuperadminAPIKey).Post("/snapshots", appointmentController.ExportSnapshot)
}
