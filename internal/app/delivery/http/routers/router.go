package routers

import (
	"fmt"
	"opd-scheduler-service/internal/app/config"
	"opd-scheduler-service/internal/app/delivery/http/controllers"
	"opd-scheduler-service/internal/app/delivery/http/middlewares"
	"opd-scheduler-service/internal/pkg/constvars"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
)

func SetupRoutes(
	router *chi.Mux,
	internalConfig *config.InternalConfig,
	middlewares *middlewares.Middlewares,
	appointmentController *controllers.AppointmentController,
	loadController *controllers.LoadController,
	healthController *controllers.HealthController,
) {
	router.Use(middlewares.RequestIDMiddleware)
	router.Use(middlewares.Logging)
	router.Use(middlewares.ErrorHandler)

	corsOptions := cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type", constvars.HeaderXRequestID, constvars.HeaderAPIKey},
		ExposedHeaders:   []string{constvars.HeaderXRequestID},
		AllowCredentials: false,
		MaxAge:           300,
	}
	router.Use(cors.Handler(corsOptions))

	if internalConfig.App.MaxRequests > 0 {
		// Rate limiting middleware using httprate
		router.Use(httprate.LimitByIP(internalConfig.App.MaxRequests, time.Second))

		if internalConfig.App.MaxTimeRequestsPerSeconds > 0 {
			router.Use(middlewares.BlockingRateLimit())
		}
	}

	router.Use(middlewares.BodyLimit)

	endpointPrefix := fmt.Sprintf("/%s", internalConfig.App.EndpointPrefix)
	versionPrefix := fmt.Sprintf("/%s", internalConfig.App.Version)

	router.Route(endpointPrefix, func(r chi.Router) {
		r.Route(versionPrefix, func(r chi.Router) {
			r.Route(fmt.Sprintf("/%s", constvars.ResourceAppointments), func(r chi.Router) {
				attachAppointmentRoutes(r, middlewares, appointmentController)
			})

			r.Route(fmt.Sprintf("/%s", constvars.ResourceLoad), func(r chi.Router) {
				attachLoadRoutes(r, loadController)
			})

			r.Get(fmt.Sprintf("/%s", constvars.ResourceHealth), healthController.Check)
		})
	})
}
