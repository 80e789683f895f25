package routers

import (
	"opd-scheduler-service/internal/app/delivery/http/controllers"

	"github.com/go-chi/chi/v5"
)

func attachLoadRoutes(router chi.Router, loadController *controllers.LoadController) {
	router.Get("/", loadController.FindClusters)
	router.Get("/chart.svg", loadController.RenderChart)
}
