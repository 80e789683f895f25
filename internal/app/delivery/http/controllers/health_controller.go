package controllers

import (
	"net/http"
	"opd-scheduler-service/internal/app/config"
	"opd-scheduler-service/internal/pkg/constvars"
	"opd-scheduler-service/internal/pkg/dto/responses"
	"opd-scheduler-service/internal/pkg/utils"
)

type HealthController struct {
	InternalConfig *config.InternalConfig
}

func NewHealthController(internalConfig *config.InternalConfig) *HealthController {
	return &HealthController{InternalConfig: internalConfig}
}

func (ctrl *HealthController) Check(w http.ResponseWriter, r *http.Request) {
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.HealthCheckSuccessMessage, responses.Health{
		Status:       "ok",
		Version:      ctrl.InternalConfig.App.Version,
		LedgerDriver: ctrl.InternalConfig.Ledger.Driver,
		LockerDriver: ctrl.InternalConfig.Locker.Driver,
	})
}
