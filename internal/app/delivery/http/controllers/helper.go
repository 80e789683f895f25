package controllers

import (
	"context"
	"errors"
	"net/http"
	"opd-scheduler-service/internal/pkg/exceptions"
	"opd-scheduler-service/internal/pkg/utils"

	"go.uber.org/zap"
)

// buildUsecaseErrorResponse maps a bare deadline error to 504 and renders everything else as is.
func buildUsecaseErrorResponse(log *zap.Logger, w http.ResponseWriter, err error) {
	var customErr *exceptions.CustomError
	if !errors.As(err, &customErr) && errors.Is(err, context.DeadlineExceeded) {
		utils.BuildErrorResponse(log, w, exceptions.ErrServerDeadlineExceeded(err))
		return
	}
	utils.BuildErrorResponse(log, w, err)
}
