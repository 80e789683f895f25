package controllers

import (
	"bytes"
	"context"
	"net/http"
	"opd-scheduler-service/internal/app/config"
	"opd-scheduler-service/internal/app/contracts"
	"opd-scheduler-service/internal/pkg/constvars"
	"opd-scheduler-service/internal/pkg/dto/requests"
	"opd-scheduler-service/internal/pkg/exceptions"
	"opd-scheduler-service/internal/pkg/utils"

	"go.uber.org/zap"
)

type LoadController struct {
	Log            *zap.Logger
	LoadUsecase    contracts.LoadUsecase
	InternalConfig *config.InternalConfig
}

func NewLoadController(logger *zap.Logger, loadUsecase contracts.LoadUsecase, internalConfig *config.InternalConfig) *LoadController {
	return &LoadController{
		Log:            logger,
		LoadUsecase:    loadUsecase,
		InternalConfig: internalConfig,
	}
}

// parseRequest builds and validates the seed/count query, writing the error response itself on failure.
func (ctrl *LoadController) parseRequest(w http.ResponseWriter, r *http.Request, requestID string) (*requests.LoadClusteringRequest, bool) {
	request, param, err := utils.BuildLoadClusteringRequest(r, ctrl.InternalConfig.Load.DefaultSeed, ctrl.InternalConfig.Load.DefaultCount)
	if err != nil {
		ctrl.Log.Error("LoadController.parseRequest invalid query parameter",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingQueryKey, param),
			zap.Error(err))
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInvalidQueryParam(err, param))
		return nil, false
	}

	err = utils.ValidateStruct(request)
	if err != nil {
		ctrl.Log.Error("LoadController.parseRequest validation failed",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err))
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return nil, false
	}
	return request, true
}

func (ctrl *LoadController) FindClusters(w http.ResponseWriter, r *http.Request) {
	requestID, ok := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	if !ok {
		ctrl.Log.Error("LoadController.FindClusters requestID not found in context")
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrMissingRequestID(nil))
		return
	}

	ctrl.Log.Info("LoadController.FindClusters called",
		zap.String(constvars.LoggingRequestIDKey, requestID))

	request, ok := ctrl.parseRequest(w, r, requestID)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), ctrl.InternalConfig.RequestTimeout())
	defer cancel()

	response, err := ctrl.LoadUsecase.ClusterLoad(ctx, request)
	if err != nil {
		ctrl.Log.Error("Error in LoadUsecase.ClusterLoad",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err))
		buildUsecaseErrorResponse(ctrl.Log, w, err)
		return
	}

	ctrl.Log.Info("LoadController.FindClusters succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingLoadClustersKey, response.K))
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetLoadClustersSuccessMessage, response)
}

func (ctrl *LoadController) RenderChart(w http.ResponseWriter, r *http.Request) {
	requestID, ok := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	if !ok {
		ctrl.Log.Error("LoadController.RenderChart requestID not found in context")
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrMissingRequestID(nil))
		return
	}

	ctrl.Log.Info("LoadController.RenderChart called",
		zap.String(constvars.LoggingRequestIDKey, requestID))

	request, ok := ctrl.parseRequest(w, r, requestID)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), ctrl.InternalConfig.RequestTimeout())
	defer cancel()

	var svg bytes.Buffer
	err := ctrl.LoadUsecase.RenderChart(ctx, request, &svg)
	if err != nil {
		ctrl.Log.Error("Error in LoadUsecase.RenderChart",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err))
		buildUsecaseErrorResponse(ctrl.Log, w, err)
		return
	}

	w.Header().Set(constvars.HeaderContentType, constvars.MIMEImageSVG)
	w.WriteHeader(constvars.StatusOK)
	w.Write(svg.Bytes())
}
