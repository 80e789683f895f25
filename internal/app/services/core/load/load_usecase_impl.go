package load

import (
	"context"
	"fmt"
	"io"
	"opd-scheduler-service/internal/app/config"
	"opd-scheduler-service/internal/app/contracts"
	"opd-scheduler-service/internal/app/models"
	"opd-scheduler-service/internal/pkg/constvars"
	"opd-scheduler-service/internal/pkg/dto/requests"
	"opd-scheduler-service/internal/pkg/exceptions"

	"go.uber.org/zap"
)

type loadUsecase struct {
	Cache          contracts.LoadCache
	InternalConfig *config.InternalConfig
	Log            *zap.Logger
}

// NewLoadUsecase builds the load analysis use case. cache may be nil.
func NewLoadUsecase(cache contracts.LoadCache, internalConfig *config.InternalConfig, logger *zap.Logger) contracts.LoadUsecase {
	return &loadUsecase{
		Cache:          cache,
		InternalConfig: internalConfig,
		Log:            logger,
	}
}

func (uc *loadUsecase) ClusterLoad(ctx context.Context, request *requests.LoadClusteringRequest) (*models.LoadClustering, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("loadUsecase.ClusterLoad called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int64(constvars.LoggingLoadSeedKey, request.Seed),
		zap.Int(constvars.LoggingLoadCountKey, request.Count),
	)

	cacheKey := fmt.Sprintf(constvars.LoadCacheKeyFormat, DefaultClusters, request.Seed, request.Count)
	if uc.Cache != nil {
		cached, ok, err := uc.Cache.Get(ctx, cacheKey)
		if err != nil {
			uc.Log.Warn("loadUsecase.ClusterLoad error reading cache",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.Error(err),
			)
		} else if ok {
			uc.Log.Info("loadUsecase.ClusterLoad succeeded",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.Bool(constvars.LoggingCacheHitKey, true),
			)
			return cached, nil
		}
	}

	clustering := uc.cluster(request.Seed, request.Count)

	if uc.Cache != nil {
		if err := uc.Cache.Set(ctx, cacheKey, clustering); err != nil {
			uc.Log.Warn("loadUsecase.ClusterLoad error writing cache",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.Error(err),
			)
		}
	}

	uc.Log.Info("loadUsecase.ClusterLoad succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Bool(constvars.LoggingCacheHitKey, false),
		zap.Int(constvars.LoggingLoadClustersKey, clustering.K),
	)
	return clustering, nil
}

func (uc *loadUsecase) RenderChart(ctx context.Context, request *requests.LoadClusteringRequest, w io.Writer) error {
	clustering, err := uc.ClusterLoad(ctx, request)
	if err != nil {
		return err
	}

	if err := RenderChart(w, clustering); err != nil {
		requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
		uc.Log.Error("loadUsecase.RenderChart error rendering chart",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return exceptions.ErrServerProcess(err)
	}
	return nil
}

func (uc *loadUsecase) cluster(seed int64, count int) *models.LoadClustering {
	points := Generate(seed, count)
	result := KMeans(points, DefaultClusters)

	clustering := &models.LoadClustering{
		Seed:     seed,
		Count:    count,
		K:        len(result.Centroids),
		Points:   make([]models.ClusteredPoint, len(points)),
		Clusters: make([]models.ClusterSummary, len(result.Centroids)),
	}
	for i, point := range points {
		clustering.Points[i] = models.ClusteredPoint{LoadPoint: point, Cluster: result.Labels[i]}
	}
	for c, centroid := range result.Centroids {
		clustering.Clusters[c] = models.ClusterSummary{
			Label:      c,
			CenterHour: centroid[0],
			CenterDay:  centroid[1],
			Size:       result.Sizes[c],
		}
	}
	return clustering
}
