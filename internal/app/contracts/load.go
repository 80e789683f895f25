package contracts

import (
	"context"
	"io"
	"opd-scheduler-service/internal/app/models"
	"opd-scheduler-service/internal/pkg/dto/requests"
)

type LoadUsecase interface {
	ClusterLoad(ctx context.Context, request *requests.LoadClusteringRequest) (*models.LoadClustering, error)
	RenderChart(ctx context.Context, request *requests.LoadClusteringRequest, w io.Writer) error
}

// LoadCache stores clustering results keyed by sample parameters. Get reports a miss with ok=false.
type LoadCache interface {
	Get(ctx context.Context, key string) (*models.LoadClustering, bool, error)
	Set(ctx context.Context, key string, value *models.LoadClustering) error
}
