package load

import (
	"bytes"
	"context"
	"opd-scheduler-service/internal/app/config"
	"opd-scheduler-service/internal/app/models"
	"opd-scheduler-service/internal/pkg/dto/requests"
	"strings"
	"testing"
	"time"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// memoryRedis implements contracts.RedisRepository for Get/Set only.
type memoryRedis struct {
	values map[string]string
	sets   int
}

func (m *memoryRedis) Delete(ctx context.Context, key string) error {
	delete(m.values, key)
	return nil
}

func (m *memoryRedis) Set(ctx context.Context, key string, value interface{}, exp time.Duration) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	m.values[key] = string(raw)
	m.sets++
	return nil
}

func (m *memoryRedis) Get(ctx context.Context, key string) (string, error) {
	return m.values[key], nil
}

func (m *memoryRedis) TrySetNX(ctx context.Context, key string, value interface{}, exp time.Duration) (bool, error) {
	return false, nil
}

func (m *memoryRedis) DeleteIfEquals(ctx context.Context, key string, value interface{}) (bool, error) {
	return false, nil
}

func testLoadConfig() *config.InternalConfig {
	return &config.InternalConfig{Load: config.Load{DefaultSeed: 42, DefaultCount: 100}}
}

func TestLoadUsecase_ClusterLoadUsesCache(t *testing.T) {
	redis := &memoryRedis{values: map[string]string{}}
	uc := NewLoadUsecase(NewLoadRedisCache(redis, time.Minute), testLoadConfig(), zap.NewNop())
	ctx := context.Background()
	request := &requests.LoadClusteringRequest{Seed: 42, Count: 100}

	first, err := uc.ClusterLoad(ctx, request)
	require.NoError(t, err)
	assert.Equal(t, 4, first.K)
	assert.Len(t, first.Points, 100)
	assert.Len(t, first.Clusters, 4)
	assert.Equal(t, 1, redis.sets)
	assert.Contains(t, redis.values, "opd:load:k:4:seed:42:count:100")

	second, err := uc.ClusterLoad(ctx, request)
	require.NoError(t, err)
	assert.Equal(t, 1, redis.sets, "second call is served from cache")
	assert.Equal(t, first, second)
}

func TestLoadUsecase_ClusterLoadWithoutCache(t *testing.T) {
	uc := NewLoadUsecase(nil, testLoadConfig(), zap.NewNop())

	clustering, err := uc.ClusterLoad(context.Background(), &requests.LoadClusteringRequest{Seed: 1, Count: 3})
	require.NoError(t, err)
	assert.LessOrEqual(t, clustering.K, 3)
	for _, point := range clustering.Points {
		assert.Less(t, point.Cluster, clustering.K)
	}
}

func TestLoadUsecase_RenderChart(t *testing.T) {
	uc := NewLoadUsecase(nil, testLoadConfig(), zap.NewNop())

	var buf bytes.Buffer
	err := uc.RenderChart(context.Background(), &requests.LoadClusteringRequest{Seed: 42, Count: 100}, &buf)
	require.NoError(t, err)

	svg := buf.String()
	assert.True(t, strings.HasPrefix(svg, "<svg"))
	assert.Contains(t, svg, ChartTitle)
	assert.Contains(t, svg, ">Hour<")
	assert.Contains(t, svg, ">Day<")
	for _, name := range []string{"Cluster 0", "Cluster 1", "Cluster 2", "Cluster 3"} {
		assert.Contains(t, svg, name)
	}
	assert.Equal(t, 100, strings.Count(svg, "<circle"))
}

func TestRenderChartRejectsUnknownCluster(t *testing.T) {
	clustering := &models.LoadClustering{
		K:      1,
		Points: []models.ClusteredPoint{{LoadPoint: models.LoadPoint{Hour: 9, Day: 1}, Cluster: 3}},
	}
	assert.Error(t, RenderChart(&bytes.Buffer{}, clustering))
}
