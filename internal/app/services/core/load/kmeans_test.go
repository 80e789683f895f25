package load

import (
	"opd-scheduler-service/internal/app/models"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKMeansLabelsEveryPoint(t *testing.T) {
	points := Generate(42, 100)
	result := KMeans(points, DefaultClusters)

	require.Len(t, result.Labels, len(points))
	require.Len(t, result.Centroids, DefaultClusters)
	total := 0
	for _, size := range result.Sizes {
		total += size
	}
	assert.Equal(t, len(points), total)
	for _, label := range result.Labels {
		assert.GreaterOrEqual(t, label, 0)
		assert.Less(t, label, DefaultClusters)
	}

	assert.Equal(t, result, KMeans(points, DefaultClusters), "clustering is deterministic")
}

func TestKMeansSeparatesObviousGroups(t *testing.T) {
	points := []models.LoadPoint{
		{Hour: 9, Day: 1}, {Hour: 9, Day: 1}, {Hour: 10, Day: 1},
		{Hour: 16, Day: 5}, {Hour: 16, Day: 5}, {Hour: 15, Day: 5},
	}
	result := KMeans(points, 2)

	assert.Equal(t, result.Labels[0], result.Labels[1])
	assert.Equal(t, result.Labels[0], result.Labels[2])
	assert.Equal(t, result.Labels[3], result.Labels[4])
	assert.Equal(t, result.Labels[3], result.Labels[5])
	assert.NotEqual(t, result.Labels[0], result.Labels[3])
}

func TestKMeansReducesKForFewDistinctPoints(t *testing.T) {
	points := []models.LoadPoint{{Hour: 9, Day: 1}, {Hour: 9, Day: 1}, {Hour: 12, Day: 3}}
	result := KMeans(points, 4)

	assert.Len(t, result.Centroids, 2)
	assert.Equal(t, []int{2, 1}, sortedSizes(result.Sizes))

	assert.Empty(t, KMeans(nil, 4).Labels)
}

func sortedSizes(sizes []int) []int {
	out := append([]int(nil), sizes...)
	if len(out) == 2 && out[0] < out[1] {
		out[0], out[1] = out[1], out[0]
	}
	return out
}
