package load

import (
	"math"
	"math/rand"
	"opd-scheduler-service/internal/app/models"
)

const (
	DefaultClusters     = 4
	kmeansSeed          = 42
	kmeansMaxIterations = 300
)

type vector [2]float64

func distance2(a, b vector) float64 {
	dx, dy := a[0]-b[0], a[1]-b[1]
	return dx*dx + dy*dy
}

// kmeansResult holds one label per input point plus the final centroids.
type kmeansResult struct {
	Labels    []int
	Centroids []vector
	Sizes     []int
}

// KMeans groups points with Lloyd's algorithm from a fixed k-means++ seeding.
// k shrinks to the number of distinct points when there are fewer of them.
func KMeans(points []models.LoadPoint, k int) kmeansResult {
	if len(points) == 0 || k <= 0 {
		return kmeansResult{Labels: []int{}}
	}

	data := make([]vector, len(points))
	distinct := make(map[vector]struct{}, len(points))
	for i, p := range points {
		data[i] = vector{float64(p.Hour), float64(p.Day)}
		distinct[data[i]] = struct{}{}
	}
	if len(distinct) < k {
		k = len(distinct)
	}

	centroids := seedCentroids(data, k, rand.New(rand.NewSource(kmeansSeed)))
	labels := make([]int, len(data))
	for i := range labels {
		labels[i] = -1
	}

	for iter := 0; iter < kmeansMaxIterations; iter++ {
		changed := false
		for i, v := range data {
			nearest := nearestCentroid(v, centroids)
			if labels[i] != nearest {
				labels[i] = nearest
				changed = true
			}
		}
		if !changed {
			break
		}

		sums := make([]vector, k)
		counts := make([]int, k)
		for i, v := range data {
			sums[labels[i]][0] += v[0]
			sums[labels[i]][1] += v[1]
			counts[labels[i]]++
		}
		for c := range centroids {
			// an empty cluster keeps its previous centroid
			if counts[c] == 0 {
				continue
			}
			centroids[c] = vector{sums[c][0] / float64(counts[c]), sums[c][1] / float64(counts[c])}
		}
	}

	sizes := make([]int, k)
	for _, label := range labels {
		sizes[label]++
	}
	return kmeansResult{Labels: labels, Centroids: centroids, Sizes: sizes}
}

// seedCentroids implements k-means++: each next centroid is drawn with probability
// proportional to its squared distance from the nearest chosen one.
func seedCentroids(data []vector, k int, rng *rand.Rand) []vector {
	centroids := make([]vector, 0, k)
	centroids = append(centroids, data[rng.Intn(len(data))])

	weights := make([]float64, len(data))
	for len(centroids) < k {
		total := 0.0
		for i, v := range data {
			weights[i] = distance2(v, centroids[nearestCentroid(v, centroids)])
			total += weights[i]
		}

		target := rng.Float64() * total
		chosen := -1
		for i, w := range weights {
			if w == 0 {
				continue
			}
			chosen = i
			target -= w
			if target <= 0 {
				break
			}
		}
		centroids = append(centroids, data[chosen])
	}
	return centroids
}

func nearestCentroid(v vector, centroids []vector) int {
	best, bestDist := 0, math.Inf(1)
	for c, centroid := range centroids {
		if d := distance2(v, centroid); d < bestDist {
			best, bestDist = c, d
		}
	}
	return best
}
