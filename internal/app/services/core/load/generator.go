package load

import (
	"math/rand"
	"opd-scheduler-service/internal/app/models"
)

// Generate draws count synthetic visits. The same seed always yields the same sample.
func Generate(seed int64, count int) []models.LoadPoint {
	if count <= 0 {
		return []models.LoadPoint{}
	}

	rng := rand.New(rand.NewSource(seed))
	hours := make([]int, count)
	for i := range hours {
		hours[i] = models.FirstSlotHour + rng.Intn(models.LastSlotHour-models.FirstSlotHour+1)
	}

	points := make([]models.LoadPoint, count)
	for i := range points {
		points[i] = models.LoadPoint{
			Hour: hours[i],
			Day:  int(models.Monday) + rng.Intn(len(models.WorkingDays)),
		}
	}
	return points
}
