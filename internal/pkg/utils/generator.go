package utils

import (
	"fmt"
	"opd-scheduler-service/internal/pkg/constvars"
	"time"

	"github.com/google/uuid"
)

func GenerateRequestID() string {
	return uuid.NewString()
}

func GenerateSnapshotObjectName(now time.Time) string {
	return fmt.Sprintf(constvars.SnapshotObjectFormat, now.UTC().Format(constvars.SnapshotTimeFormat))
}
