package utils

import (
	"opd-scheduler-service/internal/pkg/dto/requests"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitizeCreateAppointmentRequest(t *testing.T) {
	t.Run("Name Sanitization", func(t *testing.T) {
		request := &requests.CreateAppointmentRequest{Name: "  Alice   van  Dijk ", Day: "Monday", Hour: 9}

		SanitizeCreateAppointmentRequest(request)

		assert.Equal(t, "Alice van Dijk", request.Name, "name should be trimmed and inner spaces collapsed")
	})

	t.Run("Day Sanitization", func(t *testing.T) {
		request := &requests.CreateAppointmentRequest{Name: "Bob", Day: "  tUESDAY ", Hour: 10}

		SanitizeCreateAppointmentRequest(request)

		assert.Equal(t, "Tuesday", request.Day, "day should be trimmed and capitalized")
		assert.Equal(t, 10, request.Hour)
	})

	t.Run("Blank Name Stays Blank", func(t *testing.T) {
		request := &requests.CreateAppointmentRequest{Name: " \t ", Day: "Friday", Hour: 16}

		SanitizeCreateAppointmentRequest(request)

		assert.Empty(t, request.Name, "whitespace-only names must still fail validation")
	})

	t.Run("Empty Day", func(t *testing.T) {
		request := &requests.CreateAppointmentRequest{Name: "Carol"}

		SanitizeCreateAppointmentRequest(request)

		assert.Empty(t, request.Day)
	})
}

func TestSanitizeFindAvailableSlotsRequest(t *testing.T) {
	request := &requests.FindAvailableSlotsRequest{Day: " wednesday"}

	SanitizeFindAvailableSlotsRequest(request)

	assert.Equal(t, "Wednesday", request.Day)
}
