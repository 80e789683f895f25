package utils

import (
	"opd-scheduler-service/internal/pkg/dto/requests"
	"strings"
	"unicode"
)

// capitalize upper-cases the first rune and lower-cases the rest.
func capitalize(input string) string {
	if len(input) == 0 {
		return input
	}
	runes := []rune(input)
	runes[0] = unicode.ToUpper(runes[0])
	for i := 1; i < len(runes); i++ {
		runes[i] = unicode.ToLower(runes[i])
	}
	return string(runes)
}

func SanitizeCreateAppointmentRequest(input *requests.CreateAppointmentRequest) {
	input.Name = strings.Join(strings.Fields(input.Name), " ")
	input.Day = capitalize(strings.TrimSpace(input.Day))
}

func SanitizeFindAvailableSlotsRequest(input *requests.FindAvailableSlotsRequest) {
	input.Day = capitalize(strings.TrimSpace(input.Day))
}
