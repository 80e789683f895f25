package appointments

import (
	"encoding/csv"
	"fmt"
	"io"
	"opd-scheduler-service/internal/app/models"
	"strconv"
	"strings"
)

var ledgerCSVHeader = []string{"Name", "Day", "Hour"}

// decodeLedgerCSV parses the Name,Day,Hour format. Any bad row fails the whole read.
func decodeLedgerCSV(r io.Reader) ([]models.Booking, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = len(ledgerCSVHeader)

	records, err := reader.ReadAll()
	if err != nil {
		return nil, err
	}

	bookings := make([]models.Booking, 0, len(records))
	if len(records) == 0 {
		return bookings, nil
	}

	header := records[0]
	header[0] = strings.TrimPrefix(header[0], "\ufeff")
	for i, column := range ledgerCSVHeader {
		if strings.TrimSpace(header[i]) != column {
			return nil, fmt.Errorf("unexpected header %q", strings.Join(header, ","))
		}
	}

	slots := make(slotRegistry, len(records)-1)
	for i, record := range records[1:] {
		line := i + 2
		dayNumber, err := strconv.Atoi(strings.TrimSpace(record[1]))
		if err != nil {
			return nil, fmt.Errorf("line %d: day %q is not a number", line, record[1])
		}
		hour, err := strconv.Atoi(strings.TrimSpace(record[2]))
		if err != nil {
			return nil, fmt.Errorf("line %d: hour %q is not a number", line, record[2])
		}

		booking := models.Booking{Name: record[0], Day: models.Day(dayNumber), Hour: hour}
		if err := booking.Validate(); err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		if err := slots.claim(booking.Slot(), line); err != nil {
			return nil, err
		}
		bookings = append(bookings, booking)
	}
	return bookings, nil
}

func encodeLedgerCSV(w io.Writer, ledger []models.Booking) error {
	writer := csv.NewWriter(w)
	if err := writer.Write(ledgerCSVHeader); err != nil {
		return err
	}
	for _, booking := range ledger {
		record := []string{
			booking.Name,
			strconv.Itoa(booking.Day.Number()),
			strconv.Itoa(booking.Hour),
		}
		if err := writer.Write(record); err != nil {
			return err
		}
	}
	writer.Flush()
	return writer.Error()
}
