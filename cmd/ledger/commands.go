package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"opd-scheduler-service/internal/app/contracts"
	"opd-scheduler-service/internal/pkg/dto/requests"
	"opd-scheduler-service/internal/pkg/exceptions"
	"opd-scheduler-service/internal/pkg/utils"
	"strconv"
)

func runBook(ctx context.Context, usecase contracts.AppointmentUsecase, args []string, out io.Writer) error {
	fs := flag.NewFlagSet("book", flag.ContinueOnError)
	fs.SetOutput(out)
	name := fs.String("name", "", "patient name")
	day := fs.String("day", "", "Monday..Friday")
	hour := fs.Int("hour", 0, "start hour 9..16")
	if err := fs.Parse(args); err != nil {
		return err
	}

	request := &requests.CreateAppointmentRequest{Name: *name, Day: *day, Hour: *hour}
	utils.SanitizeCreateAppointmentRequest(request)
	if err := utils.ValidateStruct(request); err != nil {
		return exceptions.ErrInputValidation(err)
	}

	response, err := usecase.BookAppointment(ctx, request)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(out, response.Message)
	return err
}

func runList(ctx context.Context, usecase contracts.AppointmentUsecase, out io.Writer) error {
	bookings, err := usecase.ListAppointments(ctx)
	if err != nil {
		return err
	}
	if len(bookings) == 0 {
		_, err = fmt.Fprintln(out, "No appointments booked yet.")
		return err
	}

	rows := make([][]string, 0, len(bookings))
	for _, booking := range bookings {
		rows = append(rows, []string{booking.Name, booking.Day, strconv.Itoa(booking.Hour)})
	}
	return printTable(out, "NAME\tDAY\tHOUR", rows)
}

func runSlots(ctx context.Context, usecase contracts.AppointmentUsecase, args []string, out io.Writer) error {
	fs := flag.NewFlagSet("slots", flag.ContinueOnError)
	fs.SetOutput(out)
	day := fs.String("day", "", "restrict to one day")
	if err := fs.Parse(args); err != nil {
		return err
	}

	request := &requests.FindAvailableSlotsRequest{Day: *day}
	if err := utils.ValidateStruct(request); err != nil {
		return exceptions.ErrInputValidation(err)
	}

	slots, err := usecase.FindAvailableSlots(ctx, request)
	if err != nil {
		return err
	}

	rows := make([][]string, 0, len(slots))
	for _, slot := range slots {
		rows = append(rows, []string{slot.Day, strconv.Itoa(slot.Hour), slot.SlotLabel})
	}
	return printTable(out, "DAY\tHOUR\tSLOT", rows)
}
