package models

import (
	"fmt"
	"strconv"
)

// Day is a clinic working day. Its ordinal is the canonical stored form.
type Day int

const (
	Monday Day = iota + 1
	Tuesday
	Wednesday
	Thursday
	Friday
)

var dayNames = [...]string{
	Monday:    "Monday",
	Tuesday:   "Tuesday",
	Wednesday: "Wednesday",
	Thursday:  "Thursday",
	Friday:    "Friday",
}

// WorkingDays lists every Day in calendar order.
var WorkingDays = []Day{Monday, Tuesday, Wednesday, Thursday, Friday}

func (d Day) Valid() bool {
	return d >= Monday && d <= Friday
}

func (d Day) Number() int {
	return int(d)
}

func (d Day) String() string {
	if !d.Valid() {
		return "Day(" + strconv.Itoa(int(d)) + ")"
	}
	return dayNames[d]
}

// DayFromNumber converts a stored ordinal back into a Day.
func DayFromNumber(n int) (Day, error) {
	d := Day(n)
	if !d.Valid() {
		return 0, fmt.Errorf("%w: %d", ErrInvalidDay, n)
	}
	return d, nil
}

// ParseDay converts a display name such as "Monday" into a Day.
func ParseDay(name string) (Day, error) {
	for _, d := range WorkingDays {
		if dayNames[d] == name {
			return d, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidDay, name)
}

// DayNameToNumber maps Monday..Friday onto 1..5.
func DayNameToNumber(name string) (int, error) {
	d, err := ParseDay(name)
	if err != nil {
		return 0, err
	}
	return d.Number(), nil
}

// DayNumberToName maps 1..5 onto Monday..Friday.
func DayNumberToName(n int) (string, error) {
	d, err := DayFromNumber(n)
	if err != nil {
		return "", err
	}
	return d.String(), nil
}
