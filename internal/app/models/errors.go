package models

import "errors"

var (
	ErrEmptyName          = errors.New("empty name")
	ErrSlotConflict       = errors.New("slot conflict")
	ErrInvalidDay         = errors.New("invalid day")
	ErrInvalidHour        = errors.New("invalid hour")
	ErrStorageUnavailable = errors.New("storage unavailable")
	ErrLedgerBusy         = errors.New("ledger busy")
)
