// services/errors.go
package services

import "fmt"

// ValidationError reports malformed or missing input the caller can fix.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// PastTimeError reports a (date, time) that is already in the past in the
// business time zone.
type PastTimeError struct {
	Date string
	Time string
}

func (e *PastTimeError) Error() string {
	return fmt.Sprintf("slot %s %s is in the past", e.Date, e.Time)
}

// SlotUnavailableError reports a slot that is not configured or already
// fully booked. Callers should re-query availability and pick another time.
type SlotUnavailableError struct {
	Date string
	Time string
}

func (e *SlotUnavailableError) Error() string {
	return fmt.Sprintf("slot %s %s is not available", e.Date, e.Time)
}

// DayHasActiveBookingsError blocks closing a day that still has confirmed
// or completed bookings. Count is surfaced to the admin UI.
type DayHasActiveBookingsError struct {
	Date  string
	Count int
}

func (e *DayHasActiveBookingsError) Error() string {
	return fmt.Sprintf("day %s has %d active booking(s)", e.Date, e.Count)
}

// StorageError wraps an opaque persistence failure.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage: %s: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}
