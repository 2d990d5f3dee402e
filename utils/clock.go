// utils/clock.go
package utils

import (
	"log"
	"os"
	"time"
)

const (
	DateFormat = "2006-01-02"
	TimeFormat = "15:04"
)

// BusinessClock supplies "now" in the business's configured time zone.
// Every past/future comparison in the system goes through it so the day
// boundary and the wall clock always use the same zone.
type BusinessClock struct {
	Location *time.Location
}

// NewBusinessClock reads BUSINESS_TIMEZONE (IANA name) and falls back to
// Europe/Madrid, the zone the business operates in.
func NewBusinessClock() *BusinessClock {
	name := os.Getenv("BUSINESS_TIMEZONE")
	if name == "" {
		name = "Europe/Madrid"
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		log.Printf("Invalid BUSINESS_TIMEZONE %q, using UTC: %v", name, err)
		loc = time.UTC
	}
	return &BusinessClock{Location: loc}
}

func (bc *BusinessClock) Now() time.Time {
	return time.Now().In(bc.Location)
}

// SlotMoment builds the instant a slot starts: the booking day's calendar
// date combined with an "HH:MM" time, interpreted in the business zone.
func (bc *BusinessClock) SlotMoment(date time.Time, hhmm string) (time.Time, error) {
	t, err := time.Parse(TimeFormat, hhmm)
	if err != nil {
		return time.Time{}, err
	}
	year, month, day := date.Date()
	return time.Date(year, month, day, t.Hour(), t.Minute(), 0, 0, bc.Location), nil
}

// IsPast reports whether the (date, time) slot starts strictly before now.
func (bc *BusinessClock) IsPast(date time.Time, hhmm string, now time.Time) bool {
	moment, err := bc.SlotMoment(date, hhmm)
	if err != nil {
		return false
	}
	return moment.Before(now)
}

// ParseDate parses a "YYYY-MM-DD" calendar day. The result is midnight UTC,
// matching how date columns are stored.
func ParseDate(value string) (time.Time, error) {
	return time.Parse(DateFormat, value)
}

func BeginningOfDay(t time.Time) time.Time {
	year, month, day := t.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, t.Location())
}
