package services

import (
	"testing"
	"time"

	"reservapro-backend/models"
	"reservapro-backend/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var madrid = time.FixedZone("CET", 1*60*60)

func testClock() *utils.BusinessClock {
	return &utils.BusinessClock{Location: madrid}
}

func day(value string) time.Time {
	d, err := utils.ParseDate(value)
	if err != nil {
		panic(err)
	}
	return d
}

func slot(date, hhmm string, max int) models.AvailableSlot {
	return models.AvailableSlot{Date: day(date), Time: hhmm, MaxBookings: max}
}

func confirmed(date, hhmm string) models.Booking {
	return models.Booking{Date: day(date), Time: hhmm, Status: models.BookingStatusConfirmed}
}

func TestResolveSlotsEmptyDay(t *testing.T) {
	now := time.Date(2025, 11, 1, 10, 0, 0, 0, madrid)

	result := ResolveSlots(nil, nil, testClock(), now)

	assert.Empty(t, result)
}

func TestResolveSlotsAllFree(t *testing.T) {
	now := time.Date(2025, 11, 1, 10, 0, 0, 0, madrid)
	slots := []models.AvailableSlot{
		slot("2025-11-10", "09:00", 1),
		slot("2025-11-10", "09:30", 1),
	}

	result := ResolveSlots(slots, nil, testClock(), now)

	require.Len(t, result, 2)
	for _, entry := range result {
		assert.True(t, entry.Available)
		assert.False(t, entry.IsPast)
		assert.Equal(t, 1, entry.SpotsLeft)
	}
}

func TestResolveSlotsOccupancyRecountedFromBookings(t *testing.T) {
	now := time.Date(2025, 11, 1, 10, 0, 0, 0, madrid)
	// Stored counter says free, bookings say otherwise; the recount wins
	full := slot("2025-11-10", "09:00", 1)
	full.CurrentBookings = 0
	slots := []models.AvailableSlot{full, slot("2025-11-10", "09:30", 1)}
	bookings := []models.Booking{confirmed("2025-11-10", "09:00")}

	result := ResolveSlots(slots, bookings, testClock(), now)

	require.Len(t, result, 2)
	assert.False(t, result[0].Available)
	assert.Equal(t, 0, result[0].SpotsLeft)
	assert.Equal(t, 1, result[0].CurrentBookings)
	assert.True(t, result[1].Available)
}

func TestResolveSlotsIgnoresNonConfirmedBookings(t *testing.T) {
	now := time.Date(2025, 11, 1, 10, 0, 0, 0, madrid)
	slots := []models.AvailableSlot{slot("2025-11-10", "09:00", 1)}
	cancelled := confirmed("2025-11-10", "09:00")
	cancelled.Status = models.BookingStatusCancelled

	result := ResolveSlots(slots, []models.Booking{cancelled}, testClock(), now)

	require.Len(t, result, 1)
	assert.True(t, result[0].Available)
	assert.Equal(t, 0, result[0].CurrentBookings)
}

func TestResolveSlotsFullSlotUnavailableRegardlessOfTime(t *testing.T) {
	// Future slot, but capacity exhausted
	now := time.Date(2025, 11, 1, 10, 0, 0, 0, madrid)
	slots := []models.AvailableSlot{slot("2025-11-10", "09:00", 2)}
	bookings := []models.Booking{
		confirmed("2025-11-10", "09:00"),
		confirmed("2025-11-10", "09:00"),
	}

	result := ResolveSlots(slots, bookings, testClock(), now)

	require.Len(t, result, 1)
	assert.False(t, result[0].Available)
	assert.Equal(t, 0, result[0].SpotsLeft)
	assert.False(t, result[0].IsPast)
}

func TestResolveSlotsPastDay(t *testing.T) {
	now := time.Date(2025, 11, 11, 8, 0, 0, 0, madrid)
	slots := []models.AvailableSlot{
		slot("2025-11-10", "09:00", 1),
		slot("2025-11-10", "18:00", 1),
	}

	result := ResolveSlots(slots, nil, testClock(), now)

	require.Len(t, result, 2)
	for _, entry := range result {
		assert.True(t, entry.IsPast)
		assert.False(t, entry.Available)
	}
}

func TestResolveSlotsSameDayPastTimesOnly(t *testing.T) {
	// 12:00 on the slot day in business time: morning gone, afternoon open
	now := time.Date(2025, 11, 10, 12, 0, 0, 0, madrid)
	slots := []models.AvailableSlot{
		slot("2025-11-10", "09:00", 1),
		slot("2025-11-10", "16:00", 1),
	}

	result := ResolveSlots(slots, nil, testClock(), now)

	require.Len(t, result, 2)
	assert.True(t, result[0].IsPast)
	assert.False(t, result[0].Available)
	assert.False(t, result[1].IsPast)
	assert.True(t, result[1].Available)
}

func TestResolveSlotsOrderedByTime(t *testing.T) {
	now := time.Date(2025, 11, 1, 10, 0, 0, 0, madrid)
	slots := []models.AvailableSlot{
		slot("2025-11-10", "16:00", 1),
		slot("2025-11-10", "09:00", 1),
		slot("2025-11-10", "12:30", 1),
	}

	result := ResolveSlots(slots, nil, testClock(), now)

	require.Len(t, result, 3)
	assert.Equal(t, "09:00", result[0].Time)
	assert.Equal(t, "12:30", result[1].Time)
	assert.Equal(t, "16:00", result[2].Time)
}

func TestResolveSlotsIdempotent(t *testing.T) {
	now := time.Date(2025, 11, 1, 10, 0, 0, 0, madrid)
	slots := []models.AvailableSlot{
		slot("2025-11-10", "09:00", 2),
		slot("2025-11-10", "09:30", 1),
	}
	bookings := []models.Booking{confirmed("2025-11-10", "09:00")}

	first := ResolveSlots(slots, bookings, testClock(), now)
	second := ResolveSlots(slots, bookings, testClock(), now)

	assert.Equal(t, first, second)
}

func TestResolveSlotsSpotsLeft(t *testing.T) {
	now := time.Date(2025, 11, 1, 10, 0, 0, 0, madrid)
	slots := []models.AvailableSlot{slot("2025-11-10", "09:00", 3)}
	bookings := []models.Booking{confirmed("2025-11-10", "09:00")}

	result := ResolveSlots(slots, bookings, testClock(), now)

	require.Len(t, result, 1)
	assert.Equal(t, 2, result[0].SpotsLeft)
	assert.True(t, result[0].Available)
}

func TestValidateBookingInputRequiredFields(t *testing.T) {
	svc := NewAvailabilityService(nil, testClock())
	valid := BookingInput{
		Name:  "A",
		Email: "a@x.com",
		Phone: "1234567",
		Date:  "2025-11-10",
		Time:  "09:00",
	}

	cases := []struct {
		field  string
		mutate func(*BookingInput)
	}{
		{"name", func(in *BookingInput) { in.Name = "" }},
		{"email", func(in *BookingInput) { in.Email = "" }},
		{"phone", func(in *BookingInput) { in.Phone = "" }},
		{"date", func(in *BookingInput) { in.Date = "" }},
		{"time", func(in *BookingInput) { in.Time = "" }},
	}

	for _, tc := range cases {
		input := valid
		tc.mutate(&input)

		err := svc.validateBookingInput(input)

		var validationErr *ValidationError
		require.ErrorAs(t, err, &validationErr, "field %s", tc.field)
		assert.Equal(t, tc.field, validationErr.Field)
	}

	assert.NoError(t, svc.validateBookingInput(valid))
}

func TestValidateBookingInputFormats(t *testing.T) {
	svc := NewAvailabilityService(nil, testClock())
	valid := BookingInput{
		Name:  "A",
		Email: "a@x.com",
		Phone: "1234567",
		Date:  "2025-11-10",
		Time:  "09:00",
	}

	bad := valid
	bad.Email = "not-an-email"
	var validationErr *ValidationError
	require.ErrorAs(t, svc.validateBookingInput(bad), &validationErr)
	assert.Equal(t, "email", validationErr.Field)

	bad = valid
	bad.Phone = "12345" // too short
	require.ErrorAs(t, svc.validateBookingInput(bad), &validationErr)
	assert.Equal(t, "phone", validationErr.Field)

	bad = valid
	bad.Date = "10/11/2025"
	require.ErrorAs(t, svc.validateBookingInput(bad), &validationErr)
	assert.Equal(t, "date", validationErr.Field)

	bad = valid
	bad.Time = "9:00"
	require.ErrorAs(t, svc.validateBookingInput(bad), &validationErr)
	assert.Equal(t, "time", validationErr.Field)
}

func TestCreateBookingRejectsPastSlot(t *testing.T) {
	// Validation and the past check run before any storage access
	svc := NewAvailabilityService(nil, testClock())

	_, err := svc.CreateBooking(BookingInput{
		Name:  "A",
		Email: "a@x.com",
		Phone: "1234567",
		Date:  "2020-01-01",
		Time:  "09:00",
	})

	var pastErr *PastTimeError
	require.ErrorAs(t, err, &pastErr)
	assert.Equal(t, "2020-01-01", pastErr.Date)
	assert.Equal(t, "09:00", pastErr.Time)
}

func TestCreateBookingValidationBeforePastCheck(t *testing.T) {
	svc := NewAvailabilityService(nil, testClock())

	// Past date AND missing name: validation must win
	_, err := svc.CreateBooking(BookingInput{
		Email: "a@x.com",
		Phone: "1234567",
		Date:  "2020-01-01",
		Time:  "09:00",
	})

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, "name", validationErr.Field)
}

func TestSetDaySlotsRejectsBadInput(t *testing.T) {
	svc := NewAvailabilityService(nil, testClock())
	date := day("2025-11-10")

	var validationErr *ValidationError

	_, err := svc.SetDaySlots(date, []string{"09:00"}, 0)
	require.ErrorAs(t, err, &validationErr)

	_, err = svc.SetDaySlots(date, nil, 1)
	require.ErrorAs(t, err, &validationErr)

	_, err = svc.SetDaySlots(date, []string{"25:00"}, 1)
	require.ErrorAs(t, err, &validationErr)
}
