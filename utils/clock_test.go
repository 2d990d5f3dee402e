package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewBusinessClockReadsEnv(t *testing.T) {
	t.Setenv("BUSINESS_TIMEZONE", "UTC")

	clock := NewBusinessClock()

	assert.Equal(t, time.UTC, clock.Location)
}

func TestNewBusinessClockInvalidZoneFallsBackToUTC(t *testing.T) {
	t.Setenv("BUSINESS_TIMEZONE", "Not/AZone")

	clock := NewBusinessClock()

	assert.Equal(t, time.UTC, clock.Location)
}

func TestSlotMomentUsesBusinessZone(t *testing.T) {
	zone := time.FixedZone("CET", 3600)
	clock := &BusinessClock{Location: zone}
	date, err := ParseDate("2025-11-10")
	require.NoError(t, err)

	moment, err := clock.SlotMoment(date, "09:30")
	require.NoError(t, err)

	assert.Equal(t, 2025, moment.Year())
	assert.Equal(t, time.November, moment.Month())
	assert.Equal(t, 10, moment.Day())
	assert.Equal(t, 9, moment.Hour())
	assert.Equal(t, 30, moment.Minute())
	assert.Equal(t, zone, moment.Location())
}

func TestIsPast(t *testing.T) {
	zone := time.FixedZone("CET", 3600)
	clock := &BusinessClock{Location: zone}
	date, _ := ParseDate("2025-11-10")

	now := time.Date(2025, 11, 10, 12, 0, 0, 0, zone)

	assert.True(t, clock.IsPast(date, "09:00", now))
	assert.False(t, clock.IsPast(date, "16:00", now))
	// Exactly "now" is not strictly in the past
	assert.False(t, clock.IsPast(date, "12:00", now))
}

func TestIsPastZoneMatters(t *testing.T) {
	// 23:30 UTC on the 10th is already past midnight in Madrid; a same-day
	// comparison done in UTC would wrongly keep the slot open
	zone := time.FixedZone("CET", 3600)
	clock := &BusinessClock{Location: zone}
	date, _ := ParseDate("2025-11-10")

	nowUTC := time.Date(2025, 11, 10, 23, 30, 0, 0, time.UTC)

	assert.True(t, clock.IsPast(date, "23:45", nowUTC))
}

func TestParseDate(t *testing.T) {
	date, err := ParseDate("2025-11-10")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, 11, 10, 0, 0, 0, 0, time.UTC), date)

	_, err = ParseDate("10/11/2025")
	assert.Error(t, err)
}

func TestBeginningOfDay(t *testing.T) {
	zone := time.FixedZone("CET", 3600)
	moment := time.Date(2025, 11, 10, 17, 45, 12, 0, zone)

	start := BeginningOfDay(moment)

	assert.Equal(t, time.Date(2025, 11, 10, 0, 0, 0, 0, zone), start)
}
