// services/availability.go
package services

import (
	"errors"
	"log"
	"sort"
	"time"

	"reservapro-backend/models"
	"reservapro-backend/utils"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// AvailabilityService owns the slot-availability computation and every write
// path that touches slots or bookings. All mutation of those tables goes
// through here.
type AvailabilityService struct {
	db    *gorm.DB
	clock *utils.BusinessClock
}

func NewAvailabilityService(db *gorm.DB, clock *utils.BusinessClock) *AvailabilityService {
	return &AvailabilityService{db: db, clock: clock}
}

func (s *AvailabilityService) Clock() *utils.BusinessClock {
	return s.clock
}

// TimeSlotStatus is one resolved entry of a day's availability.
type TimeSlotStatus struct {
	Time            string `json:"time"`
	Available       bool   `json:"available"`
	SpotsLeft       int    `json:"spotsLeft"`
	IsPast          bool   `json:"isPast"`
	MaxBookings     int    `json:"maxBookings"`
	CurrentBookings int    `json:"currentBookings"`
}

// BookingInput is a booking request as received from the public form or an
// admin creating a booking on a customer's behalf.
type BookingInput struct {
	Name   string
	Email  string
	Phone  string
	Date   string // YYYY-MM-DD
	Time   string // HH:MM
	Source string
	Notes  string
}

// ResolveSlots computes a day's availability from the configured slots and
// the day's bookings. Occupancy is recounted from confirmed bookings; the
// stored CurrentBookings counter is ignored here because it can drift.
// The result is ordered ascending by time.
func ResolveSlots(slots []models.AvailableSlot, bookings []models.Booking, clock *utils.BusinessClock, now time.Time) []TimeSlotStatus {
	occupancy := make(map[string]int)
	for _, b := range bookings {
		if b.Status == models.BookingStatusConfirmed {
			occupancy[b.Time]++
		}
	}

	result := make([]TimeSlotStatus, 0, len(slots))
	for _, slot := range slots {
		booked := occupancy[slot.Time]
		spotsLeft := slot.MaxBookings - booked
		if spotsLeft < 0 {
			spotsLeft = 0
		}
		isPast := clock.IsPast(slot.Date, slot.Time, now)

		result = append(result, TimeSlotStatus{
			Time:            slot.Time,
			Available:       !isPast && booked < slot.MaxBookings,
			SpotsLeft:       spotsLeft,
			IsPast:          isPast,
			MaxBookings:     slot.MaxBookings,
			CurrentBookings: booked,
		})
	}

	// Zero-padded HH:MM, so lexicographic order is chronological
	sort.SliceStable(result, func(i, j int) bool {
		return result[i].Time < result[j].Time
	})

	return result
}

// ResolveDay returns the availability for one calendar day. A day with no
// configured slots resolves to an empty list, not an error.
func (s *AvailabilityService) ResolveDay(date time.Time) ([]TimeSlotStatus, error) {
	var slots []models.AvailableSlot
	if err := s.db.Where("date = ?", date).Order("time asc").Find(&slots).Error; err != nil {
		return nil, &StorageError{Op: "load slots", Err: err}
	}

	var bookings []models.Booking
	if err := s.db.Where("date = ? AND status = ?", date, models.BookingStatusConfirmed).
		Find(&bookings).Error; err != nil {
		return nil, &StorageError{Op: "load bookings", Err: err}
	}

	return ResolveSlots(slots, bookings, s.clock, s.clock.Now()), nil
}

// BookableDates lists the distinct dates within the next `days` days that
// have at least one slot configured.
func (s *AvailabilityService) BookableDates(days int) ([]string, error) {
	today := utils.BeginningOfDay(s.clock.Now())
	start := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 0, days)

	var dates []time.Time
	err := s.db.Model(&models.AvailableSlot{}).
		Where("date >= ? AND date <= ?", start, end).
		Distinct("date").
		Order("date asc").
		Pluck("date", &dates).Error
	if err != nil {
		return nil, &StorageError{Op: "load dates", Err: err}
	}

	formatted := make([]string, 0, len(dates))
	for _, d := range dates {
		formatted = append(formatted, d.Format(utils.DateFormat))
	}
	return formatted, nil
}

func (s *AvailabilityService) validateBookingInput(input BookingInput) error {
	if input.Name == "" {
		return &ValidationError{Field: "name", Message: "required"}
	}
	if input.Email == "" {
		return &ValidationError{Field: "email", Message: "required"}
	}
	if input.Phone == "" {
		return &ValidationError{Field: "phone", Message: "required"}
	}
	if input.Date == "" {
		return &ValidationError{Field: "date", Message: "required"}
	}
	if input.Time == "" {
		return &ValidationError{Field: "time", Message: "required"}
	}
	if !utils.ValidateEmail(input.Email) {
		return &ValidationError{Field: "email", Message: "invalid email address"}
	}
	if !utils.ValidatePhone(input.Phone) {
		return &ValidationError{Field: "phone", Message: "invalid phone number"}
	}
	if _, err := utils.ParseDate(input.Date); err != nil {
		return &ValidationError{Field: "date", Message: "expected YYYY-MM-DD"}
	}
	if !utils.ValidateTimeOfDay(input.Time) {
		return &ValidationError{Field: "time", Message: "expected HH:MM"}
	}
	return nil
}

// CreateBooking validates and commits a booking request. The availability
// re-check and the insert run in one transaction holding a row lock on the
// slot, so two concurrent requests for the last spot serialize and the loser
// gets SlotUnavailableError instead of overbooking the slot.
func (s *AvailabilityService) CreateBooking(input BookingInput) (*models.Booking, error) {
	if err := s.validateBookingInput(input); err != nil {
		return nil, err
	}

	date, _ := utils.ParseDate(input.Date)
	if s.clock.IsPast(date, input.Time, s.clock.Now()) {
		return nil, &PastTimeError{Date: input.Date, Time: input.Time}
	}

	source := input.Source
	if source == "" {
		source = models.BookingSourceWeb
	}

	booking := models.Booking{
		Name:   input.Name,
		Email:  input.Email,
		Phone:  input.Phone,
		Date:   date,
		Time:   input.Time,
		Status: models.BookingStatusConfirmed,
		Source: source,
		Notes:  input.Notes,
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		var slot models.AvailableSlot
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("date = ? AND time = ?", date, input.Time).
			First(&slot).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return &SlotUnavailableError{Date: input.Date, Time: input.Time}
			}
			return &StorageError{Op: "lock slot", Err: err}
		}

		var occupied int64
		err = tx.Model(&models.Booking{}).
			Where("date = ? AND time = ? AND status = ?", date, input.Time, models.BookingStatusConfirmed).
			Count(&occupied).Error
		if err != nil {
			return &StorageError{Op: "count bookings", Err: err}
		}

		if int(occupied) >= slot.MaxBookings {
			return &SlotUnavailableError{Date: input.Date, Time: input.Time}
		}

		if err := tx.Create(&booking).Error; err != nil {
			return &StorageError{Op: "create booking", Err: err}
		}

		// Refresh the advisory counters while we hold the lock
		return tx.Model(&models.AvailableSlot{}).
			Where("id = ?", slot.ID).
			Updates(map[string]interface{}{
				"current_bookings": int(occupied) + 1,
				"is_available":     int(occupied)+1 < slot.MaxBookings,
			}).Error
	})
	if err != nil {
		return nil, err
	}

	return &booking, nil
}

// SetDaySlots replaces all slots for a day with the given times in a single
// transaction, so concurrent readers never observe a half-configured day.
func (s *AvailabilityService) SetDaySlots(date time.Time, times []string, maxBookings int) (int, error) {
	if maxBookings < 1 {
		return 0, &ValidationError{Field: "maxBookingsPerSlot", Message: "must be at least 1"}
	}
	if len(times) == 0 {
		return 0, &ValidationError{Field: "timeSlots", Message: "at least one time is required"}
	}

	seen := make(map[string]bool)
	unique := make([]string, 0, len(times))
	for _, t := range times {
		if !utils.ValidateTimeOfDay(t) {
			return 0, &ValidationError{Field: "timeSlots", Message: "expected HH:MM, got " + t}
		}
		if !seen[t] {
			seen[t] = true
			unique = append(unique, t)
		}
	}
	sort.Strings(unique)

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Unscoped().Where("date = ?", date).Delete(&models.AvailableSlot{}).Error; err != nil {
			return &StorageError{Op: "delete slots", Err: err}
		}
		for _, t := range unique {
			slot := models.AvailableSlot{
				Date:        date,
				Time:        t,
				MaxBookings: maxBookings,
				IsAvailable: true,
			}
			if err := tx.Create(&slot).Error; err != nil {
				return &StorageError{Op: "create slot", Err: err}
			}
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return len(unique), nil
}

// UpdateDayCapacity changes MaxBookings for every slot of a day.
func (s *AvailabilityService) UpdateDayCapacity(date time.Time, maxBookings int) error {
	if maxBookings < 1 {
		return &ValidationError{Field: "maxBookings", Message: "must be at least 1"}
	}
	err := s.db.Model(&models.AvailableSlot{}).
		Where("date = ?", date).
		Update("max_bookings", maxBookings).Error
	if err != nil {
		return &StorageError{Op: "update capacity", Err: err}
	}
	return s.ReconcileDay(date)
}

// CloseDay deletes a day's slots, but only when no confirmed or completed
// booking exists for that date. All-or-nothing.
func (s *AvailabilityService) CloseDay(date time.Time) (int, error) {
	var deleted int64
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var active int64
		err := tx.Model(&models.Booking{}).
			Where("date = ? AND status IN ?", date,
				[]string{models.BookingStatusConfirmed, models.BookingStatusCompleted}).
			Count(&active).Error
		if err != nil {
			return &StorageError{Op: "count active bookings", Err: err}
		}
		if active > 0 {
			return &DayHasActiveBookingsError{Date: date.Format(utils.DateFormat), Count: int(active)}
		}

		result := tx.Unscoped().Where("date = ?", date).Delete(&models.AvailableSlot{})
		if result.Error != nil {
			return &StorageError{Op: "delete slots", Err: result.Error}
		}
		deleted = result.RowsAffected
		return nil
	})
	if err != nil {
		return 0, err
	}
	return int(deleted), nil
}

type occupancyRow struct {
	Date  time.Time
	Time  string
	Total int
}

// ReconcileDay re-derives the advisory counters for one day from a recount
// of confirmed bookings. Called after admin edits that change occupancy.
func (s *AvailabilityService) ReconcileDay(date time.Time) error {
	return s.reconcile(s.db.Where("date = ?", date))
}

// ReconcileAll recounts every configured slot. Run by the scheduler.
func (s *AvailabilityService) ReconcileAll() error {
	return s.reconcile(s.db)
}

func (s *AvailabilityService) reconcile(scope *gorm.DB) error {
	var slots []models.AvailableSlot
	if err := scope.Find(&slots).Error; err != nil {
		return &StorageError{Op: "load slots", Err: err}
	}
	if len(slots) == 0 {
		return nil
	}

	var rows []occupancyRow
	err := s.db.Model(&models.Booking{}).
		Select("date, time, count(*) as total").
		Where("status = ?", models.BookingStatusConfirmed).
		Group("date, time").
		Scan(&rows).Error
	if err != nil {
		return &StorageError{Op: "count bookings", Err: err}
	}

	counts := make(map[string]int, len(rows))
	for _, row := range rows {
		counts[row.Date.Format(utils.DateFormat)+" "+row.Time] = row.Total
	}

	for _, slot := range slots {
		booked := counts[slot.Date.Format(utils.DateFormat)+" "+slot.Time]
		err := s.db.Model(&models.AvailableSlot{}).
			Where("id = ?", slot.ID).
			Updates(map[string]interface{}{
				"current_bookings": booked,
				"is_available":     booked < slot.MaxBookings,
			}).Error
		if err != nil {
			log.Printf("Failed to reconcile slot %s %s: %v", slot.Date.Format(utils.DateFormat), slot.Time, err)
		}
	}
	return nil
}
