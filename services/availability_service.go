package services

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"
	"time"

	"availabilityAPI/internal/dateutil"
	"availabilityAPI/internal/types/availability"
)

var (
	// ErrInvalidRequest marks malformed input the caller must correct.
	ErrInvalidRequest = errors.New("invalid request")
	// ErrUnauthorized marks a failed admin secret check.
	ErrUnauthorized = errors.New("unauthorized")
)

// AvailabilityStore is the persistence the service needs. Satisfied by
// store.AvailabilityStore; tests substitute a fake.
type AvailabilityStore interface {
	FindInRange(ctx context.Context, start, end time.Time) ([]availability.DayRecord, error)
	Upsert(ctx context.Context, date time.Time, status availability.DayStatus) error
}

type AvailabilityService struct {
	store         AvailabilityStore
	adminPassword string
}

func NewAvailabilityService(store AvailabilityStore, adminPassword string) *AvailabilityService {
	return &AvailabilityService{
		store:         store,
		adminPassword: adminPassword,
	}
}

// GetMonth returns a status for every calendar day of the requested month,
// default-filled with "available" and overridden by persisted records.
//
// Months outside 1..12 roll over into adjacent years the way time.Date
// normalizes them; the key set, day count, and range scan all follow the
// normalized month, so the view stays coherent.
func (s *AvailabilityService) GetMonth(ctx context.Context, year, month int) (map[string]availability.DayStatus, error) {
	start, end := dateutil.MonthBounds(year, month)
	y, m := start.Year(), int(start.Month())
	n := dateutil.DaysInMonth(y, m)

	days := make(map[string]availability.DayStatus, n)
	for d := 1; d <= n; d++ {
		days[dateutil.FormatDayKey(y, m, d)] = availability.DefaultStatus
	}

	records, err := s.store.FindInRange(ctx, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch month availability: %w", err)
	}

	for _, rec := range records {
		key := rec.Date.Format(dateutil.DayKeyLayout)
		if _, ok := days[key]; ok {
			days[key] = rec.Status
		}
	}

	return days, nil
}

// SetDayStatus validates and persists one day's status. The admin secret is
// checked on every call, independent of any session the caller may hold.
func (s *AvailabilityService) SetDayStatus(ctx context.Context, date string, status availability.DayStatus, password string) error {
	day, err := dateutil.ParseDayKey(date)
	if err != nil {
		return fmt.Errorf("%w: date must be YYYY-MM-DD", ErrInvalidRequest)
	}
	if !status.Valid() {
		return fmt.Errorf("%w: unknown status %q", ErrInvalidRequest, status)
	}

	if !s.CheckAdminPassword(password) {
		return ErrUnauthorized
	}

	if err := s.store.Upsert(ctx, day, status); err != nil {
		return fmt.Errorf("failed to update day status: %w", err)
	}
	return nil
}

// CheckAdminPassword compares the supplied secret against the configured one
// in constant time.
func (s *AvailabilityService) CheckAdminPassword(password string) bool {
	return subtle.ConstantTimeCompare([]byte(password), []byte(s.adminPassword)) == 1
}
