// Package store owns the day_status relation, the durable source of truth for
// per-day availability.
package store

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"availabilityAPI/internal/types/availability"
)

type AvailabilityStore struct {
	db *pgxpool.Pool
}

func NewAvailabilityStore(db *pgxpool.Pool) *AvailabilityStore {
	return &AvailabilityStore{db: db}
}

// InitSchema creates the day_status table if it does not exist yet.
func (s *AvailabilityStore) InitSchema(ctx context.Context) error {
	query := `
        CREATE TABLE IF NOT EXISTS day_status (
            date DATE PRIMARY KEY,
            status TEXT NOT NULL CHECK (status IN ('available', 'limited', 'finished')),
            updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
        )
    `

	if _, err := s.db.Exec(ctx, query); err != nil {
		return fmt.Errorf("failed to create day_status table: %w", err)
	}
	return nil
}

// FindInRange returns every persisted record whose date falls in the half-open
// interval [start, end). Order is unspecified; callers fold the rows into a map.
func (s *AvailabilityStore) FindInRange(ctx context.Context, start, end time.Time) ([]availability.DayRecord, error) {
	query := `
        SELECT date, status, updated_at
        FROM day_status
        WHERE date >= $1
          AND date < $2
    `

	rows, err := s.db.Query(ctx, query, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to query day statuses: %w", err)
	}
	defer rows.Close()

	var records []availability.DayRecord
	for rows.Next() {
		var rec availability.DayRecord
		if err := rows.Scan(&rec.Date, &rec.Status, &rec.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan day status row: %w", err)
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read day status rows: %w", err)
	}

	return records, nil
}

// Upsert inserts or overwrites the record for date, refreshing updated_at on
// every write. Postgres serializes concurrent writers to the same date, so the
// last committed write wins.
func (s *AvailabilityStore) Upsert(ctx context.Context, date time.Time, status availability.DayStatus) error {
	query := `
        INSERT INTO day_status (date, status, updated_at)
        VALUES ($1, $2, NOW())
        ON CONFLICT (date)
        DO UPDATE SET
            status = $2,
            updated_at = NOW()
    `

	if _, err := s.db.Exec(ctx, query, date, status); err != nil {
		return fmt.Errorf("failed to upsert day status: %w", err)
	}
	return nil
}

// Ping reports whether the database answers a trivial round-trip.
func (s *AvailabilityStore) Ping(ctx context.Context) error {
	return s.db.Ping(ctx)
}
