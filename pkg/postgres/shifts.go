package postgres

import (
	"context"
	"fmt"

	"github.com/brigata/staffplan/pkg/db"
)

// GetShifts retrieves shift assignments for a venue within a date range
func (d *DB) GetShifts(ctx context.Context, venueID, from, to string) ([]db.ShiftRecord, error) {
	rows, err := d.pool.Query(ctx, `
		SELECT id, venue_id, staff_id, to_char(shift_date, 'YYYY-MM-DD'), start_time, end_time, station, draft
		FROM shift
		WHERE venue_id = $1 AND shift_date BETWEEN $2 AND $3
		ORDER BY shift_date, start_time
	`, venueID, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to query shifts: %w", err)
	}
	defer rows.Close()

	var shifts []db.ShiftRecord
	for rows.Next() {
		var s db.ShiftRecord
		if err := rows.Scan(&s.ID, &s.VenueID, &s.StaffID, &s.ShiftDate, &s.StartTime, &s.EndTime, &s.Station, &s.Draft); err != nil {
			return nil, fmt.Errorf("failed to scan shift: %w", err)
		}
		shifts = append(shifts, s)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating shifts: %w", err)
	}

	return shifts, nil
}

// InsertShifts inserts shift records in a single transaction
func (d *DB) InsertShifts(ctx context.Context, shifts []db.ShiftRecord) error {
	if len(shifts) == 0 {
		return nil
	}

	tx, err := d.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	for _, s := range shifts {
		_, err := tx.Exec(ctx, `
			INSERT INTO shift (id, venue_id, staff_id, shift_date, start_time, end_time, station, draft)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		`, s.ID, s.VenueID, s.StaffID, s.ShiftDate, s.StartTime, s.EndTime, s.Station, s.Draft)
		if err != nil {
			return fmt.Errorf("failed to insert shift: %w", err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}
