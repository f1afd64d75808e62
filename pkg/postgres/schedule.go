package postgres

import (
	"context"
	"fmt"

	"github.com/brigata/staffplan/pkg/db"
)

// GetRecurringShifts retrieves fixed weekly patterns for a venue
func (d *DB) GetRecurringShifts(ctx context.Context, venueID string) ([]db.RecurringShiftRecord, error) {
	rows, err := d.pool.Query(ctx, `
		SELECT id, venue_id, staff_id, weekday, start_time, end_time, station,
		       start_week, end_week, start_year, end_year
		FROM recurring_shift
		WHERE venue_id = $1
		ORDER BY staff_id, weekday
	`, venueID)
	if err != nil {
		return nil, fmt.Errorf("failed to query recurring shifts: %w", err)
	}
	defer rows.Close()

	var patterns []db.RecurringShiftRecord
	for rows.Next() {
		var p db.RecurringShiftRecord
		var startTime, endTime *string
		if err := rows.Scan(&p.ID, &p.VenueID, &p.StaffID, &p.Weekday, &startTime, &endTime,
			&p.Station, &p.StartWeek, &p.EndWeek, &p.StartYear, &p.EndYear); err != nil {
			return nil, fmt.Errorf("failed to scan recurring shift: %w", err)
		}
		p.StartTime = deref(startTime)
		p.EndTime = deref(endTime)
		patterns = append(patterns, p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating recurring shifts: %w", err)
	}

	return patterns, nil
}

// GetLeave retrieves approved leave records for a venue within a date range
func (d *DB) GetLeave(ctx context.Context, venueID, from, to string) ([]db.LeaveRecord, error) {
	rows, err := d.pool.Query(ctx, `
		SELECT id, venue_id, staff_id, to_char(day, 'YYYY-MM-DD'), all_day, start_time, end_time
		FROM leave_record
		WHERE venue_id = $1 AND day BETWEEN $2 AND $3
		ORDER BY day, staff_id
	`, venueID, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to query leave records: %w", err)
	}
	defer rows.Close()

	var records []db.LeaveRecord
	for rows.Next() {
		var r db.LeaveRecord
		var startTime, endTime *string
		if err := rows.Scan(&r.ID, &r.VenueID, &r.StaffID, &r.Day, &r.AllDay, &startTime, &endTime); err != nil {
			return nil, fmt.Errorf("failed to scan leave record: %w", err)
		}
		r.StartTime = deref(startTime)
		r.EndTime = deref(endTime)
		records = append(records, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating leave records: %w", err)
	}

	return records, nil
}

// GetIncompatibilities retrieves blacklist pairs for a venue
func (d *DB) GetIncompatibilities(ctx context.Context, venueID string) ([]db.IncompatibilityPair, error) {
	rows, err := d.pool.Query(ctx, `
		SELECT id, venue_id, staff_a, staff_b
		FROM incompatibility_pair
		WHERE venue_id = $1
		ORDER BY id
	`, venueID)
	if err != nil {
		return nil, fmt.Errorf("failed to query incompatibility pairs: %w", err)
	}
	defer rows.Close()

	var pairs []db.IncompatibilityPair
	for rows.Next() {
		var p db.IncompatibilityPair
		if err := rows.Scan(&p.ID, &p.VenueID, &p.StaffA, &p.StaffB); err != nil {
			return nil, fmt.Errorf("failed to scan incompatibility pair: %w", err)
		}
		pairs = append(pairs, p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating incompatibility pairs: %w", err)
	}

	return pairs, nil
}
