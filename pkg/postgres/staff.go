package postgres

import (
	"context"
	"fmt"

	"github.com/brigata/staffplan/pkg/db"
)

// GetStaff retrieves the staff roster for a venue
func (d *DB) GetStaff(ctx context.Context, venueID string) ([]db.StaffMember, error) {
	rows, err := d.pool.Query(ctx, `
		SELECT id, venue_id, name, stations, min_hours, max_hours, tier, incompatibility_group
		FROM staff_member
		WHERE venue_id = $1
		ORDER BY id
	`, venueID)
	if err != nil {
		return nil, fmt.Errorf("failed to query staff: %w", err)
	}
	defer rows.Close()

	var staff []db.StaffMember
	for rows.Next() {
		var s db.StaffMember
		var group *string
		if err := rows.Scan(&s.ID, &s.VenueID, &s.Name, &s.Stations, &s.MinHours, &s.MaxHours, &s.Tier, &group); err != nil {
			return nil, fmt.Errorf("failed to scan staff member: %w", err)
		}
		if group != nil {
			s.IncompatibilityGroup = *group
		}
		staff = append(staff, s)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating staff: %w", err)
	}

	return staff, nil
}

// GetUnavailability retrieves unavailability records for a venue within a date range
func (d *DB) GetUnavailability(ctx context.Context, venueID, from, to string) ([]db.UnavailabilityRecord, error) {
	rows, err := d.pool.Query(ctx, `
		SELECT id, venue_id, staff_id, to_char(day, 'YYYY-MM-DD'), all_day, start_time, end_time, reason
		FROM staff_unavailability
		WHERE venue_id = $1 AND day BETWEEN $2 AND $3
		ORDER BY day, staff_id
	`, venueID, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to query unavailability: %w", err)
	}
	defer rows.Close()

	var records []db.UnavailabilityRecord
	for rows.Next() {
		var r db.UnavailabilityRecord
		var startTime, endTime, reason *string
		if err := rows.Scan(&r.ID, &r.VenueID, &r.StaffID, &r.Day, &r.AllDay, &startTime, &endTime, &reason); err != nil {
			return nil, fmt.Errorf("failed to scan unavailability record: %w", err)
		}
		if startTime != nil {
			r.StartTime = *startTime
		}
		if endTime != nil {
			r.EndTime = *endTime
		}
		if reason != nil {
			r.Reason = *reason
		}
		records = append(records, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating unavailability: %w", err)
	}

	return records, nil
}
