package postgres

import (
	"context"
	"fmt"

	"github.com/brigata/staffplan/pkg/db"
)

// GetCoverage retrieves a venue's coverage templates with their declared
// windows for the date range, assembled into per-date maps.
func (d *DB) GetCoverage(ctx context.Context, venueID, from, to string) ([]db.CoverageTemplate, error) {
	rows, err := d.pool.Query(ctx, `
		SELECT t.id, t.venue_id, t.station, t.active
		FROM coverage_template t
		WHERE t.venue_id = $1
		ORDER BY t.id
	`, venueID)
	if err != nil {
		return nil, fmt.Errorf("failed to query coverage templates: %w", err)
	}
	defer rows.Close()

	var templates []db.CoverageTemplate
	index := make(map[string]int)
	for rows.Next() {
		var t db.CoverageTemplate
		if err := rows.Scan(&t.ID, &t.VenueID, &t.Station, &t.Active); err != nil {
			return nil, fmt.Errorf("failed to scan coverage template: %w", err)
		}
		t.Days = make(map[string]db.CoverageDay)
		index[t.ID] = len(templates)
		templates = append(templates, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating coverage templates: %w", err)
	}

	dayRows, err := d.pool.Query(ctx, `
		SELECT c.template_id, to_char(c.day, 'YYYY-MM-DD'), c.lunch_in, c.lunch_out, c.dinner_in, c.dinner_out
		FROM coverage_day c
		JOIN coverage_template t ON t.id = c.template_id
		WHERE t.venue_id = $1 AND c.day BETWEEN $2 AND $3
		ORDER BY c.day
	`, venueID, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to query coverage days: %w", err)
	}
	defer dayRows.Close()

	for dayRows.Next() {
		var templateID, day string
		var lunchIn, lunchOut, dinnerIn, dinnerOut *string
		if err := dayRows.Scan(&templateID, &day, &lunchIn, &lunchOut, &dinnerIn, &dinnerOut); err != nil {
			return nil, fmt.Errorf("failed to scan coverage day: %w", err)
		}

		i, ok := index[templateID]
		if !ok {
			continue
		}
		templates[i].Days[day] = db.CoverageDay{
			LunchIn:   deref(lunchIn),
			LunchOut:  deref(lunchOut),
			DinnerIn:  deref(dinnerIn),
			DinnerOut: deref(dinnerOut),
		}
	}
	if err := dayRows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating coverage days: %w", err)
	}

	return templates, nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
