package services

import (
	"fmt"
	"time"

	"github.com/teambition/rrule-go"
	"go.uber.org/zap"

	"github.com/brigata/staffplan/internal/config"
	"github.com/brigata/staffplan/pkg/core/engine"
	"github.com/brigata/staffplan/pkg/db"
)

// engineOptions builds the engine tuning options from the loaded config,
// including closure dates expanded over the run's date range.
func engineOptions(cfg *config.Config, from, to string, logger *zap.Logger) (engine.Options, error) {
	closed, err := expandClosures(cfg.Closures, from, to, logger)
	if err != nil {
		return engine.Options{}, err
	}

	return engine.Options{
		RestMinutes:              cfg.RestMinutes,
		FixedShiftToleranceHours: cfg.FixedShiftToleranceHours,
		SeniorBonus:              cfg.SeniorBonus,
		ExcludedStations:         cfg.ExcludedStations,
		ClosedDates:              closed,
	}, nil
}

// expandClosures materializes the config's recurring closure rules into the
// concrete set of closed dates inside the run range.
func expandClosures(closures []config.ClosureOverride, from, to string, logger *zap.Logger) (map[string]bool, error) {
	if len(closures) == 0 {
		return nil, nil
	}

	rangeStart, err := time.Parse("2006-01-02", from)
	if err != nil {
		return nil, fmt.Errorf("invalid range start: %w", err)
	}
	rangeEnd, err := time.Parse("2006-01-02", to)
	if err != nil {
		return nil, fmt.Errorf("invalid range end: %w", err)
	}

	// Small buffer so rules anchored just outside the range still match.
	searchStart := rangeStart.AddDate(0, 0, -7)
	searchEnd := rangeEnd.AddDate(0, 0, 7)

	closed := make(map[string]bool)
	for i, closure := range closures {
		rule, err := rrule.StrToRRule(closure.RRule)
		if err != nil {
			return nil, fmt.Errorf("failed to parse rrule for closure %d: %w", i, err)
		}
		rule.DTStart(searchStart)

		occurrences := rule.Between(searchStart, searchEnd, true)
		for _, occurrence := range occurrences {
			day := occurrence.Format("2006-01-02")
			if day >= from && day <= to {
				closed[day] = true
			}
		}

		logger.Debug("Expanded closure rule",
			zap.Int("index", i),
			zap.String("rrule", closure.RRule),
			zap.String("reason", closure.Reason))
	}

	return closed, nil
}

// lookbackDate returns the date the given number of days before from, so
// shifts loaded for rest-rule seeding start early enough.
func lookbackDate(from string, days int) (string, error) {
	start, err := time.Parse("2006-01-02", from)
	if err != nil {
		return "", fmt.Errorf("invalid start date format: %w", err)
	}
	return start.AddDate(0, 0, -days).Format("2006-01-02"), nil
}

// convertToEngineWorkers converts staff records to engine workers, attaching
// each member's unavailability windows.
func convertToEngineWorkers(staff []db.StaffMember, unavailability []db.UnavailabilityRecord) []engine.Worker {
	byStaff := make(map[string][]engine.Unavailability)
	for _, rec := range unavailability {
		byStaff[rec.StaffID] = append(byStaff[rec.StaffID], engine.Unavailability{
			Date:   rec.Day,
			AllDay: rec.AllDay,
			Start:  rec.StartTime,
			End:    rec.EndTime,
			Reason: rec.Reason,
		})
	}

	workers := make([]engine.Worker, len(staff))
	for i, member := range staff {
		workers[i] = engine.Worker{
			ID:                   member.ID,
			Name:                 member.Name,
			Stations:             member.Stations,
			MinHours:             member.MinHours,
			MaxHours:             member.MaxHours,
			Tier:                 engine.Tier(member.Tier),
			IncompatibilityGroup: member.IncompatibilityGroup,
			Unavailability:       byStaff[member.ID],
		}
	}
	return workers
}

// convertToEngineCoverage converts coverage templates to engine coverage rows
func convertToEngineCoverage(templates []db.CoverageTemplate) []engine.CoverageRow {
	rows := make([]engine.CoverageRow, len(templates))
	for i, t := range templates {
		days := make(map[string]engine.CoverageSlot, len(t.Days))
		for day, slot := range t.Days {
			days[day] = engine.CoverageSlot{
				LunchIn:   slot.LunchIn,
				LunchOut:  slot.LunchOut,
				DinnerIn:  slot.DinnerIn,
				DinnerOut: slot.DinnerOut,
			}
		}
		rows[i] = engine.CoverageRow{
			Station: t.Station,
			Days:    days,
			Active:  t.Active,
		}
	}
	return rows
}

// convertToEngineAssignments converts shift records to engine assignments
func convertToEngineAssignments(shifts []db.ShiftRecord) []engine.Assignment {
	assignments := make([]engine.Assignment, len(shifts))
	for i, s := range shifts {
		assignments[i] = engine.Assignment{
			ID:       s.ID,
			WorkerID: s.StaffID,
			Date:     s.ShiftDate,
			Start:    s.StartTime,
			End:      s.EndTime,
			Station:  s.Station,
			Draft:    s.Draft,
		}
	}
	return assignments
}

// convertToEngineRecurring converts recurring shift records to engine patterns
func convertToEngineRecurring(records []db.RecurringShiftRecord) []engine.RecurringShift {
	patterns := make([]engine.RecurringShift, len(records))
	for i, r := range records {
		patterns[i] = engine.RecurringShift{
			WorkerID:  r.StaffID,
			Weekday:   r.Weekday,
			Start:     r.StartTime,
			End:       r.EndTime,
			Station:   r.Station,
			StartWeek: r.StartWeek,
			EndWeek:   r.EndWeek,
			StartYear: r.StartYear,
			EndYear:   r.EndYear,
		}
	}
	return patterns
}

// convertToEngineLeave converts leave records to engine leave entries
func convertToEngineLeave(records []db.LeaveRecord) []engine.Leave {
	leave := make([]engine.Leave, len(records))
	for i, r := range records {
		leave[i] = engine.Leave{
			WorkerID: r.StaffID,
			Date:     r.Day,
			AllDay:   r.AllDay,
			Start:    r.StartTime,
			End:      r.EndTime,
		}
	}
	return leave
}

// convertToEnginePairs converts incompatibility records to engine pairs
func convertToEnginePairs(records []db.IncompatibilityPair) []engine.IncompatiblePair {
	pairs := make([]engine.IncompatiblePair, len(records))
	for i, r := range records {
		pairs[i] = engine.IncompatiblePair{A: r.StaffA, B: r.StaffB}
	}
	return pairs
}
