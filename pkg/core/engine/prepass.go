package engine

import (
	"fmt"
	"time"

	"github.com/brigata/staffplan/pkg/metrics"
)

// runFixedShifts applies each worker's recurring pattern before
// auto-assignment. A committed fixed shift locks the worker for that date:
// fixed shifts are exclusive commitments, so a locked worker is categorically
// out of the candidate pool for any other task that day.
//
// Unlike the eligibility filter, the hour budget here carries a tolerance:
// slightly over-committing a worker beats silently dropping a fixed
// obligation.
func runFixedShifts(input Input, state *runState, dates []string, result *Result) {
	for _, date := range dates {
		day, err := time.Parse(dateLayout, date)
		if err != nil {
			continue
		}

		for _, w := range input.Workers {
			shift, ok := matchRecurringShift(input.Recurring, w.ID, day)
			if !ok || shift.Start == "" || shift.End == "" {
				continue
			}

			iv, err := parseWindow(shift.Start, shift.End)
			if err != nil {
				result.Stats.MalformedTimes++
				metrics.MalformedTimeValues.Inc()
				continue
			}

			duration := iv.durationHours()
			if state.hours[w.ID]+duration > w.MaxHours+input.Options.FixedShiftToleranceHours {
				result.Unassigned = append(result.Unassigned, UnassignedTask{
					ShiftTask: ShiftTask{
						Date:    date,
						Start:   shift.Start,
						End:     shift.End,
						Station: shift.Station,
					},
					Reason: fmt.Sprintf("fixed shift for %s skipped: weekly hour limit exceeded", w.Name),
				})
				continue
			}

			result.Assignments = append(result.Assignments, Assignment{
				WorkerID: w.ID,
				Date:     date,
				Start:    shift.Start,
				End:      shift.End,
				Station:  shift.Station,
				Draft:    true,
			})
			state.occupy(w.ID, date, shift.Station, iv)
			state.addHours(w.ID, duration)
			state.lock(w.ID, date)
			result.Stats.FixedShiftsPlaced++
			metrics.AssignmentsCreated.Inc()
		}
	}
}

// matchRecurringShift finds at most one pattern for the worker on the day:
// weekday must match and the day's ISO week/year must fall within the
// pattern's optional bounds. Zero-valued bounds are unbounded.
func matchRecurringShift(patterns []RecurringShift, workerID string, day time.Time) (RecurringShift, bool) {
	isoYear, isoWeek := day.ISOWeek()

	for _, p := range patterns {
		if p.WorkerID != workerID || p.Weekday != int(day.Weekday()) {
			continue
		}
		if p.StartWeek > 0 && isoWeek < p.StartWeek {
			continue
		}
		if p.EndWeek > 0 && isoWeek > p.EndWeek {
			continue
		}
		if p.StartYear > 0 && isoYear < p.StartYear {
			continue
		}
		if p.EndYear > 0 && isoYear > p.EndYear {
			continue
		}
		return p, true
	}
	return RecurringShift{}, false
}
