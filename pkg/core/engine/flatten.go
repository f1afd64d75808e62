package engine

import (
	"sort"

	"github.com/brigata/staffplan/pkg/metrics"
)

// FlattenCoverage expands weekly coverage rows into the deduplicated,
// chronologically ordered list of atomic shift tasks for an inclusive date
// range. It is the shared requirement-expansion primitive: the assigner, the
// auditor, and demand previews all go through it, so the three can never
// drift apart.
//
// Ordering is part of the contract: tasks are sorted by date, then start
// time, then period, then station, because later tasks' eligibility depends
// on state mutated by earlier tasks in the same run.
func FlattenCoverage(rows []CoverageRow, from, to string) ([]ShiftTask, error) {
	dates, err := datesBetween(from, to)
	if err != nil {
		return nil, err
	}
	tasks, _ := flatten(rows, dates, DefaultOptions())
	return tasks, nil
}

// flatten is the option-aware expansion used inside engine runs. Malformed
// slot times and duplicate declarations degrade to skips, counted in stats.
func flatten(rows []CoverageRow, dates []string, opts Options) ([]ShiftTask, RunStats) {
	var stats RunStats
	var tasks []ShiftTask
	seen := make(map[ShiftTask]bool)

	emit := func(task ShiftTask) {
		if seen[task] {
			stats.DuplicateTasks++
			metrics.DuplicateTasksSkipped.Inc()
			return
		}
		seen[task] = true
		tasks = append(tasks, task)
	}

	for _, date := range dates {
		if opts.ClosedDates[date] {
			continue
		}
		for _, row := range rows {
			if !row.Active {
				stats.InactiveRows++
				metrics.InactiveRowsSkipped.Inc()
				continue
			}
			if opts.stationExcluded(row.Station) {
				continue
			}

			slot, ok := row.Days[date]
			if !ok {
				continue
			}

			if slot.LunchIn != "" && slot.LunchOut != "" {
				if _, err := parseWindow(slot.LunchIn, slot.LunchOut); err != nil {
					stats.MalformedTimes++
					metrics.MalformedTimeValues.Inc()
				} else {
					emit(ShiftTask{
						Date:    date,
						Start:   slot.LunchIn,
						End:     slot.LunchOut,
						Station: row.Station,
						Period:  PeriodLunch,
					})
				}
			}

			if slot.DinnerIn != "" && slot.DinnerOut != "" {
				if _, err := parseWindow(slot.DinnerIn, slot.DinnerOut); err != nil {
					stats.MalformedTimes++
					metrics.MalformedTimeValues.Inc()
				} else {
					emit(ShiftTask{
						Date:    date,
						Start:   slot.DinnerIn,
						End:     slot.DinnerOut,
						Station: row.Station,
						Period:  PeriodDinner,
					})
				}
			}
		}
	}

	sort.SliceStable(tasks, func(i, j int) bool {
		a, b := tasks[i], tasks[j]
		if a.Date != b.Date {
			return a.Date < b.Date
		}
		aStart, _ := ToMinutes(a.Start)
		bStart, _ := ToMinutes(b.Start)
		if aStart != bStart {
			return aStart < bStart
		}
		if a.Period != b.Period {
			return a.Period < b.Period
		}
		return a.Station < b.Station
	})

	stats.TasksGenerated = len(tasks)
	return tasks, stats
}
