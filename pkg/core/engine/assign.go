package engine

import (
	"fmt"

	"github.com/brigata/staffplan/pkg/metrics"
)

// candidate pairs a worker with its ranking score during selection. It only
// lives for the duration of one task's pick.
type candidate struct {
	worker Worker
	score  float64
}

// Generate runs the full scheduling pass over a materialized input snapshot:
// existing assignments seed the run state, the fixed-shift pre-pass locks
// recurring commitments, then every flattened task is filled greedily in
// chronological order or recorded as unassigned.
//
// Generate never partially fails: per-task and per-row anomalies degrade to
// skips or unassigned entries, so one dirty record cannot block the rest of
// the range. The only errors returned are an unusable date range.
func Generate(input Input) (*Result, error) {
	dates, err := datesBetween(input.From, input.To)
	if err != nil {
		return nil, err
	}

	result := &Result{
		Assignments: []Assignment{},
		Unassigned:  []UnassignedTask{},
	}

	state := newRunState()
	seedExistingAssignments(input, state, result)

	runFixedShifts(input, state, dates, result)

	tasks, flattenStats := flatten(input.Coverage, dates, input.Options)
	result.Stats.MalformedTimes += flattenStats.MalformedTimes
	result.Stats.DuplicateTasks = flattenStats.DuplicateTasks
	result.Stats.InactiveRows = flattenStats.InactiveRows
	result.Stats.TasksGenerated = flattenStats.TasksGenerated

	elig := newEligibility(input, state)

	for _, task := range tasks {
		iv, err := parseWindow(task.Start, task.End)
		if err != nil {
			// flatten already validated these; guard anyway.
			continue
		}

		// A station a human already staffed in this window is treated as
		// satisfied: auto-assignment must not double-book it.
		if coveredByExisting(task, iv, input.Existing) {
			result.Stats.PreCoveredTasks++
			metrics.TasksPreCovered.Inc()
			continue
		}

		candidates := elig.eligibleWorkers(task, iv)
		if len(candidates) == 0 {
			result.Unassigned = append(result.Unassigned, UnassignedTask{
				ShiftTask: task,
				Reason: fmt.Sprintf("no eligible worker for station %s %s-%s: check skills, hour budgets and availability",
					task.Station, task.Start, task.End),
			})
			metrics.TasksUnassigned.Inc()
			continue
		}

		best := pickCandidate(candidates, state, input.Options)

		result.Assignments = append(result.Assignments, Assignment{
			WorkerID: best.ID,
			Date:     task.Date,
			Start:    task.Start,
			End:      task.End,
			Station:  task.Station,
			Draft:    true,
		})
		state.occupy(best.ID, task.Date, task.Station, iv)
		state.addHours(best.ID, iv.durationHours())
		result.Stats.TasksAssigned++
		metrics.AssignmentsCreated.Inc()
	}

	return result, nil
}

// seedExistingAssignments loads committed assignments into the run state so
// overlap, rest and budget checks see manual and historical work. Hours only
// accumulate for assignments inside the run's range; lookback rows exist
// purely for the rest rule.
func seedExistingAssignments(input Input, state *runState, result *Result) {
	for _, a := range input.Existing {
		iv, err := parseWindow(a.Start, a.End)
		if err != nil {
			result.Stats.MalformedTimes++
			metrics.MalformedTimeValues.Inc()
			continue
		}
		state.occupy(a.WorkerID, a.Date, a.Station, iv)
		if a.Date >= input.From && a.Date <= input.To {
			state.addHours(a.WorkerID, iv.durationHours())
		}
	}
}

// coveredByExisting reports whether a pre-existing assignment for the same
// physical station overlaps the task window on its date.
func coveredByExisting(task ShiftTask, iv interval, existing []Assignment) bool {
	for _, a := range existing {
		if a.Date != task.Date || !sameStation(a.Station, task.Station) {
			continue
		}
		window, err := parseWindow(a.Start, a.End)
		if err != nil {
			continue
		}
		if window.overlaps(iv) {
			return true
		}
	}
	return false
}

// pickCandidate selects the highest-scoring eligible worker. The score
// favors workers with fewer accumulated hours and adds a flat bonus for
// SENIOR tier. Ties break deterministically on the lowest worker ID, so the
// same snapshot always yields the same schedule.
func pickCandidate(eligible []Worker, state *runState, opts Options) Worker {
	best := candidate{worker: eligible[0], score: candidateScore(eligible[0], state, opts)}

	for _, w := range eligible[1:] {
		score := candidateScore(w, state, opts)
		if score > best.score || (score == best.score && w.ID < best.worker.ID) {
			best = candidate{worker: w, score: score}
		}
	}

	return best.worker
}

func candidateScore(w Worker, state *runState, opts Options) float64 {
	score := -state.hours[w.ID]
	if w.Tier == TierSenior {
		score += opts.SeniorBonus
	}
	return score
}
