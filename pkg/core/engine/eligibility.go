package engine

import "time"

// eligibility applies the hard constraints that decide whether a worker is
// legally assignable to a task. Every rule must hold; any failed check
// excludes the worker silently. The caller records the task as unassigned
// only when the whole eligible set comes up empty.
type eligibility struct {
	state     *runState
	opts      Options
	workers   []Worker
	leave     map[string]map[string][]Leave
	blacklist map[string]map[string]bool
	groupOf   map[string]string
}

func newEligibility(input Input, state *runState) *eligibility {
	e := &eligibility{
		state:     state,
		opts:      input.Options,
		workers:   input.Workers,
		leave:     make(map[string]map[string][]Leave),
		blacklist: make(map[string]map[string]bool),
		groupOf:   make(map[string]string),
	}

	for _, l := range input.Leave {
		if e.leave[l.WorkerID] == nil {
			e.leave[l.WorkerID] = make(map[string][]Leave)
		}
		e.leave[l.WorkerID][l.Date] = append(e.leave[l.WorkerID][l.Date], l)
	}

	for _, pair := range input.Incompatible {
		e.addBlacklist(pair.A, pair.B)
		e.addBlacklist(pair.B, pair.A)
	}

	for _, w := range input.Workers {
		if w.IncompatibilityGroup != "" {
			e.groupOf[w.ID] = w.IncompatibilityGroup
		}
	}

	return e
}

func (e *eligibility) addBlacklist(a, b string) {
	if e.blacklist[a] == nil {
		e.blacklist[a] = make(map[string]bool)
	}
	e.blacklist[a][b] = true
}

// eligibleWorkers returns the subset of the roster legally assignable to the
// task. iv is the task window with its end already normalized.
func (e *eligibility) eligibleWorkers(task ShiftTask, iv interval) []Worker {
	var eligible []Worker
	for _, w := range e.workers {
		if e.isEligible(w, task, iv) {
			eligible = append(eligible, w)
		}
	}
	return eligible
}

func (e *eligibility) isEligible(w Worker, task ShiftTask, iv interval) bool {
	// Fixed shifts are exclusive commitments: a locked worker is out for
	// the whole date regardless of anything else.
	if e.state.isLocked(w.ID, task.Date) {
		return false
	}

	if !e.hasSkill(w, task.Station) {
		return false
	}

	if e.isUnavailable(w, task.Date, iv) {
		return false
	}

	if e.isOnLeave(w.ID, task.Date, iv) {
		return false
	}

	if e.state.busyOverlaps(w.ID, task.Date, iv) {
		return false
	}

	if !e.restSatisfied(w.ID, task.Date, iv) {
		return false
	}

	// Max hours is strict here; only the fixed-shift pre-pass carries a
	// tolerance.
	if e.state.hours[w.ID]+iv.durationHours() > w.MaxHours {
		return false
	}

	if e.conflictsWithConcurrent(w.ID, task.Date, iv) {
		return false
	}

	return true
}

func (e *eligibility) hasSkill(w Worker, station string) bool {
	for _, skill := range w.Stations {
		if sameStation(skill, station) {
			return true
		}
	}
	return false
}

// isUnavailable checks declared unavailability for the date. All-day records
// block unconditionally; partial records block only on overlap. Malformed
// windows are treated as non-matching so dirty records cannot stall a run.
func (e *eligibility) isUnavailable(w Worker, date string, iv interval) bool {
	for _, u := range w.Unavailability {
		if u.Date != date {
			continue
		}
		if u.AllDay {
			return true
		}
		window, err := parseWindow(u.Start, u.End)
		if err != nil {
			continue
		}
		if window.overlaps(iv) {
			return true
		}
	}
	return false
}

// isOnLeave mirrors isUnavailable for approved leave records.
func (e *eligibility) isOnLeave(workerID, date string, iv interval) bool {
	for _, l := range e.leave[workerID][date] {
		if l.AllDay {
			return true
		}
		window, err := parseWindow(l.Start, l.End)
		if err != nil {
			continue
		}
		if window.overlaps(iv) {
			return true
		}
	}
	return false
}

// restSatisfied enforces the minimum rest gap against the worker's latest
// shift end on the immediately preceding date. Both ends are expressed in
// minutes from the preceding midnight, so the task start shifts by one day.
func (e *eligibility) restSatisfied(workerID, date string, iv interval) bool {
	prevEnd, ok := e.state.latestEndOn(workerID, previousDate(date))
	if !ok {
		return true
	}
	return prevEnd+e.opts.RestMinutes <= iv.start+minutesPerDay
}

// conflictsWithConcurrent checks blacklist pairs and shared incompatibility
// groups against every worker already committed to an overlapping interval.
func (e *eligibility) conflictsWithConcurrent(workerID, date string, iv interval) bool {
	group := e.groupOf[workerID]
	for _, otherID := range e.state.concurrentWorkers(date, iv) {
		if otherID == workerID {
			continue
		}
		if e.blacklist[workerID][otherID] {
			return true
		}
		if group != "" && e.groupOf[otherID] == group {
			return true
		}
	}
	return false
}

func previousDate(date string) string {
	d, err := time.Parse(dateLayout, date)
	if err != nil {
		return ""
	}
	return d.AddDate(0, 0, -1).Format(dateLayout)
}
