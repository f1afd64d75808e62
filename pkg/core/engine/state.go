package engine

// interval is a minute window within a date. end is already normalized, so
// overnight shifts extend past 1440.
type interval struct {
	start int
	end   int
}

func (iv interval) durationHours() float64 {
	return float64(iv.end-iv.start) / 60.0
}

func (iv interval) overlaps(other interval) bool {
	return Overlaps(iv.start, iv.end, other.start, other.end)
}

// committedShift records who occupies an interval on a date, for
// blacklist/incompatibility checks against concurrent workers.
type committedShift struct {
	workerID string
	station  string
	iv       interval
}

// runState is the explicit per-run mutable state threaded through every
// component. It is created fresh for each invocation, so concurrent runs for
// different venues cannot interfere.
type runState struct {
	// hours accumulates assigned hours per worker within the run's range.
	hours map[string]float64

	// busy maps worker -> date -> occupied intervals.
	busy map[string]map[string][]interval

	// locked marks workers exclusively reserved for a date by a fixed shift.
	locked map[string]map[string]bool

	// committed maps date -> shifts occupying it, across all workers.
	committed map[string][]committedShift
}

func newRunState() *runState {
	return &runState{
		hours:     make(map[string]float64),
		busy:      make(map[string]map[string][]interval),
		locked:    make(map[string]map[string]bool),
		committed: make(map[string][]committedShift),
	}
}

// occupy records an interval for a worker on a date and exposes it to
// concurrency checks. It does not touch accumulated hours.
func (s *runState) occupy(workerID, date, station string, iv interval) {
	if s.busy[workerID] == nil {
		s.busy[workerID] = make(map[string][]interval)
	}
	s.busy[workerID][date] = append(s.busy[workerID][date], iv)
	s.committed[date] = append(s.committed[date], committedShift{
		workerID: workerID,
		station:  station,
		iv:       iv,
	})
}

func (s *runState) addHours(workerID string, hours float64) {
	s.hours[workerID] += hours
}

func (s *runState) lock(workerID, date string) {
	if s.locked[workerID] == nil {
		s.locked[workerID] = make(map[string]bool)
	}
	s.locked[workerID][date] = true
}

func (s *runState) isLocked(workerID, date string) bool {
	return s.locked[workerID][date]
}

// busyOverlaps reports whether the worker already occupies an interval on the
// date that intersects iv.
func (s *runState) busyOverlaps(workerID, date string, iv interval) bool {
	for _, existing := range s.busy[workerID][date] {
		if existing.overlaps(iv) {
			return true
		}
	}
	return false
}

// latestEndOn returns the latest normalized end minute of the worker's
// shifts on the date, and whether any shift exists.
func (s *runState) latestEndOn(workerID, date string) (int, bool) {
	intervals := s.busy[workerID][date]
	if len(intervals) == 0 {
		return 0, false
	}
	latest := intervals[0].end
	for _, iv := range intervals[1:] {
		if iv.end > latest {
			latest = iv.end
		}
	}
	return latest, true
}

// concurrentWorkers returns the IDs of workers committed to intervals
// overlapping iv on the date.
func (s *runState) concurrentWorkers(date string, iv interval) []string {
	var ids []string
	for _, shift := range s.committed[date] {
		if shift.iv.overlaps(iv) {
			ids = append(ids, shift.workerID)
		}
	}
	return ids
}
