package engine

const dateLayout = "2006-01-02"

// Tier is a worker's skill/seniority band.
type Tier string

const (
	TierJunior Tier = "JUNIOR"
	TierMedium Tier = "MEDIUM"
	TierSenior Tier = "SENIOR"
)

// Period tags which service a shift task belongs to.
type Period string

const (
	PeriodLunch  Period = "LUNCH"
	PeriodDinner Period = "DINNER"
)

// Unavailability is a declared window in which a worker cannot be scheduled.
// AllDay blocks the whole date; otherwise Start/End bound the window.
type Unavailability struct {
	Date   string
	AllDay bool
	Start  string
	End    string
	Reason string
}

// Worker is a read-only roster entry. The engine never mutates workers;
// per-run derived state (accumulated hours, occupied intervals) lives in runState.
type Worker struct {
	ID       string
	Name     string
	Stations []string
	MinHours float64
	MaxHours float64
	Tier     Tier

	// IncompatibilityGroup marks workers that must never share overlapping
	// shifts. Empty means no group.
	IncompatibilityGroup string

	Unavailability []Unavailability
}

// CoverageSlot holds the optional lunch and dinner windows declared for one date.
// Empty strings mean the window is not declared.
type CoverageSlot struct {
	LunchIn   string
	LunchOut  string
	DinnerIn  string
	DinnerOut string
}

// CoverageRow is one station's weekly staffing template: a per-date map of
// service windows plus an active flag. Inactive rows contribute no tasks.
type CoverageRow struct {
	Station string
	Days    map[string]CoverageSlot
	Active  bool
}

// ShiftTask is one atomic staffing need derived from coverage rows.
// Tasks are ephemeral: produced fresh per engine run, never persisted.
type ShiftTask struct {
	Date    string
	Start   string
	End     string
	Station string
	Period  Period
}

// RecurringShift is a worker's fixed weekly pattern, optionally bounded by
// ISO week/year. Zero-valued bounds mean unbounded.
type RecurringShift struct {
	WorkerID string
	// Weekday follows time.Weekday: 0 = Sunday .. 6 = Saturday.
	Weekday   int
	Start     string
	End       string
	Station   string
	StartWeek int
	EndWeek   int
	StartYear int
	EndYear   int
}

// Leave is an approved absence. AllDay blocks unconditionally; otherwise the
// window blocks only on overlap.
type Leave struct {
	WorkerID string
	Date     string
	AllDay   bool
	Start    string
	End      string
}

// IncompatiblePair is an unordered pair of workers who must never be
// scheduled in overlapping windows.
type IncompatiblePair struct {
	A string
	B string
}

// Assignment is a committed worker/shift pairing. Engine-generated
// assignments are always drafts pending human confirmation.
type Assignment struct {
	ID       string
	WorkerID string
	Date     string
	Start    string
	End      string
	Station  string
	Draft    bool
}

// UnassignedTask echoes a task the engine could not staff, with a
// human-readable reason.
type UnassignedTask struct {
	ShiftTask
	Reason string
}

// Options are the tunable constants of a run.
type Options struct {
	// RestMinutes is the minimum gap between a shift end and the next day's
	// shift start for the same worker.
	RestMinutes int

	// FixedShiftToleranceHours allows recurring shifts to slightly overshoot
	// a worker's weekly budget rather than silently dropping fixed obligations.
	FixedShiftToleranceHours float64

	// SeniorBonus is added to the candidate score of SENIOR-tier workers.
	SeniorBonus float64

	// ExcludedStations are never auto-scheduled (compared canonically).
	ExcludedStations []string

	// ClosedDates suppress task generation entirely ("2006-01-02" keys).
	ClosedDates map[string]bool
}

// DefaultOptions returns the production defaults: 11h rest, 2h fixed-shift
// tolerance, +50 senior bonus, managers excluded.
func DefaultOptions() Options {
	return Options{
		RestMinutes:              660,
		FixedShiftToleranceHours: 2.0,
		SeniorBonus:              50,
		ExcludedStations:         []string{"MANAGER"},
	}
}

func (o Options) stationExcluded(label string) bool {
	for _, excluded := range o.ExcludedStations {
		if sameStation(excluded, label) {
			return true
		}
	}
	return false
}

// Input is the consistent snapshot a run operates on. The engine performs no
// I/O: the caller materializes every collection before invoking Generate.
type Input struct {
	Workers  []Worker
	Coverage []CoverageRow

	// Existing holds committed assignments, including at least two days
	// before From so the rest rule holds across the range boundary.
	Existing []Assignment

	Recurring    []RecurringShift
	Leave        []Leave
	Incompatible []IncompatiblePair

	// From and To bound the run, inclusive ("2006-01-02").
	From string
	To   string

	Options Options
}

// Result is the complete outcome of one run. The engine never partially
// fails: per-task anomalies degrade to entries in Unassigned.
type Result struct {
	Assignments []Assignment
	Unassigned  []UnassignedTask
	Stats       RunStats
}

// RunStats counts the degrade-to-skip events of a run so dirty input stays
// observable without aborting the batch.
type RunStats struct {
	MalformedTimes    int
	DuplicateTasks    int
	InactiveRows      int
	PreCoveredTasks   int
	TasksGenerated    int
	TasksAssigned     int
	FixedShiftsPlaced int
}
