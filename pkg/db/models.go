package db

// StaffMember represents a database staff record
type StaffMember struct {
	ID                   string
	VenueID              string
	Name                 string
	Stations             []string
	MinHours             float64
	MaxHours             float64
	Tier                 string
	IncompatibilityGroup string
}

// UnavailabilityRecord represents a declared unavailability window for a staff member
type UnavailabilityRecord struct {
	ID        string
	VenueID   string
	StaffID   string
	Day       string
	AllDay    bool
	StartTime string
	EndTime   string
	Reason    string
}

// CoverageDay holds the optional service windows a template declares for one date.
// Times are stored as raw text so dirty upstream values survive the round trip.
type CoverageDay struct {
	LunchIn   string
	LunchOut  string
	DinnerIn  string
	DinnerOut string
}

// CoverageTemplate represents one station's weekly staffing template
type CoverageTemplate struct {
	ID      string
	VenueID string
	Station string
	Active  bool
	Days    map[string]CoverageDay
}

// ShiftRecord represents a committed or draft shift assignment
type ShiftRecord struct {
	ID        string
	VenueID   string
	StaffID   string
	ShiftDate string
	StartTime string
	EndTime   string
	Station   string
	Draft     bool
}

// RecurringShiftRecord represents a staff member's fixed weekly pattern
type RecurringShiftRecord struct {
	ID        string
	VenueID   string
	StaffID   string
	Weekday   int
	StartTime string
	EndTime   string
	Station   string
	StartWeek int
	EndWeek   int
	StartYear int
	EndYear   int
}

// LeaveRecord represents an approved absence
type LeaveRecord struct {
	ID        string
	VenueID   string
	StaffID   string
	Day       string
	AllDay    bool
	StartTime string
	EndTime   string
}

// IncompatibilityPair represents two staff members who must never share
// overlapping shifts
type IncompatibilityPair struct {
	ID      string
	VenueID string
	StaffA  string
	StaffB  string
}
