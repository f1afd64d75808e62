package db

import "context"

// StaffStore defines the interface for staff roster operations
type StaffStore interface {
	GetStaff(ctx context.Context, venueID string) ([]StaffMember, error)
	GetUnavailability(ctx context.Context, venueID, from, to string) ([]UnavailabilityRecord, error)
}

// CoverageStore defines the interface for coverage template operations
type CoverageStore interface {
	GetCoverage(ctx context.Context, venueID, from, to string) ([]CoverageTemplate, error)
}

// ShiftStore defines the interface for shift assignment operations
type ShiftStore interface {
	GetShifts(ctx context.Context, venueID, from, to string) ([]ShiftRecord, error)
	InsertShifts(ctx context.Context, shifts []ShiftRecord) error
}

// ScheduleStore defines the interface for recurring shift, leave and
// constraint operations
type ScheduleStore interface {
	GetRecurringShifts(ctx context.Context, venueID string) ([]RecurringShiftRecord, error)
	GetLeave(ctx context.Context, venueID, from, to string) ([]LeaveRecord, error)
	GetIncompatibilities(ctx context.Context, venueID string) ([]IncompatibilityPair, error)
}
