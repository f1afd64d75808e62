package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/brigata/staffplan/internal/config"
	"github.com/brigata/staffplan/pkg/db"
)

// mockScheduleStore implements GenerateScheduleStore for testing
type mockScheduleStore struct {
	staff             []db.StaffMember
	unavailability    []db.UnavailabilityRecord
	coverage          []db.CoverageTemplate
	shifts            []db.ShiftRecord
	recurring         []db.RecurringShiftRecord
	leave             []db.LeaveRecord
	incompatibilities []db.IncompatibilityPair

	insertedShifts []db.ShiftRecord
	shiftsFrom     string
	shiftsTo       string

	getStaffErr     error
	getCoverageErr  error
	insertShiftsErr error
}

func (m *mockScheduleStore) GetStaff(ctx context.Context, venueID string) ([]db.StaffMember, error) {
	if m.getStaffErr != nil {
		return nil, m.getStaffErr
	}
	return m.staff, nil
}

func (m *mockScheduleStore) GetUnavailability(ctx context.Context, venueID, from, to string) ([]db.UnavailabilityRecord, error) {
	return m.unavailability, nil
}

func (m *mockScheduleStore) GetCoverage(ctx context.Context, venueID, from, to string) ([]db.CoverageTemplate, error) {
	if m.getCoverageErr != nil {
		return nil, m.getCoverageErr
	}
	return m.coverage, nil
}

func (m *mockScheduleStore) GetShifts(ctx context.Context, venueID, from, to string) ([]db.ShiftRecord, error) {
	m.shiftsFrom = from
	m.shiftsTo = to
	return m.shifts, nil
}

func (m *mockScheduleStore) GetRecurringShifts(ctx context.Context, venueID string) ([]db.RecurringShiftRecord, error) {
	return m.recurring, nil
}

func (m *mockScheduleStore) GetLeave(ctx context.Context, venueID, from, to string) ([]db.LeaveRecord, error) {
	return m.leave, nil
}

func (m *mockScheduleStore) GetIncompatibilities(ctx context.Context, venueID string) ([]db.IncompatibilityPair, error) {
	return m.incompatibilities, nil
}

func (m *mockScheduleStore) InsertShifts(ctx context.Context, shifts []db.ShiftRecord) error {
	if m.insertShiftsErr != nil {
		return m.insertShiftsErr
	}
	m.insertedShifts = append(m.insertedShifts, shifts...)
	return nil
}

func testConfig() *config.Config {
	return &config.Config{
		DatabaseURL:              "postgres://localhost/test",
		RestMinutes:              660,
		FixedShiftToleranceHours: 2.0,
		SeniorBonus:              50,
		ExcludedStations:         []string{"MANAGER"},
		LookbackDays:             2,
	}
}

func barStaff(id string) db.StaffMember {
	return db.StaffMember{
		ID:       id,
		VenueID:  "venue-1",
		Name:     "Staff " + id,
		Stations: []string{"BAR"},
		MaxHours: 40,
		Tier:     "MEDIUM",
	}
}

func barCoverage(days map[string]db.CoverageDay) db.CoverageTemplate {
	return db.CoverageTemplate{
		ID:      "tpl-1",
		VenueID: "venue-1",
		Station: "BAR",
		Active:  true,
		Days:    days,
	}
}

func TestGenerateSchedule_SavesDrafts(t *testing.T) {
	store := &mockScheduleStore{
		staff: []db.StaffMember{barStaff("s1")},
		coverage: []db.CoverageTemplate{barCoverage(map[string]db.CoverageDay{
			"2026-03-02": {LunchIn: "12:00", LunchOut: "15:00"},
		})},
	}

	result, err := GenerateSchedule(context.Background(), store, testConfig(), zap.NewNop(),
		"venue-1", "2026-03-02", "2026-03-02", false)

	require.NoError(t, err)
	assert.True(t, result.Saved)
	require.Len(t, result.Assignments, 1)
	assert.Equal(t, "s1", result.Assignments[0].WorkerID)

	require.Len(t, store.insertedShifts, 1)
	saved := store.insertedShifts[0]
	assert.Equal(t, "venue-1", saved.VenueID)
	assert.Equal(t, "s1", saved.StaffID)
	assert.Equal(t, "2026-03-02", saved.ShiftDate)
	assert.True(t, saved.Draft)
	assert.NotEmpty(t, saved.ID)
}

func TestGenerateSchedule_DryRunDoesNotSave(t *testing.T) {
	store := &mockScheduleStore{
		staff: []db.StaffMember{barStaff("s1")},
		coverage: []db.CoverageTemplate{barCoverage(map[string]db.CoverageDay{
			"2026-03-02": {LunchIn: "12:00", LunchOut: "15:00"},
		})},
	}

	result, err := GenerateSchedule(context.Background(), store, testConfig(), zap.NewNop(),
		"venue-1", "2026-03-02", "2026-03-02", true)

	require.NoError(t, err)
	assert.False(t, result.Saved)
	assert.Len(t, result.Assignments, 1)
	assert.Empty(t, store.insertedShifts)
}

func TestGenerateSchedule_LoadsShiftsWithLookback(t *testing.T) {
	store := &mockScheduleStore{
		staff: []db.StaffMember{barStaff("s1")},
		coverage: []db.CoverageTemplate{barCoverage(map[string]db.CoverageDay{
			"2026-03-02": {LunchIn: "12:00", LunchOut: "15:00"},
		})},
	}

	_, err := GenerateSchedule(context.Background(), store, testConfig(), zap.NewNop(),
		"venue-1", "2026-03-02", "2026-03-08", true)

	require.NoError(t, err)
	assert.Equal(t, "2026-02-28", store.shiftsFrom)
	assert.Equal(t, "2026-03-08", store.shiftsTo)
}

func TestGenerateSchedule_ClosureSuppressesTasks(t *testing.T) {
	cfg := testConfig()
	// Closed every Monday
	cfg.Closures = []config.ClosureOverride{{RRule: "FREQ=WEEKLY;BYDAY=MO", Reason: "weekly closure"}}

	store := &mockScheduleStore{
		staff: []db.StaffMember{barStaff("s1")},
		coverage: []db.CoverageTemplate{barCoverage(map[string]db.CoverageDay{
			"2026-03-02": {LunchIn: "12:00", LunchOut: "15:00"}, // Monday
			"2026-03-03": {LunchIn: "12:00", LunchOut: "15:00"}, // Tuesday
		})},
	}

	result, err := GenerateSchedule(context.Background(), store, cfg, zap.NewNop(),
		"venue-1", "2026-03-02", "2026-03-03", true)

	require.NoError(t, err)
	require.Len(t, result.Assignments, 1)
	assert.Equal(t, "2026-03-03", result.Assignments[0].Date)
}

func TestGenerateSchedule_NoStaff(t *testing.T) {
	store := &mockScheduleStore{
		coverage: []db.CoverageTemplate{barCoverage(nil)},
	}

	_, err := GenerateSchedule(context.Background(), store, testConfig(), zap.NewNop(),
		"venue-1", "2026-03-02", "2026-03-02", false)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "no staff found")
}

func TestGenerateSchedule_NoCoverage(t *testing.T) {
	store := &mockScheduleStore{
		staff: []db.StaffMember{barStaff("s1")},
	}

	_, err := GenerateSchedule(context.Background(), store, testConfig(), zap.NewNop(),
		"venue-1", "2026-03-02", "2026-03-02", false)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "no coverage templates found")
}

func TestGenerateSchedule_StoreErrorPropagates(t *testing.T) {
	store := &mockScheduleStore{
		getStaffErr: errors.New("connection refused"),
	}

	_, err := GenerateSchedule(context.Background(), store, testConfig(), zap.NewNop(),
		"venue-1", "2026-03-02", "2026-03-02", false)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to fetch staff")
}

func TestGenerateSchedule_InsertErrorPropagates(t *testing.T) {
	store := &mockScheduleStore{
		staff: []db.StaffMember{barStaff("s1")},
		coverage: []db.CoverageTemplate{barCoverage(map[string]db.CoverageDay{
			"2026-03-02": {LunchIn: "12:00", LunchOut: "15:00"},
		})},
		insertShiftsErr: errors.New("deadlock detected"),
	}

	_, err := GenerateSchedule(context.Background(), store, testConfig(), zap.NewNop(),
		"venue-1", "2026-03-02", "2026-03-02", false)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to save draft shifts")
}

func TestGenerateSchedule_UnassignedReported(t *testing.T) {
	// The only staff member cannot work the bar, so the slot goes unassigned
	// but the run still succeeds.
	staff := barStaff("s1")
	staff.Stations = []string{"CUCINA"}

	store := &mockScheduleStore{
		staff: []db.StaffMember{staff},
		coverage: []db.CoverageTemplate{barCoverage(map[string]db.CoverageDay{
			"2026-03-02": {LunchIn: "12:00", LunchOut: "15:00"},
		})},
	}

	result, err := GenerateSchedule(context.Background(), store, testConfig(), zap.NewNop(),
		"venue-1", "2026-03-02", "2026-03-02", false)

	require.NoError(t, err)
	assert.Empty(t, result.Assignments)
	require.Len(t, result.Unassigned, 1)
	assert.Equal(t, "BAR", result.Unassigned[0].Station)
	assert.False(t, result.Saved)
}
