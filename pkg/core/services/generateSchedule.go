package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/brigata/staffplan/internal/config"
	"github.com/brigata/staffplan/pkg/core/engine"
	"github.com/brigata/staffplan/pkg/db"
)

// GenerateScheduleResult contains the outcome of a schedule generation run
type GenerateScheduleResult struct {
	VenueID     string
	From        string
	To          string
	Assignments []engine.Assignment
	Unassigned  []engine.UnassignedTask
	Stats       engine.RunStats
	Saved       bool
}

// GenerateScheduleStore defines the database operations needed for generating a schedule
type GenerateScheduleStore interface {
	GetStaff(ctx context.Context, venueID string) ([]db.StaffMember, error)
	GetUnavailability(ctx context.Context, venueID, from, to string) ([]db.UnavailabilityRecord, error)
	GetCoverage(ctx context.Context, venueID, from, to string) ([]db.CoverageTemplate, error)
	GetShifts(ctx context.Context, venueID, from, to string) ([]db.ShiftRecord, error)
	GetRecurringShifts(ctx context.Context, venueID string) ([]db.RecurringShiftRecord, error)
	GetLeave(ctx context.Context, venueID, from, to string) ([]db.LeaveRecord, error)
	GetIncompatibilities(ctx context.Context, venueID string) ([]db.IncompatibilityPair, error)
	InsertShifts(ctx context.Context, shifts []db.ShiftRecord) error
}

// GenerateSchedule runs the assignment engine over the venue's coverage for
// the given date range and saves the resulting draft shifts.
// If dryRun is true, drafts are not saved to the database
func GenerateSchedule(
	ctx context.Context,
	database GenerateScheduleStore,
	cfg *config.Config,
	logger *zap.Logger,
	venueID, from, to string,
	dryRun bool,
) (*GenerateScheduleResult, error) {
	logger.Debug("Starting generateSchedule",
		zap.String("venue_id", venueID),
		zap.String("from", from),
		zap.String("to", to),
		zap.Bool("dry_run", dryRun))

	// Existing shifts are loaded from before the range start so the rest rule
	// holds across the boundary.
	lookbackFrom, err := lookbackDate(from, cfg.LookbackDays)
	if err != nil {
		return nil, fmt.Errorf("failed to compute lookback date: %w", err)
	}

	// Step 1: DB query - Fetch staff roster
	logger.Debug("Fetching staff")
	staff, err := database.GetStaff(ctx, venueID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch staff: %w", err)
	}
	logger.Debug("Found staff", zap.Int("count", len(staff)))

	if len(staff) == 0 {
		return nil, fmt.Errorf("no staff found for venue %s - please add staff first", venueID)
	}

	// Step 2: DB query - Fetch unavailability windows
	logger.Debug("Fetching unavailability")
	unavailability, err := database.GetUnavailability(ctx, venueID, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch unavailability: %w", err)
	}
	logger.Debug("Found unavailability records", zap.Int("count", len(unavailability)))

	// Step 3: DB query - Fetch coverage templates
	logger.Debug("Fetching coverage")
	coverage, err := database.GetCoverage(ctx, venueID, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch coverage: %w", err)
	}
	logger.Debug("Found coverage templates", zap.Int("count", len(coverage)))

	if len(coverage) == 0 {
		return nil, fmt.Errorf("no coverage templates found for venue %s - please define coverage first", venueID)
	}

	// Step 4: DB query - Fetch existing shifts including the lookback window
	logger.Debug("Fetching existing shifts", zap.String("lookback_from", lookbackFrom))
	existing, err := database.GetShifts(ctx, venueID, lookbackFrom, to)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch existing shifts: %w", err)
	}
	logger.Debug("Found existing shifts", zap.Int("count", len(existing)))

	// Step 5: DB query - Fetch fixed weekly patterns
	logger.Debug("Fetching recurring shifts")
	recurring, err := database.GetRecurringShifts(ctx, venueID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch recurring shifts: %w", err)
	}
	logger.Debug("Found recurring shifts", zap.Int("count", len(recurring)))

	// Step 6: DB query - Fetch approved leave
	logger.Debug("Fetching leave")
	leave, err := database.GetLeave(ctx, venueID, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch leave: %w", err)
	}
	logger.Debug("Found leave records", zap.Int("count", len(leave)))

	// Step 7: DB query - Fetch incompatibility pairs
	logger.Debug("Fetching incompatibilities")
	incompatible, err := database.GetIncompatibilities(ctx, venueID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch incompatibilities: %w", err)
	}
	logger.Debug("Found incompatibility pairs", zap.Int("count", len(incompatible)))

	// Build engine options from config, expanding closure rules
	logger.Debug("Expanding closures", zap.Int("count", len(cfg.Closures)))
	opts, err := engineOptions(cfg, from, to, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to build engine options: %w", err)
	}

	input := engine.Input{
		Workers:      convertToEngineWorkers(staff, unavailability),
		Coverage:     convertToEngineCoverage(coverage),
		Existing:     convertToEngineAssignments(existing),
		Recurring:    convertToEngineRecurring(recurring),
		Leave:        convertToEngineLeave(leave),
		Incompatible: convertToEnginePairs(incompatible),
		From:         from,
		To:           to,
		Options:      opts,
	}

	// Run the assignment engine
	logger.Info("Running assignment engine")
	result, err := engine.Generate(input)
	if err != nil {
		return nil, fmt.Errorf("schedule generation failed: %w", err)
	}

	logger.Info("Assignment completed",
		zap.Int("assignments", len(result.Assignments)),
		zap.Int("unassigned", len(result.Unassigned)),
		zap.Int("tasks_generated", result.Stats.TasksGenerated),
		zap.Int("fixed_shifts_placed", result.Stats.FixedShiftsPlaced),
		zap.Int("malformed_times", result.Stats.MalformedTimes))

	for _, task := range result.Unassigned {
		logger.Warn("Unassigned task",
			zap.String("date", task.Date),
			zap.String("station", task.Station),
			zap.String("start", task.Start),
			zap.String("end", task.End),
			zap.String("reason", task.Reason))
	}

	saved := false
	if dryRun {
		logger.Info("Dry run mode - drafts not saved")
	} else if len(result.Assignments) == 0 {
		logger.Info("No assignments produced - nothing to save")
	} else {
		logger.Info("Saving draft shifts to database", zap.Int("count", len(result.Assignments)))
		records := convertToShiftRecords(venueID, result.Assignments)
		if err := database.InsertShifts(ctx, records); err != nil {
			return nil, fmt.Errorf("failed to save draft shifts: %w", err)
		}
		saved = true
		logger.Info("Draft shifts saved", zap.Int("count", len(records)))
	}

	return &GenerateScheduleResult{
		VenueID:     venueID,
		From:        from,
		To:          to,
		Assignments: result.Assignments,
		Unassigned:  result.Unassigned,
		Stats:       result.Stats,
		Saved:       saved,
	}, nil
}

// convertToShiftRecords converts engine assignments to database shift records
func convertToShiftRecords(venueID string, assignments []engine.Assignment) []db.ShiftRecord {
	records := make([]db.ShiftRecord, len(assignments))
	for i, a := range assignments {
		id := a.ID
		if id == "" {
			id = uuid.New().String()
		}
		records[i] = db.ShiftRecord{
			ID:        id,
			VenueID:   venueID,
			StaffID:   a.WorkerID,
			ShiftDate: a.Date,
			StartTime: a.Start,
			EndTime:   a.End,
			Station:   a.Station,
			Draft:     a.Draft,
		}
	}
	return records
}
