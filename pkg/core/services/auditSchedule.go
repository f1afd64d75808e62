package services

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/brigata/staffplan/internal/config"
	"github.com/brigata/staffplan/pkg/core/engine"
	"github.com/brigata/staffplan/pkg/db"
)

// AuditScheduleResult contains the coverage audit outcome
type AuditScheduleResult struct {
	VenueID   string
	From      string
	To        string
	Uncovered []engine.UnassignedTask
}

// AuditScheduleStore defines the database operations needed for auditing coverage
type AuditScheduleStore interface {
	GetCoverage(ctx context.Context, venueID, from, to string) ([]db.CoverageTemplate, error)
	GetShifts(ctx context.Context, venueID, from, to string) ([]db.ShiftRecord, error)
}

// AuditSchedule re-derives the demand for the date range and reports every
// slot no stored shift covers. Read-only: nothing is written.
func AuditSchedule(
	ctx context.Context,
	database AuditScheduleStore,
	cfg *config.Config,
	logger *zap.Logger,
	venueID, from, to string,
) (*AuditScheduleResult, error) {
	logger.Debug("Starting auditSchedule",
		zap.String("venue_id", venueID),
		zap.String("from", from),
		zap.String("to", to))

	// Step 1: DB query - Fetch coverage templates
	logger.Debug("Fetching coverage")
	coverage, err := database.GetCoverage(ctx, venueID, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch coverage: %w", err)
	}
	logger.Debug("Found coverage templates", zap.Int("count", len(coverage)))

	// Step 2: DB query - Fetch stored shifts
	logger.Debug("Fetching shifts")
	shifts, err := database.GetShifts(ctx, venueID, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch shifts: %w", err)
	}
	logger.Debug("Found shifts", zap.Int("count", len(shifts)))

	opts, err := engineOptions(cfg, from, to, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to build engine options: %w", err)
	}

	uncovered, err := engine.Audit(
		convertToEngineCoverage(coverage),
		convertToEngineAssignments(shifts),
		from, to, opts,
	)
	if err != nil {
		return nil, fmt.Errorf("coverage audit failed: %w", err)
	}

	logger.Info("Audit completed", zap.Int("uncovered", len(uncovered)))
	for _, task := range uncovered {
		logger.Warn("Uncovered slot",
			zap.String("date", task.Date),
			zap.String("station", task.Station),
			zap.String("start", task.Start),
			zap.String("end", task.End))
	}

	return &AuditScheduleResult{
		VenueID:   venueID,
		From:      from,
		To:        to,
		Uncovered: uncovered,
	}, nil
}
