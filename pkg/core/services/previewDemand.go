package services

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/brigata/staffplan/pkg/core/engine"
	"github.com/brigata/staffplan/pkg/db"
)

// PreviewDemandResult contains the flattened demand for a date range
type PreviewDemandResult struct {
	VenueID string
	From    string
	To      string
	Tasks   []engine.ShiftTask
}

// PreviewDemandStore defines the database operations needed for previewing demand
type PreviewDemandStore interface {
	GetCoverage(ctx context.Context, venueID, from, to string) ([]db.CoverageTemplate, error)
}

// PreviewDemand flattens the venue's coverage templates into the concrete
// shift tasks the range demands, without assigning anyone.
func PreviewDemand(
	ctx context.Context,
	database PreviewDemandStore,
	logger *zap.Logger,
	venueID, from, to string,
) (*PreviewDemandResult, error) {
	logger.Debug("Starting previewDemand",
		zap.String("venue_id", venueID),
		zap.String("from", from),
		zap.String("to", to))

	logger.Debug("Fetching coverage")
	coverage, err := database.GetCoverage(ctx, venueID, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch coverage: %w", err)
	}
	logger.Debug("Found coverage templates", zap.Int("count", len(coverage)))

	tasks, err := engine.FlattenCoverage(convertToEngineCoverage(coverage), from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to flatten coverage: %w", err)
	}

	logger.Info("Demand preview completed", zap.Int("tasks", len(tasks)))

	return &PreviewDemandResult{
		VenueID: venueID,
		From:    from,
		To:      to,
		Tasks:   tasks,
	}, nil
}
