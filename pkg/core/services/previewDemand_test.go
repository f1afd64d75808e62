package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/brigata/staffplan/pkg/core/engine"
	"github.com/brigata/staffplan/pkg/db"
)

// mockPreviewStore implements PreviewDemandStore for testing
type mockPreviewStore struct {
	coverage []db.CoverageTemplate
}

func (m *mockPreviewStore) GetCoverage(ctx context.Context, venueID, from, to string) ([]db.CoverageTemplate, error) {
	return m.coverage, nil
}

func TestPreviewDemand_FlattensCoverage(t *testing.T) {
	store := &mockPreviewStore{
		coverage: []db.CoverageTemplate{barCoverage(map[string]db.CoverageDay{
			"2026-03-02": {LunchIn: "12:00", LunchOut: "15:00", DinnerIn: "19:00", DinnerOut: "23:00"},
		})},
	}

	result, err := PreviewDemand(context.Background(), store, zap.NewNop(),
		"venue-1", "2026-03-02", "2026-03-02")

	require.NoError(t, err)
	require.Len(t, result.Tasks, 2)
	assert.Equal(t, engine.PeriodLunch, result.Tasks[0].Period)
	assert.Equal(t, engine.PeriodDinner, result.Tasks[1].Period)
}

func TestPreviewDemand_EmptyCoverage(t *testing.T) {
	store := &mockPreviewStore{}

	result, err := PreviewDemand(context.Background(), store, zap.NewNop(),
		"venue-1", "2026-03-02", "2026-03-02")

	require.NoError(t, err)
	assert.Empty(t, result.Tasks)
}
