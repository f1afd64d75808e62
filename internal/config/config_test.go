package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "staffplan_config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadFromPath_AppliesDefaults(t *testing.T) {
	path := writeConfig(t, "databaseURL: postgres://localhost/staffplan\n")

	cfg, err := LoadFromPath(path)
	require.NoError(t, err)

	assert.Equal(t, "postgres://localhost/staffplan", cfg.DatabaseURL)
	assert.Equal(t, 660, cfg.RestMinutes)
	assert.Equal(t, 2.0, cfg.FixedShiftToleranceHours)
	assert.Equal(t, 50.0, cfg.SeniorBonus)
	assert.Equal(t, 2, cfg.LookbackDays)
	assert.Equal(t, []string{"MANAGER"}, cfg.ExcludedStations)
}

func TestLoadFromPath_OverridesDefaults(t *testing.T) {
	path := writeConfig(t, `databaseURL: postgres://localhost/staffplan
restMinutes: 720
fixedShiftToleranceHours: 1.5
seniorBonus: 25
lookbackDays: 3
excludedStations:
  - MANAGER
  - OFFICE
`)

	cfg, err := LoadFromPath(path)
	require.NoError(t, err)

	assert.Equal(t, 720, cfg.RestMinutes)
	assert.Equal(t, 1.5, cfg.FixedShiftToleranceHours)
	assert.Equal(t, 25.0, cfg.SeniorBonus)
	assert.Equal(t, 3, cfg.LookbackDays)
	assert.Equal(t, []string{"MANAGER", "OFFICE"}, cfg.ExcludedStations)
}

func TestLoadFromPath_MissingDatabaseURL(t *testing.T) {
	path := writeConfig(t, "restMinutes: 720\n")

	_, err := LoadFromPath(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "validation failed")
}

func TestLoadFromPath_LookbackTooSmall(t *testing.T) {
	path := writeConfig(t, `databaseURL: postgres://localhost/staffplan
lookbackDays: 1
`)

	_, err := LoadFromPath(path)
	assert.Error(t, err)
}

func TestLoadFromPath_ValidClosures(t *testing.T) {
	path := writeConfig(t, `databaseURL: postgres://localhost/staffplan
closures:
  - rrule: FREQ=WEEKLY;BYDAY=MO
    reason: weekly closure day
`)

	cfg, err := LoadFromPath(path)
	require.NoError(t, err)
	require.Len(t, cfg.Closures, 1)
	assert.Equal(t, "weekly closure day", cfg.Closures[0].Reason)
}

func TestLoadFromPath_InvalidClosureRule(t *testing.T) {
	path := writeConfig(t, `databaseURL: postgres://localhost/staffplan
closures:
  - rrule: "FREQ=BOGUS"
`)

	_, err := LoadFromPath(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid rrule")
}

func TestLoadFromPath_MalformedYAML(t *testing.T) {
	path := writeConfig(t, "databaseURL: [unclosed\n")

	_, err := LoadFromPath(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse config file")
}

func TestLoadFromPath_FileNotFound(t *testing.T) {
	_, err := LoadFromPath(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read config file")
}
