package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToMinutes(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		want    int
		wantErr bool
	}{
		{name: "midnight", value: "00:00", want: 0},
		{name: "morning", value: "09:30", want: 570},
		{name: "last minute of day", value: "23:59", want: 1439},
		{name: "leading whitespace", value: " 10:00", want: 600},
		{name: "missing colon", value: "1030", wantErr: true},
		{name: "non numeric hours", value: "ab:30", wantErr: true},
		{name: "non numeric minutes", value: "10:xx", wantErr: true},
		{name: "hours out of range", value: "24:00", wantErr: true},
		{name: "minutes out of range", value: "10:60", wantErr: true},
		{name: "empty", value: "", wantErr: true},
		{name: "too many parts", value: "10:30:00", wantErr: true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ToMinutes(tc.value)
			if tc.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, ErrInvalidTimeFormat)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestNormalizeOvernight(t *testing.T) {
	// 18:00 - 02:00 crosses midnight
	assert.Equal(t, 1560, NormalizeOvernight(1080, 120))

	// 10:00 - 15:00 is untouched
	assert.Equal(t, 900, NormalizeOvernight(600, 900))

	// Zero-length shift is untouched
	assert.Equal(t, 600, NormalizeOvernight(600, 600))
}

func TestOverlaps(t *testing.T) {
	// Partial overlap
	assert.True(t, Overlaps(600, 900, 800, 1000))

	// Containment
	assert.True(t, Overlaps(600, 900, 700, 800))

	// Touching boundaries do not overlap
	assert.False(t, Overlaps(600, 900, 900, 1000))

	// Disjoint
	assert.False(t, Overlaps(600, 700, 800, 900))

	// Overnight shift vs next-morning window after normalization
	end := NormalizeOvernight(1080, 120) // 18:00-02:00
	assert.True(t, Overlaps(1080, end, 1500, 1560))
}

func TestDatesBetween(t *testing.T) {
	dates, err := datesBetween("2026-01-12", "2026-01-14")
	require.NoError(t, err)
	assert.Equal(t, []string{"2026-01-12", "2026-01-13", "2026-01-14"}, dates)

	single, err := datesBetween("2026-01-12", "2026-01-12")
	require.NoError(t, err)
	assert.Equal(t, []string{"2026-01-12"}, single)

	_, err = datesBetween("2026-01-14", "2026-01-12")
	assert.Error(t, err)

	_, err = datesBetween("not-a-date", "2026-01-12")
	assert.Error(t, err)
}
