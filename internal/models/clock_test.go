package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseClock(t *testing.T) {
	tests := []struct {
		in   string
		want Minutes
	}{
		{"00:00", 0},
		{"09:30", 570},
		{"12:00", 720},
		{"23:59", 1439},
	}
	for _, tt := range tests {
		got, err := ParseClock(tt.in)
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}
}

func TestParseClockRejectsMalformed(t *testing.T) {
	for _, in := range []string{"", "9:30", "09:3", "0930", "24:00", "12:60", "ab:cd", "12-30", "09:30:00"} {
		_, err := ParseClock(in)
		assert.Error(t, err, "input %q", in)
	}
}

func TestMinutesString(t *testing.T) {
	assert.Equal(t, "00:00", Minutes(0).String())
	assert.Equal(t, "09:05", Minutes(545).String())
	assert.Equal(t, "23:59", Minutes(1439).String())
}

func TestMinutesJSON(t *testing.T) {
	data, err := json.Marshal(Minutes(570))
	require.NoError(t, err)
	assert.Equal(t, `"09:30"`, string(data))

	var m Minutes
	require.NoError(t, json.Unmarshal([]byte(`"14:05"`), &m))
	assert.Equal(t, Minutes(845), m)

	assert.Error(t, json.Unmarshal([]byte(`"25:00"`), &m))
	assert.Error(t, json.Unmarshal([]byte(`930`), &m))
}

func TestOverlaps(t *testing.T) {
	tests := []struct {
		name         string
		aStart, aEnd Minutes
		bStart, bEnd Minutes
		want         bool
	}{
		{"identical", 540, 600, 540, 600, true},
		{"partial", 540, 600, 570, 630, true},
		{"nested", 540, 600, 550, 560, true},
		{"disjoint", 540, 600, 660, 720, false},
		{"touch at end", 540, 600, 600, 660, false},
		{"touch at start", 600, 660, 540, 600, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Overlaps(tt.aStart, tt.aEnd, tt.bStart, tt.bEnd))
			assert.Equal(t, tt.want, Overlaps(tt.bStart, tt.bEnd, tt.aStart, tt.aEnd), "overlap must be symmetric")
		})
	}
}

func TestValidDate(t *testing.T) {
	assert.True(t, ValidDate("2024-01-10"))
	assert.False(t, ValidDate("2024-13-01"))
	assert.False(t, ValidDate("2024-1-1"))
	assert.False(t, ValidDate("10/01/2024"))
	assert.False(t, ValidDate(""))
}
