package cache

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTimeUntilNextRefresh(t *testing.T) {
	t.Parallel()

	duration := TimeUntilNextRefresh()

	// Duration should always be positive and at most one (possibly 25h) day
	assert.Greater(t, duration, time.Duration(0))
	assert.LessOrEqual(t, duration, 25*time.Hour)
}

func TestTimeUntilNext(t *testing.T) {
	t.Parallel()

	warsaw, err := time.LoadLocation("Europe/Warsaw")
	require.NoError(t, err)

	tests := []struct {
		name     string
		now      time.Time
		expected time.Duration
	}{
		{
			name:     "before refresh hour on the same day",
			now:      time.Date(2026, 1, 10, 1, 30, 0, 0, warsaw),
			expected: 90 * time.Minute,
		},
		{
			name:     "after refresh hour rolls to next day",
			now:      time.Date(2026, 1, 10, 4, 0, 0, 0, warsaw),
			expected: 23 * time.Hour,
		},
		{
			name:     "exactly at refresh hour rolls to next day",
			now:      time.Date(2026, 1, 10, 3, 0, 0, 0, warsaw),
			expected: 24 * time.Hour,
		},
		{
			name:     "input in another zone is converted",
			now:      time.Date(2026, 1, 10, 1, 0, 0, 0, time.UTC), // 02:00 in Warsaw
			expected: time.Hour,
		},
		{
			name:     "spring forward night is one hour shorter",
			now:      time.Date(2026, 3, 28, 12, 0, 0, 0, warsaw),
			expected: 14 * time.Hour,
		},
		{
			name:     "fall back night is one hour longer",
			now:      time.Date(2026, 10, 24, 12, 0, 0, 0, warsaw),
			expected: 16 * time.Hour,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, timeUntilNext(tt.now, 3, warsaw))
		})
	}
}
