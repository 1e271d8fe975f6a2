package assistant

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestParseEndOfWeek verifies "end of week" resolves to the upcoming Sunday
// and never to the current day.
func TestParseEndOfWeek(t *testing.T) {
	parser := NewDateParser()

	tests := []struct {
		name string
		now  time.Time
		want string
	}{
		// 2026-06-01 is a Monday.
		{"from monday", time.Date(2026, 6, 1, 10, 0, 0, 0, time.UTC), "2026-06-07"},
		{"from thursday", time.Date(2026, 6, 4, 10, 0, 0, 0, time.UTC), "2026-06-07"},
		{"from saturday", time.Date(2026, 6, 6, 10, 0, 0, 0, time.UTC), "2026-06-07"},
		{"from sunday skips a full week", time.Date(2026, 6, 7, 10, 0, 0, 0, time.UTC), "2026-06-14"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			due, ok := parser.Parse("finish report by end of week", tt.now)
			require.True(t, ok, "end of week should always yield a date")
			assert.Equal(t, tt.want, due.String())
		})
	}
}

// TestParseEndOfMonth verifies "end of month" resolves to the last calendar
// day of the current month, including the documented boundary cases.
func TestParseEndOfMonth(t *testing.T) {
	parser := NewDateParser()

	tests := []struct {
		name string
		now  time.Time
		want string
	}{
		{"mid june", time.Date(2026, 6, 10, 9, 0, 0, 0, time.UTC), "2026-06-30"},
		{"already the last day", time.Date(2026, 6, 30, 9, 0, 0, 0, time.UTC), "2026-06-30"},
		{"february leap year", time.Date(2028, 2, 3, 9, 0, 0, 0, time.UTC), "2028-02-29"},
		{"february non-leap year", time.Date(2026, 2, 3, 9, 0, 0, 0, time.UTC), "2026-02-28"},
		{"december resolves directly", time.Date(2026, 12, 5, 9, 0, 0, 0, time.UTC), "2026-12-31"},
		{"december 31 itself", time.Date(2026, 12, 31, 9, 0, 0, 0, time.UTC), "2026-12-31"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			due, ok := parser.Parse("pay rent by end of month", tt.now)
			require.True(t, ok, "end of month should always yield a date")
			assert.Equal(t, tt.want, due.String())
		})
	}
}

// TestParseDelegatesToGeneralParser verifies phrases outside the two special
// cases go through the general parser relative to the reference instant.
func TestParseDelegatesToGeneralParser(t *testing.T) {
	parser := NewDateParser()
	now := time.Date(2026, 6, 1, 10, 0, 0, 0, time.UTC) // Monday

	due, ok := parser.Parse("remind me to buy milk tomorrow", now)
	require.True(t, ok, "tomorrow should be recognized")
	assert.Equal(t, "2026-06-02", due.String())
}

// TestParseNoDateIsNotAnError verifies undateable text yields no date rather
// than failing.
func TestParseNoDateIsNotAnError(t *testing.T) {
	parser := NewDateParser()
	now := time.Date(2026, 6, 1, 10, 0, 0, 0, time.UTC)

	_, ok := parser.Parse("buy milk", now)
	assert.False(t, ok, "text without a date phrase should yield no date")
}
