package nlp

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// monday is a fixed reference date: Monday, June 1, 2026.
var monday = time.Date(2026, 6, 1, 10, 30, 0, 0, time.Local)

func TestCanonicalWeekday(t *testing.T) {
	for _, phrase := range []string{"friday", "Friday", "FRIDAY", "  friday  "} {
		name, ok := CanonicalWeekday(phrase)
		require.True(t, ok, phrase)
		assert.Equal(t, "Friday", name)
	}

	_, ok := CanonicalWeekday("someday")
	assert.False(t, ok)
}

func TestNextWeekday_Future(t *testing.T) {
	got := NextWeekday(monday, time.Friday)
	assert.Equal(t, time.Date(2026, 6, 5, 0, 0, 0, 0, time.Local), got)
}

func TestNextWeekday_SameDayRollsAWeek(t *testing.T) {
	// A bare "Monday" spoken on a Monday means next Monday, never today.
	got := NextWeekday(monday, time.Monday)
	assert.Equal(t, time.Date(2026, 6, 8, 0, 0, 0, 0, time.Local), got)
}

func TestResolveDueDate(t *testing.T) {
	tomorrow := time.Date(2026, 6, 2, 0, 0, 0, 0, time.Local)

	tests := []struct {
		name    string
		message string
		want    time.Time
	}{
		{"iso date", "exam on 2026-09-15", time.Date(2026, 9, 15, 0, 0, 0, 0, time.Local)},
		{"slash date", "due 9/15/2026", time.Date(2026, 9, 15, 0, 0, 0, 0, time.Local)},
		{"tomorrow", "finish it tomorrow", tomorrow},
		{"today", "I have to do it today", DateOnly(monday)},
		{"tonight", "quiz tonight", DateOnly(monday)},
		{"in n days", "exam in 10 days", time.Date(2026, 6, 11, 0, 0, 0, 0, time.Local)},
		{"next weekday", "due next friday", time.Date(2026, 6, 5, 0, 0, 0, 0, time.Local)},
		{"bare weekday", "due Friday", time.Date(2026, 6, 5, 0, 0, 0, 0, time.Local)},
		{"bare weekday same day", "due Monday", time.Date(2026, 6, 8, 0, 0, 0, 0, time.Local)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ResolveDueDate(tt.message, monday)
			require.True(t, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestResolveDueDate_NoDatePhrase(t *testing.T) {
	_, ok := ResolveDueDate("finish my essay", monday)
	assert.False(t, ok)
}

func TestResolveDueDate_ExplicitDateBeatsRelative(t *testing.T) {
	// An explicit date wins even when "tomorrow" also appears.
	got, ok := ResolveDueDate("move it from tomorrow to 2026-07-01", monday)
	require.True(t, ok)
	assert.Equal(t, time.Date(2026, 7, 1, 0, 0, 0, 0, time.Local), got)
}

func TestResolveDayName(t *testing.T) {
	tests := []struct {
		name    string
		message string
		want    string
	}{
		{"tomorrow", "quiz tomorrow at 2 PM", "Tuesday"},
		{"today", "meeting today", "Monday"},
		{"this evening", "review this evening", "Monday"},
		{"bare weekday", "class on friday", "Friday"},
		{"next weekday", "next wednesday", "Wednesday"},
		{"no day", "finish the essay", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ResolveDayName(tt.message, monday))
		})
	}
}

func TestDateOnly(t *testing.T) {
	got := DateOnly(monday)
	assert.Equal(t, 0, got.Hour())
	assert.Equal(t, monday.Year(), got.Year())
	assert.Equal(t, monday.Month(), got.Month())
	assert.Equal(t, monday.Day(), got.Day())
}
