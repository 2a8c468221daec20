package calendar

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSuggestEmptyCalendar(t *testing.T) {
	s := NewStore()
	got := Suggest(s, testNow)
	assert.Equal(t, emptyCalendarAdvice, got)
	assert.NotContains(t, got, testNow.Format(DayLayout), "no per-day breakdown for an empty calendar")
}

func TestSuggestSignals(t *testing.T) {
	s := NewStore()
	today := testNow.Format(DayLayout)
	// three events today make it packed, tomorrow stays free
	s.Add(today, "standup", "09:00", "")
	s.Add(today, "review", "11:00", "")
	s.Add(today, "one on one", "15:00", "")

	got := Suggest(s, testNow)
	lines := strings.Split(got, "\n")
	require.Len(t, lines, 3)

	tomorrow := testNow.AddDate(0, 0, 1).Format(DayLayout)
	assert.Contains(t, lines[0], tomorrow)
	assert.Contains(t, lines[0], "free")
	assert.Contains(t, lines[1], today)
	assert.Contains(t, lines[1], "packed")
	assert.Contains(t, lines[2], tomorrow)
	assert.Contains(t, lines[2], "availability")
}

func TestSuggestMinimumTieGoesToEarliest(t *testing.T) {
	s := NewStore()
	// every day of the window busy with one event, no free or packed day
	for i := 0; i < Window; i++ {
		s.Add(testNow.AddDate(0, 0, i).Format(DayLayout), "busywork", "", "")
	}

	got := Suggest(s, testNow)
	lines := strings.Split(got, "\n")
	require.Len(t, lines, 1)
	assert.Contains(t, lines[0], testNow.Format(DayLayout))
	assert.Contains(t, lines[0], "availability")
}

// events outside the window must not disturb the heuristics beyond the
// empty calendar check
func TestSuggestWindowIsRolling(t *testing.T) {
	s := NewStore()
	past := testNow.AddDate(0, 0, -30).Format(DayLayout)
	s.Add(past, "long gone", "", "")

	got := Suggest(s, testNow)
	assert.NotEqual(t, emptyCalendarAdvice, got)
	assert.Contains(t, got, testNow.Format(DayLayout), "today is the free day reported first")
}
