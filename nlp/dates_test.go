package nlp

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// 2025-11-10 is a Monday.
var monday = time.Date(2025, time.November, 10, 8, 30, 0, 0, time.UTC)

func TestParseDateLiterals(t *testing.T) {
	assert.Equal(t, "2025-11-10", ParseDate("show me today", monday))
	assert.Equal(t, "2025-11-11", ParseDate("lunch tomorrow", monday))
	assert.Equal(t, "2025-11-09", ParseDate("what happened yesterday", monday))
}

func TestParseDateIsIdempotent(t *testing.T) {
	first := ParseDate("tomorrow", monday)
	second := ParseDate("tomorrow", monday)
	assert.Equal(t, first, second)
}

func TestParseDateWeekdays(t *testing.T) {
	assert.Equal(t, "2025-11-14", ParseDate("meeting on friday", monday))
	assert.Equal(t, "2025-11-16", ParseDate("brunch on sunday", monday))
	// today is a monday; "monday" must mean next week, never today
	assert.Equal(t, "2025-11-17", ParseDate("see you monday", monday))
}

func TestParseDateRelativeDays(t *testing.T) {
	assert.Equal(t, "2025-11-13", ParseDate("in 3 days", monday))
	assert.Equal(t, "2025-11-11", ParseDate("in 1 day", monday))
}

func TestParseDateNumericForms(t *testing.T) {
	assert.Equal(t, "2025-11-15", ParseDate("agenda for 2025-11-15 please", monday))
	assert.Equal(t, "2025-01-05", ParseDate("on 2025-1-5", monday))
	assert.Equal(t, "2025-11-15", ParseDate("on 11/15/2025", monday))
	// no year given, the current one is assumed
	assert.Equal(t, "2025-05-20", ParseDate("party on 5/20", monday))
}

func TestParseDateMonthNames(t *testing.T) {
	assert.Equal(t, "2025-11-15", ParseDate("on Nov 15", monday))
	assert.Equal(t, "2025-12-01", ParseDate("on dec. 1", monday))
	assert.Equal(t, "2025-03-07", ParseDate("march 7 works for me", monday))
}

func TestParseDateAbsent(t *testing.T) {
	assert.Equal(t, "", ParseDate("nothing datelike here", monday))
	assert.Equal(t, "", ParseDate("", monday))
	// out of range components reject the candidate
	assert.Equal(t, "", ParseDate("13/40", monday))
}
