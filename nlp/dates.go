package nlp

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"git.sr.ht/~mariusor/kairos/calendar"
)

var (
	relDaysRe   = regexp.MustCompile(`(?i)\bin (\d+) days?\b`)
	isoDateRe   = regexp.MustCompile(`\b(\d{4})-(\d{1,2})-(\d{1,2})\b`)
	slashFullRe = regexp.MustCompile(`\b(\d{1,2})/(\d{1,2})/(\d{4})\b`)
	slashRe     = regexp.MustCompile(`\b(\d{1,2})/(\d{1,2})(/?)`)
	monthDayRe  = regexp.MustCompile(`(?i)\b(jan|feb|mar|apr|may|jun|jul|aug|sep|oct|nov|dec)[a-z]*\.?\s+(\d{1,2})\b`)
)

var weekdayNames = []struct {
	name string
	day  time.Weekday
}{
	{"monday", time.Monday},
	{"tuesday", time.Tuesday},
	{"wednesday", time.Wednesday},
	{"thursday", time.Thursday},
	{"friday", time.Friday},
	{"saturday", time.Saturday},
	{"sunday", time.Sunday},
}

var monthNames = map[string]time.Month{
	"jan": time.January, "feb": time.February, "mar": time.March,
	"apr": time.April, "may": time.May, "jun": time.June,
	"jul": time.July, "aug": time.August, "sep": time.September,
	"oct": time.October, "nov": time.November, "dec": time.December,
}

// ParseDate resolves a date expression found in text to its canonical
// form, relative to now. It returns the empty string when nothing in
// the text reads as a date; callers must not treat that as "today".
//
// The alternatives are tried in a fixed order, first success wins:
// literal today/tomorrow/yesterday, a weekday name, "in N days",
// YYYY-M-D, M/D/YYYY, bare M/D, and a month name followed by a day.
func ParseDate(text string, now time.Time) string {
	lower := strings.ToLower(text)

	switch {
	case strings.Contains(lower, "today"):
		return now.Format(calendar.DayLayout)
	case strings.Contains(lower, "tomorrow"):
		return now.AddDate(0, 0, 1).Format(calendar.DayLayout)
	case strings.Contains(lower, "yesterday"):
		return now.AddDate(0, 0, -1).Format(calendar.DayLayout)
	}

	for _, wd := range weekdayNames {
		if !strings.Contains(lower, wd.name) {
			continue
		}
		// next occurrence strictly after today
		offset := (int(wd.day) - int(now.Weekday()) + 7) % 7
		if offset == 0 {
			offset = 7
		}
		return now.AddDate(0, 0, offset).Format(calendar.DayLayout)
	}

	if m := relDaysRe.FindStringSubmatch(text); m != nil {
		n, err := strconv.Atoi(m[1])
		if err == nil {
			return now.AddDate(0, 0, n).Format(calendar.DayLayout)
		}
	}

	if m := isoDateRe.FindStringSubmatch(text); m != nil {
		if d := civilDate(m[1], m[2], m[3], now); d != "" {
			return d
		}
	}
	if m := slashFullRe.FindStringSubmatch(text); m != nil {
		if d := civilDate(m[3], m[1], m[2], now); d != "" {
			return d
		}
	}
	// M/D with no year; a trailing slash means it was really part of a
	// longer form that the previous rule rejected.
	if m := slashRe.FindStringSubmatch(text); m != nil && m[3] != "/" {
		if d := civilDate("", m[1], m[2], now); d != "" {
			return d
		}
	}
	if m := monthDayRe.FindStringSubmatch(text); m != nil {
		mon := monthNames[strings.ToLower(m[1])]
		day, _ := strconv.Atoi(m[2])
		if day >= 1 && day <= 31 {
			return time.Date(now.Year(), mon, day, 0, 0, 0, 0, now.Location()).Format(calendar.DayLayout)
		}
	}
	return ""
}

// civilDate builds a canonical date out of string components, assuming
// the current year when none is given. Out of range components reject
// the candidate so the caller can fall through to the next rule.
func civilDate(year, month, day string, now time.Time) string {
	y := now.Year()
	if year != "" {
		y, _ = strconv.Atoi(year)
	}
	m, _ := strconv.Atoi(month)
	d, _ := strconv.Atoi(day)
	if m < 1 || m > 12 || d < 1 || d > 31 {
		return ""
	}
	return time.Date(y, time.Month(m), d, 0, 0, 0, 0, now.Location()).Format(calendar.DayLayout)
}
