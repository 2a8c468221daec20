package nlp

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

var (
	meridiemRe = regexp.MustCompile(`(?i)\b(\d{1,2})(?::(\d{2}))?\s*(am|pm)\b`)
	clockRe    = regexp.MustCompile(`\b(\d{1,2}):(\d{2})\b`)
	timeWordRe = regexp.MustCompile(`(?i)\b(noon|midnight|morning|afternoon|evening|night)\b`)
)

var timeWords = map[string]string{
	"noon":      "12:00",
	"midnight":  "00:00",
	"morning":   "09:00",
	"afternoon": "14:00",
	"evening":   "18:00",
	"night":     "20:00",
}

// ParseTime resolves a time-of-day expression to the canonical
// zero-padded 24-hour HH:MM form, or the empty string when the text
// carries no recognizable time. 12am maps to 00:00 and 12pm to 12:00.
func ParseTime(text string) string {
	if m := meridiemRe.FindStringSubmatch(text); m != nil {
		hour, _ := strconv.Atoi(m[1])
		if hour >= 1 && hour <= 12 && validMinutes(m[2]) {
			minutes := m[2]
			if minutes == "" {
				minutes = "00"
			}
			switch strings.ToLower(m[3]) {
			case "am":
				if hour == 12 {
					hour = 0
				}
			case "pm":
				if hour != 12 {
					hour += 12
				}
			}
			return fmt.Sprintf("%02d:%s", hour, minutes)
		}
	}
	if m := clockRe.FindStringSubmatch(text); m != nil {
		hour, _ := strconv.Atoi(m[1])
		if hour <= 23 && validMinutes(m[2]) {
			return fmt.Sprintf("%02d:%s", hour, m[2])
		}
	}
	if m := timeWordRe.FindStringSubmatch(text); m != nil {
		return timeWords[strings.ToLower(m[1])]
	}
	return ""
}

// validMinutes accepts an absent minutes group or one within 00..59.
func validMinutes(minutes string) bool {
	if minutes == "" {
		return true
	}
	n, _ := strconv.Atoi(minutes)
	return n <= 59
}
