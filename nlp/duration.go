package nlp

import (
	"regexp"
	"strings"
)

var durationRe = regexp.MustCompile(`(?i)\bfor (\d+)\s*(hours?|hrs?|minutes?|mins?)\b`)

// ParseDuration resolves a "for N <unit>" expression to the normalized
// magnitude plus unit tag form, "2h" or "45m". No unit arithmetic is
// done beyond the tagging. Returns the empty string on no match.
func ParseDuration(text string) string {
	m := durationRe.FindStringSubmatch(text)
	if m == nil {
		return ""
	}
	if strings.HasPrefix(strings.ToLower(m[2]), "h") {
		return m[1] + "h"
	}
	return m[1] + "m"
}
