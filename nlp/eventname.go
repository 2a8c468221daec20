package nlp

import (
	"regexp"
	"strings"
)

// The event label is buried inside free text and the same sentence can
// satisfy several heuristics with different precision. The candidates
// below are tried most specific first, and the whole-string stripping
// fallback only runs when every structured attempt failed.
var (
	// verb [article] <name> <temporal connective | digit>
	verbBoundedRe = regexp.MustCompile(`(?i)\b(?:schedule|add|book|setup|create|plan)\s+(?:(?:the|a|an|my|our)\s+)?(.+?)(?:\s+(?:on|at|tomorrow|today|yesterday|next|this|for|in)\b|\s+\d)`)
	// verb [article] <name> to end of string
	verbOpenRe = regexp.MustCompile(`(?i)\b(?:schedule|add|book|setup|create|plan)\s+(?:(?:the|a|an|my|our)\s+)?(.+)$`)
	// <name> before a leading on/at connective
	leadingSpanRe = regexp.MustCompile(`(?i)^(.+?)\s+(?:on|at)\b`)
)

var connectiveWords = map[string]struct{}{
	"on": {}, "at": {}, "tomorrow": {}, "today": {}, "yesterday": {},
	"next": {}, "this": {}, "for": {}, "in": {},
}

var articleWords = map[string]struct{}{
	"the": {}, "a": {}, "an": {}, "my": {}, "our": {},
}

var strippedWords = map[string]struct{}{
	// scheduling verbs
	"schedule": {}, "add": {}, "book": {}, "put": {}, "setup": {},
	"create": {}, "plan": {}, "arrange": {},
	// date and time word forms
	"monday": {}, "tuesday": {}, "wednesday": {}, "thursday": {},
	"friday": {}, "saturday": {}, "sunday": {},
	"noon": {}, "midnight": {}, "morning": {}, "afternoon": {},
	"evening": {}, "night": {}, "week": {}, "am": {}, "pm": {},
	"today": {}, "tomorrow": {}, "yesterday": {},
	// connectives
	"on": {}, "at": {}, "for": {}, "in": {}, "next": {}, "this": {},
	"to": {},
}

// ExtractEventName resolves the free-text event label, or returns the
// empty string when no candidate survives.
func ExtractEventName(text string) string {
	for _, re := range []*regexp.Regexp{verbBoundedRe, verbOpenRe, leadingSpanRe} {
		if m := re.FindStringSubmatch(text); m != nil {
			if name := cleanSpan(m[1]); name != "" {
				return name
			}
		}
	}
	return strippedRemainder(text)
}

// cleanSpan trims leading articles and trailing connectives off a
// captured span, and rejects spans too short to be a usable label.
func cleanSpan(span string) string {
	fields := strings.Fields(span)
	for len(fields) > 0 {
		if _, ok := connectiveWords[strings.ToLower(fields[len(fields)-1])]; !ok {
			break
		}
		fields = fields[:len(fields)-1]
	}
	for len(fields) > 0 {
		if _, ok := articleWords[strings.ToLower(fields[0])]; !ok {
			break
		}
		fields = fields[1:]
	}
	name := strings.Join(fields, " ")
	if len(name) <= 2 {
		return ""
	}
	if _, ok := articleWords[strings.ToLower(name)]; ok {
		return ""
	}
	return name
}

// strippedRemainder is the last resort: drop every word known to be a
// verb, a date or time form, or a connective and use what is left.
// It can produce odd labels for odd inputs; that is accepted.
func strippedRemainder(text string) string {
	kept := make([]string, 0)
	for _, f := range strings.Fields(strings.ToLower(text)) {
		word := strings.Trim(f, ".,!?")
		if _, ok := strippedWords[word]; ok {
			continue
		}
		if strings.ContainsAny(word, "0123456789") {
			continue
		}
		if word == "" {
			continue
		}
		kept = append(kept, word)
	}
	name := strings.Join(kept, " ")
	if len(name) <= 2 {
		return ""
	}
	return name
}
