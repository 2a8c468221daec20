// Package nlp is a deliberately deterministic, auditable rule engine
// for scheduling language: ordered keyword rules for intent, ordered
// pattern cascades for entities. It is not, and does not try to be, a
// statistical model.
package nlp

import "time"

// Entities is the structured record extracted from one input. Empty
// fields mean the corresponding parser found nothing.
type Entities struct {
	Event    string
	Date     string
	Time     string
	Duration string
}

// Extractor composes the entity parsers over a shared clock. The clock
// is a plain function value so relative expressions like "tomorrow"
// resolve deterministically under test.
type Extractor struct {
	Now func() time.Time
}

func NewExtractor() *Extractor {
	return &Extractor{Now: time.Now}
}

func (e *Extractor) now() time.Time {
	if e.Now != nil {
		return e.Now()
	}
	return time.Now()
}

// Extract runs every parser over the input and returns one fresh
// record. Each parser is independent of the others.
func (e *Extractor) Extract(text string) Entities {
	return Entities{
		Event:    ExtractEventName(text),
		Date:     ParseDate(text, e.now()),
		Time:     ParseTime(text),
		Duration: ParseDuration(text),
	}
}
