package calendar

import "fmt"

// Event is one scheduled item. Events are created only by the store,
// which assigns the id, and stay immutable afterwards except for
// removal. Ids are never reused, not even after deletions.
type Event struct {
	ID          int
	Description string
	Time        string // canonical HH:MM, empty when unknown
	Duration    string // normalized "2h" / "30m" form, empty when unknown
}

func (e Event) String() string {
	s := e.Description
	if len(e.Time) > 0 {
		s = fmt.Sprintf("%s at %s", s, e.Time)
	}
	if len(e.Duration) > 0 {
		s = fmt.Sprintf("%s (%s)", s, e.Duration)
	}
	return fmt.Sprintf("[%d] %s", e.ID, s)
}

// Day is the schedule of a single date.
type Day struct {
	Date   string
	Events []Event
}
