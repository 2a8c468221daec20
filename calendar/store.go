package calendar

import (
	"errors"
	"fmt"
	"sort"
	"time"
)

// DayLayout is the canonical form of the date keys the store groups by.
const DayLayout = "2006-01-02"

var (
	ErrMissingArgument = errors.New("missing argument")
	ErrNotFound        = errors.New("not found")
)

// Store owns the scheduling state: all events grouped by day, plus the
// monotonic id counter. It holds everything in memory and is not safe
// for concurrent use; callers are expected to serialize access.
type Store struct {
	days   map[string][]Event
	lastID int
}

func NewStore() *Store {
	return &Store{days: make(map[string][]Event)}
}

// Add appends a new event on the given day, keeping insertion order,
// and returns it together with the first already stored event sharing
// the same time that day, if any. A conflict never blocks scheduling,
// it is only reported back.
func (s *Store) Add(date, description, at, duration string) (Event, *Event, error) {
	if len(date) == 0 || len(description) == 0 {
		return Event{}, nil, fmt.Errorf("a date and a description are required: %w", ErrMissingArgument)
	}
	var conflict *Event
	if len(at) > 0 {
		for _, ev := range s.days[date] {
			if ev.Time == at {
				c := ev
				conflict = &c
				break
			}
		}
	}
	s.lastID++
	ev := Event{ID: s.lastID, Description: description, Time: at, Duration: duration}
	s.days[date] = append(s.days[date], ev)
	return ev, conflict, nil
}

// Query reports one Day per date from date through date+rangeDays-1,
// in stored order within each day. An empty date defaults to today.
func (s *Store) Query(date string, rangeDays int, now time.Time) []Day {
	if len(date) == 0 {
		date = now.Format(DayLayout)
	}
	if rangeDays < 1 {
		rangeDays = 1
	}
	start, err := time.Parse(DayLayout, date)
	if err != nil {
		// not a canonical key, report it verbatim as a single day
		return []Day{{Date: date, Events: s.days[date]}}
	}
	days := make([]Day, 0, rangeDays)
	for i := 0; i < rangeDays; i++ {
		d := start.AddDate(0, 0, i).Format(DayLayout)
		days = append(days, Day{Date: d, Events: s.days[d]})
	}
	return days
}

// Delete removes the event carrying id, wherever it is stored.
func (s *Store) Delete(id int) (Event, error) {
	date, i, ok := s.locate(id)
	if !ok {
		return Event{}, fmt.Errorf("no event with id %d: %w", id, ErrNotFound)
	}
	ev := s.days[date][i]
	s.days[date] = append(s.days[date][:i], s.days[date][i+1:]...)
	return ev, nil
}

// Reschedule moves the event carrying id to a new date and/or time by
// removing it and recreating it under a fresh id. Recreating keeps the
// id guarantees intact: an id, once handed out, never changes meaning.
// Empty date or time keep the old values. It returns the new event and
// the date it ended up on.
func (s *Store) Reschedule(id int, date, at string) (Event, string, error) {
	oldDate, i, ok := s.locate(id)
	if !ok {
		return Event{}, "", fmt.Errorf("no event with id %d: %w", id, ErrNotFound)
	}
	old := s.days[oldDate][i]
	s.days[oldDate] = append(s.days[oldDate][:i], s.days[oldDate][i+1:]...)

	if len(date) == 0 {
		date = oldDate
	}
	if len(at) == 0 {
		at = old.Time
	}
	s.lastID++
	ev := Event{ID: s.lastID, Description: old.Description, Time: at, Duration: old.Duration}
	s.days[date] = append(s.days[date], ev)
	return ev, date, nil
}

// Len is the total number of stored events.
func (s *Store) Len() int {
	total := 0
	for _, evs := range s.days {
		total += len(evs)
	}
	return total
}

// CountOn reports how many events are stored for a date; absent dates
// count as zero.
func (s *Store) CountOn(date string) int {
	return len(s.days[date])
}

// Days returns every non-empty day, sorted by date. The canonical
// YYYY-MM-DD keys make the lexicographic sort chronological. The
// returned events are copies, so a snapshot stays valid while the
// store keeps changing.
func (s *Store) Days() []Day {
	days := make([]Day, 0, len(s.days))
	for date, evs := range s.days {
		if len(evs) == 0 {
			continue
		}
		days = append(days, Day{Date: date, Events: append([]Event(nil), evs...)})
	}
	sort.Slice(days, func(i, j int) bool {
		return days[i].Date < days[j].Date
	})
	return days
}

func (s *Store) locate(id int) (string, int, bool) {
	for date, evs := range s.days {
		for i, ev := range evs {
			if ev.ID == id {
				return date, i, true
			}
		}
	}
	return "", 0, false
}
