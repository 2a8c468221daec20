package calendar

import (
	"fmt"
	"strings"
	"time"
)

// Window is the number of days the suggestion heuristics look at,
// starting today.
const Window = 7

const emptyCalendarAdvice = "Your calendar is empty! Why not schedule a break or a learning session?"

// Suggest derives free and busy day signals from the store over the
// rolling window. An empty calendar short-circuits to a fixed
// recommendation. Otherwise it reports the first fully free day, the
// first packed day (3 events or more), and the day with the fewest
// events, ties going to the earliest date.
func Suggest(s *Store, now time.Time) string {
	if s.Len() == 0 {
		return emptyCalendarAdvice
	}

	dates := make([]string, Window)
	counts := make([]int, Window)
	for i := 0; i < Window; i++ {
		dates[i] = now.AddDate(0, 0, i).Format(DayLayout)
		counts[i] = s.CountOn(dates[i])
	}

	lines := make([]string, 0, 3)
	for i, c := range counts {
		if c == 0 {
			lines = append(lines, fmt.Sprintf("%s is completely free, a good day for focus work.", dates[i]))
			break
		}
	}
	for i, c := range counts {
		if c >= 3 {
			lines = append(lines, fmt.Sprintf("%s looks packed with %d events, remember to add buffers between them.", dates[i], c))
			break
		}
	}
	min := 0
	for i, c := range counts {
		if c < counts[min] {
			min = i
		}
	}
	lines = append(lines, fmt.Sprintf("%s has the most availability this week.", dates[min]))

	return strings.Join(lines, "\n")
}
