// Package bot ties the intent classifier, the entity extractor and the
// calendar store into one conversation loop. It is the only layer that
// renders text; every failure below it comes back as advisory wording,
// never as an error to the caller.
package bot

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"git.sr.ht/~mariusor/kairos/calendar"
	"git.sr.ht/~mariusor/kairos/nlp"
)

type Bot struct {
	store     *calendar.Store
	extractor *nlp.Extractor
	now       func() time.Time
}

// New builds a bot around the given store. The store is injected, not
// ambient, so independent conversations and tests get isolated state.
func New(store *calendar.Store) *Bot {
	return &Bot{
		store:     store,
		extractor: nlp.NewExtractor(),
		now:       time.Now,
	}
}

var idRe = regexp.MustCompile(`(?i)\bid[:\s]\s*(\d+)`)

var weekHints = []string{"week", "next 7", "coming days"}

// Process is the single public entry point: classify, extract, then
// dispatch. Classification and extraction both run unconditionally;
// all the real decisions were made by the time dispatch happens.
func (b *Bot) Process(text string) string {
	intent := nlp.Classify(text)
	entities := b.extractor.Extract(text)

	switch intent {
	case nlp.IntentHelp:
		return helpText
	case nlp.IntentAddEvent:
		return b.addEvent(entities)
	case nlp.IntentCheckSchedule:
		return b.checkSchedule(text, entities)
	case nlp.IntentDeleteEvent:
		return b.deleteEvent(text)
	case nlp.IntentUpdateEvent:
		return b.updateEvent(text, entities)
	case nlp.IntentSuggestion:
		return calendar.Suggest(b.store, b.now())
	}
	return unknownText
}

func (b *Bot) addEvent(entities nlp.Entities) string {
	if len(entities.Event) == 0 || len(entities.Date) == 0 {
		return "I need at least an event name and a date for that. Try: schedule team meeting on friday at 3pm"
	}
	ev, conflict, err := b.store.Add(entities.Date, entities.Event, entities.Time, entities.Duration)
	if err != nil {
		return fmt.Sprintf("I could not schedule that: %s.", err)
	}
	reply := fmt.Sprintf("Scheduled %q for %s", ev.Description, entities.Date)
	if len(ev.Time) > 0 {
		reply += " at " + ev.Time
	}
	if len(ev.Duration) > 0 {
		reply += fmt.Sprintf(" (%s)", ev.Duration)
	}
	reply += fmt.Sprintf(", id %d.", ev.ID)
	if conflict != nil {
		reply += fmt.Sprintf("\nHeads up: %q is already booked at %s that day.", conflict.Description, conflict.Time)
	}
	return reply
}

func (b *Bot) checkSchedule(text string, entities nlp.Entities) string {
	rangeDays := 1
	lower := strings.ToLower(text)
	for _, hint := range weekHints {
		if strings.Contains(lower, hint) {
			rangeDays = calendar.Window
			break
		}
	}
	days := b.store.Query(entities.Date, rangeDays, b.now())
	lines := make([]string, 0, len(days))
	for _, day := range days {
		if len(day.Events) == 0 {
			lines = append(lines, fmt.Sprintf("%s: free day", day.Date))
			continue
		}
		items := make([]string, 0, len(day.Events))
		for _, ev := range day.Events {
			items = append(items, ev.String())
		}
		lines = append(lines, fmt.Sprintf("%s: %s", day.Date, strings.Join(items, "; ")))
	}
	return strings.Join(lines, "\n")
}

func (b *Bot) deleteEvent(text string) string {
	m := idRe.FindStringSubmatch(text)
	if m == nil {
		return "Tell me which event to delete by id, e.g. delete event id:3. Ids show up in every schedule listing."
	}
	id, _ := strconv.Atoi(m[1])
	ev, err := b.store.Delete(id)
	if err != nil {
		return fmt.Sprintf("No event found with id %d.", id)
	}
	return fmt.Sprintf("Deleted %q (id %d).", ev.Description, ev.ID)
}

func (b *Bot) updateEvent(text string, entities nlp.Entities) string {
	m := idRe.FindStringSubmatch(text)
	if m == nil {
		return "Tell me which event to move by id, e.g. reschedule id:3 to friday at 2pm."
	}
	if len(entities.Date) == 0 && len(entities.Time) == 0 {
		return "Tell me the new date or time, e.g. reschedule id:3 to friday at 2pm."
	}
	id, _ := strconv.Atoi(m[1])
	ev, date, err := b.store.Reschedule(id, entities.Date, entities.Time)
	if err != nil {
		return fmt.Sprintf("No event found with id %d.", id)
	}
	reply := fmt.Sprintf("Moved %q to %s", ev.Description, date)
	if len(ev.Time) > 0 {
		reply += " at " + ev.Time
	}
	return reply + fmt.Sprintf(". Its new id is %d.", ev.ID)
}

const helpText = `I can manage your calendar. Things you can ask:
- schedule <event> on <date> [at <time>] [for <duration>]
- what's on <date>, or: show my week
- reschedule id:<n> to <date or time>
- delete event id:<n>
- suggest some free time`

const unknownText = "I only handle scheduling. Ask me to schedule an event, check a date, or suggest free time."
