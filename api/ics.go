package api

import (
	"bytes"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/soh335/ical"

	"git.sr.ht/~mariusor/kairos/calendar"
)

const defaultEventDuration = time.Hour

// feed renders everything currently scheduled as an iCal calendar, one
// VEVENT per stored event. Events without a time become all-day.
func (h *handler) feed(c *gin.Context) {
	h.mu.Lock()
	days := h.store.Days()
	h.mu.Unlock()

	cal := ical.NewBasicVCalendar()
	cal.PRODID = fmt.Sprintf("-//kairos//scheduling-assistant//EN/%s", Version)
	cal.VERSION = "2.0"

	name := "Kairos"
	cal.NAME = name
	cal.X_WR_CALNAME = name
	description := "Events scheduled through the assistant"
	cal.DESCRIPTION = description
	cal.X_WR_CALDESC = description

	tz := time.Local.String()
	cal.TIMEZONE_ID = tz
	cal.X_WR_TIMEZONE = tz

	cal.REFRESH_INTERVAL = "PT1H"
	cal.X_PUBLISHED_TTL = "PT1H"
	cal.CALSCALE = "GREGORIAN"
	cal.METHOD = "PUBLISH"

	now := time.Now()
	for _, day := range days {
		for _, ev := range day.Events {
			start, allDay := eventStart(day.Date, ev.Time)
			e := &ical.VEvent{
				UID:     fmt.Sprintf("%d", ev.ID),
				DTSTAMP: now,
				DTSTART: start,
				DTEND:   start.Add(eventDuration(ev.Duration)),
				SUMMARY: ev.Description,
				TZID:    tz,
				AllDay:  allDay,
			}
			cal.VComponent = append(cal.VComponent, e)
		}
	}

	b := &bytes.Buffer{}
	if err := cal.Encode(b); err != nil {
		c.String(http.StatusInternalServerError, "%s", err)
		return
	}
	c.Data(http.StatusOK, "text/calendar", b.Bytes())
}

func eventStart(date, at string) (time.Time, bool) {
	day, err := time.ParseInLocation(calendar.DayLayout, date, time.Local)
	if err != nil {
		return time.Time{}, true
	}
	if len(at) == 0 {
		return day, true
	}
	t, err := time.Parse("15:04", at)
	if err != nil {
		return day, true
	}
	return day.Add(time.Duration(t.Hour())*time.Hour + time.Duration(t.Minute())*time.Minute), false
}

// eventDuration maps the normalized duration tag to a real duration;
// the "2h"/"30m" form happens to be valid time.ParseDuration input.
func eventDuration(d string) time.Duration {
	if len(d) == 0 {
		return defaultEventDuration
	}
	parsed, err := time.ParseDuration(d)
	if err != nil {
		return defaultEventDuration
	}
	return parsed
}
