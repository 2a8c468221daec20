package nlp

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		text string
		want Intent
	}{
		{"schedule a team meeting on friday", IntentAddEvent},
		{"Book lunch with sam tomorrow", IntentAddEvent},
		{"put in some gym time", IntentAddEvent},
		{"what is my agenda for today", IntentCheckSchedule},
		{"am i free on friday", IntentCheckSchedule},
		{"any events next week?", IntentCheckSchedule},
		{"delete event id:3", IntentDeleteEvent},
		{"cancel my dentist appointment", IntentDeleteEvent},
		{"reschedule id:2 to friday", IntentUpdateEvent},
		{"move the standup to 10am", IntentUpdateEvent},
		{"suggest some free time", IntentSuggestion},
		{"recommend a good slot", IntentSuggestion},
		{"when should I take a break", IntentSuggestion},
		// "help me plan" is in the suggestion vocabulary, but "plan"
		// sits in the higher-priority add rule and wins
		{"help me plan my week", IntentAddEvent},
		{"help", IntentHelp},
		{"how do i use this", IntentHelp},
		{"the weather is nice", IntentUnknown},
		{"", IntentUnknown},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Classify(tt.text), "input: %q", tt.text)
	}
}

func TestClassifyReturnsClosedSet(t *testing.T) {
	known := map[Intent]struct{}{
		IntentAddEvent: {}, IntentCheckSchedule: {}, IntentUpdateEvent: {},
		IntentDeleteEvent: {}, IntentSuggestion: {}, IntentHelp: {}, IntentUnknown: {},
	}
	inputs := []string{
		"", "asdf qwerty", "schedule delete cancel everything",
		"WHAT CAN YOU DO", "42", "meeting meeting meeting",
	}
	for _, in := range inputs {
		_, ok := known[Classify(in)]
		assert.True(t, ok, "input: %q", in)
	}
}

func TestClassifyDeleteOutranksAdd(t *testing.T) {
	// both vocabularies are present, the destructive verb must win
	assert.Equal(t, IntentDeleteEvent, Classify("cancel the meeting i scheduled"))
	assert.Equal(t, IntentDeleteEvent, Classify("remove my appointment and add a new one"))
}

func TestClassifyIsCaseInsensitive(t *testing.T) {
	assert.Equal(t, IntentAddEvent, Classify("SCHEDULE A CALL"))
	assert.Equal(t, IntentDeleteEvent, Classify("Delete Event ID:1"))
}
