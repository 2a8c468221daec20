package nlp

import "strings"

// Intent is the classified purpose of one input message.
type Intent string

const (
	IntentAddEvent      Intent = "add_event"
	IntentCheckSchedule Intent = "check_schedule"
	IntentUpdateEvent   Intent = "update_event"
	IntentDeleteEvent   Intent = "delete_event"
	IntentSuggestion    Intent = "suggestion"
	IntentHelp          Intent = "help"
	IntentUnknown       Intent = "unknown"
)

type intentRule struct {
	intent   Intent
	keywords []string
}

// The rules are evaluated top to bottom and the first hit wins.
// Destructive and mutating verbs sit above the much noisier add and
// check vocabularies so that "cancel my meeting" never reads as an add.
var intentRules = []intentRule{
	{IntentDeleteEvent, []string{"delete", "cancel", "remove", "clear"}},
	{IntentUpdateEvent, []string{"update", "modify", "change", "move", "reschedule"}},
	{IntentAddEvent, []string{"schedule", "add", "book", "put in", "setup", "create", "plan", "arrange", "meeting", "appointment"}},
	{IntentCheckSchedule, []string{"what", "show", "check", "view", "see", "list", "agenda", "calendar", "schedule for", "what's on", "do i have", "am i free", "any events"}},
	{IntentSuggestion, []string{"suggest", "recommend", "advice", "free time", "when should", "help me plan", "available"}},
	{IntentHelp, []string{"help", "what can you do", "how do i", "commands"}},
}

// Classify assigns exactly one intent to the input. Matching is plain
// substring containment on the lowercased text, no tokenization.
func Classify(text string) Intent {
	lower := strings.ToLower(text)
	for _, rule := range intentRules {
		for _, kw := range rule.keywords {
			if strings.Contains(lower, kw) {
				return rule.intent
			}
		}
	}
	return IntentUnknown
}
