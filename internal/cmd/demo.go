package cmd

import (
	"strings"

	"github.com/urfave/cli"

	"git.sr.ht/~mariusor/kairos/bot"
	"git.sr.ht/~mariusor/kairos/calendar"
)

var DemoCmd = cli.Command{
	Name:   "demo",
	Usage:  "Replays a canned conversation against a fresh calendar",
	Action: demoRun,
}

var demoScript = []string{
	"I need to add a meeting to finalize the project proposal on 2025-11-15 at 3pm",
	"Can you schedule a deep work session today at 10:00 for 2 hours",
	"What is my agenda for 2025-11-15?",
	"Can you suggest when I have free time?",
	"Show me what I have today.",
	"reschedule id:2 to tomorrow",
	"delete event id:1",
}

func demoRun(_ *cli.Context) error {
	store := calendar.NewStore()
	b := bot.New(store)

	for _, in := range demoScript {
		info("User: %s", in)
		info("Bot: %s", b.Process(in))
		info(strings.Repeat("-", 20))
	}
	return nil
}
