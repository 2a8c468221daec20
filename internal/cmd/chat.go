package cmd

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/chzyer/readline"
	"github.com/urfave/cli"

	"git.sr.ht/~mariusor/kairos/bot"
	"git.sr.ht/~mariusor/kairos/calendar"
)

var ChatCmd = cli.Command{
	Name:   "chat",
	Usage:  "Talk to the assistant from the terminal",
	Action: chatRun,
}

func chatRun(_ *cli.Context) error {
	store := calendar.NewStore()
	b := bot.New(store)

	info("%s ready, ask me to schedule something. Type exit to quit.", AppName)

	rl, err := readline.NewEx(&readline.Config{
		Prompt:          "> ",
		HistoryFile:     filepath.Join(CachePath(), "history"),
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
	})
	if err != nil {
		return fmt.Errorf("unable to initialize readline: %w", err)
	}
	defer rl.Close()

	for {
		line, err := rl.Readline()
		if err == readline.ErrInterrupt {
			continue
		}
		if err == io.EOF {
			break
		}
		if err != nil {
			return err
		}
		line = strings.TrimSpace(line)
		if len(line) == 0 {
			continue
		}
		if line == "exit" || line == "quit" {
			break
		}
		info("%s", b.Process(line))
	}
	return nil
}
