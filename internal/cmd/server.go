package cmd

import (
	"context"
	"fmt"
	"syscall"
	"time"

	"git.sr.ht/~mariusor/lw"
	w "git.sr.ht/~mariusor/wrapper"
	"github.com/urfave/cli"

	"git.sr.ht/~mariusor/kairos/api"
	"git.sr.ht/~mariusor/kairos/bot"
	"git.sr.ht/~mariusor/kairos/calendar"
)

var ServerCmd = cli.Command{
	Name:  "server",
	Usage: "Starts the HTTP chat API",
	Flags: []cli.Flag{
		&cli.BoolFlag{
			Name:   "debug",
			Usage:  "Output debug messages",
			EnvVar: "KAIROS_DEBUG",
		},
		&cli.StringFlag{
			Name:   "host",
			Usage:  "Set hostname on which to listen to",
			Value:  "localhost",
			EnvVar: "KAIROS_HOST",
		},
		&cli.IntFlag{
			Name:   "port",
			Usage:  "Set the port on which to listen to",
			Value:  8000,
			EnvVar: "KAIROS_PORT",
		},
	},
	Action: serverStart,
}

var wait = 100 * time.Millisecond

func serverStart(c *cli.Context) error {
	debug := c.Bool("debug")
	logger := lw.Prod()
	if debug {
		logger = lw.Dev()
	}

	listen := fmt.Sprintf("%s:%d", c.String("host"), c.Int("port"))
	logger.Infof("Listening on %s", listen)

	// Create a deadline to wait for.
	ctx, cancel := context.WithTimeout(context.Background(), wait)
	defer cancel()

	// The calendar lives only as long as the process; the store is
	// serialized by the api handler, per its concurrency contract.
	store := calendar.NewStore()
	b := bot.New(store)

	srvRun, srvStop := w.HttpServer(w.Handler(api.New(b, store, debug)), w.OnTCP(listen))
	w.RegisterSignalHandlers(w.SignalHandlers{
		syscall.SIGHUP: func(_ chan int) {
			logger.Infof("SIGHUP received, reloading configuration")
		},
		syscall.SIGINT: func(exit chan int) {
			logger.Infof("SIGINT received, stopping")
			exit <- 0
		},
		syscall.SIGTERM: func(exit chan int) {
			logger.Infof("SIGTERM received, force stopping")
			exit <- 0
		},
		syscall.SIGQUIT: func(exit chan int) {
			logger.Infof("SIGQUIT received, force stopping with core-dump")
			exit <- 0
		},
	}).Exec(func() error {
		if err := srvRun(); err != nil {
			logger.Errorf("Error: %s", err)
			return err
		}
		var err error
		// Doesn't block if no connections, but will otherwise wait until the timeout deadline.
		go func(e error) {
			if err = srvStop(ctx); err != nil {
				logger.Errorf("Error: %s", err)
			}
		}(err)
		return err
	})

	return nil
}
