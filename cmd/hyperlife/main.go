package main

import (
	"context"
	"errors"
	"flag"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"

	"hyperlife/internal/app"
	"hyperlife/internal/session"
	"hyperlife/internal/term"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	if err := run(cfg); err != nil {
		log.Fatal(err)
	}
}

func run(cfg *app.Config) error {
	l, err := cfg.Build()
	if err != nil {
		return err
	}

	logger := log.New(io.Discard, "", 0)
	if cfg.LogFile != "" {
		f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return err
		}
		defer f.Close()
		logger = log.New(f, "hyperlife ", log.LstdFlags)
	}
	opts := []session.Option{session.WithPaused(cfg.Paused)}
	if cfg.Verbose {
		opts = append(opts, session.WithLogger(logger))
	}
	logger.Printf("starting: %d axes, rule %s, %d live cells", l.Dims(), cfg.Rule, l.ActiveCells())

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	t, err := term.Open()
	if err != nil {
		return err
	}
	defer t.Close()

	in := session.NewInbox()
	go t.Listen(ctx, in)

	sess := session.New(l, opts...)
	err = sess.Run(ctx, in, t, cfg.TPS)
	logger.Printf("stopped at generation %d with %d live cells", sess.Life().Generation(), sess.Life().ActiveCells())
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}
