//go:build ebiten

package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"

	"hyperlife/internal/app"
	"hyperlife/internal/session"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	l, err := cfg.Build()
	if err != nil {
		log.Fatal(err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	sess := session.New(l, session.WithPaused(cfg.Paused), session.WithLogger(log.Default()))
	game := app.New(ctx, sess, cfg.Width, cfg.Height, cfg.Scale)

	ebiten.SetWindowTitle(fmt.Sprintf("hyperlife — %dD %s", l.Dims(), cfg.Rule))
	ebiten.SetTPS(cfg.TPS)
	w, h := game.Layout(0, 0)
	ebiten.SetWindowSize(w, h)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
	if err := game.Err(); err != nil && !errors.Is(err, context.Canceled) {
		log.Fatal(err)
	}
}
