//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"

	"relva/internal/app"
	"relva/internal/content"
	"relva/internal/gate"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	engine, err := cfg.Engine()
	if err != nil {
		log.Fatal(err)
	}

	game := app.New(cfg, gate.NewSession(cfg.Password), engine)

	ebiten.SetWindowTitle(content.Institute)
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(60)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
