package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"relva/internal/app"
	"relva/internal/gate"
	"relva/internal/tui"

	tea "github.com/charmbracelet/bubbletea"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	engine, err := cfg.Engine()
	if err != nil {
		log.Fatal(err)
	}

	p := tea.NewProgram(
		tui.New(gate.NewSession(cfg.Password), engine),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "relva-term: %v\n", err)
		os.Exit(1)
	}
}
