package main

import (
	"flag"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/notak/notak/pkg/client"
	"github.com/notak/notak/pkg/ui"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	defaultURL := os.Getenv("NOTAK_URL")
	if defaultURL == "" {
		defaultURL = "http://localhost:8080"
	}
	baseURL := flag.String("url", defaultURL, "Base URL of the notak server")
	flag.Parse()

	m := ui.NewModel(client.NewClient(*baseURL))

	p := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run client: %w", err)
	}

	return nil
}
