package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"sitewatch/internal/api"
	"sitewatch/internal/config"
	"sitewatch/internal/dash"
	"sitewatch/internal/logging"
)

func main() {
	cfg := config.FromEnv()

	logger, err := logging.New(cfg.LogDir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to set up logging: %v\n", err)
		os.Exit(1)
	}
	logger.Info().Str("api", cfg.APIBase).Msg("sitewatch starting")

	client := api.New(cfg.APIBase, logger)
	p := tea.NewProgram(dash.New(client, logger), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error running program: %v\n", err)
		os.Exit(1)
	}
}
