package main

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/zinosalaam1/greyarchive/internal/service"
	"github.com/zinosalaam1/greyarchive/internal/tui"
)

func newPlayCommand(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "play",
		Short: "Walk the archive in this terminal",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runPlay(cmd.Context(), *configPath)
		},
	}
}

func runPlay(ctx context.Context, configPath string) error {
	// the terminal is the game's; logs only go to the file
	e, err := openEnv(configPath, false)
	if err != nil {
		return err
	}
	defer e.Close()

	app := tui.New(ctx, tui.Options{
		Timing:    e.cfg.Timing,
		Content:   e.text,
		Archive:   e.archiver(),
		Logger:    e.log,
		Transport: service.TransportLocal,
	})
	if _, err := tea.NewProgram(app, tea.WithAltScreen(), tea.WithContext(ctx)).Run(); err != nil {
		return fmt.Errorf("run: %w", err)
	}
	return nil
}
