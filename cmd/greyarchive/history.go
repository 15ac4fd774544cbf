package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/mattn/go-runewidth"
	"github.com/spf13/cobra"

	"github.com/zinosalaam1/greyarchive/internal/database/repository"
)

var errArchiveDisabled = errors.New("the archive is disabled (archive.enabled = false)")

const answersColumnWidth = 32

var (
	historyHeader  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#f5f5f5"))
	historyCell    = lipgloss.NewStyle().Foreground(lipgloss.Color("#a3a3a3"))
	historyPerfect = lipgloss.NewStyle().Foreground(lipgloss.Color("#4ade80"))
	historyBorder  = lipgloss.NewStyle().Foreground(lipgloss.Color("#404040"))
)

func newHistoryCommand(configPath *string) *cobra.Command {
	var (
		limit   int
		visitor string
		runID   string
	)

	cmd := &cobra.Command{
		Use:   "history",
		Short: "List runs filed in the archive",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			e, err := openEnv(*configPath, false)
			if err != nil {
				return err
			}
			defer e.Close()
			if !e.archive.Enabled() {
				return errArchiveDisabled
			}

			ctx := cmd.Context()
			if runID != "" {
				run, err := e.archive.Run(ctx, runID)
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), renderRun(run))
				return nil
			}

			var runs []repository.Run
			if visitor != "" {
				runs, err = e.archive.FindVisitor(ctx, visitor, limit)
			} else {
				runs, err = e.archive.Recent(ctx, limit)
			}
			if err != nil {
				return err
			}
			stats, err := e.archive.Stats(ctx)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), renderHistory(runs, stats))
			return nil
		},
	}
	cmd.Flags().IntVar(&limit, "limit", 20, "maximum runs to list")
	cmd.Flags().StringVar(&visitor, "visitor", "", "only runs of visitors with a name like this one")
	cmd.Flags().StringVar(&runID, "run", "", "show one run in full by its id")
	return cmd
}

func renderHistory(runs []repository.Run, stats repository.RunStats) string {
	summary := fmt.Sprintf("%d runs by %d visitors, %d perfect", stats.Total, stats.Visitors, stats.Perfect)
	if len(runs) == 0 {
		return "No runs filed yet.\n" + summary
	}

	rows := make([][]string, 0, len(runs))
	for _, r := range runs {
		perfect := ""
		if r.Perfect {
			perfect = "✔"
		}
		rows = append(rows, []string{
			shortRunID(r.ID),
			r.Username,
			r.Code,
			perfect,
			r.Transport,
			r.CompletedAt.Local().Format("2006-01-02 15:04"),
			runewidth.Truncate(strings.Join(r.Answers, " · "), answersColumnWidth, "…"),
		})
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(historyBorder).
		BorderHeader(true).
		BorderRow(false).
		Headers("RUN", "VISITOR", "CODE", "PERFECT", "VIA", "COMPLETED", "ANSWERS").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return historyHeader
			case col == 2 && row >= 0 && row < len(runs) && runs[row].Perfect:
				return historyPerfect
			}
			return historyCell
		})

	return t.Render() + "\n" + summary
}

// renderRun shows a single run with every answer untruncated.
func renderRun(r repository.Run) string {
	code := historyCell.Render(r.Code)
	if r.Perfect {
		code = historyPerfect.Render(r.Code + "  (perfect)")
	}
	rows := []string{
		historyHeader.Render("RUN") + " " + r.ID,
		historyHeader.Render("VISITOR") + " " + r.Username,
		historyHeader.Render("CODE") + " " + code,
		historyHeader.Render("VIA") + " " + r.Transport,
		historyHeader.Render("STARTED") + " " + r.StartedAt.Local().Format("2006-01-02 15:04:05"),
		historyHeader.Render("COMPLETED") + " " + r.CompletedAt.Local().Format("2006-01-02 15:04:05"),
		historyHeader.Render("ANSWERS"),
	}
	for i, a := range r.Answers {
		rows = append(rows, fmt.Sprintf("  Room %d  %s", i+1, a))
	}
	return strings.Join(rows, "\n")
}

func shortRunID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
