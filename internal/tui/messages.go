package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/zinosalaam1/greyarchive/internal/database/repository"
)

// Every timer carries the generation of the screen that scheduled it.
// A screen that has been replaced no longer matches and its timers die.

type tickMsg struct{ gen int }

type completeMsg struct {
	gen int
	res result
}

type filedMsg struct {
	gen int
	run repository.Run
	err error
}

func tickAfter(gen int, d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg { return tickMsg{gen: gen} })
}

func completeAfter(gen int, d time.Duration, res result) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg { return completeMsg{gen: gen, res: res} })
}
