package tui

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/zinosalaam1/greyarchive/internal/content"
	"github.com/zinosalaam1/greyarchive/internal/session"
)

const (
	finalCodeAt    = 800 * time.Millisecond
	finalMessageAt = 1200 * time.Millisecond
	finalStatsAt   = 1400 * time.Millisecond
	finalAnswersAt = 1600 * time.Millisecond
	finalButtonAt  = 2 * time.Second
)

type finalScreen struct {
	base
	text        *content.Archive
	username    string
	answers     []string
	cleared     int
	code        session.Code
	completedAt time.Time
	note        string
}

func newFinal(st *styles, text *content.Archive, username string, answers []string, cleared int, completedAt time.Time) *finalScreen {
	return &finalScreen{
		base:        base{st: st, labels: text.Labels},
		text:        text,
		username:    username,
		answers:     answers,
		cleared:     cleared,
		code:        session.DeriveCode(answers),
		completedAt: completedAt,
	}
}

func (f *finalScreen) key(m tea.KeyMsg) result {
	if f.locked {
		return none
	}
	switch {
	case isEnter(m):
		return result{act: actRestart}
	case m.String() == "q":
		return result{act: actQuit}
	}
	return none
}

// filed records where the run went, shown under the answers.
func (f *finalScreen) filed(note string) { f.note = note }

func (f *finalScreen) view(width int) string {
	st := f.st
	t := f.text.Final

	title := t.Accessed
	ending := t.Ordinary
	codeStyle := st.code
	panel := st.panel
	if f.code.Perfect {
		title = t.Unlocked
		ending = t.Perfect
		codeStyle = st.codePerfect
		panel = st.panelPerfect
	}

	head := lipgloss.JoinVertical(lipgloss.Center,
		st.dim.Render("🔓"),
		st.title.Render(title),
		st.dim.Render(fmt.Sprintf(t.Farewell, f.username)),
	)

	var codeBlock string
	if f.elapsed >= finalCodeAt {
		msg := ""
		if f.elapsed >= finalMessageAt {
			headingStyle := st.body
			if f.code.Perfect {
				headingStyle = st.success
			}
			msg = lines(headingStyle.Render(ending.Heading), st.faint.Render(ending.Detail))
		}
		codeBlock = panel.Width(width).Align(lipgloss.Center).Render(stack(
			st.label.Render(t.CodeLabel),
			codeStyle.Render(f.code.Value),
			msg,
		))
	}

	stats := ""
	if f.elapsed >= finalStatsAt {
		stats = lipgloss.JoinHorizontal(lipgloss.Top,
			f.stat(t.TimeLabel, f.completedAt.Format("15:04:05")),
			f.stat(t.RoomsLabel, fmt.Sprintf("%d / %d", f.cleared, session.RoomCount)),
			f.stat(t.RateLabel, f.code.SuccessRate()),
		)
	}

	answers := ""
	if f.elapsed >= finalAnswersAt {
		rows := []string{st.heading.Render(t.AnswersHeading)}
		for i := range f.answers {
			rows = append(rows, st.faint.Render(fmt.Sprintf("Room %d", i+1))+"  "+st.body.Render(session.AnswerOr(f.answers, i, t.NoAnswer)))
		}
		note := ""
		if f.note != "" {
			note = st.faint.Render(f.note)
		}
		answers = f.panel(width, lines(rows...), note)
	}

	footer := ""
	if f.elapsed >= finalButtonAt {
		footer = lipgloss.JoinVertical(lipgloss.Center,
			st.button.Render("↺ "+t.Button),
			"",
			st.faint.Render(f.text.Tagline),
		)
	}

	return lipgloss.JoinVertical(lipgloss.Center,
		head, "", codeBlock, "", stats, "", answers, "", footer)
}

func (f *finalScreen) stat(label, value string) string {
	return f.st.panel.Width(22).Align(lipgloss.Center).Render(
		f.st.label.Render(label) + "\n" + f.st.bright.Render(value),
	)
}

