package tui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/zinosalaam1/greyarchive/internal/content"
)

type action int

const (
	actNone action = iota
	actStart
	actContinue
	actSubmit
	actRestart
	actQuit
)

// result is what a screen asks of the app after a key press.
// delayed results are handed to the session after the submit delay.
type result struct {
	act     action
	value   string
	delayed bool
}

var none = result{}

// screen is one stage of the walk. Screens never touch the session; they
// report results and the app applies them.
type screen interface {
	key(m tea.KeyMsg) result
	advance(d time.Duration)
	lock()
	view(width int) string
}

// base carries the reveal clock and the submit lock shared by every screen.
type base struct {
	st      *styles
	labels  content.Labels
	elapsed time.Duration
	locked  bool
}

func (b *base) advance(d time.Duration) { b.elapsed += d }
func (b *base) lock()                   { b.locked = true }

func (b *base) shows(l content.Line) bool { return l.Text != "" && l.Visible(b.elapsed) }

// line renders l in its tone if it has been revealed, or "" otherwise.
func (b *base) line(l content.Line, accent string) string {
	if !b.shows(l) {
		return ""
	}
	return b.st.tone(l.Tone, accent).Render(l.Text)
}

// roomHeader is the "USER: name ... right" strip above a room panel.
func (b *base) roomHeader(username, right string, width int) string {
	left := b.st.header.Render(fmt.Sprintf(b.labels.User, username))
	r := b.st.header.Render(right)
	gap := width - lipgloss.Width(left) - lipgloss.Width(r)
	if gap < 1 {
		gap = 1
	}
	return left + strings.Repeat(" ", gap) + r
}

func (b *base) roomBanner(room content.Room) string {
	return b.st.accent(room.Accent).Render("■") + " " + b.st.heading.Render(room.Heading()) + "\n" +
		b.st.theme.Render("Theme: "+room.Theme)
}

func (b *base) submitButton(disabled bool) string {
	switch {
	case b.locked:
		return b.st.buttonOff.Render(b.labels.Submitting)
	case disabled:
		return b.st.buttonOff.Render(b.labels.Submit)
	default:
		return b.st.button.Render(b.labels.Submit)
	}
}

func (b *base) panel(width int, parts ...string) string {
	return b.st.panel.Width(width).Render(stack(parts...))
}

// stack joins non-empty parts with blank lines between them.
func stack(parts ...string) string {
	kept := parts[:0:0]
	for _, p := range parts {
		if p != "" {
			kept = append(kept, p)
		}
	}
	return strings.Join(kept, "\n\n")
}

// lines joins non-empty parts one per line.
func lines(parts ...string) string {
	kept := parts[:0:0]
	for _, p := range parts {
		if p != "" {
			kept = append(kept, p)
		}
	}
	return strings.Join(kept, "\n")
}

func isEnter(m tea.KeyMsg) bool { return m.Type == tea.KeyEnter }
func isTab(m tea.KeyMsg) bool   { return m.Type == tea.KeyTab }
