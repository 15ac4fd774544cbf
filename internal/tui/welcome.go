package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/zinosalaam1/greyarchive/internal/content"
)

const (
	welcomePresenterAt = 400 * time.Millisecond
	welcomeTitleAt     = 600 * time.Millisecond
)

type welcomeScreen struct {
	base
	text *content.Archive
	name editor
}

func newWelcome(st *styles, text *content.Archive) *welcomeScreen {
	return &welcomeScreen{
		base: base{st: st, labels: text.Labels},
		text: text,
		name: newEditor(text.Welcome.MaxNameLength),
	}
}

func (w *welcomeScreen) key(m tea.KeyMsg) result {
	if w.locked {
		return none
	}
	if isEnter(m) {
		if w.name.Blank() {
			return none
		}
		return result{act: actStart, value: w.name.Value()}
	}
	w.name.handle(m)
	return none
}

func (w *welcomeScreen) view(width int) string {
	wt := w.text.Welcome
	st := w.st

	var facts []string
	for _, f := range wt.Facts {
		facts = append(facts, w.line(f, ""))
	}

	titleBlock := lines(
		st.dim.Render("🔒"),
		w.reveal(welcomePresenterAt, st.presenter.Render(w.text.Presenter)),
		w.reveal(welcomeTitleAt, st.title.Render(w.text.Title)),
	)

	// the warning shows while the field is focused and untouched
	warning := ""
	if !w.name.touched {
		warning = st.faint.Render(wt.Warning)
	}

	form := stack(
		st.faint.Render(w.text.Tagline),
		lines(
			st.label.Render(wt.Prompt),
			w.name.render(st, wt.Placeholder, w.locked),
			warning,
		),
		w.button(),
		w.line(wt.Footer, ""),
	)

	return lipgloss.JoinVertical(lipgloss.Center,
		titleBlock,
		"",
		lines(facts...),
		"",
		w.panel(width, form),
	)
}

func (w *welcomeScreen) reveal(at time.Duration, s string) string {
	if w.elapsed < at {
		return ""
	}
	return s
}

func (w *welcomeScreen) button() string {
	if w.name.Blank() {
		return w.st.buttonOff.Render(w.text.Welcome.Button)
	}
	return w.st.button.Render(w.text.Welcome.Button)
}
