package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/zinosalaam1/greyarchive/internal/content"
)

type introScreen struct {
	base
	text     content.Intro
	username string
}

func newIntro(st *styles, text *content.Archive, username string) *introScreen {
	return &introScreen{
		base:     base{st: st, labels: text.Labels},
		text:     text.Intro,
		username: username,
	}
}

func (s *introScreen) key(m tea.KeyMsg) result {
	if s.locked || !isEnter(m) {
		return none
	}
	return result{act: actContinue}
}

func (s *introScreen) view(width int) string {
	st := s.st
	t := s.text

	var traits []string
	for _, l := range t.Traits {
		if s.shows(l) {
			traits = append(traits, st.body.Render("  • "+l.Text))
		}
	}
	var failures []string
	for _, l := range t.Failures {
		if s.shows(l) {
			failures = append(failures, st.dim.Render("• "+l.Text))
		}
	}

	button := ""
	if s.shows(t.Button) {
		button = st.button.Render(t.Button.Text + " ›")
	}

	return s.panel(width,
		st.theme.Render(fmt.Sprintf(t.Greeting, st.bright.Render(s.username))),
		lines(
			st.heading.Render(t.Heading),
			st.dim.Render(t.Lead),
		),
		lines(traits...),
		lines(s.line(t.FailuresLead, ""), lines(failures...)),
		s.line(t.Closing, ""),
		button,
	)
}

