package tui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/zinosalaam1/greyarchive/internal/content"
	"github.com/zinosalaam1/greyarchive/internal/session"
)

type memoryPhase int

const (
	phaseFlash memoryPhase = iota
	phaseBlank
	phaseAsk
)

// memoryRoom is room 3: words flash, vanish, and only then is the visitor
// asked about them. The field does not exist before that.
type memoryRoom struct {
	base
	room     content.Room
	username string
	answer   editor
	flash    time.Duration
	blank    time.Duration
}

func newMemoryRoom(st *styles, text *content.Archive, username string, flash, blank time.Duration) *memoryRoom {
	return &memoryRoom{
		base:     base{st: st, labels: text.Labels},
		room:     text.Room(3),
		username: username,
		flash:    flash,
		blank:    blank,
	}
}

func (r *memoryRoom) phase() memoryPhase {
	switch {
	case r.elapsed < r.flash:
		return phaseFlash
	case r.elapsed < r.flash+r.blank:
		return phaseBlank
	default:
		return phaseAsk
	}
}

func (r *memoryRoom) key(m tea.KeyMsg) result {
	if r.locked || r.phase() != phaseAsk {
		return none
	}
	if isEnter(m) {
		if r.answer.Blank() {
			return none
		}
		return result{act: actSubmit, value: r.answer.Value(), delayed: true}
	}
	r.answer.handle(m)
	return none
}

func (r *memoryRoom) view(width int) string {
	st := r.st
	room := r.room

	var stage, form string
	switch r.phase() {
	case phaseFlash:
		words := make([]string, len(room.Items))
		for i, w := range room.Items {
			words[i] = st.title.Render(w)
		}
		stage = "  " + strings.Join(words, "    ")
	case phaseBlank:
		stage = "  " + st.dim.Render(room.Blank)
	case phaseAsk:
		stage = lines(
			st.accent(room.Accent).Render(room.Instruction.Text),
			st.faint.Render(room.Whisper),
		)
		form = stack(
			lines(
				st.label.Render(r.labels.Answer),
				r.answer.render(st, room.Placeholder, r.locked),
				st.faint.Render(room.Footnote),
			),
			r.submitButton(r.answer.Blank()),
		)
	}

	return lines(
		r.roomHeader(r.username, fmt.Sprintf(r.labels.RoomOf, room.Number, session.RoomCount), width),
		r.panel(width,
			r.roomBanner(room),
			stage,
			form,
		),
	)
}
