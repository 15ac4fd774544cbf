package tui

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/zinosalaam1/greyarchive/internal/content"
)

// silence is what room 1 files when nothing was typed.
const silence = "..."

// entryRoom is room 1: a running clock, and a field that accepts anything,
// including nothing.
type entryRoom struct {
	base
	room     content.Room
	username string
	answer   editor
	patience time.Duration
}

func newEntryRoom(st *styles, text *content.Archive, username string, patience time.Duration) *entryRoom {
	return &entryRoom{
		base:     base{st: st, labels: text.Labels},
		room:     text.Room(1),
		username: username,
		patience: patience,
	}
}

func (r *entryRoom) key(m tea.KeyMsg) result {
	if r.locked {
		return none
	}
	if isEnter(m) {
		answer := r.answer.Value()
		if answer == "" {
			answer = silence
		}
		return result{act: actSubmit, value: answer, delayed: true}
	}
	r.answer.handle(m)
	return none
}

func (r *entryRoom) view(width int) string {
	st := r.st
	clock := fmt.Sprintf("%.1fs", r.elapsed.Seconds())

	whisper := ""
	if r.answer.touched {
		whisper = st.faint.Render(r.room.Whisper)
	}
	patience := ""
	if r.elapsed >= r.patience && !r.locked {
		patience = st.faint.Render(r.room.Patience)
	}

	return lines(
		r.roomHeader(r.username, clock, width),
		r.panel(width,
			r.roomBanner(r.room),
			r.line(r.room.Instruction, r.room.Accent),
			lines(r.answer.render(st, r.room.Placeholder, r.locked), whisper),
			r.submitButton(false),
			patience,
		),
	)
}
