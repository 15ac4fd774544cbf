package tui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/zinosalaam1/greyarchive/internal/content"
	"github.com/zinosalaam1/greyarchive/internal/session"
)

// itemLayout decides how a puzzle room draws its items.
type itemLayout int

const (
	layoutNone     itemLayout = iota
	layoutList                // one per line, revealed in turn
	layoutSequence            // B → A → C
)

const (
	itemsAt      = 800 * time.Millisecond
	itemStagger  = 100 * time.Millisecond
	sequenceAt   = 600 * time.Millisecond
	sequenceSep  = "  →  "
	affordanceOn = "[tab] "
)

// puzzleRoom covers rooms 2, 4 and 5: static text, an optional affordance
// that reveals more of it, and a field that must not be blank.
type puzzleRoom struct {
	base
	room     content.Room
	username string
	layout   itemLayout
	answer   editor
	revealed bool
}

func newPuzzleRoom(st *styles, text *content.Archive, number int, username string, layout itemLayout) *puzzleRoom {
	return &puzzleRoom{
		base:     base{st: st, labels: text.Labels},
		room:     text.Room(number),
		username: username,
		layout:   layout,
	}
}

func (r *puzzleRoom) key(m tea.KeyMsg) result {
	if r.locked {
		return none
	}
	switch {
	case isTab(m):
		// only an affordance that is on screen can be taken
		if r.shows(r.room.Affordance) {
			r.revealed = true
		}
		return none
	case isEnter(m):
		if r.answer.Blank() {
			return none
		}
		return result{act: actSubmit, value: r.answer.Value(), delayed: true}
	}
	r.answer.handle(m)
	return none
}

func (r *puzzleRoom) view(width int) string {
	st := r.st
	room := r.room

	var body []string
	for _, l := range room.Lines {
		body = append(body, r.line(l, room.Accent))
	}

	return lines(
		r.roomHeader(r.username, fmt.Sprintf(r.labels.RoomOf, room.Number, session.RoomCount), width),
		r.panel(width,
			r.roomBanner(room),
			r.items(),
			r.line(room.Instruction, room.Accent),
			lines(body...),
			r.hint(),
			lines(
				st.label.Render(r.labels.Answer),
				r.answer.render(st, room.Placeholder, r.locked),
				st.faint.Render(room.Footnote),
			),
			r.submitButton(r.answer.Blank()),
		),
	)
}

func (r *puzzleRoom) items() string {
	st := r.st
	switch r.layout {
	case layoutList:
		var out []string
		for i, item := range r.room.Items {
			if r.elapsed >= itemsAt+time.Duration(i)*itemStagger {
				out = append(out, st.bright.Render("  "+item))
			}
		}
		return lines(out...)
	case layoutSequence:
		if r.elapsed < sequenceAt {
			return ""
		}
		styled := make([]string, len(r.room.Items))
		for i, item := range r.room.Items {
			styled[i] = st.title.Render(item)
		}
		return "  " + strings.Join(styled, st.dim.Render(sequenceSep))
	}
	return ""
}

// hint is the affordance until it is used, then what it revealed.
func (r *puzzleRoom) hint() string {
	room := r.room
	if room.Affordance.Text == "" {
		return ""
	}
	if !r.revealed {
		if !r.shows(room.Affordance) {
			return ""
		}
		return r.st.dim.Render(affordanceOn) + r.st.affordance.Render(room.Affordance.Text)
	}
	var out []string
	for _, l := range room.Reveal {
		out = append(out, r.st.tone(l.Tone, room.Accent).Render(l.Text))
	}
	return lines(out...)
}
