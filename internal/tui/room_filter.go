package tui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-runewidth"

	"github.com/zinosalaam1/greyarchive/internal/content"
	"github.com/zinosalaam1/greyarchive/internal/session"
)

const (
	ledgerAt      = time.Second
	ledgerStagger = 200 * time.Millisecond
	ledgerLabelW  = 28
	emptyAnswer   = "(empty)"
)

// filterRoom is room 6: it only replays the earlier answers and asks for
// nothing new.
type filterRoom struct {
	base
	room     content.Room
	username string
	answers  []string
}

func newFilterRoom(st *styles, text *content.Archive, username string, answers []string) *filterRoom {
	return &filterRoom{
		base:     base{st: st, labels: text.Labels},
		room:     text.Room(6),
		username: username,
		answers:  answers,
	}
}

func (r *filterRoom) key(m tea.KeyMsg) result {
	if r.locked || !isEnter(m) {
		return none
	}
	return result{act: actContinue, delayed: true}
}

func (r *filterRoom) view(width int) string {
	st := r.st
	room := r.room

	var intro []string
	for _, l := range room.Lines {
		intro = append(intro, r.line(l, room.Accent))
	}

	button := ""
	switch {
	case r.locked:
		button = st.buttonOff.Render(r.labels.Processing)
	case r.shows(room.Button):
		button = st.button.Render(room.Button.Text)
	}

	return lines(
		r.roomHeader(r.username, fmt.Sprintf(r.labels.RoomOf, room.Number, session.RoomCount), width),
		r.panel(width,
			r.roomBanner(room),
			lines(lines(intro...), r.ledger(width)),
			lines(r.line(room.Instruction, room.Accent), r.line(room.Question, room.Accent), r.verdicts()),
			r.translation(),
			button,
		),
	)
}

// ledger lists each answered room, revealed one after another.
func (r *filterRoom) ledger(width int) string {
	st := r.st
	// panel border and padding take 8 columns
	answerW := width - 8 - ledgerLabelW
	if answerW < 8 {
		answerW = 8
	}
	var out []string
	for i, label := range r.room.Ledger {
		if r.elapsed < ledgerAt+time.Duration(i)*ledgerStagger {
			break
		}
		answer := session.AnswerOr(r.answers, i, emptyAnswer)
		answer = runewidth.Truncate(answer, answerW, "…")
		out = append(out, st.faint.Render(runewidth.FillRight(label, ledgerLabelW))+st.body.Render(answer))
	}
	return lines(out...)
}

func (r *filterRoom) verdicts() string {
	if !r.shows(r.room.Question) {
		return ""
	}
	var out []string
	for i, v := range r.room.Verdicts {
		answer := session.AnswerOr(r.answers, i, emptyAnswer)
		out = append(out, r.st.dim.Render(fmt.Sprintf("• Room %d → %s %s", i+1, answer, v)))
	}
	return lines(out...)
}

func (r *filterRoom) translation() string {
	if !r.shows(r.room.Translate) {
		return ""
	}
	first := session.AnswerOr(r.answers, 0, silence)
	second := session.AnswerOr(r.answers, 1, "?")
	equation := strings.Join([]string{
		first + " = 0",
		"|",
		second + " = " + second,
	}, "   ")
	return lines(
		r.st.theme.Render(r.room.Translate.Text),
		r.st.title.Render(equation),
	)
}
