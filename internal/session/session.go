// Package session holds the transient state of one walk through the archive:
// the stage index, the visitor's name, and the answers collected so far.
//
// Nothing here is persisted. Reset is the equivalent of reloading the page.
package session

import (
	"errors"
	"fmt"
	"strings"
)

// Stage is the index of the current screen in the fixed sequence.
type Stage int

const (
	StageWelcome Stage = iota
	StageIntro
	StageRoom1
	StageRoom2
	StageRoom3
	StageRoom4
	StageRoom5
	StageRoom6
	StageFinal
)

// RoomCount is the number of rooms between the intro and the final reveal.
const RoomCount = 6

// AnsweredRooms is the number of rooms that collect a text answer.
// Room 6 only reviews what came before.
const AnsweredRooms = 5

var (
	ErrWrongStage = errors.New("session: action not accepted at this stage")
	ErrBlankName  = errors.New("session: username is blank")
)

var stageNames = [...]string{
	StageWelcome: "welcome",
	StageIntro:   "intro",
	StageRoom1:   "room1",
	StageRoom2:   "room2",
	StageRoom3:   "room3",
	StageRoom4:   "room4",
	StageRoom5:   "room5",
	StageRoom6:   "room6",
	StageFinal:   "final",
}

func (s Stage) String() string {
	if s < 0 || int(s) >= len(stageNames) {
		return fmt.Sprintf("stage(%d)", int(s))
	}
	return stageNames[s]
}

// Room returns the 1-based room number, or 0 when s is not a room.
func (s Stage) Room() int {
	if s < StageRoom1 || s > StageRoom6 {
		return 0
	}
	return int(s-StageRoom1) + 1
}

// Session is not safe for concurrent use; each bubbletea program owns one.
type Session struct {
	stage    Stage
	username string
	answers  []string
}

func New() *Session { return &Session{} }

func (s *Session) Stage() Stage     { return s.stage }
func (s *Session) Username() string { return s.username }

// Answers returns a copy of the collected answers in submission order.
func (s *Session) Answers() []string {
	out := make([]string, len(s.answers))
	copy(out, s.answers)
	return out
}

// Completed reports how many rooms have been cleared.
func (s *Session) Completed() int {
	switch {
	case s.stage <= StageRoom1:
		return 0
	case s.stage >= StageFinal:
		return RoomCount
	default:
		return int(s.stage - StageRoom1)
	}
}

// Start leaves the welcome screen. The name is trimmed and must not be blank.
func (s *Session) Start(name string) error {
	if s.stage != StageWelcome {
		return fmt.Errorf("start at %s: %w", s.stage, ErrWrongStage)
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrBlankName
	}
	s.username = name
	s.stage = StageIntro
	return nil
}

// Continue advances past a screen that does not collect an answer
// (the intro and room 6).
func (s *Session) Continue() error {
	if s.stage != StageIntro && s.stage != StageRoom6 {
		return fmt.Errorf("continue at %s: %w", s.stage, ErrWrongStage)
	}
	s.stage++
	return nil
}

// Submit records a room answer verbatim and advances one stage.
// Only rooms 1 through 5 accept answers.
func (s *Session) Submit(answer string) error {
	if s.stage < StageRoom1 || s.stage > StageRoom5 {
		return fmt.Errorf("submit at %s: %w", s.stage, ErrWrongStage)
	}
	s.answers = append(s.answers, answer)
	s.stage++
	return nil
}

// Reset discards everything and returns to the welcome screen.
func (s *Session) Reset() {
	s.stage = StageWelcome
	s.username = ""
	s.answers = nil
}
