package tui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"

	"github.com/zinosalaam1/greyarchive/internal/session"
)

func TestWelcomeRequiresName(t *testing.T) {
	a := newTestApp(t, nil)

	press(t, a, enterKey)
	require.Equal(t, session.StageWelcome, a.session.Stage())

	typeText(t, a, "   ")
	_, cmd := a.Update(enterKey)
	require.Nil(t, cmd)
	require.Equal(t, session.StageWelcome, a.session.Stage())
}

func TestWelcomeReveals(t *testing.T) {
	a := newTestApp(t, nil)
	out := view(a)
	require.NotContains(t, out, "THE GREY ARCHIVE")
	require.Contains(t, out, "Your name will be remembered")

	wait(a, 1500*time.Millisecond)
	out = view(a)
	require.Contains(t, out, "TOUR ARCADE PRESENTS")
	require.Contains(t, out, "THE GREY ARCHIVE")
	require.Contains(t, out, "Estimated pass rate: ~10%")
	require.Contains(t, out, "There are 6 rooms.")

	typeText(t, a, "m")
	require.NotContains(t, view(a), "Your name will be remembered")
}

func TestWelcomeWarningSurvivesNoopEdits(t *testing.T) {
	a := newTestApp(t, nil)
	press(t, a,
		tea.KeyMsg{Type: tea.KeyBackspace},
		tea.KeyMsg{Type: tea.KeyDelete},
		tea.KeyMsg{Type: tea.KeyCtrlU},
	)
	require.Contains(t, view(a), "Your name will be remembered")

	typeText(t, a, "a")
	press(t, a, tea.KeyMsg{Type: tea.KeyBackspace})
	require.NotContains(t, view(a), "Your name will be remembered")
}

func TestWelcomeNameLimit(t *testing.T) {
	a := newTestApp(t, nil)
	typeText(t, a, strings.Repeat("n", 30))
	require.Equal(t, strings.Repeat("n", 20), a.screen.(*welcomeScreen).name.Value())
}

func TestIntroEnterWorksBeforeButton(t *testing.T) {
	a := newTestApp(t, nil)
	walkTo(t, a, session.StageIntro)
	out := view(a)
	require.NotContains(t, out, "BEGIN")
	require.NotContains(t, out, "Punishes engagement")

	wait(a, 2*time.Second)
	out = view(a)
	require.Contains(t, out, "Punishes engagement")
	require.Contains(t, out, "Try to be right")
	require.Contains(t, out, "BEGIN")

	a = newTestApp(t, nil)
	walkTo(t, a, session.StageIntro)
	press(t, a, enterKey)
	require.Equal(t, session.StageRoom1, a.session.Stage())
}

func TestEntryRoomClockAndWhispers(t *testing.T) {
	a := newTestApp(t, nil)
	walkTo(t, a, session.StageRoom1)
	require.Contains(t, view(a), "0.0s")

	wait(a, 1200*time.Millisecond)
	out := view(a)
	require.Contains(t, out, "1.2s")
	require.Contains(t, out, "ENTER YOUR FIRST ANSWER NOW")
	require.Contains(t, out, "Delay is safe...")
	require.NotContains(t, out, "First answer becomes wrong")

	typeText(t, a, "hello there")
	require.Contains(t, view(a), "First answer becomes wrong")

	press(t, a, enterKey)
	require.Equal(t, []string{"hello there"}, a.session.Answers())
}

func TestPuzzleRoomBlankAnswerIsIgnored(t *testing.T) {
	for _, stage := range []session.Stage{session.StageRoom2, session.StageRoom4, session.StageRoom5} {
		t.Run(stage.String(), func(t *testing.T) {
			a := newTestApp(t, nil)
			walkTo(t, a, stage)

			_, cmd := a.Update(enterKey)
			require.Nil(t, cmd)
			typeText(t, a, "  ")
			_, cmd = a.Update(enterKey)
			require.Nil(t, cmd)
			require.Equal(t, stage, a.session.Stage())
		})
	}
}

func TestPuzzleRoomAffordance(t *testing.T) {
	a := newTestApp(t, nil)
	walkTo(t, a, session.StageRoom2)
	require.NotContains(t, view(a), "IRON")

	wait(a, 2*time.Second)
	out := view(a)
	require.Contains(t, out, "IRON")
	require.Contains(t, out, "STONE")
	require.Contains(t, out, "Wait longer...")
	require.NotContains(t, out, "Belonging depends on weight.")

	press(t, a, tabKey)
	out = view(a)
	require.Contains(t, out, "Belonging depends on weight.")
	require.NotContains(t, out, "Wait longer...")
	require.Empty(t, a.screen.(*puzzleRoom).answer.Value(), "tab must not type into the field")
}

func TestAffordanceCannotBeTakenBeforeItShows(t *testing.T) {
	a := newTestApp(t, nil)
	walkTo(t, a, session.StageRoom4)

	wait(a, 100*time.Millisecond)
	press(t, a, tabKey)
	require.False(t, a.screen.(*puzzleRoom).revealed)
	require.NotContains(t, view(a), "Incorrect numbers are rejected.")

	wait(a, 2*time.Second)
	out := view(a)
	require.Contains(t, out, "But wait...")
	require.NotContains(t, out, "Incorrect numbers are rejected.")

	press(t, a, tabKey)
	require.Contains(t, view(a), "Incorrect numbers are rejected.")
}

func TestSequenceRoomItems(t *testing.T) {
	a := newTestApp(t, nil)
	walkTo(t, a, session.StageRoom5)
	wait(a, 600*time.Millisecond)
	require.Contains(t, view(a), "B  →  A  →  C")
}

func TestMemoryRoomPhases(t *testing.T) {
	a := newTestApp(t, nil)
	walkTo(t, a, session.StageRoom3)
	out := view(a)
	require.Contains(t, out, "LEFT")
	require.NotContains(t, out, "Enter what you lost.")

	// keys during the flash are dropped
	typeText(t, a, "LEFT")
	press(t, a, enterKey)
	require.Equal(t, session.StageRoom3, a.session.Stage())

	wait(a, testTiming.Flash)
	out = view(a)
	require.NotContains(t, out, "LEFT")
	require.Contains(t, out, "...")

	wait(a, testTiming.Blank)
	out = view(a)
	require.Contains(t, out, "Enter what you lost.")
	require.Contains(t, out, "YOUR ANSWER")
	require.Empty(t, a.screen.(*memoryRoom).answer.Value())

	press(t, a, enterKey)
	require.Equal(t, session.StageRoom3, a.session.Stage())
	typeText(t, a, "direction")
	press(t, a, enterKey)
	require.Equal(t, session.StageRoom4, a.session.Stage())
	require.Equal(t, "direction", a.session.Answers()[2])
}

func TestFilterRoomLedger(t *testing.T) {
	long := strings.Repeat("w", 60)
	a := newTestApp(t, nil)
	walkTo(t, a, session.StageRoom6, "", "4", long)
	require.Equal(t, "...", a.session.Answers()[0])

	out := view(a)
	require.NotContains(t, out, "Room 1: The Entry Log")

	wait(a, 4*time.Second)
	out = view(a)
	require.Contains(t, out, "Room 1: The Entry Log")
	require.Contains(t, out, "Room 5: The Order of Events")
	require.Contains(t, out, strings.Repeat("w", 39)+"…")
	require.Contains(t, out, "• Room 1 → ... gives nothing")
	require.Contains(t, out, "... = 0   |   4 = 4")
	require.Contains(t, out, "REVEAL FINAL CODE")

	_, cmd := a.Update(enterKey)
	require.NotNil(t, cmd)
	require.Contains(t, view(a), "PROCESSING...")
	run(t, a, cmd)
	require.Equal(t, session.StageFinal, a.session.Stage())
	require.Len(t, a.session.Answers(), session.AnsweredRooms)
}

func TestEditorKeys(t *testing.T) {
	e := newEditor(5)
	require.True(t, e.Blank())

	require.True(t, e.handle(runes("ab")))
	require.True(t, e.handle(tea.KeyMsg{Type: tea.KeySpace}))
	require.True(t, e.handle(runes("c\nd")))
	require.Equal(t, "ab cd", e.Value())

	e.handle(runes("overflow"))
	require.Equal(t, "ab cd", e.Value())

	require.True(t, e.handle(tea.KeyMsg{Type: tea.KeyBackspace}))
	require.Equal(t, "ab c", e.Value())

	require.False(t, e.handle(tea.KeyMsg{Type: tea.KeyUp}))
	require.True(t, e.handle(tea.KeyMsg{Type: tea.KeyCtrlU}))
	require.Empty(t, e.Value())
	require.True(t, e.touched)

	full := newEditor(1)
	full.handle(runes("x"))
	full.touched = false
	full.handle(runes("y"))
	require.False(t, full.touched, "a rejected rune changes nothing")

	var untouched editor
	untouched.handle(tea.KeyMsg{Type: tea.KeyBackspace})
	untouched.handle(tea.KeyMsg{Type: tea.KeyCtrlU})
	untouched.handle(runes("\n"))
	require.False(t, untouched.touched)

	var unlimited editor
	unlimited.handle(runes(strings.Repeat("z", 100)))
	require.Len(t, unlimited.Value(), 100)
}
