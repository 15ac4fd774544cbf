package content

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestDefaultScript(t *testing.T) {
	a, err := Default()
	require.NoError(t, err)
	require.Equal(t, "THE GREY ARCHIVE", a.Title)
	require.Len(t, a.Rooms, 6)
	require.Equal(t, 20, a.Welcome.MaxNameLength)

	require.Equal(t, "ROOM 1 — THE ENTRY LOG", a.Room(1).Heading())
	require.Equal(t, []string{"IRON", "WOOD", "GLASS", "SOUND", "STONE"}, a.Room(2).Items)
	require.Equal(t, []string{"LEFT", "RIGHT", "CENTER"}, a.Room(3).Items)
	require.Equal(t, "...", a.Room(3).Blank)
	require.Len(t, a.Room(6).Ledger, 5)
	require.Len(t, a.Room(6).Verdicts, 5)
	require.Equal(t, 4*time.Second, a.Room(6).Button.At)
	require.Equal(t, 2*time.Second, a.Intro.Button.At)
	require.Equal(t, ToneFaint, a.Intro.Closing.Tone)
}

func TestLineVisible(t *testing.T) {
	l := Line{Text: "x", At: 800 * time.Millisecond}
	require.False(t, l.Visible(700*time.Millisecond))
	require.True(t, l.Visible(800*time.Millisecond))
	require.True(t, Line{Text: "now"}.Visible(0))
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "script.yaml")
	modified := strings.Replace(string(embedded), "title: THE GREY ARCHIVE", "title: THE BLUE ARCHIVE", 1)
	require.NoError(t, os.WriteFile(path, []byte(modified), 0o644))

	a, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, "THE BLUE ARCHIVE", a.Title)

	a, err = Load("")
	require.NoError(t, err)
	require.Equal(t, "THE GREY ARCHIVE", a.Title)

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
}

func TestValidateRejectsBrokenScripts(t *testing.T) {
	_, err := Parse([]byte("title: [unclosed"))
	require.Error(t, err)

	_, err = Parse([]byte("title: X\nrooms:\n  - {number: 1, title: A}\n"))
	require.ErrorContains(t, err, "want 6 rooms")

	a, err := Default()
	require.NoError(t, err)
	a.Rooms[3].Number = 9
	a.Rooms[5].Verdicts = a.Rooms[5].Verdicts[:2]
	err = a.Validate()
	require.ErrorContains(t, err, "numbered 9")
	require.ErrorContains(t, err, "verdicts")
}

func TestDefaultScriptQuestionLines(t *testing.T) {
	a, err := Default()
	require.NoError(t, err)

	reveal := a.Room(5).Reveal
	require.Equal(t, "What comes before A in ASCII order?", reveal[len(reveal)-1].Text)
	require.Equal(t, ToneFaint, reveal[len(reveal)-1].Tone)

	q := a.Room(6).Question
	require.Equal(t, "Which answers provided less information than requested?", q.Text)
	require.Equal(t, 2500*time.Millisecond, q.At)
	require.Equal(t, ToneDim, q.Tone)
}

func TestValidateFormatStrings(t *testing.T) {
	a, err := Default()
	require.NoError(t, err)
	a.Labels.User = "USER"
	a.Labels.RoomOf = "ROOM %d"
	a.Intro.Greeting = "Welcome, %s (100%% sure)"
	a.Final.Farewell = "Goodbye"

	err = a.Validate()
	require.ErrorContains(t, err, "labels.user wants 1 format verbs, got 0")
	require.ErrorContains(t, err, "labels.room_of wants 2 format verbs, got 1")
	require.ErrorContains(t, err, "final.farewell wants 1 format verbs, got 0")
	require.NotContains(t, err.Error(), "intro.greeting")
}
