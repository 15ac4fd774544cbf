// Package content holds the text shown by every screen of the archive.
//
// The script ships embedded in the binary; a replacement YAML file can be
// supplied through configuration.
package content

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

//go:embed archive.yaml
var embedded []byte

// Tone picks a style for a line. Empty means regular body text.
type Tone string

const (
	ToneBody   Tone = ""
	ToneDim    Tone = "dim"
	ToneFaint  Tone = "faint"
	ToneAccent Tone = "accent"
)

// Line is a piece of text revealed At after its screen appears.
type Line struct {
	Text string        `yaml:"text"`
	At   time.Duration `yaml:"at"`
	Tone Tone          `yaml:"tone"`
}

// Visible reports whether the line has been revealed after elapsed.
func (l Line) Visible(elapsed time.Duration) bool { return elapsed >= l.At }

type Labels struct {
	Submit     string `yaml:"submit"`
	Submitting string `yaml:"submitting"`
	Processing string `yaml:"processing"`
	Answer     string `yaml:"answer"`
	User       string `yaml:"user"`
	RoomOf     string `yaml:"room_of"`
}

type Welcome struct {
	Facts         []Line `yaml:"facts"`
	Prompt        string `yaml:"prompt"`
	Placeholder   string `yaml:"placeholder"`
	Warning       string `yaml:"warning"`
	Button        string `yaml:"button"`
	Footer        Line   `yaml:"footer"`
	MaxNameLength int    `yaml:"max_name_length"`
}

type Intro struct {
	Greeting     string `yaml:"greeting"`
	Heading      string `yaml:"heading"`
	Lead         string `yaml:"lead"`
	Traits       []Line `yaml:"traits"`
	FailuresLead Line   `yaml:"failures_lead"`
	Failures     []Line `yaml:"failures"`
	Closing      Line   `yaml:"closing"`
	Button       Line   `yaml:"button"`
}

// Room carries the union of fields the six rooms use; each room screen
// reads only what it needs.
type Room struct {
	Number      int      `yaml:"number"`
	Title       string   `yaml:"title"`
	Theme       string   `yaml:"theme"`
	Accent      string   `yaml:"accent"`
	Items       []string `yaml:"items"`
	Blank       string   `yaml:"blank"`
	Instruction Line     `yaml:"instruction"`
	Lines       []Line   `yaml:"lines"`
	Affordance  Line     `yaml:"affordance"`
	Reveal      []Line   `yaml:"reveal"`
	Whisper     string   `yaml:"whisper"`
	Patience    string   `yaml:"patience"`
	Placeholder string   `yaml:"placeholder"`
	Footnote    string   `yaml:"footnote"`

	// room 6
	Ledger    []string `yaml:"ledger"`
	Question  Line     `yaml:"question"`
	Verdicts  []string `yaml:"verdicts"`
	Translate Line     `yaml:"translate"`
	Button    Line     `yaml:"button"`
}

// Heading is the room banner, e.g. "ROOM 2 — THE CROOKED LIST".
func (r Room) Heading() string {
	return fmt.Sprintf("ROOM %d — %s", r.Number, r.Title)
}

type Ending struct {
	Heading string `yaml:"heading"`
	Detail  string `yaml:"detail"`
}

type Final struct {
	Unlocked       string `yaml:"unlocked"`
	Accessed       string `yaml:"accessed"`
	Farewell       string `yaml:"farewell"`
	CodeLabel      string `yaml:"code_label"`
	Perfect        Ending `yaml:"perfect"`
	Ordinary       Ending `yaml:"ordinary"`
	TimeLabel      string `yaml:"time_label"`
	RoomsLabel     string `yaml:"rooms_label"`
	RateLabel      string `yaml:"rate_label"`
	AnswersHeading string `yaml:"answers_heading"`
	NoAnswer       string `yaml:"no_answer"`
	Button         string `yaml:"button"`
}

// Archive is the whole script.
type Archive struct {
	Presenter string  `yaml:"presenter"`
	Title     string  `yaml:"title"`
	Tagline   string  `yaml:"tagline"`
	Labels    Labels  `yaml:"labels"`
	Welcome   Welcome `yaml:"welcome"`
	Intro     Intro   `yaml:"intro"`
	Rooms     []Room  `yaml:"rooms"`
	Final     Final   `yaml:"final"`
}

// Room returns the room with the given 1-based number.
func (a *Archive) Room(n int) Room {
	return a.Rooms[n-1]
}

// Default parses the embedded script.
func Default() (*Archive, error) {
	return Parse(embedded)
}

// Load reads a script from path, or the embedded one when path is empty.
func Load(path string) (*Archive, error) {
	if path == "" {
		return Default()
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read content file: %w", err)
	}
	return Parse(data)
}

// Parse decodes and validates a script.
func Parse(data []byte) (*Archive, error) {
	var a Archive
	if err := yaml.Unmarshal(data, &a); err != nil {
		return nil, fmt.Errorf("failed to parse content YAML: %w", err)
	}
	if err := a.Validate(); err != nil {
		return nil, err
	}
	return &a, nil
}

const (
	roomCount     = 6
	reviewedRooms = 5
)

// Validate checks the shape the screens rely on.
func (a *Archive) Validate() error {
	var errs []error
	if a.Title == "" {
		errs = append(errs, errors.New("title is empty"))
	}
	if len(a.Rooms) != roomCount {
		errs = append(errs, fmt.Errorf("want %d rooms, got %d", roomCount, len(a.Rooms)))
	}
	for i, r := range a.Rooms {
		if r.Number != i+1 {
			errs = append(errs, fmt.Errorf("room at position %d is numbered %d", i+1, r.Number))
		}
		if r.Title == "" {
			errs = append(errs, fmt.Errorf("room %d has no title", i+1))
		}
	}
	if len(a.Rooms) == roomCount {
		last := a.Rooms[roomCount-1]
		if len(last.Ledger) != reviewedRooms {
			errs = append(errs, fmt.Errorf("room 6 ledger wants %d entries, got %d", reviewedRooms, len(last.Ledger)))
		}
		if len(last.Verdicts) != reviewedRooms {
			errs = append(errs, fmt.Errorf("room 6 verdicts want %d entries, got %d", reviewedRooms, len(last.Verdicts)))
		}
		if len(a.Rooms[2].Items) == 0 {
			errs = append(errs, errors.New("room 3 needs items to flash"))
		}
	}
	if a.Welcome.MaxNameLength < 0 {
		errs = append(errs, errors.New("welcome.max_name_length must not be negative"))
	}
	for _, f := range []struct {
		key   string
		value string
		want  int
	}{
		{"labels.user", a.Labels.User, 1},
		{"labels.room_of", a.Labels.RoomOf, 2},
		{"intro.greeting", a.Intro.Greeting, 1},
		{"final.farewell", a.Final.Farewell, 1},
	} {
		if got := verbs(f.value); got != f.want {
			errs = append(errs, fmt.Errorf("%s wants %d format verbs, got %d in %q", f.key, f.want, got, f.value))
		}
	}
	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("invalid content: %w", err)
	}
	return nil
}

// verbs counts the fmt verbs in s; "%%" is a literal percent sign.
func verbs(s string) int {
	return strings.Count(s, "%") - 2*strings.Count(s, "%%")
}
