package tui

import (
	"context"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/rs/zerolog"

	"github.com/zinosalaam1/greyarchive/internal/config"
	"github.com/zinosalaam1/greyarchive/internal/content"
	"github.com/zinosalaam1/greyarchive/internal/database/repository"
	"github.com/zinosalaam1/greyarchive/internal/service"
	"github.com/zinosalaam1/greyarchive/internal/session"
)

// Archiver files finished visits. *service.ArchiveService satisfies it.
type Archiver interface {
	Record(ctx context.Context, v service.Visit) (repository.Run, error)
}

// Options wires an App. Zero values fall back to defaults where one exists.
type Options struct {
	Timing    config.TimingConfig
	Content   *content.Archive
	Archive   Archiver
	Logger    zerolog.Logger
	Renderer  *lipgloss.Renderer
	Transport string
	Now       func() time.Time
}

const (
	maxPanelWidth = 76
	minPanelWidth = 40
)

// App is the root bubbletea model. It owns the session and swaps screens as
// the stage advances.
type App struct {
	ctx       context.Context
	session   *session.Session
	text      *content.Archive
	timing    config.TimingConfig
	archive   Archiver
	log       zerolog.Logger
	st        *styles
	transport string
	now       func() time.Time

	screen    screen
	gen       int
	pending   bool
	startedAt time.Time
	width     int
	height    int
}

func New(ctx context.Context, opts Options) *App {
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.Transport == "" {
		opts.Transport = service.TransportLocal
	}
	if opts.Timing.Tick <= 0 {
		opts.Timing = config.Default().Timing
	}
	a := &App{
		ctx:       ctx,
		session:   session.New(),
		text:      opts.Content,
		timing:    opts.Timing,
		archive:   opts.Archive,
		log:       opts.Logger,
		st:        newStyles(opts.Renderer),
		transport: opts.Transport,
		now:       opts.Now,
	}
	a.screen = a.screenFor(a.session.Stage())
	return a
}

// Session exposes the state for callers that inspect a finished program.
func (a *App) Session() *session.Session { return a.session }

func (a *App) Init() tea.Cmd {
	return tickAfter(a.gen, a.timing.Tick)
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch m := msg.(type) {
	case tea.WindowSizeMsg:
		a.width, a.height = m.Width, m.Height
		return a, nil
	case tea.KeyMsg:
		if m.Type == tea.KeyCtrlC {
			return a, tea.Quit
		}
		if a.pending {
			return a, nil
		}
		return a, a.apply(a.screen.key(m))
	case tickMsg:
		if m.gen != a.gen {
			return a, nil
		}
		a.screen.advance(a.timing.Tick)
		return a, tickAfter(a.gen, a.timing.Tick)
	case completeMsg:
		if m.gen != a.gen {
			return a, nil
		}
		return a, a.complete(m.res)
	case filedMsg:
		if m.gen != a.gen {
			return a, nil
		}
		if f, ok := a.screen.(*finalScreen); ok {
			if m.err != nil {
				f.filed("The archive could not file this visit.")
			} else {
				f.filed(fmt.Sprintf("Filed as %s.", shortID(m.run.ID)))
			}
		}
		return a, nil
	}
	return a, nil
}

// apply turns a screen result into either an immediate transition or a
// delayed one. Delayed results lock the screen so they fire once.
func (a *App) apply(res result) tea.Cmd {
	switch res.act {
	case actNone:
		return nil
	case actQuit:
		return tea.Quit
	}
	if res.delayed {
		a.pending = true
		a.screen.lock()
		return completeAfter(a.gen, a.timing.SubmitDelay, res)
	}
	return a.complete(res)
}

func (a *App) complete(res result) tea.Cmd {
	from := a.session.Stage()
	var err error
	switch res.act {
	case actStart:
		err = a.session.Start(res.value)
		if err == nil {
			a.startedAt = a.now()
			a.log.Info().Str("username", a.session.Username()).Str("transport", a.transport).Msg("session started")
		}
	case actContinue:
		err = a.session.Continue()
	case actSubmit:
		err = a.session.Submit(res.value)
	case actRestart:
		a.log.Info().Str("username", a.session.Username()).Msg("returned to start")
		a.session.Reset()
	}
	if err != nil {
		// screens only offer actions their stage accepts; this is a bug, not a visitor error
		a.log.Error().Err(err).Str("stage", from.String()).Msg("transition rejected")
		a.pending = false
		return nil
	}
	a.log.Debug().Str("from", from.String()).Str("to", a.session.Stage().String()).Int("answers", len(a.session.Answers())).Msg("stage advanced")
	return a.mount()
}

// mount replaces the screen for the current stage. Bumping the generation
// stops the old screen's timers.
func (a *App) mount() tea.Cmd {
	a.gen++
	a.pending = false
	a.screen = a.screenFor(a.session.Stage())
	cmds := []tea.Cmd{tickAfter(a.gen, a.timing.Tick)}
	if a.session.Stage() == session.StageFinal {
		cmds = append(cmds, a.fileCmd())
	}
	return tea.Batch(cmds...)
}

func (a *App) screenFor(stage session.Stage) screen {
	name := a.session.Username()
	switch stage {
	case session.StageIntro:
		return newIntro(a.st, a.text, name)
	case session.StageRoom1:
		return newEntryRoom(a.st, a.text, name, a.timing.Patience)
	case session.StageRoom2:
		return newPuzzleRoom(a.st, a.text, 2, name, layoutList)
	case session.StageRoom3:
		return newMemoryRoom(a.st, a.text, name, a.timing.Flash, a.timing.Blank)
	case session.StageRoom4:
		return newPuzzleRoom(a.st, a.text, 4, name, layoutNone)
	case session.StageRoom5:
		return newPuzzleRoom(a.st, a.text, 5, name, layoutSequence)
	case session.StageRoom6:
		return newFilterRoom(a.st, a.text, name, a.session.Answers())
	case session.StageFinal:
		return newFinal(a.st, a.text, name, a.session.Answers(), a.session.Completed(), a.now())
	default:
		return newWelcome(a.st, a.text)
	}
}

func (a *App) fileCmd() tea.Cmd {
	if a.archive == nil {
		return nil
	}
	gen := a.gen
	visit := service.Visit{
		Username:    a.session.Username(),
		Answers:     a.session.Answers(),
		Transport:   a.transport,
		StartedAt:   a.startedAt,
		CompletedAt: a.now(),
	}
	ctx := a.ctx
	log := a.log
	return func() tea.Msg {
		run, err := a.archive.Record(ctx, visit)
		if err != nil {
			log.Error().Err(err).Str("username", visit.Username).Msg("file run")
		} else {
			log.Info().Str("run", run.ID).Str("username", run.Username).Str("code", run.Code).Bool("perfect", run.Perfect).Msg("run filed")
		}
		return filedMsg{gen: gen, run: run, err: err}
	}
}

func (a *App) View() string {
	width := maxPanelWidth
	if a.width > 0 {
		width = min(max(a.width-4, minPanelWidth), maxPanelWidth)
	}
	body := a.screen.view(width)
	if a.width > 0 && a.height > 0 {
		return lipgloss.Place(a.width, a.height, lipgloss.Center, lipgloss.Center, body)
	}
	return body
}

func shortID(id string) string {
	if len(id) > 8 {
		return "#" + id[:8]
	}
	return "#" + id
}
