// Package sshserver serves the archive over SSH. Every connection gets its
// own program and its own session; nothing is shared between visitors
// except the archive they are filed into.
package sshserver

import (
	"context"
	"errors"
	"fmt"
	"net"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	gossh "github.com/gliderlabs/ssh"
	"github.com/muesli/termenv"
	"github.com/rs/zerolog"

	"github.com/zinosalaam1/greyarchive/internal/config"
	"github.com/zinosalaam1/greyarchive/internal/content"
	"github.com/zinosalaam1/greyarchive/internal/service"
	"github.com/zinosalaam1/greyarchive/internal/tui"
)

const noPTY = "The Grey Archive needs a terminal. Connect with: ssh -t -p <port> <host>"

type Options struct {
	SSH     config.SSHConfig
	Timing  config.TimingConfig
	Content *content.Archive
	Archive tui.Archiver
	Logger  zerolog.Logger
}

type Server struct {
	opts Options
	log  zerolog.Logger
	srv  *gossh.Server
}

// New loads (or creates) the host key and prepares the server. It does not
// listen until ListenAndServe or Serve is called.
func New(opts Options) (*Server, error) {
	signer, created, err := LoadOrCreateHostKey(opts.SSH.HostKey)
	if err != nil {
		return nil, err
	}
	s := &Server{opts: opts, log: opts.Logger.With().Str("component", "ssh").Logger()}
	if created {
		s.log.Info().Str("path", opts.SSH.HostKey).Msg("generated host key")
	}
	s.srv = &gossh.Server{
		Addr:        opts.SSH.Addr,
		Handler:     s.handle,
		PtyCallback: func(gossh.Context, gossh.Pty) bool { return true },
		HostSigners: []gossh.Signer{signer},
		IdleTimeout: opts.SSH.IdleTimeout,
	}
	return s, nil
}

func (s *Server) ListenAndServe() error {
	s.log.Info().Str("addr", s.srv.Addr).Msg("listening")
	if err := s.srv.ListenAndServe(); err != nil && !errors.Is(err, gossh.ErrServerClosed) {
		return fmt.Errorf("ssh serve: %w", err)
	}
	return nil
}

// Serve accepts connections on l until the server is shut down.
func (s *Server) Serve(l net.Listener) error {
	if err := s.srv.Serve(l); err != nil && !errors.Is(err, gossh.ErrServerClosed) {
		return fmt.Errorf("ssh serve: %w", err)
	}
	return nil
}

// Shutdown stops accepting connections and waits for open sessions until
// ctx is done.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.srv.Shutdown(ctx)
}

func (s *Server) Close() error { return s.srv.Close() }

// handle runs one visit. It blocks for the life of the connection.
func (s *Server) handle(sess gossh.Session) {
	log := s.log.With().
		Str("remote", sess.RemoteAddr().String()).
		Str("user", sess.User()).
		Logger()

	pty, winCh, ok := sess.Pty()
	if !ok {
		log.Info().Msg("rejected session without pty")
		fmt.Fprintln(sess, noPTY)
		_ = sess.Exit(1)
		return
	}
	log.Info().Str("term", pty.Term).Msg("connected")

	renderer := lipgloss.NewRenderer(sess)
	renderer.SetColorProfile(colorProfile(pty.Term, sess.Environ()))

	app := tui.New(sess.Context(), tui.Options{
		Timing:    s.opts.Timing,
		Content:   s.opts.Content,
		Archive:   s.opts.Archive,
		Logger:    log,
		Renderer:  renderer,
		Transport: service.TransportSSH,
	})
	p := tea.NewProgram(app,
		tea.WithInput(sess),
		tea.WithOutput(sess),
		tea.WithAltScreen(),
		tea.WithContext(sess.Context()),
	)

	// the first window arrives on winCh too
	go func() {
		for w := range winCh {
			p.Send(tea.WindowSizeMsg{Width: w.Width, Height: w.Height})
		}
	}()

	if _, err := p.Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		log.Error().Err(err).Msg("program")
	}
	log.Info().
		Str("stage", app.Session().Stage().String()).
		Int("answers", len(app.Session().Answers())).
		Msg("disconnected")
}

// colorProfile picks what the remote terminal can draw from its TERM and
// COLORTERM.
func colorProfile(term string, environ []string) termenv.Profile {
	colorterm := ""
	for _, kv := range environ {
		if v, ok := strings.CutPrefix(kv, "COLORTERM="); ok {
			colorterm = v
		}
	}
	switch {
	case term == "" || term == "dumb":
		return termenv.Ascii
	case colorterm == "truecolor" || colorterm == "24bit":
		return termenv.TrueColor
	case strings.Contains(term, "256color"):
		return termenv.ANSI256
	default:
		return termenv.ANSI
	}
}
