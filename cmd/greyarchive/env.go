package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/rs/zerolog"

	"github.com/zinosalaam1/greyarchive/internal/config"
	"github.com/zinosalaam1/greyarchive/internal/content"
	"github.com/zinosalaam1/greyarchive/internal/database"
	"github.com/zinosalaam1/greyarchive/internal/database/repository"
	"github.com/zinosalaam1/greyarchive/internal/logger"
	"github.com/zinosalaam1/greyarchive/internal/service"
	"github.com/zinosalaam1/greyarchive/internal/tui"
)

// env is everything a command needs, opened in dependency order.
type env struct {
	cfg     config.Config
	log     zerolog.Logger
	text    *content.Archive
	archive *service.ArchiveService

	closers []io.Closer
}

// openEnv loads config, logging, room text and the archive. console decides
// whether logs may also go to stderr.
func openEnv(configPath string, console bool) (*env, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}
	if !console {
		cfg.Log.Console = false
	}

	e := &env{cfg: cfg}
	log, logCloser, err := logger.New(cfg.Log)
	if err != nil {
		return nil, fmt.Errorf("logger: %w", err)
	}
	e.log = log
	e.closers = append(e.closers, logCloser)

	text, err := content.Load(cfg.Content.Path)
	if err != nil {
		e.Close()
		return nil, err
	}
	e.text = text

	e.archive = &service.ArchiveService{}
	if cfg.Archive.Enabled {
		db, err := database.OpenArchive(cfg.Archive.Path)
		if err != nil {
			e.Close()
			return nil, err
		}
		e.closers = append(e.closers, db)
		e.archive.Runs = repository.NewRunRepo(db)
	}
	log.Debug().Bool("archive", cfg.Archive.Enabled).Str("content", cfg.Content.Path).Msg("environment ready")
	return e, nil
}

// archiver is the archive as the tui sees it; nil when disabled so that
// finished runs are not reported as filed.
func (e *env) archiver() tui.Archiver {
	if !e.archive.Enabled() {
		return nil
	}
	return e.archive
}

func (e *env) Close() error {
	var errs []error
	for i := len(e.closers) - 1; i >= 0; i-- {
		if err := e.closers[i].Close(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
