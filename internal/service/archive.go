package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/agnivade/levenshtein"
	"github.com/google/uuid"

	"github.com/zinosalaam1/greyarchive/internal/database"
	"github.com/zinosalaam1/greyarchive/internal/database/repository"
	"github.com/zinosalaam1/greyarchive/internal/session"
)

const (
	TransportLocal = "local"
	TransportSSH   = "ssh"
)

// Visit is what a finished session hands to the archive.
type Visit struct {
	Username    string
	Answers     []string
	Transport   string
	StartedAt   time.Time
	CompletedAt time.Time
}

// ArchiveService files finished runs and looks them up again.
// A nil Runs repo turns filing into a no-op, used when the archive is disabled.
type ArchiveService struct {
	Runs *repository.RunRepo
}

// Enabled reports whether runs are being kept.
func (s *ArchiveService) Enabled() bool { return s != nil && s.Runs != nil }

// Record files a visit and returns the stored run. The code is derived here so
// the archive always agrees with what the final screen showed. Missing
// timestamps default to now.
func (s *ArchiveService) Record(ctx context.Context, v Visit) (repository.Run, error) {
	code := session.DeriveCode(v.Answers)
	transport := v.Transport
	if transport == "" {
		transport = TransportLocal
	}
	completed := database.Now()
	if !v.CompletedAt.IsZero() {
		completed = v.CompletedAt.UTC().Truncate(time.Second)
	}
	// a visit that never recorded its start is filed as instantaneous
	started := completed
	if !v.StartedAt.IsZero() {
		started = v.StartedAt.UTC().Truncate(time.Second)
	}
	run := repository.Run{
		ID:          uuid.NewString(),
		Username:    v.Username,
		Answers:     append([]string(nil), v.Answers...),
		Code:        code.Value,
		Perfect:     code.Perfect,
		Transport:   transport,
		StartedAt:   started,
		CompletedAt: completed,
	}
	if !s.Enabled() {
		return run, nil
	}
	if err := s.Runs.Insert(ctx, run); err != nil {
		return repository.Run{}, fmt.Errorf("file run: %w", err)
	}
	return run, nil
}

// Recent lists the latest runs.
func (s *ArchiveService) Recent(ctx context.Context, limit int) ([]repository.Run, error) {
	if !s.Enabled() {
		return nil, nil
	}
	return s.Runs.List(ctx, limit)
}

// ErrRunNotFound is returned by Run for an id the archive does not hold.
var ErrRunNotFound = errors.New("run not found")

// Run looks up one filed run by id.
func (s *ArchiveService) Run(ctx context.Context, id string) (repository.Run, error) {
	if !s.Enabled() {
		return repository.Run{}, ErrRunNotFound
	}
	run, err := s.Runs.Get(ctx, id)
	if err != nil {
		return repository.Run{}, fmt.Errorf("get run: %w", err)
	}
	if run == nil {
		return repository.Run{}, fmt.Errorf("%w: %s", ErrRunNotFound, id)
	}
	return *run, nil
}

// Stats summarises the archive. A disabled archive reports zeroes.
func (s *ArchiveService) Stats(ctx context.Context) (repository.RunStats, error) {
	if !s.Enabled() {
		return repository.RunStats{}, nil
	}
	return s.Runs.Stats(ctx)
}

// maxNameDistance bounds how far a stored name may be from the query.
const maxNameDistance = 2

// FindVisitor returns runs of visitors whose name is close to name.
// Names are compared case-insensitively; small typos still match.
func (s *ArchiveService) FindVisitor(ctx context.Context, name string, limit int) ([]repository.Run, error) {
	if !s.Enabled() {
		return nil, nil
	}
	names, err := s.Runs.Usernames(ctx)
	if err != nil {
		return nil, fmt.Errorf("list visitors: %w", err)
	}
	matches := MatchNames(name, names, maxNameDistance)
	return s.Runs.ListByUsernames(ctx, matches, limit)
}

// MatchNames returns the candidates within maxDist edits of query.
func MatchNames(query string, candidates []string, maxDist int) []string {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return nil
	}
	var out []string
	for _, c := range candidates {
		if levenshtein.ComputeDistance(q, strings.ToLower(c)) <= maxDist {
			out = append(out, c)
		}
	}
	return out
}
