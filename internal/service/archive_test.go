package service

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/zinosalaam1/greyarchive/internal/database"
	"github.com/zinosalaam1/greyarchive/internal/database/repository"
)

func newArchive(t *testing.T) *ArchiveService {
	t.Helper()
	db, err := database.OpenArchive(filepath.Join(t.TempDir(), "archive.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return &ArchiveService{Runs: repository.NewRunRepo(db)}
}

func TestRecordDerivesCode(t *testing.T) {
	t.Parallel()
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	svc := newArchive(t)

	start := time.Date(2026, 2, 3, 9, 0, 0, 0, time.UTC)
	run, err := svc.Record(ctx, Visit{
		Username:    "ada",
		Answers:     []string{"...", "4", "x", "y", "z"},
		StartedAt:   start,
		CompletedAt: start.Add(4 * time.Minute),
	})
	require.NoError(t, err)
	require.NotEmpty(t, run.ID)
	require.Equal(t, "04", run.Code)
	require.True(t, run.Perfect)
	require.Equal(t, TransportLocal, run.Transport)

	stored, err := svc.Runs.Get(ctx, run.ID)
	require.NoError(t, err)
	require.NotNil(t, stored)
	require.Equal(t, run.Answers, stored.Answers)

	stats, err := svc.Stats(ctx)
	require.NoError(t, err)
	require.Equal(t, 1, stats.Total)
	require.Equal(t, 1, stats.Perfect)
}

func TestRecordDefaultsMissingTimes(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc := newArchive(t)

	before := database.Now()
	run, err := svc.Record(ctx, Visit{Username: "lin", Answers: []string{"..."}})
	require.NoError(t, err)
	after := database.Now()

	require.False(t, run.CompletedAt.Before(before))
	require.False(t, run.CompletedAt.After(after))
	require.Equal(t, run.CompletedAt, run.StartedAt)
	require.Equal(t, time.UTC, run.CompletedAt.Location())
	require.Zero(t, run.CompletedAt.Nanosecond())

	stored, err := svc.Runs.Get(ctx, run.ID)
	require.NoError(t, err)
	require.True(t, run.CompletedAt.Equal(stored.CompletedAt))

	// a start without an end still defaults the end only
	start := time.Date(2026, 2, 3, 9, 0, 0, 500, time.FixedZone("CET", 3600))
	run, err = svc.Record(ctx, Visit{Username: "lin", StartedAt: start})
	require.NoError(t, err)
	require.Equal(t, time.Date(2026, 2, 3, 8, 0, 0, 0, time.UTC), run.StartedAt)
	require.False(t, run.CompletedAt.Before(before))
}

func TestRunLookup(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc := newArchive(t)

	filed, err := svc.Record(ctx, Visit{Username: "ada", Answers: []string{"...", "4"}})
	require.NoError(t, err)

	got, err := svc.Run(ctx, filed.ID)
	require.NoError(t, err)
	require.Equal(t, "ada", got.Username)
	require.Equal(t, []string{"...", "4"}, got.Answers)

	_, err = svc.Run(ctx, "nope")
	require.ErrorIs(t, err, ErrRunNotFound)

	_, err = (&ArchiveService{}).Run(ctx, filed.ID)
	require.ErrorIs(t, err, ErrRunNotFound)
}

func TestRecordCopiesAnswers(t *testing.T) {
	t.Parallel()
	svc := &ArchiveService{}
	answers := []string{"a", "b"}
	run, err := svc.Record(context.Background(), Visit{Username: "x", Answers: answers})
	require.NoError(t, err)
	answers[0] = "changed"
	require.Equal(t, "a", run.Answers[0])
}

func TestDisabledArchiveIsNoop(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	var svc *ArchiveService
	require.False(t, svc.Enabled())

	svc = &ArchiveService{}
	run, err := svc.Record(ctx, Visit{Username: "ghost", Answers: []string{"hello"}, Transport: TransportSSH})
	require.NoError(t, err)
	require.Equal(t, "?", run.Code[:1])
	require.Equal(t, TransportSSH, run.Transport)

	recent, err := svc.Recent(ctx, 10)
	require.NoError(t, err)
	require.Empty(t, recent)

	found, err := svc.FindVisitor(ctx, "ghost", 10)
	require.NoError(t, err)
	require.Empty(t, found)
}

func TestFindVisitorToleratesTypos(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc := newArchive(t)

	now := time.Now()
	for _, name := range []string{"Marguerite", "Margarita", "Bob"} {
		_, err := svc.Record(ctx, Visit{Username: name, Answers: []string{"..."}, StartedAt: now, CompletedAt: now})
		require.NoError(t, err)
	}

	runs, err := svc.FindVisitor(ctx, "margueritte", 0)
	require.NoError(t, err)
	require.Len(t, runs, 1)
	require.Equal(t, "Marguerite", runs[0].Username)

	runs, err = svc.FindVisitor(ctx, "bob", 0)
	require.NoError(t, err)
	require.Len(t, runs, 1)

	recent, err := svc.Recent(ctx, 2)
	require.NoError(t, err)
	require.Len(t, recent, 2)
}

func TestMatchNames(t *testing.T) {
	names := []string{"ada", "Adam", "eve", "bartholomew"}
	require.Equal(t, []string{"ada", "Adam"}, MatchNames("ADA", names, 1))
	require.Equal(t, []string{"eve"}, MatchNames("eva", names, 1))
	require.Empty(t, MatchNames("  ", names, 2))
	require.Empty(t, MatchNames("zzz", names, 1))
}
