package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"
)

// RunRepo handles archived runs.
type RunRepo struct {
	db *sql.DB
}

func NewRunRepo(db *sql.DB) *RunRepo { return &RunRepo{db: db} }

func (r *RunRepo) Insert(ctx context.Context, run Run) error {
	answers, err := json.Marshal(nonNil(run.Answers))
	if err != nil {
		return fmt.Errorf("encode answers: %w", err)
	}
	_, err = r.db.ExecContext(ctx, `
	INSERT INTO runs(id, username, answers, code, perfect, transport, started_at, completed_at)
	VALUES (?, ?, ?, ?, ?, ?, ?, ?);
	`, run.ID, run.Username, string(answers), run.Code, run.Perfect, run.Transport, run.StartedAt.UTC(), run.CompletedAt.UTC())
	return err
}

func (r *RunRepo) Get(ctx context.Context, id string) (*Run, error) {
	row := r.db.QueryRowContext(ctx, selectRuns+` WHERE id = ?`, id)
	run, err := scanRun(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &run, nil
}

// List returns the most recent runs first. limit <= 0 means no limit.
func (r *RunRepo) List(ctx context.Context, limit int) ([]Run, error) {
	q := selectRuns + ` ORDER BY completed_at DESC, id`
	var args []any
	if limit > 0 {
		q += ` LIMIT ?`
		args = append(args, limit)
	}
	return r.query(ctx, q, args...)
}

// ListByUsernames returns runs filed under any of names, most recent first.
func (r *RunRepo) ListByUsernames(ctx context.Context, names []string, limit int) ([]Run, error) {
	if len(names) == 0 {
		return nil, nil
	}
	placeholders := strings.TrimSuffix(strings.Repeat("?,", len(names)), ",")
	q := selectRuns + ` WHERE username IN (` + placeholders + `) ORDER BY completed_at DESC, id`
	args := make([]any, 0, len(names)+1)
	for _, n := range names {
		args = append(args, n)
	}
	if limit > 0 {
		q += ` LIMIT ?`
		args = append(args, limit)
	}
	return r.query(ctx, q, args...)
}

// Usernames returns every distinct visitor name in the archive.
func (r *RunRepo) Usernames(ctx context.Context) ([]string, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT DISTINCT username FROM runs ORDER BY username`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, err
		}
		out = append(out, name)
	}
	return out, rows.Err()
}

func (r *RunRepo) Stats(ctx context.Context) (RunStats, error) {
	var s RunStats
	err := r.db.QueryRowContext(ctx, `
	SELECT COUNT(*), COALESCE(SUM(perfect), 0), COUNT(DISTINCT username) FROM runs
	`).Scan(&s.Total, &s.Perfect, &s.Visitors)
	return s, err
}

const selectRuns = `SELECT id, username, answers, code, perfect, transport, started_at, completed_at FROM runs`

type scanner interface {
	Scan(dest ...any) error
}

func scanRun(s scanner) (Run, error) {
	var run Run
	var answers string
	if err := s.Scan(&run.ID, &run.Username, &answers, &run.Code, &run.Perfect, &run.Transport, &run.StartedAt, &run.CompletedAt); err != nil {
		return Run{}, err
	}
	if err := json.Unmarshal([]byte(answers), &run.Answers); err != nil {
		return Run{}, fmt.Errorf("decode answers for run %s: %w", run.ID, err)
	}
	return run, nil
}

func (r *RunRepo) query(ctx context.Context, q string, args ...any) ([]Run, error) {
	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []Run
	for rows.Next() {
		run, err := scanRun(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, run)
	}
	return out, rows.Err()
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
