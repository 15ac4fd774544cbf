package repository

import "time"

// Run represents a finished visit filed in the archive.
type Run struct {
	ID          string
	Username    string
	Answers     []string
	Code        string
	Perfect     bool
	Transport   string
	StartedAt   time.Time
	CompletedAt time.Time
}

// RunStats summarises the archive.
type RunStats struct {
	Total    int
	Perfect  int
	Visitors int
}
