package store

import (
	"context"
	"time"

	"cetasim/internal/model"
)

// Run identifies one scenario generation.
type Run struct {
	Entity         string
	Classification model.Classification
	GeneratedAt    time.Time
}

// Store is the optional persistence sink for generated tables.
type Store interface {
	SaveTable(ctx context.Context, run Run, table *model.Table) error
	Close() error
}

// NopStore discards everything; used when persistence is disabled.
type NopStore struct{}

func (s *NopStore) SaveTable(ctx context.Context, run Run, table *model.Table) error {
	_ = ctx
	_ = run
	_ = table
	return nil
}

func (s *NopStore) Close() error {
	return nil
}
