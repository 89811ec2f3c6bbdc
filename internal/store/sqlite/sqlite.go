package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "modernc.org/sqlite"

	"cetasim/internal/model"
	"cetasim/internal/store"
)

type Store struct {
	db *sql.DB
}

func New(path string) (*Store, error) {
	if path == "" {
		return nil, fmt.Errorf("sqlite: path is required")
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(1)

	s := &Store{db: db}
	if err := s.migrate(); err != nil {
		_ = db.Close()
		return nil, err
	}

	return s, nil
}

func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// SaveTable upserts every (indicator, year, value) cell of the table under
// the run's entity. Re-running an entity replaces its previous values.
func (s *Store) SaveTable(ctx context.Context, run store.Run, table *model.Table) error {
	if table.NumRows() == 0 {
		return nil
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO scenario_values (
			entity, classification, indicator, year, value, generated_at
		) VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT(entity, indicator, year)
		DO UPDATE SET
			value = excluded.value,
			classification = excluded.classification,
			generated_at = excluded.generated_at
	`)
	if err != nil {
		_ = tx.Rollback()
		return err
	}
	defer stmt.Close()

	generatedAt := run.GeneratedAt
	if generatedAt.IsZero() {
		generatedAt = time.Now().UTC()
	}

	years := table.Years()
	for _, indicator := range table.Columns() {
		col, _ := table.Column(indicator)
		for i, year := range years {
			_, err = stmt.ExecContext(
				ctx,
				run.Entity,
				string(run.Classification),
				indicator,
				year,
				col[i],
				generatedAt.UTC(),
			)
			if err != nil {
				_ = tx.Rollback()
				return err
			}
		}
	}

	if err = tx.Commit(); err != nil {
		return err
	}
	return nil
}

func (s *Store) migrate() error {
	statements := []string{
		`PRAGMA foreign_keys = ON;`,
		`CREATE TABLE IF NOT EXISTS scenario_values (
			entity TEXT NOT NULL,
			classification TEXT NOT NULL,
			indicator TEXT NOT NULL,
			year INTEGER NOT NULL,
			value REAL NOT NULL,
			generated_at TEXT NOT NULL,
			PRIMARY KEY (entity, indicator, year)
		);`,
	}

	for _, statement := range statements {
		if _, err := s.db.Exec(statement); err != nil {
			return err
		}
	}

	return nil
}
