// Package sqlite provides a CharacterRepository backed by an embedded SQLite
// database (modernc.org/sqlite, no cgo). The schema is applied from embedded
// migrations when the store is opened.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	_ "modernc.org/sqlite"

	"github.com/jsamuelsen11/character-service/internal/adapters/storage/sqlite/migrations"
	"github.com/jsamuelsen11/character-service/internal/domain"
	"github.com/jsamuelsen11/character-service/internal/domain/character"
	"github.com/jsamuelsen11/character-service/internal/ports"
)

// Compile-time check that Repository implements ports.CharacterRepository.
var _ ports.CharacterRepository = (*Repository)(nil)

// Repository stores characters in a single SQLite table.
type Repository struct {
	db *sql.DB
}

// Open opens (creating if needed) the database at path, verifies the
// connection and applies pending migrations.
func Open(ctx context.Context, path string) (*Repository, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return nil, errors.New("sqlite path is required")
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o750); err != nil {
			return nil, fmt.Errorf("create sqlite dir: %w", err)
		}
	}

	dsn := path + "?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)&_pragma=synchronous(NORMAL)"
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite store: %w", err)
	}
	// SQLite allows a single writer; one connection avoids SQLITE_BUSY under load.
	db.SetMaxOpenConns(1)
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping sqlite store: %w", err)
	}
	if err := applyMigrations(ctx, db, migrations.FS); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("apply sqlite migrations: %w", err)
	}

	return &Repository{db: db}, nil
}

// Close closes the underlying database handle.
func (r *Repository) Close() error {
	if r == nil || r.db == nil {
		return nil
	}
	return r.db.Close()
}

// Add inserts c. An existing row with the same ID yields domain.ErrConflict.
func (r *Repository) Add(ctx context.Context, c character.Character) (character.ID, error) {
	res, err := r.db.ExecContext(ctx,
		`INSERT INTO characters (id, name, class) VALUES (?, ?, ?) ON CONFLICT(id) DO NOTHING`,
		c.ID.String(), c.Name, string(c.Class),
	)
	if err != nil {
		return character.ID{}, fmt.Errorf("insert character: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return character.ID{}, fmt.Errorf("insert character: %w", err)
	}
	if n == 0 {
		return character.ID{}, fmt.Errorf("character %s: %w", c.ID, domain.ErrConflict)
	}
	return c.ID, nil
}

// Get returns the character with the given ID, or nil.
func (r *Repository) Get(ctx context.Context, id character.ID) (*character.Character, error) {
	row := r.db.QueryRowContext(ctx, `SELECT id, name, class FROM characters WHERE id = ?`, id.String())
	c, err := scanCharacter(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get character: %w", err)
	}
	return &c, nil
}

// Update replaces the row for c.ID.
func (r *Repository) Update(ctx context.Context, c character.Character) (bool, error) {
	res, err := r.db.ExecContext(ctx,
		`UPDATE characters SET name = ?, class = ? WHERE id = ?`,
		c.Name, string(c.Class), c.ID.String(),
	)
	if err != nil {
		return false, fmt.Errorf("update character: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("update character: %w", err)
	}
	return n > 0, nil
}

// Delete removes the row for id.
func (r *Repository) Delete(ctx context.Context, id character.ID) (bool, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM characters WHERE id = ?`, id.String())
	if err != nil {
		return false, fmt.Errorf("delete character: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("delete character: %w", err)
	}
	return n > 0, nil
}

// List returns every stored character.
func (r *Repository) List(ctx context.Context) ([]character.Character, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, name, class FROM characters`)
	if err != nil {
		return nil, fmt.Errorf("list characters: %w", err)
	}
	defer rows.Close()

	out := make([]character.Character, 0)
	for rows.Next() {
		c, err := scanCharacter(rows)
		if err != nil {
			return nil, fmt.Errorf("scan character: %w", err)
		}
		out = append(out, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list characters: %w", err)
	}
	return out, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanCharacter(s scanner) (character.Character, error) {
	var id, name, class string
	if err := s.Scan(&id, &name, &class); err != nil {
		return character.Character{}, err
	}
	parsed, err := character.ParseID(id)
	if err != nil {
		return character.Character{}, err
	}
	return character.Character{ID: parsed, Name: name, Class: character.Class(class)}, nil
}
