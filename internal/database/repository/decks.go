package repository

import (
	"context"
	"database/sql"

	"github.com/jask/carousel/internal/database"
)

// DeckRepo handles decks and their resume positions.
type DeckRepo struct {
	db *sql.DB
}

func NewDeckRepo(db *sql.DB) *DeckRepo { return &DeckRepo{db: db} }

// Upsert records that a deck was opened at d.OpenedAt (now when zero).
// The stored position is kept.
func (r *DeckRepo) Upsert(ctx context.Context, d Deck) error {
	opened := database.Now()
	if !d.OpenedAt.IsZero() {
		opened = database.Stamp(d.OpenedAt)
	}
	_, err := r.db.ExecContext(ctx, `
	INSERT INTO decks(id, path, title, slide_count, last_slide, opened_at, updated_at)
	VALUES (?, ?, ?, ?, ?, ?, CURRENT_TIMESTAMP)
	ON CONFLICT(id) DO UPDATE SET
	  path=excluded.path,
	  title=excluded.title,
	  slide_count=excluded.slide_count,
	  opened_at=excluded.opened_at,
	  updated_at=CURRENT_TIMESTAMP;
	`, d.ID, d.Path, d.Title, d.SlideCount, d.LastSlide, opened)
	return err
}

func (r *DeckRepo) Get(ctx context.Context, id string) (*Deck, error) {
	row := r.db.QueryRowContext(ctx, `
	SELECT id, path, title, slide_count, last_slide, opened_at, updated_at
	FROM decks WHERE id = ?`, id)
	d, err := scanDeck(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &d, nil
}

func (r *DeckRepo) SavePosition(ctx context.Context, id string, slide int) error {
	_, err := r.db.ExecContext(ctx, `UPDATE decks SET last_slide = ?, updated_at=CURRENT_TIMESTAMP WHERE id = ?`, slide, id)
	return err
}

// ListRecent returns decks by most recently opened. limit <= 0 means all.
func (r *DeckRepo) ListRecent(ctx context.Context, limit int) ([]Deck, error) {
	if limit <= 0 {
		limit = -1
	}
	rows, err := r.db.QueryContext(ctx, `
	SELECT id, path, title, slide_count, last_slide, opened_at, updated_at
	FROM decks ORDER BY opened_at DESC, path LIMIT ?`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []Deck
	for rows.Next() {
		d, err := scanDeck(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, d)
	}
	return out, rows.Err()
}

func (r *DeckRepo) Delete(ctx context.Context, id string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM decks WHERE id = ?`, id)
	return err
}

type scanner interface {
	Scan(dest ...any) error
}

func scanDeck(s scanner) (Deck, error) {
	var d Deck
	err := s.Scan(&d.ID, &d.Path, &d.Title, &d.SlideCount, &d.LastSlide, &d.OpenedAt, &d.UpdatedAt)
	return d, err
}
