package repository

import (
	"context"
	"database/sql"
)

// SessionRepo records plays of a deck.
type SessionRepo struct {
	db *sql.DB
}

func NewSessionRepo(db *sql.DB) *SessionRepo { return &SessionRepo{db: db} }

func (r *SessionRepo) Start(ctx context.Context, s Session) error {
	_, err := r.db.ExecContext(ctx, `
	INSERT INTO sessions(id, deck_id, started_at, slides_viewed)
	VALUES (?, ?, CURRENT_TIMESTAMP, 0)`, s.ID, s.DeckID)
	return err
}

func (r *SessionRepo) CountView(ctx context.Context, id string) error {
	_, err := r.db.ExecContext(ctx, `UPDATE sessions SET slides_viewed = slides_viewed + 1 WHERE id = ?`, id)
	return err
}

func (r *SessionRepo) End(ctx context.Context, id string) error {
	_, err := r.db.ExecContext(ctx, `UPDATE sessions SET ended_at = CURRENT_TIMESTAMP WHERE id = ? AND ended_at IS NULL`, id)
	return err
}

func (r *SessionRepo) ListForDeck(ctx context.Context, deckID string) ([]Session, error) {
	rows, err := r.db.QueryContext(ctx, `
	SELECT id, deck_id, started_at, ended_at, slides_viewed
	FROM sessions WHERE deck_id = ? ORDER BY started_at DESC, id`, deckID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []Session
	for rows.Next() {
		var s Session
		var ended sql.NullTime
		if err := rows.Scan(&s.ID, &s.DeckID, &s.StartedAt, &ended, &s.SlidesViewed); err != nil {
			return nil, err
		}
		if ended.Valid {
			t := ended.Time
			s.EndedAt = &t
		}
		out = append(out, s)
	}
	return out, rows.Err()
}
