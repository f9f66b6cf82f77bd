package service

import (
	"context"
	"fmt"
	"log"
	"path/filepath"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/jask/carousel/internal/database"
	"github.com/jask/carousel/internal/database/repository"
	"github.com/jask/carousel/internal/deck"
)

// PlaybackService loads decks and remembers where each one was left.
type PlaybackService struct {
	Decks    *repository.DeckRepo
	Sessions *repository.SessionRepo
	Now      func() time.Time
}

// Playback is one open deck.
type Playback struct {
	Deck      *deck.Deck
	SessionID string
	// Resume is the slide to show after mount; 0 when there is nothing to
	// resume or the stored position no longer fits the deck.
	Resume int

	mu    sync.Mutex
	saved uint64
}

// RecentDeck is a deck with its play history folded in.
type RecentDeck struct {
	repository.Deck
	Plays int
	Views int
}

// Open loads the deck at path, records the visit and starts a session.
func (s *PlaybackService) Open(ctx context.Context, path string, resume bool) (*Playback, error) {
	d, err := deck.Load(path)
	if err != nil {
		return nil, err
	}
	prev, err := s.Decks.Get(ctx, d.ID)
	if err != nil {
		return nil, fmt.Errorf("lookup deck: %w", err)
	}
	if err := s.Decks.Upsert(ctx, repository.Deck{
		ID:         d.ID,
		Path:       d.Path,
		Title:      d.Title,
		SlideCount: len(d.Slides),
		OpenedAt:   s.now(),
	}); err != nil {
		return nil, fmt.Errorf("save deck: %w", err)
	}

	p := &Playback{Deck: d, SessionID: uuid.NewString()}
	if err := s.Sessions.Start(ctx, repository.Session{ID: p.SessionID, DeckID: d.ID}); err != nil {
		return nil, fmt.Errorf("start session: %w", err)
	}
	if resume && prev != nil && prev.LastSlide > 0 && prev.LastSlide < len(d.Slides) {
		p.Resume = prev.LastSlide
	}
	log.Printf("opened deck %s (%d slides), resume at %d", d.Path, len(d.Slides), p.Resume)
	return p, nil
}

// Record stores index as the deck's position and counts the view. Saves run
// on their own goroutines and may arrive out of order: seq numbers them, and
// a save older than one already written only counts the view.
func (s *PlaybackService) Record(ctx context.Context, p *Playback, seq uint64, index int) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if err := s.savePosition(ctx, p, seq, index); err != nil {
		return err
	}
	if err := s.Sessions.CountView(ctx, p.SessionID); err != nil {
		return fmt.Errorf("count view: %w", err)
	}
	return nil
}

// Save stores the position without counting a view.
func (s *PlaybackService) Save(ctx context.Context, p *Playback, seq uint64, index int) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	return s.savePosition(ctx, p, seq, index)
}

func (s *PlaybackService) savePosition(ctx context.Context, p *Playback, seq uint64, index int) error {
	if seq <= p.saved {
		return nil
	}
	if err := s.Decks.SavePosition(ctx, p.Deck.ID, index); err != nil {
		return fmt.Errorf("save position: %w", err)
	}
	p.saved = seq
	return nil
}

// Close ends the session.
func (s *PlaybackService) Close(ctx context.Context, p *Playback) error {
	if p == nil {
		return nil
	}
	return s.Sessions.End(ctx, p.SessionID)
}

// Recent lists decks by last opened with their session totals.
func (s *PlaybackService) Recent(ctx context.Context, limit int) ([]RecentDeck, error) {
	decks, err := s.Decks.ListRecent(ctx, limit)
	if err != nil {
		return nil, err
	}
	out := make([]RecentDeck, 0, len(decks))
	for _, d := range decks {
		sessions, err := s.Sessions.ListForDeck(ctx, d.ID)
		if err != nil {
			return nil, fmt.Errorf("sessions for %s: %w", d.Path, err)
		}
		r := RecentDeck{Deck: d, Plays: len(sessions)}
		for _, ss := range sessions {
			r.Views += ss.SlidesViewed
		}
		out = append(out, r)
	}
	return out, nil
}

// Forget drops the history of the deck at path.
func (s *PlaybackService) Forget(ctx context.Context, path string) error {
	abs, err := filepath.Abs(path)
	if err != nil {
		return err
	}
	return s.Decks.Delete(ctx, deck.DeckID(abs))
}

func (s *PlaybackService) now() time.Time {
	if s.Now != nil {
		return database.Stamp(s.Now())
	}
	return database.Now()
}
