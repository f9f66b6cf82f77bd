package repository

import "time"

// Deck represents a deck row.
type Deck struct {
	ID         string
	Path       string
	Title      string
	SlideCount int
	LastSlide  int
	OpenedAt   time.Time
	UpdatedAt  time.Time
}

// Session represents one play of a deck.
type Session struct {
	ID           string
	DeckID       string
	StartedAt    time.Time
	EndedAt      *time.Time
	SlidesViewed int
}
