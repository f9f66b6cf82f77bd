package tui

import (
	"context"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/require"

	"github.com/jask/carousel/internal/carousel"
	"github.com/jask/carousel/internal/database"
	"github.com/jask/carousel/internal/database/repository"
	"github.com/jask/carousel/internal/deck"
	"github.com/jask/carousel/internal/schedule"
	"github.com/jask/carousel/internal/service"
)

func testSession(titles ...string) *service.Playback {
	d := &deck.Deck{ID: "test", Title: "Test deck", Path: "/tmp/test"}
	for _, t := range titles {
		d.Slides = append(d.Slides, deck.Slide{Title: t, Kind: deck.KindText, Text: "body of " + t})
	}
	return &service.Playback{Deck: d, SessionID: "s"}
}

func newTestApp(t *testing.T, opts ...carousel.Option) *App {
	t.Helper()
	a := New(context.Background(), nil, testSession("One", "Two", "Three", "Four"), Options{Carousel: opts})
	a.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	return a
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func press(x, y int) tea.MouseMsg {
	return tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft}
}

func release(x, y int) tea.MouseMsg {
	return tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionRelease, Button: tea.MouseButtonLeft}
}

func motion(x, y int) tea.MouseMsg {
	return tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionMotion, Button: tea.MouseButtonNone}
}

func controlFor(t *testing.T, a *App, class string) control {
	t.Helper()
	for _, c := range a.layout().controls {
		if c.el.HasClass(class) {
			return c
		}
	}
	t.Fatalf("no control with class %s", class)
	return control{}
}

func TestMountShowsFirstSlideAndArmsAutoplay(t *testing.T) {
	a := New(context.Background(), nil, testSession("One", "Two"), Options{})
	require.Equal(t, 0, a.car.Current())
	require.True(t, a.car.Playing())
	require.Equal(t, 1, a.sched.Live())
	require.NotNil(t, a.Init())
	require.Nil(t, a.Init(), "ticks are flushed once")
	require.Equal(t, "One", a.currentSlide().Title)
}

func TestResumeShowsStoredSlide(t *testing.T) {
	s := testSession("One", "Two", "Three")
	s.Resume = 2
	a := New(context.Background(), nil, s, Options{})
	require.Equal(t, 2, a.car.Current())
	require.False(t, a.changed)
}

func TestArrowKeysClickControls(t *testing.T) {
	a := newTestApp(t)
	a.Update(runes("l"))
	require.Equal(t, 1, a.car.Current())
	a.Update(runes("h"))
	a.Update(runes("h"))
	require.Equal(t, 3, a.car.Current())
}

func TestArrowKeysAbsentWithoutArrows(t *testing.T) {
	a := newTestApp(t, carousel.WithArrows(false))
	a.Update(runes("l"))
	require.Equal(t, 0, a.car.Current())
}

func TestSpaceTogglesAutoplay(t *testing.T) {
	a := newTestApp(t)
	a.Update(tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})
	require.False(t, a.car.Playing())
	a.Update(tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})
	require.True(t, a.car.Playing())
	require.Equal(t, 1, a.sched.Live())
}

func TestDocumentKeysOnlyInFullScreen(t *testing.T) {
	a := newTestApp(t)
	a.Update(tea.KeyMsg{Type: tea.KeyRight})
	require.Equal(t, 0, a.car.Current())

	a.Update(runes("f"))
	require.True(t, a.car.FullScreen())
	require.False(t, a.car.Playing())

	a.Update(tea.KeyMsg{Type: tea.KeyRight})
	require.Equal(t, 1, a.car.Current())
	a.Update(tea.KeyMsg{Type: tea.KeyLeft})
	a.Update(tea.KeyMsg{Type: tea.KeyLeft})
	require.Equal(t, 3, a.car.Current())

	a.Update(tea.KeyMsg{Type: tea.KeyEsc})
	require.False(t, a.car.FullScreen())
	require.True(t, a.car.Playing())
}

func TestTickAdvancesSlide(t *testing.T) {
	a := newTestApp(t)
	// The autoplay timer is the first one armed.
	a.Update(schedule.TickMsg{ID: 1})
	require.Equal(t, 1, a.car.Current())
	require.False(t, a.changed, "position change is flushed into a command")

	a.Update(runes("f"))
	a.Update(schedule.TickMsg{ID: 1})
	require.Equal(t, 1, a.car.Current(), "stale tick after stop is dropped")
}

func TestClickOnControls(t *testing.T) {
	a := newTestApp(t)
	l := a.layout()

	next := controlFor(t, a, carousel.ClassNext)
	a.Update(press(next.col+1, l.row))
	a.Update(release(next.col+1, l.row))
	require.Equal(t, 1, a.car.Current())

	var third control
	for _, c := range a.layout().controls {
		if c.el.HasClass(carousel.ClassNavLink) && c.el == a.car.Root().Query(carousel.ClassNav).Children()[2] {
			third = c
		}
	}
	require.NotNil(t, third.el)
	a.Update(press(third.col, l.row))
	a.Update(release(third.col, l.row))
	require.Equal(t, 2, a.car.Current())

	fs := controlFor(t, a, carousel.ClassFullScreenBtn)
	a.Update(press(fs.col, l.row))
	a.Update(release(fs.col, l.row))
	require.True(t, a.car.FullScreen())
}

func TestDragSwipes(t *testing.T) {
	a := newTestApp(t)
	y := a.layout().slide.y + 2

	a.Update(press(10, y))
	a.Update(release(40, y))
	require.Equal(t, 1, a.car.Current())

	a.Update(press(40, y))
	a.Update(release(10, y))
	a.Update(press(40, y))
	a.Update(release(10, y))
	require.Equal(t, 3, a.car.Current())

	// A tap on the slide changes nothing.
	a.Update(press(20, y))
	a.Update(release(20, y))
	require.Equal(t, 3, a.car.Current())
}

func TestPointerShowsAndHidesControls(t *testing.T) {
	a := newTestApp(t)
	require.True(t, a.car.ControlsHidden())

	y := a.layout().slide.y + 1
	a.Update(motion(10, y))
	require.False(t, a.car.ControlsHidden())
	require.Equal(t, 2, a.sched.Live())

	a.Update(motion(10, 0))
	require.True(t, a.car.ControlsHidden())
	require.Equal(t, 1, a.sched.Live())

	a.Update(motion(10, y))
	require.False(t, a.car.ControlsHidden())
	a.Update(tea.BlurMsg{})
	require.True(t, a.car.ControlsHidden())
}

func TestHoverShowsControlTitle(t *testing.T) {
	a := newTestApp(t)
	l := a.layout()
	prev := controlFor(t, a, carousel.ClassPrevious)
	a.Update(motion(prev.col, l.row))
	require.Contains(t, ansi.Strip(a.View()), "Previous Image")
}

func TestFinderJumpsToTitle(t *testing.T) {
	a := newTestApp(t)
	a.Update(runes("/"))
	require.NotNil(t, a.finder)

	for _, r := range "thre" {
		a.Update(runes(string(r)))
	}
	require.Contains(t, ansi.Strip(a.View()), "Three")
	a.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.Nil(t, a.finder)
	require.Equal(t, 2, a.car.Current())
}

func TestFinderTypingDoesNotQuit(t *testing.T) {
	a := newTestApp(t)
	a.Update(runes("/"))
	a.Update(runes("q"))
	require.NotNil(t, a.finder)
	require.Equal(t, "q", a.finder.input.Value())
	require.NotNil(t, a.car.Root().Parent())
	a.Update(tea.KeyMsg{Type: tea.KeyEsc})
	require.Nil(t, a.finder)
	require.Equal(t, 0, a.car.Current())
}

func TestQuitClosesCarousel(t *testing.T) {
	a := newTestApp(t)
	_, cmd := a.Update(runes("q"))
	require.NotNil(t, cmd)
	_, isQuit := cmd().(tea.QuitMsg)
	require.True(t, isQuit)
	require.Nil(t, a.car.Root().Parent())
	require.Zero(t, a.sched.Live())
}

func TestViewFillsTerminal(t *testing.T) {
	a := newTestApp(t)
	check := func() {
		out := a.View()
		require.Equal(t, 24, lipgloss.Height(out))
		for _, line := range strings.Split(out, "\n") {
			require.LessOrEqual(t, ansi.StringWidth(line), 80)
		}
	}
	check()
	require.Contains(t, ansi.Strip(a.View()), "body of One")

	a.Update(motion(10, 5))
	check()
	require.Contains(t, ansi.Strip(a.View()), "●")

	a.Update(runes("f"))
	check()
	require.NotContains(t, ansi.Strip(a.View()), appName)
}

func newStoreApp(t *testing.T, titles ...string) (*App, *service.PlaybackService) {
	t.Helper()
	ctx := context.Background()
	dbPath := filepath.Join(t.TempDir(), "test.db")
	require.NoError(t, database.RunMigrations(dbPath))
	db, err := database.Open(dbPath)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	svc := &service.PlaybackService{Decks: repository.NewDeckRepo(db), Sessions: repository.NewSessionRepo(db)}
	s := testSession(titles...)
	require.NoError(t, svc.Decks.Upsert(ctx, repository.Deck{ID: s.Deck.ID, Path: s.Deck.Path, Title: s.Deck.Title, SlideCount: len(titles)}))
	require.NoError(t, svc.Sessions.Start(ctx, repository.Session{ID: s.SessionID, DeckID: s.Deck.ID}))

	a := New(ctx, svc, s, Options{Carousel: []carousel.Option{carousel.WithAutoplay(false), carousel.WithIdleness(0)}})
	return a, svc
}

func storedSlide(t *testing.T, a *App, svc *service.PlaybackService) int {
	t.Helper()
	got, err := svc.Decks.Get(context.Background(), a.session.Deck.ID)
	require.NoError(t, err)
	return got.LastSlide
}

func TestSavePosition(t *testing.T) {
	a, svc := newStoreApp(t, "One", "Two", "Three")
	msg := a.saveCmd(2)()
	require.NoError(t, msg.(savedMsg).err)
	require.Equal(t, 2, storedSlide(t, a, svc))
}

func TestSavesAppliedOutOfOrderKeepLastSlide(t *testing.T) {
	a, svc := newStoreApp(t, "One", "Two", "Three", "Four", "Five", "Six")

	var saves []tea.Cmd
	for i := 0; i < 5; i++ {
		a.car.NextSlide(true)
		saves = append(saves, a.saveCmd(a.lastShown))
	}
	require.Equal(t, 5, a.car.Current())

	for i := len(saves) - 1; i >= 0; i-- {
		require.NoError(t, saves[i]().(savedMsg).err)
	}
	require.Equal(t, a.car.Current(), storedSlide(t, a, svc))

	sessions, err := svc.Sessions.ListForDeck(context.Background(), a.session.Deck.ID)
	require.NoError(t, err)
	require.Equal(t, 5, sessions[0].SlidesViewed)
}

func TestConcurrentSavesKeepLastSlide(t *testing.T) {
	a, svc := newStoreApp(t, "One", "Two", "Three", "Four", "Five", "Six")

	for round := 0; round < 10; round++ {
		var saves []tea.Cmd
		for i := 0; i < 5; i++ {
			a.car.NextSlide(true)
			saves = append(saves, a.saveCmd(a.lastShown))
		}
		var wg sync.WaitGroup
		for _, save := range saves {
			wg.Add(1)
			go func(save tea.Cmd) {
				defer wg.Done()
				_ = save()
			}(save)
		}
		wg.Wait()
		require.Equal(t, a.car.Current(), storedSlide(t, a, svc), "round %d", round)
	}
}

func TestCloseWritesFinalPosition(t *testing.T) {
	a, svc := newStoreApp(t, "One", "Two", "Three")
	stale := a.saveCmd(1)
	a.car.ShowSlide(2)

	a.Update(runes("q"))
	require.Equal(t, 2, storedSlide(t, a, svc))

	require.NoError(t, stale().(savedMsg).err)
	require.Equal(t, 2, storedSlide(t, a, svc))
}

func TestKeyRegistryScopes(t *testing.T) {
	r := NewKeyRegistry()
	require.Equal(t, actionQuit, r.Lookup("q", scopeDeck).Action)
	require.Nil(t, r.Lookup("q", scopeFinder))
	require.Equal(t, actionQuit, r.Lookup("ctrl+c", scopeFinder).Action)
	require.Equal(t, actionAutoplay, r.Lookup(" ", scopeDeck).Action)
	require.Equal(t, actionEscape, r.Lookup("Escape", scopeDeck).Action)
	require.NotEmpty(t, r.HelpBindings(scopeDeck))
}
