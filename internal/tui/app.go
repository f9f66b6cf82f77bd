// Package tui hosts a carousel in a bubbletea program. Terminal keys, mouse
// and focus events are translated into surface events on the carousel's
// element tree, timers run as tick messages, and the tree is rendered back
// into the terminal every frame.
package tui

import (
	"context"
	"fmt"
	"log"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/carousel/internal/carousel"
	"github.com/jask/carousel/internal/render"
	"github.com/jask/carousel/internal/schedule"
	"github.com/jask/carousel/internal/service"
	"github.com/jask/carousel/internal/surface"
)

const appName = "carousel"

// Options configure the host.
type Options struct {
	Accent   string
	Carousel []carousel.Option
}

type App struct {
	ctx      context.Context
	playback *service.PlaybackService
	session  *service.Playback

	sched *schedule.Tea
	doc   *surface.Element
	car   *carousel.Carousel
	cache *render.Cache

	keys     *KeyRegistry
	help     help.Model
	theme    theme
	finder   *finder
	showHelp bool

	width, height int
	status        string
	statusErr     bool

	// pointer state
	inside    bool
	hover     *surface.Element
	press     *pressState

	// position persistence; saveSeq orders the saves
	changed   bool
	lastShown int
	saveSeq   uint64
}

type pressState struct {
	x, y   int
	target *surface.Element
}

type savedMsg struct{ err error }

// New mounts the deck of session into a fresh document. playback may be nil,
// in which case positions are not persisted.
func New(ctx context.Context, playback *service.PlaybackService, session *service.Playback, opts Options) *App {
	a := &App{
		ctx:      ctx,
		playback: playback,
		session:  session,
		sched:    schedule.NewTea(),
		doc:      surface.NewDocument(),
		cache:    render.NewCache(),
		keys:     NewKeyRegistry(),
		theme:    newTheme(opts.Accent),
	}
	a.help = a.theme.helpModel()

	container := surface.NewElement("main")
	container.Append(session.Deck.Panels()...)
	a.doc.Append(container)

	a.car = carousel.New(container.Children(), a.sched, opts.Carousel...)
	a.car.Draw(container)
	if session.Resume > 0 {
		a.car.ShowSlide(session.Resume)
	}
	a.lastShown = a.car.Current()
	a.car.OnChange(func(i int) {
		a.changed = true
		a.lastShown = i
	})
	return a
}

func (a *App) Init() tea.Cmd {
	return a.sched.Flush()
}

// Close tears the widget down and writes the final position synchronously.
// Pending ticks are dropped when they arrive.
func (a *App) Close() {
	a.car.Close()
	if a.playback == nil {
		return
	}
	a.saveSeq++
	if err := a.playback.Save(a.ctx, a.session, a.saveSeq, a.lastShown); err != nil {
		log.Printf("save position: %v", err)
	}
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch m := msg.(type) {
	case schedule.TickMsg:
		a.sched.Handle(m)
	case tea.WindowSizeMsg:
		a.width = m.Width
		a.height = m.Height
		a.help.Width = m.Width
		a.cache.Reset()
	case tea.KeyMsg:
		var quit bool
		cmd, quit = a.handleKey(m)
		if quit {
			a.Close()
			return a, tea.Quit
		}
	case tea.MouseMsg:
		a.handleMouse(m)
	case tea.BlurMsg:
		a.pointerLeft()
	case savedMsg:
		if m.err != nil {
			log.Printf("save position: %v", m.err)
			a.setError(fmt.Sprintf("Save failed: %v", m.err))
		}
	}
	return a, a.finish(cmd)
}

// finish batches cmd with the ticks armed during this update and a save of
// the slide position when it moved.
func (a *App) finish(cmd tea.Cmd) tea.Cmd {
	cmds := []tea.Cmd{cmd, a.sched.Flush()}
	if a.changed {
		a.changed = false
		cmds = append(cmds, a.saveCmd(a.lastShown))
	}
	return tea.Batch(cmds...)
}

func (a *App) saveCmd(index int) tea.Cmd {
	if a.playback == nil {
		return nil
	}
	a.saveSeq++
	svc, session, ctx, seq := a.playback, a.session, a.ctx, a.saveSeq
	return func() tea.Msg {
		return savedMsg{err: svc.Record(ctx, session, seq, index)}
	}
}

func (a *App) setError(msg string) {
	a.status = msg
	a.statusErr = true
}

func (a *App) setStatus(msg string) {
	a.status = msg
	a.statusErr = false
}
