package schedule

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is delivered to the bubbletea program when a Tea timer is due.
// Hosts hand it back to Tea.Handle.
type TickMsg struct {
	ID int
	At time.Time
}

// Tea is a Scheduler backed by tea.Tick. Every tick is a message routed
// through the program's Update, which keeps timer callbacks on the event
// goroutine. A stopped timer's in-flight tick is dropped when it arrives.
type Tea struct {
	seq     int
	timers  map[int]*teaTimer
	pending []tea.Cmd
	now     func() time.Time
}

type teaTimer struct {
	owner  *Tea
	id     int
	period time.Duration
	fn     func()
}

func NewTea() *Tea {
	return &Tea{timers: make(map[int]*teaTimer), now: time.Now}
}

func (s *Tea) Now() time.Time { return s.now() }

func (s *Tea) Every(d time.Duration, fn func()) Timer {
	if d <= 0 {
		d = time.Millisecond
	}
	s.seq++
	t := &teaTimer{owner: s, id: s.seq, period: d, fn: fn}
	s.timers[t.id] = t
	s.pending = append(s.pending, t.tick())
	return t
}

// Handle runs the callback for msg if its timer is still live and re-arms it.
// It reports whether the tick belonged to a live timer.
func (s *Tea) Handle(msg TickMsg) bool {
	t, ok := s.timers[msg.ID]
	if !ok {
		return false
	}
	t.fn()
	if _, still := s.timers[msg.ID]; still {
		s.pending = append(s.pending, t.tick())
	}
	return true
}

// Flush returns the ticks armed since the last call as one command.
func (s *Tea) Flush() tea.Cmd {
	if len(s.pending) == 0 {
		return nil
	}
	cmds := s.pending
	s.pending = nil
	return tea.Batch(cmds...)
}

// Live returns the number of timers that have not been stopped.
func (s *Tea) Live() int {
	return len(s.timers)
}

func (t *teaTimer) tick() tea.Cmd {
	id := t.id
	return tea.Tick(t.period, func(at time.Time) tea.Msg {
		return TickMsg{ID: id, At: at}
	})
}

func (t *teaTimer) Stop() {
	delete(t.owner.timers, t.id)
}
