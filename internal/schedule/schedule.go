// Package schedule provides the recurring timers the carousel paces itself
// with. Callbacks always run on the host's event goroutine, never
// concurrently with each other.
package schedule

import "time"

// Scheduler arms recurring callbacks.
type Scheduler interface {
	// Every calls fn every d until the returned Timer is stopped.
	Every(d time.Duration, fn func()) Timer
	Now() time.Time
}

// Timer is a handle to a recurring callback. Stop is idempotent and takes
// effect before the next tick.
type Timer interface {
	Stop()
}
