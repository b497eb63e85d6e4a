package internal

import "time"

// Frame is one scheduling slice granted by the host. The work loop keeps
// processing units until the frame reports no time left.
type Frame interface {
	TimeRemaining() time.Duration
}

// Scheduler is the host's idle-time primitive. RequestIdle runs the given
// callback "soon", either immediately (a run-to-completion host) or once the
// host is otherwise idle. The engine re-requests a slice whenever work is
// left over, so any implementation only needs to deliver one callback per
// request.
type Scheduler interface {
	RequestIdle(fn func(Frame))
}

type syncFrame struct{}

func (syncFrame) TimeRemaining() time.Duration { return time.Hour }

type syncScheduler struct{}

func (syncScheduler) RequestIdle(fn func(Frame)) { fn(syncFrame{}) }

// Synchronous returns a run-to-completion scheduler: the callback runs
// immediately with an effectively unlimited budget. This is the default,
// and what non-browser hosts usually want.
func Synchronous() Scheduler { return syncScheduler{} }
