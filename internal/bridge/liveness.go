package bridge

import (
	"sync"
	"time"
)

type LivenessState string

const (
	// StateUnknown: no exchange attempted yet, or a reconnect attempt from
	// Stale failed.
	StateUnknown LivenessState = "unknown"
	// StateConnected: the most recent command or ping succeeded.
	StateConnected LivenessState = "connected"
	// StateStale: the most recent outcome was a failure.
	StateStale LivenessState = "stale"
)

// Liveness tracks whether the editor answered the last exchange. The state is
// advisory only: every command reconnects from scratch regardless, and the
// state just decides whether a proactive ping is worth issuing before a real
// command.
type Liveness struct {
	mu          sync.Mutex
	state       LivenessState
	lastChange  time.Time
	lastFailure time.Time
	failures    int64
	successes   int64
}

func NewLiveness() *Liveness {
	return &Liveness{state: StateUnknown}
}

func (l *Liveness) RecordSuccess() {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.successes++
	l.transition(StateConnected)
}

func (l *Liveness) RecordFailure() {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.failures++
	l.lastFailure = time.Now()

	switch l.state {
	case StateStale:
		// A failure while already stale means the forced reconnect
		// attempt also failed.
		l.transition(StateUnknown)
	default:
		l.transition(StateStale)
	}
}

func (l *Liveness) transition(next LivenessState) {
	if l.state != next {
		l.state = next
		l.lastChange = time.Now()
	}
}

func (l *Liveness) State() LivenessState {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.state
}

type LivenessStats struct {
	State       LivenessState `json:"state"`
	Successes   int64         `json:"successes"`
	Failures    int64         `json:"failures"`
	LastFailure time.Time     `json:"last_failure,omitempty"`
}

func (l *Liveness) Stats() LivenessStats {
	l.mu.Lock()
	defer l.mu.Unlock()

	return LivenessStats{
		State:       l.state,
		Successes:   l.successes,
		Failures:    l.failures,
		LastFailure: l.lastFailure,
	}
}
