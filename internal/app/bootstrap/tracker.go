package bootstrap

import "sync/atomic"

// Tracker states as reported on /health.
const (
	StateDisabled = "disabled"
	StateRunning  = "running"
	StateDone     = "ok"
	StateFailed   = "degraded"
)

var trackerStates = [...]string{StateDisabled, StateRunning, StateDone, StateFailed}

// Tracker records the progress of a background bootstrap run. The zero
// value reports StateDisabled and is safe for concurrent use.
type Tracker struct {
	state atomic.Int32
}

// Start marks the run as in progress.
func (t *Tracker) Start() { t.state.Store(1) }

// Finish marks the run as done, or failed when ok is false.
func (t *Tracker) Finish(ok bool) {
	if ok {
		t.state.Store(2)
		return
	}
	t.state.Store(3)
}

// State returns the current state name.
func (t *Tracker) State() string {
	return trackerStates[t.state.Load()]
}
