package orchestrator

import (
	"fmt"
	"sync"
	"time"
)

// State represents the pipeline state machine
type State string

const (
	StateIdle         State = "idle"
	StateFetching     State = "fetching"
	StateCleaning     State = "cleaning"
	StateSynthesizing State = "synthesizing"
	StateDone         State = "done"
	StateFailed       State = "failed"
)

// LogEntry represents a single log line with timestamp
type LogEntry struct {
	Timestamp time.Time `json:"timestamp"`
	Message   string    `json:"message"`
}

// StatusSnapshot is a point-in-time view of the tracker for status reporting.
type StatusSnapshot struct {
	State State      `json:"state"`
	Logs  []LogEntry `json:"logs"`
	Error string     `json:"error,omitempty"`
}

const maxTrackedLogs = 50

// tracker holds orchestrator state with thread-safe access and a small
// log ring buffer for status reporting.
type tracker struct {
	mu      sync.RWMutex
	state   State
	logs    []LogEntry
	lastErr error
}

func newTracker() *tracker {
	return &tracker{state: StateIdle}
}

func (t *tracker) setState(state State) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.state = state
	t.appendLog(fmt.Sprintf("state: %s", state))
}

func (t *tracker) setFailed(err error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.state = StateFailed
	t.lastErr = err
	t.appendLog(fmt.Sprintf("Error: %v", err))
}

func (t *tracker) addLog(message string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.appendLog(message)
}

// appendLog must be called with the lock held.
func (t *tracker) appendLog(message string) {
	t.logs = append(t.logs, LogEntry{Timestamp: time.Now(), Message: message})
	if len(t.logs) > maxTrackedLogs {
		t.logs = t.logs[len(t.logs)-maxTrackedLogs:]
	}
}

func (t *tracker) snapshot() StatusSnapshot {
	t.mu.RLock()
	defer t.mu.RUnlock()

	snap := StatusSnapshot{
		State: t.state,
		Logs:  append([]LogEntry{}, t.logs...),
	}
	if t.lastErr != nil {
		snap.Error = t.lastErr.Error()
	}
	return snap
}
