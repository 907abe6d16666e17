package mockapi

import (
	"math/rand"
	"strings"
	"sync"
	"time"
)

// runnerOS is the only operating system the mock ever reports.
const runnerOS = "linux"

// State is the mutable in-memory state of one service instance: the
// registered runners, the request counter, and the start time. Each Server
// owns its own State so multiple instances can coexist in tests. A single
// mutex guards everything; all operations are short and non-blocking, so
// one coarse lock is enough.
type State struct {
	mu           sync.Mutex
	runners      []Runner
	requestCount int64
	startTime    time.Time
}

// NewState creates an empty State with the start time set to now.
func NewState() *State {
	return &State{startTime: time.Now()}
}

// Register adds a runner and returns the new record. Labels are the
// comma-split input, untrimmed. Duplicate names are allowed, and the
// registry is shared across every org and repo scope; both behaviors are
// deliberate.
func (s *State) Register(name, labelsCSV string) Runner {
	r := Runner{
		ID:        1000 + rand.Intn(9000),
		Name:      name,
		OS:        runnerOS,
		Status:    "online",
		Labels:    strings.Split(labelsCSV, ","),
		Busy:      false,
		CreatedAt: time.Now().UTC().Format(time.RFC3339),
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.runners = append(s.runners, r)
	return r
}

// List returns the number of registered runners and a copy of the sequence
// in registration order.
func (s *State) List() (int, []Runner) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Runner, len(s.runners))
	copy(out, s.runners)
	return len(out), out
}

// RunnerCount returns the number of registered runners.
func (s *State) RunnerCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.runners)
}

// Reset clears the runner list and zeroes the request counter. Safe to
// call on an already-empty state.
func (s *State) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.runners = nil
	s.requestCount = 0
}

// CountRequest increments the request counter and returns the new value.
// Called exactly once per dispatched request, whatever the outcome.
func (s *State) CountRequest() int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.requestCount++
	return s.requestCount
}

// RequestCount returns the current request counter value.
func (s *State) RequestCount() int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.requestCount
}

// Uptime returns the time elapsed since the State was created.
func (s *State) Uptime() time.Duration {
	return time.Since(s.startTime)
}
