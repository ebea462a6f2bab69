// Package shell owns the load lifecycle of one leaderboard view: it starts
// in Loading, performs a single fetch and settles in Loaded or Failed.
// There is no retry transition; reloading means a new Shell.
package shell

import (
	"context"
	"log/slog"
	"strings"
	"sync"

	"bullsharks/internal/activity"
	"bullsharks/internal/logging"
)

// DefaultMessage is shown when a failure carries no text of its own.
const DefaultMessage = "Failed to load activities"

// Fetcher supplies the activity records. *source.Client satisfies it.
type Fetcher interface {
	FetchActivities(ctx context.Context) ([]activity.Activity, error)
}

// FetcherFunc adapts a function to Fetcher.
type FetcherFunc func(ctx context.Context) ([]activity.Activity, error)

func (f FetcherFunc) FetchActivities(ctx context.Context) ([]activity.Activity, error) {
	return f(ctx)
}

// Option configures a Shell.
type Option func(*Shell)

// WithLogger sets the logger used for failure diagnostics.
func WithLogger(l *slog.Logger) Option {
	return func(s *Shell) { s.logger = l }
}

type subscriber struct {
	id int
	fn func(State)
}

// Shell is safe for concurrent use. Observers run synchronously on the
// goroutine that performs the transition, so each transition is seen
// exactly once by each observer.
type Shell struct {
	fetcher Fetcher
	logger  *slog.Logger

	mu      sync.Mutex
	state   State
	started bool
	closed  bool
	nextID  int
	subs    []subscriber
}

// New returns a shell in the Loading state.
func New(f Fetcher, opts ...Option) *Shell {
	s := &Shell{fetcher: f, state: Loading{}, logger: logging.Discard()}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// State returns the current state.
func (s *Shell) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Subscribe registers fn for every later transition and returns a function
// that removes it.
func (s *Shell) Subscribe(fn func(State)) (unsubscribe func()) {
	s.mu.Lock()
	id := s.nextID
	s.nextID++
	s.subs = append(s.subs, subscriber{id: id, fn: fn})
	s.mu.Unlock()

	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		for i, sub := range s.subs {
			if sub.id == id {
				s.subs = append(s.subs[:i:i], s.subs[i+1:]...)
				return
			}
		}
	}
}

// Start performs the one fetch and returns the state it settled in. Only
// the first call fetches; later calls return the current state. If the
// shell is closed before the fetch resolves, the result is dropped and Start
// returns the state at the time of closing.
func (s *Shell) Start(ctx context.Context) State {
	s.mu.Lock()
	if s.started || s.closed {
		st := s.state
		s.mu.Unlock()
		return st
	}
	s.started = true
	s.mu.Unlock()

	records, err := s.fetcher.FetchActivities(ctx)

	var next State
	if err != nil {
		s.logger.WarnContext(ctx, "load activities failed", "error", err)
		next = Failed{Message: Message(err)}
	} else {
		next = Loaded{Activities: records}
	}
	return s.transition(next)
}

func (s *Shell) transition(next State) State {
	s.mu.Lock()
	if s.closed {
		st := s.state
		s.mu.Unlock()
		return st
	}
	s.state = next
	subs := make([]subscriber, len(s.subs))
	copy(subs, s.subs)
	s.mu.Unlock()

	for _, sub := range subs {
		sub.fn(next)
	}
	return next
}

// Close tears the shell down. Observers are dropped and a fetch still in
// flight will not cause a transition.
func (s *Shell) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
	s.subs = nil
}

// Closed reports whether Close has been called.
func (s *Shell) Closed() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.closed
}

// Message turns a fetch error into the text shown to the user.
func Message(err error) string {
	if err == nil {
		return DefaultMessage
	}
	msg := strings.TrimSpace(err.Error())
	if msg == "" {
		return DefaultMessage
	}
	return msg
}
