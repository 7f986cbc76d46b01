package capture

import (
	"sync"

	"go.uber.org/zap"
)

// Store is an append-only, process-lifetime collection of captured events.
// Appends are single atomic writes under a mutex; queries copy matching events
// under a read lock, so readers always observe whole events and writers are
// never blocked by an in-flight snapshot for longer than the copy.
type Store struct {
	mu     sync.RWMutex
	events []CapturedEvent
}

type Option func(*options)

type options struct {
	capacity int
}

// WithCapacity pre-sizes the backing slice. Purely a hint; the store still
// grows without bound, eviction is the embedding application's concern.
func WithCapacity(n int) Option {
	return func(o *options) {
		o.capacity = n
	}
}

func NewStore(opts ...Option) *Store {
	opt := &options{}
	for _, o := range opts {
		o(opt)
	}
	s := &Store{}
	if opt.capacity > 0 {
		s.events = make([]CapturedEvent, 0, opt.capacity)
	}
	return s
}

func (s *Store) append(ev CapturedEvent) {
	s.mu.Lock()
	s.events = append(s.events, ev)
	s.mu.Unlock()
}

// Query returns a point-in-time snapshot of the events captured under tok or
// any scope nested inside it, in capture order. Unknown tokens yield an empty
// result, never an error.
func (s *Store) Query(tok Token) Events {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make(Events, 0, 8)
	for i := range s.events {
		if s.events[i].Within(tok) {
			out = append(out, s.events[i])
		}
	}
	return out
}

// All returns a snapshot of every captured event in capture order.
func (s *Store) All() Events {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make(Events, len(s.events))
	copy(out, s.events)
	return out
}

// Untagged returns the events captured while no scope was active.
func (s *Store) Untagged() Events {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make(Events, 0, 8)
	for i := range s.events {
		if !s.events[i].Tagged() {
			out = append(out, s.events[i])
		}
	}
	return out
}

func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.events)
}

// Reset discards every captured event. This is the only way events leave the
// store and it is never called implicitly.
func (s *Store) Reset() {
	s.mu.Lock()
	s.events = nil
	s.mu.Unlock()
}

func (s *Store) reserve(n int) {
	if n <= 0 {
		return
	}
	s.mu.Lock()
	if cap(s.events) < n {
		grown := make([]CapturedEvent, len(s.events), n)
		copy(grown, s.events)
		s.events = grown
	}
	s.mu.Unlock()
}

var (
	installMu sync.Mutex
	installed bool
	restore   func()

	// global outlives install/uninstall cycles: detaching the capture core
	// never discards what was already captured.
	global = NewStore()
)

// Initialize installs a capture core as a consumer of the process-global zap
// logger and returns the global store. Idempotent: while installed, repeat
// calls return the same store and never attach a second consumer, so no event
// is double-counted and nothing previously captured is lost.
func Initialize(opts ...Option) *Store {
	installMu.Lock()
	defer installMu.Unlock()

	if installed {
		return global
	}

	opt := &options{}
	for _, o := range opts {
		o(opt)
	}
	global.reserve(opt.capacity)

	restore = zap.ReplaceGlobals(Attach(zap.L(), global))
	installed = true
	return global
}

// Shutdown detaches the capture core from the global logger, restoring the
// logger that was in place before Initialize. Captured events are retained
// and stay queryable.
func Shutdown() {
	installMu.Lock()
	defer installMu.Unlock()

	if !installed {
		return
	}
	restore()
	restore = nil
	installed = false
}

// Query runs a snapshot query against the global store.
func Query(tok Token) Events {
	return global.Query(tok)
}

// All snapshots the global store.
func All() Events {
	return global.All()
}

// Reset discards the global store's events. Explicit opt-in only.
func Reset() {
	global.Reset()
}
