package slot

import (
	"math/rand/v2"
	"sync"
)

// recordingSurface is a Surface that records calls and mirrors the rendered items
type recordingSurface struct {
	mu    sync.Mutex
	calls []string
	items []string

	// hold, when set, keeps Play pending until release is closed
	hold    bool
	release chan struct{}
	playing chan struct{}
}

func newRecordingSurface() *recordingSurface {
	return &recordingSurface{}
}

func (s *recordingSurface) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls = append(s.calls, "clear")
	s.items = nil
}

func (s *recordingSurface) Append(names []string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls = append(s.calls, "append")
	s.items = append(s.items, names...)
}

func (s *recordingSurface) TrimToLast() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls = append(s.calls, "trim")
	if len(s.items) > 1 {
		s.items = s.items[len(s.items)-1:]
	}
}

func (s *recordingSurface) Play() <-chan struct{} {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls = append(s.calls, "play")

	if s.hold {
		if s.playing != nil {
			close(s.playing)
		}
		return s.release
	}
	done := make(chan struct{})
	close(done)
	return done
}

func (s *recordingSurface) Calls() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.calls...)
}

func (s *recordingSurface) Items() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.items...)
}

// holdPlay makes the next Play block until the returned release func is called
// The returned channel closes once Play has been entered
func (s *recordingSurface) holdPlay() (playing <-chan struct{}, release func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.hold = true
	s.release = make(chan struct{})
	s.playing = make(chan struct{})
	return s.playing, func() { close(s.release) }
}

func seededRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed+1))
}

func countOf(names []string, name string) int {
	n := 0
	for _, v := range names {
		if v == name {
			n++
		}
	}
	return n
}
