package slot

import (
	"slices"
	"sync"
)

// NamePool holds the candidate names and the fixed exclusion set
// Readers may call from any goroutine; writes come only from the Controller
type NamePool struct {
	mu       sync.RWMutex
	names    []string
	exclude  []string
	excluded map[string]struct{}
}

// NewNamePool creates a pool owning a copy of names; exclude is fixed for the pool's lifetime
func NewNamePool(names, exclude []string) *NamePool {
	p := &NamePool{
		names:    slices.Clone(names),
		exclude:  slices.Clone(exclude),
		excluded: make(map[string]struct{}, len(exclude)),
	}
	for _, name := range exclude {
		p.excluded[name] = struct{}{}
	}
	return p
}

// SetNames replaces the name list wholesale
func (p *NamePool) SetNames(names []string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.names = slices.Clone(names)
}

// Names returns a copy of the current name list
func (p *NamePool) Names() []string {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return slices.Clone(p.names)
}

// Len returns the number of entries in the name list, duplicates included
func (p *NamePool) Len() int {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return len(p.names)
}

// ExcludeList returns a copy of the exclusion list in configured order
func (p *NamePool) ExcludeList() []string {
	return slices.Clone(p.exclude)
}

// IsExcluded reports whether name can never be declared winner
func (p *NamePool) IsExcluded(name string) bool {
	_, ok := p.excluded[name]
	return ok
}

// RemoveWinner removes the first occurrence of name
// Returns false when name is not in the list, leaving it untouched
func (p *NamePool) RemoveWinner(name string) bool {
	p.mu.Lock()
	defer p.mu.Unlock()

	i := slices.Index(p.names, name)
	if i < 0 {
		return false
	}
	p.names = slices.Delete(p.names, i, i+1)
	return true
}

// Covered reports whether every distinct name in the list is excluded
// An empty list is not covered
func (p *NamePool) Covered() bool {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return covers(p.excluded, p.names)
}

func covers(excluded map[string]struct{}, names []string) bool {
	if len(names) == 0 {
		return false
	}
	for _, name := range names {
		if _, ok := excluded[name]; !ok {
			return false
		}
	}
	return true
}
