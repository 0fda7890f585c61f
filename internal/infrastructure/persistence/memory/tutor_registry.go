// Package memory implements the process-local registries of the tuition desk.
// State lives only for the lifetime of the process.
package memory

import (
	"sync"

	"github.com/tuitiondesk/tuition-desk/internal/domain/tutor"
)

// ══════════════════════════════════════════════════════════════════════════════
// TUTOR REGISTRY
// ══════════════════════════════════════════════════════════════════════════════

// TutorRegistry implements tutor.Registry with a name-keyed map.
// Saving a name that already exists overwrites the earlier tutor.
type TutorRegistry struct {
	mu     sync.RWMutex
	byName map[string]*tutor.Tutor

	// names keeps first-save order so List is deterministic.
	names []string
}

// NewTutorRegistry creates an empty TutorRegistry.
func NewTutorRegistry() *TutorRegistry {
	return &TutorRegistry{
		byName: make(map[string]*tutor.Tutor),
	}
}

// Save inserts or overwrites the tutor registered under t.Name().
func (r *TutorRegistry) Save(t *tutor.Tutor) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, replaced := r.byName[t.Name()]
	if !replaced {
		r.names = append(r.names, t.Name())
	}
	r.byName[t.Name()] = t
	return replaced
}

// Get returns the tutor registered under exactly name.
func (r *TutorRegistry) Get(name string) (*tutor.Tutor, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	t, ok := r.byName[name]
	return t, ok
}

// List returns tutors in first-save order.
func (r *TutorRegistry) List() []*tutor.Tutor {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*tutor.Tutor, 0, len(r.names))
	for _, n := range r.names {
		out = append(out, r.byName[n])
	}
	return out
}

// Count returns the number of distinct tutor names.
func (r *TutorRegistry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.byName)
}
