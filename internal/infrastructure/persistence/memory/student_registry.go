package memory

import (
	"strings"
	"sync"

	"github.com/tuitiondesk/tuition-desk/internal/domain/student"
)

// ══════════════════════════════════════════════════════════════════════════════
// STUDENT REGISTRY
// ══════════════════════════════════════════════════════════════════════════════

// StudentRegistry implements student.Registry with an ordered slice.
type StudentRegistry struct {
	mu       sync.RWMutex
	students []*student.Student
}

// NewStudentRegistry creates an empty StudentRegistry.
func NewStudentRegistry() *StudentRegistry {
	return &StudentRegistry{}
}

// Add appends s without checking for duplicates.
func (r *StudentRegistry) Add(s *student.Student) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.students = append(r.students, s)
}

// FindByName scans in insertion order and returns the first
// case-insensitive match.
func (r *StudentRegistry) FindByName(name string) (*student.Student, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, s := range r.students {
		if strings.EqualFold(s.Name, name) {
			return s, true
		}
	}
	return nil, false
}

// GetByID returns the student with the given ID.
func (r *StudentRegistry) GetByID(id string) (*student.Student, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, s := range r.students {
		if s.ID == id {
			return s, true
		}
	}
	return nil, false
}

// List returns a copy of the student list.
func (r *StudentRegistry) List() []*student.Student {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*student.Student, len(r.students))
	copy(out, r.students)
	return out
}

// Count returns the number of students.
func (r *StudentRegistry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.students)
}
