package student

// ══════════════════════════════════════════════════════════════════════════════
// REPOSITORY INTERFACES
// These interfaces define the contract for student storage.
// Implementations live in infrastructure/persistence.
// ══════════════════════════════════════════════════════════════════════════════

// Registry holds students as an ordered list. Names are not unique.
type Registry interface {
	// Add appends s. There is no uniqueness check.
	Add(s *Student)

	// FindByName returns the first student whose name matches,
	// ignoring case. The bool is false when none matches.
	FindByName(name string) (*Student, bool)

	// GetByID returns the student with the given ID.
	GetByID(id string) (*Student, bool)

	// List returns all students in insertion order.
	List() []*Student

	// Count returns the number of students.
	Count() int
}
