package tutor

// Registry stores tutors keyed by exact name. Implementations live in
// infrastructure/persistence.
type Registry interface {
	// Save inserts t, overwriting any tutor with the same name.
	// Reports whether an earlier tutor was replaced.
	Save(t *Tutor) (replaced bool)

	// Get returns the tutor with exactly this name (case-sensitive).
	// The bool is false when no tutor matches; this is not an error.
	Get(name string) (*Tutor, bool)

	// List returns all tutors in the order their names were first saved.
	List() []*Tutor

	// Count returns the number of registered tutors.
	Count() int
}
