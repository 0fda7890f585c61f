// Package tutor contains the tutor entity and its registry contract.
package tutor

import (
	"sort"

	"github.com/tuitiondesk/tuition-desk/internal/domain/subject"
)

// Tutor is a person registered to teach lessons. The name is the registry key.
type Tutor struct {
	name        string
	specialties map[subject.Subject]struct{}

	// timetable maps hour of day (24h) to availability. Hours are not range checked.
	timetable map[int]bool
}

// New creates a tutor. The specialties slice is copied into a set, so later
// changes by the caller have no effect and duplicates collapse.
func New(name string, specialties []subject.Subject) *Tutor {
	set := make(map[subject.Subject]struct{}, len(specialties))
	for _, s := range specialties {
		set[s] = struct{}{}
	}
	return &Tutor{
		name:        name,
		specialties: set,
		timetable:   make(map[int]bool),
	}
}

// Name returns the tutor's name.
func (t *Tutor) Name() string {
	return t.name
}

// Specialties returns the tutor's subjects in catalog order.
func (t *Tutor) Specialties() []subject.Subject {
	out := make([]subject.Subject, 0, len(t.specialties))
	for s := range t.specialties {
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Ordinal() < out[j].Ordinal()
	})
	return out
}

// Teaches reports whether s is one of the tutor's specialties.
// Informational only; booking does not consult it.
func (t *Tutor) Teaches(s subject.Subject) bool {
	_, ok := t.specialties[s]
	return ok
}

// SetAvailability inserts or overwrites the flag for hour.
func (t *Tutor) SetAvailability(hour int, available bool) {
	t.timetable[hour] = available
}

// IsAvailable reports the flag recorded for hour; unknown hours are unavailable.
func (t *Tutor) IsAvailable(hour int) bool {
	return t.timetable[hour]
}

// Timetable returns a copy of the hour to availability map.
func (t *Tutor) Timetable() map[int]bool {
	out := make(map[int]bool, len(t.timetable))
	for h, ok := range t.timetable {
		out[h] = ok
	}
	return out
}
