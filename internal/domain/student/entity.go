package student

import (
	"time"

	"github.com/google/uuid"

	"github.com/tuitiondesk/tuition-desk/internal/domain/lesson"
	"github.com/tuitiondesk/tuition-desk/internal/domain/subject"
)

// ══════════════════════════════════════════════════════════════════════════════
// MAIN ENTITY: STUDENT
// ══════════════════════════════════════════════════════════════════════════════

// Student is a learner enrolled with the business, together with every lesson
// booked for them, grouped by subject.
type Student struct {
	// ID is generated at creation and distinguishes students that share a name.
	ID string

	// Name is the display name. It is not unique.
	Name string

	// Gender is free text.
	Gender string

	// DateOfBirth is the zero time when unknown.
	DateOfBirth time.Time

	// EmergencyContact is free text, usually a phone number.
	EmergencyContact string

	lessons map[subject.Subject][]*lesson.Lesson

	// order holds subject keys in the order they were first booked.
	order []subject.Subject
}

// NewParams holds the fields needed to create a student.
type NewParams struct {
	Name             string
	Gender           string
	DateOfBirth      time.Time
	EmergencyContact string
}

// New creates a student with no lessons.
func New(params NewParams) *Student {
	return &Student{
		ID:               uuid.NewString(),
		Name:             params.Name,
		Gender:           params.Gender,
		DateOfBirth:      params.DateOfBirth,
		EmergencyContact: params.EmergencyContact,
		lessons:          make(map[subject.Subject][]*lesson.Lesson),
	}
}

// ══════════════════════════════════════════════════════════════════════════════
// BOOKINGS
// ══════════════════════════════════════════════════════════════════════════════

// BookLesson appends l to the list for s, creating the list on first use.
// There is no duplicate or conflict check.
func (st *Student) BookLesson(s subject.Subject, l *lesson.Lesson) {
	if _, ok := st.lessons[s]; !ok {
		st.order = append(st.order, s)
	}
	st.lessons[s] = append(st.lessons[s], l)
}

// CancelLesson removes the first entry under s that is the same lesson as l.
// It is a no-op when s was never booked or l is not in its list, and reports
// whether a lesson was removed. The subject key stays even if its list empties.
func (st *Student) CancelLesson(s subject.Subject, l *lesson.Lesson) bool {
	list, ok := st.lessons[s]
	if !ok {
		return false
	}
	for i, booked := range list {
		if booked == l {
			st.lessons[s] = append(list[:i:i], list[i+1:]...)
			return true
		}
	}
	return false
}

// Subjects returns the booked subjects in first-booking order.
func (st *Student) Subjects() []subject.Subject {
	out := make([]subject.Subject, len(st.order))
	copy(out, st.order)
	return out
}

// Lessons returns a copy of the lessons booked under s, in booking order.
func (st *Student) Lessons(s subject.Subject) []*lesson.Lesson {
	list := st.lessons[s]
	out := make([]*lesson.Lesson, len(list))
	copy(out, list)
	return out
}

// HasSubject reports whether s has ever been booked for this student.
func (st *Student) HasSubject(s subject.Subject) bool {
	_, ok := st.lessons[s]
	return ok
}

// FindLesson looks a lesson up by its ID.
func (st *Student) FindLesson(id string) (subject.Subject, *lesson.Lesson, bool) {
	for _, s := range st.order {
		for _, l := range st.lessons[s] {
			if l.ID() == id {
				return s, l, true
			}
		}
	}
	return "", nil, false
}

// LessonCount returns the number of lessons currently booked across all subjects.
func (st *Student) LessonCount() int {
	n := 0
	for _, list := range st.lessons {
		n += len(list)
	}
	return n
}
