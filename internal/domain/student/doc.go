// Package student contains the student entity of the tuition desk.
//
// A Student owns its bookings: a mapping from subject.Subject to the ordered
// list of lessons booked for that subject. Two orders are significant and
// preserved:
//
//   - subjects iterate in the order they were first booked;
//   - lessons within a subject iterate in booking order.
//
// Reports depend on both, so output is deterministic.
//
// # Booking and cancelling
//
//	s := student.New(student.NewParams{Name: "Bob"})
//	l := lesson.New(amy, date, 17)
//	s.BookLesson(subject.Math, l)
//	s.CancelLesson(subject.Math, l) // true
//	s.CancelLesson(subject.Math, l) // false, already gone
//
// Cancellation matches by identity. A second lesson with the same tutor, date
// and hour is a different booking and is left alone.
//
// # Registry
//
// Registry is the storage contract. Lookups by name scan the list in order and
// return the first case-insensitive match, so students sharing a name are
// reachable only through GetByID.
package student
