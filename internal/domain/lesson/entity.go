// Package lesson contains the lesson booking record.
package lesson

import (
	"time"

	"github.com/google/uuid"

	"github.com/tuitiondesk/tuition-desk/internal/domain/tutor"
)

// Lesson is one booked session with a tutor. The tutor is shared, not owned:
// many lessons may point at the same *tutor.Tutor.
//
// Lessons are compared by identity. Two lessons with identical fields are
// different bookings; ID is the opaque handle that names one of them.
type Lesson struct {
	id     string
	tutor  *tutor.Tutor
	date   time.Time
	hour   int
	review string

	// rating of zero means no rating yet.
	rating int
}

// New creates a lesson with review and rating unset.
// Neither the date nor the hour is validated or checked for conflicts.
func New(t *tutor.Tutor, date time.Time, hour int) *Lesson {
	return &Lesson{
		id:    uuid.NewString(),
		tutor: t,
		date:  date,
		hour:  hour,
	}
}

// ID returns the lesson's opaque handle.
func (l *Lesson) ID() string { return l.id }

// Tutor returns the tutor giving the lesson.
func (l *Lesson) Tutor() *tutor.Tutor { return l.tutor }

// Date returns the lesson date; the zero time means unknown.
func (l *Lesson) Date() time.Time { return l.date }

// Hour returns the lesson hour (24h clock).
func (l *Lesson) Hour() int { return l.hour }

// Review returns the review text, empty when none was given.
func (l *Lesson) Review() string { return l.review }

// Rating returns the rating, zero when none was given.
func (l *Lesson) Rating() int { return l.rating }

// SetReview replaces the review text.
func (l *Lesson) SetReview(review string) {
	l.review = review
}

// SetRating replaces the rating. Values are not range checked.
func (l *Lesson) SetRating(rating int) {
	l.rating = rating
}

// Attended reports whether the lesson counts as attended, i.e. it has a
// positive rating. Every other lesson, unrated ones included, counts as canceled.
func (l *Lesson) Attended() bool {
	return l.rating > 0
}

// GivenBy reports whether t is the very tutor this lesson references.
func (l *Lesson) GivenBy(t *tutor.Tutor) bool {
	return t != nil && l.tutor == t
}
