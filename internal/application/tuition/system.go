// Package tuition contains the tuition desk use cases: the registry of tutors
// and students, lesson booking and cancellation, and the two report queries.
// It owns no I/O; rendering lives in interface/console/presenter.
package tuition

import (
	"log/slog"
	"time"

	"github.com/tuitiondesk/tuition-desk/internal/domain/lesson"
	"github.com/tuitiondesk/tuition-desk/internal/domain/shared"
	"github.com/tuitiondesk/tuition-desk/internal/domain/student"
	"github.com/tuitiondesk/tuition-desk/internal/domain/subject"
	"github.com/tuitiondesk/tuition-desk/internal/domain/tutor"
	"github.com/tuitiondesk/tuition-desk/pkg/logger"
)

// ══════════════════════════════════════════════════════════════════════════════
// SYSTEM
// ══════════════════════════════════════════════════════════════════════════════

// System is the aggregate entry point. All mutation and querying of tutors,
// students and lessons goes through it.
type System struct {
	tutors   tutor.Registry
	students student.Registry
	events   shared.EventPublisher
	logger   *slog.Logger
}

// Dependencies holds what a System is built from.
// Events and Logger are optional.
type Dependencies struct {
	Tutors   tutor.Registry
	Students student.Registry
	Events   shared.EventPublisher
	Logger   *slog.Logger
}

// New creates a System.
func New(deps Dependencies) *System {
	if deps.Logger == nil {
		deps.Logger = slog.Default()
	}
	return &System{
		tutors:   deps.Tutors,
		students: deps.Students,
		events:   deps.Events,
		logger:   deps.Logger.With(logger.Component("tuition")),
	}
}

// ─────────────────────────────────────────────────────────────────────────────
// Registry
// ─────────────────────────────────────────────────────────────────────────────

// AddTutor registers t under its name. A tutor already registered under the
// same name is replaced; the last write wins.
func (s *System) AddTutor(t *tutor.Tutor) {
	replaced := s.tutors.Save(t)
	if replaced {
		s.logger.Warn("tutor replaced", logger.Tutor(t.Name()))
	} else {
		s.logger.Debug("tutor added", logger.Tutor(t.Name()))
	}
	specs := t.Specialties()
	names := make([]string, len(specs))
	for i, sp := range specs {
		names[i] = sp.String()
	}
	s.publish(shared.NewTutorRegisteredEvent(t.Name(), names, replaced))
}

// GetTutor looks a tutor up by exact, case-sensitive name.
// A miss returns nil and false.
func (s *System) GetTutor(name string) (*tutor.Tutor, bool) {
	return s.tutors.Get(name)
}

// Tutors returns all tutors in registration order.
func (s *System) Tutors() []*tutor.Tutor {
	return s.tutors.List()
}

// AddStudent appends st to the student list. Names need not be unique.
func (s *System) AddStudent(st *student.Student) {
	s.students.Add(st)
	s.logger.Debug("student added", logger.Student(st.Name), logger.StudentID(st.ID))
	s.publish(shared.NewStudentEnrolledEvent(st.ID, st.Name))
}

// FindStudent returns the first student whose name matches, ignoring case.
// A miss returns nil and false.
func (s *System) FindStudent(name string) (*student.Student, bool) {
	return s.students.FindByName(name)
}

// Students returns all students in enrolment order.
func (s *System) Students() []*student.Student {
	return s.students.List()
}

// ─────────────────────────────────────────────────────────────────────────────
// Bookings
// ─────────────────────────────────────────────────────────────────────────────

// BookLesson creates a lesson with t at date and hour and books it for st
// under subj. It returns the new lesson so the caller can review or cancel it.
//
// Nothing is checked: neither that st and t are registered here, nor that t
// teaches subj, nor that t is available at hour.
func (s *System) BookLesson(st *student.Student, subj subject.Subject, t *tutor.Tutor, date time.Time, hour int) *lesson.Lesson {
	l := lesson.New(t, date, hour)
	st.BookLesson(subj, l)

	e := lessonEvent(st, subj, l)
	s.logger.Debug("lesson booked",
		logger.Student(st.Name),
		logger.Tutor(e.Tutor),
		logger.Subject(subj.String()),
		logger.Hour(hour),
		logger.LessonID(l.ID()),
	)
	s.publish(shared.NewLessonEvent(shared.EventLessonBooked, st.ID, e))

	return l
}

// CancelLesson removes l from st's bookings under subj.
// Cancelling a lesson that is not booked there is a no-op.
func (s *System) CancelLesson(st *student.Student, subj subject.Subject, l *lesson.Lesson) {
	if !st.CancelLesson(subj, l) {
		s.logger.Debug("cancel ignored, lesson not booked",
			logger.Student(st.Name),
			logger.Subject(subj.String()),
		)
		return
	}

	s.logger.Debug("lesson canceled",
		logger.Student(st.Name),
		logger.Subject(subj.String()),
		logger.LessonID(l.ID()),
	)
	s.publish(shared.NewLessonEvent(shared.EventLessonCanceled, st.ID, lessonEvent(st, subj, l)))
}

// ReviewLesson records review text and a rating on l. A positive rating makes
// the lesson count as attended in reports.
func (s *System) ReviewLesson(st *student.Student, subj subject.Subject, l *lesson.Lesson, review string, rating int) {
	l.SetReview(review)
	l.SetRating(rating)

	e := lessonEvent(st, subj, l)
	e.Rating = rating
	s.publish(shared.NewLessonEvent(shared.EventLessonReviewed, st.ID, e))
}

func lessonEvent(st *student.Student, subj subject.Subject, l *lesson.Lesson) shared.LessonEvent {
	e := shared.LessonEvent{
		LessonID: l.ID(),
		Student:  st.Name,
		Subject:  subj.String(),
		Hour:     l.Hour(),
	}
	if l.Tutor() != nil {
		e.Tutor = l.Tutor().Name()
	}
	return e
}

func (s *System) publish(e shared.Event) {
	if s.events == nil {
		return
	}
	if err := s.events.Publish(e); err != nil {
		s.logger.Error("failed to publish event",
			slog.String("event_type", string(e.EventType())),
			logger.Err(err),
		)
	}
}
