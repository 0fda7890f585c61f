package tuition

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tuitiondesk/tuition-desk/internal/domain/lesson"
	"github.com/tuitiondesk/tuition-desk/internal/domain/shared"
	"github.com/tuitiondesk/tuition-desk/internal/domain/student"
	"github.com/tuitiondesk/tuition-desk/internal/domain/subject"
	"github.com/tuitiondesk/tuition-desk/internal/domain/tutor"
	"github.com/tuitiondesk/tuition-desk/internal/infrastructure/messaging"
	"github.com/tuitiondesk/tuition-desk/internal/infrastructure/persistence/memory"
	"github.com/tuitiondesk/tuition-desk/pkg/logger"
	"github.com/tuitiondesk/tuition-desk/pkg/timeutil"
)

type recorder struct {
	events []shared.Event
}

func (r *recorder) Publish(e shared.Event) error {
	r.events = append(r.events, e)
	return nil
}

func (r *recorder) types() []shared.EventType {
	out := make([]shared.EventType, len(r.events))
	for i, e := range r.events {
		out[i] = e.EventType()
	}
	return out
}

func newSystem(t *testing.T) (*System, *recorder) {
	t.Helper()
	rec := &recorder{}
	return New(Dependencies{
		Tutors:   memory.NewTutorRegistry(),
		Students: memory.NewStudentRegistry(),
		Events:   rec,
		Logger:   logger.Discard(),
	}), rec
}

func TestSystem_AmyAndBob(t *testing.T) {
	sys, _ := newSystem(t)
	amy := tutor.New("Amy", []subject.Subject{subject.Math})
	bob := student.New(student.NewParams{Name: "Bob"})
	sys.AddTutor(amy)
	sys.AddStudent(bob)
	date := timeutil.Date(2024, 3, 1)

	first := sys.BookLesson(bob, subject.Math, amy, date, 17)
	sys.ReviewLesson(bob, subject.Math, first, "Great", 5)

	summary := sys.LessonSummary(bob)
	assert.Equal(t, "Bob", summary.StudentName)
	assert.Equal(t, []SubjectSummary{
		{Subject: subject.Math, Booked: 1, Attended: 1, Canceled: 0},
	}, summary.Subjects)

	reviews := sys.TutorReviews(amy)
	require.Len(t, reviews, 1)
	assert.Equal(t, "Bob", reviews[0].StudentName)
	assert.Equal(t, "Great", reviews[0].Review)
	assert.Equal(t, 5, reviews[0].Rating)
	assert.Equal(t, first.ID(), reviews[0].LessonID)

	t.Run("second unrated lesson counts as canceled", func(t *testing.T) {
		sys.BookLesson(bob, subject.Math, amy, date, 18)

		summary := sys.LessonSummary(bob)
		assert.Equal(t, []SubjectSummary{
			{Subject: subject.Math, Booked: 2, Attended: 1, Canceled: 1},
		}, summary.Subjects)
		assert.Len(t, sys.TutorReviews(amy), 1)
	})
}

func TestSystem_GetTutor_NotFound(t *testing.T) {
	sys, _ := newSystem(t)
	sys.AddTutor(tutor.New("Amy", nil))

	got, ok := sys.GetTutor("Zed")
	assert.False(t, ok)
	assert.Nil(t, got)

	_, ok = sys.GetTutor("amy")
	assert.False(t, ok, "tutor lookup is case-sensitive")
}

func TestSystem_AddTutor_LastWriteWins(t *testing.T) {
	sys, rec := newSystem(t)
	first := tutor.New("Amy", []subject.Subject{subject.Math})
	second := tutor.New("Amy", []subject.Subject{subject.EnglishWriting})

	sys.AddTutor(first)
	sys.AddTutor(second)

	got, ok := sys.GetTutor("Amy")
	require.True(t, ok)
	assert.Same(t, second, got)
	assert.Len(t, sys.Tutors(), 1)
	assert.Equal(t, []shared.EventType{shared.EventTutorRegistered, shared.EventTutorReplaced}, rec.types())

	replacedEvent, ok := rec.events[1].(shared.TutorRegisteredEvent)
	require.True(t, ok)
	assert.Equal(t, []string{"ENGLISH_WRITING"}, replacedEvent.Specialties)
	assert.True(t, replacedEvent.Replaced)
}

func TestSystem_AddTutor_PublishesSpecialtiesInCatalogOrder(t *testing.T) {
	sys, rec := newSystem(t)
	sys.AddTutor(tutor.New("Amy", []subject.Subject{subject.VerbalReasoning, subject.Math}))

	require.Len(t, rec.events, 1)
	assert.Equal(t, []string{"MATH", "VERBAL_REASONING"}, rec.events[0].Payload()["specialties"])
}

func TestSystem_FindStudent(t *testing.T) {
	sys, _ := newSystem(t)
	bob := student.New(student.NewParams{Name: "Bob"})
	otherBob := student.New(student.NewParams{Name: "Bob"})
	sys.AddStudent(bob)
	sys.AddStudent(otherBob)

	got, ok := sys.FindStudent("bOB")
	require.True(t, ok)
	assert.Same(t, bob, got)

	_, ok = sys.FindStudent("Eve")
	assert.False(t, ok)
	assert.Len(t, sys.Students(), 2)
}

func TestSystem_BookLesson_OrderAndCount(t *testing.T) {
	sys, _ := newSystem(t)
	amy := tutor.New("Amy", []subject.Subject{subject.Math})
	bob := student.New(student.NewParams{Name: "Bob"})
	sys.AddStudent(bob)

	var booked []*lesson.Lesson
	for h := 8; h < 20; h++ {
		booked = append(booked, sys.BookLesson(bob, subject.Math, amy, timeutil.Date(2024, 1, 1), h))
	}

	got := bob.Lessons(subject.Math)
	require.Len(t, got, len(booked))
	for i := range booked {
		assert.Same(t, booked[i], got[i])
		assert.Equal(t, 8+i, got[i].Hour())
	}
}

func TestSystem_BookLesson_IsPermissive(t *testing.T) {
	sys, _ := newSystem(t)
	amy := tutor.New("Amy", []subject.Subject{subject.Math})
	amy.SetAvailability(9, false)
	stranger := student.New(student.NewParams{Name: "Stranger"})

	// Unregistered student and tutor, wrong specialty, unavailable hour.
	l := sys.BookLesson(stranger, subject.VerbalReasoning, amy, timeutil.Date(2024, 1, 1), 9)

	assert.Equal(t, []*lesson.Lesson{l}, stranger.Lessons(subject.VerbalReasoning))
	assert.Empty(t, sys.Students())
}

func TestSystem_CancelLesson(t *testing.T) {
	sys, rec := newSystem(t)
	amy := tutor.New("Amy", nil)
	bob := student.New(student.NewParams{Name: "Bob"})
	sys.AddStudent(bob)

	rated := sys.BookLesson(bob, subject.Math, amy, timeutil.Date(2024, 1, 1), 9)
	sys.ReviewLesson(bob, subject.Math, rated, "ok", 3)
	unrated := sys.BookLesson(bob, subject.Math, amy, timeutil.Date(2024, 1, 2), 9)

	before := sys.LessonSummary(bob).Subjects[0]
	assert.Equal(t, SubjectSummary{Subject: subject.Math, Booked: 2, Attended: 1, Canceled: 1}, before)

	sys.CancelLesson(bob, subject.Math, unrated)
	after := sys.LessonSummary(bob).Subjects[0]
	assert.Equal(t, SubjectSummary{Subject: subject.Math, Booked: 1, Attended: 1, Canceled: 0}, after)

	sys.CancelLesson(bob, subject.Math, rated)
	after = sys.LessonSummary(bob).Subjects[0]
	assert.Equal(t, SubjectSummary{Subject: subject.Math}, after)

	t.Run("absent lesson is a no-op", func(t *testing.T) {
		n := len(rec.events)
		sys.CancelLesson(bob, subject.Math, rated)
		sys.CancelLesson(bob, subject.EnglishWriting, rated)
		assert.Len(t, rec.events, n, "no event for a no-op cancel")
		assert.False(t, bob.HasSubject(subject.EnglishWriting))
	})
}

func TestSystem_PublishesLessonEvents(t *testing.T) {
	sys, rec := newSystem(t)
	amy := tutor.New("Amy", nil)
	bob := student.New(student.NewParams{Name: "Bob"})
	sys.AddTutor(amy)
	sys.AddStudent(bob)

	l := sys.BookLesson(bob, subject.Math, amy, timeutil.Date(2024, 1, 1), 17)
	sys.ReviewLesson(bob, subject.Math, l, "Great", 5)
	sys.CancelLesson(bob, subject.Math, l)

	assert.Equal(t, []shared.EventType{
		shared.EventTutorRegistered,
		shared.EventStudentEnrolled,
		shared.EventLessonBooked,
		shared.EventLessonReviewed,
		shared.EventLessonCanceled,
	}, rec.types())

	booked, ok := rec.events[2].(shared.LessonEvent)
	require.True(t, ok)
	assert.Equal(t, bob.ID, booked.AggregateID())
	assert.Equal(t, l.ID(), booked.LessonID)
	assert.Equal(t, "Amy", booked.Tutor)
	assert.Equal(t, "MATH", booked.Subject)

	reviewed := rec.events[3].(shared.LessonEvent)
	assert.Equal(t, 5, reviewed.Payload()["rating"])
}

func TestSystem_WithEventBus(t *testing.T) {
	bus := messaging.NewInMemoryEventBus(messaging.InMemoryEventBusConfig{Logger: logger.Discard(), EnableMetrics: true})
	sys := New(Dependencies{
		Tutors:   memory.NewTutorRegistry(),
		Students: memory.NewStudentRegistry(),
		Events:   bus,
		Logger:   logger.Discard(),
	})

	var booked int
	require.NoError(t, bus.Subscribe(shared.EventLessonBooked, func(shared.Event) error {
		booked++
		return nil
	}))

	bob := student.New(student.NewParams{Name: "Bob"})
	sys.AddStudent(bob)
	sys.BookLesson(bob, subject.Math, tutor.New("Amy", nil), timeutil.Date(2024, 1, 1), 9)
	sys.BookLesson(bob, subject.Math, tutor.New("Amy", nil), timeutil.Date(2024, 1, 1), 10)

	assert.Equal(t, 2, booked)
	assert.Equal(t, int64(3), bus.Metrics().Snapshot().TotalPublished)
}

func TestNew_NilEventsAndLogger(t *testing.T) {
	sys := New(Dependencies{
		Tutors:   memory.NewTutorRegistry(),
		Students: memory.NewStudentRegistry(),
	})
	bob := student.New(student.NewParams{Name: "Bob"})

	assert.NotPanics(t, func() {
		sys.AddStudent(bob)
		sys.BookLesson(bob, subject.Math, nil, timeutil.Date(2024, 1, 1), 9)
	})
}
