package student

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tuitiondesk/tuition-desk/internal/domain/lesson"
	"github.com/tuitiondesk/tuition-desk/internal/domain/subject"
	"github.com/tuitiondesk/tuition-desk/internal/domain/tutor"
)

func newBob() *Student {
	return New(NewParams{
		Name:             "Bob",
		Gender:           "male",
		DateOfBirth:      time.Date(2012, 5, 4, 0, 0, 0, 0, time.UTC),
		EmergencyContact: "555-0100",
	})
}

func TestNew(t *testing.T) {
	bob := newBob()
	other := newBob()

	assert.NotEmpty(t, bob.ID)
	assert.NotEqual(t, bob.ID, other.ID)
	assert.Equal(t, "Bob", bob.Name)
	assert.Equal(t, "male", bob.Gender)
	assert.Equal(t, "555-0100", bob.EmergencyContact)
	assert.Empty(t, bob.Subjects())
	assert.False(t, bob.HasSubject(subject.Math))
}

func TestStudent_BookLesson_KeepsOrder(t *testing.T) {
	amy := tutor.New("Amy", nil)
	bob := newBob()

	var booked []*lesson.Lesson
	for h := 9; h < 14; h++ {
		l := lesson.New(amy, time.Time{}, h)
		booked = append(booked, l)
		bob.BookLesson(subject.Math, l)
	}
	bob.BookLesson(subject.EnglishWriting, lesson.New(amy, time.Time{}, 15))
	bob.BookLesson(subject.Math, lesson.New(amy, time.Time{}, 16))

	math := bob.Lessons(subject.Math)
	require.Len(t, math, 6)
	for i, l := range booked {
		assert.Same(t, l, math[i])
	}
	assert.Equal(t, []subject.Subject{subject.Math, subject.EnglishWriting}, bob.Subjects())
	assert.Equal(t, 7, bob.LessonCount())
}

func TestStudent_CancelLesson(t *testing.T) {
	amy := tutor.New("Amy", nil)
	bob := newBob()

	first := lesson.New(amy, time.Time{}, 17)
	twin := lesson.New(amy, time.Time{}, 17)
	bob.BookLesson(subject.Math, first)
	bob.BookLesson(subject.Math, twin)

	t.Run("removes by identity", func(t *testing.T) {
		assert.True(t, bob.CancelLesson(subject.Math, twin))
		remaining := bob.Lessons(subject.Math)
		require.Len(t, remaining, 1)
		assert.Same(t, first, remaining[0])
	})

	t.Run("absent lesson is a no-op", func(t *testing.T) {
		assert.False(t, bob.CancelLesson(subject.Math, twin))
		assert.Len(t, bob.Lessons(subject.Math), 1)
	})

	t.Run("unknown subject is a no-op and creates no key", func(t *testing.T) {
		assert.False(t, bob.CancelLesson(subject.VerbalReasoning, first))
		assert.False(t, bob.HasSubject(subject.VerbalReasoning))
		assert.Equal(t, []subject.Subject{subject.Math}, bob.Subjects())
	})

	t.Run("key survives an emptied list", func(t *testing.T) {
		assert.True(t, bob.CancelLesson(subject.Math, first))
		assert.True(t, bob.HasSubject(subject.Math))
		assert.Empty(t, bob.Lessons(subject.Math))
	})
}

func TestStudent_CancelLesson_DoesNotDisturbCopies(t *testing.T) {
	amy := tutor.New("Amy", nil)
	bob := newBob()
	a := lesson.New(amy, time.Time{}, 9)
	b := lesson.New(amy, time.Time{}, 10)
	bob.BookLesson(subject.Math, a)
	bob.BookLesson(subject.Math, b)

	snapshot := bob.Lessons(subject.Math)
	bob.CancelLesson(subject.Math, a)

	assert.Equal(t, []*lesson.Lesson{a, b}, snapshot)
	assert.Equal(t, []*lesson.Lesson{b}, bob.Lessons(subject.Math))
}

func TestStudent_FindLesson(t *testing.T) {
	amy := tutor.New("Amy", nil)
	bob := newBob()
	l := lesson.New(amy, time.Time{}, 9)
	bob.BookLesson(subject.NumericalReasoning, l)

	s, found, ok := bob.FindLesson(l.ID())
	require.True(t, ok)
	assert.Equal(t, subject.NumericalReasoning, s)
	assert.Same(t, l, found)

	_, _, ok = bob.FindLesson("missing")
	assert.False(t, ok)
}
