package memory

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tuitiondesk/tuition-desk/internal/domain/student"
	"github.com/tuitiondesk/tuition-desk/internal/domain/subject"
	"github.com/tuitiondesk/tuition-desk/internal/domain/tutor"
)

var (
	_ tutor.Registry   = (*TutorRegistry)(nil)
	_ student.Registry = (*StudentRegistry)(nil)
)

func TestTutorRegistry_LastWriteWins(t *testing.T) {
	r := NewTutorRegistry()
	first := tutor.New("Amy", []subject.Subject{subject.Math})
	second := tutor.New("Amy", []subject.Subject{subject.EnglishWriting})
	carl := tutor.New("Carl", nil)

	assert.False(t, r.Save(first))
	assert.False(t, r.Save(carl))
	assert.True(t, r.Save(second))

	got, ok := r.Get("Amy")
	require.True(t, ok)
	assert.Same(t, second, got)
	assert.Equal(t, 2, r.Count())
	assert.Equal(t, []*tutor.Tutor{second, carl}, r.List())
}

func TestTutorRegistry_GetIsCaseSensitive(t *testing.T) {
	r := NewTutorRegistry()
	r.Save(tutor.New("Amy", nil))

	_, ok := r.Get("amy")
	assert.False(t, ok)

	got, ok := r.Get("nobody")
	assert.False(t, ok)
	assert.Nil(t, got)
}

func TestStudentRegistry_FindByName(t *testing.T) {
	r := NewStudentRegistry()
	bob1 := student.New(student.NewParams{Name: "Bob"})
	bob2 := student.New(student.NewParams{Name: "bob"})
	eve := student.New(student.NewParams{Name: "Eve"})
	r.Add(bob1)
	r.Add(bob2)
	r.Add(eve)

	got, ok := r.FindByName("BOB")
	require.True(t, ok)
	assert.Same(t, bob1, got, "first match wins")

	got, ok = r.GetByID(bob2.ID)
	require.True(t, ok)
	assert.Same(t, bob2, got)

	_, ok = r.FindByName("Mallory")
	assert.False(t, ok)
	_, ok = r.GetByID("missing")
	assert.False(t, ok)

	assert.Equal(t, 3, r.Count())
	assert.Equal(t, []*student.Student{bob1, bob2, eve}, r.List())
}

func TestStudentRegistry_ListIsACopy(t *testing.T) {
	r := NewStudentRegistry()
	r.Add(student.New(student.NewParams{Name: "Bob"}))

	list := r.List()
	list[0] = nil

	got, ok := r.FindByName("Bob")
	require.True(t, ok)
	assert.NotNil(t, got)
}
