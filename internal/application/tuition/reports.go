package tuition

import (
	"github.com/tuitiondesk/tuition-desk/internal/domain/student"
	"github.com/tuitiondesk/tuition-desk/internal/domain/subject"
	"github.com/tuitiondesk/tuition-desk/internal/domain/tutor"
)

// ══════════════════════════════════════════════════════════════════════════════
// LESSON SUMMARY QUERY
// Per-subject booked / attended / canceled counts for one student.
// ══════════════════════════════════════════════════════════════════════════════

// SubjectSummary holds the counts for one subject.
// Booked always equals Attended + Canceled.
type SubjectSummary struct {
	Subject  subject.Subject `json:"subject"`
	Booked   int             `json:"booked"`
	Attended int             `json:"attended"`
	Canceled int             `json:"canceled"`
}

// Summary is the lesson summary of one student.
type Summary struct {
	StudentID   string           `json:"student_id"`
	StudentName string           `json:"student_name"`
	Subjects    []SubjectSummary `json:"subjects"`
}

// Totals adds up every subject.
func (s Summary) Totals() SubjectSummary {
	var t SubjectSummary
	for _, sub := range s.Subjects {
		t.Booked += sub.Booked
		t.Attended += sub.Attended
		t.Canceled += sub.Canceled
	}
	return t
}

// SummarizeLessons builds the summary for st. Subjects appear in the order
// they were first booked. A lesson with a positive rating counts as attended,
// any other as canceled.
func SummarizeLessons(st *student.Student) Summary {
	out := Summary{
		StudentID:   st.ID,
		StudentName: st.Name,
		Subjects:    make([]SubjectSummary, 0),
	}
	for _, subj := range st.Subjects() {
		row := SubjectSummary{Subject: subj}
		for _, l := range st.Lessons(subj) {
			row.Booked++
			if l.Attended() {
				row.Attended++
			} else {
				row.Canceled++
			}
		}
		out.Subjects = append(out.Subjects, row)
	}
	return out
}

// LessonSummary returns the lesson summary for st.
func (s *System) LessonSummary(st *student.Student) Summary {
	return SummarizeLessons(st)
}

// ══════════════════════════════════════════════════════════════════════════════
// TUTOR REVIEWS QUERY
// Every rated lesson given by one tutor, across all students.
// ══════════════════════════════════════════════════════════════════════════════

// Review is one rated lesson as seen in a tutor's review listing.
type Review struct {
	StudentName string          `json:"student_name"`
	Subject     subject.Subject `json:"subject"`
	LessonID    string          `json:"lesson_id"`
	Review      string          `json:"review"`
	Rating      int             `json:"rating"`
}

// CollectReviews walks students in order, then each student's subjects in
// first-booking order, then lessons in booking order, and keeps lessons given
// by exactly t with a positive rating.
func CollectReviews(students []*student.Student, t *tutor.Tutor) []Review {
	out := make([]Review, 0)
	for _, st := range students {
		for _, subj := range st.Subjects() {
			for _, l := range st.Lessons(subj) {
				if !l.GivenBy(t) || !l.Attended() {
					continue
				}
				out = append(out, Review{
					StudentName: st.Name,
					Subject:     subj,
					LessonID:    l.ID(),
					Review:      l.Review(),
					Rating:      l.Rating(),
				})
			}
		}
	}
	return out
}

// TutorReviews returns the review listing for t over every registered student.
func (s *System) TutorReviews(t *tutor.Tutor) []Review {
	return CollectReviews(s.students.List(), t)
}
