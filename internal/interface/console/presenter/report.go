// Package presenter formats tuition reports for the console.
// Presenters turn query results into text; they never touch the registries.
package presenter

import (
	"fmt"
	"strings"

	"github.com/tuitiondesk/tuition-desk/internal/application/tuition"
)

// ══════════════════════════════════════════════════════════════════════════════
// REPORT PRESENTER
// ══════════════════════════════════════════════════════════════════════════════

// ReportPresenter renders lesson summaries and tutor review listings.
type ReportPresenter struct {
	// UseLabels prints "Non-Verbal Reasoning" instead of "NON_VERBAL_REASONING".
	UseLabels bool
}

// NewReportPresenter creates a presenter that prints subject enum names.
func NewReportPresenter() *ReportPresenter {
	return &ReportPresenter{}
}

// FormatLessonSummary renders one block per subject:
//
//	Lesson Summary for Student: Bob
//	-------------------------------
//	Subject: MATH
//	Booked Lessons: 2
//	Attended Lessons: 1
//	Canceled Lessons: 1
func (p *ReportPresenter) FormatLessonSummary(summary tuition.Summary) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Lesson Summary for Student: %s\n", summary.StudentName))
	sb.WriteString("-------------------------------\n")

	for _, row := range summary.Subjects {
		sb.WriteString(fmt.Sprintf("Subject: %s\n", p.subjectName(row)))
		sb.WriteString(fmt.Sprintf("Booked Lessons: %d\n", row.Booked))
		sb.WriteString(fmt.Sprintf("Attended Lessons: %d\n", row.Attended))
		sb.WriteString(fmt.Sprintf("Canceled Lessons: %d\n", row.Canceled))
		sb.WriteString("\n")
	}

	return sb.String()
}

// FormatTutorReviews renders one block per review:
//
//	Reviews for Tutor: Amy
//	---------------------------
//	Student: Bob
//	Review: Great
//	Rating: 5
func (p *ReportPresenter) FormatTutorReviews(tutorName string, reviews []tuition.Review) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Reviews for Tutor: %s\n", tutorName))
	sb.WriteString("---------------------------\n")

	for _, r := range reviews {
		sb.WriteString(fmt.Sprintf("Student: %s\n", r.StudentName))
		sb.WriteString(fmt.Sprintf("Review: %s\n", r.Review))
		sb.WriteString(fmt.Sprintf("Rating: %d\n", r.Rating))
		sb.WriteString("\n")
	}

	return sb.String()
}

func (p *ReportPresenter) subjectName(row tuition.SubjectSummary) string {
	if p.UseLabels {
		return row.Subject.Label()
	}
	return row.Subject.String()
}
