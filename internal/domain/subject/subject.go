// Package subject defines the fixed catalog of tutoring subjects.
package subject

import (
	"fmt"
	"strings"

	"github.com/tuitiondesk/tuition-desk/internal/domain/shared"
)

// Subject is one of the tutoring subjects offered by the business.
type Subject string

const (
	EnglishComprehension Subject = "ENGLISH_COMPREHENSION"
	EnglishWriting       Subject = "ENGLISH_WRITING"
	Math                 Subject = "MATH"
	NumericalReasoning   Subject = "NUMERICAL_REASONING"
	VerbalReasoning      Subject = "VERBAL_REASONING"
	NonVerbalReasoning   Subject = "NON_VERBAL_REASONING"
)

// catalog is kept in declaration order; it drives All() and sorting.
var catalog = []Subject{
	EnglishComprehension,
	EnglishWriting,
	Math,
	NumericalReasoning,
	VerbalReasoning,
	NonVerbalReasoning,
}

var labels = map[Subject]string{
	EnglishComprehension: "English Comprehension",
	EnglishWriting:       "English Writing",
	Math:                 "Math",
	NumericalReasoning:   "Numerical Reasoning",
	VerbalReasoning:      "Verbal Reasoning",
	NonVerbalReasoning:   "Non-Verbal Reasoning",
}

// All returns every subject in catalog order.
func All() []Subject {
	out := make([]Subject, len(catalog))
	copy(out, catalog)
	return out
}

// IsValid reports whether s is one of the catalog subjects.
func (s Subject) IsValid() bool {
	_, ok := labels[s]
	return ok
}

// String returns the enum name, e.g. "NON_VERBAL_REASONING".
func (s Subject) String() string {
	return string(s)
}

// Label returns the human-readable name, e.g. "Non-Verbal Reasoning".
func (s Subject) Label() string {
	if l, ok := labels[s]; ok {
		return l
	}
	return string(s)
}

// Ordinal returns the catalog position of s, or -1 for an unknown value.
func (s Subject) Ordinal() int {
	for i, c := range catalog {
		if c == s {
			return i
		}
	}
	return -1
}

// Parse converts free text into a Subject. The text is trimmed and
// upper-cased, then matched against the enum names exactly.
func Parse(text string) (Subject, error) {
	name := strings.ToUpper(strings.TrimSpace(text))
	if name == "" {
		return "", shared.ErrEmptySubject
	}
	s := Subject(name)
	if !s.IsValid() {
		return "", fmt.Errorf("%w: %q", shared.ErrInvalidSubject, strings.TrimSpace(text))
	}
	return s, nil
}

// ParseList parses a comma-separated list such as "math, verbal_reasoning".
// It fails on the first entry that is not a subject.
func ParseList(text string) ([]Subject, error) {
	parts := strings.Split(text, ",")
	out := make([]Subject, 0, len(parts))
	for _, p := range parts {
		s, err := Parse(p)
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, nil
}
