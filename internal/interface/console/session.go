// Package console runs the interactive desk session: it reads tutors,
// students and bookings from a text stream, then prints the two reports.
package console

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/tuitiondesk/tuition-desk/internal/application/tuition"
	"github.com/tuitiondesk/tuition-desk/internal/domain/lesson"
	"github.com/tuitiondesk/tuition-desk/internal/domain/student"
	"github.com/tuitiondesk/tuition-desk/internal/domain/subject"
	"github.com/tuitiondesk/tuition-desk/internal/domain/tutor"
	"github.com/tuitiondesk/tuition-desk/internal/interface/console/presenter"
	"github.com/tuitiondesk/tuition-desk/pkg/logger"
	"github.com/tuitiondesk/tuition-desk/pkg/timeutil"
)

// ══════════════════════════════════════════════════════════════════════════════
// SESSION
// ══════════════════════════════════════════════════════════════════════════════

// Options configures a Session.
type Options struct {
	// EchoPrompts prints "Enter ...:" prompts. Headers and results are
	// always printed.
	EchoPrompts bool

	// ReviewPrompts asks for a rating and review after each booking.
	// Input written for the plain booking flow must leave it off.
	ReviewPrompts bool

	// SubjectLabels prints subject labels ("Verbal Reasoning") in reports
	// instead of enum names.
	SubjectLabels bool

	Logger *slog.Logger
}

// Session is one pass through the desk workflow.
type Session struct {
	sys       *tuition.System
	r         io.Reader
	in        *lineReader
	out       io.Writer
	opts      Options
	validate  *validator.Validate
	presenter *presenter.ReportPresenter
	logger    *slog.Logger

	// err holds the first write error; once set, the session stops.
	err error
}

// NewSession creates a session that reads from r and writes to w.
func NewSession(sys *tuition.System, r io.Reader, w io.Writer, opts Options) *Session {
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	return &Session{
		sys:       sys,
		r:         r,
		out:       w,
		opts:      opts,
		validate:  newValidator(),
		presenter: newPresenter(opts),
		logger:    opts.Logger.With(logger.Component("console")),
	}
}

// Run executes the workflow: tutors, students, bookings, lesson summary,
// tutor reviews. It returns ErrInputEnded if the input closes early,
// ctx.Err() on cancellation, or the first write error.
func (s *Session) Run(ctx context.Context) error {
	s.in = newLineReader(s.r)
	defer s.in.close()

	steps := []struct {
		name string
		fn   func(context.Context) error
	}{
		{"tutors", s.addTutors},
		{"students", s.addStudents},
		{"lessons", s.bookLessons},
		{"summary", s.printSummary},
		{"reviews", s.printReviews},
	}

	for _, step := range steps {
		if err := step.fn(ctx); err != nil {
			if !errors.Is(err, ErrInputEnded) && !errors.Is(err, context.Canceled) {
				s.logger.Error("session step failed", slog.String("step", step.name), logger.Err(err))
			}
			return err
		}
		if s.err != nil {
			return fmt.Errorf("write output: %w", s.err)
		}
	}

	s.logger.Info("session finished",
		slog.Int("tutors", len(s.sys.Tutors())),
		slog.Int("students", len(s.sys.Students())),
	)
	return nil
}

// ─────────────────────────────────────────────────────────────────────────────
// Tutors
// ─────────────────────────────────────────────────────────────────────────────

func (s *Session) addTutors(ctx context.Context) error {
	s.header("Adding Tutors")
	n, err := s.readCount(ctx, "Enter the number of tutors: ")
	if err != nil {
		return err
	}

	for i := 0; i < n; i++ {
		s.println(fmt.Sprintf("Tutor %d", i+1))
		t, err := s.readTutor(ctx)
		if err != nil {
			return err
		}
		s.sys.AddTutor(t)
		s.println("Tutor added successfully!")
		s.println("")
	}
	return nil
}

// readTutor prompts until the name and specialties are usable.
func (s *Session) readTutor(ctx context.Context) (*tutor.Tutor, error) {
	for {
		name, err := s.ask(ctx, "Enter tutor name: ")
		if err != nil {
			return nil, err
		}
		specialties, err := s.ask(ctx, "Enter specialties (comma-separated): ")
		if err != nil {
			return nil, err
		}

		form := tutorForm{Name: strings.TrimSpace(name), Specialties: strings.TrimSpace(specialties)}
		if err := s.validate.Struct(form); err != nil {
			s.println("Invalid tutor: " + describe(err) + ". Please try again.")
			continue
		}

		subjects, err := subject.ParseList(form.Specialties)
		if err != nil {
			s.logger.Debug("specialties rejected", logger.Err(err))
			s.println(fmt.Sprintf("Invalid specialties %q. Please try again.", form.Specialties))
			continue
		}
		return tutor.New(form.Name, subjects), nil
	}
}

// ─────────────────────────────────────────────────────────────────────────────
// Students
// ─────────────────────────────────────────────────────────────────────────────

func (s *Session) addStudents(ctx context.Context) error {
	s.header("Adding Students")
	n, err := s.readCount(ctx, "Enter the number of students: ")
	if err != nil {
		return err
	}

	for i := 0; i < n; i++ {
		s.println(fmt.Sprintf("Student %d", i+1))
		st, err := s.readStudent(ctx)
		if err != nil {
			return err
		}
		s.sys.AddStudent(st)
		s.println("Student added successfully!")
		s.println("")
	}
	return nil
}

func (s *Session) readStudent(ctx context.Context) (*student.Student, error) {
	var form studentForm
	for {
		name, err := s.ask(ctx, "Enter student name: ")
		if err != nil {
			return nil, err
		}
		form.Name = strings.TrimSpace(name)
		if err := s.validate.Struct(form); err != nil {
			s.println("Invalid student: " + describe(err) + ". Please try again.")
			continue
		}
		break
	}

	gender, err := s.ask(ctx, "Enter student gender: ")
	if err != nil {
		return nil, err
	}
	form.Gender = strings.TrimSpace(gender)

	dob, err := s.readDate(ctx, "Enter date of birth (YYYY-MM-DD): ")
	if err != nil {
		return nil, err
	}

	contact, err := s.ask(ctx, "Enter emergency contact phone number: ")
	if err != nil {
		return nil, err
	}
	form.EmergencyContact = strings.TrimSpace(contact)

	return student.New(student.NewParams{
		Name:             form.Name,
		Gender:           form.Gender,
		DateOfBirth:      dob,
		EmergencyContact: form.EmergencyContact,
	}), nil
}

// ─────────────────────────────────────────────────────────────────────────────
// Bookings
// ─────────────────────────────────────────────────────────────────────────────

func (s *Session) bookLessons(ctx context.Context) error {
	s.header("Booking Lessons")
	n, err := s.readCount(ctx, "Enter the number of lessons to book: ")
	if err != nil {
		return err
	}

	for i := 0; i < n; i++ {
		s.println(fmt.Sprintf("Lesson %d", i+1))
		if err := s.bookLesson(ctx); err != nil {
			return err
		}
		s.println("")
	}
	return nil
}

// bookLesson reads the five booking fields and books the lesson if they check
// out. Bad input is reported and the booking skipped; only stream errors are
// returned.
func (s *Session) bookLesson(ctx context.Context) error {
	var form bookingForm
	fields := []struct {
		prompt string
		dst    *string
	}{
		{"Enter student name: ", &form.Student},
		{"Enter subject: ", &form.Subject},
		{"Enter tutor name: ", &form.Tutor},
		{"Enter date (YYYY-MM-DD): ", &form.Date},
		{"Enter hour (24-hour format): ", &form.Hour},
	}
	for _, f := range fields {
		text, err := s.ask(ctx, f.prompt)
		if err != nil {
			return err
		}
		*f.dst = strings.TrimSpace(text)
	}

	if err := s.validate.Struct(form); err != nil {
		s.println("Lesson booking failed: " + describe(err) + ".")
		return nil
	}

	subj, err := subject.Parse(form.Subject)
	if err != nil {
		s.println(fmt.Sprintf("Invalid subject %q. Lesson booking failed!", form.Subject))
		return nil
	}
	date, err := timeutil.ParseDate(form.Date)
	if err != nil {
		s.println(fmt.Sprintf("Invalid date %q. Lesson booking failed!", form.Date))
		return nil
	}
	hour, err := lesson.ParseHour(form.Hour)
	if err != nil {
		s.println(fmt.Sprintf("Invalid hour %q. Lesson booking failed!", form.Hour))
		return nil
	}

	st, okStudent := s.sys.FindStudent(form.Student)
	t, okTutor := s.sys.GetTutor(form.Tutor)
	if !okStudent || !okTutor {
		s.logger.Debug("booking rejected",
			logger.Student(form.Student),
			logger.Tutor(form.Tutor),
			slog.Bool("student_found", okStudent),
			slog.Bool("tutor_found", okTutor),
		)
		s.println("Invalid student or tutor name. Lesson booking failed!")
		return nil
	}

	l := s.sys.BookLesson(st, subj, t, date, hour)
	s.println("Lesson booked successfully!")

	if s.opts.ReviewPrompts {
		return s.reviewLesson(ctx, st, subj, l)
	}
	return nil
}

// reviewLesson asks for an optional rating. A blank or non-numeric line
// leaves the lesson unrated, which reports count as canceled. The line is
// never re-asked.
func (s *Session) reviewLesson(ctx context.Context, st *student.Student, subj subject.Subject, l *lesson.Lesson) error {
	text, err := s.ask(ctx, "Enter rating (blank to skip): ")
	if err != nil {
		return err
	}
	text = strings.TrimSpace(text)
	if text == "" {
		return nil
	}
	rating, err := strconv.Atoi(text)
	if err != nil {
		s.logger.Debug("rating rejected", logger.LessonID(l.ID()), slog.String("input", text))
		s.println(fmt.Sprintf("Invalid rating %q. Review skipped.", text))
		return nil
	}

	review, err := s.ask(ctx, "Enter review: ")
	if err != nil {
		return err
	}
	s.sys.ReviewLesson(st, subj, l, strings.TrimSpace(review), rating)
	s.println("Review recorded!")
	return nil
}

// ─────────────────────────────────────────────────────────────────────────────
// Reports
// ─────────────────────────────────────────────────────────────────────────────

func (s *Session) printSummary(ctx context.Context) error {
	s.header("Print Lesson Summary")
	name, err := s.ask(ctx, "Enter student name: ")
	if err != nil {
		return err
	}

	st, ok := s.sys.FindStudent(strings.TrimSpace(name))
	if !ok {
		s.println("Invalid student name. Lesson summary cannot be printed!")
		return nil
	}
	s.print(s.presenter.FormatLessonSummary(s.sys.LessonSummary(st)))
	return nil
}

func (s *Session) printReviews(ctx context.Context) error {
	s.header("Print Tutor Reviews")
	name, err := s.ask(ctx, "Enter tutor name: ")
	if err != nil {
		return err
	}

	t, ok := s.sys.GetTutor(strings.TrimSpace(name))
	if !ok {
		s.println("Invalid tutor name. Tutor reviews cannot be printed!")
		return nil
	}
	s.print(s.presenter.FormatTutorReviews(t.Name(), s.sys.TutorReviews(t)))
	return nil
}

func newPresenter(opts Options) *presenter.ReportPresenter {
	p := presenter.NewReportPresenter()
	p.UseLabels = opts.SubjectLabels
	return p
}

// ─────────────────────────────────────────────────────────────────────────────
// Input helpers
// ─────────────────────────────────────────────────────────────────────────────

// ask shows prompt (when echoing) and returns the next line.
func (s *Session) ask(ctx context.Context, prompt string) (string, error) {
	if s.err != nil {
		return "", fmt.Errorf("write output: %w", s.err)
	}
	if s.opts.EchoPrompts {
		s.print(prompt)
	}
	return s.in.next(ctx)
}

// readCount prompts until a non-negative whole number is entered.
func (s *Session) readCount(ctx context.Context, prompt string) (int, error) {
	for {
		text, err := s.ask(ctx, prompt)
		if err != nil {
			return 0, err
		}
		n, err := strconv.Atoi(strings.TrimSpace(text))
		if err != nil || n < 0 {
			s.println("Please enter a whole number of zero or more.")
			continue
		}
		return n, nil
	}
}

// readDate prompts until the input is blank or a valid YYYY-MM-DD date.
func (s *Session) readDate(ctx context.Context, prompt string) (time.Time, error) {
	for {
		text, err := s.ask(ctx, prompt)
		if err != nil {
			return time.Time{}, err
		}
		d, err := timeutil.ParseDate(text)
		if err != nil {
			s.println("Dates must look like 2024-03-01. Please try again.")
			continue
		}
		return d, nil
	}
}

// ─────────────────────────────────────────────────────────────────────────────
// Output helpers
// ─────────────────────────────────────────────────────────────────────────────

func (s *Session) header(title string) {
	s.println(title)
	s.println(strings.Repeat("-", len(title)))
}

func (s *Session) println(text string) {
	s.print(text + "\n")
}

func (s *Session) print(text string) {
	if s.err != nil {
		return
	}
	_, s.err = io.WriteString(s.out, text)
}
