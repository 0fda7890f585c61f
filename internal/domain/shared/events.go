package shared

import "time"

// EventType represents the type of domain event.
type EventType string

// Domain event types. Each event represents something significant that happened in the domain.
const (
	// Registry events
	EventTutorRegistered EventType = "tutor.registered"
	EventTutorReplaced   EventType = "tutor.replaced"
	EventStudentEnrolled EventType = "student.enrolled"

	// Lesson events
	EventLessonBooked   EventType = "lesson.booked"
	EventLessonCanceled EventType = "lesson.canceled"
	EventLessonReviewed EventType = "lesson.reviewed"
)

// Event is the base interface for all domain events.
type Event interface {
	// EventType returns the type of the event.
	EventType() EventType

	// OccurredAt returns when the event occurred.
	OccurredAt() time.Time

	// AggregateID returns the ID of the aggregate that produced this event.
	AggregateID() string

	// Payload returns the event data as a map for logging.
	Payload() map[string]interface{}
}

// BaseEvent provides common event functionality.
type BaseEvent struct {
	Type        EventType `json:"type"`
	Timestamp   time.Time `json:"timestamp"`
	AggregateId string    `json:"aggregate_id"`
}

// EventType implements Event interface.
func (e BaseEvent) EventType() EventType {
	return e.Type
}

// OccurredAt implements Event interface.
func (e BaseEvent) OccurredAt() time.Time {
	return e.Timestamp
}

// AggregateID implements Event interface.
func (e BaseEvent) AggregateID() string {
	return e.AggregateId
}

// NewBaseEvent creates a new base event.
func NewBaseEvent(eventType EventType, aggregateID string) BaseEvent {
	return BaseEvent{
		Type:        eventType,
		Timestamp:   time.Now(),
		AggregateId: aggregateID,
	}
}

// ═══════════════════════════════════════════════════════════════════════════
// Registry Events
// ═══════════════════════════════════════════════════════════════════════════

// TutorRegisteredEvent is emitted when a tutor is added to the registry.
// Replaced is set when an earlier tutor with the same name was overwritten.
type TutorRegisteredEvent struct {
	BaseEvent
	Name        string   `json:"name"`
	Specialties []string `json:"specialties"`
	Replaced    bool     `json:"replaced"`
}

// Payload implements Event interface.
func (e TutorRegisteredEvent) Payload() map[string]interface{} {
	return map[string]interface{}{
		"name":        e.Name,
		"specialties": e.Specialties,
		"replaced":    e.Replaced,
	}
}

// NewTutorRegisteredEvent creates a new TutorRegisteredEvent.
func NewTutorRegisteredEvent(name string, specialties []string, replaced bool) TutorRegisteredEvent {
	eventType := EventTutorRegistered
	if replaced {
		eventType = EventTutorReplaced
	}
	return TutorRegisteredEvent{
		BaseEvent:   NewBaseEvent(eventType, name),
		Name:        name,
		Specialties: specialties,
		Replaced:    replaced,
	}
}

// StudentEnrolledEvent is emitted when a student is added to the registry.
type StudentEnrolledEvent struct {
	BaseEvent
	Name string `json:"name"`
}

// Payload implements Event interface.
func (e StudentEnrolledEvent) Payload() map[string]interface{} {
	return map[string]interface{}{
		"name": e.Name,
	}
}

// NewStudentEnrolledEvent creates a new StudentEnrolledEvent.
func NewStudentEnrolledEvent(studentID, name string) StudentEnrolledEvent {
	return StudentEnrolledEvent{
		BaseEvent: NewBaseEvent(EventStudentEnrolled, studentID),
		Name:      name,
	}
}

// ═══════════════════════════════════════════════════════════════════════════
// Lesson Events
// ═══════════════════════════════════════════════════════════════════════════

// LessonEvent is emitted when a lesson is booked, canceled or reviewed.
// The aggregate is the student who owns the lesson.
type LessonEvent struct {
	BaseEvent
	LessonID string `json:"lesson_id"`
	Student  string `json:"student"`
	Tutor    string `json:"tutor"`
	Subject  string `json:"subject"`
	Hour     int    `json:"hour"`
	Rating   int    `json:"rating,omitempty"`
}

// Payload implements Event interface.
func (e LessonEvent) Payload() map[string]interface{} {
	p := map[string]interface{}{
		"lesson_id": e.LessonID,
		"student":   e.Student,
		"tutor":     e.Tutor,
		"subject":   e.Subject,
		"hour":      e.Hour,
	}
	if e.Type == EventLessonReviewed {
		p["rating"] = e.Rating
	}
	return p
}

// NewLessonEvent creates a new LessonEvent of the given type.
func NewLessonEvent(eventType EventType, studentID string, e LessonEvent) LessonEvent {
	e.BaseEvent = NewBaseEvent(eventType, studentID)
	return e
}

// ═══════════════════════════════════════════════════════════════════════════
// Event Bus Contracts
// ═══════════════════════════════════════════════════════════════════════════

// EventHandler is a function that handles an event.
type EventHandler func(event Event) error

// EventPublisher defines the interface for publishing events.
type EventPublisher interface {
	// Publish sends an event to subscribers.
	Publish(event Event) error
}

// EventSubscriber defines the interface for subscribing to events.
type EventSubscriber interface {
	// Subscribe registers a handler for a specific event type.
	Subscribe(eventType EventType, handler EventHandler) error

	// SubscribeAll registers a handler for all events.
	SubscribeAll(handler EventHandler) error
}

// EventBus combines publishing and subscribing.
type EventBus interface {
	EventPublisher
	EventSubscriber
}
