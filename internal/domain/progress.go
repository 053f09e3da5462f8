package domain

// EventType discriminates progress notifications from run-fatal errors.
type EventType string

const (
	EventProgress EventType = "progress"
	EventError    EventType = "error"
)

// ProgressEvent is a transient notification published while a pipeline
// run executes. It is never persisted; it exists only between the
// publisher and the subscribers registered for the run's session.
type ProgressEvent struct {
	Type     EventType `json:"type"`
	Message  string    `json:"message"`
	Progress *int      `json:"progress,omitempty"`
}

// NewProgress builds a progress event with a completion percentage.
func NewProgress(pct int, message string) ProgressEvent {
	return ProgressEvent{Type: EventProgress, Message: message, Progress: &pct}
}

// NewError builds an error event. Error events carry no percentage.
func NewError(message string) ProgressEvent {
	return ProgressEvent{Type: EventError, Message: message}
}
