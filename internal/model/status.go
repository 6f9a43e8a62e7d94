package model

import "fmt"

// Status is one of the four fixed board columns a task can sit in.
type Status string

const (
	StatusToDo        Status = "To-Do"
	StatusInProgress  Status = "In-Progress"
	StatusUnderReview Status = "Under-Review"
	StatusCompleted   Status = "Completed"
)

// Statuses returns the columns in board order.
func Statuses() []Status {
	return []Status{StatusToDo, StatusInProgress, StatusUnderReview, StatusCompleted}
}

func (s Status) Valid() bool {
	switch s {
	case StatusToDo, StatusInProgress, StatusUnderReview, StatusCompleted:
		return true
	}
	return false
}

// ParseStatus validates a raw string against the closed status set.
// Unknown values are rejected, never coerced.
func ParseStatus(raw string) (Status, error) {
	s := Status(raw)
	if !s.Valid() {
		return "", fmt.Errorf("invalid status %q", raw)
	}
	return s, nil
}

// Priority is the optional urgency marker on a task.
type Priority string

const (
	PriorityLow    Priority = "Low"
	PriorityMedium Priority = "Medium"
	PriorityUrgent Priority = "Urgent"
)

func (p Priority) Valid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityUrgent:
		return true
	}
	return false
}

func ParsePriority(raw string) (Priority, error) {
	p := Priority(raw)
	if !p.Valid() {
		return "", fmt.Errorf("invalid priority %q", raw)
	}
	return p, nil
}
