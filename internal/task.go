package internal

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// Priority indicates how important a Task is.
type Priority int8

const (
	PriorityLow Priority = iota + 1
	PriorityMedium
	PriorityHigh
)

var priorityNames = map[Priority]string{
	PriorityLow:    "LOW",
	PriorityMedium: "MEDIUM",
	PriorityHigh:   "HIGH",
}

// ParsePriority converts the literal representation of a priority, one of LOW, MEDIUM or HIGH.
// Literals are case sensitive.
func ParsePriority(s string) (Priority, error) {
	for p, name := range priorityNames {
		if name == s {
			return p, nil
		}
	}

	return Priority(0), NewErrorf(ErrorCodeInvalidArgument, "unknown priority %q", s)
}

// String returns the literal representation of the priority.
func (p Priority) String() string {
	if name, ok := priorityNames[p]; ok {
		return name
	}

	return "INVALID"
}

// Validate ...
func (p Priority) Validate() error {
	if _, ok := priorityNames[p]; !ok {
		return NewErrorf(ErrorCodeInvalidArgument, "unknown value")
	}

	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (p Priority) MarshalText() ([]byte, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	return []byte(p.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (p *Priority) UnmarshalText(b []byte) error {
	v, err := ParsePriority(string(b))
	if err != nil {
		return err
	}

	*p = v

	return nil
}

// Task is an activity that needs to be completed, optionally by a due date.
type Task struct {
	ID          int64
	Title       string
	Description *string
	Completed   bool
	Priority    Priority
	DueDate     *Date
}

// NewTask returns a Task that is not completed and has medium priority.
func NewTask(title string, description *string) Task {
	return Task{
		Title:       title,
		Description: description,
		Priority:    PriorityMedium,
	}
}

// NewTaskDue returns a Task that is not completed, with the received priority and due date.
func NewTaskDue(title string, description *string, priority Priority, due *Date) Task {
	return Task{
		Title:       title,
		Description: description,
		Priority:    priority,
		DueDate:     due,
	}
}

// Validate ...
func (t Task) Validate() error {
	if err := validation.ValidateStruct(&t,
		validation.Field(&t.Priority),
	); err != nil {
		return WrapErrorf(err, ErrorCodeInvalidArgument, "invalid values")
	}

	return nil
}
