package entity

import (
	"strings"
	"time"

	errs "github.com/lucasferrari/taskboard/internal/domain/error"
	coreport "github.com/lucasferrari/taskboard/internal/domain/port/core"
)

// TodoStatus represents the lifecycle state of a todo
type TodoStatus string

const (
	// TodoStatusOpen is the initial state of every todo
	TodoStatusOpen TodoStatus = "open"
	// TodoStatusDone marks a completed todo
	TodoStatusDone TodoStatus = "done"
)

const maxTitleLength = 200

// Todo represents a single task inside a project
type Todo struct {
	ID          string
	ProjectID   string
	Title       string
	Description string
	Status      TodoStatus
	DueDate     *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// NewTodo creates an open todo belonging to the given project
func NewTodo(id, projectID, title, description string, dueDate *time.Time, timeProvider coreport.TimeProvider) (*Todo, error) {
	title = strings.TrimSpace(title)
	if title == "" || len(title) > maxTitleLength {
		return nil, errs.ErrInvalidTitle
	}

	now := timeProvider.Now()
	return &Todo{
		ID:          id,
		ProjectID:   projectID,
		Title:       title,
		Description: description,
		Status:      TodoStatusOpen,
		DueDate:     dueDate,
		CreatedAt:   now,
		UpdatedAt:   now,
	}, nil
}

// ParseTodoStatus validates a raw status value
func ParseTodoStatus(raw string) (TodoStatus, error) {
	switch TodoStatus(raw) {
	case TodoStatusOpen, TodoStatusDone:
		return TodoStatus(raw), nil
	default:
		return "", errs.ErrInvalidStatus
	}
}

// Rename changes the todo title
func (t *Todo) Rename(title string, timeProvider coreport.TimeProvider) error {
	title = strings.TrimSpace(title)
	if title == "" || len(title) > maxTitleLength {
		return errs.ErrInvalidTitle
	}
	t.Title = title
	t.UpdatedAt = timeProvider.Now()
	return nil
}

// Describe replaces the todo description
func (t *Todo) Describe(description string, timeProvider coreport.TimeProvider) {
	t.Description = description
	t.UpdatedAt = timeProvider.Now()
}

// Complete marks the todo as done. Completing an already done todo is a
// no-op so that retried requests stay idempotent.
func (t *Todo) Complete(timeProvider coreport.TimeProvider) {
	if t.Status == TodoStatusDone {
		return
	}
	t.Status = TodoStatusDone
	t.UpdatedAt = timeProvider.Now()
}

// Reopen moves a done todo back to open
func (t *Todo) Reopen(timeProvider coreport.TimeProvider) {
	if t.Status == TodoStatusOpen {
		return
	}
	t.Status = TodoStatusOpen
	t.UpdatedAt = timeProvider.Now()
}

// IsDone reports whether the todo has been completed
func (t *Todo) IsDone() bool {
	return t.Status == TodoStatusDone
}
