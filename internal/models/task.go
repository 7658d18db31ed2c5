package models

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/adanyl0v/go-todo-stories/internal/option"
	"github.com/adanyl0v/go-todo-stories/internal/result"
)

type TaskStatus string

const (
	StatusOpen       TaskStatus = "OPEN"
	StatusInProgress TaskStatus = "IN_PROGRESS"
	StatusDone       TaskStatus = "DONE"
)

func (s TaskStatus) Valid() bool {
	switch s {
	case StatusOpen, StatusInProgress, StatusDone:
		return true
	default:
		return false
	}
}

// timeNow is swapped in tests.
var timeNow = time.Now

type Task struct {
	ID          string     `json:"id"`
	UserID      string     `json:"user_id,omitempty"`
	Title       string     `json:"title"`
	Description string     `json:"description,omitempty"`
	Status      TaskStatus `json:"status"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// TaskInput holds the fields of a new task. Zero values are replaced by
// defaults: a random id, StatusOpen, the current time, and UpdatedAt equal to
// CreatedAt.
type TaskInput struct {
	ID          string
	UserID      string
	Title       string
	Description string
	Status      TaskStatus
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TaskPatch lists the fields that may change after a task is created. None
// leaves the field untouched, Some("") sets it to empty.
type TaskPatch struct {
	Title       option.Option[string]
	Description option.Option[string]
	Status      option.Option[TaskStatus]
}

func NewTask(in TaskInput) result.Result[*Task, *Error] {
	task := &Task{
		ID:          in.ID,
		UserID:      in.UserID,
		Title:       in.Title,
		Description: in.Description,
		Status:      in.Status,
		CreatedAt:   in.CreatedAt,
		UpdatedAt:   in.UpdatedAt,
	}
	if task.ID == "" {
		task.ID = uuid.NewString()
	}
	if task.Status == "" {
		task.Status = StatusOpen
	}
	if task.CreatedAt.IsZero() {
		task.CreatedAt = timeNow()
	}
	if task.UpdatedAt.IsZero() {
		task.UpdatedAt = task.CreatedAt
	}
	return task.Validate()
}

// Assign applies the fields present in patch, refreshes UpdatedAt and
// validates. On Err the receiver is left modified and must not be reused.
func (t *Task) Assign(patch TaskPatch) result.Result[*Task, *Error] {
	if title, ok := patch.Title.Get(); ok {
		t.Title = title
	}
	if description, ok := patch.Description.Get(); ok {
		t.Description = description
	}
	if status, ok := patch.Status.Get(); ok {
		t.Status = status
	}

	now := timeNow()
	if now.Before(t.CreatedAt) {
		now = t.CreatedAt
	}
	t.UpdatedAt = now

	return t.Validate()
}

// Validate stops at the first invalid field.
func (t *Task) Validate() result.Result[*Task, *Error] {
	if t.Title == "" {
		return result.Err[*Task](newValidationError(CodeTaskError, "title", "'title' is required"))
	}
	if !t.Status.Valid() {
		return result.Err[*Task](newValidationError(CodeTaskError, "status",
			"'status' must be one of "+strings.Join(taskStatuses(), ", ")))
	}
	return result.Ok[*Task, *Error](t)
}

// Clone returns a copy that shares no state with t.
func (t *Task) Clone() *Task {
	c := *t
	return &c
}

// IsOwnedBy reports whether the task belongs to the user with the given id.
func (t *Task) IsOwnedBy(userID string) bool {
	return t.UserID == userID
}

func taskStatuses() []string {
	return []string{string(StatusOpen), string(StatusInProgress), string(StatusDone)}
}

// TaskFilter narrows FindAll. Title and Description are case-insensitive
// substring matches, Status is an exact match, and all set filters must hold.
type TaskFilter struct {
	Page        int
	PageSize    int
	Title       string
	Description string
	Status      TaskStatus
}

// WithDefaults fills page and page size when they are unset or invalid.
func (f TaskFilter) WithDefaults() TaskFilter {
	if f.Page < 1 {
		f.Page = DefaultPage
	}
	if f.PageSize < 1 {
		f.PageSize = DefaultPageSize
	}
	return f
}

// Matches applies the filter to a single task, ignoring pagination.
func (f TaskFilter) Matches(t *Task) bool {
	if f.Title != "" && !containsFold(t.Title, f.Title) {
		return false
	}
	if f.Description != "" && !containsFold(t.Description, f.Description) {
		return false
	}
	if f.Status != "" && t.Status != f.Status {
		return false
	}
	return true
}

func containsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}
