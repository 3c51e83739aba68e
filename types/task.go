package types

import "time"

// Task statuses. A task starts pending and can only move to completed.
const (
	TaskStatusPending   = 0
	TaskStatusCompleted = 1
)

// Task is a unit of work owned by exactly one user. Every read and
// write is scoped by the owning user's id.
type Task struct {
	// ID is the unique identifier of the task.
	ID int `json:"id" db:"id"`

	// UserID is the id of the owning user.
	UserID int `json:"user_id" db:"user_id"`

	// Title is a short label for the task.
	Title string `json:"title" db:"title"`

	// Description holds free-form detail about the task.
	Description string `json:"description" db:"description"`

	// DueDate is the date the task is due.
	DueDate time.Time `json:"due_date" db:"due_date"`

	// CreatedDate is the server-side date the task was created.
	CreatedDate time.Time `json:"created_date" db:"created_date"`

	// Priority is whatever the user picked on the form (e.g. "High").
	Priority string `json:"priority" db:"priority"`

	// Status indicates whether the task is pending (0) or completed (1).
	Status int `json:"status" db:"status"`
}

// Completed reports whether the task has been marked complete.
func (t Task) Completed() bool {
	return t.Status == TaskStatusCompleted
}

// TaskCounts aggregates a user's tasks for the dashboard view. The three
// numbers come from a single statement, so they are mutually consistent.
type TaskCounts struct {
	Pending   int `json:"pending"`
	Total     int `json:"total"`
	Completed int `json:"completed"`
}
