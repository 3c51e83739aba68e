package services

import (
	"context"
	"time"

	"github.com/tasklist/webapp/types"
)

// TaskRepository defines persistence operations for tasks.
type TaskRepository interface {
	ListByUser(ctx context.Context, userID int) ([]types.Task, error)
	CountsByUser(ctx context.Context, userID int) (types.TaskCounts, error)
	Create(ctx context.Context, task types.Task) (types.Task, error)
	Delete(ctx context.Context, userID, taskID int) error
	SetCompleted(ctx context.Context, userID, taskID int) error
}

// TaskService encapsulates owner-scoped task use-cases.
type TaskService struct {
	repo TaskRepository
	now  func() time.Time
}

func NewTaskService(repo TaskRepository) *TaskService {
	return &TaskService{repo: repo, now: time.Now}
}

// List returns every task owned by userID, ascending by due date.
func (s *TaskService) List(ctx context.Context, userID int) ([]types.Task, error) {
	return s.repo.ListByUser(ctx, userID)
}

// Counts returns the dashboard aggregates for userID.
func (s *TaskService) Counts(ctx context.Context, userID int) (types.TaskCounts, error) {
	return s.repo.CountsByUser(ctx, userID)
}

// CreateInput carries the add-task form fields.
type CreateInput struct {
	Title       string
	Description string
	DueDate     time.Time
	Priority    string
}

// Create inserts a task owned by userID. The created date is the
// server's current date and the status is always pending, regardless
// of anything the request carried.
func (s *TaskService) Create(ctx context.Context, userID int, in CreateInput) (types.Task, error) {
	now := s.now()
	created := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	return s.repo.Create(ctx, types.Task{
		UserID:      userID,
		Title:       in.Title,
		Description: in.Description,
		DueDate:     in.DueDate,
		CreatedDate: created,
		Priority:    in.Priority,
		Status:      types.TaskStatusPending,
	})
}

// Delete removes the task if it exists and belongs to userID. A
// nonexistent or foreign task id is a silent no-op.
func (s *TaskService) Delete(ctx context.Context, userID, taskID int) error {
	return s.repo.Delete(ctx, userID, taskID)
}

// Complete marks the task completed if it exists and belongs to
// userID. A nonexistent or foreign task id is a silent no-op.
func (s *TaskService) Complete(ctx context.Context, userID, taskID int) error {
	return s.repo.SetCompleted(ctx, userID, taskID)
}
