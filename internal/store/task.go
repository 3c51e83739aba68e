package store

import (
	"context"
	"database/sql"

	"github.com/tasklist/webapp/types"
)

// TaskRepository handles persistence for tasks. Every query is scoped
// by the owning user's id.
type TaskRepository struct {
	db *sql.DB
}

func NewTaskRepository(db *sql.DB) *TaskRepository {
	return &TaskRepository{db: db}
}

func (r *TaskRepository) ListByUser(ctx context.Context, userID int) ([]types.Task, error) {
	const query = `
		SELECT id, user_id, title, description, due_date, created_date, priority, status
		FROM tasks
		WHERE user_id = $1
		ORDER BY due_date ASC`
	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	tasks := make([]types.Task, 0)
	for rows.Next() {
		var task types.Task
		if err := rows.Scan(
			&task.ID,
			&task.UserID,
			&task.Title,
			&task.Description,
			&task.DueDate,
			&task.CreatedDate,
			&task.Priority,
			&task.Status,
		); err != nil {
			return nil, err
		}
		tasks = append(tasks, task)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return tasks, nil
}

// CountsByUser reads the dashboard aggregates in one statement so the
// three numbers always describe the same snapshot.
func (r *TaskRepository) CountsByUser(ctx context.Context, userID int) (types.TaskCounts, error) {
	const query = `
		SELECT
			COUNT(*) FILTER (WHERE status = 0),
			COUNT(*),
			COUNT(*) FILTER (WHERE status = 1)
		FROM tasks
		WHERE user_id = $1`
	var counts types.TaskCounts
	if err := r.db.QueryRowContext(ctx, query, userID).Scan(
		&counts.Pending,
		&counts.Total,
		&counts.Completed,
	); err != nil {
		return types.TaskCounts{}, err
	}
	return counts, nil
}

func (r *TaskRepository) Create(ctx context.Context, task types.Task) (types.Task, error) {
	const query = `
		INSERT INTO tasks (user_id, title, description, due_date, created_date, priority, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id`
	if err := r.db.QueryRowContext(
		ctx,
		query,
		task.UserID,
		task.Title,
		task.Description,
		task.DueDate,
		task.CreatedDate,
		task.Priority,
		task.Status,
	).Scan(&task.ID); err != nil {
		return types.Task{}, err
	}
	return task, nil
}

// Delete removes a task only when both the task id and the owner match.
// A zero-row result is not an error: a task that is already gone and a
// task owned by someone else look exactly the same to the caller.
func (r *TaskRepository) Delete(ctx context.Context, userID, taskID int) error {
	const query = `DELETE FROM tasks WHERE id = $1 AND user_id = $2`
	_, err := r.db.ExecContext(ctx, query, taskID, userID)
	return err
}

// SetCompleted marks a task completed, scoped to the owner. Like
// Delete, a no-match is a silent no-op.
func (r *TaskRepository) SetCompleted(ctx context.Context, userID, taskID int) error {
	const query = `UPDATE tasks SET status = 1 WHERE id = $1 AND user_id = $2`
	_, err := r.db.ExecContext(ctx, query, taskID, userID)
	return err
}
