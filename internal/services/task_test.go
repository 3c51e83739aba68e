package services

import (
	"context"
	"sort"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tasklist/webapp/types"
)

// fakeTaskRepo is an in-memory TaskRepository mirroring the store's
// owner scoping and due-date ordering.
type fakeTaskRepo struct {
	tasks  []types.Task
	nextID int
}

func newFakeTaskRepo() *fakeTaskRepo {
	return &fakeTaskRepo{nextID: 1}
}

func (f *fakeTaskRepo) ListByUser(ctx context.Context, userID int) ([]types.Task, error) {
	owned := make([]types.Task, 0)
	for _, task := range f.tasks {
		if task.UserID == userID {
			owned = append(owned, task)
		}
	}
	sort.Slice(owned, func(i, j int) bool {
		return owned[i].DueDate.Before(owned[j].DueDate)
	})
	return owned, nil
}

func (f *fakeTaskRepo) CountsByUser(ctx context.Context, userID int) (types.TaskCounts, error) {
	var counts types.TaskCounts
	for _, task := range f.tasks {
		if task.UserID != userID {
			continue
		}
		counts.Total++
		if task.Completed() {
			counts.Completed++
		} else {
			counts.Pending++
		}
	}
	return counts, nil
}

func (f *fakeTaskRepo) Create(ctx context.Context, task types.Task) (types.Task, error) {
	task.ID = f.nextID
	f.nextID++
	f.tasks = append(f.tasks, task)
	return task, nil
}

func (f *fakeTaskRepo) Delete(ctx context.Context, userID, taskID int) error {
	for i, task := range f.tasks {
		if task.ID == taskID && task.UserID == userID {
			f.tasks = append(f.tasks[:i], f.tasks[i+1:]...)
			return nil
		}
	}
	return nil
}

func (f *fakeTaskRepo) SetCompleted(ctx context.Context, userID, taskID int) error {
	for i, task := range f.tasks {
		if task.ID == taskID && task.UserID == userID {
			f.tasks[i].Status = types.TaskStatusCompleted
			return nil
		}
	}
	return nil
}

func date(s string) time.Time {
	d, _ := time.Parse("2006-01-02", s)
	return d
}

func TestTaskServiceCreateForcesPending(t *testing.T) {
	repo := newFakeTaskRepo()
	svc := NewTaskService(repo)
	svc.now = func() time.Time { return date("2024-01-02") }

	task, err := svc.Create(context.Background(), 3, CreateInput{
		Title:    "groceries",
		DueDate:  date("2024-01-05"),
		Priority: "High",
	})
	require.NoError(t, err)
	assert.Equal(t, types.TaskStatusPending, task.Status)
	assert.Equal(t, date("2024-01-02"), task.CreatedDate)
	assert.Equal(t, 3, task.UserID)
}

func TestTaskServiceListOrdering(t *testing.T) {
	repo := newFakeTaskRepo()
	svc := NewTaskService(repo)
	ctx := context.Background()

	for _, due := range []string{"2024-01-05", "2024-01-01", "2024-01-10"} {
		_, err := svc.Create(ctx, 3, CreateInput{Title: due, DueDate: date(due)})
		require.NoError(t, err)
	}

	tasks, err := svc.List(ctx, 3)
	require.NoError(t, err)
	require.Len(t, tasks, 3)
	assert.Equal(t, "2024-01-01", tasks[0].Title)
	assert.Equal(t, "2024-01-05", tasks[1].Title)
	assert.Equal(t, "2024-01-10", tasks[2].Title)
}

func TestTaskServiceDeleteIsOwnerScoped(t *testing.T) {
	repo := newFakeTaskRepo()
	svc := NewTaskService(repo)
	ctx := context.Background()

	task, err := svc.Create(ctx, 3, CreateInput{Title: "mine", DueDate: date("2024-01-05")})
	require.NoError(t, err)

	// Another user deleting this id is a silent no-op.
	require.NoError(t, svc.Delete(ctx, 4, task.ID))
	tasks, err := svc.List(ctx, 3)
	require.NoError(t, err)
	assert.Len(t, tasks, 1)

	require.NoError(t, svc.Delete(ctx, 3, task.ID))
	tasks, err = svc.List(ctx, 3)
	require.NoError(t, err)
	assert.Empty(t, tasks)
}

func TestTaskServiceCounts(t *testing.T) {
	repo := newFakeTaskRepo()
	svc := NewTaskService(repo)
	ctx := context.Background()

	var ids []int
	for i := 0; i < 3; i++ {
		task, err := svc.Create(ctx, 3, CreateInput{Title: "t", DueDate: date("2024-01-05")})
		require.NoError(t, err)
		ids = append(ids, task.ID)
	}
	require.NoError(t, svc.Delete(ctx, 3, ids[0]))

	counts, err := svc.Counts(ctx, 3)
	require.NoError(t, err)
	assert.Equal(t, types.TaskCounts{Pending: 2, Total: 2, Completed: 0}, counts)
}

func TestTaskServiceCompleteIsOwnerScoped(t *testing.T) {
	repo := newFakeTaskRepo()
	svc := NewTaskService(repo)
	ctx := context.Background()

	task, err := svc.Create(ctx, 3, CreateInput{Title: "mine", DueDate: date("2024-01-05")})
	require.NoError(t, err)

	require.NoError(t, svc.Complete(ctx, 4, task.ID))
	counts, err := svc.Counts(ctx, 3)
	require.NoError(t, err)
	assert.Equal(t, 0, counts.Completed)

	require.NoError(t, svc.Complete(ctx, 3, task.ID))
	counts, err = svc.Counts(ctx, 3)
	require.NoError(t, err)
	assert.Equal(t, types.TaskCounts{Pending: 0, Total: 1, Completed: 1}, counts)
}
