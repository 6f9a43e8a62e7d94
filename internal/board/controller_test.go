package board_test

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"

	"taskboard/internal/board"
	"taskboard/internal/client"
	"taskboard/internal/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

// fakeAPI stubs the task client with per-method hooks.
type fakeAPI struct {
	tasksByStatus func(ctx context.Context, status model.Status) ([]client.Task, error)
	createTask    func(ctx context.Context, input client.TaskInput) (*client.Task, error)
	editTask      func(ctx context.Context, id string, input client.TaskInput) (*client.Task, error)
	deleteTask    func(ctx context.Context, id string) error
}

func (f *fakeAPI) TasksByStatus(ctx context.Context, status model.Status) ([]client.Task, error) {
	return f.tasksByStatus(ctx, status)
}

func (f *fakeAPI) CreateTask(ctx context.Context, input client.TaskInput) (*client.Task, error) {
	return f.createTask(ctx, input)
}

func (f *fakeAPI) EditTask(ctx context.Context, id string, input client.TaskInput) (*client.Task, error) {
	return f.editTask(ctx, id, input)
}

func (f *fakeAPI) DeleteTask(ctx context.Context, id string) error {
	return f.deleteTask(ctx, id)
}

func TestLoad_PopulatesAllColumns(t *testing.T) {
	api := &fakeAPI{
		tasksByStatus: func(_ context.Context, status model.Status) ([]client.Task, error) {
			return []client.Task{task(uuid.NewString(), status)}, nil
		},
	}
	ctrl := board.NewController(api)

	failures := ctrl.Load(context.Background())

	assert.Nil(t, failures)
	state := ctrl.Snapshot()
	for _, status := range model.Statuses() {
		assert.Len(t, state[status], 1)
		assert.Equal(t, status, state[status][0].Status)
	}
}

func TestLoad_OneColumnFailureLeavesOthersIntact(t *testing.T) {
	api := &fakeAPI{
		tasksByStatus: func(_ context.Context, status model.Status) ([]client.Task, error) {
			if status == model.StatusInProgress {
				return nil, errors.New("boom")
			}
			return []client.Task{task(uuid.NewString(), status)}, nil
		},
	}
	ctrl := board.NewController(api)

	failures := ctrl.Load(context.Background())

	assert.Len(t, failures, 1)
	assert.Error(t, failures[model.StatusInProgress])

	state := ctrl.Snapshot()
	assert.Empty(t, state[model.StatusInProgress])
	assert.Len(t, state[model.StatusToDo], 1)
	assert.Len(t, state[model.StatusUnderReview], 1)
	assert.Len(t, state[model.StatusCompleted], 1)
}

func TestCreate_AppendsServerCopy(t *testing.T) {
	serverTask := task(uuid.NewString(), model.StatusToDo)
	api := &fakeAPI{
		createTask: func(_ context.Context, input client.TaskInput) (*client.Task, error) {
			t := serverTask
			t.Title = input.Title
			return &t, nil
		},
	}
	ctrl := board.NewController(api)

	created, err := ctrl.Create(context.Background(), client.TaskInput{
		Title:  "New task",
		Status: model.StatusToDo,
	})

	assert.NoError(t, err)
	assert.Equal(t, serverTask.ID, created.ID)

	state := ctrl.Snapshot()
	assert.Len(t, state[model.StatusToDo], 1)
	assert.Equal(t, "New task", state[model.StatusToDo][0].Title)
}

func TestCreate_FailureLeavesStateUntouched(t *testing.T) {
	api := &fakeAPI{
		createTask: func(_ context.Context, _ client.TaskInput) (*client.Task, error) {
			return nil, &client.APIError{Status: 400, Message: "Invalid status"}
		},
	}
	ctrl := board.NewController(api)

	_, err := ctrl.Create(context.Background(), client.TaskInput{Title: "New task"})

	assert.Error(t, err)
	for _, bucket := range ctrl.Snapshot() {
		assert.Empty(t, bucket)
	}
}

func TestMove_SameColumnIsPureNoOp(t *testing.T) {
	var calls atomic.Int32
	api := &fakeAPI{
		editTask: func(_ context.Context, _ string, _ client.TaskInput) (*client.Task, error) {
			calls.Add(1)
			return nil, errors.New("should not be called")
		},
	}
	ctrl := board.NewController(api)
	current := task(uuid.NewString(), model.StatusToDo)

	moved, err := ctrl.Move(context.Background(), current, model.StatusToDo)

	assert.NoError(t, err)
	assert.Equal(t, current, *moved)
	assert.Zero(t, calls.Load())
}

func TestMove_CommitsBucketMoveOnSuccess(t *testing.T) {
	dragged := task(uuid.NewString(), model.StatusToDo)
	api := &fakeAPI{
		tasksByStatus: func(_ context.Context, status model.Status) ([]client.Task, error) {
			if status == model.StatusToDo {
				return []client.Task{dragged}, nil
			}
			return nil, nil
		},
		editTask: func(_ context.Context, id string, input client.TaskInput) (*client.Task, error) {
			moved := dragged
			moved.Status = input.Status
			return &moved, nil
		},
	}
	ctrl := board.NewController(api)
	assert.Nil(t, ctrl.Load(context.Background()))

	_, err := ctrl.Move(context.Background(), dragged, model.StatusUnderReview)

	assert.NoError(t, err)
	state := ctrl.Snapshot()
	assert.Empty(t, state[model.StatusToDo])
	assert.Len(t, state[model.StatusUnderReview], 1)
}

func TestMove_FailureKeepsTaskInPlace(t *testing.T) {
	dragged := task(uuid.NewString(), model.StatusToDo)
	api := &fakeAPI{
		tasksByStatus: func(_ context.Context, status model.Status) ([]client.Task, error) {
			if status == model.StatusToDo {
				return []client.Task{dragged}, nil
			}
			return nil, nil
		},
		editTask: func(_ context.Context, _ string, _ client.TaskInput) (*client.Task, error) {
			return nil, &client.APIError{Status: 403, Message: "You do not have permission to update this task"}
		},
	}
	ctrl := board.NewController(api)
	assert.Nil(t, ctrl.Load(context.Background()))

	_, err := ctrl.Move(context.Background(), dragged, model.StatusCompleted)

	assert.Error(t, err)
	state := ctrl.Snapshot()
	assert.Len(t, state[model.StatusToDo], 1)
	assert.Empty(t, state[model.StatusCompleted])
}

func TestDelete_RemovesAfterConfirmation(t *testing.T) {
	target := task(uuid.NewString(), model.StatusCompleted)
	api := &fakeAPI{
		tasksByStatus: func(_ context.Context, status model.Status) ([]client.Task, error) {
			if status == model.StatusCompleted {
				return []client.Task{target}, nil
			}
			return nil, nil
		},
		deleteTask: func(_ context.Context, _ string) error {
			return nil
		},
	}
	ctrl := board.NewController(api)
	assert.Nil(t, ctrl.Load(context.Background()))

	err := ctrl.Delete(context.Background(), model.StatusCompleted, target.ID)

	assert.NoError(t, err)
	assert.Empty(t, ctrl.Snapshot()[model.StatusCompleted])
}

func TestDelete_FailureLeavesTask(t *testing.T) {
	target := task(uuid.NewString(), model.StatusCompleted)
	api := &fakeAPI{
		tasksByStatus: func(_ context.Context, status model.Status) ([]client.Task, error) {
			if status == model.StatusCompleted {
				return []client.Task{target}, nil
			}
			return nil, nil
		},
		deleteTask: func(_ context.Context, _ string) error {
			return &client.APIError{Status: 404, Message: "Task not found"}
		},
	}
	ctrl := board.NewController(api)
	assert.Nil(t, ctrl.Load(context.Background()))

	err := ctrl.Delete(context.Background(), model.StatusCompleted, target.ID)

	assert.Error(t, err)
	assert.Len(t, ctrl.Snapshot()[model.StatusCompleted], 1)
}
