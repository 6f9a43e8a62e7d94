package board

import (
	"context"
	"sync"

	"taskboard/internal/client"
	"taskboard/internal/model"
)

// API is the slice of the task client the controller drives.
// *client.Client satisfies it.
type API interface {
	TasksByStatus(ctx context.Context, status model.Status) ([]client.Task, error)
	CreateTask(ctx context.Context, input client.TaskInput) (*client.Task, error)
	EditTask(ctx context.Context, id string, input client.TaskInput) (*client.Task, error)
	DeleteTask(ctx context.Context, id string) error
}

// Controller keeps the board state in sync with the server. Every
// mutation commits to local state only after the server confirms it, so
// a failed call leaves the buckets exactly as they were.
type Controller struct {
	api API

	mu    sync.Mutex
	state State
}

func NewController(api API) *Controller {
	return &Controller{
		api:   api,
		state: NewState(),
	}
}

// Snapshot returns a copy of the current buckets.
func (c *Controller) Snapshot() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return cloneState(c.state)
}

// Load fetches all four columns concurrently. Each fetch is independent:
// a failure is reported for its own column and leaves every other bucket
// intact. The returned map is nil when all columns loaded.
func (c *Controller) Load(ctx context.Context) map[model.Status]error {
	var wg sync.WaitGroup
	failures := make(map[model.Status]error)

	for _, status := range model.Statuses() {
		wg.Add(1)
		go func(status model.Status) {
			defer wg.Done()

			tasks, err := c.api.TasksByStatus(ctx, status)

			c.mu.Lock()
			defer c.mu.Unlock()
			if err != nil {
				failures[status] = err
				return
			}
			c.state[status] = tasks
		}(status)
	}

	wg.Wait()
	if len(failures) == 0 {
		return nil
	}
	return failures
}

// Create sends the new task and files the server's canonical copy under
// its returned status.
func (c *Controller) Create(ctx context.Context, input client.TaskInput) (*client.Task, error) {
	task, err := c.api.CreateTask(ctx, input)
	if err != nil {
		return nil, err
	}

	c.apply(Delta{Op: Created, Task: *task})
	return task, nil
}

// Edit updates a task. filedUnder is the column the client currently
// shows the task in; when the server returns a different status the
// task moves buckets.
func (c *Controller) Edit(ctx context.Context, filedUnder model.Status, id string, input client.TaskInput) (*client.Task, error) {
	task, err := c.api.EditTask(ctx, id, input)
	if err != nil {
		return nil, err
	}

	c.apply(Delta{Op: Updated, Task: *task, FiledUnder: filedUnder})
	return task, nil
}

// Delete removes a task from its bucket after server confirmation.
func (c *Controller) Delete(ctx context.Context, filedUnder model.Status, id string) error {
	if err := c.api.DeleteTask(ctx, id); err != nil {
		return err
	}

	c.apply(Delta{Op: Deleted, Task: client.Task{ID: id}, FiledUnder: filedUnder})
	return nil
}

// Move handles a drag-and-drop drop: dropping into the task's own
// column is a pure no-op with no network call, anything else is an edit
// with the full payload and the destination status. On failure the
// buckets stay put and the error is returned for the UI to surface.
func (c *Controller) Move(ctx context.Context, task client.Task, destination model.Status) (*client.Task, error) {
	if destination == task.Status {
		return &task, nil
	}

	input := client.TaskInput{
		Title:       task.Title,
		Description: task.Description,
		Status:      destination,
		Priority:    task.Priority,
		Deadline:    task.Deadline,
	}
	return c.Edit(ctx, task.Status, task.ID, input)
}

func (c *Controller) apply(d Delta) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.state = Apply(c.state, d)
}
