package board_test

import (
	"testing"

	"taskboard/internal/board"
	"taskboard/internal/client"
	"taskboard/internal/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func task(id string, status model.Status) client.Task {
	return client.Task{ID: id, Title: "Task " + id, Status: status}
}

func TestApply_Created(t *testing.T) {
	state := board.NewState()
	created := task(uuid.NewString(), model.StatusToDo)

	next := board.Apply(state, board.Delta{Op: board.Created, Task: created})

	assert.Len(t, next[model.StatusToDo], 1)
	assert.Equal(t, created, next[model.StatusToDo][0])
	// The input state stays untouched
	assert.Empty(t, state[model.StatusToDo])
}

func TestApply_Created_AppendsInOrder(t *testing.T) {
	state := board.NewState()
	first := task(uuid.NewString(), model.StatusToDo)
	second := task(uuid.NewString(), model.StatusToDo)

	state = board.Apply(state, board.Delta{Op: board.Created, Task: first})
	state = board.Apply(state, board.Delta{Op: board.Created, Task: second})

	assert.Equal(t, []client.Task{first, second}, state[model.StatusToDo])
}

func TestApply_Updated_SameColumn(t *testing.T) {
	original := task(uuid.NewString(), model.StatusToDo)
	state := board.Apply(board.NewState(), board.Delta{Op: board.Created, Task: original})

	edited := original
	edited.Title = "Renamed"

	next := board.Apply(state, board.Delta{
		Op:         board.Updated,
		Task:       edited,
		FiledUnder: model.StatusToDo,
	})

	assert.Len(t, next[model.StatusToDo], 1)
	assert.Equal(t, "Renamed", next[model.StatusToDo][0].Title)
}

func TestApply_Updated_MovesBuckets(t *testing.T) {
	original := task(uuid.NewString(), model.StatusToDo)
	state := board.Apply(board.NewState(), board.Delta{Op: board.Created, Task: original})

	moved := original
	moved.Status = model.StatusCompleted

	next := board.Apply(state, board.Delta{
		Op:         board.Updated,
		Task:       moved,
		FiledUnder: model.StatusToDo,
	})

	assert.Empty(t, next[model.StatusToDo])
	assert.Len(t, next[model.StatusCompleted], 1)
	assert.Equal(t, moved, next[model.StatusCompleted][0])
}

func TestApply_Updated_PreservesNeighbours(t *testing.T) {
	first := task(uuid.NewString(), model.StatusToDo)
	second := task(uuid.NewString(), model.StatusToDo)
	state := board.NewState()
	state = board.Apply(state, board.Delta{Op: board.Created, Task: first})
	state = board.Apply(state, board.Delta{Op: board.Created, Task: second})

	moved := first
	moved.Status = model.StatusInProgress

	next := board.Apply(state, board.Delta{
		Op:         board.Updated,
		Task:       moved,
		FiledUnder: model.StatusToDo,
	})

	assert.Equal(t, []client.Task{second}, next[model.StatusToDo])
	assert.Equal(t, []client.Task{moved}, next[model.StatusInProgress])
}

func TestApply_Deleted(t *testing.T) {
	target := task(uuid.NewString(), model.StatusUnderReview)
	state := board.Apply(board.NewState(), board.Delta{Op: board.Created, Task: target})

	next := board.Apply(state, board.Delta{
		Op:         board.Deleted,
		Task:       client.Task{ID: target.ID},
		FiledUnder: model.StatusUnderReview,
	})

	assert.Empty(t, next[model.StatusUnderReview])
	// The previous state still holds the task
	assert.Len(t, state[model.StatusUnderReview], 1)
}

func TestApply_Deleted_UnknownID(t *testing.T) {
	target := task(uuid.NewString(), model.StatusToDo)
	state := board.Apply(board.NewState(), board.Delta{Op: board.Created, Task: target})

	next := board.Apply(state, board.Delta{
		Op:         board.Deleted,
		Task:       client.Task{ID: uuid.NewString()},
		FiledUnder: model.StatusToDo,
	})

	assert.Equal(t, state[model.StatusToDo], next[model.StatusToDo])
}
