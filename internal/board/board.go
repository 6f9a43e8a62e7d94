// Package board holds the client-side board state: one ordered bucket
// of tasks per status column, reconciled against server responses.
package board

import (
	"taskboard/internal/client"
	"taskboard/internal/model"
)

// State maps each of the four columns to its ordered task list.
type State map[model.Status][]client.Task

// NewState returns a state with an empty bucket per column.
func NewState() State {
	s := make(State, len(model.Statuses()))
	for _, status := range model.Statuses() {
		s[status] = []client.Task{}
	}
	return s
}

// Op is the kind of task change being reconciled.
type Op int

const (
	Created Op = iota
	Updated
	Deleted
)

// Delta is one confirmed task change. Task carries the canonical server
// state; FiledUnder is the column the client had the task in before the
// change (it differs from Task.Status after a drag between columns).
type Delta struct {
	Op         Op
	Task       client.Task
	FiledUnder model.Status
}

// Apply reconciles a delta into a new state. The input state is never
// mutated.
func Apply(s State, d Delta) State {
	out := cloneState(s)

	switch d.Op {
	case Created:
		// Appended only after the server responds; until then there is
		// no id to key the card on.
		out[d.Task.Status] = append(out[d.Task.Status], d.Task)
	case Updated:
		if d.FiledUnder != d.Task.Status {
			out[d.FiledUnder] = removeByID(out[d.FiledUnder], d.Task.ID)
			out[d.Task.Status] = append(out[d.Task.Status], d.Task)
		} else {
			out[d.Task.Status] = replaceByID(out[d.Task.Status], d.Task)
		}
	case Deleted:
		out[d.FiledUnder] = removeByID(out[d.FiledUnder], d.Task.ID)
	}

	return out
}

func cloneState(s State) State {
	out := make(State, len(s))
	for status, tasks := range s {
		bucket := make([]client.Task, len(tasks))
		copy(bucket, tasks)
		out[status] = bucket
	}
	return out
}

func removeByID(tasks []client.Task, id string) []client.Task {
	out := make([]client.Task, 0, len(tasks))
	for _, t := range tasks {
		if t.ID != id {
			out = append(out, t)
		}
	}
	return out
}

func replaceByID(tasks []client.Task, updated client.Task) []client.Task {
	out := make([]client.Task, len(tasks))
	copy(out, tasks)
	for i, t := range out {
		if t.ID == updated.ID {
			out[i] = updated
		}
	}
	return out
}
