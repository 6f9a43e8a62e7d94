package model_test

import (
	"testing"

	"taskboard/internal/model"

	"github.com/stretchr/testify/assert"
)

func TestParseStatus_AcceptsTheFourColumns(t *testing.T) {
	for _, raw := range []string{"To-Do", "In-Progress", "Under-Review", "Completed"} {
		status, err := model.ParseStatus(raw)

		assert.NoError(t, err)
		assert.Equal(t, model.Status(raw), status)
		assert.True(t, status.Valid())
	}
}

func TestParseStatus_RejectsUnknownValues(t *testing.T) {
	for _, raw := range []string{"Archived", "todo", "TO-DO", "", "Done"} {
		_, err := model.ParseStatus(raw)

		assert.Error(t, err, "status %q must be rejected", raw)
	}
}

func TestStatuses_BoardOrder(t *testing.T) {
	assert.Equal(t, []model.Status{
		model.StatusToDo,
		model.StatusInProgress,
		model.StatusUnderReview,
		model.StatusCompleted,
	}, model.Statuses())
}

func TestParsePriority(t *testing.T) {
	for _, raw := range []string{"Low", "Medium", "Urgent"} {
		priority, err := model.ParsePriority(raw)

		assert.NoError(t, err)
		assert.True(t, priority.Valid())
	}

	_, err := model.ParsePriority("Critical")
	assert.Error(t, err)
}
