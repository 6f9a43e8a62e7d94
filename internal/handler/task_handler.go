package handler

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"taskboard/internal/middleware"
	"taskboard/internal/model"
	"taskboard/internal/repository"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type TaskHandler struct {
	tasks repository.TaskRepositoryInterface
}

func NewTaskHandler(tasks repository.TaskRepositoryInterface) *TaskHandler {
	return &TaskHandler{tasks: tasks}
}

type TaskCreateRequest struct {
	Title       string     `json:"title" binding:"required"`
	Description string     `json:"description"`
	Status      string     `json:"status" binding:"required"`
	Priority    *string    `json:"priority"`
	Deadline    *time.Time `json:"deadline"`
}

// TaskEditRequest carries partial updates; only supplied fields change.
// A status change here is also the drag-and-drop path: dropping a card
// into another column arrives as an edit with the new status.
type TaskEditRequest struct {
	Title       *string    `json:"title"`
	Description *string    `json:"description"`
	Status      *string    `json:"status"`
	Priority    *string    `json:"priority"`
	Deadline    *time.Time `json:"deadline"`
}

type TaskResponse struct {
	ID          string          `json:"id"`
	Title       string          `json:"title"`
	Description string          `json:"description,omitempty"`
	Status      model.Status    `json:"status"`
	Priority    *model.Priority `json:"priority,omitempty"`
	Deadline    *string         `json:"deadline,omitempty"`
	UserID      string          `json:"user_id"`
}

func newTaskResponse(task *model.Task) TaskResponse {
	resp := TaskResponse{
		ID:          task.ID.String(),
		Title:       task.Title,
		Description: task.Description,
		Status:      task.Status,
		Priority:    task.Priority,
		UserID:      task.UserID.String(),
	}
	if task.Deadline != nil {
		deadline := task.Deadline.Format(time.RFC3339)
		resp.Deadline = &deadline
	}
	return resp
}

func newTaskListResponse(tasks []model.Task) []TaskResponse {
	resp := make([]TaskResponse, 0, len(tasks))
	for i := range tasks {
		resp = append(resp, newTaskResponse(&tasks[i]))
	}
	return resp
}

// Create persists a new task in the column the caller chose. Ownership
// is taken from the verified session, never from the payload.
func (h *TaskHandler) Create(c *gin.Context) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		errorResponse(c, http.StatusUnauthorized, "Not authenticated")
		return
	}

	var req TaskCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errorResponse(c, http.StatusBadRequest, "Invalid request")
		return
	}

	if strings.TrimSpace(req.Title) == "" {
		errorResponse(c, http.StatusBadRequest, "Title must not be empty")
		return
	}

	status, err := model.ParseStatus(req.Status)
	if err != nil {
		errorResponse(c, http.StatusBadRequest, "Invalid status")
		return
	}

	var priority *model.Priority
	if req.Priority != nil {
		p, err := model.ParsePriority(*req.Priority)
		if err != nil {
			errorResponse(c, http.StatusBadRequest, "Invalid priority")
			return
		}
		priority = &p
	}

	task := &model.Task{
		ID:          uuid.New(),
		Title:       req.Title,
		Description: req.Description,
		Status:      status,
		Priority:    priority,
		Deadline:    req.Deadline,
		UserID:      userID,
	}

	if err := h.tasks.Create(c.Request.Context(), task); err != nil {
		errorResponse(c, http.StatusInternalServerError, "Failed to create task")
		return
	}

	c.JSON(http.StatusCreated, newTaskResponse(task))
}

// Edit applies a partial update after the fetch-then-compare ownership
// check. The record is re-fetched on every call; the owner embedded in
// the payload, if any, is ignored.
func (h *TaskHandler) Edit(c *gin.Context) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		errorResponse(c, http.StatusUnauthorized, "Not authenticated")
		return
	}

	taskID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		errorResponse(c, http.StatusBadRequest, "Invalid task ID format")
		return
	}

	var req TaskEditRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errorResponse(c, http.StatusBadRequest, "Invalid request")
		return
	}

	task, err := h.tasks.GetByID(c.Request.Context(), taskID)
	if err != nil {
		if errors.Is(err, repository.ErrTaskNotFound) {
			errorResponse(c, http.StatusNotFound, "Task not found")
			return
		}
		errorResponse(c, http.StatusInternalServerError, "Failed to retrieve task")
		return
	}

	if task.UserID != userID {
		errorResponse(c, http.StatusForbidden, "You do not have permission to update this task")
		return
	}

	if req.Title != nil {
		if strings.TrimSpace(*req.Title) == "" {
			errorResponse(c, http.StatusBadRequest, "Title must not be empty")
			return
		}
		task.Title = *req.Title
	}
	if req.Description != nil {
		task.Description = *req.Description
	}
	if req.Status != nil {
		status, err := model.ParseStatus(*req.Status)
		if err != nil {
			errorResponse(c, http.StatusBadRequest, "Invalid status")
			return
		}
		task.Status = status
	}
	if req.Priority != nil {
		priority, err := model.ParsePriority(*req.Priority)
		if err != nil {
			errorResponse(c, http.StatusBadRequest, "Invalid priority")
			return
		}
		task.Priority = &priority
	}
	if req.Deadline != nil {
		task.Deadline = req.Deadline
	}

	if err := h.tasks.Update(c.Request.Context(), task); err != nil {
		errorResponse(c, http.StatusInternalServerError, "Failed to update task")
		return
	}

	c.JSON(http.StatusOK, newTaskResponse(task))
}

// Delete removes a task after the same fetch-then-compare check as Edit.
// A second delete of the same id sees 404.
func (h *TaskHandler) Delete(c *gin.Context) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		errorResponse(c, http.StatusUnauthorized, "Not authenticated")
		return
	}

	taskID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		errorResponse(c, http.StatusBadRequest, "Invalid task ID format")
		return
	}

	task, err := h.tasks.GetByID(c.Request.Context(), taskID)
	if err != nil {
		if errors.Is(err, repository.ErrTaskNotFound) {
			errorResponse(c, http.StatusNotFound, "Task not found")
			return
		}
		errorResponse(c, http.StatusInternalServerError, "Failed to retrieve task")
		return
	}

	if task.UserID != userID {
		errorResponse(c, http.StatusForbidden, "You do not have permission to delete this task")
		return
	}

	if err := h.tasks.Delete(c.Request.Context(), taskID); err != nil {
		if errors.Is(err, repository.ErrTaskNotFound) {
			errorResponse(c, http.StatusNotFound, "Task not found")
			return
		}
		errorResponse(c, http.StatusInternalServerError, "Failed to delete task")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Task deleted successfully"})
}

// GetAll returns every task owned by the caller, across all columns.
func (h *TaskHandler) GetAll(c *gin.Context) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		errorResponse(c, http.StatusUnauthorized, "Not authenticated")
		return
	}

	tasks, err := h.tasks.GetByUser(c.Request.Context(), userID)
	if err != nil {
		errorResponse(c, http.StatusInternalServerError, "Failed to retrieve tasks")
		return
	}

	c.JSON(http.StatusOK, newTaskListResponse(tasks))
}

// GetByStatus returns the caller's tasks in a single column.
func (h *TaskHandler) GetByStatus(c *gin.Context) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		errorResponse(c, http.StatusUnauthorized, "Not authenticated")
		return
	}

	status, err := model.ParseStatus(c.Param("status"))
	if err != nil {
		errorResponse(c, http.StatusBadRequest, "Invalid status")
		return
	}

	tasks, err := h.tasks.GetByUserAndStatus(c.Request.Context(), userID, status)
	if err != nil {
		errorResponse(c, http.StatusInternalServerError, "Failed to retrieve tasks")
		return
	}

	c.JSON(http.StatusOK, newTaskListResponse(tasks))
}

// GetByID returns a single task. The read itself does not enforce
// ownership; every mutation re-checks it.
func (h *TaskHandler) GetByID(c *gin.Context) {
	taskID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		errorResponse(c, http.StatusBadRequest, "Invalid task ID format")
		return
	}

	task, err := h.tasks.GetByID(c.Request.Context(), taskID)
	if err != nil {
		if errors.Is(err, repository.ErrTaskNotFound) {
			errorResponse(c, http.StatusNotFound, "Task not found")
			return
		}
		errorResponse(c, http.StatusInternalServerError, "Failed to retrieve task")
		return
	}

	c.JSON(http.StatusOK, newTaskResponse(task))
}
