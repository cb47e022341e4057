package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"taskmanager/internal/repository"
	"taskmanager/internal/task"
)

type TaskHandler struct {
	tasks TaskService
}

func NewTaskHandler(tasks TaskService) *TaskHandler {
	return &TaskHandler{tasks: tasks}
}

// TaskRequest is the body of task create and update calls. Absent fields
// stay nil so an update can tell them apart from empty strings.
type TaskRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Assignee    *string `json:"assignee"`
	DueDate     *string `json:"due_date"`
	Priority    *string `json:"priority"`
	Status      *string `json:"status"`
	Comments    *string `json:"comments"`
}

func (r TaskRequest) toUpdate() (task.UpdateRequest, error) {
	due, err := r.dueDate()
	if err != nil {
		return task.UpdateRequest{}, err
	}
	return task.UpdateRequest{
		Title:       r.Title,
		Description: r.Description,
		Assignee:    r.Assignee,
		DueDate:     due,
		Priority:    r.Priority,
		Status:      r.Status,
		Comments:    r.Comments,
	}, nil
}

func (r TaskRequest) toCreate() (task.CreateRequest, error) {
	due, err := r.dueDate()
	if err != nil {
		return task.CreateRequest{}, err
	}
	return task.CreateRequest{
		Title:       deref(r.Title),
		Description: deref(r.Description),
		Assignee:    deref(r.Assignee),
		DueDate:     due,
		Priority:    deref(r.Priority),
		Status:      deref(r.Status),
		Comments:    deref(r.Comments),
	}, nil
}

func (r TaskRequest) dueDate() (*time.Time, error) {
	if r.DueDate == nil {
		return nil, nil
	}
	return task.ParseDueDate(*r.DueDate)
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// List returns every task with its comment count
func (h *TaskHandler) List(c *gin.Context) {
	tasks, err := h.tasks.List(c.Request.Context())
	if err != nil {
		logError(c, "Error fetching tasks", err)
		c.String(http.StatusInternalServerError, "Error fetching tasks")
		return
	}

	c.JSON(http.StatusOK, tasks)
}

// Get returns a single task
func (h *TaskHandler) Get(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		c.String(http.StatusBadRequest, "Invalid task ID")
		return
	}

	t, err := h.tasks.Get(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrTaskNotFound) {
			c.String(http.StatusNotFound, "Task not found")
			return
		}
		logError(c, "Error fetching task", err)
		c.String(http.StatusInternalServerError, "Error fetching task")
		return
	}

	c.JSON(http.StatusOK, t)
}

// Create creates a task assigned to an existing team member
func (h *TaskHandler) Create(c *gin.Context) {
	var req TaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.String(http.StatusBadRequest, "Invalid request")
		return
	}

	create, err := req.toCreate()
	if err != nil {
		c.String(http.StatusBadRequest, err.Error())
		return
	}

	t, err := h.tasks.Create(c.Request.Context(), create)
	if err != nil {
		if errors.Is(err, repository.ErrMemberNotFound) {
			c.String(http.StatusBadRequest, "Assignee not found")
			return
		}
		logError(c, "Error creating task", err)
		c.String(http.StatusInternalServerError, "Error creating task")
		return
	}

	c.JSON(http.StatusCreated, t)
}

// Update applies the changed fields of the body to a task
func (h *TaskHandler) Update(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		c.String(http.StatusBadRequest, "Invalid task ID")
		return
	}

	var req TaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.String(http.StatusBadRequest, "Invalid request")
		return
	}

	update, err := req.toUpdate()
	if err != nil {
		c.String(http.StatusBadRequest, err.Error())
		return
	}

	t, err := h.tasks.Update(c.Request.Context(), id, update)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrTaskNotFound):
			c.String(http.StatusBadRequest, "Task not found")
		case errors.Is(err, repository.ErrMemberNotFound):
			c.String(http.StatusBadRequest, "Assignee not found")
		default:
			logError(c, "Error updating task", err)
			c.String(http.StatusInternalServerError, "Error updating the task")
		}
		return
	}

	c.JSON(http.StatusOK, t)
}

// Delete removes a task and its comments
func (h *TaskHandler) Delete(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		c.String(http.StatusBadRequest, "Invalid task ID")
		return
	}

	if err := h.tasks.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, repository.ErrTaskNotFound) {
			c.String(http.StatusBadRequest, "Task not found")
			return
		}
		logError(c, "Error deleting task", err)
		c.String(http.StatusInternalServerError, "Error deleting task")
		return
	}

	c.String(http.StatusOK, "Task deleted successfully")
}

// Comments lists the comments of a task, oldest first
func (h *TaskHandler) Comments(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		c.String(http.StatusBadRequest, "Invalid task ID")
		return
	}

	comments, err := h.tasks.Comments(c.Request.Context(), id)
	if err != nil {
		logError(c, "Error fetching comments", err)
		c.String(http.StatusInternalServerError, "Error fetching comments")
		return
	}

	c.JSON(http.StatusOK, comments)
}

// ActivityLog lists the activity log of a task, oldest first
func (h *TaskHandler) ActivityLog(c *gin.Context) {
	id, ok := parseID(c, "taskId")
	if !ok {
		c.String(http.StatusBadRequest, "Invalid task ID")
		return
	}

	entries, err := h.tasks.ActivityLog(c.Request.Context(), id)
	if err != nil {
		logError(c, "Error fetching activity logs", err)
		c.String(http.StatusInternalServerError, "Error fetching activity logs")
		return
	}

	if len(entries) == 0 {
		c.String(http.StatusNotFound, "No activity logs found for this task")
		return
	}

	c.JSON(http.StatusOK, entries)
}
