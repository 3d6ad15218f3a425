package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/ly3848/task-manager/internal/dto"
	apierrors "github.com/ly3848/task-manager/internal/errors"
	"github.com/ly3848/task-manager/internal/middleware"
	"github.com/ly3848/task-manager/internal/models"
	"github.com/ly3848/task-manager/internal/store"
	"github.com/ly3848/task-manager/internal/utils"
	"go.uber.org/zap"
)

// TaskHandler coordinates task HTTP handlers.
type TaskHandler struct {
	data *store.DataManager
}

// NewTaskHandler creates a new TaskHandler.
func NewTaskHandler(data *store.DataManager) *TaskHandler {
	return &TaskHandler{data: data}
}

// ListTasks returns tasks in insertion order with pagination.
// Can filter by assigned_to.
func (h *TaskHandler) ListTasks(c *gin.Context) {
	params := utils.GetPaginationParams(c)

	var tasks []*models.Task
	assignedToStr := c.Query("assigned_to")
	if assignedToStr != "" {
		assignedTo, err := strconv.ParseUint(assignedToStr, 10, 64)
		if err != nil {
			apierrors.BadRequest(c, "Invalid assigned_to")
			return
		}
		tasks = h.data.GetUserTasks(assignedTo)
	} else {
		tasks = h.data.GetAllTasks()
	}

	start, end := params.Slice(len(tasks))

	c.JSON(http.StatusOK, gin.H{
		"tasks": dto.ToTaskDTOs(tasks[start:end]),
		"pagination": utils.PaginationResponse{
			Page:  params.Page,
			Limit: params.Limit,
			Total: len(tasks),
		},
	})
}

// GetTask returns the task loaded by RequireTask. A dangling assigned_to
// ID is returned as-is; fetching the task never fails on it.
func (h *TaskHandler) GetTask(c *gin.Context) {
	task := contextTask(c)
	if task == nil {
		return
	}
	c.JSON(http.StatusOK, dto.ToTaskDTO(task))
}

// CreateTask creates a new task in pending status.
func (h *TaskHandler) CreateTask(c *gin.Context) {
	type CreateTaskRequest struct {
		Title       string     `json:"title" binding:"required"`
		Description string     `json:"description"`
		Priority    int        `json:"priority"`
		AssignedTo  *uint64    `json:"assigned_to"`
		DueDate     *time.Time `json:"due_date"`
	}

	var req CreateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	if req.AssignedTo != nil {
		if _, err := h.data.GetUser(*req.AssignedTo); err != nil {
			apierrors.NotFound(c, "Assignee not found")
			return
		}
	}

	priority := models.PriorityMedium
	if req.Priority != 0 {
		priority = models.ParsePriority(req.Priority)
	}

	task := h.data.CreateTask(req.Title, req.Description, priority, req.AssignedTo)
	if req.DueDate != nil {
		task.SetDueDate(*req.DueDate)
	}

	if userID, ok := middleware.GetUserID(c); ok {
		zap.L().Info("task created",
			zap.Uint64("task_id", task.ID),
			zap.Uint64("created_by", userID))
	}

	c.JSON(http.StatusCreated, dto.ToTaskDTO(task))
}

// UpdateTask updates title, description, priority, or due date. Only the
// fields present in the request body are touched.
func (h *TaskHandler) UpdateTask(c *gin.Context) {
	task := contextTask(c)
	if task == nil {
		return
	}

	// Parse raw JSON to detect which fields were sent
	var rawReq map[string]any
	if err := c.ShouldBindJSON(&rawReq); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	if title, ok := rawReq["title"].(string); ok {
		task.Title = title
		task.UpdatedAt = time.Now()
	}
	if description, ok := rawReq["description"].(string); ok {
		task.Description = description
		task.UpdatedAt = time.Now()
	}
	if priority, ok := rawReq["priority"].(float64); ok {
		task.Priority = models.ParsePriority(int(priority))
		task.UpdatedAt = time.Now()
	}
	if rawDue, ok := rawReq["due_date"]; ok {
		if dueStr, ok := rawDue.(string); ok {
			parsed, err := time.Parse(time.RFC3339, dueStr)
			if err != nil {
				apierrors.BadRequest(c, "Invalid due_date")
				return
			}
			task.SetDueDate(parsed)
		}
	}

	c.JSON(http.StatusOK, dto.ToTaskDTO(task))
}

// DeleteTask removes a task. Projects referencing the task keep its ID; no
// cascade happens.
func (h *TaskHandler) DeleteTask(c *gin.Context) {
	task := contextTask(c)
	if task == nil {
		return
	}

	if err := h.data.DeleteTask(task.ID); err != nil {
		if errors.Is(err, store.ErrTaskNotFound) {
			apierrors.NotFound(c, "Task not found")
			return
		}
		apierrors.InternalError(c, "Failed to delete task")
		return
	}

	zap.L().Info("task deleted", zap.Uint64("task_id", task.ID))
	c.JSON(http.StatusOK, gin.H{
		"message": "Task deleted successfully",
	})
}

// AssignTask points the task at a user. Legal in any status.
func (h *TaskHandler) AssignTask(c *gin.Context) {
	task := contextTask(c)
	if task == nil {
		return
	}

	type AssignRequest struct {
		UserID uint64 `json:"user_id" binding:"required"`
	}

	var req AssignRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	user, err := h.data.GetUser(req.UserID)
	if err != nil {
		apierrors.NotFound(c, "User not found")
		return
	}

	task.Assign(user.ID)
	zap.L().Info("task assigned",
		zap.Uint64("task_id", task.ID),
		zap.Uint64("assigned_to", user.ID))

	c.JSON(http.StatusOK, dto.ToTaskDTO(task))
}

// StartTask moves a pending task to in_progress.
func (h *TaskHandler) StartTask(c *gin.Context) {
	h.transition(c, "task started", (*models.Task).Start)
}

// CompleteTask moves a pending or in_progress task to completed.
func (h *TaskHandler) CompleteTask(c *gin.Context) {
	h.transition(c, "task completed", (*models.Task).Complete)
}

// CancelTask moves a pending or in_progress task to cancelled.
func (h *TaskHandler) CancelTask(c *gin.Context) {
	h.transition(c, "task cancelled", (*models.Task).Cancel)
}

func (h *TaskHandler) transition(c *gin.Context, event string, apply func(*models.Task) error) {
	task := contextTask(c)
	if task == nil {
		return
	}

	if err := apply(task); err != nil {
		if errors.Is(err, models.ErrInvalidTransition) {
			apierrors.InvalidTransition(c, err.Error())
			return
		}
		apierrors.InternalError(c, "Failed to update task")
		return
	}

	zap.L().Info(event, zap.Uint64("task_id", task.ID))
	c.JSON(http.StatusOK, dto.ToTaskDTO(task))
}

func contextTask(c *gin.Context) *models.Task {
	value, exists := c.Get(middleware.ContextKeyTask)
	if !exists {
		apierrors.InternalError(c, "Task not found in context")
		return nil
	}
	task, ok := value.(*models.Task)
	if !ok {
		apierrors.InternalError(c, "Invalid task data")
		return nil
	}
	return task
}
