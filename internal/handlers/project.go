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
	"go.uber.org/zap"
)

// ProjectHandler coordinates project HTTP handlers.
type ProjectHandler struct {
	data *store.DataManager
}

// NewProjectHandler creates a new ProjectHandler.
func NewProjectHandler(data *store.DataManager) *ProjectHandler {
	return &ProjectHandler{data: data}
}

// ListProjects returns all projects in insertion order.
func (h *ProjectHandler) ListProjects(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"projects": dto.ToProjectDTOs(h.data.GetAllProjects()),
	})
}

// GetProject returns the project loaded by RequireProject. Task and member
// ID lists may contain IDs of deleted entities.
func (h *ProjectHandler) GetProject(c *gin.Context) {
	project := contextProject(c)
	if project == nil {
		return
	}
	c.JSON(http.StatusOK, dto.ToProjectDTO(project))
}

// CreateProject creates a new project with the start date set to now.
func (h *ProjectHandler) CreateProject(c *gin.Context) {
	type CreateProjectRequest struct {
		Name        string `json:"name" binding:"required"`
		Description string `json:"description"`
	}

	var req CreateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	project := h.data.CreateProject(req.Name, req.Description)
	zap.L().Info("project created", zap.Uint64("project_id", project.ID))

	c.JSON(http.StatusCreated, dto.ToProjectDTO(project))
}

// UpdateProject sets the project end date.
func (h *ProjectHandler) UpdateProject(c *gin.Context) {
	project := contextProject(c)
	if project == nil {
		return
	}

	type UpdateProjectRequest struct {
		EndDate *time.Time `json:"end_date" binding:"required"`
	}

	var req UpdateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	project.SetEndDate(*req.EndDate)
	c.JSON(http.StatusOK, dto.ToProjectDTO(project))
}

// DeleteProject removes a project.
func (h *ProjectHandler) DeleteProject(c *gin.Context) {
	project := contextProject(c)
	if project == nil {
		return
	}

	if err := h.data.DeleteProject(project.ID); err != nil {
		if errors.Is(err, store.ErrProjectNotFound) {
			apierrors.NotFound(c, "Project not found")
			return
		}
		apierrors.InternalError(c, "Failed to delete project")
		return
	}

	zap.L().Info("project deleted", zap.Uint64("project_id", project.ID))
	c.JSON(http.StatusOK, gin.H{
		"message": "Project deleted successfully",
	})
}

// AddTask adds a task reference to the project. Adding a task that is
// already listed is a no-op.
func (h *ProjectHandler) AddTask(c *gin.Context) {
	project := contextProject(c)
	if project == nil {
		return
	}

	type AddTaskRequest struct {
		TaskID uint64 `json:"task_id" binding:"required"`
	}

	var req AddTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	if _, err := h.data.GetTask(req.TaskID); err != nil {
		apierrors.NotFound(c, "Task not found")
		return
	}

	if project.AddTask(req.TaskID) {
		zap.L().Info("task added to project",
			zap.Uint64("project_id", project.ID),
			zap.Uint64("task_id", req.TaskID))
	}

	c.JSON(http.StatusOK, dto.ToProjectDTO(project))
}

// RemoveTask drops a task reference from the project. Removing an absent
// ID is a no-op, so dangling IDs can be cleaned up through this endpoint.
func (h *ProjectHandler) RemoveTask(c *gin.Context) {
	project := contextProject(c)
	if project == nil {
		return
	}

	taskID, ok := parseUintParam(c, "task_id")
	if !ok {
		return
	}

	project.RemoveTask(taskID)
	c.JSON(http.StatusOK, dto.ToProjectDTO(project))
}

// AddMember adds a member reference to the project, idempotently.
func (h *ProjectHandler) AddMember(c *gin.Context) {
	project := contextProject(c)
	if project == nil {
		return
	}

	type AddMemberRequest struct {
		UserID uint64 `json:"user_id" binding:"required"`
	}

	var req AddMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	if _, err := h.data.GetUser(req.UserID); err != nil {
		apierrors.NotFound(c, "User not found")
		return
	}

	if project.AddMember(req.UserID) {
		zap.L().Info("member added to project",
			zap.Uint64("project_id", project.ID),
			zap.Uint64("user_id", req.UserID))
	}

	c.JSON(http.StatusOK, dto.ToProjectDTO(project))
}

// RemoveMember drops a member reference from the project.
func (h *ProjectHandler) RemoveMember(c *gin.Context) {
	project := contextProject(c)
	if project == nil {
		return
	}

	userID, ok := parseUintParam(c, "user_id")
	if !ok {
		return
	}

	project.RemoveMember(userID)
	c.JSON(http.StatusOK, dto.ToProjectDTO(project))
}

// GetProjectTasks resolves the project's task list. Dangling IDs are
// reported separately rather than dropped silently.
func (h *ProjectHandler) GetProjectTasks(c *gin.Context) {
	project := contextProject(c)
	if project == nil {
		return
	}

	ids := h.data.GetProjectTasks(project)
	tasks := make([]dto.TaskDTO, 0, len(ids))
	var dangling []uint64
	for _, id := range ids {
		task, err := h.data.GetTask(id)
		if err != nil {
			dangling = append(dangling, id)
			continue
		}
		tasks = append(tasks, dto.ToTaskDTO(task))
	}

	c.JSON(http.StatusOK, gin.H{
		"tasks":    tasks,
		"dangling": dangling,
	})
}

func parseUintParam(c *gin.Context, name string) (uint64, bool) {
	value, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil {
		apierrors.BadRequest(c, "Invalid "+name)
		return 0, false
	}
	return value, true
}

func contextProject(c *gin.Context) *models.Project {
	value, exists := c.Get(middleware.ContextKeyProject)
	if !exists {
		apierrors.InternalError(c, "Project not found in context")
		return nil
	}
	project, ok := value.(*models.Project)
	if !ok {
		apierrors.InternalError(c, "Invalid project data")
		return nil
	}
	return project
}
