package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ly3848/task-manager/internal/dto"
	apierrors "github.com/ly3848/task-manager/internal/errors"
	"github.com/ly3848/task-manager/internal/middleware"
	"github.com/ly3848/task-manager/internal/models"
	"github.com/ly3848/task-manager/internal/store"
	"github.com/ly3848/task-manager/internal/utils"
	"go.uber.org/zap"
)

// UserHandler coordinates user management HTTP handlers.
type UserHandler struct {
	data *store.DataManager
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(data *store.DataManager) *UserHandler {
	return &UserHandler{data: data}
}

// ListUsers returns all registered users in insertion order.
func (h *UserHandler) ListUsers(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"users": dto.ToUserDTOs(h.data.GetAllUsers()),
	})
}

// GetUser returns the user loaded by RequireUser.
func (h *UserHandler) GetUser(c *gin.Context) {
	user := contextUser(c)
	if user == nil {
		return
	}
	c.JSON(http.StatusOK, dto.ToUserDTO(user))
}

// CreateUser registers a user directly, validating formats and uniqueness
// before the create call. Admin only.
func (h *UserHandler) CreateUser(c *gin.Context) {
	type CreateUserRequest struct {
		Username string `json:"username" binding:"required"`
		Email    string `json:"email" binding:"required"`
		Role     string `json:"role"`
	}

	var req CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	if !utils.ValidUsername(req.Username) {
		apierrors.BadRequest(c, "Invalid username format")
		return
	}
	if !utils.ValidEmail(req.Email) {
		apierrors.BadRequest(c, "Invalid email format")
		return
	}

	// Uniqueness is checked here; the data manager itself does not.
	for _, existing := range h.data.GetAllUsers() {
		if existing.Username == req.Username {
			apierrors.AlreadyExists(c, "Username already exists")
			return
		}
		if existing.Email == req.Email {
			apierrors.AlreadyExists(c, "Email already exists")
			return
		}
	}

	user := h.data.CreateUser(req.Username, req.Email, models.ParseRole(req.Role))
	if adminID, ok := middleware.GetUserID(c); ok {
		zap.L().Info("user created",
			zap.Uint64("user_id", user.ID),
			zap.Uint64("created_by", adminID))
	}

	c.JSON(http.StatusCreated, dto.ToUserDTO(user))
}

// ActivateUser marks the loaded user active. Admin only.
func (h *UserHandler) ActivateUser(c *gin.Context) {
	user := contextUser(c)
	if user == nil {
		return
	}

	user.Activate()
	zap.L().Info("user activated", zap.Uint64("user_id", user.ID))
	c.JSON(http.StatusOK, dto.ToUserDTO(user))
}

// DeactivateUser marks the loaded user inactive. Admin only.
func (h *UserHandler) DeactivateUser(c *gin.Context) {
	user := contextUser(c)
	if user == nil {
		return
	}

	user.Deactivate()
	zap.L().Info("user deactivated", zap.Uint64("user_id", user.ID))
	c.JSON(http.StatusOK, dto.ToUserDTO(user))
}

// DeleteUser removes a user. Tasks assigned to the user keep its ID; no
// cascade happens. Admin only.
func (h *UserHandler) DeleteUser(c *gin.Context) {
	user := contextUser(c)
	if user == nil {
		return
	}

	if err := h.data.DeleteUser(user.ID); err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			apierrors.NotFound(c, "User not found")
			return
		}
		apierrors.InternalError(c, "Failed to delete user")
		return
	}

	zap.L().Info("user deleted", zap.Uint64("user_id", user.ID))
	c.JSON(http.StatusOK, gin.H{
		"message": "User deleted successfully",
	})
}

// GetUserTasks returns all tasks assigned to the loaded user.
func (h *UserHandler) GetUserTasks(c *gin.Context) {
	user := contextUser(c)
	if user == nil {
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"tasks": dto.ToTaskDTOs(h.data.GetUserTasks(user.ID)),
	})
}

func contextUser(c *gin.Context) *models.User {
	value, exists := c.Get(middleware.ContextKeyUser)
	if !exists {
		apierrors.InternalError(c, "User not found in context")
		return nil
	}
	user, ok := value.(*models.User)
	if !ok {
		apierrors.InternalError(c, "Invalid user data")
		return nil
	}
	return user
}
