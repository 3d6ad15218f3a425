package middleware

import (
	"strconv"

	"github.com/gin-gonic/gin"
	apierrors "github.com/ly3848/task-manager/internal/errors"
	"github.com/ly3848/task-manager/internal/store"
)

// Context keys for entities loaded by the middleware below.
const (
	ContextKeyTask    = "task"
	ContextKeyUser    = "user"
	ContextKeyProject = "project"
)

func parseIDParam(c *gin.Context, name string) (uint64, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil {
		apierrors.BadRequest(c, "Invalid "+name)
		c.Abort()
		return 0, false
	}
	return id, true
}

// RequireTask parses the :id route parameter, loads the task into the
// context, and aborts with 404 when it does not resolve.
func RequireTask(data *store.DataManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseIDParam(c, "id")
		if !ok {
			return
		}

		task, err := data.GetTask(id)
		if err != nil {
			apierrors.NotFound(c, "Task not found")
			c.Abort()
			return
		}

		c.Set(ContextKeyTask, task)
		c.Next()
	}
}

// RequireUser parses the :id route parameter, loads the user into the
// context, and aborts with 404 when it does not resolve.
func RequireUser(data *store.DataManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseIDParam(c, "id")
		if !ok {
			return
		}

		user, err := data.GetUser(id)
		if err != nil {
			apierrors.NotFound(c, "User not found")
			c.Abort()
			return
		}

		c.Set(ContextKeyUser, user)
		c.Next()
	}
}

// RequireProject parses the :id route parameter, loads the project into
// the context, and aborts with 404 when it does not resolve.
func RequireProject(data *store.DataManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseIDParam(c, "id")
		if !ok {
			return
		}

		project, err := data.GetProject(id)
		if err != nil {
			apierrors.NotFound(c, "Project not found")
			c.Abort()
			return
		}

		c.Set(ContextKeyProject, project)
		c.Next()
	}
}
