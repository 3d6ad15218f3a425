package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ly3848/task-manager/internal/middleware"
	"github.com/ly3848/task-manager/internal/models"
	"github.com/ly3848/task-manager/internal/services"
	"github.com/ly3848/task-manager/internal/store"
)

// RegisterRoutes wires every API route onto the router.
func RegisterRoutes(r *gin.Engine, data *store.DataManager, authService *services.AuthService, reports *services.ReportService) {
	authHandler := NewAuthHandler(authService, data)
	userHandler := NewUserHandler(data)
	taskHandler := NewTaskHandler(data)
	projectHandler := NewProjectHandler(data)
	reportHandler := NewReportHandler(reports)

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"message": "Task Manager API is running",
		})
	})

	api := r.Group("/api")
	{
		// Auth routes (public)
		auth := api.Group("/auth")
		{
			auth.POST("/signup", authHandler.Signup)
			auth.POST("/login", authHandler.Login)
			auth.POST("/logout", authHandler.Logout)
			auth.GET("/me", middleware.RequireAuth(), authHandler.GetCurrentUser)
		}

		// User routes (protected; mutations admin only)
		users := api.Group("/users")
		users.Use(middleware.RequireAuth())
		{
			users.GET("", userHandler.ListUsers)
			users.GET("/:id", middleware.RequireUser(data), userHandler.GetUser)
			users.GET("/:id/tasks", middleware.RequireUser(data), userHandler.GetUserTasks)
			users.POST("", middleware.RequireRole(data, models.RoleAdmin), userHandler.CreateUser)
			users.POST("/:id/activate", middleware.RequireRole(data, models.RoleAdmin), middleware.RequireUser(data), userHandler.ActivateUser)
			users.POST("/:id/deactivate", middleware.RequireRole(data, models.RoleAdmin), middleware.RequireUser(data), userHandler.DeactivateUser)
			users.DELETE("/:id", middleware.RequireRole(data, models.RoleAdmin), middleware.RequireUser(data), userHandler.DeleteUser)
		}

		// Task routes (protected)
		tasks := api.Group("/tasks")
		tasks.Use(middleware.RequireAuth())
		{
			tasks.GET("", taskHandler.ListTasks)
			tasks.POST("", taskHandler.CreateTask)
			tasks.GET("/:id", middleware.RequireTask(data), taskHandler.GetTask)
			tasks.PATCH("/:id", middleware.RequireTask(data), taskHandler.UpdateTask)
			tasks.DELETE("/:id", middleware.RequireTask(data), taskHandler.DeleteTask)
			tasks.POST("/:id/assign", middleware.RequireTask(data), taskHandler.AssignTask)
			tasks.POST("/:id/start", middleware.RequireTask(data), taskHandler.StartTask)
			tasks.POST("/:id/complete", middleware.RequireTask(data), taskHandler.CompleteTask)
			tasks.POST("/:id/cancel", middleware.RequireTask(data), taskHandler.CancelTask)
		}

		// Project routes (protected)
		projects := api.Group("/projects")
		projects.Use(middleware.RequireAuth())
		{
			projects.GET("", projectHandler.ListProjects)
			projects.POST("", projectHandler.CreateProject)
			projects.GET("/:id", middleware.RequireProject(data), projectHandler.GetProject)
			projects.PATCH("/:id", middleware.RequireProject(data), projectHandler.UpdateProject)
			projects.DELETE("/:id", middleware.RequireProject(data), projectHandler.DeleteProject)
			projects.GET("/:id/tasks", middleware.RequireProject(data), projectHandler.GetProjectTasks)
			projects.POST("/:id/tasks", middleware.RequireProject(data), projectHandler.AddTask)
			projects.DELETE("/:id/tasks/:task_id", middleware.RequireProject(data), projectHandler.RemoveTask)
			projects.POST("/:id/members", middleware.RequireProject(data), projectHandler.AddMember)
			projects.DELETE("/:id/members/:user_id", middleware.RequireProject(data), projectHandler.RemoveMember)
		}

		// Report routes (protected)
		reportsGroup := api.Group("/reports")
		reportsGroup.Use(middleware.RequireAuth())
		{
			reportsGroup.GET("/users", reportHandler.UserReport)
			reportsGroup.GET("/tasks", reportHandler.TaskReport)
			reportsGroup.GET("/projects", reportHandler.ProjectReport)
		}
	}
}
