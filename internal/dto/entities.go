// Package dto defines the serialized form of every entity. Field names and
// value encodings are a compatibility contract: timestamps render as
// ISO-8601 strings or null, roles as lowercase labels, priorities as
// uppercase names, and references as the referenced entity's ID.
package dto

import (
	"time"

	"github.com/ly3848/task-manager/internal/models"
)

// TimeLayout renders timestamps with second precision and no zone suffix.
const TimeLayout = "2006-01-02T15:04:05"

// FormatTime renders a timestamp in the serialization layout.
func FormatTime(t time.Time) string {
	return t.Format(TimeLayout)
}

func formatTimePtr(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format(TimeLayout)
	return &s
}

// UserDTO represents a user in API responses.
type UserDTO struct {
	ID        uint64  `json:"id"`
	Username  string  `json:"username"`
	Email     string  `json:"email"`
	Role      string  `json:"role"`
	IsActive  bool    `json:"is_active"`
	LastLogin *string `json:"last_login"`
	CreatedAt string  `json:"created_at"`
	UpdatedAt string  `json:"updated_at"`
}

// TaskDTO represents a task in API responses.
type TaskDTO struct {
	ID          uint64  `json:"id"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Priority    string  `json:"priority"`
	AssignedTo  *uint64 `json:"assigned_to"`
	Status      string  `json:"status"`
	DueDate     *string `json:"due_date"`
	CompletedAt *string `json:"completed_at"`
	CreatedAt   string  `json:"created_at"`
	UpdatedAt   string  `json:"updated_at"`
}

// ProjectDTO represents a project in API responses. Tasks and members are
// ID lists in collection order; IDs of deleted entities stay listed.
type ProjectDTO struct {
	ID          uint64   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Tasks       []uint64 `json:"tasks"`
	Members     []uint64 `json:"members"`
	StartDate   string   `json:"start_date"`
	EndDate     *string  `json:"end_date"`
	CreatedAt   string   `json:"created_at"`
	UpdatedAt   string   `json:"updated_at"`
}

// ToUserDTO converts a User model to UserDTO.
func ToUserDTO(user *models.User) UserDTO {
	return UserDTO{
		ID:        user.ID,
		Username:  user.Username,
		Email:     user.Email,
		Role:      string(user.Role),
		IsActive:  user.IsActive,
		LastLogin: formatTimePtr(user.LastLogin),
		CreatedAt: FormatTime(user.CreatedAt),
		UpdatedAt: FormatTime(user.UpdatedAt),
	}
}

// ToTaskDTO converts a Task model to TaskDTO.
func ToTaskDTO(task *models.Task) TaskDTO {
	return TaskDTO{
		ID:          task.ID,
		Title:       task.Title,
		Description: task.Description,
		Priority:    task.Priority.Name(),
		AssignedTo:  task.AssignedTo,
		Status:      string(task.Status),
		DueDate:     formatTimePtr(task.DueDate),
		CompletedAt: formatTimePtr(task.CompletedAt),
		CreatedAt:   FormatTime(task.CreatedAt),
		UpdatedAt:   FormatTime(task.UpdatedAt),
	}
}

// ToProjectDTO converts a Project model to ProjectDTO.
func ToProjectDTO(project *models.Project) ProjectDTO {
	tasks := make([]uint64, len(project.Tasks))
	copy(tasks, project.Tasks)
	members := make([]uint64, len(project.Members))
	copy(members, project.Members)

	return ProjectDTO{
		ID:          project.ID,
		Name:        project.Name,
		Description: project.Description,
		Tasks:       tasks,
		Members:     members,
		StartDate:   FormatTime(project.StartDate),
		EndDate:     formatTimePtr(project.EndDate),
		CreatedAt:   FormatTime(project.CreatedAt),
		UpdatedAt:   FormatTime(project.UpdatedAt),
	}
}

// ToUserDTOs converts a slice of users.
func ToUserDTOs(users []*models.User) []UserDTO {
	out := make([]UserDTO, len(users))
	for i, user := range users {
		out[i] = ToUserDTO(user)
	}
	return out
}

// ToTaskDTOs converts a slice of tasks.
func ToTaskDTOs(tasks []*models.Task) []TaskDTO {
	out := make([]TaskDTO, len(tasks))
	for i, task := range tasks {
		out[i] = ToTaskDTO(task)
	}
	return out
}

// ToProjectDTOs converts a slice of projects.
func ToProjectDTOs(projects []*models.Project) []ProjectDTO {
	out := make([]ProjectDTO, len(projects))
	for i, project := range projects {
		out[i] = ToProjectDTO(project)
	}
	return out
}
