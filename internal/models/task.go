package models

import (
	"errors"
	"fmt"
	"time"
)

type TaskStatus string

const (
	TaskStatusPending    TaskStatus = "pending"
	TaskStatusInProgress TaskStatus = "in_progress"
	TaskStatusCompleted  TaskStatus = "completed"
	TaskStatusCancelled  TaskStatus = "cancelled"
)

type Priority int

const (
	PriorityLow Priority = iota + 1
	PriorityMedium
	PriorityHigh
	PriorityUrgent
)

// Name returns the serialized label of the priority.
func (p Priority) Name() string {
	switch p {
	case PriorityLow:
		return "LOW"
	case PriorityMedium:
		return "MEDIUM"
	case PriorityHigh:
		return "HIGH"
	case PriorityUrgent:
		return "URGENT"
	default:
		return "MEDIUM"
	}
}

// ParsePriority maps a numeric value to a Priority, falling back to
// PriorityMedium for values outside 1-4.
func ParsePriority(value int) Priority {
	if value < int(PriorityLow) || value > int(PriorityUrgent) {
		return PriorityMedium
	}
	return Priority(value)
}

// ErrInvalidTransition reports a task status change not permitted from the
// current status. Completed and cancelled are terminal.
var ErrInvalidTransition = errors.New("invalid status transition")

type Task struct {
	ID          uint64
	Title       string
	Description string
	Priority    Priority
	AssignedTo  *uint64
	Status      TaskStatus
	DueDate     *time.Time
	CompletedAt *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// NewTask builds a pending task with the given ID. IDs are assigned by the
// data manager.
func NewTask(id uint64, title, description string, priority Priority, assignedTo *uint64) *Task {
	now := time.Now()
	return &Task{
		ID:          id,
		Title:       title,
		Description: description,
		Priority:    priority,
		AssignedTo:  assignedTo,
		Status:      TaskStatusPending,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

// Assign points the task at a user. Legal in any status; the referenced
// user is not resolved here and may not exist.
func (t *Task) Assign(userID uint64) {
	t.AssignedTo = &userID
	t.UpdatedAt = time.Now()
}

// Start moves a pending task to in_progress.
func (t *Task) Start() error {
	if t.Status != TaskStatusPending {
		return fmt.Errorf("%w: cannot start task in status %q", ErrInvalidTransition, t.Status)
	}
	t.Status = TaskStatusInProgress
	t.UpdatedAt = time.Now()
	return nil
}

// Complete moves a pending or in_progress task to completed and stamps
// CompletedAt.
func (t *Task) Complete() error {
	if t.Status != TaskStatusPending && t.Status != TaskStatusInProgress {
		return fmt.Errorf("%w: cannot complete task in status %q", ErrInvalidTransition, t.Status)
	}
	now := time.Now()
	t.Status = TaskStatusCompleted
	t.CompletedAt = &now
	t.UpdatedAt = now
	return nil
}

// Cancel moves a pending or in_progress task to cancelled.
func (t *Task) Cancel() error {
	if t.Status != TaskStatusPending && t.Status != TaskStatusInProgress {
		return fmt.Errorf("%w: cannot cancel task in status %q", ErrInvalidTransition, t.Status)
	}
	t.Status = TaskStatusCancelled
	t.UpdatedAt = time.Now()
	return nil
}

// SetDueDate replaces the due date. Dates in the past are accepted.
func (t *Task) SetDueDate(due time.Time) {
	t.DueDate = &due
	t.UpdatedAt = time.Now()
}
