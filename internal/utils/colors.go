package utils

import "github.com/ly3848/task-manager/internal/models"

// PriorityColor maps a priority to its display color name.
func PriorityColor(p models.Priority) string {
	switch p {
	case models.PriorityLow:
		return "green"
	case models.PriorityMedium:
		return "yellow"
	case models.PriorityHigh:
		return "orange"
	case models.PriorityUrgent:
		return "red"
	default:
		return "white"
	}
}
