package services

import (
	"math"
	"time"

	"github.com/ly3848/task-manager/internal/dto"
	"github.com/ly3848/task-manager/internal/models"
	"github.com/ly3848/task-manager/internal/store"
)

// ReportService computes read-only aggregate statistics over the data
// manager's collections.
type ReportService struct {
	data *store.DataManager
}

// NewReportService creates a new ReportService.
func NewReportService(data *store.DataManager) *ReportService {
	return &ReportService{data: data}
}

// UserReport counts users by activity and role.
func (s *ReportService) UserReport() dto.UserReport {
	users := s.data.GetAllUsers()

	active := 0
	roleDistribution := make(map[string]int)
	for _, user := range users {
		if user.IsActive {
			active++
		}
		roleDistribution[string(user.Role)]++
	}

	return dto.UserReport{
		TotalUsers:       len(users),
		ActiveUsers:      active,
		InactiveUsers:    len(users) - active,
		RoleDistribution: roleDistribution,
		GeneratedAt:      dto.FormatTime(time.Now()),
	}
}

// TaskReport counts tasks by status and priority and computes the
// completion rate as a percentage. Zero tasks yields a zero rate.
func (s *ReportService) TaskReport() dto.TaskReport {
	tasks := s.data.GetAllTasks()

	statusDistribution := make(map[string]int)
	priorityDistribution := make(map[string]int)
	for _, task := range tasks {
		statusDistribution[string(task.Status)]++
		priorityDistribution[task.Priority.Name()]++
	}

	completionRate := 0.0
	if len(tasks) > 0 {
		completed := statusDistribution[string(models.TaskStatusCompleted)]
		completionRate = round2(float64(completed) / float64(len(tasks)) * 100)
	}

	return dto.TaskReport{
		TotalTasks:           len(tasks),
		StatusDistribution:   statusDistribution,
		PriorityDistribution: priorityDistribution,
		CompletionRate:       completionRate,
		GeneratedAt:          dto.FormatTime(time.Now()),
	}
}

// ProjectReport averages task and member counts across projects. Zero
// projects yields zero averages.
func (s *ReportService) ProjectReport() dto.ProjectReport {
	projects := s.data.GetAllProjects()

	avgTasks := 0.0
	avgMembers := 0.0
	if len(projects) > 0 {
		totalTasks := 0
		totalMembers := 0
		for _, project := range projects {
			totalTasks += len(project.Tasks)
			totalMembers += len(project.Members)
		}
		avgTasks = round2(float64(totalTasks) / float64(len(projects)))
		avgMembers = round2(float64(totalMembers) / float64(len(projects)))
	}

	return dto.ProjectReport{
		TotalProjects:        len(projects),
		AvgTasksPerProject:   avgTasks,
		AvgMembersPerProject: avgMembers,
		GeneratedAt:          dto.FormatTime(time.Now()),
	}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
