package services

import (
	"testing"

	"github.com/ly3848/task-manager/internal/models"
	"github.com/ly3848/task-manager/internal/store"
	"github.com/stretchr/testify/require"
)

func TestTaskReportEmpty(t *testing.T) {
	reports := NewReportService(store.NewDataManager())

	report := reports.TaskReport()
	require.Equal(t, 0, report.TotalTasks)
	require.Zero(t, report.CompletionRate)
	require.Empty(t, report.StatusDistribution)
}

func TestTaskReportCompletionRate(t *testing.T) {
	data := store.NewDataManager()
	reports := NewReportService(data)

	done := data.CreateTask("done", "", models.PriorityHigh, nil)
	require.NoError(t, done.Complete())
	started := data.CreateTask("started", "", models.PriorityLow, nil)
	require.NoError(t, started.Start())
	data.CreateTask("waiting", "", models.PriorityLow, nil)

	report := reports.TaskReport()
	require.Equal(t, 3, report.TotalTasks)
	require.InDelta(t, 33.33, report.CompletionRate, 0.001)
	require.Equal(t, map[string]int{
		"completed":   1,
		"in_progress": 1,
		"pending":     1,
	}, report.StatusDistribution)
	require.Equal(t, map[string]int{
		"HIGH": 1,
		"LOW":  2,
	}, report.PriorityDistribution)
}

func TestUserReport(t *testing.T) {
	data := store.NewDataManager()
	reports := NewReportService(data)

	data.CreateUser("admin", "admin@example.com", models.RoleAdmin)
	data.CreateUser("alice", "alice@example.com", models.RoleUser)
	inactive := data.CreateUser("bob", "bob@example.com", models.RoleUser)
	inactive.Deactivate()

	report := reports.UserReport()
	require.Equal(t, 3, report.TotalUsers)
	require.Equal(t, 2, report.ActiveUsers)
	require.Equal(t, 1, report.InactiveUsers)
	require.Equal(t, map[string]int{"admin": 1, "user": 2}, report.RoleDistribution)
}

func TestProjectReportEmpty(t *testing.T) {
	reports := NewReportService(store.NewDataManager())

	report := reports.ProjectReport()
	require.Equal(t, 0, report.TotalProjects)
	require.Zero(t, report.AvgTasksPerProject)
	require.Zero(t, report.AvgMembersPerProject)
}

func TestProjectReportAverages(t *testing.T) {
	data := store.NewDataManager()
	reports := NewReportService(data)

	first := data.CreateProject("first", "")
	second := data.CreateProject("second", "")

	for i := 0; i < 3; i++ {
		task := data.CreateTask("t", "", models.PriorityLow, nil)
		first.AddTask(task.ID)
	}
	member := data.CreateUser("alice", "alice@example.com", models.RoleUser)
	first.AddMember(member.ID)
	second.AddMember(member.ID)

	report := reports.ProjectReport()
	require.Equal(t, 2, report.TotalProjects)
	require.InDelta(t, 1.5, report.AvgTasksPerProject, 0.001)
	require.InDelta(t, 1.0, report.AvgMembersPerProject, 0.001)
}
