package store

import (
	"testing"

	"github.com/ly3848/task-manager/internal/models"
	"github.com/stretchr/testify/require"
)

func TestCreateUserAssignsMonotonicIDs(t *testing.T) {
	m := NewDataManager()

	first := m.CreateUser("alice", "alice@example.com", models.RoleUser)
	second := m.CreateUser("bob", "bob@example.com", models.RoleAdmin)

	require.Equal(t, uint64(1), first.ID)
	require.Equal(t, uint64(2), second.ID)
}

func TestIDsAreNeverReused(t *testing.T) {
	m := NewDataManager()

	first := m.CreateUser("alice", "alice@example.com", models.RoleUser)
	require.NoError(t, m.DeleteUser(first.ID))

	next := m.CreateUser("bob", "bob@example.com", models.RoleUser)
	require.Equal(t, uint64(2), next.ID)
}

func TestGetUserNotFound(t *testing.T) {
	m := NewDataManager()

	_, err := m.GetUser(42)
	require.ErrorIs(t, err, ErrUserNotFound)
}

func TestGetReturnsSameEntity(t *testing.T) {
	m := NewDataManager()
	created := m.CreateTask("Write docs", "", models.PriorityMedium, nil)

	fetched, err := m.GetTask(created.ID)
	require.NoError(t, err)
	require.Same(t, created, fetched)
}

func TestDeleteNotFound(t *testing.T) {
	m := NewDataManager()

	require.ErrorIs(t, m.DeleteUser(1), ErrUserNotFound)
	require.ErrorIs(t, m.DeleteTask(1), ErrTaskNotFound)
	require.ErrorIs(t, m.DeleteProject(1), ErrProjectNotFound)
}

func TestGetAllPreservesInsertionOrder(t *testing.T) {
	m := NewDataManager()
	m.CreateTask("first", "", models.PriorityLow, nil)
	m.CreateTask("second", "", models.PriorityLow, nil)
	m.CreateTask("third", "", models.PriorityLow, nil)

	require.NoError(t, m.DeleteTask(2))
	m.CreateTask("fourth", "", models.PriorityLow, nil)

	var titles []string
	for _, task := range m.GetAllTasks() {
		titles = append(titles, task.Title)
	}
	require.Equal(t, []string{"first", "third", "fourth"}, titles)
}

func TestGetUserTasks(t *testing.T) {
	m := NewDataManager()
	alice := m.CreateUser("alice", "alice@example.com", models.RoleUser)
	bob := m.CreateUser("bob", "bob@example.com", models.RoleUser)

	mine := m.CreateTask("mine", "", models.PriorityLow, &alice.ID)
	m.CreateTask("theirs", "", models.PriorityLow, &bob.ID)
	m.CreateTask("nobody's", "", models.PriorityLow, nil)

	tasks := m.GetUserTasks(alice.ID)
	require.Len(t, tasks, 1)
	require.Same(t, mine, tasks[0])
}

func TestDeleteUserLeavesDanglingAssignment(t *testing.T) {
	m := NewDataManager()
	user := m.CreateUser("alice", "alice@example.com", models.RoleUser)
	task := m.CreateTask("orphaned", "", models.PriorityLow, &user.ID)

	require.NoError(t, m.DeleteUser(user.ID))

	// The task still fetches cleanly and keeps the deleted user's ID.
	fetched, err := m.GetTask(task.ID)
	require.NoError(t, err)
	require.NotNil(t, fetched.AssignedTo)
	require.Equal(t, user.ID, *fetched.AssignedTo)

	_, err = m.GetUser(*fetched.AssignedTo)
	require.ErrorIs(t, err, ErrUserNotFound)
}

func TestDeleteTaskLeavesDanglingProjectReference(t *testing.T) {
	m := NewDataManager()
	task := m.CreateTask("doomed", "", models.PriorityLow, nil)
	project := m.CreateProject("Website", "")
	project.AddTask(task.ID)

	require.NoError(t, m.DeleteTask(task.ID))

	ids := m.GetProjectTasks(project)
	require.Equal(t, []uint64{task.ID}, ids)
	_, err := m.GetTask(task.ID)
	require.ErrorIs(t, err, ErrTaskNotFound)
}

func TestGetProjectTasksReturnsCopy(t *testing.T) {
	m := NewDataManager()
	task := m.CreateTask("stable", "", models.PriorityLow, nil)
	project := m.CreateProject("Website", "")
	project.AddTask(task.ID)

	ids := m.GetProjectTasks(project)
	ids[0] = 999
	require.Equal(t, []uint64{task.ID}, project.Tasks)
}

func TestCountersAreIndependentPerKind(t *testing.T) {
	m := NewDataManager()

	user := m.CreateUser("alice", "alice@example.com", models.RoleUser)
	task := m.CreateTask("t", "", models.PriorityLow, nil)
	project := m.CreateProject("p", "")

	require.Equal(t, uint64(1), user.ID)
	require.Equal(t, uint64(1), task.ID)
	require.Equal(t, uint64(1), project.ID)
}

func TestSeed(t *testing.T) {
	m := NewDataManager()
	Seed(m)

	require.Len(t, m.GetAllUsers(), 3)
	require.Len(t, m.GetAllTasks(), 4)
	require.Len(t, m.GetAllProjects(), 2)

	admin, err := m.GetUser(1)
	require.NoError(t, err)
	require.Equal(t, "admin", admin.Username)
	require.Equal(t, models.RoleAdmin, admin.Role)

	web, err := m.GetProject(1)
	require.NoError(t, err)
	require.Len(t, web.Tasks, 3)
	require.Len(t, web.Members, 2)

	for _, task := range m.GetAllTasks() {
		require.NotNil(t, task.DueDate)
		require.Equal(t, models.TaskStatusPending, task.Status)
	}
}
