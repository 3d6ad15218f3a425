// Package store owns every entity collection: three id-keyed maps with
// per-kind monotonic ID counters. Iteration follows insertion order.
// Deletes do not cascade — references held elsewhere keep the deleted ID.
package store

import (
	"errors"
	"fmt"
	"sync"

	"github.com/ly3848/task-manager/internal/models"
)

var (
	ErrUserNotFound    = errors.New("user not found")
	ErrTaskNotFound    = errors.New("task not found")
	ErrProjectNotFound = errors.New("project not found")
)

// DataManager holds all users, tasks and projects in memory. A single
// RWMutex guards the maps and counters; entities themselves are not
// guarded, matching single-writer use.
type DataManager struct {
	mu sync.RWMutex

	users    map[uint64]*models.User
	tasks    map[uint64]*models.Task
	projects map[uint64]*models.Project

	userOrder    []uint64
	taskOrder    []uint64
	projectOrder []uint64

	nextUserID    uint64
	nextTaskID    uint64
	nextProjectID uint64
}

func NewDataManager() *DataManager {
	return &DataManager{
		users:         make(map[uint64]*models.User),
		tasks:         make(map[uint64]*models.Task),
		projects:      make(map[uint64]*models.Project),
		nextUserID:    1,
		nextTaskID:    1,
		nextProjectID: 1,
	}
}

// CreateUser allocates the next user ID and registers the user. No
// uniqueness check is made here; callers that need unique usernames or
// emails must check before calling.
func (m *DataManager) CreateUser(username, email string, role models.Role) *models.User {
	m.mu.Lock()
	defer m.mu.Unlock()

	user := models.NewUser(m.nextUserID, username, email, role)
	m.users[user.ID] = user
	m.userOrder = append(m.userOrder, user.ID)
	m.nextUserID++
	return user
}

// GetUser returns the user with the given ID or ErrUserNotFound.
func (m *DataManager) GetUser(id uint64) (*models.User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	user, ok := m.users[id]
	if !ok {
		return nil, fmt.Errorf("%w: id %d", ErrUserNotFound, id)
	}
	return user, nil
}

// GetAllUsers returns all users in insertion order.
func (m *DataManager) GetAllUsers() []*models.User {
	m.mu.RLock()
	defer m.mu.RUnlock()

	users := make([]*models.User, 0, len(m.userOrder))
	for _, id := range m.userOrder {
		users = append(users, m.users[id])
	}
	return users
}

// DeleteUser removes the user from the registry. Tasks assigned to the
// user keep its ID; they are left dangling on purpose.
func (m *DataManager) DeleteUser(id uint64) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.users[id]; !ok {
		return fmt.Errorf("%w: id %d", ErrUserNotFound, id)
	}
	delete(m.users, id)
	m.userOrder = removeFromOrder(m.userOrder, id)
	return nil
}

// CreateTask allocates the next task ID and registers the task.
func (m *DataManager) CreateTask(title, description string, priority models.Priority, assignedTo *uint64) *models.Task {
	m.mu.Lock()
	defer m.mu.Unlock()

	task := models.NewTask(m.nextTaskID, title, description, priority, assignedTo)
	m.tasks[task.ID] = task
	m.taskOrder = append(m.taskOrder, task.ID)
	m.nextTaskID++
	return task
}

// GetTask returns the task with the given ID or ErrTaskNotFound.
func (m *DataManager) GetTask(id uint64) (*models.Task, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	task, ok := m.tasks[id]
	if !ok {
		return nil, fmt.Errorf("%w: id %d", ErrTaskNotFound, id)
	}
	return task, nil
}

// GetAllTasks returns all tasks in insertion order.
func (m *DataManager) GetAllTasks() []*models.Task {
	m.mu.RLock()
	defer m.mu.RUnlock()

	tasks := make([]*models.Task, 0, len(m.taskOrder))
	for _, id := range m.taskOrder {
		tasks = append(tasks, m.tasks[id])
	}
	return tasks
}

// DeleteTask removes the task from the registry. Projects referencing the
// task keep its ID; they are left dangling on purpose.
func (m *DataManager) DeleteTask(id uint64) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.tasks[id]; !ok {
		return fmt.Errorf("%w: id %d", ErrTaskNotFound, id)
	}
	delete(m.tasks, id)
	m.taskOrder = removeFromOrder(m.taskOrder, id)
	return nil
}

// CreateProject allocates the next project ID and registers the project.
func (m *DataManager) CreateProject(name, description string) *models.Project {
	m.mu.Lock()
	defer m.mu.Unlock()

	project := models.NewProject(m.nextProjectID, name, description)
	m.projects[project.ID] = project
	m.projectOrder = append(m.projectOrder, project.ID)
	m.nextProjectID++
	return project
}

// GetProject returns the project with the given ID or ErrProjectNotFound.
func (m *DataManager) GetProject(id uint64) (*models.Project, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	project, ok := m.projects[id]
	if !ok {
		return nil, fmt.Errorf("%w: id %d", ErrProjectNotFound, id)
	}
	return project, nil
}

// GetAllProjects returns all projects in insertion order.
func (m *DataManager) GetAllProjects() []*models.Project {
	m.mu.RLock()
	defer m.mu.RUnlock()

	projects := make([]*models.Project, 0, len(m.projectOrder))
	for _, id := range m.projectOrder {
		projects = append(projects, m.projects[id])
	}
	return projects
}

// DeleteProject removes the project from the registry.
func (m *DataManager) DeleteProject(id uint64) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.projects[id]; !ok {
		return fmt.Errorf("%w: id %d", ErrProjectNotFound, id)
	}
	delete(m.projects, id)
	m.projectOrder = removeFromOrder(m.projectOrder, id)
	return nil
}

// GetUserTasks returns all tasks assigned to the user, in insertion order.
// The user itself is not required to exist.
func (m *DataManager) GetUserTasks(userID uint64) []*models.Task {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var tasks []*models.Task
	for _, id := range m.taskOrder {
		task := m.tasks[id]
		if task.AssignedTo != nil && *task.AssignedTo == userID {
			tasks = append(tasks, task)
		}
	}
	return tasks
}

// GetProjectTasks returns a read-only copy of the project's task ID list.
// IDs of deleted tasks remain in the list until removed explicitly.
func (m *DataManager) GetProjectTasks(project *models.Project) []uint64 {
	m.mu.RLock()
	defer m.mu.RUnlock()

	ids := make([]uint64, len(project.Tasks))
	copy(ids, project.Tasks)
	return ids
}

func removeFromOrder(order []uint64, id uint64) []uint64 {
	out := order[:0]
	for _, existing := range order {
		if existing != id {
			out = append(out, existing)
		}
	}
	return out
}
