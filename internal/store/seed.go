package store

import (
	"time"

	"github.com/ly3848/task-manager/internal/models"
)

// Seed loads the demo dataset: three users, four tasks with due dates, and
// two projects wired to them. Intended for the console demo and tests.
func Seed(m *DataManager) {
	admin := m.CreateUser("admin", "admin@example.com", models.RoleAdmin)
	regular := m.CreateUser("user1", "user1@example.com", models.RoleUser)
	guest := m.CreateUser("guest", "guest@example.com", models.RoleGuest)

	design := m.CreateTask("Design database", "Design the application database schema", models.PriorityHigh, &admin.ID)
	auth := m.CreateTask("Implement authentication", "Implement user signup and login", models.PriorityHigh, &regular.ID)
	docs := m.CreateTask("Write documentation", "Write the user manual and developer docs", models.PriorityMedium, &regular.ID)
	testing := m.CreateTask("Test the application", "Run a full functional test pass", models.PriorityLow, nil)

	now := time.Now()
	design.SetDueDate(now.AddDate(0, 0, 7))
	auth.SetDueDate(now.AddDate(0, 0, 5))
	docs.SetDueDate(now.AddDate(0, 0, 10))
	testing.SetDueDate(now.AddDate(0, 0, 3))

	web := m.CreateProject("Web application", "Build the new web application")
	mobile := m.CreateProject("Mobile application", "Build the mobile application")

	web.AddTask(design.ID)
	web.AddTask(auth.ID)
	web.AddTask(docs.ID)
	mobile.AddTask(testing.ID)

	web.AddMember(admin.ID)
	web.AddMember(regular.ID)
	mobile.AddMember(regular.ID)
	mobile.AddMember(guest.ID)
}
