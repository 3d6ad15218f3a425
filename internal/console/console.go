// Package console implements the interactive text-menu front end. Every
// domain error is printed and the loop continues; nothing here is fatal.
package console

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/ly3848/task-manager/internal/config"
	"github.com/ly3848/task-manager/internal/models"
	"github.com/ly3848/task-manager/internal/services"
	"github.com/ly3848/task-manager/internal/store"
	"github.com/ly3848/task-manager/internal/utils"
	"go.uber.org/zap"
)

// App drives the menu loop over the core services.
type App struct {
	data    *store.DataManager
	auth    *services.AuthService
	reports *services.ReportService
	config  *config.Manager

	in      *bufio.Scanner
	out     io.Writer
	running bool
}

// New creates a console app reading from in and writing to out.
func New(data *store.DataManager, auth *services.AuthService, reports *services.ReportService, cfg *config.Manager, in io.Reader, out io.Writer) *App {
	return &App{
		data:    data,
		auth:    auth,
		reports: reports,
		config:  cfg,
		in:      bufio.NewScanner(in),
		out:     out,
	}
}

// Run seeds the demo data, auto-logs-in the admin user, and loops over the
// menu until the user exits or input ends.
func (a *App) Run() {
	a.start()

	for a.running {
		a.showMenu()
		choice, ok := a.readLine("Select an option: ")
		if !ok {
			a.stop()
			return
		}

		switch choice {
		case "1":
			a.showAllUsers()
		case "2":
			a.showAllTasks()
		case "3":
			a.showAllProjects()
		case "4":
			a.createTask()
		case "5":
			a.assignTask()
		case "6":
			a.startTask()
		case "7":
			a.completeTask()
		case "8":
			a.showReports()
		case "9":
			a.userManagement()
		case "0":
			a.stop()
		default:
			fmt.Fprintln(a.out, "Invalid choice, try again")
		}
	}
}

func (a *App) start() {
	a.running = true
	zap.L().Info("application started")
	store.Seed(a.data)

	fmt.Fprintf(a.out, "Welcome to %s v%s\n", a.config.AppName(), a.config.Version())
	fmt.Fprintln(a.out, "Sample data loaded")

	if user, err := a.auth.Login("admin", "password"); err != nil {
		fmt.Fprintf(a.out, "Auto login failed: %v\n", err)
	} else {
		fmt.Fprintf(a.out, "Logged in as %s\n", user.Username)
	}
}

func (a *App) stop() {
	a.running = false
	zap.L().Info("application stopped")
	fmt.Fprintln(a.out, "Goodbye")
}

func (a *App) showMenu() {
	fmt.Fprintln(a.out, "\n=== Task Manager ===")
	fmt.Fprintln(a.out, "1. List users")
	fmt.Fprintln(a.out, "2. List tasks")
	fmt.Fprintln(a.out, "3. List projects")
	fmt.Fprintln(a.out, "4. Create task")
	fmt.Fprintln(a.out, "5. Assign task")
	fmt.Fprintln(a.out, "6. Start task")
	fmt.Fprintln(a.out, "7. Complete task")
	fmt.Fprintln(a.out, "8. Reports")
	fmt.Fprintln(a.out, "9. User management")
	fmt.Fprintln(a.out, "0. Exit")
	fmt.Fprintln(a.out, "====================")
}

func (a *App) readLine(prompt string) (string, bool) {
	fmt.Fprint(a.out, prompt)
	if !a.in.Scan() {
		return "", false
	}
	return strings.TrimSpace(a.in.Text()), true
}

func (a *App) readID(prompt string) (uint64, bool) {
	line, ok := a.readLine(prompt)
	if !ok {
		return 0, false
	}
	id, err := strconv.ParseUint(line, 10, 64)
	if err != nil {
		fmt.Fprintln(a.out, "Invalid ID")
		return 0, false
	}
	return id, true
}

func (a *App) requireLogin() bool {
	if !a.auth.IsAuthenticated() {
		fmt.Fprintln(a.out, "Please log in first")
		return false
	}
	return true
}

func (a *App) showAllUsers() {
	users := a.data.GetAllUsers()
	if len(users) == 0 {
		fmt.Fprintln(a.out, "No users")
		return
	}

	fmt.Fprintln(a.out, "\n=== Users ===")
	for _, user := range users {
		state := "active"
		if !user.IsActive {
			state = "inactive"
		}
		fmt.Fprintf(a.out, "ID: %d, Username: %s, Email: %s, Role: %s, State: %s\n",
			user.ID, user.Username, user.Email, user.Role, state)
	}
}

func (a *App) showAllTasks() {
	tasks := a.data.GetAllTasks()
	if len(tasks) == 0 {
		fmt.Fprintln(a.out, "No tasks")
		return
	}

	fmt.Fprintln(a.out, "\n=== Tasks ===")
	for _, task := range tasks {
		assignee := "unassigned"
		if task.AssignedTo != nil {
			if user, err := a.data.GetUser(*task.AssignedTo); err == nil {
				assignee = user.Username
			} else {
				assignee = fmt.Sprintf("missing user %d", *task.AssignedTo)
			}
		}
		due := "no due date"
		if task.DueDate != nil {
			due = fmt.Sprintf("due in %d days", utils.DaysBetween(time.Now(), *task.DueDate))
		}
		fmt.Fprintf(a.out, "ID: %d, Title: %s, Priority: %s (%s), Status: %s, Assigned to: %s, %s\n",
			task.ID, task.Title, task.Priority.Name(), utils.PriorityColor(task.Priority), task.Status, assignee, due)
	}
}

func (a *App) showAllProjects() {
	projects := a.data.GetAllProjects()
	if len(projects) == 0 {
		fmt.Fprintln(a.out, "No projects")
		return
	}

	fmt.Fprintln(a.out, "\n=== Projects ===")
	for _, project := range projects {
		fmt.Fprintf(a.out, "ID: %d, Name: %s, Tasks: %d, Members: %d, Started: %s\n",
			project.ID, project.Name, len(project.Tasks), len(project.Members),
			utils.FormatDateTime(project.StartDate))
	}
}

func (a *App) createTask() {
	if !a.requireLogin() {
		return
	}

	fmt.Fprintln(a.out, "\n=== Create Task ===")
	title, ok := a.readLine("Title: ")
	if !ok || title == "" {
		fmt.Fprintln(a.out, "Title must not be empty")
		return
	}

	description, _ := a.readLine("Description: ")

	fmt.Fprintln(a.out, "Priorities:")
	for p := models.PriorityLow; p <= models.PriorityUrgent; p++ {
		fmt.Fprintf(a.out, "%d. %s\n", int(p), p.Name())
	}

	priority := models.PriorityMedium
	if line, ok := a.readLine("Priority (1-4): "); ok {
		if value, err := strconv.Atoi(line); err == nil {
			priority = models.ParsePriority(value)
		} else {
			fmt.Fprintln(a.out, "Invalid choice, using default priority")
		}
	}

	task := a.data.CreateTask(title, description, priority, nil)
	fmt.Fprintf(a.out, "Task created with ID %d\n", task.ID)
	zap.L().Info("task created",
		zap.Uint64("task_id", task.ID),
		zap.String("by", a.auth.CurrentUser().Username))
}

func (a *App) assignTask() {
	if !a.requireLogin() {
		return
	}

	taskID, ok := a.readID("Task ID: ")
	if !ok {
		return
	}
	task, err := a.data.GetTask(taskID)
	if err != nil {
		fmt.Fprintf(a.out, "Error: %v\n", err)
		return
	}

	userID, ok := a.readID("User ID: ")
	if !ok {
		return
	}
	user, err := a.data.GetUser(userID)
	if err != nil {
		fmt.Fprintf(a.out, "Error: %v\n", err)
		return
	}

	task.Assign(user.ID)
	fmt.Fprintf(a.out, "Task %d assigned to %s\n", task.ID, user.Username)
	zap.L().Info("task assigned",
		zap.Uint64("task_id", task.ID),
		zap.Uint64("assigned_to", user.ID),
		zap.String("by", a.auth.CurrentUser().Username))
}

func (a *App) startTask() {
	a.transitionTask("started", (*models.Task).Start)
}

func (a *App) completeTask() {
	a.transitionTask("completed", (*models.Task).Complete)
}

func (a *App) transitionTask(verb string, apply func(*models.Task) error) {
	if !a.requireLogin() {
		return
	}

	taskID, ok := a.readID("Task ID: ")
	if !ok {
		return
	}
	task, err := a.data.GetTask(taskID)
	if err != nil {
		fmt.Fprintf(a.out, "Error: %v\n", err)
		return
	}

	if err := apply(task); err != nil {
		fmt.Fprintf(a.out, "Error: %v\n", err)
		return
	}

	fmt.Fprintf(a.out, "Task %d %s\n", task.ID, verb)
	zap.L().Info("task "+verb,
		zap.Uint64("task_id", task.ID),
		zap.String("by", a.auth.CurrentUser().Username))
}

func (a *App) showReports() {
	if !a.requireLogin() {
		return
	}

	userReport := a.reports.UserReport()
	taskReport := a.reports.TaskReport()
	projectReport := a.reports.ProjectReport()

	fmt.Fprintln(a.out, "\n=== Reports ===")
	fmt.Fprintln(a.out, "\nUsers:")
	fmt.Fprintf(a.out, "  Total: %d\n", userReport.TotalUsers)
	fmt.Fprintf(a.out, "  Active: %d\n", userReport.ActiveUsers)
	fmt.Fprintf(a.out, "  Inactive: %d\n", userReport.InactiveUsers)
	fmt.Fprintln(a.out, "  Role distribution:")
	printDistribution(a.out, userReport.RoleDistribution)

	fmt.Fprintln(a.out, "\nTasks:")
	fmt.Fprintf(a.out, "  Total: %d\n", taskReport.TotalTasks)
	fmt.Fprintf(a.out, "  Completion rate: %.2f%%\n", taskReport.CompletionRate)
	fmt.Fprintln(a.out, "  Status distribution:")
	printDistribution(a.out, taskReport.StatusDistribution)
	fmt.Fprintln(a.out, "  Priority distribution:")
	printDistribution(a.out, taskReport.PriorityDistribution)

	fmt.Fprintln(a.out, "\nProjects:")
	fmt.Fprintf(a.out, "  Total: %d\n", projectReport.TotalProjects)
	fmt.Fprintf(a.out, "  Avg tasks per project: %.2f\n", projectReport.AvgTasksPerProject)
	fmt.Fprintf(a.out, "  Avg members per project: %.2f\n", projectReport.AvgMembersPerProject)
}

func printDistribution(out io.Writer, distribution map[string]int) {
	for key, count := range distribution {
		fmt.Fprintf(out, "    %s: %d\n", key, count)
	}
}

func (a *App) userManagement() {
	if !a.requireLogin() {
		return
	}
	if !a.auth.HasPermission(models.RoleAdmin) {
		fmt.Fprintln(a.out, "Insufficient permissions")
		return
	}

	fmt.Fprintln(a.out, "\n=== User Management ===")
	fmt.Fprintln(a.out, "1. Create user")
	fmt.Fprintln(a.out, "2. Deactivate user")
	fmt.Fprintln(a.out, "3. Activate user")
	fmt.Fprintln(a.out, "0. Back")

	choice, ok := a.readLine("Select an option: ")
	if !ok {
		return
	}

	switch choice {
	case "1":
		a.createUser()
	case "2":
		a.setUserActive(false)
	case "3":
		a.setUserActive(true)
	case "0":
		return
	default:
		fmt.Fprintln(a.out, "Invalid choice")
	}
}

func (a *App) createUser() {
	username, ok := a.readLine("Username: ")
	if !ok || !utils.ValidUsername(username) {
		fmt.Fprintln(a.out, "Invalid username format")
		return
	}

	email, ok := a.readLine("Email: ")
	if !ok || !utils.ValidEmail(email) {
		fmt.Fprintln(a.out, "Invalid email format")
		return
	}

	// Uniqueness is checked here; the data manager itself does not.
	for _, existing := range a.data.GetAllUsers() {
		if existing.Username == username {
			fmt.Fprintln(a.out, "Username already exists")
			return
		}
		if existing.Email == email {
			fmt.Fprintln(a.out, "Email already exists")
			return
		}
	}

	user := a.data.CreateUser(username, email, models.RoleUser)
	fmt.Fprintf(a.out, "User created with ID %d\n", user.ID)
	zap.L().Info("user created",
		zap.Uint64("user_id", user.ID),
		zap.String("by", a.auth.CurrentUser().Username))
}

func (a *App) setUserActive(active bool) {
	userID, ok := a.readID("User ID: ")
	if !ok {
		return
	}
	user, err := a.data.GetUser(userID)
	if err != nil {
		fmt.Fprintf(a.out, "Error: %v\n", err)
		return
	}

	verb := "deactivated"
	if active {
		user.Activate()
		verb = "activated"
	} else {
		user.Deactivate()
	}

	fmt.Fprintf(a.out, "User %s %s\n", user.Username, verb)
	zap.L().Info("user "+verb,
		zap.Uint64("user_id", user.ID),
		zap.String("by", a.auth.CurrentUser().Username))
}
