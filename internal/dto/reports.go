package dto

// UserReport aggregates the user collection.
type UserReport struct {
	TotalUsers       int            `json:"total_users"`
	ActiveUsers      int            `json:"active_users"`
	InactiveUsers    int            `json:"inactive_users"`
	RoleDistribution map[string]int `json:"role_distribution"`
	GeneratedAt      string         `json:"generated_at"`
}

// TaskReport aggregates the task collection. CompletionRate is a
// percentage rounded to two decimals.
type TaskReport struct {
	TotalTasks           int            `json:"total_tasks"`
	StatusDistribution   map[string]int `json:"status_distribution"`
	PriorityDistribution map[string]int `json:"priority_distribution"`
	CompletionRate       float64        `json:"completion_rate"`
	GeneratedAt          string         `json:"generated_at"`
}

// ProjectReport aggregates the project collection. Averages are rounded to
// two decimals.
type ProjectReport struct {
	TotalProjects        int     `json:"total_projects"`
	AvgTasksPerProject   float64 `json:"avg_tasks_per_project"`
	AvgMembersPerProject float64 `json:"avg_members_per_project"`
	GeneratedAt          string  `json:"generated_at"`
}
