package models

import "time"

type Project struct {
	ID          uint64
	Name        string
	Description string
	Tasks       []uint64
	Members     []uint64
	StartDate   time.Time
	EndDate     *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// NewProject builds a project with the given ID and the start date set to
// now. IDs are assigned by the data manager.
func NewProject(id uint64, name, description string) *Project {
	now := time.Now()
	return &Project{
		ID:          id,
		Name:        name,
		Description: description,
		StartDate:   now,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

// AddTask appends a task reference. Adding an already-present ID is a no-op
// that does not touch UpdatedAt. Reports whether the project changed.
func (p *Project) AddTask(taskID uint64) bool {
	if containsID(p.Tasks, taskID) {
		return false
	}
	p.Tasks = append(p.Tasks, taskID)
	p.UpdatedAt = time.Now()
	return true
}

// RemoveTask drops a task reference. Removing an absent ID is a no-op that
// does not touch UpdatedAt. Reports whether the project changed.
func (p *Project) RemoveTask(taskID uint64) bool {
	if !containsID(p.Tasks, taskID) {
		return false
	}
	p.Tasks = removeID(p.Tasks, taskID)
	p.UpdatedAt = time.Now()
	return true
}

// AddMember appends a member reference, idempotently like AddTask.
func (p *Project) AddMember(userID uint64) bool {
	if containsID(p.Members, userID) {
		return false
	}
	p.Members = append(p.Members, userID)
	p.UpdatedAt = time.Now()
	return true
}

// RemoveMember drops a member reference, idempotently like RemoveTask.
func (p *Project) RemoveMember(userID uint64) bool {
	if !containsID(p.Members, userID) {
		return false
	}
	p.Members = removeID(p.Members, userID)
	p.UpdatedAt = time.Now()
	return true
}

// SetEndDate replaces the end date.
func (p *Project) SetEndDate(end time.Time) {
	p.EndDate = &end
	p.UpdatedAt = time.Now()
}

func containsID(ids []uint64, id uint64) bool {
	for _, existing := range ids {
		if existing == id {
			return true
		}
	}
	return false
}

func removeID(ids []uint64, id uint64) []uint64 {
	out := ids[:0]
	for _, existing := range ids {
		if existing != id {
			out = append(out, existing)
		}
	}
	return out
}
