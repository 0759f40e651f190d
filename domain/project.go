package domain

import "time"

// Project groups tasks and members. TaskCount and CompletedTasks are
// denormalized counters maintained by the store: TaskCount equals the number
// of tasks referencing the project, CompletedTasks the subset that has
// transitioned into StatusDone. Callers must not recompute them.
type Project struct {
	ID             string    `json:"id"`
	Name           string    `json:"name"`
	Description    string    `json:"description"`
	Members        []User    `json:"members"`
	Owner          User      `json:"owner"`
	TaskCount      int       `json:"task_count"`
	CompletedTasks int       `json:"completed_tasks"`
	CreatedAt      time.Time `json:"created_at"`
}

// HasMember reports whether the identity already belongs to the project.
// Membership is a set with insertion order; duplicate adds are rejected by
// the store based on this check.
func (p *Project) HasMember(userID string) bool {
	if p == nil {
		return false
	}
	for _, m := range p.Members {
		if m.ID == userID {
			return true
		}
	}
	return false
}
