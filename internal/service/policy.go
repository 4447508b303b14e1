// internal/service/policy.go
package service

import "github.com/opsdesk/taskboard/internal/model"

// TaskPolicy decides whether a user may see or touch a task. Admins pass
// unconditionally; everyone else needs their division in the task's
// division set. List endpoints apply the same restriction in SQL instead
// of filtering rows after the fact.
type TaskPolicy struct{}

func NewTaskPolicy() *TaskPolicy {
	return &TaskPolicy{}
}

func (p *TaskPolicy) CanAccess(user *model.User, task *model.Task) bool {
	if user == nil || task == nil {
		return false
	}
	if user.Role == model.RoleAdmin {
		return true
	}
	if user.DivisionID == nil {
		return false
	}
	for _, division := range task.Divisions {
		if division.ID == *user.DivisionID {
			return true
		}
	}
	return false
}
