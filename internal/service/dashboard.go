// internal/service/dashboard.go
package service

import (
	"context"
	"fmt"
	"time"

	"github.com/opsdesk/taskboard/internal/domain"
	"github.com/opsdesk/taskboard/internal/model"
	"github.com/opsdesk/taskboard/internal/repository"
)

// DashboardService aggregates the read-only counts shown on the landing
// page, scoped the same way as the task lists.
type DashboardService struct {
	tasks    repository.TaskRepositoryIface
	activity *ActivityService
}

func NewDashboardService(tasks repository.TaskRepositoryIface, activity *ActivityService) *DashboardService {
	return &DashboardService{tasks: tasks, activity: activity}
}

type Overview struct {
	NotStarted     int64             `json:"not_started"`
	InProgress     int64             `json:"in_progress"`
	Completed      int64             `json:"completed"`
	Overdue        int64             `json:"overdue"`
	RecentActivity []*model.Activity `json:"recent_activity"`
}

func (s *DashboardService) Overview(ctx context.Context, actor *model.User) (*Overview, error) {
	if actor == nil {
		return nil, domain.ErrUnauthenticated
	}

	scope, visible := divisionScope(actor)
	if !visible {
		return &Overview{RecentActivity: []*model.Activity{}}, nil
	}

	counts, err := s.tasks.CountByStatus(ctx, scope)
	if err != nil {
		return nil, fmt.Errorf("counting tasks by status: %w", err)
	}

	overdue, err := s.tasks.CountOverdue(ctx, scope, time.Now().UTC())
	if err != nil {
		return nil, fmt.Errorf("counting overdue tasks: %w", err)
	}

	recent, err := s.activity.Recent(ctx, 10)
	if err != nil {
		return nil, fmt.Errorf("loading recent activity: %w", err)
	}

	return &Overview{
		NotStarted:     counts[model.StatusNotStarted],
		InProgress:     counts[model.StatusInProgress],
		Completed:      counts[model.StatusCompleted],
		Overdue:        overdue,
		RecentActivity: recent,
	}, nil
}
