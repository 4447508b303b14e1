// internal/service/activity.go
package service

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"github.com/opsdesk/taskboard/internal/model"
	"github.com/opsdesk/taskboard/internal/repository"
)

// ActivityService appends audit entries and serves the timeline. Recording
// is best-effort: a failed audit write is logged, never surfaced, so it
// can't fail the mutation it describes.
type ActivityService struct {
	activities repository.ActivityRepositoryIface
}

func NewActivityService(activities repository.ActivityRepositoryIface) *ActivityService {
	return &ActivityService{activities: activities}
}

func (s *ActivityService) Record(
	ctx context.Context,
	actor *model.User,
	action model.ActivityAction,
	subjectType string,
	subjectID *uuid.UUID,
	description string,
	changes model.ChangeSet,
) {
	activity := &model.Activity{
		Action:      action,
		SubjectType: subjectType,
		SubjectID:   subjectID,
		Description: description,
		Changes:     changes,
	}
	if actor != nil {
		actorID := actor.ID
		activity.ActorID = &actorID
	}

	if err := s.activities.Create(ctx, activity); err != nil {
		slog.ErrorContext(ctx, "Failed to record activity",
			"error", err,
			"action", action,
			"subject_type", subjectType,
		)
	}
}

func (s *ActivityService) Timeline(ctx context.Context, page int) ([]*model.Activity, repository.Pagination, error) {
	return s.activities.List(ctx, page, 15)
}

func (s *ActivityService) Recent(ctx context.Context, limit int) ([]*model.Activity, error) {
	return s.activities.FindRecent(ctx, limit)
}
