// internal/repository/activity.go
package repository

import (
	"context"
	"fmt"

	"github.com/opsdesk/taskboard/internal/model"
	"gorm.io/gorm"
)

type ActivityRepositoryIface interface {
	Create(ctx context.Context, activity *model.Activity) error
	List(ctx context.Context, page, perPage int) ([]*model.Activity, Pagination, error)
	FindRecent(ctx context.Context, limit int) ([]*model.Activity, error)
}

type ActivityRepository struct {
	db *gorm.DB
}

func NewActivityRepository(db *gorm.DB) *ActivityRepository {
	return &ActivityRepository{db: db}
}

func (r *ActivityRepository) Create(ctx context.Context, activity *model.Activity) error {
	result := r.db.WithContext(ctx).Create(activity)
	if result.Error != nil {
		return fmt.Errorf("failed to create activity: %w", result.Error)
	}
	return nil
}

// List returns the timeline newest-first.
func (r *ActivityRepository) List(ctx context.Context, page, perPage int) ([]*model.Activity, Pagination, error) {
	if perPage <= 0 {
		perPage = 15
	}

	var total int64
	if err := r.db.WithContext(ctx).Model(&model.Activity{}).Count(&total).Error; err != nil {
		return nil, Pagination{}, fmt.Errorf("failed to count activities: %w", err)
	}

	pg := NewPagination(total, page, perPage)

	var activities []*model.Activity
	err := r.db.WithContext(ctx).
		Preload("Actor").
		Order("created_at DESC").
		Offset(pg.Offset()).
		Limit(pg.PerPage).
		Find(&activities).Error
	if err != nil {
		return nil, Pagination{}, fmt.Errorf("failed to list activities: %w", err)
	}

	return activities, pg, nil
}

func (r *ActivityRepository) FindRecent(ctx context.Context, limit int) ([]*model.Activity, error) {
	var activities []*model.Activity
	err := r.db.WithContext(ctx).
		Preload("Actor").
		Order("created_at DESC").
		Limit(limit).
		Find(&activities).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find recent activities: %w", err)
	}
	return activities, nil
}
