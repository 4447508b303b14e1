// internal/repository/division.go
package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/opsdesk/taskboard/internal/domain"
	"github.com/opsdesk/taskboard/internal/model"
	"gorm.io/gorm"
)

type DivisionRepositoryIface interface {
	Create(ctx context.Context, division *model.Division) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Division, error)
	FindByName(ctx context.Context, name string) (*model.Division, error)
	FindAll(ctx context.Context) ([]*model.Division, error)
	Update(ctx context.Context, division *model.Division) error
	Delete(ctx context.Context, id uuid.UUID) error
	CountByIDs(ctx context.Context, ids []uuid.UUID) (int64, error)
}

type DivisionRepository struct {
	db *gorm.DB
}

func NewDivisionRepository(db *gorm.DB) *DivisionRepository {
	return &DivisionRepository{db: db}
}

func (r *DivisionRepository) Create(ctx context.Context, division *model.Division) error {
	result := r.db.WithContext(ctx).Create(division)
	if result.Error != nil {
		return fmt.Errorf("failed to create division: %w", result.Error)
	}
	return nil
}

func (r *DivisionRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Division, error) {
	var division model.Division
	result := r.db.WithContext(ctx).First(&division, "id = ?", id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domain.ErrDivisionNotFound
		}
		return nil, fmt.Errorf("failed to find division: %w", result.Error)
	}
	return &division, nil
}

func (r *DivisionRepository) FindByName(ctx context.Context, name string) (*model.Division, error) {
	var division model.Division
	result := r.db.WithContext(ctx).Where("name = ?", name).First(&division)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domain.ErrDivisionNotFound
		}
		return nil, fmt.Errorf("failed to find division by name: %w", result.Error)
	}
	return &division, nil
}

func (r *DivisionRepository) FindAll(ctx context.Context) ([]*model.Division, error) {
	var divisions []*model.Division
	result := r.db.WithContext(ctx).Order("name ASC").Find(&divisions)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to find all divisions: %w", result.Error)
	}
	return divisions, nil
}

func (r *DivisionRepository) Update(ctx context.Context, division *model.Division) error {
	result := r.db.WithContext(ctx).Save(division)
	if result.Error != nil {
		return fmt.Errorf("failed to update division: %w", result.Error)
	}
	return nil
}

// Delete removes a division and its task associations. Tasks and users
// keep existing; users pointing at the division are detached.
func (r *DivisionRepository) Delete(ctx context.Context, id uuid.UUID) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec("DELETE FROM task_divisions WHERE division_id = ?", id).Error; err != nil {
			return fmt.Errorf("deleting task associations: %w", err)
		}

		if err := tx.Model(&model.User{}).Where("division_id = ?", id).Update("division_id", nil).Error; err != nil {
			return fmt.Errorf("detaching users: %w", err)
		}

		if err := tx.Delete(&model.Division{}, "id = ?", id).Error; err != nil {
			return fmt.Errorf("deleting division: %w", err)
		}

		return nil
	})

	if err != nil {
		return fmt.Errorf("transaction failed: %w", err)
	}

	return nil
}

func (r *DivisionRepository) CountByIDs(ctx context.Context, ids []uuid.UUID) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}
	var count int64
	result := r.db.WithContext(ctx).Model(&model.Division{}).Where("id IN ?", ids).Count(&count)
	if result.Error != nil {
		return 0, fmt.Errorf("failed to count divisions: %w", result.Error)
	}
	return count, nil
}
