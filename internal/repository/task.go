// internal/repository/task.go
package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/opsdesk/taskboard/internal/domain"
	"github.com/opsdesk/taskboard/internal/model"
	"gorm.io/gorm"
)

// priorityRankExpr orders Urgent first and Regular last among named
// priorities; unmapped non-null values land between them, missing
// priorities after everything. Applied before any requested direction.
const priorityRankExpr = "CASE" +
	" WHEN tasks.priority = 'Urgent' THEN 0" +
	" WHEN tasks.priority = 'Regular' THEN 2" +
	" WHEN tasks.priority IS NOT NULL THEN 1" +
	" ELSE 3 END"

// ListOptions drives one paginated task listing. DivisionID nil means
// unscoped (admin); a non-nil id restricts to tasks associated with that
// division.
type ListOptions struct {
	Statuses   []model.TaskStatus
	Search     string
	Order      string
	Page       int
	PerPage    int
	DivisionID *uuid.UUID
}

type TaskRepositoryIface interface {
	Begin(ctx context.Context) (Transaction, error) // For mocking support in tests

	List(ctx context.Context, opts ListOptions) ([]*model.Task, Pagination, error)
	FindByID(ctx context.Context, id uuid.UUID) (*model.Task, error)
	Create(ctx context.Context, task *model.Task, divisionIDs, assigneeIDs []uuid.UUID) error
	Update(ctx context.Context, task *model.Task, divisionIDs, assigneeIDs *[]uuid.UUID) error
	Delete(ctx context.Context, id uuid.UUID) error

	AddUpdate(ctx context.Context, update *model.TaskUpdate) error
	FindUpdateByID(ctx context.Context, id uuid.UUID) (*model.TaskUpdate, error)
	SaveUpdate(ctx context.Context, update *model.TaskUpdate) error
	DeleteUpdate(ctx context.Context, id uuid.UUID) error

	CountByStatus(ctx context.Context, divisionID *uuid.UUID) (map[model.TaskStatus]int64, error)
	CountOverdue(ctx context.Context, divisionID *uuid.UUID, now time.Time) (int64, error)
}

type TaskRepository struct {
	db *gorm.DB
}

func NewTaskRepository(db *gorm.DB) *TaskRepository {
	return &TaskRepository{db: db}
}

// Begin starts a new database transaction and returns a Transaction instance.
func (r *TaskRepository) Begin(ctx context.Context) (Transaction, error) {
	tx := r.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return nil, tx.Error
	}
	return &gormTransaction{tx: tx}, nil
}

// scoped applies status, division, and search restrictions shared by the
// count and page queries.
func (r *TaskRepository) scoped(ctx context.Context, opts ListOptions) *gorm.DB {
	q := r.db.WithContext(ctx).Model(&model.Task{})

	if len(opts.Statuses) > 0 {
		q = q.Where("tasks.status IN ?", opts.Statuses)
	}

	if opts.DivisionID != nil {
		q = q.Where(
			"EXISTS (SELECT 1 FROM task_divisions td WHERE td.task_id = tasks.id AND td.division_id = ?)",
			*opts.DivisionID,
		)
	}

	if search := strings.TrimSpace(opts.Search); search != "" {
		like := "%" + search + "%"
		q = q.Where(
			`(tasks.name ILIKE @q
				OR tasks.last_action ILIKE @q
				OR EXISTS (SELECT 1 FROM task_updates tu
					WHERE tu.task_id = tasks.id AND tu.body ILIKE @q)
				OR EXISTS (SELECT 1 FROM task_assignees ta
					JOIN users u ON u.id = ta.user_id
					WHERE ta.task_id = tasks.id
					AND (u.first_name ILIKE @q OR u.last_name ILIKE @q))
				OR EXISTS (SELECT 1 FROM task_divisions td2
					JOIN divisions d ON d.id = td2.division_id
					WHERE td2.task_id = tasks.id AND d.name ILIKE @q))`,
			map[string]interface{}{"q": like},
		)
	}

	return q
}

// pageQuery applies the listing order and page bounds on top of scoped.
// The priority rank is fixed; the requested direction only affects the
// due-date tiebreaker, and null due dates sort last either way.
func (r *TaskRepository) pageQuery(ctx context.Context, opts ListOptions, page Pagination) *gorm.DB {
	dir := "ASC"
	if NormalizeOrder(opts.Order) == "desc" {
		dir = "DESC"
	}

	return r.scoped(ctx, opts).
		Order(priorityRankExpr).
		Order("tasks.due_date " + dir + " NULLS LAST").
		Order("tasks.created_at DESC").
		Offset(page.Offset()).
		Limit(page.PerPage)
}

// List returns one page of tasks with divisions, assignees, and updates
// (newest first) loaded.
func (r *TaskRepository) List(ctx context.Context, opts ListOptions) ([]*model.Task, Pagination, error) {
	if opts.PerPage <= 0 {
		opts.PerPage = 15
	}

	var total int64
	if err := r.scoped(ctx, opts).Count(&total).Error; err != nil {
		return nil, Pagination{}, fmt.Errorf("failed to count tasks: %w", err)
	}

	page := NewPagination(total, opts.Page, opts.PerPage)

	var tasks []*model.Task
	err := r.pageQuery(ctx, opts, page).
		Preload("Divisions").
		Preload("Assignees").
		Preload("Updates", func(db *gorm.DB) *gorm.DB {
			return db.Order("task_updates.created_at DESC")
		}).
		Preload("Updates.Author").
		Find(&tasks).Error
	if err != nil {
		return nil, Pagination{}, fmt.Errorf("failed to list tasks: %w", err)
	}

	return tasks, page, nil
}

func (r *TaskRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Task, error) {
	var task model.Task
	result := r.db.WithContext(ctx).
		Preload("Divisions").
		Preload("Assignees").
		Preload("Updates", func(db *gorm.DB) *gorm.DB {
			return db.Order("task_updates.created_at DESC")
		}).
		Preload("Updates.Author").
		First(&task, "id = ?", id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domain.ErrTaskNotFound
		}
		return nil, fmt.Errorf("failed to find task: %w", result.Error)
	}
	return &task, nil
}

// Create inserts the task and its association rows in one transaction.
func (r *TaskRepository) Create(ctx context.Context, task *model.Task, divisionIDs, assigneeIDs []uuid.UUID) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("Divisions", "Assignees", "Updates").Create(task).Error; err != nil {
			return fmt.Errorf("creating task: %w", err)
		}

		if err := replaceAssociation(tx, task, "Divisions", divisionRefs(divisionIDs)); err != nil {
			return err
		}

		if err := replaceAssociation(tx, task, "Assignees", userRefs(assigneeIDs)); err != nil {
			return err
		}

		return nil
	})

	if err != nil {
		return fmt.Errorf("transaction failed: %w", err)
	}

	return nil
}

// Update saves the task row and re-syncs an association only when its id
// slice is present; nil means leave the current set alone.
func (r *TaskRepository) Update(ctx context.Context, task *model.Task, divisionIDs, assigneeIDs *[]uuid.UUID) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("Divisions", "Assignees", "Updates").Save(task).Error; err != nil {
			return fmt.Errorf("updating task: %w", err)
		}

		if divisionIDs != nil {
			if err := replaceAssociation(tx, task, "Divisions", divisionRefs(*divisionIDs)); err != nil {
				return err
			}
		}

		if assigneeIDs != nil {
			if err := replaceAssociation(tx, task, "Assignees", userRefs(*assigneeIDs)); err != nil {
				return err
			}
		}

		return nil
	})

	if err != nil {
		return fmt.Errorf("transaction failed: %w", err)
	}

	return nil
}

func (r *TaskRepository) Delete(ctx context.Context, id uuid.UUID) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec("DELETE FROM task_divisions WHERE task_id = ?", id).Error; err != nil {
			return fmt.Errorf("deleting division associations: %w", err)
		}

		if err := tx.Exec("DELETE FROM task_assignees WHERE task_id = ?", id).Error; err != nil {
			return fmt.Errorf("deleting assignee associations: %w", err)
		}

		if err := tx.Where("task_id = ?", id).Delete(&model.TaskUpdate{}).Error; err != nil {
			return fmt.Errorf("deleting task updates: %w", err)
		}

		if err := tx.Delete(&model.Task{}, "id = ?", id).Error; err != nil {
			return fmt.Errorf("deleting task: %w", err)
		}

		return nil
	})

	if err != nil {
		return fmt.Errorf("transaction failed: %w", err)
	}

	return nil
}

func (r *TaskRepository) AddUpdate(ctx context.Context, update *model.TaskUpdate) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(update).Error; err != nil {
			return fmt.Errorf("creating task update: %w", err)
		}

		// Keep the denormalized summary on the task in step.
		if err := tx.Model(&model.Task{}).
			Where("id = ?", update.TaskID).
			Update("last_action", update.Body).Error; err != nil {
			return fmt.Errorf("mirroring last action: %w", err)
		}

		return nil
	})

	if err != nil {
		return fmt.Errorf("transaction failed: %w", err)
	}

	return nil
}

func (r *TaskRepository) FindUpdateByID(ctx context.Context, id uuid.UUID) (*model.TaskUpdate, error) {
	var update model.TaskUpdate
	result := r.db.WithContext(ctx).First(&update, "id = ?", id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domain.ErrTaskUpdateNotFound
		}
		return nil, fmt.Errorf("failed to find task update: %w", result.Error)
	}
	return &update, nil
}

func (r *TaskRepository) SaveUpdate(ctx context.Context, update *model.TaskUpdate) error {
	result := r.db.WithContext(ctx).Save(update)
	if result.Error != nil {
		return fmt.Errorf("failed to save task update: %w", result.Error)
	}
	return nil
}

func (r *TaskRepository) DeleteUpdate(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&model.TaskUpdate{}, "id = ?", id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete task update: %w", result.Error)
	}
	return nil
}

// CountByStatus returns task counts grouped by status, optionally scoped
// to a division.
func (r *TaskRepository) CountByStatus(ctx context.Context, divisionID *uuid.UUID) (map[model.TaskStatus]int64, error) {
	q := r.scoped(ctx, ListOptions{DivisionID: divisionID})

	var rows []struct {
		Status model.TaskStatus
		Count  int64
	}
	if err := q.Select("tasks.status AS status, COUNT(*) AS count").
		Group("tasks.status").
		Scan(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to count tasks by status: %w", err)
	}

	counts := make(map[model.TaskStatus]int64, len(rows))
	for _, row := range rows {
		counts[row.Status] = row.Count
	}
	return counts, nil
}

// CountOverdue counts incomplete tasks whose due date has passed.
func (r *TaskRepository) CountOverdue(ctx context.Context, divisionID *uuid.UUID, now time.Time) (int64, error) {
	var count int64
	err := r.scoped(ctx, ListOptions{
		Statuses:   []model.TaskStatus{model.StatusNotStarted, model.StatusInProgress},
		DivisionID: divisionID,
	}).Where("tasks.due_date IS NOT NULL AND tasks.due_date < ?", now).
		Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("failed to count overdue tasks: %w", err)
	}
	return count, nil
}

func replaceAssociation(tx *gorm.DB, task *model.Task, name string, refs interface{}) error {
	if err := tx.Model(task).Association(name).Replace(refs); err != nil {
		return fmt.Errorf("syncing %s: %w", strings.ToLower(name), err)
	}
	return nil
}

func divisionRefs(ids []uuid.UUID) []model.Division {
	refs := make([]model.Division, len(ids))
	for i, id := range ids {
		refs[i] = model.Division{ID: id}
	}
	return refs
}

func userRefs(ids []uuid.UUID) []model.User {
	refs := make([]model.User, len(ids))
	for i, id := range ids {
		refs[i] = model.User{ID: id}
	}
	return refs
}
