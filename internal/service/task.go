// internal/service/task.go
package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/opsdesk/taskboard/internal/config"
	"github.com/opsdesk/taskboard/internal/domain"
	"github.com/opsdesk/taskboard/internal/email"
	"github.com/opsdesk/taskboard/internal/email/mailer"
	"github.com/opsdesk/taskboard/internal/model"
	"github.com/opsdesk/taskboard/internal/repository"
)

const subjectTask = "Task"

// TaskService validates and applies task reads and mutations. All
// mutations are admin-only; update and delete additionally pass the
// division policy, which admins satisfy by definition.
type TaskService struct {
	tasks        repository.TaskRepositoryIface
	divisions    repository.DivisionRepositoryIface
	users        repository.UserRepositoryIface
	activity     *ActivityService
	policy       *TaskPolicy
	emailService *email.Service
	config       *config.Config
	validate     *validator.Validate
}

func NewTaskService(
	tasks repository.TaskRepositoryIface,
	divisions repository.DivisionRepositoryIface,
	users repository.UserRepositoryIface,
	activity *ActivityService,
	policy *TaskPolicy,
	emailService *email.Service,
	config *config.Config,
) *TaskService {
	return &TaskService{
		tasks:        tasks,
		divisions:    divisions,
		users:        users,
		activity:     activity,
		policy:       policy,
		emailService: emailService,
		config:       config,
		validate:     validator.New(),
	}
}

// TaskPage is one independently paginated section of the board.
type TaskPage struct {
	Tasks      []*model.Task         `json:"tasks"`
	Pagination repository.Pagination `json:"pagination"`
}

// Board holds the two task lists shown together. Each section pages on
// its own so moving through completed tasks doesn't reset the active list.
type Board struct {
	Active    TaskPage `json:"active"`
	Completed TaskPage `json:"completed"`
}

type ListInput struct {
	ActiveSearch    string
	ActiveOrder     string
	ActivePage      int
	CompletedSearch string
	CompletedOrder  string
	CompletedPage   int
}

func (s *TaskService) ListBoard(ctx context.Context, actor *model.User, input ListInput) (*Board, error) {
	if actor == nil {
		return nil, domain.ErrUnauthenticated
	}

	scope, visible := divisionScope(actor)
	if !visible {
		empty := TaskPage{Tasks: []*model.Task{}, Pagination: repository.NewPagination(0, 1, 15)}
		return &Board{Active: empty, Completed: empty}, nil
	}

	active, activePg, err := s.tasks.List(ctx, repository.ListOptions{
		Statuses:   []model.TaskStatus{model.StatusNotStarted, model.StatusInProgress},
		Search:     input.ActiveSearch,
		Order:      input.ActiveOrder,
		Page:       input.ActivePage,
		PerPage:    15,
		DivisionID: scope,
	})
	if err != nil {
		return nil, fmt.Errorf("listing active tasks: %w", err)
	}

	completed, completedPg, err := s.tasks.List(ctx, repository.ListOptions{
		Statuses:   []model.TaskStatus{model.StatusCompleted},
		Search:     input.CompletedSearch,
		Order:      input.CompletedOrder,
		Page:       input.CompletedPage,
		PerPage:    15,
		DivisionID: scope,
	})
	if err != nil {
		return nil, fmt.Errorf("listing completed tasks: %w", err)
	}

	return &Board{
		Active:    TaskPage{Tasks: active, Pagination: activePg},
		Completed: TaskPage{Tasks: completed, Pagination: completedPg},
	}, nil
}

func (s *TaskService) Get(ctx context.Context, actor *model.User, id uuid.UUID) (*model.Task, error) {
	task, err := s.tasks.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if !s.policy.CanAccess(actor, task) {
		return nil, domain.ErrForbidden
	}

	return task, nil
}

type CreateTaskInput struct {
	Name        string           `json:"name" validate:"required"`
	Description string           `json:"description"`
	Status      model.TaskStatus `json:"status" validate:"required,oneof=not_started in_progress completed"`
	Priority    *string          `json:"priority"`
	DueDate     *string          `json:"due_date"`
	CreatedAt   *string          `json:"created_at"`
	LastAction  string           `json:"last_action"`
	DivisionIDs IDList           `json:"division_ids" validate:"required,min=1"`
	AssigneeIDs IDList           `json:"assignee_ids"`
}

func (s *TaskService) Create(ctx context.Context, actor *model.User, input CreateTaskInput) (*model.Task, error) {
	if err := requireAdmin(actor); err != nil {
		return nil, err
	}

	if err := s.validate.Struct(input); err != nil {
		return nil, err
	}

	divisionIDs := input.DivisionIDs.Dedupe()
	assigneeIDs := input.AssigneeIDs.Dedupe()
	if err := s.checkReferences(ctx, divisionIDs, assigneeIDs); err != nil {
		return nil, err
	}

	task := &model.Task{
		Name:        input.Name,
		Description: input.Description,
		Status:      input.Status,
		Priority:    input.Priority,
		LastAction:  input.LastAction,
	}

	if input.DueDate != nil && *input.DueDate != "" {
		due, err := parseDate(*input.DueDate)
		if err != nil {
			return nil, err
		}
		task.DueDate = &due
	}

	if input.CreatedAt != nil && *input.CreatedAt != "" {
		createdAt, err := parseDate(*input.CreatedAt)
		if err != nil {
			return nil, err
		}
		task.CreatedAt = createdAt
	}

	if err := s.tasks.Create(ctx, task, divisionIDs, assigneeIDs); err != nil {
		return nil, err
	}

	// Re-read with associations resolved.
	created, err := s.tasks.FindByID(ctx, task.ID)
	if err != nil {
		return nil, err
	}

	taskID := created.ID
	s.activity.Record(ctx, actor, model.ActionCreated, subjectTask, &taskID,
		fmt.Sprintf("Task %q created", created.Name), nil)

	s.notifyAssignees(ctx, created)

	return created, nil
}

type UpdateTaskInput struct {
	Name        *string           `json:"name" validate:"omitempty,min=1"`
	Description *string           `json:"description"`
	Status      *model.TaskStatus `json:"status" validate:"omitempty,oneof=not_started in_progress completed"`
	Priority    *string           `json:"priority"`
	DueDate     *string           `json:"due_date"`
	LastAction  *string           `json:"last_action"`
	DivisionIDs *IDList           `json:"division_ids" validate:"omitempty,min=1"`
	AssigneeIDs *IDList           `json:"assignee_ids"`
}

func (s *TaskService) Update(ctx context.Context, actor *model.User, id uuid.UUID, input UpdateTaskInput) (*model.Task, error) {
	if err := requireAdmin(actor); err != nil {
		return nil, err
	}

	if err := s.validate.Struct(input); err != nil {
		return nil, err
	}

	// Every task keeps at least one division. omitempty can't see inside
	// the pointer, so a present-but-empty list is rejected here.
	if input.DivisionIDs != nil && len(*input.DivisionIDs) == 0 {
		return nil, fmt.Errorf("%w: division_ids must not be empty", domain.ErrInvalidInput)
	}

	task, err := s.tasks.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if !s.policy.CanAccess(actor, task) {
		return nil, domain.ErrForbidden
	}

	var divisionIDs, assigneeIDs *[]uuid.UUID
	if input.DivisionIDs != nil {
		ids := input.DivisionIDs.Dedupe()
		divisionIDs = &ids
	}
	if input.AssigneeIDs != nil {
		ids := input.AssigneeIDs.Dedupe()
		assigneeIDs = &ids
	}
	if err := s.checkReferences(ctx, deref(divisionIDs), deref(assigneeIDs)); err != nil {
		return nil, err
	}

	changes := model.ChangeSet{}

	if input.Name != nil && *input.Name != task.Name {
		changes["name"] = diff(task.Name, *input.Name)
		task.Name = *input.Name
	}
	if input.Description != nil && *input.Description != task.Description {
		changes["description"] = diff(task.Description, *input.Description)
		task.Description = *input.Description
	}
	if input.Status != nil && *input.Status != task.Status {
		changes["status"] = diff(string(task.Status), string(*input.Status))
		task.Status = *input.Status
	}
	if input.Priority != nil {
		changes["priority"] = diff(strOrEmpty(task.Priority), *input.Priority)
		if *input.Priority == "" {
			task.Priority = nil
		} else {
			task.Priority = input.Priority
		}
	}
	if input.LastAction != nil && *input.LastAction != task.LastAction {
		changes["last_action"] = diff(task.LastAction, *input.LastAction)
		task.LastAction = *input.LastAction
	}
	if input.DueDate != nil {
		oldDue := ""
		if task.DueDate != nil {
			oldDue = task.DueDate.Format("2006-01-02")
		}
		if *input.DueDate == "" {
			task.DueDate = nil
		} else {
			due, err := parseDate(*input.DueDate)
			if err != nil {
				return nil, err
			}
			task.DueDate = &due
		}
		newDue := ""
		if task.DueDate != nil {
			newDue = task.DueDate.Format("2006-01-02")
		}
		if oldDue != newDue {
			changes["due_date"] = diff(oldDue, newDue)
		}
	}

	if err := s.tasks.Update(ctx, task, divisionIDs, assigneeIDs); err != nil {
		return nil, err
	}

	updated, err := s.tasks.FindByID(ctx, task.ID)
	if err != nil {
		return nil, err
	}

	taskID := updated.ID
	if len(changes) == 0 {
		changes = nil
	}
	s.activity.Record(ctx, actor, model.ActionUpdated, subjectTask, &taskID,
		fmt.Sprintf("Task %q updated", updated.Name), changes)

	if assigneeIDs != nil {
		s.notifyAssignees(ctx, updated)
	}

	return updated, nil
}

func (s *TaskService) Delete(ctx context.Context, actor *model.User, id uuid.UUID) error {
	if err := requireAdmin(actor); err != nil {
		return err
	}

	task, err := s.tasks.FindByID(ctx, id)
	if err != nil {
		return err
	}

	if !s.policy.CanAccess(actor, task) {
		return domain.ErrForbidden
	}

	if err := s.tasks.Delete(ctx, id); err != nil {
		return err
	}

	taskID := task.ID
	s.activity.Record(ctx, actor, model.ActionDeleted, subjectTask, &taskID,
		fmt.Sprintf("Task %q deleted", task.Name), nil)

	return nil
}

type TaskUpdateInput struct {
	Body string `json:"body" validate:"required"`
}

// AddUpdate appends a progress note and mirrors it into the task's
// last-action summary.
func (s *TaskService) AddUpdate(ctx context.Context, actor *model.User, taskID uuid.UUID, input TaskUpdateInput) (*model.TaskUpdate, error) {
	if err := requireAdmin(actor); err != nil {
		return nil, err
	}

	if err := s.validate.Struct(input); err != nil {
		return nil, err
	}

	task, err := s.tasks.FindByID(ctx, taskID)
	if err != nil {
		return nil, err
	}

	if !s.policy.CanAccess(actor, task) {
		return nil, domain.ErrForbidden
	}

	actorID := actor.ID
	update := &model.TaskUpdate{
		TaskID:   task.ID,
		AuthorID: &actorID,
		Body:     input.Body,
	}

	if err := s.tasks.AddUpdate(ctx, update); err != nil {
		return nil, err
	}

	id := task.ID
	s.activity.Record(ctx, actor, model.ActionUpdated, subjectTask, &id,
		fmt.Sprintf("Progress noted on task %q", task.Name), nil)

	return update, nil
}

func (s *TaskService) EditUpdate(ctx context.Context, actor *model.User, updateID uuid.UUID, input TaskUpdateInput) (*model.TaskUpdate, error) {
	if err := requireAdmin(actor); err != nil {
		return nil, err
	}

	if err := s.validate.Struct(input); err != nil {
		return nil, err
	}

	update, err := s.tasks.FindUpdateByID(ctx, updateID)
	if err != nil {
		return nil, err
	}

	update.Body = input.Body
	if err := s.tasks.SaveUpdate(ctx, update); err != nil {
		return nil, err
	}

	return update, nil
}

func (s *TaskService) DeleteUpdate(ctx context.Context, actor *model.User, updateID uuid.UUID) error {
	if err := requireAdmin(actor); err != nil {
		return err
	}

	update, err := s.tasks.FindUpdateByID(ctx, updateID)
	if err != nil {
		return err
	}

	return s.tasks.DeleteUpdate(ctx, update.ID)
}

// checkReferences rejects the request before any write when a supplied
// division or assignee id doesn't exist.
func (s *TaskService) checkReferences(ctx context.Context, divisionIDs, assigneeIDs []uuid.UUID) error {
	if len(divisionIDs) > 0 {
		count, err := s.divisions.CountByIDs(ctx, divisionIDs)
		if err != nil {
			return err
		}
		if count != int64(len(divisionIDs)) {
			return fmt.Errorf("%w: division_ids references an unknown division", domain.ErrInvalidInput)
		}
	}

	if len(assigneeIDs) > 0 {
		count, err := s.users.CountByIDs(ctx, assigneeIDs)
		if err != nil {
			return err
		}
		if count != int64(len(assigneeIDs)) {
			return fmt.Errorf("%w: assignee_ids references an unknown user", domain.ErrInvalidInput)
		}
	}

	return nil
}

func (s *TaskService) notifyAssignees(ctx context.Context, task *model.Task) {
	if s.emailService == nil {
		return
	}

	link := fmt.Sprintf("%s/tasks/%s", s.config.BaseURL, task.ID)
	for _, assignee := range task.Assignees {
		if err := mailer.SendTaskAssignedEmail(s.emailService, assignee.Email, assignee.FullName(), task.Name, link); err != nil {
			slog.ErrorContext(ctx, "Failed to send assignment email",
				"error", err,
				"task_id", task.ID,
				"user_id", assignee.ID,
			)
		}
	}
}

func requireAdmin(actor *model.User) error {
	if actor == nil {
		return domain.ErrUnauthenticated
	}
	if actor.Role != model.RoleAdmin {
		return domain.ErrForbidden
	}
	return nil
}

// divisionScope returns the division filter for a user's listings. Admins
// are unscoped; a user without a division sees nothing.
func divisionScope(user *model.User) (*uuid.UUID, bool) {
	if user.Role == model.RoleAdmin {
		return nil, true
	}
	if user.DivisionID == nil {
		return nil, false
	}
	id := *user.DivisionID
	return &id, true
}

func diff(from, to string) map[string]string {
	return map[string]string{"from": from, "to": to}
}

func strOrEmpty(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func deref(ids *[]uuid.UUID) []uuid.UUID {
	if ids == nil {
		return nil
	}
	return *ids
}
