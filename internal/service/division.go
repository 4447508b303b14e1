// internal/service/division.go
package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/opsdesk/taskboard/internal/domain"
	"github.com/opsdesk/taskboard/internal/model"
	"github.com/opsdesk/taskboard/internal/repository"
)

const subjectDivision = "Division"

type DivisionService struct {
	divisions repository.DivisionRepositoryIface
	activity  *ActivityService
	validate  *validator.Validate
}

func NewDivisionService(divisions repository.DivisionRepositoryIface, activity *ActivityService) *DivisionService {
	return &DivisionService{
		divisions: divisions,
		activity:  activity,
		validate:  validator.New(),
	}
}

func (s *DivisionService) List(ctx context.Context, actor *model.User) ([]*model.Division, error) {
	if actor == nil {
		return nil, domain.ErrUnauthenticated
	}
	return s.divisions.FindAll(ctx)
}

type DivisionInput struct {
	Name  string `json:"name" validate:"required"`
	Color string `json:"color" validate:"required,len=6,hexadecimal"`
}

func (s *DivisionService) Create(ctx context.Context, actor *model.User, input DivisionInput) (*model.Division, error) {
	if err := requireAdmin(actor); err != nil {
		return nil, err
	}

	if err := s.validate.Struct(input); err != nil {
		return nil, err
	}

	if err := s.checkNameFree(ctx, input.Name, uuid.Nil); err != nil {
		return nil, err
	}

	division := &model.Division{
		Name:  input.Name,
		Color: input.Color,
	}

	if err := s.divisions.Create(ctx, division); err != nil {
		return nil, err
	}

	divisionID := division.ID
	s.activity.Record(ctx, actor, model.ActionCreated, subjectDivision, &divisionID,
		fmt.Sprintf("Division %q created", division.Name), nil)

	return division, nil
}

func (s *DivisionService) Update(ctx context.Context, actor *model.User, id uuid.UUID, input DivisionInput) (*model.Division, error) {
	if err := requireAdmin(actor); err != nil {
		return nil, err
	}

	if err := s.validate.Struct(input); err != nil {
		return nil, err
	}

	division, err := s.divisions.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := s.checkNameFree(ctx, input.Name, id); err != nil {
		return nil, err
	}

	division.Name = input.Name
	division.Color = input.Color

	if err := s.divisions.Update(ctx, division); err != nil {
		return nil, err
	}

	divisionID := division.ID
	s.activity.Record(ctx, actor, model.ActionUpdated, subjectDivision, &divisionID,
		fmt.Sprintf("Division %q updated", division.Name), nil)

	return division, nil
}

// Delete removes the division; tasks that referenced it simply lose the
// association.
func (s *DivisionService) Delete(ctx context.Context, actor *model.User, id uuid.UUID) error {
	if err := requireAdmin(actor); err != nil {
		return err
	}

	division, err := s.divisions.FindByID(ctx, id)
	if err != nil {
		return err
	}

	if err := s.divisions.Delete(ctx, id); err != nil {
		return err
	}

	divisionID := division.ID
	s.activity.Record(ctx, actor, model.ActionDeleted, subjectDivision, &divisionID,
		fmt.Sprintf("Division %q deleted", division.Name), nil)

	return nil
}

func (s *DivisionService) checkNameFree(ctx context.Context, name string, self uuid.UUID) error {
	existing, err := s.divisions.FindByName(ctx, name)
	if err != nil {
		if errors.Is(err, domain.ErrDivisionNotFound) {
			return nil
		}
		return err
	}
	if existing.ID != self {
		return domain.ErrDivisionNameTaken
	}
	return nil
}
