// internal/service/user.go
package service

import (
	"context"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/opsdesk/taskboard/internal/auth"
	"github.com/opsdesk/taskboard/internal/domain"
	"github.com/opsdesk/taskboard/internal/model"
	"github.com/opsdesk/taskboard/internal/repository"
)

const subjectUser = "User"

// UserService manages locally provisioned users (the assignee directory).
// Externally synced users come in through the IdentityService instead.
type UserService struct {
	users     repository.UserRepositoryIface
	divisions repository.DivisionRepositoryIface
	activity  *ActivityService
	hasher    *auth.PINHasher
	validate  *validator.Validate
}

func NewUserService(
	users repository.UserRepositoryIface,
	divisions repository.DivisionRepositoryIface,
	activity *ActivityService,
	hasher *auth.PINHasher,
) *UserService {
	return &UserService{
		users:     users,
		divisions: divisions,
		activity:  activity,
		hasher:    hasher,
		validate:  validator.New(),
	}
}

func (s *UserService) List(ctx context.Context, actor *model.User) ([]*model.User, error) {
	if actor == nil {
		return nil, domain.ErrUnauthenticated
	}
	return s.users.FindAll(ctx)
}

type CreateUserInput struct {
	Name       string     `json:"name" validate:"required"`
	Email      string     `json:"email" validate:"required,email"`
	FirstName  string     `json:"first_name"`
	LastName   string     `json:"last_name"`
	Position   string     `json:"position"`
	Role       model.Role `json:"role" validate:"omitempty,oneof=admin user"`
	DivisionID *uuid.UUID `json:"division_id"`
	PIN        string     `json:"pin" validate:"required,min=4"`
}

func (s *UserService) Create(ctx context.Context, actor *model.User, input CreateUserInput) (*model.User, error) {
	if err := requireAdmin(actor); err != nil {
		return nil, err
	}

	if err := s.validate.Struct(input); err != nil {
		return nil, err
	}

	if input.DivisionID != nil {
		if _, err := s.divisions.FindByID(ctx, *input.DivisionID); err != nil {
			return nil, err
		}
	}

	pinHash, err := s.hasher.Hash(input.PIN)
	if err != nil {
		return nil, fmt.Errorf("hashing PIN: %w", err)
	}

	role := input.Role
	if role == "" {
		role = model.RoleUser
	}

	user := &model.User{
		Name:       input.Name,
		Email:      input.Email,
		FirstName:  input.FirstName,
		LastName:   input.LastName,
		Position:   input.Position,
		Role:       role,
		DivisionID: input.DivisionID,
		PINHash:    pinHash,
	}

	if err := s.users.Create(ctx, user); err != nil {
		return nil, err
	}

	userID := user.ID
	s.activity.Record(ctx, actor, model.ActionCreated, subjectUser, &userID,
		fmt.Sprintf("User %q created", user.Name), nil)

	return user, nil
}

type UpdateUserInput struct {
	Name       *string     `json:"name" validate:"omitempty,min=1"`
	Email      *string     `json:"email" validate:"omitempty,email"`
	FirstName  *string     `json:"first_name"`
	LastName   *string     `json:"last_name"`
	Position   *string     `json:"position"`
	Role       *model.Role `json:"role" validate:"omitempty,oneof=admin user"`
	DivisionID *uuid.UUID  `json:"division_id"`
	PIN        *string     `json:"pin" validate:"omitempty,min=4"`
}

func (s *UserService) Update(ctx context.Context, actor *model.User, id uuid.UUID, input UpdateUserInput) (*model.User, error) {
	if err := requireAdmin(actor); err != nil {
		return nil, err
	}

	if err := s.validate.Struct(input); err != nil {
		return nil, err
	}

	user, err := s.users.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		user.Name = *input.Name
	}
	if input.Email != nil {
		user.Email = *input.Email
	}
	if input.FirstName != nil {
		user.FirstName = *input.FirstName
	}
	if input.LastName != nil {
		user.LastName = *input.LastName
	}
	if input.Position != nil {
		user.Position = *input.Position
	}
	if input.Role != nil {
		user.Role = *input.Role
	}
	if input.DivisionID != nil {
		if _, err := s.divisions.FindByID(ctx, *input.DivisionID); err != nil {
			return nil, err
		}
		user.DivisionID = input.DivisionID
	}
	if input.PIN != nil {
		pinHash, err := s.hasher.Hash(*input.PIN)
		if err != nil {
			return nil, fmt.Errorf("hashing PIN: %w", err)
		}
		user.PINHash = pinHash
	}

	if err := s.users.Update(ctx, user); err != nil {
		return nil, err
	}

	userID := user.ID
	s.activity.Record(ctx, actor, model.ActionUpdated, subjectUser, &userID,
		fmt.Sprintf("User %q updated", user.Name), nil)

	return user, nil
}

func (s *UserService) Delete(ctx context.Context, actor *model.User, id uuid.UUID) error {
	if err := requireAdmin(actor); err != nil {
		return err
	}

	user, err := s.users.FindByID(ctx, id)
	if err != nil {
		return err
	}

	if err := s.users.Delete(ctx, id); err != nil {
		return err
	}

	userID := user.ID
	s.activity.Record(ctx, actor, model.ActionDeleted, subjectUser, &userID,
		fmt.Sprintf("User %q deleted", user.Name), nil)

	return nil
}
