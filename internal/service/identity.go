// internal/service/identity.go
package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/opsdesk/taskboard/internal/auth"
	"github.com/opsdesk/taskboard/internal/domain"
	"github.com/opsdesk/taskboard/internal/legacy"
	"github.com/opsdesk/taskboard/internal/model"
	"github.com/opsdesk/taskboard/internal/repository"
)

// LegacySessionStoreIface is the read-only view of the legacy HR system
// the resolver needs.
type LegacySessionStoreIface interface {
	Lookup(ctx context.Context, sessionID string) (*legacy.Identity, error)
}

// IdentityService establishes sessions, either from a local PIN or from an
// externally issued session id, provisioning local users on first contact
// with a legacy identity.
type IdentityService struct {
	users    repository.UserRepositoryIface
	sessions LegacySessionStoreIface
	hasher   *auth.PINHasher
	tokens   *auth.TokenManager
}

func NewIdentityService(
	users repository.UserRepositoryIface,
	sessions LegacySessionStoreIface,
	hasher *auth.PINHasher,
	tokens *auth.TokenManager,
) *IdentityService {
	return &IdentityService{
		users:    users,
		sessions: sessions,
		hasher:   hasher,
		tokens:   tokens,
	}
}

type SessionOutput struct {
	User  *model.User `json:"user"`
	Token string      `json:"token"`
}

// LoginWithPIN checks the submitted PIN against every user that holds a
// local credential and establishes a session for the first match. Failure
// is always the same generic error so the response can't be used to
// enumerate accounts. The scan is O(n) in user count; fine at this scale.
func (s *IdentityService) LoginWithPIN(ctx context.Context, pin string) (*SessionOutput, error) {
	if pin == "" {
		return nil, domain.ErrInvalidPIN
	}

	users, err := s.users.FindWithPIN(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading credentialed users: %w", err)
	}

	for _, user := range users {
		ok, err := s.hasher.Verify(pin, user.PINHash)
		if err != nil {
			// A malformed stored hash shouldn't block other users.
			continue
		}
		if ok {
			return s.establishSession(user)
		}
	}

	return nil, domain.ErrInvalidPIN
}

// ResolveExternal trades a legacy session id for a local session. An
// unknown session id yields domain.ErrSessionNotFound and the caller
// proceeds anonymous; a known one finds or provisions the local user and
// refreshes the synced profile fields.
func (s *IdentityService) ResolveExternal(ctx context.Context, sessionID string) (*SessionOutput, error) {
	if s.sessions == nil {
		return nil, domain.ErrSessionNotFound
	}

	ident, err := s.sessions.Lookup(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	user, err := s.users.FindByExternalID(ctx, ident.ExternalID)
	switch {
	case err == nil:
		// Only profile fields sync on refresh; name, email, and role stay
		// under local control once provisioned.
		user.FirstName = ident.FirstName
		user.LastName = ident.LastName
		user.Position = ident.Position
		if err := s.users.Update(ctx, user); err != nil {
			return nil, fmt.Errorf("refreshing user profile: %w", err)
		}

	case errors.Is(err, domain.ErrUserNotFound):
		user, err = s.provision(ctx, ident)
		if err != nil {
			return nil, err
		}

	default:
		return nil, err
	}

	return s.establishSession(user)
}

// FindUser loads a user by id, for middleware rebuilding the request
// identity from token claims.
func (s *IdentityService) FindUser(ctx context.Context, id uuid.UUID) (*model.User, error) {
	return s.users.FindByID(ctx, id)
}

func (s *IdentityService) provision(ctx context.Context, ident *legacy.Identity) (*model.User, error) {
	placeholder, err := auth.RandomPlaceholderPIN()
	if err != nil {
		return nil, err
	}
	placeholderHash, err := s.hasher.Hash(placeholder)
	if err != nil {
		return nil, fmt.Errorf("hashing placeholder credential: %w", err)
	}

	externalID := ident.ExternalID
	user := &model.User{
		Name:       ident.Username,
		Email:      fmt.Sprintf("%s@example.com", ident.Username),
		FirstName:  ident.FirstName,
		LastName:   ident.LastName,
		Position:   ident.Position,
		Role:       model.RoleUser,
		ExternalID: &externalID,
		PINHash:    placeholderHash,
	}

	if err := s.users.Create(ctx, user); err != nil {
		// Two first-time logins for the same legacy identity can race;
		// the unique index on external_id decides the winner and the
		// loser adopts the existing row.
		existing, ferr := s.users.FindByExternalID(ctx, ident.ExternalID)
		if ferr != nil {
			return nil, fmt.Errorf("provisioning user: %w", err)
		}
		existing.FirstName = ident.FirstName
		existing.LastName = ident.LastName
		existing.Position = ident.Position
		if uerr := s.users.Update(ctx, existing); uerr != nil {
			return nil, fmt.Errorf("refreshing user profile: %w", uerr)
		}
		return existing, nil
	}

	return user, nil
}

func (s *IdentityService) establishSession(user *model.User) (*SessionOutput, error) {
	token, err := s.tokens.Generate(user.ID.String(), string(user.Role))
	if err != nil {
		return nil, fmt.Errorf("generating token: %w", err)
	}

	return &SessionOutput{
		User:  user,
		Token: token,
	}, nil
}
