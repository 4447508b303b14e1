// internal/service/identity_test.go
package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/opsdesk/taskboard/internal/auth"
	"github.com/opsdesk/taskboard/internal/domain"
	"github.com/opsdesk/taskboard/internal/legacy"
	"github.com/opsdesk/taskboard/internal/mocks"
	"github.com/opsdesk/taskboard/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestIdentityService(t *testing.T) (*IdentityService, *mocks.MockUserRepositoryIface, *mocks.MockLegacySessionStoreIface) {
	ctrl := gomock.NewController(t)
	users := mocks.NewMockUserRepositoryIface(ctrl)
	sessions := mocks.NewMockLegacySessionStoreIface(ctrl)

	svc := NewIdentityService(
		users,
		sessions,
		auth.NewPINHasher(),
		auth.NewTokenManager("test-secret", time.Hour),
	)
	return svc, users, sessions
}

func TestLoginWithPIN(t *testing.T) {
	hasher := auth.NewPINHasher()

	pinHash, err := hasher.Hash("4821")
	require.NoError(t, err)
	otherHash, err := hasher.Hash("9999")
	require.NoError(t, err)

	alice := &model.User{ID: uuid.New(), Name: "alice", Role: model.RoleAdmin, PINHash: otherHash}
	bob := &model.User{ID: uuid.New(), Name: "bob", Role: model.RoleUser, PINHash: pinHash}
	// A corrupted stored hash must not block the scan.
	broken := &model.User{ID: uuid.New(), Name: "carol", PINHash: "garbage"}

	t.Run("matching PIN establishes a session", func(t *testing.T) {
		svc, users, _ := newTestIdentityService(t)
		users.EXPECT().FindWithPIN(gomock.Any()).Return([]*model.User{alice, broken, bob}, nil)

		out, err := svc.LoginWithPIN(context.Background(), "4821")
		require.NoError(t, err)
		assert.Equal(t, bob.ID, out.User.ID)
		assert.NotEmpty(t, out.Token)
	})

	t.Run("wrong PIN yields the generic error", func(t *testing.T) {
		svc, users, _ := newTestIdentityService(t)
		users.EXPECT().FindWithPIN(gomock.Any()).Return([]*model.User{alice, bob}, nil)

		_, err := svc.LoginWithPIN(context.Background(), "0000")
		assert.ErrorIs(t, err, domain.ErrInvalidPIN)
	})

	t.Run("empty PIN is rejected without touching the repository", func(t *testing.T) {
		svc, _, _ := newTestIdentityService(t)

		_, err := svc.LoginWithPIN(context.Background(), "")
		assert.ErrorIs(t, err, domain.ErrInvalidPIN)
	})
}

func TestResolveExternalRefreshesKnownUser(t *testing.T) {
	svc, users, sessions := newTestIdentityService(t)

	existing := &model.User{
		ID:        uuid.New(),
		Name:      "jdoe",
		Email:     "jdoe@opsdesk.test",
		FirstName: "Stale",
		LastName:  "Name",
		Role:      model.RoleAdmin,
	}

	sessions.EXPECT().Lookup(gomock.Any(), "sess-1").Return(&legacy.Identity{
		ExternalID: 42,
		Username:   "jdoe",
		FirstName:  "Jane",
		LastName:   "Doe",
		Position:   "Analyst",
	}, nil)
	users.EXPECT().FindByExternalID(gomock.Any(), int64(42)).Return(existing, nil)
	users.EXPECT().Update(gomock.Any(), existing).Return(nil)

	out, err := svc.ResolveExternal(context.Background(), "sess-1")
	require.NoError(t, err)

	// Profile fields sync; locally managed fields stay put.
	assert.Equal(t, "Jane", out.User.FirstName)
	assert.Equal(t, "Doe", out.User.LastName)
	assert.Equal(t, "Analyst", out.User.Position)
	assert.Equal(t, "jdoe@opsdesk.test", out.User.Email)
	assert.Equal(t, model.RoleAdmin, out.User.Role)
	assert.NotEmpty(t, out.Token)
}

func TestResolveExternalProvisionsFirstContact(t *testing.T) {
	svc, users, sessions := newTestIdentityService(t)

	sessions.EXPECT().Lookup(gomock.Any(), "sess-2").Return(&legacy.Identity{
		ExternalID: 77,
		Username:   "newhire",
		FirstName:  "New",
		LastName:   "Hire",
		Position:   "Clerk",
	}, nil)
	users.EXPECT().FindByExternalID(gomock.Any(), int64(77)).Return(nil, domain.ErrUserNotFound)
	users.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, user *model.User) error {
			user.ID = uuid.New()
			return nil
		})

	out, err := svc.ResolveExternal(context.Background(), "sess-2")
	require.NoError(t, err)

	user := out.User
	assert.Equal(t, "newhire", user.Name)
	assert.Equal(t, "newhire@example.com", user.Email)
	assert.Equal(t, model.RoleUser, user.Role)
	require.NotNil(t, user.ExternalID)
	assert.Equal(t, int64(77), *user.ExternalID)
	assert.NotEmpty(t, user.PINHash)
}

func TestResolveExternalProvisionRaceAdoptsWinner(t *testing.T) {
	svc, users, sessions := newTestIdentityService(t)

	winner := &model.User{ID: uuid.New(), Name: "jdoe", Role: model.RoleUser}

	sessions.EXPECT().Lookup(gomock.Any(), "sess-3").Return(&legacy.Identity{
		ExternalID: 42,
		Username:   "jdoe",
		FirstName:  "Jane",
		LastName:   "Doe",
	}, nil)
	gomock.InOrder(
		users.EXPECT().FindByExternalID(gomock.Any(), int64(42)).Return(nil, domain.ErrUserNotFound),
		users.EXPECT().Create(gomock.Any(), gomock.Any()).Return(assert.AnError),
		users.EXPECT().FindByExternalID(gomock.Any(), int64(42)).Return(winner, nil),
		users.EXPECT().Update(gomock.Any(), winner).Return(nil),
	)

	out, err := svc.ResolveExternal(context.Background(), "sess-3")
	require.NoError(t, err)
	assert.Equal(t, winner.ID, out.User.ID)
	assert.Equal(t, "Jane", out.User.FirstName)
}

func TestResolveExternalUnknownSession(t *testing.T) {
	svc, _, sessions := newTestIdentityService(t)

	sessions.EXPECT().Lookup(gomock.Any(), "missing").Return(nil, domain.ErrSessionNotFound)

	_, err := svc.ResolveExternal(context.Background(), "missing")
	assert.ErrorIs(t, err, domain.ErrSessionNotFound)
}

func TestResolveExternalWithoutStore(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := NewIdentityService(
		mocks.NewMockUserRepositoryIface(ctrl),
		nil,
		auth.NewPINHasher(),
		auth.NewTokenManager("test-secret", time.Hour),
	)

	_, err := svc.ResolveExternal(context.Background(), "anything")
	assert.ErrorIs(t, err, domain.ErrSessionNotFound)
}
