// internal/middleware/auth_test.go
package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/opsdesk/taskboard/internal/auth"
	"github.com/opsdesk/taskboard/internal/domain"
	"github.com/opsdesk/taskboard/internal/legacy"
	"github.com/opsdesk/taskboard/internal/mocks"
	"github.com/opsdesk/taskboard/internal/model"
	"github.com/opsdesk/taskboard/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestSession(t *testing.T) (func(http.Handler) http.Handler, *auth.TokenManager, *mocks.MockUserRepositoryIface, *mocks.MockLegacySessionStoreIface) {
	ctrl := gomock.NewController(t)
	users := mocks.NewMockUserRepositoryIface(ctrl)
	sessions := mocks.NewMockLegacySessionStoreIface(ctrl)

	tokens := auth.NewTokenManager("test-secret", time.Hour)
	identity := service.NewIdentityService(users, sessions, auth.NewPINHasher(), tokens)

	return Session(tokens, identity), tokens, users, sessions
}

func captureUser(seen **model.User) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		*seen = UserFrom(r.Context())
		w.WriteHeader(http.StatusOK)
	})
}

func TestSessionAcceptsBearerToken(t *testing.T) {
	session, tokens, users, _ := newTestSession(t)

	user := &model.User{ID: uuid.New(), Name: "alice", Role: model.RoleAdmin}
	users.EXPECT().FindByID(gomock.Any(), user.ID).Return(user, nil)

	token, err := tokens.Generate(user.ID.String(), string(user.Role))
	require.NoError(t, err)

	var seen *model.User
	r := httptest.NewRequest("GET", "/api/tasks", nil)
	r.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()

	session(captureUser(&seen)).ServeHTTP(w, r)

	require.NotNil(t, seen)
	assert.Equal(t, user.ID, seen.ID)
}

func TestSessionAcceptsCookieToken(t *testing.T) {
	session, tokens, users, _ := newTestSession(t)

	user := &model.User{ID: uuid.New(), Name: "alice", Role: model.RoleUser}
	users.EXPECT().FindByID(gomock.Any(), user.ID).Return(user, nil)

	token, err := tokens.Generate(user.ID.String(), string(user.Role))
	require.NoError(t, err)

	var seen *model.User
	r := httptest.NewRequest("GET", "/api/tasks", nil)
	r.AddCookie(&http.Cookie{Name: SessionCookie, Value: token})
	w := httptest.NewRecorder()

	session(captureUser(&seen)).ServeHTTP(w, r)

	require.NotNil(t, seen)
	assert.Equal(t, user.ID, seen.ID)
}

func TestSessionResolvesExternalSessionAndSetsCookie(t *testing.T) {
	session, _, users, sessions := newTestSession(t)

	user := &model.User{ID: uuid.New(), Name: "jdoe", Role: model.RoleUser}

	sessions.EXPECT().Lookup(gomock.Any(), "ext-1").Return(&legacy.Identity{ExternalID: 42, Username: "jdoe"}, nil)
	users.EXPECT().FindByExternalID(gomock.Any(), int64(42)).Return(user, nil)
	users.EXPECT().Update(gomock.Any(), user).Return(nil)

	var seen *model.User
	r := httptest.NewRequest("GET", "/api/tasks?extsession=ext-1", nil)
	w := httptest.NewRecorder()

	session(captureUser(&seen)).ServeHTTP(w, r)

	require.NotNil(t, seen)
	assert.Equal(t, user.ID, seen.ID)

	cookies := w.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, SessionCookie, cookies[0].Name)
	assert.NotEmpty(t, cookies[0].Value)
	assert.True(t, cookies[0].HttpOnly)
}

func TestSessionUnknownExternalSessionContinuesAnonymous(t *testing.T) {
	session, _, _, sessions := newTestSession(t)

	sessions.EXPECT().Lookup(gomock.Any(), "stale").Return(nil, domain.ErrSessionNotFound)

	var seen *model.User
	r := httptest.NewRequest("GET", "/api/tasks?extsession=stale", nil)
	w := httptest.NewRecorder()

	session(captureUser(&seen)).ServeHTTP(w, r)

	assert.Nil(t, seen)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, w.Result().Cookies())
}

func TestSessionIgnoresInvalidToken(t *testing.T) {
	session, _, _, _ := newTestSession(t)

	var seen *model.User
	r := httptest.NewRequest("GET", "/api/tasks", nil)
	r.Header.Set("Authorization", "Bearer not.a.token")
	w := httptest.NewRecorder()

	session(captureUser(&seen)).ServeHTTP(w, r)

	assert.Nil(t, seen)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRequireUser(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	t.Run("anonymous is rejected", func(t *testing.T) {
		r := httptest.NewRequest("GET", "/api/tasks", nil)
		w := httptest.NewRecorder()

		RequireUser(next).ServeHTTP(w, r)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("authenticated passes through", func(t *testing.T) {
		r := httptest.NewRequest("GET", "/api/tasks", nil)
		r = r.WithContext(withUser(r.Context(), &model.User{ID: uuid.New()}))
		w := httptest.NewRecorder()

		RequireUser(next).ServeHTTP(w, r)
		assert.Equal(t, http.StatusOK, w.Code)
	})
}
