// internal/service/policy_test.go
package service

import (
	"testing"

	"github.com/google/uuid"
	"github.com/opsdesk/taskboard/internal/model"
	"github.com/stretchr/testify/assert"
)

func TestTaskPolicyCanAccess(t *testing.T) {
	policy := NewTaskPolicy()

	engineering := uuid.New()
	marketing := uuid.New()

	task := &model.Task{
		Divisions: []model.Division{{ID: engineering}},
	}

	t.Run("admin passes regardless of division", func(t *testing.T) {
		admin := &model.User{Role: model.RoleAdmin}
		assert.True(t, policy.CanAccess(admin, task))
	})

	t.Run("member of an associated division passes", func(t *testing.T) {
		user := &model.User{Role: model.RoleUser, DivisionID: &engineering}
		assert.True(t, policy.CanAccess(user, task))
	})

	t.Run("member of another division is denied", func(t *testing.T) {
		user := &model.User{Role: model.RoleUser, DivisionID: &marketing}
		assert.False(t, policy.CanAccess(user, task))
	})

	t.Run("user without a division is denied", func(t *testing.T) {
		user := &model.User{Role: model.RoleUser}
		assert.False(t, policy.CanAccess(user, task))
	})

	t.Run("nil user is denied", func(t *testing.T) {
		assert.False(t, policy.CanAccess(nil, task))
	})

	t.Run("nil task is denied", func(t *testing.T) {
		admin := &model.User{Role: model.RoleAdmin}
		assert.False(t, policy.CanAccess(admin, nil))
	})
}
