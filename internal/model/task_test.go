// internal/model/task_test.go
package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPriorityRank(t *testing.T) {
	urgent := PriorityUrgent
	regular := PriorityRegular
	imported := "High"

	assert.Equal(t, 0, PriorityRank(&urgent))
	assert.Equal(t, 1, PriorityRank(&imported))
	assert.Equal(t, 2, PriorityRank(&regular))
	assert.Equal(t, 3, PriorityRank(nil))
}

func TestLatestUpdate(t *testing.T) {
	task := &Task{}
	assert.Nil(t, task.LatestUpdate())

	task.Updates = []TaskUpdate{
		{Body: "newest"},
		{Body: "older"},
	}
	latest := task.LatestUpdate()
	assert.Equal(t, "newest", latest.Body)
}
