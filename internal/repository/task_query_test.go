// internal/repository/task_query_test.go
package repository

import (
	"context"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/opsdesk/taskboard/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// dryRunDB builds statements without touching a server so the generated
// SQL can be inspected.
func dryRunDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN: "host=localhost user=test dbname=test",
	}), &gorm.Config{
		DryRun:               true,
		DisableAutomaticPing: true,
	})
	require.NoError(t, err)
	return db
}

func buildListSQL(t *testing.T, opts ListOptions) (string, []interface{}) {
	repo := NewTaskRepository(dryRunDB(t))

	var tasks []*model.Task
	tx := repo.pageQuery(context.Background(), opts, NewPagination(100, 1, 15)).Find(&tasks)
	require.NoError(t, tx.Error)
	return tx.Statement.SQL.String(), tx.Statement.Vars
}

func TestListQueryPriorityRankIsFixed(t *testing.T) {
	sql, _ := buildListSQL(t, ListOptions{})

	require.Contains(t, sql, priorityRankExpr)
	assert.Contains(t, sql, "WHEN tasks.priority = 'Urgent' THEN 0")
	assert.Contains(t, sql, "WHEN tasks.priority = 'Regular' THEN 2")
	assert.Contains(t, sql, "WHEN tasks.priority IS NOT NULL THEN 1")
	assert.Contains(t, sql, "ELSE 3 END")

	// Rank first, due date second, creation time last.
	rank := strings.Index(sql, "CASE WHEN tasks.priority")
	due := strings.Index(sql, "tasks.due_date ASC NULLS LAST")
	created := strings.Index(sql, "tasks.created_at DESC")
	require.NotEqual(t, -1, rank)
	require.NotEqual(t, -1, due)
	require.NotEqual(t, -1, created)
	assert.Less(t, rank, due)
	assert.Less(t, due, created)
}

func TestListQueryDirectionOnlyAffectsDueDate(t *testing.T) {
	ascSQL, _ := buildListSQL(t, ListOptions{Order: "asc"})
	descSQL, _ := buildListSQL(t, ListOptions{Order: "desc"})

	assert.Contains(t, ascSQL, "tasks.due_date ASC NULLS LAST")
	assert.Contains(t, descSQL, "tasks.due_date DESC NULLS LAST")

	// Both directions keep the fixed rank and the creation-time tiebreaker.
	for _, sql := range []string{ascSQL, descSQL} {
		assert.Contains(t, sql, priorityRankExpr)
		assert.Contains(t, sql, "tasks.created_at DESC")
	}

	// Unknown directions collapse to ascending and never reach the SQL.
	injected, _ := buildListSQL(t, ListOptions{Order: "1; DROP TABLE tasks"})
	assert.Contains(t, injected, "tasks.due_date ASC NULLS LAST")
	assert.NotContains(t, injected, "DROP TABLE")
}

func TestListQuerySearchCoversAllFields(t *testing.T) {
	sql, vars := buildListSQL(t, ListOptions{Search: "ops"})

	for _, predicate := range []string{
		"tasks.name ILIKE",
		"tasks.last_action ILIKE",
		"tu.body ILIKE",
		"u.first_name ILIKE",
		"u.last_name ILIKE",
		"d.name ILIKE",
	} {
		assert.Contains(t, sql, predicate)
	}

	// Related rows are matched through subqueries, never joins that would
	// multiply the result set.
	assert.Contains(t, sql, "EXISTS (SELECT 1 FROM task_updates tu")
	assert.Contains(t, sql, "EXISTS (SELECT 1 FROM task_assignees ta")
	assert.Contains(t, sql, "EXISTS (SELECT 1 FROM task_divisions td2")

	assert.Contains(t, vars, "%ops%")
}

func TestListQuerySearchTrimsAndSkipsBlank(t *testing.T) {
	sql, _ := buildListSQL(t, ListOptions{Search: "   "})
	assert.NotContains(t, sql, "ILIKE")
}

func TestListQueryScopesByStatusAndDivision(t *testing.T) {
	division := uuid.New()
	sql, vars := buildListSQL(t, ListOptions{
		Statuses:   []model.TaskStatus{model.StatusNotStarted, model.StatusInProgress},
		DivisionID: &division,
	})

	assert.Contains(t, sql, "tasks.status IN")
	assert.Contains(t, sql, "EXISTS (SELECT 1 FROM task_divisions td WHERE td.task_id = tasks.id AND td.division_id =")
	assert.Contains(t, vars, division)
	assert.Contains(t, vars, model.StatusNotStarted)
	assert.Contains(t, vars, model.StatusInProgress)
}
