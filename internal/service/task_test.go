// internal/service/task_test.go
package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/opsdesk/taskboard/internal/config"
	"github.com/opsdesk/taskboard/internal/domain"
	"github.com/opsdesk/taskboard/internal/mocks"
	"github.com/opsdesk/taskboard/internal/model"
	"github.com/opsdesk/taskboard/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type taskServiceMocks struct {
	tasks     *mocks.MockTaskRepositoryIface
	divisions *mocks.MockDivisionRepositoryIface
	users     *mocks.MockUserRepositoryIface
	activity  *mocks.MockActivityRepositoryIface
}

func newTestTaskService(t *testing.T) (*TaskService, taskServiceMocks) {
	ctrl := gomock.NewController(t)
	m := taskServiceMocks{
		tasks:     mocks.NewMockTaskRepositoryIface(ctrl),
		divisions: mocks.NewMockDivisionRepositoryIface(ctrl),
		users:     mocks.NewMockUserRepositoryIface(ctrl),
		activity:  mocks.NewMockActivityRepositoryIface(ctrl),
	}

	// Audit writes are best-effort and incidental to these tests.
	m.activity.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	svc := NewTaskService(
		m.tasks,
		m.divisions,
		m.users,
		NewActivityService(m.activity),
		NewTaskPolicy(),
		nil,
		&config.Config{},
	)
	return svc, m
}

func adminActor() *model.User {
	return &model.User{ID: uuid.New(), Name: "admin", Role: model.RoleAdmin}
}

func TestListBoardAdminIsUnscoped(t *testing.T) {
	svc, m := newTestTaskService(t)

	var captured []repository.ListOptions
	m.tasks.EXPECT().List(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, opts repository.ListOptions) ([]*model.Task, repository.Pagination, error) {
			captured = append(captured, opts)
			return []*model.Task{}, repository.NewPagination(0, 1, 15), nil
		}).Times(2)

	board, err := svc.ListBoard(context.Background(), adminActor(), ListInput{
		ActiveSearch: "report",
		ActiveOrder:  "desc",
		ActivePage:   2,
	})
	require.NoError(t, err)
	require.Len(t, captured, 2)

	active, completed := captured[0], captured[1]
	assert.Nil(t, active.DivisionID)
	assert.Equal(t, []model.TaskStatus{model.StatusNotStarted, model.StatusInProgress}, active.Statuses)
	assert.Equal(t, "report", active.Search)
	assert.Equal(t, "desc", active.Order)
	assert.Equal(t, 2, active.Page)

	assert.Nil(t, completed.DivisionID)
	assert.Equal(t, []model.TaskStatus{model.StatusCompleted}, completed.Statuses)
	assert.Empty(t, completed.Search)

	assert.Empty(t, board.Active.Tasks)
	assert.Empty(t, board.Completed.Tasks)
}

func TestListBoardScopesToUserDivision(t *testing.T) {
	svc, m := newTestTaskService(t)

	division := uuid.New()
	actor := &model.User{ID: uuid.New(), Role: model.RoleUser, DivisionID: &division}

	m.tasks.EXPECT().List(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, opts repository.ListOptions) ([]*model.Task, repository.Pagination, error) {
			require.NotNil(t, opts.DivisionID)
			assert.Equal(t, division, *opts.DivisionID)
			return []*model.Task{}, repository.NewPagination(0, 1, 15), nil
		}).Times(2)

	_, err := svc.ListBoard(context.Background(), actor, ListInput{})
	require.NoError(t, err)
}

func TestListBoardUserWithoutDivisionSeesNothing(t *testing.T) {
	svc, _ := newTestTaskService(t)

	actor := &model.User{ID: uuid.New(), Role: model.RoleUser}

	board, err := svc.ListBoard(context.Background(), actor, ListInput{})
	require.NoError(t, err)
	assert.Empty(t, board.Active.Tasks)
	assert.Empty(t, board.Completed.Tasks)
	assert.EqualValues(t, 0, board.Active.Pagination.Total)
}

func TestListBoardRequiresActor(t *testing.T) {
	svc, _ := newTestTaskService(t)

	_, err := svc.ListBoard(context.Background(), nil, ListInput{})
	assert.ErrorIs(t, err, domain.ErrUnauthenticated)
}

func TestCreateRequiresAdmin(t *testing.T) {
	svc, _ := newTestTaskService(t)

	input := CreateTaskInput{Name: "Quarterly report", Status: model.StatusNotStarted, DivisionIDs: IDList{uuid.New()}}

	_, err := svc.Create(context.Background(), &model.User{Role: model.RoleUser}, input)
	assert.ErrorIs(t, err, domain.ErrForbidden)

	_, err = svc.Create(context.Background(), nil, input)
	assert.ErrorIs(t, err, domain.ErrUnauthenticated)
}

func TestCreateRequiresDivision(t *testing.T) {
	svc, _ := newTestTaskService(t)

	_, err := svc.Create(context.Background(), adminActor(), CreateTaskInput{
		Name:   "Quarterly report",
		Status: model.StatusNotStarted,
	})
	assert.Error(t, err)
}

func TestCreateRejectsUnknownDivision(t *testing.T) {
	svc, m := newTestTaskService(t)

	divisionID := uuid.New()
	m.divisions.EXPECT().CountByIDs(gomock.Any(), []uuid.UUID{divisionID}).Return(int64(0), nil)

	_, err := svc.Create(context.Background(), adminActor(), CreateTaskInput{
		Name:        "Quarterly report",
		Status:      model.StatusNotStarted,
		DivisionIDs: IDList{divisionID},
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestCreateDedupesIDsAndParsesDueDate(t *testing.T) {
	svc, m := newTestTaskService(t)

	divisionID := uuid.New()
	assigneeID := uuid.New()
	taskID := uuid.New()
	due := "2025-03-10"

	m.divisions.EXPECT().CountByIDs(gomock.Any(), []uuid.UUID{divisionID}).Return(int64(1), nil)
	m.users.EXPECT().CountByIDs(gomock.Any(), []uuid.UUID{assigneeID}).Return(int64(1), nil)
	m.tasks.EXPECT().Create(gomock.Any(), gomock.Any(), []uuid.UUID{divisionID}, []uuid.UUID{assigneeID}).DoAndReturn(
		func(_ context.Context, task *model.Task, _, _ []uuid.UUID) error {
			require.NotNil(t, task.DueDate)
			assert.Equal(t, time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC), *task.DueDate)
			task.ID = taskID
			return nil
		})
	m.tasks.EXPECT().FindByID(gomock.Any(), taskID).Return(&model.Task{ID: taskID, Name: "Quarterly report"}, nil)

	created, err := svc.Create(context.Background(), adminActor(), CreateTaskInput{
		Name:        "Quarterly report",
		Status:      model.StatusNotStarted,
		DueDate:     &due,
		DivisionIDs: IDList{divisionID, divisionID},
		AssigneeIDs: IDList{assigneeID, assigneeID},
	})
	require.NoError(t, err)
	assert.Equal(t, taskID, created.ID)
}

func TestUpdateLeavesAssociationsWhenAbsent(t *testing.T) {
	svc, m := newTestTaskService(t)

	taskID := uuid.New()
	task := &model.Task{ID: taskID, Name: "Old name", Status: model.StatusNotStarted}

	m.tasks.EXPECT().FindByID(gomock.Any(), taskID).Return(task, nil).Times(2)
	m.tasks.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Nil(), gomock.Nil()).DoAndReturn(
		func(_ context.Context, updated *model.Task, _, _ *[]uuid.UUID) error {
			assert.Equal(t, "New name", updated.Name)
			return nil
		})

	name := "New name"
	_, err := svc.Update(context.Background(), adminActor(), taskID, UpdateTaskInput{Name: &name})
	require.NoError(t, err)
}

func TestUpdateReplacesAssociationsWhenPresent(t *testing.T) {
	svc, m := newTestTaskService(t)

	taskID := uuid.New()
	divisionID := uuid.New()
	task := &model.Task{ID: taskID, Name: "Report", Status: model.StatusNotStarted}

	m.tasks.EXPECT().FindByID(gomock.Any(), taskID).Return(task, nil).Times(2)
	m.divisions.EXPECT().CountByIDs(gomock.Any(), []uuid.UUID{divisionID}).Return(int64(1), nil)
	m.tasks.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Nil()).DoAndReturn(
		func(_ context.Context, _ *model.Task, divisionIDs, _ *[]uuid.UUID) error {
			require.NotNil(t, divisionIDs)
			assert.Equal(t, []uuid.UUID{divisionID}, *divisionIDs)
			return nil
		})

	divisions := IDList{divisionID}
	_, err := svc.Update(context.Background(), adminActor(), taskID, UpdateTaskInput{DivisionIDs: &divisions})
	require.NoError(t, err)
}

func TestUpdateClearsPriorityWithEmptyString(t *testing.T) {
	svc, m := newTestTaskService(t)

	taskID := uuid.New()
	urgent := model.PriorityUrgent
	task := &model.Task{ID: taskID, Name: "Report", Status: model.StatusNotStarted, Priority: &urgent}

	m.tasks.EXPECT().FindByID(gomock.Any(), taskID).Return(task, nil).Times(2)
	m.tasks.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Nil(), gomock.Nil()).DoAndReturn(
		func(_ context.Context, updated *model.Task, _, _ *[]uuid.UUID) error {
			assert.Nil(t, updated.Priority)
			return nil
		})

	empty := ""
	_, err := svc.Update(context.Background(), adminActor(), taskID, UpdateTaskInput{Priority: &empty})
	require.NoError(t, err)
}

func TestUpdateRejectsEmptyDivisionList(t *testing.T) {
	svc, _ := newTestTaskService(t)

	empty := IDList{}
	_, err := svc.Update(context.Background(), adminActor(), uuid.New(), UpdateTaskInput{DivisionIDs: &empty})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestUpdateRequiresAdmin(t *testing.T) {
	svc, _ := newTestTaskService(t)

	_, err := svc.Update(context.Background(), &model.User{Role: model.RoleUser}, uuid.New(), UpdateTaskInput{})
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestDeleteRecordsAndRemoves(t *testing.T) {
	svc, m := newTestTaskService(t)

	taskID := uuid.New()
	m.tasks.EXPECT().FindByID(gomock.Any(), taskID).Return(&model.Task{ID: taskID, Name: "Report"}, nil)
	m.tasks.EXPECT().Delete(gomock.Any(), taskID).Return(nil)

	err := svc.Delete(context.Background(), adminActor(), taskID)
	require.NoError(t, err)
}

func TestAddUpdateStampsAuthor(t *testing.T) {
	svc, m := newTestTaskService(t)

	actor := adminActor()
	taskID := uuid.New()

	m.tasks.EXPECT().FindByID(gomock.Any(), taskID).Return(&model.Task{ID: taskID, Name: "Report"}, nil)
	m.tasks.EXPECT().AddUpdate(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, update *model.TaskUpdate) error {
			assert.Equal(t, taskID, update.TaskID)
			require.NotNil(t, update.AuthorID)
			assert.Equal(t, actor.ID, *update.AuthorID)
			return nil
		})

	update, err := svc.AddUpdate(context.Background(), actor, taskID, TaskUpdateInput{Body: "Sent for review"})
	require.NoError(t, err)
	assert.Equal(t, "Sent for review", update.Body)
}

func TestAddUpdateRequiresBody(t *testing.T) {
	svc, _ := newTestTaskService(t)

	_, err := svc.AddUpdate(context.Background(), adminActor(), uuid.New(), TaskUpdateInput{})
	assert.Error(t, err)
}
