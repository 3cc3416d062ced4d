package serviceImp

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"agro/database"
	"agro/entities"
	"agro/pkg/proximity"
	"agro/pkg/task/repositoryImp"
	"agro/pkg/task/service"
	"agro/pkg/telemetry"
)

func newService(t *testing.T, today string) service.TaskService {
	t.Helper()
	db, err := database.OpenSQLite(":memory:")
	require.NoError(t, err)
	now, err := proximity.ParseDay(today, time.UTC)
	require.NoError(t, err)
	svc := NewTaskService(repositoryImp.New(db), proximity.Fixed(now), telemetry.Nop{}, zap.NewNop())
	require.NoError(t, svc.Seed(entities.SeedTasks()))
	return svc
}

func TestList_Filter(t *testing.T) {
	svc := newService(t, "2024-02-10")

	all, err := svc.List("all")
	require.NoError(t, err)
	assert.Len(t, all, 5)

	pending, err := svc.List("pendiente")
	require.NoError(t, err)
	require.Len(t, pending, 2)
	assert.Equal(t, "T-001", pending[0].ID)
	assert.Equal(t, "T-005", pending[1].ID)

	_, err = svc.List("cancelada")
	assert.ErrorIs(t, err, entities.ErrUnknownStatus)
}

func TestCreate_Defaults(t *testing.T) {
	svc := newService(t, "2024-02-10")

	task, err := svc.Create(entities.TaskDraft{Title: "Cosecha de soja", Type: "cosecha", Priority: entities.PriorityLow, DueDate: "2024-03-01"})
	require.NoError(t, err)
	assert.Equal(t, "T-006", task.ID)
	assert.Equal(t, entities.TaskPending, task.Status)
	assert.Equal(t, "2024-02-10", task.CreatedDate)
	assert.Equal(t, 1.0, task.EstimatedHours)

	st, err := svc.Stats()
	require.NoError(t, err)
	assert.Equal(t, 6, st.Total)
	assert.Equal(t, 3, st.Pending)
}

func TestPatch(t *testing.T) {
	svc := newService(t, "2024-02-10")

	task, err := svc.Patch("T-001", entities.TaskInProgress, nil)
	require.NoError(t, err)
	assert.Equal(t, entities.TaskInProgress, task.Status)

	hours := 8.0
	task, err = svc.Patch("T-001", entities.TaskCompleted, &hours)
	require.NoError(t, err)
	assert.Equal(t, entities.TaskCompleted, task.Status)
	require.NotNil(t, task.CompletedHours)
	assert.Equal(t, 8.0, *task.CompletedHours)

	_, err = svc.Patch("T-003", entities.TaskPending, nil)
	assert.ErrorIs(t, err, entities.ErrInvalidTransition)

	_, err = svc.Patch("T-099", entities.TaskCompleted, nil)
	assert.ErrorIs(t, err, entities.ErrRecordNotFound)

	ts, err := svc.List("")
	require.NoError(t, err)
	assert.Equal(t, entities.TaskCompleted, ts[0].Status)
	assert.Equal(t, entities.TaskCompleted, ts[2].Status)
}

func TestReconcile(t *testing.T) {
	svc := newService(t, "2024-02-14")

	ids, err := svc.Reconcile()
	require.NoError(t, err)
	assert.Equal(t, []string{"T-002"}, ids)

	ids, err = svc.Reconcile()
	require.NoError(t, err)
	assert.Empty(t, ids)

	counts, err := svc.StatusCounts()
	require.NoError(t, err)
	assert.Equal(t, 2, counts["vencida"])
}

func TestCreate_Validation(t *testing.T) {
	svc := newService(t, "2024-02-10")

	_, err := svc.Create(entities.TaskDraft{Title: "Riego", Priority: "urgente"})
	assert.ErrorIs(t, err, entities.ErrUnknownStatus)

	_, err = svc.Create(entities.TaskDraft{Title: "Riego", DueDate: "2024/02/12"})
	assert.ErrorIs(t, err, entities.ErrInvalidDate)

	task, err := svc.Create(entities.TaskDraft{Title: "Riego", DueDate: "2024-02-10"})
	require.NoError(t, err)
	assert.Equal(t, "T-006", task.ID)
	assert.Equal(t, entities.PriorityMedium, task.Priority)

	st, err := svc.Stats()
	require.NoError(t, err)
	assert.Equal(t, 6, st.Total)
	assert.Equal(t, 3, st.Pending)
}
