package serviceImp

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"agro/database"
	"agro/entities"
	"agro/pkg/fertilization/repositoryImp"
	"agro/pkg/fertilization/service"
	"agro/pkg/fertilizer"
	"agro/pkg/proximity"
	"agro/pkg/telemetry"
)

func newService(t *testing.T, today string) service.FertilizationService {
	t.Helper()
	db, err := database.OpenSQLite(":memory:")
	require.NoError(t, err)
	now, err := proximity.ParseDay(today, time.UTC)
	require.NoError(t, err)
	svc := NewFertilizationService(repositoryImp.New(db), fertilizer.Default(), proximity.Fixed(now),
		proximity.DefaultUpcomingWindow, telemetry.Nop{}, zap.NewNop())
	require.NoError(t, svc.Seed(entities.SeedFertilizations()))
	return svc
}

func TestSetStatus_MarkApplied(t *testing.T) {
	svc := newService(t, "2024-02-20")

	r, err := svc.SetStatus("F-002", entities.FertilizationApplied)
	require.NoError(t, err)
	assert.Equal(t, entities.FertilizationApplied, r.Status)

	st, err := svc.Stats()
	require.NoError(t, err)
	assert.Equal(t, 2, st.Applied)
	assert.Equal(t, 0, st.Programmed)
	assert.Equal(t, 1, st.Overdue)
	assert.Equal(t, 375000.0, st.TotalCost)

	_, err = svc.SetStatus("F-001", entities.FertilizationScheduled)
	assert.ErrorIs(t, err, entities.ErrInvalidTransition)
	_, err = svc.SetStatus("F-404", entities.FertilizationApplied)
	assert.ErrorIs(t, err, entities.ErrRecordNotFound)
}

func TestCreate_CompositionFromCatalog(t *testing.T) {
	svc := newService(t, "2024-02-20")

	r, err := svc.Create(entities.FertilizationDraft{Field: "Cuartel Oeste", FertilizerType: "Cloruro de Potasio", NextApplicationDate: "2024-02-25", Cost: 40000})
	require.NoError(t, err)
	assert.Equal(t, "F-004", r.ID)
	assert.Equal(t, "60% K2O", r.Composition)
	assert.Equal(t, entities.FertilizationScheduled, r.Status)

	r, err = svc.Create(entities.FertilizationDraft{FertilizerType: "Guano"})
	require.NoError(t, err)
	assert.Empty(t, r.Composition)

	up, err := svc.Upcoming()
	require.NoError(t, err)
	require.Len(t, up, 1)
	assert.Equal(t, "F-004", up[0].ID)
}

func TestReconcile(t *testing.T) {
	svc := newService(t, "2024-03-02")

	ids, err := svc.Reconcile()
	require.NoError(t, err)
	assert.Equal(t, []string{"F-002"}, ids)

	counts, err := svc.StatusCounts()
	require.NoError(t, err)
	assert.Equal(t, map[string]int{"aplicada": 1, "vencida": 2}, counts)

	r, err := svc.SetStatus("F-002", entities.FertilizationScheduled)
	require.NoError(t, err)
	assert.Equal(t, entities.FertilizationScheduled, r.Status)
}

func TestCreate_MalformedDate(t *testing.T) {
	svc := newService(t, "2024-02-20")

	_, err := svc.Create(entities.FertilizationDraft{FertilizerType: "Urea 46%", NextApplicationDate: "2024-02-31"})
	assert.ErrorIs(t, err, entities.ErrInvalidDate)

	rs, err := svc.List()
	require.NoError(t, err)
	assert.Len(t, rs, 3)

	r, err := svc.Create(entities.FertilizationDraft{FertilizerType: "Urea 46%", NextApplicationDate: "2024-02-22"})
	require.NoError(t, err)
	assert.Equal(t, "F-004", r.ID)
}
