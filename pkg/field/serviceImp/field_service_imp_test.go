package serviceImp

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"agro/database"
	"agro/entities"
	"agro/pkg/field/repositoryImp"
	"agro/pkg/field/service"
	"agro/pkg/proximity"
	"agro/pkg/status"
	"agro/pkg/telemetry"
)

func newService(t *testing.T) service.FieldService {
	t.Helper()
	db, err := database.OpenSQLite(":memory:")
	require.NoError(t, err)
	now, err := proximity.ParseDay("2024-02-10", time.UTC)
	require.NoError(t, err)
	svc := NewFieldService(repositoryImp.New(db), proximity.Fixed(now), telemetry.Nop{}, zap.NewNop())
	require.NoError(t, svc.Seed(entities.SeedFields()))
	return svc
}

func TestSeed_RoundTrip(t *testing.T) {
	svc := newService(t)
	got, err := svc.List()
	require.NoError(t, err)
	if diff := cmp.Diff(entities.SeedFields(), got, cmpopts.IgnoreFields(entities.Field{}, "Position")); diff != "" {
		t.Fatalf("stored fields differ (-want +got):\n%s", diff)
	}
}

func TestCreate_Defaults(t *testing.T) {
	svc := newService(t)

	f, err := svc.Create(entities.FieldDraft{Name: "Cuartel Nuevo", Area: 10, CropType: "Cebada"})
	require.NoError(t, err)
	assert.Equal(t, "C-005", f.ID)
	assert.Equal(t, entities.FieldPreparation, f.Status)
	assert.Equal(t, "2024-02-10", f.LastSoilAnalysis)
	assert.Equal(t, 7.0, f.PH)

	r, err := svc.Soil("C-005")
	require.NoError(t, err)
	assert.Equal(t, 95, r.Score)
	assert.Equal(t, status.Good, r.Band)

	st, err := svc.Stats()
	require.NoError(t, err)
	assert.InDelta(t, 108.6, st.TotalArea, 1e-9)
	assert.InDelta(t, 78.33, st.AverageProductivity, 0.01)
}

func TestSetStatus(t *testing.T) {
	svc := newService(t)

	f, err := svc.SetStatus("C-004", entities.FieldActive)
	require.NoError(t, err)
	assert.Equal(t, entities.FieldActive, f.Status)

	_, err = svc.SetStatus("C-001", entities.FieldResting)
	assert.ErrorIs(t, err, entities.ErrInvalidTransition)

	_, err = svc.SetStatus("C-404", entities.FieldActive)
	assert.ErrorIs(t, err, entities.ErrRecordNotFound)

	counts, err := svc.StatusCounts()
	require.NoError(t, err)
	assert.Equal(t, 3, counts["activo"])
}

func TestProductivity_ActiveOnly(t *testing.T) {
	svc := newService(t)

	hs, err := svc.Productivity()
	require.NoError(t, err)
	ids := make([]string, 0, len(hs))
	for _, h := range hs {
		ids = append(ids, h.Field.ID)
	}
	assert.Equal(t, []string{"C-001", "C-002"}, ids)
	assert.Equal(t, 126, hs[0].DaysToHarvest)
}
