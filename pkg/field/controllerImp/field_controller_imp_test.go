package controllerImp

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"agro/database"
	"agro/entities"
	"agro/pkg/field/repositoryImp"
	"agro/pkg/field/serviceImp"
	"agro/pkg/proximity"
	"agro/pkg/telemetry"
)

func newServer(t *testing.T) *echo.Echo {
	t.Helper()
	db, err := database.OpenSQLite(":memory:")
	require.NoError(t, err)
	now, err := proximity.ParseDay("2024-02-10", time.UTC)
	require.NoError(t, err)
	svc := serviceImp.NewFieldService(repositoryImp.New(db), proximity.Fixed(now), telemetry.Nop{}, zap.NewNop())
	require.NoError(t, svc.Seed(entities.SeedFields()))

	h := New(svc)
	e := echo.New()
	g := e.Group("/fields")
	g.GET("", h.List)
	g.POST("", h.Create)
	g.GET("/stats", h.Stats)
	g.GET("/productivity", h.Productivity)
	g.GET("/:id", h.Get)
	g.GET("/:id/soil", h.Soil)
	g.PATCH("/:id", h.Patch)
	return e
}

func do(e *echo.Echo, method, target, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestFieldCtrl_GetAndSoil(t *testing.T) {
	e := newServer(t)

	rec := do(e, http.MethodGet, "/fields/C-002", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var f map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &f))
	assert.Equal(t, float64(90), f["soil_score"])
	assert.Equal(t, "good", f["soil_band"])
	assert.Equal(t, "fair", f["productivity_band"])

	rec = do(e, http.MethodGet, "/fields/C-001/soil", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"score":100`)

	rec = do(e, http.MethodGet, "/fields/C-009", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestFieldCtrl_CreatePatchStats(t *testing.T) {
	e := newServer(t)

	rec := do(e, http.MethodPost, "/fields", `{"name":"Cuartel Bajo","area":12.5,"crop_type":"Cebada"}`)
	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":"preparacion"`)

	rec = do(e, http.MethodPatch, "/fields/C-005", `{"status":"activo"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = do(e, http.MethodPatch, "/fields/C-005", `{"status":"descanso"}`)
	assert.Equal(t, http.StatusConflict, rec.Code)

	rec = do(e, http.MethodGet, "/fields/stats", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"active":3`)
}

func TestFieldCtrl_Productivity(t *testing.T) {
	e := newServer(t)

	rec := do(e, http.MethodGet, "/fields/productivity", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var got []struct {
		Field struct {
			ID     string `json:"id"`
			Status string `json:"status"`
		} `json:"field"`
		DaysToHarvest int `json:"days_to_harvest"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Len(t, got, 2)
	assert.Equal(t, "C-001", got[0].Field.ID)
	assert.Equal(t, 126, got[0].DaysToHarvest)
	assert.Equal(t, "C-002", got[1].Field.ID)
	assert.Equal(t, 142, got[1].DaysToHarvest)

	rec = do(e, http.MethodPatch, "/fields/C-003", `{"status":"activo"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	rec = do(e, http.MethodGet, "/fields/productivity", "")
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Len(t, got, 3)
	assert.Equal(t, "C-003", got[2].Field.ID)
	assert.Equal(t, 187, got[2].DaysToHarvest)
}
