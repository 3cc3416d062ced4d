package controllerImp

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"agro/database"
	"agro/entities"
	"agro/pkg/proximity"
)

func TestHealth(t *testing.T) {
	db, err := database.OpenSQLite(":memory:")
	require.NoError(t, err)
	require.NoError(t, database.Replace(db, entities.SeedFields()))
	now, err := proximity.ParseDay("2024-02-10", time.UTC)
	require.NoError(t, err)

	e := echo.New()
	e.GET("/health", NewHealthCtrl(db, proximity.Fixed(now)).Health)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Status   struct{ OK bool } `json:"status"`
		Records  map[string]int    `json:"records"`
		FarmDate string            `json:"farm_date"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.True(t, body.Status.OK)
	assert.Equal(t, 4, body.Records["fields"])
	assert.Equal(t, 0, body.Records["machines"])
	assert.Equal(t, "2024-02-10", body.FarmDate)
}

func TestHealth_NoStore(t *testing.T) {
	e := echo.New()
	e.GET("/health", NewHealthCtrl(nil, proximity.Fixed(time.Now())).Health)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}
