package telemetry

import (
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func scrape(t *testing.T, m *Metrics) string {
	t.Helper()
	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	b, err := io.ReadAll(rec.Body)
	require.NoError(t, err)
	return string(b)
}

func TestMetrics_RecordsRecomputedPerScrape(t *testing.T) {
	m := New(zap.NewNop())
	idle := 2
	m.Source("machine", func() (map[string]int, error) {
		return map[string]int{"idle": idle, "in-use": 1}, nil
	})

	out := scrape(t, m)
	assert.Contains(t, out, `agro_records{entity="machine",status="idle"} 2`)
	assert.Contains(t, out, `agro_records{entity="machine",status="in-use"} 1`)

	idle = 1
	out = scrape(t, m)
	assert.Contains(t, out, `agro_records{entity="machine",status="idle"} 1`)
}

func TestMetrics_FailingSourceIsSkipped(t *testing.T) {
	m := New(zap.NewNop())
	m.Source("task", func() (map[string]int, error) {
		return nil, errors.New("store closed")
	})
	m.Source("field", func() (map[string]int, error) {
		return map[string]int{"activo": 3}, nil
	})

	out := scrape(t, m)
	assert.NotContains(t, out, `entity="task"`)
	assert.Contains(t, out, `agro_records{entity="field",status="activo"} 3`)
}

func TestMetrics_Transitions(t *testing.T) {
	m := New(zap.NewNop())
	m.Transition("machine", "idle", "in-use")
	m.Transition("machine", "idle", "in-use")

	out := scrape(t, m)
	assert.Contains(t, out, `agro_status_transitions_total{entity="machine",from="idle",to="in-use"} 2`)
}

func TestNop(t *testing.T) {
	var r Recorder = Nop{}
	r.Transition("task", "pendiente", "vencida")
}
