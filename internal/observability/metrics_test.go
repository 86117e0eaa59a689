package observability

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// findMetric returns the series of family name whose labels include want.
func findMetric(t *testing.T, reg *prometheus.Registry, name string, want map[string]string) *dto.Metric {
	t.Helper()
	families, err := reg.Gather()
	require.NoError(t, err)
	for _, mf := range families {
		if mf.GetName() != name {
			continue
		}
		for _, m := range mf.GetMetric() {
			labels := map[string]string{}
			for _, lp := range m.GetLabel() {
				labels[lp.GetName()] = lp.GetValue()
			}
			match := true
			for k, v := range want {
				if labels[k] != v {
					match = false
					break
				}
			}
			if match {
				return m
			}
		}
	}
	return nil
}

func TestRequestLoggerRecordsRouteTemplate(t *testing.T) {
	reg := prometheus.NewRegistry()
	metrics := NewMetrics(reg)

	app := fiber.New()
	app.Use(RequestLogger(zap.NewNop(), metrics))
	app.Get("/api/faqs/:id", func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusNoContent)
	})

	for _, id := range []string{"a", "b"} {
		resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/faqs/"+id, nil))
		require.NoError(t, err)
		resp.Body.Close()
	}

	counter := findMetric(t, reg, "http_requests_total", map[string]string{
		"method": "GET", "path": "/api/faqs/:id", "status": "204",
	})
	require.NotNil(t, counter)
	assert.Equal(t, float64(2), counter.GetCounter().GetValue())

	hist := findMetric(t, reg, "http_request_duration_seconds", map[string]string{
		"method": "GET", "path": "/api/faqs/:id",
	})
	require.NotNil(t, hist)
	assert.Equal(t, uint64(2), hist.GetHistogram().GetSampleCount())
}

func TestRecordError(t *testing.T) {
	reg := prometheus.NewRegistry()
	metrics := NewMetrics(reg)
	metrics.RecordError("/api/contacts/:id", "PATCH", "UNAUTHORIZED")

	m := findMetric(t, reg, "http_errors_total", map[string]string{"code": "UNAUTHORIZED"})
	require.NotNil(t, m)
	assert.Equal(t, float64(1), m.GetCounter().GetValue())

	var nilMetrics *Metrics
	assert.NotPanics(t, func() { nilMetrics.RecordRequest("/", "GET", 200, 0) })
}
