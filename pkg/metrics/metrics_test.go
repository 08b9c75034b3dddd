package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestNilMetricsIsSafe(t *testing.T) {
	var m *Metrics
	m.CacheLookup("chemistry", CacheHit)
	m.CacheInvalidated("chemistry")

	w := httptest.NewRecorder()
	m.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCacheCounters(t *testing.T) {
	m := New()
	m.CacheLookup("model", CacheMiss)
	m.CacheLookup("model", CacheHit)
	m.CacheLookup("model", CacheHit)
	m.CacheInvalidated("model")

	assert.Equal(t, 2.0, testutil.ToFloat64(m.CacheLookups.WithLabelValues("model", CacheHit)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.CacheLookups.WithLabelValues("model", CacheMiss)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.CacheInvalidations.WithLabelValues("model")))
}

func TestGinMiddlewareUsesRouteTemplate(t *testing.T) {
	gin.SetMode(gin.TestMode)
	m := New()

	r := gin.New()
	r.Use(m.GinMiddleware())
	r.GET("/api/battery/:batteryId", func(c *gin.Context) { c.Status(http.StatusOK) })
	r.GET("/metrics", gin.WrapH(m.Handler()))

	for _, id := range []string{"B1", "B2"} {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/battery/"+id, nil))
		assert.Equal(t, http.StatusOK, w.Code)
	}

	assert.Equal(t, 2.0, testutil.ToFloat64(
		m.HTTPRequests.WithLabelValues(http.MethodGet, "/api/battery/:batteryId", "200")))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "battlogger_http_requests_total")
}
