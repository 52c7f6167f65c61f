package middleware

import (
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"
	"testing/quick"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"export-manager-api/internal/metrics"
)

func setupMetricsRouter(m *metrics.Metrics) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(Metrics(m))
	return router
}

// For any valid status code, requests through the middleware must still
// reach the handler unchanged while the request metric is recorded
func TestProperty_HTTPRequestRecording(t *testing.T) {
	registry := prometheus.NewRegistry()
	m := metrics.NewWithRegistry(registry, zap.NewNop())

	property := func(statusCode uint16) bool {
		if statusCode < 200 || statusCode >= 600 {
			return true
		}

		router := setupMetricsRouter(m)
		router.GET("/:exportId/lines", func(c *gin.Context) {
			c.Status(int(statusCode))
		})

		req := httptest.NewRequest(http.MethodGet, "/some-id/lines", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		return w.Code == int(statusCode)
	}

	if err := quick.Check(property, &quick.Config{MaxCount: 100}); err != nil {
		t.Errorf("Property test failed: %v", err)
	}
}

func TestMetricsMiddleware_RecordsRoutePattern(t *testing.T) {
	registry := prometheus.NewRegistry()
	m := metrics.NewWithRegistry(registry, zap.NewNop())

	router := setupMetricsRouter(m)
	router.GET("/:exportId/lines", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(registry, promhttp.HandlerOpts{})))

	req := httptest.NewRequest(http.MethodGet, "/"+strconv.Itoa(12345)+"/lines", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	// 실제 경로가 아닌 라우트 패턴으로 집계되어야 함
	metricsReq := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	metricsW := httptest.NewRecorder()
	router.ServeHTTP(metricsW, metricsReq)

	body := metricsW.Body.String()
	if !strings.Contains(body, "/:exportId/lines") {
		t.Error("Expected metrics to be labelled with the route pattern")
	}
	if strings.Contains(body, "/12345/lines") {
		t.Error("Raw request paths must not appear as metric labels")
	}
}

func TestMetricsMiddleware_SkipsMetricsEndpoint(t *testing.T) {
	registry := prometheus.NewRegistry()
	m := metrics.NewWithRegistry(registry, zap.NewNop())

	router := setupMetricsRouter(m)
	router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(registry, promhttp.HandlerOpts{})))

	// /metrics 요청 자체는 집계하지 않음
	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	body := w.Body.String()
	if strings.Contains(body, `endpoint="/metrics"`) {
		t.Error("Requests to /metrics must not be recorded")
	}
}
