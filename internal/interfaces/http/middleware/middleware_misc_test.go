package middleware

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"captura-leads.backend/pkg/logger"
	"captura-leads.backend/pkg/metrics"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
)

func TestBodyRecorder_Write(t *testing.T) {
	gin.SetMode(gin.TestMode)
	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	w := bodyRecorder{
		ResponseWriter: c.Writer,
		body:           &bytes.Buffer{},
	}

	n, err := w.Write([]byte("ok"))
	require.NoError(t, err)
	require.Equal(t, 2, n)
	require.Equal(t, "ok", w.body.String())
	require.Equal(t, "ok", rec.Body.String())
}

func TestRequestIDMiddleware_GeneratesAndUsesHeader(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("generates request id when header missing", func(t *testing.T) {
		r := gin.New()
		r.Use(RequestIDMiddleware())
		r.GET("/x", func(c *gin.Context) {
			id := c.GetString(RequestIDKey)
			require.NotEmpty(t, id)
			require.Equal(t, id, c.Request.Context().Value(logger.RequestIDKey))
			c.Status(http.StatusNoContent)
		})

		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/x", nil))
		require.Equal(t, http.StatusNoContent, rec.Code)
		require.NotEmpty(t, rec.Header().Get(RequestIDHeader))
	})

	t.Run("uses provided request id header", func(t *testing.T) {
		r := gin.New()
		r.Use(RequestIDMiddleware())
		r.GET("/x", func(c *gin.Context) {
			require.Equal(t, "req-123", c.GetString(RequestIDKey))
			c.Status(http.StatusNoContent)
		})

		req := httptest.NewRequest(http.MethodGet, "/x", nil)
		req.Header.Set(RequestIDHeader, "req-123")
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, req)
		require.Equal(t, "req-123", rec.Header().Get(RequestIDHeader))
	})
}

func TestLoggerMiddleware_Passthrough(t *testing.T) {
	gin.SetMode(gin.TestMode)
	logger.Init("test")

	r := gin.New()
	r.Use(LoggerMiddleware())
	r.GET("/ok", func(c *gin.Context) { c.Status(http.StatusOK) })
	r.GET("/fail", func(c *gin.Context) { c.Status(http.StatusInternalServerError) })

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/ok?x=1", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/fail", nil))
	require.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestMetricsMiddleware_CountsByRoute(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(MetricsMiddleware())
	r.GET("/items/:id", func(c *gin.Context) { c.Status(http.StatusOK) })

	counter := metrics.HTTPRequestsTotal.WithLabelValues(http.MethodGet, "/items/:id", "200")
	before := testutil.ToFloat64(counter)

	for _, id := range []string{"a", "b"} {
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/items/"+id, nil))
	}

	require.Equal(t, before+2, testutil.ToFloat64(counter))
	require.Equal(t, float64(0), testutil.ToFloat64(metrics.HTTPInFlight))

	unmatched := metrics.HTTPRequestsTotal.WithLabelValues(http.MethodGet, "unmatched", "404")
	before = testutil.ToFloat64(unmatched)
	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/nope", nil))
	require.Equal(t, before+1, testutil.ToFloat64(unmatched))
}
