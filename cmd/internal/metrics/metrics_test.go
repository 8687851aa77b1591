package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMiddlewareCountsByRoute(t *testing.T) {
	m := NewCollector()
	e := echo.New()
	e.Use(m.Middleware())
	e.GET("/admin/:email", func(c echo.Context) error {
		return c.JSON(http.StatusOK, echo.Map{"admin": false})
	})
	e.GET("/metrics", m.Handler())

	for _, email := range []string{"a@x.com", "b@x.com"} {
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/admin/"+email, nil))
		require.Equal(t, http.StatusOK, rec.Code)
	}

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/nope", nil))
	require.Equal(t, http.StatusNotFound, rec.Code)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.requests.WithLabelValues(http.MethodGet, "/admin/:email", "200")))
	assert.Equal(t, 2, testutil.CollectAndCount(m.requests))

	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `doctors_portal_http_requests_total{method="GET",path="/admin/:email",status="200"} 2`)
}
