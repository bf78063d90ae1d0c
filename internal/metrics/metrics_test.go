package metrics

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MikeMC777/confeitaria/internal/apperr"
)

func TestObserveStoreOp(t *testing.T) {
	m := New()

	m.ObserveStoreOp("order", "create", nil)
	m.ObserveStoreOp("order", "create", apperr.Validation("Dados incompletos para cadastro!"))
	m.ObserveStoreOp("order", "delete", apperr.NotFound("Encomenda não encontrada!"))
	m.ObserveStoreOp("ingredient", "list", errors.New("conn reset"))

	assert.Equal(t, 1.0, testutil.ToFloat64(m.storeOps.WithLabelValues("order", "create", "ok")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.storeOps.WithLabelValues("order", "create", "validation")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.storeOps.WithLabelValues("order", "delete", "not_found")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.storeOps.WithLabelValues("ingredient", "list", "unknown")))
}

func TestObserveStoreOp_NilReceiver(t *testing.T) {
	var m *Metrics
	assert.NotPanics(t, func() { m.ObserveStoreOp("order", "list", nil) })
}

func TestMiddlewareAndHandler(t *testing.T) {
	gin.SetMode(gin.TestMode)
	reg := prometheus.NewRegistry()
	m := NewWithRegistry(reg, reg)

	r := gin.New()
	r.Use(m.Middleware())
	r.GET("/listar-encomendas", func(c *gin.Context) { c.JSON(http.StatusOK, []string{}) })
	r.GET("/metrics", gin.WrapH(m.Handler()))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/listar-encomendas", nil))
	require.Equal(t, http.StatusOK, w.Code)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.httpRequests.WithLabelValues("GET", "/listar-encomendas", "200")))
	assert.Equal(t, 0.0, testutil.ToFloat64(m.httpInFlight))

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, w.Code)
	assert.True(t, strings.Contains(w.Body.String(), "confeitaria_http_requests_total"))
}
