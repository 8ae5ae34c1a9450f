package metrics

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)
	m := New("fiftymais", prometheus.NewRegistry())

	r := gin.New()
	r.Use(m.Middleware())
	r.GET("/v1/quotes/:id", func(c *gin.Context) { c.Status(http.StatusNotFound) })
	r.GET("/metrics", gin.WrapH(m.Handler()))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/quotes/abc", nil))
	require.Equal(t, http.StatusNotFound, w.Code)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.requestCounter.WithLabelValues("fiftymais", "GET", "/v1/quotes/:id", "404")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.statusCategoryCount.WithLabelValues("fiftymais", "4xx", "GET", "/v1/quotes/:id")))

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, w.Code)
	assert.True(t, strings.Contains(w.Body.String(), "http_requests_total"))
}

func TestBusinessCounters(t *testing.T) {
	m := New("fiftymais", prometheus.NewRegistry())

	m.WebhookEvent("stripe", "checkout_completed", "ok")
	m.WebhookEvent("stripe", "checkout_completed", "ok")
	m.AccountProvisioned()
	m.QuoteSaved("create")

	assert.Equal(t, 2.0, testutil.ToFloat64(m.webhookEvents.WithLabelValues("stripe", "checkout_completed", "ok")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.accountsProvisioned))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.quotesSaved.WithLabelValues("create")))
}

func TestStatusCategory(t *testing.T) {
	assert.Equal(t, "2xx", statusCategory(201))
	assert.Equal(t, "4xx", statusCategory(405))
	assert.Equal(t, "5xx", statusCategory(500))
	assert.Equal(t, "", statusCategory(302))
}
