package handler

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

type stubPinger struct {
	err error
	ctx context.Context
}

func (p *stubPinger) Ping(ctx context.Context) error {
	p.ctx = ctx
	return p.err
}

func TestHealthHandler(t *testing.T) {
	gin.SetMode(gin.TestMode)
	pinger := &stubPinger{}
	router := gin.New()
	router.GET("/health", HealthHandler(pinger))

	type ctxKey struct{}
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req = req.WithContext(context.WithValue(req.Context(), ctxKey{}, "marker"))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "healthy")
	// The ping must run under the request context, not a fresh background one.
	assert.Equal(t, "marker", pinger.ctx.Value(ctxKey{}))
}

func TestHealthHandler_DBUnreachable(t *testing.T) {
	gin.SetMode(gin.TestMode)
	pinger := &stubPinger{err: errors.New("connection refused")}
	router := gin.New()
	router.GET("/health", HealthHandler(pinger))

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.Contains(t, w.Body.String(), "unhealthy")
}
