package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/mumcuarda/debit/internal/middleware"
)

func requestIDRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(middleware.RequestID())
	r.GET("/ping", func(c *gin.Context) {
		id, _ := c.Get(middleware.RequestIDKey)
		c.String(http.StatusOK, "%s", id)
	})
	return r
}

func TestRequestID_GeneratesWhenAbsent(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	rec := httptest.NewRecorder()

	requestIDRouter().ServeHTTP(rec, req)

	id := rec.Header().Get("X-Request-ID")
	assert.NotEmpty(t, id)
	assert.Equal(t, id, rec.Body.String(), "context value matches response header")
}

func TestRequestID_KeepsCallerProvided(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set("X-Request-ID", "abc-123")
	rec := httptest.NewRecorder()

	requestIDRouter().ServeHTTP(rec, req)

	assert.Equal(t, "abc-123", rec.Header().Get("X-Request-ID"))
	assert.Equal(t, "abc-123", rec.Body.String())
}
