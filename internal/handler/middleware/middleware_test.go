//go:build unit

package middleware_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"qr-smart-parking/internal/handler/httperr"
	"qr-smart-parking/internal/handler/middleware"
	"qr-smart-parking/internal/pkg/logging"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newEngine() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(middleware.CustomRecovery(logging.Discard()))
	r.Use(middleware.RequestLogger(logging.Discard()))
	r.Use(middleware.ErrorHandler())
	return r
}

func decode(t *testing.T, body []byte) httperr.Response {
	t.Helper()
	var resp httperr.Response
	require.NoError(t, json.Unmarshal(body, &resp))
	return resp
}

func TestRequestLogger_RequestID(t *testing.T) {
	r := newEngine()
	r.GET("/ping", func(c *gin.Context) {
		c.String(http.StatusOK, middleware.GetRequestID(c))
	})

	t.Run("generates an id when none is sent", func(t *testing.T) {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))

		id := w.Header().Get(middleware.RequestIDHeader)
		_, err := uuid.Parse(id)
		assert.NoError(t, err)
		assert.Equal(t, id, w.Body.String())
	})

	t.Run("reuses a valid caller id", func(t *testing.T) {
		sent := uuid.NewString()
		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		req.Header.Set(middleware.RequestIDHeader, sent)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, sent, w.Header().Get(middleware.RequestIDHeader))
	})

	t.Run("replaces a malformed caller id", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		req.Header.Set(middleware.RequestIDHeader, "not-a-uuid\nforged")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.NotEqual(t, "not-a-uuid\nforged", w.Header().Get(middleware.RequestIDHeader))
	})
}

func TestCustomRecovery(t *testing.T) {
	r := newEngine()
	r.GET("/panic", func(c *gin.Context) {
		panic("slot table corrupted")
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/panic", nil))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	resp := decode(t, w.Body.Bytes())
	assert.Equal(t, "internal_server_error", resp.Error.Code)
	assert.NotEmpty(t, resp.RequestID)
}

func TestErrorHandler(t *testing.T) {
	r := newEngine()
	r.GET("/bare-error", func(c *gin.Context) {
		_ = c.Error(io.ErrUnexpectedEOF)
	})
	r.GET("/status-only", func(c *gin.Context) {
		c.Status(http.StatusNoContent)
	})

	t.Run("unhandled error becomes a 500 body", func(t *testing.T) {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/bare-error", nil))

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.Equal(t, "Internal server error", decode(t, w.Body.Bytes()).Error.Message)
	})

	t.Run("explicit status is kept", func(t *testing.T) {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/status-only", nil))

		assert.Equal(t, http.StatusNoContent, w.Code)
		assert.Empty(t, w.Body.String())
	})
}

func TestBodyLimit(t *testing.T) {
	r := newEngine()
	r.POST("/upload", middleware.BodyLimit(16), func(c *gin.Context) {
		if _, err := io.ReadAll(c.Request.Body); err != nil {
			httperr.AbortWithError(c, http.StatusRequestEntityTooLarge, err, "Upload too large", nil)
			return
		}
		c.Status(http.StatusNoContent)
	})

	t.Run("within limit", func(t *testing.T) {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/upload", strings.NewReader("small")))
		assert.Equal(t, http.StatusNoContent, w.Code)
	})

	t.Run("over limit", func(t *testing.T) {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/upload", bytes.NewReader(make([]byte, 64))))
		assert.Equal(t, http.StatusRequestEntityTooLarge, w.Code)
		assert.Equal(t, "Upload too large", decode(t, w.Body.Bytes()).Error.Message)
	})
}
