package middleware_test

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/filegate/filegate/core/handler"
	"github.com/filegate/filegate/core/response"
	"github.com/filegate/filegate/middleware"
)

func TestLogging(t *testing.T) {
	t.Parallel()

	t.Run("logs_request_and_response", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		log := slog.New(slog.NewTextHandler(&buf, nil))

		mw := middleware.LoggingWithLogger[*testContext](log)

		req := httptest.NewRequest(http.MethodGet, "/static/foo?v=1", nil)
		w := httptest.NewRecorder()
		ctx := newTestContext(req, w)

		resp := mw(func(ctx *testContext) handler.Response {
			return response.String("Foobar")
		})(ctx)
		require.NoError(t, resp(w, req))

		out := buf.String()
		assert.Contains(t, out, "HTTP request started")
		assert.Contains(t, out, "HTTP request completed")
		assert.Contains(t, out, "method=GET")
		assert.Contains(t, out, "path=/static/foo")
		assert.Contains(t, out, "query=v=1")
		assert.Contains(t, out, "status=200")
		assert.Contains(t, out, "bytes_out=6")
	})

	t.Run("client_errors_log_at_warn", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		log := slog.New(slog.NewTextHandler(&buf, nil))

		mw := middleware.LoggingWithLogger[*testContext](log)

		req := httptest.NewRequest(http.MethodGet, "/missing", nil)
		w := httptest.NewRecorder()
		ctx := newTestContext(req, w)

		resp := mw(func(ctx *testContext) handler.Response {
			return response.Status(http.StatusNotFound)
		})(ctx)
		require.NoError(t, resp(w, req))

		assert.Contains(t, buf.String(), "level=WARN")
		assert.Contains(t, buf.String(), "status=404")
	})

	t.Run("response_errors_log_at_error_and_propagate", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		log := slog.New(slog.NewTextHandler(&buf, nil))

		mw := middleware.LoggingWithLogger[*testContext](log)

		req := httptest.NewRequest(http.MethodGet, "/fail", nil)
		w := httptest.NewRecorder()
		ctx := newTestContext(req, w)

		boom := assert.AnError
		err := mw(func(ctx *testContext) handler.Response {
			return response.Error(boom)
		})(ctx)(w, req)

		assert.ErrorIs(t, err, boom)
		assert.Contains(t, buf.String(), "level=ERROR")
	})

	t.Run("includes_request_id_when_present", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		log := slog.New(slog.NewTextHandler(&buf, nil))

		requestID := middleware.RequestIDWithConfig[*testContext](middleware.RequestIDConfig{
			Generator: func() string { return "req-123" },
		})
		logging := middleware.LoggingWithLogger[*testContext](log)

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		w := httptest.NewRecorder()
		ctx := newTestContext(req, w)

		resp := requestID(logging(func(ctx *testContext) handler.Response {
			return response.NoContent()
		}))(ctx)
		require.NoError(t, resp(w, req))

		assert.Contains(t, buf.String(), "request_id=req-123")
	})

	t.Run("skip", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		log := slog.New(slog.NewTextHandler(&buf, nil))

		mw := middleware.LoggingWithConfig[*testContext](middleware.LoggingConfig{
			Logger: log,
			Skip:   func(ctx handler.Context) bool { return true },
		})

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		w := httptest.NewRecorder()
		ctx := newTestContext(req, w)

		resp := mw(func(ctx *testContext) handler.Response {
			return response.NoContent()
		})(ctx)
		require.NoError(t, resp(w, req))

		assert.Empty(t, buf.String())
	})
}
