package response_test

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/filegate/filegate/core/response"
)

// trackedReadCloser records whether Close was called.
type trackedReadCloser struct {
	io.Reader
	closed bool
}

func (rc *trackedReadCloser) Close() error {
	rc.closed = true
	return nil
}

func TestReader(t *testing.T) {
	t.Parallel()

	t.Run("streams_body_and_closes_source", func(t *testing.T) {
		t.Parallel()

		rc := &trackedReadCloser{Reader: strings.NewReader("Foobar")}

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		w := httptest.NewRecorder()

		require.NoError(t, response.Reader(rc)(w, req))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "Foobar", w.Body.String())
		assert.True(t, rc.closed)
	})

	t.Run("no_content_type_or_length", func(t *testing.T) {
		t.Parallel()

		rc := &trackedReadCloser{Reader: strings.NewReader("data")}

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		w := httptest.NewRecorder()

		require.NoError(t, response.Reader(rc)(w, req))

		assert.Empty(t, w.Header().Get("Content-Type"))
		assert.Empty(t, w.Header().Get("Content-Length"))
	})

	t.Run("large_body_copied_in_full", func(t *testing.T) {
		t.Parallel()

		// Larger than the internal copy buffer to force multiple chunks.
		payload := strings.Repeat("x", 256*1024)
		rc := &trackedReadCloser{Reader: strings.NewReader(payload)}

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		w := httptest.NewRecorder()

		require.NoError(t, response.Reader(rc)(w, req))

		assert.Equal(t, payload, w.Body.String())
		assert.True(t, rc.closed)
	})

	t.Run("write_failure_still_closes_source", func(t *testing.T) {
		t.Parallel()

		rc := &trackedReadCloser{Reader: strings.NewReader("data")}

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		w := &failingWriter{ResponseWriter: httptest.NewRecorder()}

		err := response.Reader(rc)(w, req)

		assert.Error(t, err)
		assert.True(t, rc.closed)
	})
}

// failingWriter simulates a client that disconnected mid-response.
type failingWriter struct {
	http.ResponseWriter
}

func (w *failingWriter) Write(b []byte) (int, error) {
	return 0, io.ErrClosedPipe
}
