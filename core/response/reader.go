package response

import (
	"bufio"
	"io"
	"net/http"

	"github.com/filegate/filegate/core/handler"
)

// readerBufferSize is the chunk size used when copying a reader to the
// client. Matches the default io.Copy buffer.
const readerBufferSize = 32 * 1024

// Reader creates a 200 OK response that streams the contents of rc to the
// client. Bytes are copied incrementally through a fixed-size buffer, so a
// slow client back-pressures the read instead of forcing the whole body
// into memory. No Content-Type or Content-Length is set; the source is
// closed when the copy finishes or the client disconnects.
func Reader(rc io.ReadCloser) handler.Response {
	return func(w http.ResponseWriter, r *http.Request) error {
		defer rc.Close()

		w.WriteHeader(http.StatusOK)

		// A write error here usually means the client went away; the copy
		// stops and the deferred Close releases the source either way.
		_, err := bufio.NewReaderSize(rc, readerBufferSize).WriteTo(w)
		return err
	}
}
