package middlewares

import (
	"net/http"
	"time"
)

// statusWriter records status and size. When timed is set it also stamps
// X-Response-Time just before the header goes out.
type statusWriter struct {
	http.ResponseWriter
	start       time.Time
	timed       bool
	wroteHeader bool
	status      int
	bytes       int
}

func newStatusWriter(w http.ResponseWriter, timed bool) *statusWriter {
	return &statusWriter{ResponseWriter: w, start: time.Now(), timed: timed, status: http.StatusOK}
}

func (w *statusWriter) stamp() {
	if w.wroteHeader {
		return
	}
	if w.timed {
		w.Header().Set("X-Response-Time", time.Since(w.start).String())
	}
	w.wroteHeader = true
}

func (w *statusWriter) WriteHeader(code int) {
	if w.wroteHeader {
		return
	}
	w.status = code
	w.stamp()
	w.ResponseWriter.WriteHeader(code)
}

func (w *statusWriter) Write(b []byte) (int, error) {
	w.stamp()
	n, err := w.ResponseWriter.Write(b)
	w.bytes += n
	return n, err
}

func (w *statusWriter) Unwrap() http.ResponseWriter { return w.ResponseWriter }

func ResponseTime(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rw := newStatusWriter(w, true)
		next.ServeHTTP(rw, r)

		// nothing was written (e.g. HEAD)
		if !rw.wroteHeader {
			rw.Header().Set("X-Response-Time", time.Since(rw.start).String())
		}
	})
}
