package middlewares

import (
	"net/http"
	"time"

	"github.com/rs/zerolog/log"
)

// AccessLog logs one line per request at DEBUG.
func AccessLog(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		sw := newStatusWriter(w, false)

		defer func() {
			log.Debug().
				Str("method", r.Method).
				Str("path", r.URL.Path).
				Int("status", sw.status).
				Int("bytes", sw.bytes).
				Dur("duration", time.Since(start)).
				Str("remote", r.RemoteAddr).
				Str("request_id", GetRequestID(r)).
				Msg("request")
		}()

		next.ServeHTTP(sw, r)
	})
}
