package http

import (
	"net/http"
	"time"

	"github.com/hirunaj/pawtrail/internal/logger"
)

// withLogging writes one line per served request. Subscribe requests hijack
// the connection for the websocket upgrade, so for those the duration covers
// the whole snapshot stream rather than a single response, and status and
// size carry no meaning.
func (h *Handler) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)
		start := time.Now()

		lw := &responseWriter{ResponseWriter: w}
		next.ServeHTTP(lw, r)

		event := log.Info().
			Str("uri", r.RequestURI).
			Str("method", r.Method).
			Str("remote_addr", r.RemoteAddr).
			Dur("duration", time.Since(start))

		if lw.hijacked {
			event.Bool("stream", true).Msg("snapshot stream closed")
			return
		}

		event.Int("status", lw.status).
			Int("size", lw.size).
			Send()
	})
}
