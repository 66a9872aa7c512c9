package middleware

import (
	"context"
	"net/http"
	"runtime/debug"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"harmonyminds/internal/logging"
)

const (
	requestIDHeader = "X-Request-ID"
	maxRequestIDLen = 64
)

// statusRecorder remembers what a handler sent so the access log can report it.
type statusRecorder struct {
	http.ResponseWriter
	status int
	bytes  int
}

func (rec *statusRecorder) WriteHeader(code int) {
	if rec.status != 0 {
		return
	}
	rec.status = code
	rec.ResponseWriter.WriteHeader(code)
}

func (rec *statusRecorder) Write(b []byte) (int, error) {
	if rec.status == 0 {
		rec.WriteHeader(http.StatusOK)
	}
	n, err := rec.ResponseWriter.Write(b)
	rec.bytes += n
	return n, err
}

func (rec *statusRecorder) code() int {
	if rec.status == 0 {
		return http.StatusOK
	}
	return rec.status
}

// RequestLogging tags each request with an ID and writes one access log line
// when it finishes. The line carries the browser session resolved further
// down the chain and, for redirects, where the browser was sent.
func RequestLogging() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()

			id := incomingRequestID(r)
			ctx, info := logging.WithRequestInfo(logging.WithRequestID(r.Context(), id))
			w.Header().Set(requestIDHeader, id)

			rec := &statusRecorder{ResponseWriter: w}
			next.ServeHTTP(rec, r.WithContext(ctx))

			accessLog(ctx, r, rec, info, time.Since(start))
		})
	}
}

// incomingRequestID keeps a caller's ID when it is short enough to log.
func incomingRequestID(r *http.Request) string {
	if id := r.Header.Get(requestIDHeader); id != "" && len(id) <= maxRequestIDLen {
		return id
	}
	return uuid.NewString()
}

func accessLog(ctx context.Context, r *http.Request, rec *statusRecorder, info *logging.RequestInfo, took time.Duration) {
	logger := logging.WithContext(ctx)
	status := rec.code()

	var event *zerolog.Event
	switch {
	case status >= 500:
		event = logger.Error()
	case status >= 400:
		event = logger.Warn()
	case r.URL.Path == "/health" || r.URL.Path == "/ready":
		event = logger.Debug()
	default:
		event = logger.Info()
	}

	event = event.
		Str("method", r.Method).
		Str("path", r.URL.Path).
		Int("status_code", status).
		Int("bytes", rec.bytes).
		Dur("duration_ms", took)
	if status >= 300 && status < 400 {
		event = event.Str("location", rec.Header().Get("Location"))
	}
	if info.SessionID() == "" {
		event = event.Bool("sessionless", true)
	}
	event.Msg("HTTP request completed")
}

// Recovery turns a panic into a 500 and logs it with the stack.
func Recovery() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if err := recover(); err != nil {
					logging.WithContext(r.Context()).Error().
						Str("method", r.Method).
						Str("path", r.URL.Path).
						Interface("panic", err).
						Str("stack", string(debug.Stack())).
						Msg("Recovered from panic")

					http.Error(w, "Internal Server Error", http.StatusInternalServerError)
				}
			}()

			next.ServeHTTP(w, r)
		})
	}
}
