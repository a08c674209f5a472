package middleware

import (
	"context"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const requestIDHeader = "X-Request-ID"

type requestIDKey struct{}

// probePaths are logged only when their outcome changes.
var probePaths = map[string]struct{}{
	"/healthz": {},
	"/readyz":  {},
}

// RequestIDFrom returns the request ID stored by RequestLog, or "".
func RequestIDFrom(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey{}).(string)
	return id
}

// RequestLog returns Echo middleware that logs requests with structured fields.
// It generates a request ID if none is provided and propagates it through
// the response header, the echo context and the request context.
//
// Probe requests are logged the first time they succeed and on every
// failure, so a healthy service does not log each kubelet poll.
func RequestLog(log *slog.Logger) echo.MiddlewareFunc {
	var (
		mu      sync.Mutex
		probeOK = make(map[string]bool)
	)

	quiet := func(path string, status int) bool {
		if _, ok := probePaths[path]; !ok {
			return false
		}
		mu.Lock()
		defer mu.Unlock()
		ok := status < http.StatusBadRequest
		wasOK := probeOK[path]
		probeOK[path] = ok
		return ok && wasOK
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()

			reqID := c.Request().Header.Get(requestIDHeader)
			if reqID == "" {
				reqID = uuid.NewString()
			}

			c.Set("request_id", reqID)
			c.Response().Header().Set(requestIDHeader, reqID)
			req := c.Request()
			c.SetRequest(req.WithContext(context.WithValue(req.Context(), requestIDKey{}, reqID)))

			err := next(c)

			path := req.URL.Path
			status := c.Response().Status
			if quiet(path, status) {
				return err
			}

			attrs := []slog.Attr{
				slog.String("method", req.Method),
				slog.String("path", path),
				slog.Int("status", status),
				slog.Int64("duration_ms", time.Since(start).Milliseconds()),
				slog.String("request_id", reqID),
			}
			if route := c.Path(); route != "" && route != path {
				attrs = append(attrs, slog.String("route", route))
			}
			if user := req.URL.Query().Get("user_id"); user != "" {
				attrs = append(attrs, slog.String("user_id", user))
			}
			log.LogAttrs(req.Context(), statusLevel(status), "request", attrs...)

			return err
		}
	}
}

// statusLevel logs client errors as warnings and server errors, which
// include marketplace failures surfaced as 502, as errors.
func statusLevel(status int) slog.Level {
	switch {
	case status >= http.StatusInternalServerError:
		return slog.LevelError
	case status >= http.StatusBadRequest:
		return slog.LevelWarn
	default:
		return slog.LevelInfo
	}
}
