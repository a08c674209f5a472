package middleware

import (
	"fmt"
	"log/slog"
	"net/http"
	"runtime/debug"

	"github.com/labstack/echo/v4"
)

// panicProblem mirrors huma's error model so clients decode a recovered panic
// the same way as any other 500.
type panicProblem struct {
	Title     string `json:"title"`
	Status    int    `json:"status"`
	Detail    string `json:"detail"`
	RequestID string `json:"request_id,omitempty"`
}

// Recovery returns Echo middleware that turns a handler panic into a logged
// stack trace and a 500 response. Nothing is written once the response has
// been committed.
func Recovery(log *slog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) (err error) {
			defer func() {
				r := recover()
				if r == nil {
					return
				}

				req := c.Request()
				reqID := RequestIDFrom(req.Context())
				log.LogAttrs(req.Context(), slog.LevelError, "panic recovered",
					slog.String("error", fmt.Sprint(r)),
					slog.String("method", req.Method),
					slog.String("path", req.URL.Path),
					slog.String("request_id", reqID),
					slog.String("stack", string(debug.Stack())),
				)

				if c.Response().Committed {
					err = nil
					return
				}
				err = c.JSON(http.StatusInternalServerError, panicProblem{
					Title:     http.StatusText(http.StatusInternalServerError),
					Status:    http.StatusInternalServerError,
					Detail:    "internal server error",
					RequestID: reqID,
				})
			}()
			return next(c)
		}
	}
}
