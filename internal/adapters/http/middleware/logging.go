package middleware

import (
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/jsamuelsen/carinsurance-service/internal/platform/logging"
)

// internalPrefix marks health check and metrics endpoints, which are never logged.
const internalPrefix = "/-/"

// ContextLogger returns middleware that stores logger in the request context
// so that later middleware and handlers enrich and use it. It should run
// before RequestID and CorrelationID.
func ContextLogger(logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, ok := logging.Lookup(c.Request.Context()); !ok && logger != nil {
			c.Request = c.Request.WithContext(logging.WithContext(c.Request.Context(), logger))
		}

		c.Next()
	}
}

// Logging returns middleware that logs each request once it completes, at
// INFO for success, WARN for 4xx and ERROR for 5xx responses. The context
// logger carries request_id and correlation_id; logger is used when the
// request context has none.
//
// Health check paths (starting with /-/) are skipped to avoid log noise.
func Logging(logger *slog.Logger) gin.HandlerFunc {
	return LoggingWithSkipPaths(logger, nil)
}

// LoggingWithSkipPaths returns logging middleware with additional exact
// paths to skip.
func LoggingWithSkipPaths(logger *slog.Logger, skipPaths []string) gin.HandlerFunc {
	skipMap := make(map[string]struct{}, len(skipPaths))
	for _, path := range skipPaths {
		skipMap[path] = struct{}{}
	}

	return func(c *gin.Context) {
		path := c.Request.URL.Path

		if _, skip := skipMap[path]; skip || strings.HasPrefix(path, internalPrefix) {
			c.Next()
			return
		}

		start := time.Now()

		c.Next()

		ctx := c.Request.Context()

		ctxLogger, ok := logging.Lookup(ctx)
		if !ok {
			ctxLogger = logger
		}

		if ctxLogger == nil {
			ctxLogger = logging.FromContext(ctx)
		}

		latency := time.Since(start)
		status := c.Writer.Status()

		attrs := []slog.Attr{
			slog.String("method", c.Request.Method),
			slog.String("path", path),
			slog.String("route", c.FullPath()),
			slog.Int("status", status),
			slog.Duration("latency", latency),
			slog.Int64("latency_ms", latency.Milliseconds()),
			slog.Int("bytes", c.Writer.Size()),
			slog.String("client_ip", c.ClientIP()),
		}

		// CarScope already put car_id on the context logger.
		if _, scoped := CarIDFromContext(ctx); !scoped {
			if carID := c.Param("carId"); carID != "" {
				attrs = append(attrs, slog.String("car_id", carID))
			}
		}

		if len(c.Errors) > 0 {
			attrs = append(attrs, slog.String("errors", c.Errors.String()))
		}

		ctxLogger.LogAttrs(ctx, levelForStatus(status), "request completed", attrs...)
	}
}

func levelForStatus(status int) slog.Level {
	switch {
	case status >= http.StatusInternalServerError:
		return slog.LevelError
	case status >= http.StatusBadRequest:
		return slog.LevelWarn
	default:
		return slog.LevelInfo
	}
}
