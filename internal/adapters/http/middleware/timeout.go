package middleware

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/jsamuelsen/carinsurance-service/internal/adapters/http/dto"
	"github.com/jsamuelsen/carinsurance-service/internal/platform/logging"
)

// SimpleTimeout returns middleware that sets a deadline on the request
// context. Store calls made by the handler honour the deadline and fail once
// it passes. If the handler wrote nothing by then, a 504 with the standard
// error envelope is sent.
//
// The handler always runs on the request goroutine; a handler that ignores
// its context is not interrupted.
func SimpleTimeout(timeout time.Duration) gin.HandlerFunc {
	return TimeoutWithSkipPaths(timeout, nil)
}

// TimeoutWithSkipPaths is SimpleTimeout except for the given exact paths,
// which run without a deadline.
func TimeoutWithSkipPaths(timeout time.Duration, skipPaths []string) gin.HandlerFunc {
	skipMap := make(map[string]struct{}, len(skipPaths))
	for _, path := range skipPaths {
		skipMap[path] = struct{}{}
	}

	return func(c *gin.Context) {
		if _, skip := skipMap[c.Request.URL.Path]; skip {
			c.Next()
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), timeout)
		defer cancel()

		c.Request = c.Request.WithContext(ctx)
		c.Next()

		if errors.Is(ctx.Err(), context.DeadlineExceeded) {
			handleTimeout(c, timeout)
		}
	}
}

// handleTimeout logs a request that outlived its deadline and responds with
// an error unless the handler already wrote one.
func handleTimeout(c *gin.Context, timeout time.Duration) {
	traceID := dto.GetTraceID(c)

	logging.FromContext(c.Request.Context()).Warn("request timeout",
		slog.String("path", c.Request.URL.Path),
		slog.String("method", c.Request.Method),
		slog.Duration("timeout", timeout),
		slog.String("trace_id", traceID),
	)

	if c.Writer.Written() {
		return
	}

	c.AbortWithStatusJSON(http.StatusGatewayTimeout, dto.NewErrorResponse(
		dto.ErrorCodeTimeout,
		"request timeout exceeded",
	).WithTraceID(traceID))
}
