package dto

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel/trace"

	"github.com/jsamuelsen/carinsurance-service/internal/domain"
	"github.com/jsamuelsen/carinsurance-service/internal/platform/logging"
)

// TraceIDKey is the gin context key checked first by GetTraceID.
const TraceIDKey = "trace_id"

// Fallback sources of a trace identifier, set by the request id middleware.
const (
	requestIDKey    = "request_id"
	requestIDHeader = "X-Request-ID"
)

// MapDomainError maps a domain error to an HTTP status code and error response.
// Unknown errors become a 500 with a generic message so internals never leak.
func MapDomainError(err error) (int, *ErrorResponse) {
	if err == nil {
		return http.StatusOK, nil
	}

	var resp *ErrorResponse

	switch {
	case domain.IsNotFound(err):
		resp = NewErrorResponse(ErrorCodeNotFound, err.Error())
	case domain.IsConflict(err):
		resp = NewErrorResponse(ErrorCodeConflict, err.Error())
	case domain.IsValidation(err):
		resp = validationResponse(err)
	case domain.IsNoCoverage(err):
		resp = NewErrorResponse(ErrorCodeNoCoverage, err.Error())
	case domain.IsUnavailable(err):
		resp = NewErrorResponse(ErrorCodeUnavailable, "the record store is temporarily unavailable")
	case errors.Is(err, context.DeadlineExceeded):
		resp = NewErrorResponse(ErrorCodeTimeout, "request timeout exceeded")
	default:
		resp = NewErrorResponse(ErrorCodeInternal, "an internal error occurred")
	}

	return HTTPStatusFromCode(resp.Error.Code), resp
}

func validationResponse(err error) *ErrorResponse {
	resp := NewErrorResponse(ErrorCodeValidation, err.Error())

	var validationErr *domain.ValidationError
	if errors.As(err, &validationErr) && validationErr.Field != "" {
		resp.Error.Details = map[string]string{
			validationErr.Field: validationErr.Message,
		}
	}

	return resp
}

// GetTraceID returns the identifier used to correlate an error response with
// logs and traces. It prefers an explicit gin context value, then the active
// OpenTelemetry span, then the request id.
func GetTraceID(c *gin.Context) string {
	if v, ok := c.Get(TraceIDKey); ok {
		id, _ := v.(string)
		return id
	}

	if c.Request == nil {
		return ""
	}

	if sc := trace.SpanFromContext(c.Request.Context()).SpanContext(); sc.HasTraceID() {
		return sc.TraceID().String()
	}

	if id := c.GetString(requestIDKey); id != "" {
		return id
	}

	return c.Request.Header.Get(requestIDHeader)
}

// HandleError writes the error response for err, mapping domain errors to
// their HTTP status. Internal errors are logged with full detail.
func HandleError(c *gin.Context, err error) {
	status, errResp := MapDomainError(err)
	errResp.TraceID = GetTraceID(c)

	if status >= http.StatusInternalServerError {
		logging.FromContext(c.Request.Context()).ErrorContext(c.Request.Context(), "request failed",
			slog.Int("status", status),
			slog.Any("error", err),
			slog.String("trace_id", errResp.TraceID),
		)
	}

	c.JSON(status, errResp)
}

// HandleRequestError writes a 400 response for a request that failed to bind
// or validate. Field-level messages go into the error details.
func HandleRequestError(c *gin.Context, err error) {
	var domainErr *domain.ValidationError

	switch {
	case IsValidationError(err):
		RespondWithValidationErrors(c, ValidationErrors(err))
	case errors.As(err, &domainErr):
		HandleError(c, domainErr)
	default:
		RespondWithErrorCode(c, ErrorCodeBadRequest, err.Error())
	}
}

// RespondWithErrorCode writes an error response with a specific error code.
// Use this for adapter-level errors that don't originate from domain errors.
func RespondWithErrorCode(c *gin.Context, code, message string) {
	c.JSON(HTTPStatusFromCode(code), NewErrorResponse(code, message).WithTraceID(GetTraceID(c)))
}

// RespondWithValidationErrors writes a 400 response with field-level validation errors.
func RespondWithValidationErrors(c *gin.Context, fieldErrors map[string]string) {
	errResp := NewErrorResponseWithDetails(
		ErrorCodeValidation,
		"request validation failed",
		fieldErrors,
	)

	c.JSON(http.StatusBadRequest, errResp.WithTraceID(GetTraceID(c)))
}
