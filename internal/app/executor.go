package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/jsamuelsen/carinsurance-service/internal/domain"
	"github.com/jsamuelsen/carinsurance-service/internal/platform/logging"
)

// Write operations run as Validate → Perform → Verify → Respond.
//
//  1. VALIDATE - check preconditions against the store before any write
//  2. PERFORM  - execute the single write
//  3. VERIFY   - confirm the write; re-reads the store where a read model
//     exists (cars), otherwise checks Perform's result against the input
//  4. RESPOND  - shape the verified state for the caller
//
// Every step is logged with the operation name. Rule violations reported as
// domain errors are returned untouched so callers can map them; any other
// failure is wrapped in an ExecutionError naming the step.

// ExecutionStep represents a step of an operation.
type ExecutionStep string

const (
	StepValidate ExecutionStep = "validate"
	StepPerform  ExecutionStep = "perform"
	StepVerify   ExecutionStep = "verify"
	StepRespond  ExecutionStep = "respond"
)

// ExecutionError wraps an infrastructure failure with the step where it occurred.
type ExecutionError struct {
	Operation string
	Step      ExecutionStep
	Cause     error
}

// Error implements the error interface.
func (e *ExecutionError) Error() string {
	return fmt.Sprintf("%s: %s failed: %v", e.Operation, e.Step, e.Cause)
}

// Unwrap returns the underlying cause for errors.Is/As support.
func (e *ExecutionError) Unwrap() error {
	return e.Cause
}

// Executor runs write operations step by step.
type Executor struct {
	logger *slog.Logger
}

// NewExecutor creates a new executor with the given logger.
func NewExecutor(logger *slog.Logger) *Executor {
	if logger == nil {
		logger = slog.Default()
	}

	return &Executor{logger: logger}
}

// Operation defines the functions for each step.
// I is the input, P what Perform produced, and O the caller's result.
type Operation[I, P, O any] struct {
	// Name identifies this operation in logs and errors.
	Name string

	// Validate checks preconditions. Return an error to abort before any write.
	Validate func(ctx context.Context, input I) error

	// Perform executes the write.
	Perform func(ctx context.Context, input I) (P, error)

	// Verify reads back the performed state.
	Verify func(ctx context.Context, input I, performed P) (O, error)

	// Respond post-processes the verified result. Optional.
	Respond func(ctx context.Context, input I, verified O) (O, error)
}

// Execute runs op through its steps. Nil steps are skipped; when Verify is nil
// the zero O is passed on.
func Execute[I, P, O any](ctx context.Context, exec *Executor, op Operation[I, P, O], input I) (O, error) {
	var zero O

	logger := exec.logger
	if ctxLogger, ok := logging.Lookup(ctx); ok {
		logger = ctxLogger
	}

	logger = logger.With(slog.String("operation", op.Name))
	start := time.Now()

	if op.Validate != nil {
		logger.DebugContext(ctx, "starting validation")

		if err := op.Validate(ctx, input); err != nil {
			logger.WarnContext(ctx, "validation failed", slog.Any("error", err))
			return zero, stepError(op.Name, StepValidate, err)
		}
	}

	var performed P

	if op.Perform != nil {
		logger.DebugContext(ctx, "performing operation")

		var err error

		performed, err = op.Perform(ctx, input)
		if err != nil {
			logger.ErrorContext(ctx, "perform failed", slog.Any("error", err))
			return zero, stepError(op.Name, StepPerform, err)
		}
	}

	var verified O

	if op.Verify != nil {
		logger.DebugContext(ctx, "verifying result")

		var err error

		verified, err = op.Verify(ctx, input, performed)
		if err != nil {
			logger.ErrorContext(ctx, "verification failed", slog.Any("error", err))
			return zero, stepError(op.Name, StepVerify, err)
		}
	}

	if op.Respond != nil {
		var err error

		verified, err = op.Respond(ctx, input, verified)
		if err != nil {
			logger.WarnContext(ctx, "respond failed", slog.Any("error", err))
			return zero, stepError(op.Name, StepRespond, err)
		}
	}

	logger.InfoContext(ctx, "operation completed",
		slog.Duration("duration", time.Since(start)),
	)

	return verified, nil
}

// stepError passes domain errors through and wraps everything else.
func stepError(operation string, step ExecutionStep, err error) error {
	if isDomainError(err) {
		return err
	}

	return &ExecutionError{Operation: operation, Step: step, Cause: err}
}

func isDomainError(err error) bool {
	return domain.IsNotFound(err) ||
		domain.IsConflict(err) ||
		domain.IsValidation(err) ||
		domain.IsNoCoverage(err) ||
		domain.IsUnavailable(err)
}

// GetExecutionStep extracts the failed step from an execution error.
func GetExecutionStep(err error) (ExecutionStep, bool) {
	var execErr *ExecutionError
	if errors.As(err, &execErr) {
		return execErr.Step, true
	}

	return "", false
}
