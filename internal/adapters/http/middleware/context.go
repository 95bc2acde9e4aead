// Package middleware provides HTTP middleware for the Gin framework.
package middleware

import "context"

// Scope is what the middleware chain learned about the request being served.
// It travels in context.Context so the service layer can read it without
// depending on gin.
type Scope struct {
	RequestID     string
	CorrelationID string

	// CarID is the :carId path parameter, zero on routes without one or
	// when it does not parse.
	CarID int64
}

type scopeKey struct{}

// ScopeFromContext returns the request scope stored in ctx. A nil ctx or one
// without a scope yields the zero Scope.
func ScopeFromContext(ctx context.Context) Scope {
	if ctx == nil {
		return Scope{}
	}

	s, _ := ctx.Value(scopeKey{}).(Scope)

	return s
}

// withScope stores a copy of the current scope, changed by update.
func withScope(ctx context.Context, update func(*Scope)) context.Context {
	s := ScopeFromContext(ctx)
	update(&s)

	return context.WithValue(ctx, scopeKey{}, s)
}

// RequestIDFromContext extracts the request ID from context.Context.
func RequestIDFromContext(ctx context.Context) string {
	return ScopeFromContext(ctx).RequestID
}

// CorrelationIDFromContext extracts the correlation ID from context.Context.
func CorrelationIDFromContext(ctx context.Context) string {
	return ScopeFromContext(ctx).CorrelationID
}

// CarIDFromContext returns the car the request addresses, if any.
func CarIDFromContext(ctx context.Context) (int64, bool) {
	id := ScopeFromContext(ctx).CarID
	return id, id > 0
}

// ContextWithRequestID stores a request ID in the context.
func ContextWithRequestID(ctx context.Context, id string) context.Context {
	return withScope(ctx, func(s *Scope) { s.RequestID = id })
}

// ContextWithCorrelationID stores a correlation ID in the context.
func ContextWithCorrelationID(ctx context.Context, id string) context.Context {
	return withScope(ctx, func(s *Scope) { s.CorrelationID = id })
}

// ContextWithCarID stores the addressed car in the context.
func ContextWithCarID(ctx context.Context, id int64) context.Context {
	return withScope(ctx, func(s *Scope) { s.CarID = id })
}
