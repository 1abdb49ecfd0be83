package common

import (
	"context"
	"time"
)

// Context keys for storing values in context
type contextKey string

const (
	ContextKeyRequestID  contextKey = "request_id"
	ContextKeySupplierID contextKey = "supplier_id"
)

// WithRequestID adds a request ID to the context
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, ContextKeyRequestID, requestID)
}

// RequestIDFromContext extracts the request ID from context
func RequestIDFromContext(ctx context.Context) string {
	if requestID, ok := ctx.Value(ContextKeyRequestID).(string); ok {
		return requestID
	}
	return ""
}

// WithSupplierID adds a supplier ID to the context
func WithSupplierID(ctx context.Context, supplierID string) context.Context {
	return context.WithValue(ctx, ContextKeySupplierID, supplierID)
}

// SupplierIDFromContext extracts the supplier ID from context
func SupplierIDFromContext(ctx context.Context) string {
	if supplierID, ok := ctx.Value(ContextKeySupplierID).(string); ok {
		return supplierID
	}
	return ""
}

// WithTimeout creates a context with the specified timeout
func WithTimeout(parent context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(parent, timeout)
}
