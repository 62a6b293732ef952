package common

import (
	"context"
)

// Context keys for storing values in context
type contextKey string

const (
	ContextKeyRequestID   contextKey = "request_id"
	ContextKeyCarrierHint contextKey = "carrier_hint"
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

// WithCarrierHint adds a caller-supplied carrier hint to the context
func WithCarrierHint(ctx context.Context, carrier string) context.Context {
	return context.WithValue(ctx, ContextKeyCarrierHint, carrier)
}

// CarrierHintFromContext extracts the carrier hint from context
func CarrierHintFromContext(ctx context.Context) string {
	if carrier, ok := ctx.Value(ContextKeyCarrierHint).(string); ok {
		return carrier
	}
	return ""
}
