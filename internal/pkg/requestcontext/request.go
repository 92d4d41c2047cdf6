package requestcontext

import (
	"context"

	"github.com/google/uuid"
)

// ContextKey type for context keys to avoid collisions
type ContextKey string

// RequestIDKey is the context key for the request ID
const RequestIDKey ContextKey = "request_id"

// NewRequestID generates a fresh request ID
func NewRequestID() string {
	return uuid.New().String()
}

// WithRequestID stores the request ID in ctx
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, RequestIDKey, requestID)
}

// RequestID returns the request ID carried by ctx, or ""
func RequestID(ctx context.Context) string {
	if id, ok := ctx.Value(RequestIDKey).(string); ok {
		return id
	}
	return ""
}
