package ctxutil

import (
	"context"

	"github.com/google/uuid"
)

type ctxKey string

const (
	operationKey ctxKey = "operation"
	requestIDKey ctxKey = "request_id"
)

// WithOperation stores the name of the dispatching operation in the context.
func WithOperation(ctx context.Context, op string) context.Context {
	return context.WithValue(ctx, operationKey, op)
}

// OperationFromCtx extracts the operation name from the context.
// Returns an empty string if absent.
func OperationFromCtx(ctx context.Context) string {
	op, _ := ctx.Value(operationKey).(string)
	return op
}

// WithRequestID stores the request ID in the context.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey, id)
}

// RequestIDFromCtx extracts the request ID from the context.
// Returns an empty string if absent.
func RequestIDFromCtx(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey).(string)
	return id
}

// EnsureRequestID returns the request ID already stored in ctx or generates
// a new one and stores it.
func EnsureRequestID(ctx context.Context) (context.Context, string) {
	if id := RequestIDFromCtx(ctx); id != "" {
		return ctx, id
	}
	id := uuid.NewString()
	return WithRequestID(ctx, id), id
}
