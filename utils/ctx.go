package utils

import (
	"context"

	"github.com/google/uuid"
)

type ctxKey string

const requestIDKey ctxKey = "rqID"

// CreateCtxWithRqID attaches a fresh request id to the context. One id is
// created per user action and carried through every log line it produces.
func CreateCtxWithRqID(ctx context.Context) context.Context {
	return context.WithValue(ctx, requestIDKey, uuid.NewString())
}

func GetRequestIDFromCtx(ctx context.Context) string {
	if rqID, ok := ctx.Value(requestIDKey).(string); ok {
		return rqID
	}
	return ""
}
