package utils

import (
	"context"

	"github.com/sirupsen/logrus"
)

type ContextKey string

const RequestIDKey = ContextKey("requestID")

func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, RequestIDKey, id)
}

func RequestID(ctx context.Context) string {
	id, _ := ctx.Value(RequestIDKey).(string)
	return id
}

// LoggerFromContext returns a log entry carrying the request id of ctx,
// if it has one.
func LoggerFromContext(ctx context.Context) *logrus.Entry {
	entry := logrus.NewEntry(Logger)
	if id := RequestID(ctx); id != "" {
		entry = entry.WithField("request_id", id)
	}
	return entry
}
