package obs

import (
	"airship-delivery/internal/platform/logging"
	"context"
	"time"

	"go.uber.org/zap"
)

type ctxKey string

const SessionIDKey ctxKey = "session_id"

// WithSession tags ctx with the play session id picked up by Time.
func WithSession(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, SessionIDKey, id)
}

func SessionID(ctx context.Context) string {
	id, _ := ctx.Value(SessionIDKey).(string)
	return id
}

// Time logs the duration of op when the returned func is deferred with the op's error.
func Time(ctx context.Context, name string) func(errp *error) {
	start := time.Now()
	sessionID := SessionID(ctx)

	return func(errp *error) {
		fields := []zap.Field{
			zap.String("session_id", sessionID),
			zap.String("op", name),
			zap.Int64("dur_ms", time.Since(start).Milliseconds()),
		}

		if errp != nil && *errp != nil {
			logging.New("obs").Warn("op failed", append(fields, zap.Error(*errp))...)
			return
		}
		logging.New("obs").Debug("op done", fields...)
	}
}
