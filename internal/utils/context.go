// Package utils holds small helpers shared by the client transport and the
// reference backend: context keys, JSON responses, the resty wrapper and
// identifier generation.
package utils

import "context"

// contextKey is a private type for context keys, so that keys from other
// packages never collide with ours.
type contextKey string

func (c contextKey) String() string {
	return string(c)
}

var (
	// UserIDCtxKey carries the authenticated user id (int64) of a backend
	// request.
	UserIDCtxKey = contextKey("userID")
	// TraceIDCtxKey carries the X-Trace-ID of a backend request.
	TraceIDCtxKey = contextKey("traceID")
)

// GetUserIDFromContext returns the user id stored under [UserIDCtxKey].
// ok is false when the value is missing or is not an int64.
func GetUserIDFromContext(ctx context.Context) (int64, bool) {
	userID, ok := ctx.Value(UserIDCtxKey).(int64)
	return userID, ok
}

// GetTraceIDFromContext returns the trace id stored under [TraceIDCtxKey],
// or an empty string.
func GetTraceIDFromContext(ctx context.Context) string {
	traceID, _ := ctx.Value(TraceIDCtxKey).(string)
	return traceID
}
