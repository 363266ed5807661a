package logger

import (
	"context"

	"github.com/sirupsen/logrus"
)

type contextKey string

const (
	// ActorIDKey carries the authenticated user's id (string) in a context.
	ActorIDKey contextKey = "actor_id"
	// ActorRoleKey carries the authenticated user's role (string) in a context.
	ActorRoleKey contextKey = "actor_role"
	// RequestIDKey carries the request id assigned by the HTTP middleware.
	RequestIDKey contextKey = "request_id"
)

// Logger wraps logrus for structured logging with context support
type Logger struct {
	*logrus.Entry
}

// New creates a new logger
func New() *Logger {
	return &Logger{
		Entry: logrus.NewEntry(logrus.StandardLogger()),
	}
}

// WithContext creates a logger tagged with the actor and request found in ctx
func WithContext(ctx context.Context) *Logger {
	logger := New()
	if ctx == nil {
		return logger
	}

	if id, ok := ctx.Value(ActorIDKey).(string); ok && id != "" {
		logger.Entry = logger.Entry.WithField("actor", id)
	} else {
		logger.Entry = logger.Entry.WithField("actor", "system")
	}
	if role, ok := ctx.Value(ActorRoleKey).(string); ok && role != "" {
		logger.Entry = logger.Entry.WithField("role", role)
	}
	if reqID, ok := ctx.Value(RequestIDKey).(string); ok && reqID != "" {
		logger.Entry = logger.Entry.WithField("request_id", reqID)
	}

	return logger
}

// ContextWithActor returns a copy of ctx carrying the actor id and role
func ContextWithActor(ctx context.Context, id, role string) context.Context {
	ctx = context.WithValue(ctx, ActorIDKey, id)
	return context.WithValue(ctx, ActorRoleKey, role)
}

// ContextWithRequestID returns a copy of ctx carrying the request id
func ContextWithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, RequestIDKey, requestID)
}

// WithField adds a field to the logger
func (l *Logger) WithField(key string, value interface{}) *Logger {
	return &Logger{
		Entry: l.Entry.WithField(key, value),
	}
}

// WithFields adds multiple fields to the logger
func (l *Logger) WithFields(fields map[string]interface{}) *Logger {
	return &Logger{
		Entry: l.Entry.WithFields(fields),
	}
}

// WithError attaches an error to the logger
func (l *Logger) WithError(err error) *Logger {
	return &Logger{
		Entry: l.Entry.WithError(err),
	}
}

// Setup configures the standard logrus logger: JSON output at the given level
func Setup(level string) {
	logrus.SetFormatter(&logrus.JSONFormatter{})

	switch level {
	case "debug":
		logrus.SetLevel(logrus.DebugLevel)
	case "info":
		logrus.SetLevel(logrus.InfoLevel)
	case "warn":
		logrus.SetLevel(logrus.WarnLevel)
	case "error":
		logrus.SetLevel(logrus.ErrorLevel)
	default:
		logrus.SetLevel(logrus.InfoLevel)
	}
}
