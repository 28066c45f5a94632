package logging

import (
	"context"
	"fmt"
	"regexp"

	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

type siteCtxKey struct{}
type envCtxKey struct{}
type requestCtxKey struct{}
type wpContextCtxKey struct{}
type loggerCtxKey struct{}

const maxValueLen = 128

var valuePattern = regexp.MustCompile(`^[a-zA-Z0-9_.:/-]+$`)

// ContextFields returns the correlation fields carried by ctx.
func ContextFields(ctx context.Context) []zap.Field {
	fields := make([]zap.Field, 0, 6)

	if sc := trace.SpanContextFromContext(ctx); sc.IsValid() {
		fields = append(fields,
			zap.String("trace_id", sc.TraceID().String()),
			zap.String("span_id", sc.SpanID().String()),
		)
	}
	if site := stringValue(ctx, siteCtxKey{}); site != "" {
		fields = append(fields, zap.String("site", site))
	}
	if env := stringValue(ctx, envCtxKey{}); env != "" {
		fields = append(fields, zap.String("env", env))
	}
	if wpctx := stringValue(ctx, wpContextCtxKey{}); wpctx != "" {
		fields = append(fields, zap.String("wp.context", wpctx))
	}
	if id := stringValue(ctx, requestCtxKey{}); id != "" {
		fields = append(fields, zap.String("request.id", id))
	}
	return fields
}

func stringValue(ctx context.Context, key any) string {
	s, _ := ctx.Value(key).(string)
	return s
}

func validate(name, value string) error {
	if value == "" {
		return fmt.Errorf("%s cannot be empty", name)
	}
	if len(value) > maxValueLen {
		return fmt.Errorf("%s exceeds max length %d", name, maxValueLen)
	}
	if !valuePattern.MatchString(value) {
		return fmt.Errorf("%s contains invalid characters", name)
	}
	return nil
}

func withValue(ctx context.Context, key any, name, value string) context.Context {
	if err := validate(name, value); err != nil {
		panic("logging: " + err.Error())
	}
	return context.WithValue(ctx, key, value)
}

// WithSite records the site (usually the server name). It panics on an
// empty or malformed value.
func WithSite(ctx context.Context, site string) context.Context {
	return withValue(ctx, siteCtxKey{}, "site", site)
}

// WithEnvironment records the current environment key.
func WithEnvironment(ctx context.Context, env string) context.Context {
	return withValue(ctx, envCtxKey{}, "env", env)
}

// WithRequestContext records the classified request context key.
func WithRequestContext(ctx context.Context, key string) context.Context {
	return withValue(ctx, wpContextCtxKey{}, "wp.context", key)
}

func WithRequestID(ctx context.Context, id string) context.Context {
	return withValue(ctx, requestCtxKey{}, "request.id", id)
}

func SiteFromContext(ctx context.Context) string        { return stringValue(ctx, siteCtxKey{}) }
func EnvironmentFromContext(ctx context.Context) string { return stringValue(ctx, envCtxKey{}) }
func RequestIDFromContext(ctx context.Context) string   { return stringValue(ctx, requestCtxKey{}) }

// WithLogger stores logger in ctx.
func WithLogger(ctx context.Context, logger *Logger) context.Context {
	return context.WithValue(ctx, loggerCtxKey{}, logger)
}

// FromContext returns the logger stored in ctx, or Nop.
func FromContext(ctx context.Context) *Logger {
	if l, ok := ctx.Value(loggerCtxKey{}).(*Logger); ok && l != nil {
		return l
	}
	return Nop()
}
