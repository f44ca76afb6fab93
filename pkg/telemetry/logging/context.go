package logging

import (
	"context"
)

// Context keys for common log fields.
type contextKey string

const (
	// EntityIDKey is the context key for wrapped entity identifiers.
	EntityIDKey contextKey = "entity_id"

	// TestNameKey is the context key for the name of the running test.
	TestNameKey contextKey = "test"
)

// WithEntityID adds a wrapped entity identifier to the context.
func WithEntityID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, EntityIDKey, id)
}

// GetEntityID retrieves the wrapped entity identifier from the context.
func GetEntityID(ctx context.Context) string {
	if id, ok := ctx.Value(EntityIDKey).(string); ok {
		return id
	}
	return ""
}

// WithTestName adds the running test's name to the context.
func WithTestName(ctx context.Context, name string) context.Context {
	return context.WithValue(ctx, TestNameKey, name)
}

// GetTestName retrieves the running test's name from the context.
func GetTestName(ctx context.Context) string {
	if name, ok := ctx.Value(TestNameKey).(string); ok {
		return name
	}
	return ""
}

// extractContextFields extracts common fields from context for logging.
// Returns a slice of key-value pairs suitable for logger.With().
func extractContextFields(ctx context.Context) []any {
	var fields []any

	if id := GetEntityID(ctx); id != "" {
		fields = append(fields, "entity_id", id)
	}
	if name := GetTestName(ctx); name != "" {
		fields = append(fields, "test", name)
	}

	return fields
}
