package ctxutil

import "context"

type ctxKey string

const (
	requestIDKey ctxKey = "request_id"
	originKey    ctxKey = "import_origin"
)

// Import origins recorded on the context by the entry points.
const (
	OriginUpload    = "upload"
	OriginBootstrap = "bootstrap"
	OriginCLI       = "cli"
)

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

// WithOrigin records which entry point started an import.
func WithOrigin(ctx context.Context, origin string) context.Context {
	return context.WithValue(ctx, originKey, origin)
}

// OriginFromCtx returns the import origin, or "unknown" if none was recorded.
func OriginFromCtx(ctx context.Context) string {
	if o, ok := ctx.Value(originKey).(string); ok && o != "" {
		return o
	}
	return "unknown"
}
