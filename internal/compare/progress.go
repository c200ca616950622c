package compare

import "context"

// ProgressFunc is a callback for reporting per-platform progress messages.
type ProgressFunc func(msg string)

type progressKey struct{}

// WithProgress returns a context carrying the given progress callback.
func WithProgress(ctx context.Context, fn ProgressFunc) context.Context {
	return context.WithValue(ctx, progressKey{}, fn)
}

// reportProgress calls the progress callback in ctx, if any.
// Safe to call when no callback is set — it simply returns.
func reportProgress(ctx context.Context, msg string) {
	if fn, ok := ctx.Value(progressKey{}).(ProgressFunc); ok && fn != nil {
		fn(msg)
	}
}
