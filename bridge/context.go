package bridge

import "context"

type contextKey struct{}

// WithContext returns a copy of ctx carrying b.
func WithContext(ctx context.Context, b *Bridge) context.Context {
	return context.WithValue(ctx, contextKey{}, b)
}

// FromContext returns the bridge stored in ctx, if any.
func FromContext(ctx context.Context) (*Bridge, bool) {
	b, ok := ctx.Value(contextKey{}).(*Bridge)
	return b, ok && b != nil
}
