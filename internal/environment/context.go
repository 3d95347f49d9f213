package environment

import "context"

type contextKey struct{}

// WithContext returns a copy of ctx carrying env, so server-side data
// loaders can read the request's configuration snapshot without a network
// round trip.
func WithContext(ctx context.Context, env Resolved) context.Context {
	return context.WithValue(ctx, contextKey{}, env)
}

// FromContext returns the snapshot stored by [WithContext].
func FromContext(ctx context.Context) (Resolved, bool) {
	env, ok := ctx.Value(contextKey{}).(Resolved)
	return env, ok
}
