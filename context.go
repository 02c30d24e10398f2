package assetkit

import (
	"context"
	"log/slog"
)

// contextKey prevents collisions with other packages using context values
type contextKey struct{}

// WithResolver attaches a resolver to the context.
func WithResolver(ctx context.Context, r *Resolver) context.Context {
	return context.WithValue(ctx, contextKey{}, r)
}

// FromContext retrieves the resolver attached by Middleware or WithResolver.
func FromContext(ctx context.Context) (*Resolver, bool) {
	r, ok := ctx.Value(contextKey{}).(*Resolver)
	return r, ok
}

// MustFromContext panics if no resolver is present. Use only in handlers
// mounted behind Middleware.
func MustFromContext(ctx context.Context) *Resolver {
	r, ok := FromContext(ctx)
	if !ok || r == nil {
		panic("assetkit: no resolver in context")
	}
	return r
}

// LoggerExtractor returns a function that enriches log records with the
// selected asset build name once resolution has happened.
func LoggerExtractor() func(ctx context.Context) (slog.Attr, bool) {
	return func(ctx context.Context) (slog.Attr, bool) {
		if r, ok := FromContext(ctx); ok {
			if build := r.Build(); build != "" {
				return slog.String("asset_build", build), true
			}
		}
		return slog.Attr{}, false
	}
}
