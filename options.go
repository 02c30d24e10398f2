package assetkit

import (
	"log/slog"

	"github.com/dmitrymomot/assetkit/pkg/useragent"
)

// Option configures a Resolver beyond its Config.
type Option func(*Resolver)

// WithMatcher replaces the browser-matching policy. The default is
// useragent.NewFamilyMatcher; tests typically stub it.
func WithMatcher(m useragent.Matcher) Option {
	return func(r *Resolver) {
		if m != nil {
			r.matcher = m
		}
	}
}

// WithLogger enables debug logging of build selection. The resolver logs
// nothing else; errors propagate to the caller untouched.
func WithLogger(log *slog.Logger) Option {
	return func(r *Resolver) {
		r.log = log
	}
}
