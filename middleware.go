package assetkit

import (
	"fmt"
	"net/http"

	"github.com/dmitrymomot/assetkit/pkg/manifest"
	"github.com/dmitrymomot/assetkit/pkg/useragent"
)

// Middleware returns a middleware that builds a per-request Resolver from the
// request's User-Agent header and attaches it to the request context.
// Handlers retrieve it with FromContext and embed the returned asset
// descriptors into their markup; the middleware itself never serves files.
//
// Panics on an invalid configuration to enforce fail-fast initialization —
// a misconfigured asset pipeline should prevent startup, not surface per
// request.
func Middleware(cfg Config, store *manifest.Store, opts ...Option) func(http.Handler) http.Handler {
	// Share one default matcher across requests so its user-agent parse
	// cache is effective. A WithMatcher in opts still takes precedence.
	opts = append([]Option{WithMatcher(useragent.NewFamilyMatcher())}, opts...)

	if _, err := New(cfg, store, opts...); err != nil {
		panic(fmt.Sprintf("assetkit: invalid middleware configuration: %v", err))
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			requestCfg := cfg
			requestCfg.UserAgent = req.UserAgent()

			// Construction cannot fail here: the config was validated above
			// and the user agent is unconstrained.
			r, _ := New(requestCfg, store, opts...)

			next.ServeHTTP(w, req.WithContext(WithResolver(req.Context(), r)))
		})
	}
}
