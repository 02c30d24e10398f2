package assetkit

import (
	"context"
	"log/slog"
	"slices"
	"sync"

	"github.com/dmitrymomot/assetkit/pkg/manifest"
	"github.com/dmitrymomot/assetkit/pkg/useragent"
)

const (
	// DefaultEntrypoint is the entrypoint used when none is named.
	DefaultEntrypoint = "main"

	// vendorBundlePath is the development-only vendor DLL bundle the build
	// pipeline serves but never registers in the manifest.
	vendorBundlePath = "dll/vendor.js"
)

// Resolver selects the build variant matching one client's user agent and
// serves its entrypoint asset lists. A Resolver is cheap: create one per
// request and share the Store between them. The selection runs once and is
// memoized for the Resolver's lifetime; the user agent is fixed at
// construction.
type Resolver struct {
	cfg     Config
	store   *manifest.Store
	matcher useragent.Matcher
	log     *slog.Logger

	mu       sync.Mutex
	resolved bool
	manifest manifest.Manifest
	build    string
	err      error
}

// New creates a Resolver for one request's user agent.
func New(cfg Config, store *manifest.Store, opts ...Option) (*Resolver, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if store == nil {
		return nil, ErrNilStore
	}

	r := &Resolver{cfg: cfg, store: store}
	for _, opt := range opts {
		opt(r)
	}
	if r.matcher == nil {
		r.matcher = useragent.NewFamilyMatcher()
	}
	return r, nil
}

// Scripts returns the JS asset list of the named entrypoint (DefaultEntrypoint
// when empty) from the build variant selected for this Resolver's user agent.
// In development a synthetic vendor bundle asset is prepended; the returned
// slice is always a fresh copy, so the prepend never touches cached data.
func (r *Resolver) Scripts(ctx context.Context, entrypoint string) ([]manifest.Asset, error) {
	ep, err := r.entrypoint(ctx, entrypoint)
	if err != nil {
		return nil, err
	}

	js := slices.Clone(ep.JS)
	if r.cfg.Development {
		js = append([]manifest.Asset{{Path: r.cfg.AssetHost + vendorBundlePath}}, js...)
	}
	return js, nil
}

// Styles returns the CSS asset list of the named entrypoint. No development
// injection applies to styles.
func (r *Resolver) Styles(ctx context.Context, entrypoint string) ([]manifest.Asset, error) {
	ep, err := r.entrypoint(ctx, entrypoint)
	if err != nil {
		return nil, err
	}
	return slices.Clone(ep.CSS), nil
}

// Build returns the name of the selected build variant, or "" if resolution
// has not happened (or failed).
func (r *Resolver) Build() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.build
}

func (r *Resolver) entrypoint(ctx context.Context, name string) (manifest.Entrypoint, error) {
	if name == "" {
		name = DefaultEntrypoint
	}
	m, err := r.resolve(ctx)
	if err != nil {
		return manifest.Entrypoint{}, err
	}
	return m.Entrypoint(name)
}

// resolve memoizes the build variant selection. The first call performs it
// (loading the consolidated manifest through the shared Store); every later
// call returns the same manifest or error without re-scanning.
func (r *Resolver) resolve(ctx context.Context) (manifest.Manifest, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if !r.resolved {
		r.manifest, r.build, r.err = r.selectManifest(ctx)
		r.resolved = true
	}
	return r.manifest, r.err
}

// selectManifest implements the variant selection policy over the ordered
// consolidated manifest:
//
//  1. With no user agent, or with a single build, the last (fallback) entry
//     applies unconditionally — a single-variant build is always served even
//     if it declares browser targets.
//  2. Otherwise the first entry, in declared order, whose target list is
//     absent or matches the user agent wins.
//  3. No match falls back to the last entry.
func (r *Resolver) selectManifest(ctx context.Context) (manifest.Manifest, string, error) {
	cm, err := r.store.Load(ctx)
	if err != nil {
		return manifest.Manifest{}, "", err
	}

	last := cm[len(cm)-1]
	selected := last
	if r.cfg.UserAgent != "" && len(cm) > 1 {
		for _, entry := range cm {
			if len(entry.Browsers) == 0 || r.matcher.Matches(r.cfg.UserAgent, entry.Browsers) {
				selected = entry
				break
			}
		}
	}

	if r.log != nil {
		r.log.DebugContext(ctx, "selected asset build",
			slog.String("build", selected.Name),
			slog.String("user_agent", r.cfg.UserAgent),
		)
	}
	return selected.Manifest, selected.Name, nil
}
