package assetkit_test

import (
	"context"
	"encoding/json"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/assetkit"
	"github.com/dmitrymomot/assetkit/pkg/manifest"
	"github.com/dmitrymomot/assetkit/pkg/useragent"
)

const testAssetHost = "http://localhost:8080/"

// countingMatcher matches a user agent against target lists containing it
// verbatim, and counts Matches calls.
type countingMatcher struct {
	calls atomic.Int32
}

func (m *countingMatcher) Matches(userAgent string, targets []string) bool {
	m.calls.Add(1)
	for _, t := range targets {
		if t == userAgent {
			return true
		}
	}
	return false
}

type countingSource struct {
	calls atomic.Int32
	raw   []byte
}

func (c *countingSource) Fetch(context.Context) ([]byte, error) {
	c.calls.Add(1)
	return c.raw, nil
}

func newStore(t *testing.T, cm manifest.ConsolidatedManifest) (*manifest.Store, *countingSource) {
	t.Helper()
	raw, err := json.Marshal(cm)
	require.NoError(t, err)
	src := &countingSource{raw: raw}
	return manifest.NewStore(src), src
}

func build(name string, browsers []string, jsPaths ...string) manifest.Entry {
	js := make([]manifest.Asset, 0, len(jsPaths))
	for _, p := range jsPaths {
		js = append(js, manifest.Asset{Path: p})
	}
	return manifest.Entry{
		Name:     name,
		Browsers: browsers,
		Manifest: manifest.Manifest{Entrypoints: map[string]manifest.Entrypoint{
			"main": {
				JS:  js,
				CSS: []manifest.Asset{{Path: "/" + name + ".css"}},
			},
		}},
	}
}

func newResolver(t *testing.T, cfg assetkit.Config, store *manifest.Store, opts ...assetkit.Option) *assetkit.Resolver {
	t.Helper()
	if cfg.AssetHost == "" {
		cfg.AssetHost = testAssetHost
	}
	r, err := assetkit.New(cfg, store, opts...)
	require.NoError(t, err)
	return r
}

func TestNew(t *testing.T) {
	t.Parallel()

	t.Run("requires an asset host", func(t *testing.T) {
		t.Parallel()

		store, _ := newStore(t, manifest.ConsolidatedManifest{build("app", nil, "/a.js")})
		_, err := assetkit.New(assetkit.Config{}, store)
		assert.ErrorIs(t, err, assetkit.ErrMissingAssetHost)
	})

	t.Run("requires a store", func(t *testing.T) {
		t.Parallel()

		_, err := assetkit.New(assetkit.Config{AssetHost: testAssetHost}, nil)
		assert.ErrorIs(t, err, assetkit.ErrNilStore)
	})
}

func TestResolver_Selection(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	t.Run("single build always applies, even against its own targets", func(t *testing.T) {
		t.Parallel()

		store, _ := newStore(t, manifest.ConsolidatedManifest{
			build("only", []string{"no-match"}, "/only.js"),
		})
		matcher := &countingMatcher{}
		r := newResolver(t, assetkit.Config{UserAgent: "some-agent"}, store, assetkit.WithMatcher(matcher))

		js, err := r.Scripts(ctx, "")
		require.NoError(t, err)
		assert.Equal(t, []manifest.Asset{{Path: "/only.js"}}, js)
		assert.Zero(t, matcher.calls.Load(), "single-build selection must not consult the matcher")
	})

	t.Run("no user agent selects the last build", func(t *testing.T) {
		t.Parallel()

		store, _ := newStore(t, manifest.ConsolidatedManifest{
			build("modern", []string{"agent"}, "/modern.js"),
			build("legacy", nil, "/legacy.js"),
		})
		r := newResolver(t, assetkit.Config{}, store)

		js, err := r.Scripts(ctx, "")
		require.NoError(t, err)
		assert.Equal(t, []manifest.Asset{{Path: "/legacy.js"}}, js)
		assert.Equal(t, "legacy", r.Build())
	})

	t.Run("first matching build wins in declared order", func(t *testing.T) {
		t.Parallel()

		store, _ := newStore(t, manifest.ConsolidatedManifest{
			build("modern", []string{"other-agent"}, "/modern.js"),
			build("middle", []string{"the-agent"}, "/middle.js"),
			build("legacy", nil, "/legacy.js"),
		})
		r := newResolver(t, assetkit.Config{UserAgent: "the-agent"}, store,
			assetkit.WithMatcher(&countingMatcher{}))

		js, err := r.Scripts(ctx, "")
		require.NoError(t, err)
		assert.Equal(t, []manifest.Asset{{Path: "/middle.js"}}, js)
		assert.Equal(t, "middle", r.Build())
	})

	t.Run("build without targets is universal", func(t *testing.T) {
		t.Parallel()

		store, _ := newStore(t, manifest.ConsolidatedManifest{
			build("universal", nil, "/universal.js"),
			build("legacy", nil, "/legacy.js"),
		})
		r := newResolver(t, assetkit.Config{UserAgent: "anything"}, store,
			assetkit.WithMatcher(&countingMatcher{}))

		js, err := r.Scripts(ctx, "")
		require.NoError(t, err)
		assert.Equal(t, []manifest.Asset{{Path: "/universal.js"}}, js)
	})

	t.Run("no match falls back to the last build", func(t *testing.T) {
		t.Parallel()

		store, _ := newStore(t, manifest.ConsolidatedManifest{
			build("modern", []string{"other-agent"}, "/modern.js"),
			build("legacy", []string{"another-agent"}, "/legacy.js"),
		})
		r := newResolver(t, assetkit.Config{UserAgent: "the-agent"}, store,
			assetkit.WithMatcher(&countingMatcher{}))

		js, err := r.Scripts(ctx, "")
		require.NoError(t, err)
		assert.Equal(t, []manifest.Asset{{Path: "/legacy.js"}}, js)
	})

	t.Run("empty consolidated manifest", func(t *testing.T) {
		t.Parallel()

		store, _ := newStore(t, manifest.ConsolidatedManifest{})
		r := newResolver(t, assetkit.Config{}, store)

		_, err := r.Scripts(ctx, "")
		require.ErrorIs(t, err, manifest.ErrNoBuilds)
		assert.EqualError(t, err, "No builds were found.")
	})

	t.Run("real matcher end to end", func(t *testing.T) {
		t.Parallel()

		store, _ := newStore(t, manifest.ConsolidatedManifest{
			build("modern", []string{"chrome 96", "firefox 94"}, "/modern.js"),
			build("legacy", nil, "/legacy.js"),
		})
		r := newResolver(t, assetkit.Config{UserAgent: chromeUA}, store,
			assetkit.WithMatcher(useragent.NewFamilyMatcher()))

		js, err := r.Scripts(ctx, "")
		require.NoError(t, err)
		assert.Equal(t, []manifest.Asset{{Path: "/modern.js"}}, js)
	})
}

func TestResolver_Memoization(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	t.Run("selection runs once per resolver", func(t *testing.T) {
		t.Parallel()

		store, src := newStore(t, manifest.ConsolidatedManifest{
			build("modern", []string{"the-agent"}, "/modern.js"),
			build("legacy", nil, "/legacy.js"),
		})
		matcher := &countingMatcher{}
		r := newResolver(t, assetkit.Config{UserAgent: "the-agent"}, store, assetkit.WithMatcher(matcher))

		for range 3 {
			_, err := r.Scripts(ctx, "")
			require.NoError(t, err)
			_, err = r.Styles(ctx, "")
			require.NoError(t, err)
		}

		assert.Equal(t, int32(1), matcher.calls.Load())
		assert.Equal(t, int32(1), src.calls.Load())
	})

	t.Run("concurrent first calls across resolvers trigger one read", func(t *testing.T) {
		t.Parallel()

		store, src := newStore(t, manifest.ConsolidatedManifest{
			build("app", nil, "/app.js"),
		})

		var wg sync.WaitGroup
		for range 12 {
			wg.Add(1)
			go func() {
				defer wg.Done()
				r := newResolver(t, assetkit.Config{UserAgent: "agent"}, store)
				_, err := r.Scripts(ctx, "")
				assert.NoError(t, err)
			}()
		}
		wg.Wait()
		assert.Equal(t, int32(1), src.calls.Load())
	})
}

func TestResolver_Scripts(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	t.Run("outside development the list is returned as built", func(t *testing.T) {
		t.Parallel()

		store, _ := newStore(t, manifest.ConsolidatedManifest{build("app", nil, "/a.js")})
		r := newResolver(t, assetkit.Config{}, store)

		js, err := r.Scripts(ctx, "main")
		require.NoError(t, err)
		assert.Equal(t, []manifest.Asset{{Path: "/a.js"}}, js)
	})

	t.Run("development prepends the vendor bundle", func(t *testing.T) {
		t.Parallel()

		store, _ := newStore(t, manifest.ConsolidatedManifest{build("app", nil, "/a.js")})
		r := newResolver(t, assetkit.Config{Development: true}, store)

		js, err := r.Scripts(ctx, "main")
		require.NoError(t, err)
		assert.Equal(t, []manifest.Asset{
			{Path: testAssetHost + "dll/vendor.js"},
			{Path: "/a.js"},
		}, js)
	})

	t.Run("the prepend never leaks into later calls", func(t *testing.T) {
		t.Parallel()

		store, _ := newStore(t, manifest.ConsolidatedManifest{build("app", nil, "/a.js")})
		r := newResolver(t, assetkit.Config{Development: true}, store)

		first, err := r.Scripts(ctx, "main")
		require.NoError(t, err)
		second, err := r.Scripts(ctx, "main")
		require.NoError(t, err)
		assert.Equal(t, first, second)
		assert.Len(t, second, 2)
	})

	t.Run("empty entrypoint name defaults to main", func(t *testing.T) {
		t.Parallel()

		store, _ := newStore(t, manifest.ConsolidatedManifest{build("app", nil, "/a.js")})
		r := newResolver(t, assetkit.Config{}, store)

		js, err := r.Scripts(ctx, "")
		require.NoError(t, err)
		assert.Equal(t, []manifest.Asset{{Path: "/a.js"}}, js)
	})

	t.Run("unknown entrypoint lists the available ones", func(t *testing.T) {
		t.Parallel()

		entry := build("app", nil, "/a.js")
		entry.Manifest.Entrypoints["other"] = manifest.Entrypoint{}
		store, _ := newStore(t, manifest.ConsolidatedManifest{entry})
		r := newResolver(t, assetkit.Config{}, store)

		_, err := r.Scripts(ctx, "missing")
		require.ErrorIs(t, err, manifest.ErrEntrypointNotFound)
		assert.Contains(t, err.Error(), "main, other")
	})
}

func TestResolver_Styles(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	t.Run("returns the css list without injection", func(t *testing.T) {
		t.Parallel()

		store, _ := newStore(t, manifest.ConsolidatedManifest{build("app", nil, "/a.js")})
		r := newResolver(t, assetkit.Config{Development: true}, store)

		css, err := r.Styles(ctx, "main")
		require.NoError(t, err)
		assert.Equal(t, []manifest.Asset{{Path: "/app.css"}}, css)
	})
}

func TestStoreInvalidation(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	// Resolvers created after Invalidate see the new manifest; resolvers
	// that already resolved keep their memoized selection.
	src := &countingSource{}
	raw, err := json.Marshal(manifest.ConsolidatedManifest{build("v1", nil, "/v1.js")})
	require.NoError(t, err)
	src.raw = raw
	store := manifest.NewStore(src)

	before := newResolver(t, assetkit.Config{}, store)
	js, err := before.Scripts(ctx, "")
	require.NoError(t, err)
	assert.Equal(t, "/v1.js", js[0].Path)

	raw, err = json.Marshal(manifest.ConsolidatedManifest{build("v2", nil, "/v2.js")})
	require.NoError(t, err)
	src.raw = raw
	store.Invalidate()

	after := newResolver(t, assetkit.Config{}, store)
	js, err = after.Scripts(ctx, "")
	require.NoError(t, err)
	assert.Equal(t, "/v2.js", js[0].Path)

	// The already-resolved instance is untouched by invalidation.
	js, err = before.Scripts(ctx, "")
	require.NoError(t, err)
	assert.Equal(t, "/v1.js", js[0].Path)
}
