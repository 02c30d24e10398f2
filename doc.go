// Package assetkit resolves which build of a web application's static asset
// manifest should be served to a given user agent.
//
// A multi-target bundler pipeline emits a consolidated manifest: an ordered
// list of build variants, each scoped to a set of browser targets, from the
// most modern down to a universal fallback. assetkit is the thin read side of
// that contract: it loads the manifest once per process (single-flight,
// cached in a manifest.Store), picks the first variant whose browser targets
// match the request's user agent, and hands back the entrypoint's script and
// stylesheet descriptors for the caller to embed in rendered markup. It does
// not bundle, serve, or watch files.
//
// Typical wiring:
//
//	cfg, err := assetkit.LoadConfig()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	store := manifest.NewStore(manifest.NewLocalSourceDir(".", cfg.ManifestPath))
//
//	mux := http.NewServeMux()
//	handler := assetkit.Middleware(cfg, store)(mux)
//
// Inside a handler:
//
//	resolver := assetkit.MustFromContext(r.Context())
//	js, err := resolver.Scripts(r.Context(), assetkit.DefaultEntrypoint)
//	css, err := resolver.Styles(r.Context(), assetkit.DefaultEntrypoint)
//
// The asset lists can be rendered into views with ScriptTags and StyleTags,
// which return templ components.
//
// In development (Config.Development) the resolver prepends the vendor DLL
// bundle — served by the dev pipeline but absent from the manifest — to every
// Scripts result, prefixed with Config.AssetHost.
package assetkit
