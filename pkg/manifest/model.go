package manifest

import (
	"fmt"
	"sort"
	"strings"
)

// Asset is a single servable bundle file.
type Asset struct {
	// Path is the URL or path the asset is served from.
	Path string `json:"path"`
	// Integrity is an optional subresource-integrity hash.
	Integrity string `json:"integrity,omitempty"`
}

// Entrypoint is one named build output unit. Slice order is load order.
type Entrypoint struct {
	JS  []Asset `json:"js"`
	CSS []Asset `json:"css"`
}

// Manifest maps entrypoint names to their asset lists for one build variant.
type Manifest struct {
	Entrypoints map[string]Entrypoint `json:"entrypoints"`
}

// Entrypoint returns the named entrypoint. A miss is a lookup error whose
// message either notes that the manifest has no entrypoints at all or lists
// the available names. Names are sorted so the message is stable.
func (m Manifest) Entrypoint(name string) (Entrypoint, error) {
	if ep, ok := m.Entrypoints[name]; ok {
		return ep, nil
	}

	if len(m.Entrypoints) == 0 {
		return Entrypoint{}, fmt.Errorf("%w: %q (no entrypoints exist)", ErrEntrypointNotFound, name)
	}

	names := make([]string, 0, len(m.Entrypoints))
	for n := range m.Entrypoints {
		names = append(names, n)
	}
	sort.Strings(names)
	return Entrypoint{}, fmt.Errorf("%w: %q (available entrypoints: %s)",
		ErrEntrypointNotFound, name, strings.Join(names, ", "))
}

// Entry is one build variant of a consolidated manifest.
type Entry struct {
	// Name labels the variant, e.g. "modern" or "legacy".
	Name string `json:"name"`
	// Browsers lists the variant's browser target descriptors. An absent
	// list means the variant matches any user agent.
	Browsers []string `json:"browsers,omitempty"`
	// Manifest holds the variant's entrypoints.
	Manifest Manifest `json:"manifest"`
}

// ConsolidatedManifest is the ordered output of a multi-target build, most
// restrictive variant first. By the build pipeline's convention the last
// entry is the universal fallback; this package relies on the ordering but
// does not enforce it.
type ConsolidatedManifest []Entry
