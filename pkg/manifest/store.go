package manifest

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/dmitrymomot/assetkit/pkg/async"
)

// Store owns the process-level consolidated manifest cache. The underlying
// source is read at most once, shared between all concurrent callers
// (single-flight), and the result — success or failure — is cached until
// Invalidate. All resolvers serving a process should share one Store.
type Store struct {
	load *async.Memo[ConsolidatedManifest]
}

// NewStore creates a Store over src. Nothing is read until the first Load.
func NewStore(src Source) *Store {
	return &Store{
		load: async.NewMemo(func(ctx context.Context) (ConsolidatedManifest, error) {
			raw, err := src.Fetch(ctx)
			if err != nil {
				return nil, err
			}
			return Decode(raw)
		}),
	}
}

// Load returns the cached consolidated manifest, reading it from the source
// on first call. Concurrent first calls share a single fetch; ctx bounds only
// this caller's wait.
func (s *Store) Load(ctx context.Context) (ConsolidatedManifest, error) {
	return s.load.Get(ctx)
}

// Invalidate discards the cached manifest (and any in-flight read), forcing
// the next Load to re-fetch. It exists for test isolation and controlled
// redeploys; it does not touch manifests already resolved by individual
// resolvers.
func (s *Store) Invalidate() {
	s.load.Reset()
}

// Decode parses a consolidated manifest document. An empty build list is an
// error: a manifest file with no builds means the pipeline produced nothing
// servable.
func Decode(raw []byte) (ConsolidatedManifest, error) {
	var cm ConsolidatedManifest
	if err := json.Unmarshal(raw, &cm); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecodeFailed, err)
	}
	if len(cm) == 0 {
		return nil, ErrNoBuilds
	}
	return cm, nil
}
