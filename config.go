package assetkit

import (
	"errors"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config carries the per-resolver settings. AssetHost and Development come
// from the deployment; UserAgent is filled in per request by the caller (or
// by Middleware).
type Config struct {
	// AssetHost is the base URL prefix for development-only assets,
	// e.g. "http://localhost:8080/". Required.
	AssetHost string `env:"ASSET_HOST,required,notEmpty"`

	// Development enables the vendor bundle injection in Scripts. It is an
	// explicit flag rather than an ambient environment read so behavior is
	// fixed for the life of a resolver.
	Development bool `env:"ASSET_DEV" envDefault:"false"`

	// ManifestPath overrides where the build pipeline writes the
	// consolidated manifest. Consumed by the composition root when it
	// builds the manifest source, not by the resolver itself.
	ManifestPath string `env:"ASSET_MANIFEST_PATH" envDefault:"build/client/assets.json"`

	// UserAgent is the requesting client's User-Agent header. Optional;
	// when empty the fallback build is served. Untagged: it is per-request
	// state, never loaded from the environment.
	UserAgent string
}

// Validate checks construction-time requirements.
func (c Config) Validate() error {
	if c.AssetHost == "" {
		return ErrMissingAssetHost
	}
	return nil
}

var loadDotEnv sync.Once

// LoadConfig populates a Config from environment variables, loading a .env
// file first if one exists.
func LoadConfig() (Config, error) {
	loadDotEnv.Do(func() {
		// The .env file is optional.
		_ = godotenv.Load()
	})

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, errors.Join(ErrInvalidConfig, err)
	}
	return cfg, nil
}
