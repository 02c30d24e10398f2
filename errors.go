package assetkit

import "errors"

var (
	// ErrMissingAssetHost is returned when a Config has no asset host.
	ErrMissingAssetHost = errors.New("asset host is required")

	// ErrInvalidConfig is returned when environment variables cannot be
	// parsed into a Config.
	ErrInvalidConfig = errors.New("failed to parse asset configuration")

	// ErrNilStore is returned when a Resolver is constructed without a
	// manifest store.
	ErrNilStore = errors.New("manifest store is required")
)
