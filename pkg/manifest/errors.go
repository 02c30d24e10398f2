package manifest

import "errors"

var (
	// ErrNoBuilds is returned when the consolidated manifest decodes to an
	// empty list. The message is part of the contract with build tooling and
	// its consumers, hence the sentence form.
	ErrNoBuilds = errors.New("No builds were found.")

	// ErrEntrypointNotFound is returned when a requested entrypoint name is
	// absent from the resolved manifest.
	ErrEntrypointNotFound = errors.New("entrypoint not found")

	// Source errors.
	ErrReadFailed      = errors.New("failed to read asset manifest")
	ErrDecodeFailed    = errors.New("failed to decode asset manifest")
	ErrManifestMissing = errors.New("asset manifest not found")

	// S3 source errors.
	ErrInvalidS3Config = errors.New("invalid S3 source configuration")
	ErrAccessDenied    = errors.New("access denied to asset manifest")
)
