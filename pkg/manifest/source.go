package manifest

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
)

// DefaultPath is where the build pipeline writes the consolidated manifest,
// relative to the application root.
const DefaultPath = "build/client/assets.json"

// Source fetches the raw consolidated manifest document.
type Source interface {
	Fetch(ctx context.Context) ([]byte, error)
}

// SourceFunc adapts a function to the Source interface.
type SourceFunc func(ctx context.Context) ([]byte, error)

func (f SourceFunc) Fetch(ctx context.Context) ([]byte, error) {
	return f(ctx)
}

// LocalSource reads the manifest from a filesystem.
type LocalSource struct {
	fsys fs.FS
	path string
}

// NewLocalSource creates a Source reading path from fsys. An empty path
// falls back to DefaultPath.
func NewLocalSource(fsys fs.FS, path string) *LocalSource {
	if path == "" {
		path = DefaultPath
	}
	return &LocalSource{fsys: fsys, path: path}
}

// NewLocalSourceDir is a convenience for reading from a directory on the
// host filesystem, typically the application root.
func NewLocalSourceDir(root, path string) *LocalSource {
	return NewLocalSource(os.DirFS(root), path)
}

func (s *LocalSource) Fetch(_ context.Context) ([]byte, error) {
	data, err := fs.ReadFile(s.fsys, s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrManifestMissing, s.path)
		}
		return nil, fmt.Errorf("%w: %v", ErrReadFailed, err)
	}
	return data, nil
}
