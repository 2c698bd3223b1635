package source

import (
	"context"
	"io"
	"os"
	"path/filepath"

	"github.com/golang/snappy"
)

// LocalSource reads model files from a directory on disk.
type LocalSource struct {
	dir string
}

// NewLocalSource creates a source rooted at dir.
func NewLocalSource(dir string) *LocalSource {
	return &LocalSource{dir: dir}
}

// Open opens the named file, falling back to the snappy-compressed variant.
func (s *LocalSource) Open(_ context.Context, name string) (io.ReadCloser, error) {
	f, err := os.Open(filepath.Join(s.dir, name))
	if err == nil {
		return f, nil
	}
	if !os.IsNotExist(err) {
		return nil, err
	}

	cf, cerr := os.Open(filepath.Join(s.dir, name+CompressedSuffix))
	if cerr != nil {
		if os.IsNotExist(cerr) {
			return nil, ErrNotFound
		}
		return nil, cerr
	}
	return &readCloser{Reader: snappy.NewReader(cf), closer: cf}, nil
}
