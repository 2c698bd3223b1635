// Package source abstracts access to model output files so the parsers can
// read ensembles from a local directory, from object storage, or from memory.
//
// Files may be stored snappy-compressed with a ".sz" suffix; every Source
// falls back to the compressed variant transparently when the plain file is
// absent.
package source

import (
	"context"
	"errors"
	"io"
)

// ErrNotFound is returned when neither the named file nor its compressed
// variant exists in the source.
var ErrNotFound = errors.New("model file not found")

// Source provides read access to the files of one model ensemble.
// Names are relative, e.g. "out_0001.g23".
type Source interface {
	// Open returns a reader for the named file. The caller must close it.
	Open(ctx context.Context, name string) (io.ReadCloser, error)
}

// CompressedSuffix is appended to file names when a model file is stored
// snappy-compressed.
const CompressedSuffix = ".sz"

// readCloser pairs a decompressing reader with the underlying file handle.
type readCloser struct {
	io.Reader
	closer io.Closer
}

func (r *readCloser) Close() error {
	return r.closer.Close()
}
