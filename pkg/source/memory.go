package source

import (
	"bytes"
	"context"
	"io"

	"github.com/golang/snappy"
)

// MapSource serves model files from an in-memory map. It is used by tests and
// by callers that already hold file contents.
type MapSource map[string][]byte

// Open returns a reader over the named entry, decompressing the ".sz"
// variant when only that is present.
func (m MapSource) Open(_ context.Context, name string) (io.ReadCloser, error) {
	if data, ok := m[name]; ok {
		return io.NopCloser(bytes.NewReader(data)), nil
	}
	if data, ok := m[name+CompressedSuffix]; ok {
		return io.NopCloser(snappy.NewReader(bytes.NewReader(data))), nil
	}
	return nil, ErrNotFound
}
