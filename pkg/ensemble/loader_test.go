package ensemble

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/freestylewhl/pynoddy/pkg/metrics"
	"github.com/freestylewhl/pynoddy/pkg/source"
)

// modelFiles returns a minimal single-contact model under the given
// basename. The contact joins lithologies 1 and 2.
func modelFiles(basename string) map[string][]byte {
	return map[string][]byte{
		basename + ".g20": []byte("VERSION 7.11 0\nx\ny\n1 0 Granite 255 0 0\n2 0 Shale 0 0 255\n"),
		basename + "_v.vs": []byte(
			"PVRTX 1 0.0 0.0 0.0 1 001a 100\n" +
				"PVRTX 2 1.0 1.0 1.0 2 001b 200\n"),
		basename + ".g23": []byte("1_001a\t2_001b\t5\n"),
	}
}

func TestLoader_LoadAll(t *testing.T) {
	src := source.MapSource{}
	names := []string{"out_0001", "out_0002", "out_0003"}
	for _, n := range names {
		for k, v := range modelFiles(n) {
			src[k] = v
		}
	}

	loader := &Loader{Source: src, Workers: 2, Metrics: metrics.NewRegistry()}
	graphs, err := loader.LoadAll(context.Background(), names)
	require.NoError(t, err)
	require.Len(t, graphs, 3)

	// Order is preserved regardless of which worker finished first.
	for i, n := range names {
		assert.Equal(t, n, graphs[i].Name)
		assert.Equal(t, 2, graphs[i].NodeCount())
		assert.Equal(t, 1, graphs[i].EdgeCount())
	}
}

// A model with missing files aborts the whole load.
func TestLoader_LoadAll_MissingModel(t *testing.T) {
	src := source.MapSource{}
	for k, v := range modelFiles("out_0001") {
		src[k] = v
	}

	loader := &Loader{Source: src, Metrics: metrics.NewRegistry()}
	_, err := loader.LoadAll(context.Background(), []string{"out_0001", "out_0002"})
	require.Error(t, err)
	assert.ErrorIs(t, err, source.ErrNotFound)
}
