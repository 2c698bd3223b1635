package ensemble

import (
	"fmt"
	"io"
	"time"

	"github.com/freestylewhl/pynoddy/pkg/logging"
	"github.com/freestylewhl/pynoddy/pkg/metrics"
	"github.com/freestylewhl/pynoddy/pkg/topology"
)

// ReduceOptions configures an ensemble reduction.
type ReduceOptions struct {
	// Progress, when non-nil, receives the running unique count after each
	// input graph, one decimal integer per line. The resulting sequence is
	// monotonically non-decreasing with one value per input.
	Progress io.Writer

	// Logger for per-graph decisions. Defaults to a nop logger.
	Logger logging.Logger

	// Metrics registry for scan instrumentation. Defaults to the global one.
	Metrics *metrics.Registry
}

// Reduce folds the ensemble, in input order, into the list of structurally
// unique graphs: each input is appended iff no previously accepted graph
// matches it. The accumulation is inherently sequential; uniqueness of input
// i depends on all acceptances before i.
func Reduce(graphs []*topology.Graph, opts ReduceOptions) ([]*topology.Graph, error) {
	log := opts.Logger
	if log == nil {
		log = logging.NewNopLogger()
	}
	reg := opts.Metrics
	if reg == nil {
		reg = metrics.DefaultRegistry()
	}

	start := time.Now()
	unique := make([]*topology.Graph, 0)
	uniqueSets := make([]EdgeSet, 0)

	for _, g := range graphs {
		set := EdgeSetOf(g)

		matched := false
		for _, known := range uniqueSets {
			reg.ComparisonsTotal.Inc()
			if JaccardSets(set, known) == 1.0 {
				matched = true
				break
			}
		}
		if !matched {
			unique = append(unique, g)
			uniqueSets = append(uniqueSets, set)
			log.Debug("new unique topology",
				logging.Model(g.Name),
				logging.GraphID(g.ID.String()),
				logging.Int("edges", g.EdgeCount()),
			)
		}

		if opts.Progress != nil {
			if _, err := fmt.Fprintf(opts.Progress, "%d\n", len(unique)); err != nil {
				return nil, fmt.Errorf("write progress: %w", err)
			}
		}
	}

	reg.RecordScan(time.Since(start), len(unique))
	log.Info("ensemble reduced",
		logging.Int("models", len(graphs)),
		logging.Int("unique", len(unique)),
	)
	return unique, nil
}
