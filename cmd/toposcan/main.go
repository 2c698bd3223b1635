// toposcan reduces an ensemble of simulation runs to its structurally
// unique topologies.
//
// Usage:
//
//	toposcan -config scan.yaml [-min-volume N] [-progress counts.txt]
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/charmbracelet/lipgloss"

	"github.com/freestylewhl/pynoddy/pkg/config"
	"github.com/freestylewhl/pynoddy/pkg/ensemble"
	"github.com/freestylewhl/pynoddy/pkg/logging"
	"github.com/freestylewhl/pynoddy/pkg/metrics"
	"github.com/freestylewhl/pynoddy/pkg/topology"
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39"))
	labelStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	valueStyle = lipgloss.NewStyle().Bold(true)
)

func main() {
	var (
		configPath = flag.String("config", "scan.yaml", "Scan configuration file")
		minVolume  = flag.Int64("min-volume", -1, "Override min_volume from the config (-1 keeps the config value)")
		progress   = flag.String("progress", "", "Override progress_output from the config")
	)
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("toposcan: %v", err)
	}
	if *minVolume >= 0 {
		cfg.MinVolume = *minVolume
	}
	if *progress != "" {
		cfg.ProgressOutput = *progress
	}

	logger := logging.NewDefaultLogger()
	if cfg.LogLevel != "" {
		logger.SetLevel(logging.ParseLevel(cfg.LogLevel))
	}

	if err := run(context.Background(), cfg, logger); err != nil {
		logger.Error("scan failed", logging.Error(err))
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg *config.ScanConfig, logger logging.Logger) error {
	src, err := cfg.BuildSource(ctx)
	if err != nil {
		return fmt.Errorf("build source: %w", err)
	}

	reg := metrics.DefaultRegistry()
	loader := &ensemble.Loader{
		Source:  src,
		Workers: cfg.Workers,
		Logger:  logger,
		Metrics: reg,
	}
	graphs, err := loader.LoadAll(ctx, cfg.Models)
	if err != nil {
		return err
	}

	if cfg.MinVolume > 0 {
		for _, g := range graphs {
			removed := g.RemoveNodesBelowVolume(cfg.MinVolume)
			if removed > 0 {
				logger.Debug("pruned small regions",
					logging.Model(g.Name),
					logging.Count(removed),
				)
			}
		}
	}

	var progressSink io.Writer
	if cfg.ProgressOutput != "" {
		f, err := os.Create(cfg.ProgressOutput)
		if err != nil {
			return fmt.Errorf("create progress log: %w", err)
		}
		defer f.Close()
		progressSink = f
	}

	unique, err := ensemble.Reduce(graphs, ensemble.ReduceOptions{
		Progress: progressSink,
		Logger:   logger,
		Metrics:  reg,
	})
	if err != nil {
		return err
	}

	printSummary(graphs, unique)
	return nil
}

func printSummary(graphs, unique []*topology.Graph) {
	fmt.Println(titleStyle.Render("Ensemble topology scan"))
	fmt.Printf("%s %s\n", labelStyle.Render("models scanned:   "), valueStyle.Render(fmt.Sprintf("%d", len(graphs))))
	fmt.Printf("%s %s\n", labelStyle.Render("unique topologies:"), valueStyle.Render(fmt.Sprintf("%d", len(unique))))

	contacts := make(map[topology.ContactType]int)
	for _, g := range unique {
		for _, e := range g.Edges() {
			contacts[e.Type]++
		}
	}
	fmt.Println(labelStyle.Render("contacts across unique topologies:"))
	for _, t := range []topology.ContactType{
		topology.Stratigraphic, topology.Fault, topology.Unconformity, topology.Intrusive, topology.Unknown,
	} {
		if n, ok := contacts[t]; ok {
			fmt.Printf("  %s %s\n", labelStyle.Render(t.String()+":"), valueStyle.Render(fmt.Sprintf("%d", n)))
		}
	}

	for _, g := range unique {
		fmt.Printf("  %s %s\n", labelStyle.Render("unique:"),
			fmt.Sprintf("%s (%d nodes, %d edges)", g.Name, g.NodeCount(), g.EdgeCount()))
	}
}
