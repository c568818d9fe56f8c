package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/watset/abc"
	"github.com/katalvlaran/watset/provider"
)

// stdinPath selects standard input for --input.
const stdinPath = "-"

type clusterFlags struct {
	algorithm string
	params    map[string]string
	config    string
	input     string
	directed  bool
}

func newClusterCmd() *cobra.Command {
	var f clusterFlags

	cmd := &cobra.Command{
		Use:   "cluster",
		Short: "Cluster a graph read as a tab-separated edge list",
		Long: `Read a graph with one "source<TAB>target[<TAB>weight]" line per edge,
cluster it and print one "index<TAB>size<TAB>members" line per cluster.

The algorithm comes from --config, --algorithm or both; --algorithm and
--param override the values of the configuration file.

Examples:
  watset cluster -a components -i graph.tsv
  watset cluster -a cw -p mode=log < graph.tsv
  watset cluster -a spectral -p k=4 -p seed=7 -i graph.tsv
  watset cluster -c watset.yaml -i graph.tsv`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runCluster(cmd, f)
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&f.algorithm, "algorithm", "a", "", "algorithm name (see 'watset algorithms')")
	flags.StringToStringVarP(&f.params, "param", "p", nil, "algorithm parameter as key=value (repeatable)")
	flags.StringVarP(&f.config, "config", "c", "", "YAML configuration file")
	flags.StringVarP(&f.input, "input", "i", stdinPath, "edge list file, - for standard input")
	flags.BoolVar(&f.directed, "directed", false, "read edges as arcs")

	return cmd
}

func runCluster(cmd *cobra.Command, f clusterFlags) error {
	cfg := &provider.Config{}
	if f.config != "" {
		loaded, err := provider.LoadConfig(f.config)
		if err != nil {
			return err
		}
		cfg = loaded
	}
	if f.algorithm != "" {
		cfg.Algorithm = f.algorithm
	}
	if len(f.params) > 0 && cfg.Params == nil {
		cfg.Params = make(map[string]string, len(f.params))
	}
	for k, v := range f.params {
		cfg.Params[k] = v
	}

	logger := zap.L()
	p, err := cfg.Provider(provider.WithLogger(logger))
	if err != nil {
		return err
	}

	in, closeIn, err := openInput(cmd, f.input)
	if err != nil {
		return err
	}
	defer closeIn()

	g, err := abc.ReadGraph(in, abc.WithDirected(f.directed))
	if err != nil {
		return err
	}
	logger.Debug("graph loaded",
		zap.String("input", f.input),
		zap.Int("vertices", g.VertexCount()),
		zap.Int("edges", g.EdgeCount()))

	c, err := p.Cluster(g)
	if err != nil {
		return err
	}
	logger.Debug("clustering done",
		zap.String("algorithm", p.Name()),
		zap.Int("clusters", c.Len()))

	return abc.WriteClustering(cmd.OutOrStdout(), c)
}

func openInput(cmd *cobra.Command, path string) (io.Reader, func(), error) {
	if path == stdinPath {
		return cmd.InOrStdin(), func() {}, nil
	}
	file, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("open input: %w", err)
	}

	return file, func() { _ = file.Close() }, nil
}
