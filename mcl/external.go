package mcl

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"runtime"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/katalvlaran/watset/abc"
	"github.com/katalvlaran/watset/clustering"
)

// ErrProcess is returned when the mcl executable fails or cannot be started.
var ErrProcess = errors.New("mcl: external process failed")

// WithBinary sets the path of the mcl executable (required by External).
func WithBinary(path string) Option {
	return func(o *options) { o.binary = path }
}

// WithThreads sets the worker thread count passed as -te (default runtime.NumCPU()).
func WithThreads(n int) Option {
	return func(o *options) { o.threads = n }
}

// WithContext bounds the lifetime of the external process (default context.Background()).
func WithContext(ctx context.Context) Option {
	return func(o *options) { o.ctx = ctx }
}

// WithLogger sets the logger for process diagnostics (default zap.L()).
func WithLogger(l *zap.Logger) Option {
	return func(o *options) { o.logger = l }
}

// External runs the mcl executable on one graph.
type External struct {
	graph     clustering.Graph
	binary    string
	inflation float64
	threads   int
	ctx       context.Context
	logger    *zap.Logger
	memo      clustering.Memo
}

// NewExternal validates opts against g. The executable is not started until
// Clustering is called.
//
// Errors:
//   - clustering.ErrGraphNil.
//   - clustering.ErrMissingOption when no binary is given.
//   - clustering.ErrBadOption when the binary does not exist, r is not
//     positive or threads < 1.
func NewExternal(g clustering.Graph, opts ...Option) (*External, error) {
	o := options{inflation: DefaultInflation, threads: runtime.NumCPU()}
	for _, opt := range opts {
		opt(&o)
	}
	if o.ctx == nil {
		o.ctx = context.Background()
	}
	if o.logger == nil {
		o.logger = zap.L()
	}

	if err := clustering.RequireGraph(g); err != nil {
		return nil, err
	}
	switch {
	case o.binary == "":
		return nil, fmt.Errorf("%w: mcl-bin requires a binary path", clustering.ErrMissingOption)
	case !validInflation(o.inflation):
		return nil, fmt.Errorf("%w: mcl-bin r=%v", clustering.ErrBadOption, o.inflation)
	case o.threads < 1:
		return nil, fmt.Errorf("%w: mcl-bin threads=%d", clustering.ErrBadOption, o.threads)
	}
	if info, err := os.Stat(o.binary); err != nil || info.IsDir() {
		return nil, fmt.Errorf("%w: mcl-bin binary %q is not a file", clustering.ErrBadOption, o.binary)
	}

	return &External{
		graph:     g,
		binary:    o.binary,
		inflation: o.inflation,
		threads:   o.threads,
		ctx:       o.ctx,
		logger:    o.logger,
	}, nil
}

// ExternalBuilder returns a clustering.Builder that applies opts to every graph.
func ExternalBuilder(opts ...Option) clustering.Builder {
	return clustering.BuilderFunc(func(g clustering.Graph) (clustering.Algorithm, error) {
		return clustering.Built(NewExternal(g, opts...))
	})
}

// Args returns the command-line arguments passed to the executable.
func (x *External) Args() []string {
	return []string{
		"-", "--abc",
		"-I", strconv.FormatFloat(x.inflation, 'g', -1, 64),
		"-te", strconv.Itoa(x.threads),
		"-o", "-",
	}
}

// Clustering runs the executable once and caches the result. Process
// failures wrap ErrProcess and carry the process's stderr.
func (x *External) Clustering() (*clustering.Clustering, error) {
	return x.memo.Do(x.compute)
}

func (x *External) compute() (*clustering.Clustering, error) {
	vertices := x.graph.Vertices()
	if len(vertices) == 0 {
		return clustering.NewClustering(nil), nil
	}

	var stdin bytes.Buffer
	if err := abc.WriteGraph(&stdin, x.graph); err != nil {
		return nil, fmt.Errorf("mcl: %w", err)
	}

	args := x.Args()
	x.logger.Debug("running mcl",
		zap.String("binary", x.binary),
		zap.Strings("args", args),
		zap.Int("vertices", len(vertices)))

	cmd := exec.CommandContext(x.ctx, x.binary, args...)
	cmd.Stdin = &stdin
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return nil, fmt.Errorf("%w: %w: %s", ErrProcess, err, strings.TrimSpace(stderr.String()))
	}

	clusters, err := abc.ReadClusters(&stdout)
	if err != nil {
		return nil, fmt.Errorf("mcl: %w", err)
	}
	c := clustering.NewClustering(withSingletons(clusters, vertices))
	if err := clustering.CheckPartition(c, vertices); err != nil {
		return nil, fmt.Errorf("mcl: process output: %w", err)
	}

	return c, nil
}

// withSingletons appends a singleton for every vertex the clusters miss.
func withSingletons(clusters [][]string, vertices []string) [][]string {
	seen := make(map[string]struct{}, len(vertices))
	for _, members := range clusters {
		for _, v := range members {
			seen[v] = struct{}{}
		}
	}
	for _, v := range vertices {
		if _, ok := seen[v]; !ok {
			clusters = append(clusters, []string{v})
		}
	}

	return clusters
}
