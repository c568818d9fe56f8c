// Package abc reads and writes the tab-separated text formats used at the
// module's edges.
//
// Graph (ABC) format, one edge per line:
//
//	u<TAB>v[<TAB>weight]
//
// The weight defaults to 1. Blank lines and lines starting with '#' are
// skipped. Repeated pairs become parallel edges whose weights add up.
//
// Cluster list format, one cluster per line with members separated by
// tabs, as printed by the mcl executable.
//
// Clustering report format, one cluster per line:
//
//	index<TAB>size<TAB>member,member,...
package abc

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/watset/clustering"
	"github.com/katalvlaran/watset/core"
)

// ErrSyntax is returned for a malformed input line.
var ErrSyntax = errors.New("abc: syntax error")

// maxLineBytes bounds a single input line.
const maxLineBytes = 16 * 1024 * 1024

// Option configures ReadGraph.
type Option func(*options)

type options struct {
	directed bool
}

// WithDirected reads every line as an arc u→v.
func WithDirected(directed bool) Option {
	return func(o *options) { o.directed = directed }
}

// ReadGraph parses an ABC edge list into a graph that allows parallel edges
// and self-loops.
//
// Errors: ErrSyntax with the line number, or the graph's own error for an
// invalid weight.
func ReadGraph(r io.Reader, opts ...Option) (*core.Graph, error) {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	g := core.NewGraph(core.WithDirected(o.directed), core.WithMultiEdges(), core.WithLoops())

	sc := newScanner(r)
	for line := 1; sc.Scan(); line++ {
		text := strings.TrimRight(sc.Text(), "\r")
		if strings.TrimSpace(text) == "" || strings.HasPrefix(text, "#") {
			continue
		}

		fields := strings.Split(text, "\t")
		if len(fields) < 2 || len(fields) > 3 {
			return nil, fmt.Errorf("%w: line %d: want 2 or 3 tab-separated fields, got %d", ErrSyntax, line, len(fields))
		}
		weight := 1.0
		if len(fields) == 3 {
			w, err := strconv.ParseFloat(strings.TrimSpace(fields[2]), 64)
			if err != nil {
				return nil, fmt.Errorf("%w: line %d: weight %q", ErrSyntax, line, fields[2])
			}
			weight = w
		}
		if _, err := g.AddEdge(fields[0], fields[1], weight); err != nil {
			return nil, fmt.Errorf("abc: line %d: %w", line, err)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("abc: read: %w", err)
	}

	return g, nil
}

// WriteGraph writes g in ABC format: one line per adjacent pair (once per
// unordered pair when g is undirected) in vertex order, with the total
// weight of the pair.
func WriteGraph(w io.Writer, g clustering.Graph) error {
	bw := bufio.NewWriter(w)
	index := clustering.VertexIndex(g)
	for i, u := range g.Vertices() {
		nbrs, err := g.NeighborIDs(u)
		if err != nil {
			return fmt.Errorf("abc: neighbors of %q: %w", u, err)
		}
		for _, v := range nbrs {
			if !g.Directed() && index[v] < i {
				continue
			}
			weight, err := g.Weight(u, v)
			if err != nil {
				return fmt.Errorf("abc: weight %q–%q: %w", u, v, err)
			}
			if _, err := fmt.Fprintf(bw, "%s\t%s\t%s\n", u, v, strconv.FormatFloat(weight, 'g', -1, 64)); err != nil {
				return err
			}
		}
	}

	return bw.Flush()
}

// ReadClusters parses a cluster list, one tab-separated cluster per line.
// Blank lines are skipped.
func ReadClusters(r io.Reader) ([][]string, error) {
	var clusters [][]string
	sc := newScanner(r)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		clusters = append(clusters, strings.Split(line, "\t"))
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("abc: read clusters: %w", err)
	}

	return clusters, nil
}

// WriteClustering writes one report line per cluster, numbered from 1.
func WriteClustering(w io.Writer, c *clustering.Clustering) error {
	bw := bufio.NewWriter(w)
	for i, members := range c.Clusters() {
		if _, err := fmt.Fprintf(bw, "%d\t%d\t%s\n", i+1, len(members), strings.Join(members, ",")); err != nil {
			return err
		}
	}

	return bw.Flush()
}

func newScanner(r io.Reader) *bufio.Scanner {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineBytes)

	return sc
}
