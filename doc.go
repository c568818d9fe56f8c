// Package watset is a toolkit for clustering the vertices of weighted
// graphs with interchangeable algorithms.
//
// What is inside?
//
//	core/       — thread-safe Graph with float64 weights, multi-edges and loops
//	clustering/ — the algorithm contract (Algorithm, Builder, Clustering) and trivial algorithms
//	weighting/  — neighbor weighting functions used by Chinese Whispers
//	bfs/        — breadth-first traversal backing components and MaxMax
//	cw/         — Chinese Whispers label propagation
//	mcl/        — Markov Clustering, in-process and via the external mcl binary
//	maxmax/     — MaxMax soft clustering over the affinity graph
//	embedding/  — spectral embedding of a graph (Laplacian eigenvectors)
//	kmeans/     — k-means++ point clusterer for embeddings
//	spectral/   — spectral clustering: embedding followed by a point clusterer
//	provider/   — name-and-parameters factory over every algorithm, YAML config
//	abc/        — tab-separated edge list and cluster list codecs
//	builder/    — deterministic synthetic graphs with planted clusters
//	cmd/watset  — command-line front end
//
// Quick start:
//
//	g := core.NewGraph(core.WithMultiEdges())
//	_, _ = g.AddEdge("a", "b", 1)
//	_, _ = g.AddEdge("d", "e", 1)
//	p, _ := provider.New("cw", provider.Params{"mode": "top"})
//	c, _ := p.Cluster(g)
//	fmt.Println(c.Clusters())
//
// Every algorithm returns clusters that partition the vertex set, except
// MaxMax, which may place a vertex in several clusters.
package watset
