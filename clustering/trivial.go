package clustering

// Empty always produces zero clusters.
type Empty struct {
	memo Memo
}

// NewEmpty builds an Empty clustering for g.
func NewEmpty(g Graph) (*Empty, error) {
	if err := RequireGraph(g); err != nil {
		return nil, err
	}

	return &Empty{}, nil
}

// Clustering returns a Clustering with no clusters.
func (a *Empty) Clustering() (*Clustering, error) {
	return a.memo.Do(func() (*Clustering, error) {
		return NewClustering(nil), nil
	})
}

// Together puts every vertex into a single cluster.
type Together struct {
	graph Graph
	memo  Memo
}

// NewTogether builds a Together clustering for g.
func NewTogether(g Graph) (*Together, error) {
	if err := RequireGraph(g); err != nil {
		return nil, err
	}

	return &Together{graph: g}, nil
}

// Clustering returns exactly one cluster containing all vertices, which is
// empty when the graph has no vertices.
func (a *Together) Clustering() (*Clustering, error) {
	return a.memo.Do(func() (*Clustering, error) {
		return NewClustering([][]string{a.graph.Vertices()}), nil
	})
}

// Singleton puts every vertex into its own cluster.
type Singleton struct {
	graph Graph
	memo  Memo
}

// NewSingleton builds a Singleton clustering for g.
func NewSingleton(g Graph) (*Singleton, error) {
	if err := RequireGraph(g); err != nil {
		return nil, err
	}

	return &Singleton{graph: g}, nil
}

// Clustering returns one single-vertex cluster per vertex, in vertex order.
func (a *Singleton) Clustering() (*Clustering, error) {
	return a.memo.Do(func() (*Clustering, error) {
		vertices := a.graph.Vertices()
		clusters := make([][]string, len(vertices))
		for i, v := range vertices {
			clusters[i] = []string{v}
		}

		return NewClustering(clusters), nil
	})
}

// Builders for the trivial algorithms.
var (
	EmptyBuilder     Builder = BuilderFunc(func(g Graph) (Algorithm, error) { return Built(NewEmpty(g)) })
	TogetherBuilder  Builder = BuilderFunc(func(g Graph) (Algorithm, error) { return Built(NewTogether(g)) })
	SingletonBuilder Builder = BuilderFunc(func(g Graph) (Algorithm, error) { return Built(NewSingleton(g)) })
)
