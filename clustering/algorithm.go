package clustering

import "sync"

// Algorithm is implemented by every clustering algorithm.
//
// Clustering computes the result on first call and returns the very same
// *Clustering (or error) on every later call.
type Algorithm interface {
	Clustering() (*Clustering, error)
}

// Builder turns a graph into a ready-to-run Algorithm. Build fails with an
// error wrapping ErrConfiguration when options or the graph are unusable.
type Builder interface {
	Build(g Graph) (Algorithm, error)
}

// BuilderFunc adapts an ordinary function to the Builder interface.
type BuilderFunc func(g Graph) (Algorithm, error)

// Build calls f(g).
func (f BuilderFunc) Build(g Graph) (Algorithm, error) { return f(g) }

// Built converts a constructor result into the (Algorithm, error) pair a
// Builder returns, so a failed construction yields a nil interface rather
// than an interface holding a nil pointer.
func Built[A Algorithm](alg A, err error) (Algorithm, error) {
	if err != nil {
		return nil, err
	}

	return alg, nil
}

// Memo is a compute-once cell for a Clustering.
//
// The first Do runs compute; concurrent callers block until it finishes and
// all callers, now and later, observe the same result and error.
// The zero value is ready to use. A Memo must not be copied after first use.
type Memo struct {
	once   sync.Once
	result *Clustering
	err    error
}

// Do returns the cached result, running compute if nothing is cached yet.
func (m *Memo) Do(compute func() (*Clustering, error)) (*Clustering, error) {
	m.once.Do(func() {
		m.result, m.err = compute()
	})

	return m.result, m.err
}
