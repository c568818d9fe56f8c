// Package embedding maps graph vertices into a low-dimensional real vector
// space and defines the boundary to generic point clusterers.
//
// Pipeline
//
//	Index      — stable bijection vertex ↔ 0..n-1 following g.Vertices().
//	Adjacency  — symmetric weighted adjacency; parallel edges are summed.
//	Laplacian  — symmetric normalized I - D^-1/2·A·D^-1/2 (default) or D - A.
//	Spectral   — eigenvectors of the k smallest non-trivial eigenvalues;
//	             vertex i receives row i across those eigenvectors.
//
// Eigenvectors are computed with gonum's mat.EigenSym. Each selected
// eigenvector is sign-normalized so that its largest-magnitude component is
// positive, which keeps embeddings identical across runs.
//
// Errors
//
//	ErrBadDimension      — k < 1 (configuration).
//	ErrTooManyDimensions — k > n-1 (numerical).
//	ErrEigenFailed       — the eigensolver did not converge (numerical).
package embedding
