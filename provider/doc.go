// Package provider resolves a symbolic algorithm name and a string-keyed
// parameter map into a configured clustering algorithm.
//
// Names are looked up case-insensitively in a Registry of Factories.
// DefaultRegistry knows:
//
//	empty, together, singleton, components   — no parameters
//	cw         mode (label|top|log|linear|lin, legacy nolog), iterations, seed
//	mcl        e (int), r (real), iterations
//	mcl-bin    bin (path, required), r (real), threads (default NumCPU)
//	maxmax     no parameters
//	spectral   k (int, required), seed (int), laplacian (symmetric|unnormalized)
//
// Every parameter is parsed and validated by New, so a Provider that was
// built successfully only fails later on graph-specific conditions. Unknown
// parameter keys are ignored.
//
// A Provider holds no graph state: Apply may be called for many graphs, and
// concurrently, each call yielding an independent algorithm.
//
// The same configuration can be stored as YAML:
//
//	algorithm: cw
//	params:
//	  mode: top
package provider
