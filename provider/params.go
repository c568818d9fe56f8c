package provider

import (
	"fmt"
	"math"
	"os"
	"runtime"
	"strconv"
	"strings"
)

// Params is the string-keyed parameter set of one algorithm. Accessors
// parse a value on demand and report failures as ErrBadParameter or
// ErrMissingParameter, naming the key.
type Params map[string]string

// Has reports whether key is set.
func (p Params) Has(key string) bool {
	_, ok := p[key]
	return ok
}

// String returns the trimmed value of key, or def when key is absent.
func (p Params) String(key, def string) string {
	v, ok := p[key]
	if !ok {
		return def
	}

	return strings.TrimSpace(v)
}

// Int parses key as a base-10 integer, returning def when key is absent.
func (p Params) Int(key string, def int) (int, error) {
	v, ok := p[key]
	if !ok {
		return def, nil
	}
	n, err := strconv.Atoi(strings.TrimSpace(v))
	if err != nil {
		return 0, fmt.Errorf("%w: %s=%q is not an integer", ErrBadParameter, key, v)
	}

	return n, nil
}

// RequiredInt parses key as an integer and fails when key is absent.
func (p Params) RequiredInt(key string) (int, error) {
	if !p.Has(key) {
		return 0, fmt.Errorf("%w: %s", ErrMissingParameter, key)
	}

	return p.Int(key, 0)
}

// Float parses key as a finite real number, returning def when key is absent.
func (p Params) Float(key string, def float64) (float64, error) {
	v, ok := p[key]
	if !ok {
		return def, nil
	}
	f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, fmt.Errorf("%w: %s=%q is not a number", ErrBadParameter, key, v)
	}

	return f, nil
}

// Path returns key as a path to an existing regular file. The key is required.
func (p Params) Path(key string) (string, error) {
	v := p.String(key, "")
	if v == "" {
		return "", fmt.Errorf("%w: %s", ErrMissingParameter, key)
	}
	info, err := os.Stat(v)
	if err != nil {
		return "", fmt.Errorf("%w: %s=%q: %v", ErrBadParameter, key, v, err)
	}
	if info.IsDir() {
		return "", fmt.Errorf("%w: %s=%q is a directory", ErrBadParameter, key, v)
	}

	return v, nil
}

// Threads parses key as a positive thread count, defaulting to the number
// of available CPUs.
func (p Params) Threads(key string) (int, error) {
	n, err := p.Int(key, runtime.NumCPU())
	if err != nil {
		return 0, err
	}
	if n < 1 {
		return 0, fmt.Errorf("%w: %s=%d must be positive", ErrBadParameter, key, n)
	}

	return n, nil
}

// clone returns an independent copy; nil becomes an empty set.
func (p Params) clone() Params {
	out := make(Params, len(p))
	for k, v := range p {
		out[k] = v
	}

	return out
}
