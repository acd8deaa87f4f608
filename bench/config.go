// SPDX-License-Identifier: MIT
package bench

import (
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/arraylist/sorter"
)

// Sentinel errors for benchmark configuration and rendering.
var (
	// ErrBadSize indicates a non-positive dataset size or value bound.
	ErrBadSize = errors.New("bench: size and max must be > 0")

	// ErrUnknownAlgorithm indicates an algorithm name not in sorter.Algorithms().
	ErrUnknownAlgorithm = errors.New("bench: unknown algorithm")

	// ErrUnknownFormat indicates an unsupported report format.
	ErrUnknownFormat = errors.New("bench: unknown report format")
)

// Defaults used by DefaultConfig.
const (
	DefaultSize = 100000
	DefaultMax  = 1000
)

// Config describes one benchmark run.
type Config struct {
	// N is the number of random values to generate (> 0).
	N int

	// Max is the exclusive upper bound of generated values (> 0).
	Max int

	// Seed selects the RNG stream; 0 means the fixed default seed.
	Seed int64

	// Algorithms restricts the run to these names; empty means all, in
	// registry order.
	Algorithms []string
}

// DefaultConfig returns N=100000 values in [0, 1000), default seed, all algorithms.
func DefaultConfig() Config {
	return Config{N: DefaultSize, Max: DefaultMax}
}

// ParseAlgorithms splits a comma-separated list, dropping blanks.
// "bubble, quick" → ["bubble" "quick"]; "" → nil.
func ParseAlgorithms(csv string) []string {
	var out []string
	for _, part := range strings.Split(csv, ",") {
		if name := strings.TrimSpace(part); name != "" {
			out = append(out, name)
		}
	}

	return out
}

// validate checks sizes and resolves algorithm names in the requested order.
func (c Config) validate() ([]sorter.Algorithm, error) {
	if c.N <= 0 || c.Max <= 0 {
		return nil, fmt.Errorf("validate: n=%d max=%d: %w", c.N, c.Max, ErrBadSize)
	}
	if len(c.Algorithms) == 0 {
		return sorter.Algorithms(), nil
	}

	algs := make([]sorter.Algorithm, 0, len(c.Algorithms))
	for _, name := range c.Algorithms {
		a, ok := sorter.Lookup(name)
		if !ok {
			return nil, fmt.Errorf("validate: %q: %w", name, ErrUnknownAlgorithm)
		}
		algs = append(algs, a)
	}

	return algs, nil
}
