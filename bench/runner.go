// SPDX-License-Identifier: MIT
package bench

import (
	"fmt"
	"io"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/exp/slices"

	"github.com/katalvlaran/arraylist/sorter"
)

// Result is the timing of one algorithm over one dataset.
type Result struct {
	Algorithm string        `json:"algorithm" yaml:"algorithm"`
	N         int           `json:"n" yaml:"n"`
	Elapsed   time.Duration `json:"elapsed_ns" yaml:"elapsed"`
	Sorted    bool          `json:"sorted" yaml:"sorted"`
}

// Report collects the results of a run in execution order.
// Seed is the resolved seed, so Generate(N, Max, Seed) rebuilds the dataset.
type Report struct {
	N       int      `json:"n" yaml:"n"`
	Max     int      `json:"max" yaml:"max"`
	Seed    int64    `json:"seed" yaml:"seed"`
	Results []Result `json:"results" yaml:"results"`
}

// Run generates the dataset described by cfg and times every selected
// algorithm on its own copy of it.
//
// Implementation:
//   - Stage 1: Validate sizes and resolve algorithm names.
//   - Stage 2: Generate the shared dataset once.
//   - Stage 3: For each algorithm: clone, time Sort, verify the copy is sorted.
//
// Errors:
//   - ErrBadSize, ErrUnknownAlgorithm (wrapped).
//
// A nil log discards progress messages.
func Run(cfg Config, log logrus.FieldLogger) (Report, error) {
	algs, err := cfg.validate()
	if err != nil {
		return Report{}, fmt.Errorf("Run: %w", err)
	}
	if log == nil {
		discard := logrus.New()
		discard.SetOutput(io.Discard)
		log = discard
	}

	data, err := Generate(cfg.N, cfg.Max, cfg.Seed)
	if err != nil {
		return Report{}, fmt.Errorf("Run: %w", err)
	}
	seed := ResolveSeed(cfg.Seed)
	log.WithFields(logrus.Fields{"n": cfg.N, "max": cfg.Max, "seed": seed}).Debug("dataset generated")

	rep := Report{N: cfg.N, Max: cfg.Max, Seed: seed, Results: make([]Result, 0, len(algs))}
	for _, a := range algs {
		rep.Results = append(rep.Results, timeOne(a, data, log))
	}

	return rep, nil
}

// timeOne sorts an independent copy of data with a and measures wall time.
func timeOne(a sorter.Algorithm, data []int, log logrus.FieldLogger) Result {
	work := slices.Clone(data)
	entry := log.WithFields(logrus.Fields{"algorithm": a.Name, "n": len(work)})
	entry.Debug("sort started")

	start := time.Now()
	a.Sort(work)
	elapsed := time.Since(start)

	res := Result{Algorithm: a.Name, N: len(work), Elapsed: elapsed, Sorted: sorter.IsSorted(work)}
	if !res.Sorted {
		entry.Warn("output is not sorted")
	}
	entry.WithField("elapsed", elapsed).Info("sort finished")

	return res
}
