// SPDX-License-Identifier: MIT
// Package main times every sorter on a random int dataset and prints the
// elapsed wall time per algorithm.
//
//	arraylist-bench -n 100000 -max 1000 -algo bubble,quick -format text
package main

import (
	"flag"
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/arraylist/bench"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run parses args, executes the benchmark and renders the report to stdout.
// Logs and errors go to stderr. Returns the process exit code.
func run(args []string, stdout, stderr io.Writer) int {
	def := bench.DefaultConfig()
	fs := flag.NewFlagSet("arraylist-bench", flag.ContinueOnError)
	fs.SetOutput(stderr)
	n := fs.Int("n", def.N, "Number of random values to sort")
	maxValue := fs.Int("max", def.Max, "Exclusive upper bound of generated values")
	seed := fs.Int64("seed", 0, "RNG seed (0 = fixed default)")
	algo := fs.String("algo", "", "Comma-separated algorithms to run (default: all)")
	format := fs.String("format", bench.FormatText, "Report format: "+strings.Join(bench.Formats(), ", "))
	verbose := fs.Bool("v", false, "Log progress to stderr")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	log := logrus.New()
	log.SetOutput(stderr)
	log.SetLevel(logrus.WarnLevel)
	if *verbose {
		log.SetLevel(logrus.DebugLevel)
	}

	cfg := bench.Config{N: *n, Max: *maxValue, Seed: *seed, Algorithms: bench.ParseAlgorithms(*algo)}
	rep, err := bench.Run(cfg, log)
	if err != nil {
		log.WithError(err).Error("benchmark failed")
		return 1
	}
	if err = bench.Render(stdout, rep, *format); err != nil {
		log.WithError(err).Error("render failed")
		return 1
	}

	return 0
}
