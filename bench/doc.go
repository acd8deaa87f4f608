// SPDX-License-Identifier: MIT
// Package bench times the sorter algorithms on a shared random dataset.
//
// Flow:
//
//	Config ──Generate──▶ []int in [0, Max) ──slices.Clone per algorithm──▶
//	sorter.Algorithm.Sort ──time.Since──▶ Result ──Render──▶ text | json | yaml | tree
//
// Every algorithm sorts its own independent copy, so no run can observe the
// work of another. The dataset is deterministic for a given Seed (Seed == 0
// selects a fixed default), which keeps runs comparable across machines.
//
// Progress is logged through a logrus.FieldLogger (fields: algorithm, n,
// elapsed); results are written only by Render.
package bench
