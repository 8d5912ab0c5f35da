// SPDX-License-Identifier: MPL-2.0

// Package benchmark provides benchmarks for PGO profile generation.
// These benchmarks cover the hot paths of a digest run:
//   - Solution and project manifest parsing
//   - Path classification
//   - Discovery over a populated workspace
//   - Markdown rendering
//
// To generate a PGO profile, run:
//
//	go test -bench=. -cpuprofile=default.pgo ./internal/benchmark/
package benchmark
