// Package testutil provides testing utilities for staticalloc.
//
// This package is intended for use in tests and benchmarks only.
// It provides a seeded random source for allocation workloads and a checker
// for the ranges an allocator hands out.
//
// # Random Workloads
//
//	rng := testutil.NewRNG(seed)
//	counts := rng.PageCounts(100, 8) // 100 requests of 0..8 pages
//
// # Range Verification
//
//	err := testutil.CheckSpans(spans, capacity)
package testutil
