// Package rio provides small, dependency-light sequence and string helpers.
//
// The package complements the standard library's slices and strings packages
// rather than replacing them: bulk operations such as sorting, deduplication,
// grouping, and binary search remain the standard library's job. rio covers
// the gaps (Map, Filter, Reduce), generic affix trimming (DropPrefix,
// DropSuffix), and a carriage-return-aware line splitter (LinesCR).
//
// Total variants of otherwise partial operations (safe head, last, extrema,
// affix stripping) live in the safe subpackage.
//
// All functions are pure: inputs are never mutated and no shared state
// exists, so every function is safe for concurrent use.
package rio
