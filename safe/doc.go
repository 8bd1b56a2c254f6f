// Package safe provides total, panic-free alternatives to partial slice
// operations.
//
// Core APIs include bounds-checked accessors (First, Last, At, Tail, Init),
// empty-safe extrema (Max, Min, MaxFunc, MinFunc), and affix stripping
// (StripPrefix, StripSuffix).
//
// Functions that can fail return explicit sentinel errors instead of
// panicking, so callers can handle absence predictably in production paths.
// Accessors with an acceptable fallback value have OrDefault variants that
// never fail.
package safe
