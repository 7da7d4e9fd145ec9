// Package kernel provides the shared value objects of the dispatch domain.
//
// The package includes:
//   - Location: a validated WGS-84 point (latitude, longitude) with great-circle distance
//   - UUID: an identifier value object used for opaque capability tokens
//
// Both are immutable and constructor guarded: their zero values fail Validate,
// so a point nobody reported can never be mistaken for (0, 0).
package kernel
