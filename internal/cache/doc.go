// Package cache provides a small thread-safe memo with a soft size limit.
//
// improc precomputes tables whose inputs repeat across calls: Gaussian
// kernels keyed by (size, sigma) and sampling patterns keyed by their
// parameters. Entries are created at most once per key while resident;
// when the soft limit is exceeded the least recently used quarter is
// dropped.
package cache
