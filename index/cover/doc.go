// Package cover provides a cover-tree point index. Queries prune subtrees by
// cached radius, so they visit far fewer points than a scan on large sets.
// Persistence uses the binary format of package index, so a cover index and
// a brute-force index can load each other's bytes.
package cover
