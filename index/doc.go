// Package index defines a minimal abstraction for 3D point indexes that can
// be built from (id, position) pairs, queried for k nearest neighbours, and
// serialized for persistence. Implementations in this module include a
// brute-force baseline and a cover tree.
package index
