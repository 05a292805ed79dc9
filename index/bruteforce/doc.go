// Package bruteforce provides a simple point index that answers kNN queries
// by scanning all points and ranking them by Euclidean distance. It supports
// the compact binary format of package index for persistence.
package bruteforce
