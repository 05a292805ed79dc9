package cover

import "github.com/viant/vec3/internal/cover/tree"

// BoundStrategy selects the subtree radius used for pruning.
type BoundStrategy = tree.BoundStrategy

// DistanceFunction names a supported metric.
type DistanceFunction = tree.DistanceFunction

const (
	BoundPerNode = tree.BoundPerNode
	BoundLevel   = tree.BoundLevel

	Euclidean = tree.DistanceFunctionEuclidean
	Cosine    = tree.DistanceFunctionCosine
)

// Option configures an Index.
type Option func(*Index)

// WithBase sets the cover-tree level base. Values not above 1 use the default.
func WithBase(base float32) Option {
	return func(i *Index) { i.base = base }
}

// WithBoundStrategy sets the pruning strategy.
func WithBoundStrategy(s BoundStrategy) Option {
	return func(i *Index) { i.bound = s }
}

// WithDistance sets the metric. Unknown metrics fall back to Euclidean.
func WithDistance(d DistanceFunction) Option {
	return func(i *Index) { i.metric = d }
}

// WithBestFirst makes Query visit subtrees in order of their distance lower
// bound instead of depth-first.
func WithBestFirst() Option {
	return func(i *Index) { i.bestFirst = true }
}
