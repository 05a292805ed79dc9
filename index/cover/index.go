package cover

import (
	"fmt"
	"sort"

	"github.com/viant/vec3/index"
	"github.com/viant/vec3/internal/cover/tree"
	"github.com/viant/vec3/vector"
)

// Index is a cover-tree point index.
type Index struct {
	base      float32
	bound     BoundStrategy
	metric    DistanceFunction
	bestFirst bool
	ids       []string
	points    []vector.Vector[float32]
	tree      *tree.Tree[string]
}

// New returns an empty index configured by opts.
func New(opts ...Option) *Index {
	ret := &Index{metric: Euclidean, bound: BoundPerNode}
	for _, opt := range opts {
		opt(ret)
	}
	ret.reset()
	return ret
}

func (i *Index) reset() {
	i.tree = tree.NewTree[string](i.base, i.metric)
	i.tree.SetBoundStrategy(i.bound)
	i.metric = i.tree.Metric()
}

// Metric returns the metric the index ranks by.
func (i *Index) Metric() DistanceFunction {
	if i.tree == nil {
		i.reset()
	}
	return i.metric
}

// Len returns the number of indexed points.
func (i *Index) Len() int { return len(i.ids) }

// Build replaces the index content with ids and points.
func (i *Index) Build(ids []string, points []vector.Vector[float32]) error {
	if len(ids) != len(points) {
		return fmt.Errorf("cover: ids and points length mismatch: %d != %d", len(ids), len(points))
	}
	i.reset()
	i.ids = append([]string(nil), ids...)
	i.points = append([]vector.Vector[float32](nil), points...)
	for j := range points {
		i.tree.Insert(ids[j], tree.NewPoint(points[j]))
	}
	return nil
}

// Query returns up to k ids by ascending distance. k<=0 returns every point.
func (i *Index) Query(query vector.Vector[float32], k int) ([]string, []float64, error) {
	if i.tree == nil || len(i.ids) == 0 {
		return nil, nil, nil
	}
	if k <= 0 || k > len(i.ids) {
		k = len(i.ids)
	}
	search := i.tree.KNearestNeighbors
	if i.bestFirst {
		search = i.tree.KNearestNeighborsBestFirst
	}
	return i.collect(query, search(tree.NewPoint(query), k))
}

// Within returns the ids of every point at most radius away from query.
func (i *Index) Within(query vector.Vector[float32], radius float64) ([]string, []float64, error) {
	if i.tree == nil || len(i.ids) == 0 {
		return nil, nil, nil
	}
	return i.collect(query, i.tree.Within(tree.NewPoint(query), float32(radius)))
}

func (i *Index) collect(query vector.Vector[float32], neighbors []*tree.Neighbor) ([]string, []float64, error) {
	q := vector.Convert[float64](query)
	points := make([]*tree.Point, len(neighbors))
	for n, nb := range neighbors {
		points[n] = nb.Point
	}
	ids := i.tree.Values(points)
	dists := make([]float64, len(neighbors))
	order := make([]int, len(neighbors))
	for n, nb := range neighbors {
		if i.metric == Euclidean {
			dists[n] = q.Distance(vector.Convert[float64](nb.Point.Position))
		} else {
			dists[n] = float64(nb.Distance)
		}
		order[n] = n
	}
	sort.SliceStable(order, func(a, b int) bool { return dists[order[a]] < dists[order[b]] })
	outIDs := make([]string, len(order))
	outDists := make([]float64, len(order))
	for n, j := range order {
		outIDs[n] = ids[j]
		outDists[n] = dists[j]
	}
	return outIDs, outDists, nil
}

// MarshalBinary stores the index in the package index binary format.
func (i *Index) MarshalBinary() ([]byte, error) {
	return index.Encode(i.ids, i.points)
}

// UnmarshalBinary restores ids and points and rebuilds the tree.
func (i *Index) UnmarshalBinary(data []byte) error {
	ids, points, err := index.Decode(data)
	if err != nil {
		return err
	}
	return i.Build(ids, points)
}

var _ index.Index = (*Index)(nil)
