package tree

import (
	"container/heap"
	"math"
	"sort"
	"sync"
)

// DefaultBase is the level base used when none (or one not above 1) is given.
const DefaultBase float32 = 1.3

// Tree is a cover tree over 3D points with values of type T attached.
type Tree[T any] struct {
	root          *Node
	base          float32
	metric        DistanceFunction
	distanceFunc  DistanceFunc
	values        values[T]
	version       uint64
	boundStrategy BoundStrategy
	mu            sync.RWMutex
}

// BoundStrategy selects which subtree radius is used when pruning.
type BoundStrategy int

const (
	// BoundPerNode uses the cached radius of each subtree.
	BoundPerNode BoundStrategy = iota
	// BoundLevel uses the geometric radius implied by the node level.
	BoundLevel
)

// NewTree constructs a cover tree. Unknown metrics fall back to Euclidean.
func NewTree[T any](base float32, metric DistanceFunction) *Tree[T] {
	if base <= 1 {
		base = DefaultBase
	}
	fn := metric.Function()
	if fn == nil {
		metric = DistanceFunctionEuclidean
		fn = metric.Function()
	}
	return &Tree[T]{
		base:          base,
		metric:        metric,
		distanceFunc:  fn,
		boundStrategy: BoundPerNode,
	}
}

// Metric returns the distance metric in use.
func (t *Tree[T]) Metric() DistanceFunction { return t.metric }

// SetBoundStrategy switches the pruning strategy.
func (t *Tree[T]) SetBoundStrategy(s BoundStrategy) {
	t.mu.Lock()
	t.boundStrategy = s
	t.mu.Unlock()
}

// Len returns the number of inserted points.
func (t *Tree[T]) Len() int { return t.values.len() }

// Insert adds a value at the given point and returns its index.
func (t *Tree[T]) Insert(value T, point *Point) int32 {
	t.mu.Lock()
	defer t.mu.Unlock()
	point.index = t.values.put(value)
	if point.Magnitude == 0 {
		point.Magnitude = point.Position.Length()
	}
	if t.root == nil {
		node := NewNode(point, 0, t.base)
		t.root = &node
	} else if d := t.distanceFunc(point, t.root.point); d < t.root.baseLevel {
		t.insert(t.root, point)
	} else {
		t.promote(point, d)
	}
	t.version++
	return point.index
}

// Values resolves the values attached to points, skipping points without one.
func (t *Tree[T]) Values(points []*Point) []T {
	result := make([]T, 0, len(points))
	for _, point := range points {
		if !point.HasValue() {
			continue
		}
		result = append(result, t.values.value(point.index))
	}
	return result
}

// insert descends from node, which covers point, into the first child that
// also covers it. Each node keeps its children within base^level, and every
// child sits at least one level below its parent.
func (t *Tree[T]) insert(node *Node, point *Point) {
	for {
		var next *Node
		for i := range node.children {
			child := &node.children[i]
			if t.distanceFunc(point, child.point) < child.baseLevel {
				next = child
				break
			}
		}
		if next == nil {
			node.children = append(node.children, NewNode(point, node.level-1, t.base))
			return
		}
		node = next
	}
}

// promote makes point the new root at the lowest level above the old root
// whose cover radius exceeds distance.
func (t *Tree[T]) promote(point *Point, distance float32) {
	level := t.root.level + 1
	for {
		cover := math.Pow(float64(t.base), float64(level))
		if float32(cover) > distance || math.IsInf(cover, 1) || math.IsNaN(float64(distance)) {
			break
		}
		level++
	}
	root := NewNode(point, level, t.base)
	root.children = append(root.children, *t.root)
	t.root = &root
}

func (t *Tree[T]) lock() func() {
	if t.boundStrategy == BoundPerNode {
		t.mu.Lock()
		return t.mu.Unlock
	}
	t.mu.RLock()
	return t.mu.RUnlock
}

// KNearestNeighbors runs a depth-first kNN search and returns neighbors by
// ascending distance.
func (t *Tree[T]) KNearestNeighbors(point *Point, k int) []*Neighbor {
	defer t.lock()()
	if t.root == nil || k <= 0 {
		return nil
	}
	h := &Neighbors{}
	heap.Init(h)
	t.kNearestNeighbors(t.root, point, k, h)
	return drain(h)
}

func (t *Tree[T]) kNearestNeighbors(node *Node, point *Point, k int, h *Neighbors) {
	dc := t.distanceFunc(point, node.point)
	if h.Len() < k {
		heap.Push(h, Neighbor{Point: node.point, Distance: dc})
	} else if dc < (*h)[0].Distance {
		heap.Pop(h)
		heap.Push(h, Neighbor{Point: node.point, Distance: dc})
	}
	if len(node.children) == 0 {
		return
	}
	type childDist struct {
		child *Node
		dist  float32
	}
	cds := make([]childDist, 0, len(node.children))
	for i := range node.children {
		child := &node.children[i]
		cds = append(cds, childDist{child: child, dist: t.distanceFunc(point, child.point)})
	}
	sort.Slice(cds, func(i, j int) bool { return cds[i].dist < cds[j].dist })
	for _, cd := range cds {
		if h.Len() == k && cd.dist-t.boundRadius(cd.child) >= (*h)[0].Distance {
			continue
		}
		t.kNearestNeighbors(cd.child, point, k, h)
	}
}

// KNearestNeighborsBestFirst runs a best-first kNN search ordered by the
// lower bound of each subtree.
func (t *Tree[T]) KNearestNeighborsBestFirst(point *Point, k int) []*Neighbor {
	defer t.lock()()
	if t.root == nil || k <= 0 {
		return nil
	}
	nh := &Neighbors{}
	heap.Init(nh)
	pq := &nodeQueue{}
	heap.Init(pq)
	rootDist := t.distanceFunc(point, t.root.point)
	heap.Push(pq, nodeItem{node: t.root, lb: rootDist - t.boundRadius(t.root), centerDist: rootDist})

	for pq.Len() > 0 {
		top := heap.Pop(pq).(nodeItem)
		if nh.Len() == k && top.lb >= (*nh)[0].Distance {
			break
		}
		if nh.Len() < k {
			heap.Push(nh, Neighbor{Point: top.node.point, Distance: top.centerDist})
		} else if top.centerDist < (*nh)[0].Distance {
			heap.Pop(nh)
			heap.Push(nh, Neighbor{Point: top.node.point, Distance: top.centerDist})
		}
		for i := range top.node.children {
			child := &top.node.children[i]
			cd := t.distanceFunc(point, child.point)
			lb := cd - t.boundRadius(child)
			if nh.Len() == k && lb >= (*nh)[0].Distance {
				continue
			}
			heap.Push(pq, nodeItem{node: child, lb: lb, centerDist: cd})
		}
	}
	return drain(nh)
}

// Within returns every point whose distance to point is at most radius,
// ordered by ascending distance.
func (t *Tree[T]) Within(point *Point, radius float32) []*Neighbor {
	defer t.lock()()
	if t.root == nil || radius < 0 {
		return nil
	}
	var result []*Neighbor
	var visit func(n *Node, dist float32)
	visit = func(n *Node, dist float32) {
		if dist <= radius {
			result = append(result, &Neighbor{Point: n.point, Distance: dist})
		}
		for i := range n.children {
			child := &n.children[i]
			cd := t.distanceFunc(point, child.point)
			if cd-t.boundRadius(child) > radius {
				continue
			}
			visit(child, cd)
		}
	}
	visit(t.root, t.distanceFunc(point, t.root.point))
	sort.SliceStable(result, func(i, j int) bool { return result[i].Distance < result[j].Distance })
	return result
}

func drain(h *Neighbors) []*Neighbor {
	result := make([]*Neighbor, h.Len())
	for i := len(result) - 1; i >= 0; i-- {
		n := heap.Pop(h).(Neighbor)
		result[i] = &n
	}
	return result
}

func (t *Tree[T]) ensureRadius(n *Node) float32 {
	if n == nil {
		return 0
	}
	if n.radiusComputed == t.version {
		return n.radius
	}
	var r float32
	for i := range n.children {
		child := &n.children[i]
		if d := t.distanceFunc(n.point, child.point) + t.ensureRadius(child); d > r {
			r = d
		}
	}
	n.radius = r
	n.radiusComputed = t.version
	return r
}

func (t *Tree[T]) levelCoverRadius(n *Node) float32 {
	if t.base <= 1 || n == nil {
		return math.MaxFloat32
	}
	return n.baseLevel * t.base / (t.base - 1)
}

func (t *Tree[T]) boundRadius(n *Node) float32 {
	if t.boundStrategy == BoundLevel {
		return t.levelCoverRadius(n)
	}
	return t.ensureRadius(n)
}

type nodeItem struct {
	node       *Node
	lb         float32
	centerDist float32
}

type nodeQueue []nodeItem

func (q nodeQueue) Len() int            { return len(q) }
func (q nodeQueue) Less(i, j int) bool  { return q[i].lb < q[j].lb }
func (q nodeQueue) Swap(i, j int)       { q[i], q[j] = q[j], q[i] }
func (q *nodeQueue) Push(x interface{}) { *q = append(*q, x.(nodeItem)) }
func (q *nodeQueue) Pop() interface{} {
	old := *q
	n := len(old)
	x := old[n-1]
	*q = old[:n-1]
	return x
}
