package bruteforce

import (
	"fmt"
	"math"
	"sort"

	"github.com/viant/vec3/index"
	"github.com/viant/vec3/vector"
)

// Index is a brute-force Euclidean point index.
type Index struct {
	ids    []string
	points []vector.Vector[float32]
}

// Build loads ids and points.
func (i *Index) Build(ids []string, points []vector.Vector[float32]) error {
	if len(ids) != len(points) {
		return fmt.Errorf("bruteforce: ids and points length mismatch: %d != %d", len(ids), len(points))
	}
	i.ids = append([]string(nil), ids...)
	i.points = append([]vector.Vector[float32](nil), points...)
	return nil
}

// Len returns the number of indexed points.
func (i *Index) Len() int { return len(i.ids) }

// Query returns the top-k points by ascending distance. Points whose distance
// is NaN are skipped.
func (i *Index) Query(query vector.Vector[float32], k int) ([]string, []float64, error) {
	if len(i.points) == 0 {
		return nil, nil, nil
	}
	type scored struct {
		idx   int
		dist2 float64
	}
	scoreds := make([]scored, 0, len(i.points))
	q := vector.Convert[float64](query)
	for j := range i.points {
		d := q.DistanceSquared(vector.Convert[float64](i.points[j]))
		if math.IsNaN(d) {
			continue
		}
		scoreds = append(scoreds, scored{idx: j, dist2: d})
	}
	sort.SliceStable(scoreds, func(a, b int) bool { return scoreds[a].dist2 < scoreds[b].dist2 })
	if k <= 0 || k > len(scoreds) {
		k = len(scoreds)
	}
	outIDs := make([]string, k)
	outDists := make([]float64, k)
	for n := 0; n < k; n++ {
		outIDs[n] = i.ids[scoreds[n].idx]
		outDists[n] = math.Sqrt(scoreds[n].dist2)
	}
	return outIDs, outDists, nil
}

// MarshalBinary stores the index in the package index binary format.
func (i *Index) MarshalBinary() ([]byte, error) {
	return index.Encode(i.ids, i.points)
}

// UnmarshalBinary restores the index from bytes.
func (i *Index) UnmarshalBinary(data []byte) error {
	ids, points, err := index.Decode(data)
	if err != nil {
		return err
	}
	return i.Build(ids, points)
}

var _ index.Index = (*Index)(nil)
