package cover

import (
	"fmt"
	"math"
	"math/rand"
	"testing"

	"github.com/viant/vec3/index/bruteforce"
	"github.com/viant/vec3/vector"
)

func sample(n int) ([]string, []vector.Vector[float32]) {
	r := rand.New(rand.NewSource(42))
	ids := make([]string, n)
	points := make([]vector.Vector[float32], n)
	for i := range ids {
		ids[i] = fmt.Sprintf("p%03d", i)
		points[i] = vector.New(r.Float32()*100, r.Float32()*100, r.Float32()*100)
	}
	return ids, points
}

func TestIndex_MatchesBruteForce(t *testing.T) {
	ids, points := sample(500)
	bf := &bruteforce.Index{}
	if err := bf.Build(ids, points); err != nil {
		t.Fatalf("bruteforce Build failed: %v", err)
	}
	testCases := []struct {
		description string
		options     []Option
	}{
		{description: "default"},
		{description: "base 2", options: []Option{WithBase(2)}},
		{description: "level bound", options: []Option{WithBoundStrategy(BoundLevel)}},
		{description: "level bound base 2", options: []Option{WithBoundStrategy(BoundLevel), WithBase(2)}},
		{description: "best first", options: []Option{WithBestFirst()}},
		{description: "best first level bound base 2", options: []Option{WithBestFirst(), WithBoundStrategy(BoundLevel), WithBase(2)}},
	}
	for _, testCase := range testCases {
		idx := New(testCase.options...)
		if err := idx.Build(ids, points); err != nil {
			t.Fatalf("%s: Build failed: %v", testCase.description, err)
		}
		for _, q := range []vector.Vector[float32]{vector.Zero[float32](), vector.New[float32](50, 50, 50), vector.New[float32](99, 1, 42), vector.New[float32](10, 90, 30)} {
			gotIDs, gotDists, err := idx.Query(q, 10)
			if err != nil {
				t.Fatalf("%s: Query failed: %v", testCase.description, err)
			}
			wantIDs, wantDists, _ := bf.Query(q, 10)
			if len(gotIDs) != len(wantIDs) {
				t.Fatalf("%s: got %d results, want %d", testCase.description, len(gotIDs), len(wantIDs))
			}
			for n := range wantIDs {
				if math.Abs(gotDists[n]-wantDists[n]) > 1e-4 {
					t.Fatalf("%s: result %d distance = %v (%s), want %v (%s)", testCase.description, n, gotDists[n], gotIDs[n], wantDists[n], wantIDs[n])
				}
			}
		}
	}
}

func TestIndex_Within(t *testing.T) {
	idx := New()
	err := idx.Build([]string{"a", "b", "c"}, []vector.Vector[float32]{
		vector.New[float32](0, 0, 0),
		vector.New[float32](3, 4, 0),
		vector.New[float32](10, 0, 0),
	})
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	ids, dists, err := idx.Within(vector.Zero[float32](), 5)
	if err != nil {
		t.Fatalf("Within failed: %v", err)
	}
	if len(ids) != 2 || ids[0] != "a" || ids[1] != "b" || dists[1] != 5 {
		t.Fatalf("Within = %v %v, want [a b] [0 5]", ids, dists)
	}
}

func TestIndex_MarshalInterop(t *testing.T) {
	ids, points := sample(50)
	idx := New(WithBoundStrategy(BoundPerNode))
	if err := idx.Build(ids, points); err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	data, err := idx.MarshalBinary()
	if err != nil {
		t.Fatalf("MarshalBinary failed: %v", err)
	}
	bf := &bruteforce.Index{}
	if err := bf.UnmarshalBinary(data); err != nil {
		t.Fatalf("bruteforce UnmarshalBinary failed: %v", err)
	}
	restored := New()
	if err := restored.UnmarshalBinary(data); err != nil {
		t.Fatalf("UnmarshalBinary failed: %v", err)
	}
	if restored.Len() != 50 || bf.Len() != 50 {
		t.Fatalf("restored lengths = %d/%d, want 50", restored.Len(), bf.Len())
	}
	got, _, _ := restored.Query(points[7], 1)
	if len(got) != 1 || got[0] != ids[7] {
		t.Fatalf("Query(points[7]) = %v, want [%s]", got, ids[7])
	}
}

func TestIndex_Options(t *testing.T) {
	if m := New(WithDistance("bogus")).Metric(); m != Euclidean {
		t.Fatalf("Metric = %q, want euclidean fallback", m)
	}
	idx := New(WithDistance(Cosine))
	err := idx.Build([]string{"x", "y"}, []vector.Vector[float32]{vector.New[float32](1, 0, 0), vector.New[float32](0, 1, 0)})
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	ids, dists, err := idx.Query(vector.New[float32](5, 0.1, 0), 2)
	if err != nil {
		t.Fatalf("Query failed: %v", err)
	}
	if ids[0] != "x" || dists[0] > dists[1] {
		t.Fatalf("cosine Query = %v %v, want x first", ids, dists)
	}
	if err := idx.Build([]string{"x"}, nil); err == nil {
		t.Fatalf("Build with mismatched lengths expected error")
	}
}
