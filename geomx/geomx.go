// Package geomx converts between vector.Vector and go-geom geometries so
// vectors can be handed to GIS tooling (WKB/WKT/GeoJSON encoders) and back.
package geomx

import (
	"fmt"

	"github.com/twpayne/go-geom"
	"github.com/viant/vec3/vector"
)

// ToCoord returns v as an XYZ coordinate.
func ToCoord(v vector.Vector[float64]) geom.Coord {
	return geom.Coord{v.X, v.Y, v.Z}
}

// FromCoord reads the x, y and z components of a coordinate laid out as
// layout. Layouts without a z dimension yield z = 0.
func FromCoord(layout geom.Layout, c geom.Coord) (vector.Vector[float64], error) {
	if layout == geom.NoLayout || len(c) < layout.Stride() || len(c) < 2 {
		return vector.Vector[float64]{}, fmt.Errorf("geomx: coordinate %v does not match layout %v", c, layout)
	}
	v := vector.New(c[0], c[1], 0)
	if zIndex := layout.ZIndex(); zIndex != -1 {
		v.Z = c[zIndex]
	}
	return v, nil
}

// ToPoint returns v as an XYZ point.
func ToPoint(v vector.Vector[float64]) *geom.Point {
	return geom.NewPointFlat(geom.XYZ, []float64{v.X, v.Y, v.Z})
}

// FromPoint converts a point into a vector.
func FromPoint(p *geom.Point) (vector.Vector[float64], error) {
	if p == nil || p.Empty() {
		return vector.Vector[float64]{}, fmt.Errorf("geomx: empty point")
	}
	return FromCoord(p.Layout(), p.Coords())
}

// ToLineString returns path as an XYZ line string.
func ToLineString(path []vector.Vector[float64]) *geom.LineString {
	flat := make([]float64, 0, 3*len(path))
	for _, v := range path {
		flat = append(flat, v.X, v.Y, v.Z)
	}
	return geom.NewLineStringFlat(geom.XYZ, flat)
}

// FromLineString converts every vertex of ls into a vector.
func FromLineString(ls *geom.LineString) ([]vector.Vector[float64], error) {
	if ls == nil {
		return nil, nil
	}
	path := make([]vector.Vector[float64], 0, ls.NumCoords())
	for i := 0; i < ls.NumCoords(); i++ {
		v, err := FromCoord(ls.Layout(), ls.Coord(i))
		if err != nil {
			return nil, err
		}
		path = append(path, v)
	}
	return path, nil
}
