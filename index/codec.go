package index

import (
	"encoding/binary"
	"errors"
	"fmt"

	"github.com/viant/vec3/vector"
)

var errTruncated = errors.New("index: truncated data")

// Encode stores n(uint32), then for each item idLen(uint32), id bytes and the
// 12-byte float32 encoding of the point.
func Encode(ids []string, points []vector.Vector[float32]) ([]byte, error) {
	if len(ids) != len(points) {
		return nil, fmt.Errorf("index: ids and points length mismatch: %d != %d", len(ids), len(points))
	}
	size := 4
	for _, id := range ids {
		size += 4 + len(id) + vector.EncodedSize[float32]()
	}
	out := make([]byte, 0, size)
	out = binary.LittleEndian.AppendUint32(out, uint32(len(ids)))
	for i, id := range ids {
		out = binary.LittleEndian.AppendUint32(out, uint32(len(id)))
		out = append(out, id...)
		out = append(out, vector.Encode(points[i])...)
	}
	return out, nil
}

// Decode restores ids and points written by Encode.
func Decode(data []byte) ([]string, []vector.Vector[float32], error) {
	if len(data) < 4 {
		return nil, nil, errors.New("index: invalid data")
	}
	pointSize := vector.EncodedSize[float32]()
	n := int(binary.LittleEndian.Uint32(data))
	if n > (len(data)-4)/(4+pointSize) {
		return nil, nil, errTruncated
	}
	off := 4
	ids := make([]string, 0, n)
	points := make([]vector.Vector[float32], 0, n)
	for i := 0; i < n; i++ {
		if off+4 > len(data) {
			return nil, nil, errTruncated
		}
		idLen := int(binary.LittleEndian.Uint32(data[off:]))
		off += 4
		if off+idLen+pointSize > len(data) {
			return nil, nil, errTruncated
		}
		ids = append(ids, string(data[off:off+idLen]))
		off += idLen
		point, err := vector.Decode[float32](data[off : off+pointSize])
		if err != nil {
			return nil, nil, err
		}
		points = append(points, point)
		off += pointSize
	}
	return ids, points, nil
}
