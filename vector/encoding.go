package vector

import (
	"encoding/binary"
	"encoding/json"
	"errors"
	"fmt"
	"math"

	"github.com/viant/vec3/scalar"
)

// ErrInvalidLength reports an encoded form that does not hold exactly three
// components.
var ErrInvalidLength = errors.New("vector: invalid length")

// EncodedSize returns the BLOB size of a Vector[F]: 12 bytes for 32-bit
// scalars, 24 bytes for 64-bit scalars.
func EncodedSize[F scalar.Float]() int {
	if scalar.Is32[F]() {
		return 12
	}
	return 24
}

// Encode encodes v into a BLOB: x, y, z as little-endian IEEE 754 values of
// the scalar's own width, without a length prefix.
func Encode[F scalar.Float](v Vector[F]) []byte {
	b := make([]byte, EncodedSize[F]())
	if scalar.Is32[F]() {
		binary.LittleEndian.PutUint32(b[0:], math.Float32bits(float32(v.X)))
		binary.LittleEndian.PutUint32(b[4:], math.Float32bits(float32(v.Y)))
		binary.LittleEndian.PutUint32(b[8:], math.Float32bits(float32(v.Z)))
		return b
	}
	binary.LittleEndian.PutUint64(b[0:], math.Float64bits(float64(v.X)))
	binary.LittleEndian.PutUint64(b[8:], math.Float64bits(float64(v.Y)))
	binary.LittleEndian.PutUint64(b[16:], math.Float64bits(float64(v.Z)))
	return b
}

// Decode decodes a BLOB produced by Encode.
func Decode[F scalar.Float](b []byte) (Vector[F], error) {
	if len(b) != EncodedSize[F]() {
		return Vector[F]{}, fmt.Errorf("%w: blob has %d bytes, want %d", ErrInvalidLength, len(b), EncodedSize[F]())
	}
	if scalar.Is32[F]() {
		return Vector[F]{
			X: F(math.Float32frombits(binary.LittleEndian.Uint32(b[0:]))),
			Y: F(math.Float32frombits(binary.LittleEndian.Uint32(b[4:]))),
			Z: F(math.Float32frombits(binary.LittleEndian.Uint32(b[8:]))),
		}, nil
	}
	return Vector[F]{
		X: F(math.Float64frombits(binary.LittleEndian.Uint64(b[0:]))),
		Y: F(math.Float64frombits(binary.LittleEndian.Uint64(b[8:]))),
		Z: F(math.Float64frombits(binary.LittleEndian.Uint64(b[16:]))),
	}, nil
}

// MarshalBinary implements encoding.BinaryMarshaler.
func (v Vector[F]) MarshalBinary() ([]byte, error) {
	return Encode(v), nil
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler.
func (v *Vector[F]) UnmarshalBinary(data []byte) error {
	decoded, err := Decode[F](data)
	if err != nil {
		return err
	}
	*v = decoded
	return nil
}

// MarshalJSON encodes v as a JSON array [x, y, z]. JSON has no NaN or
// infinity, so a vector with such a component fails to marshal; use
// MarshalBinary to persist it.
func (v Vector[F]) MarshalJSON() ([]byte, error) {
	return json.Marshal(v.Array())
}

// UnmarshalJSON decodes a JSON array holding exactly three numbers.
func (v *Vector[F]) UnmarshalJSON(data []byte) error {
	var components []F
	if err := json.Unmarshal(data, &components); err != nil {
		return fmt.Errorf("vector: invalid JSON: %w", err)
	}
	decoded, err := FromSlice(components)
	if err != nil {
		return err
	}
	*v = decoded
	return nil
}
