package engine

import (
	"database/sql/driver"
	"fmt"
	"sync"

	"github.com/viant/vec3/vector"
	sqlite "modernc.org/sqlite"
)

type scalarFunction struct {
	name  string
	nArgs int32
	impl  func(*sqlite.FunctionContext, []driver.Value) (driver.Value, error)
}

var functions = []scalarFunction{
	{name: "vec3", nArgs: 3, impl: vec3Impl},
	{name: "vec3_x", nArgs: 1, impl: componentImpl("vec3_x", func(v vector.Vector[float64]) float64 { return v.X })},
	{name: "vec3_y", nArgs: 1, impl: componentImpl("vec3_y", func(v vector.Vector[float64]) float64 { return v.Y })},
	{name: "vec3_z", nArgs: 1, impl: componentImpl("vec3_z", func(v vector.Vector[float64]) float64 { return v.Z })},
	{name: "vec3_length", nArgs: 1, impl: componentImpl("vec3_length", vector.Vector[float64].Length)},
	{name: "vec3_normalize", nArgs: 1, impl: unaryImpl("vec3_normalize", vector.Vector[float64].Normalized)},
	{name: "vec3_dot", nArgs: 2, impl: binaryScalarImpl("vec3_dot", vector.Vector[float64].Dot)},
	{name: "vec3_distance", nArgs: 2, impl: binaryScalarImpl("vec3_distance", vector.Vector[float64].Distance)},
	{name: "vec3_angle", nArgs: 2, impl: binaryScalarImpl("vec3_angle", vector.Vector[float64].AngleBetween)},
	{name: "vec3_cross", nArgs: 2, impl: binaryImpl("vec3_cross", vector.Vector[float64].Cross)},
	{name: "vec3_is_close", nArgs: 2, impl: isCloseImpl},
	{name: "vec3_rotate", nArgs: 3, impl: rotateImpl},
	{name: "vec3_lerp", nArgs: 3, impl: lerpImpl},
}

var (
	registerOnce sync.Once
	registerErr  error
)

// RegisterFunctions registers the vec3_* scalar functions with the driver so
// they are available on new connections opened after this call. Vectors are
// exchanged as BLOBs produced by vector.Encode; both 32-bit (12 bytes) and
// 64-bit (24 bytes) encodings are accepted, results are 64-bit. A NULL
// argument yields NULL.
//
// Registration happens once per process; existing open connections will not
// see the functions.
func RegisterFunctions() error {
	registerOnce.Do(func() {
		for _, fn := range functions {
			if err := sqlite.RegisterDeterministicScalarFunction(fn.name, fn.nArgs, fn.impl); err != nil {
				registerErr = fmt.Errorf("engine: register %s: %w", fn.name, err)
				return
			}
		}
	})
	return registerErr
}

// DecodeVector decodes a BLOB argument into a 64-bit vector.
func DecodeVector(b []byte) (vector.Vector[float64], error) {
	switch len(b) {
	case vector.EncodedSize[float32]():
		v, err := vector.Decode[float32](b)
		return vector.Convert[float64](v), err
	default:
		return vector.Decode[float64](b)
	}
}

func asVector(name string, arg driver.Value) (vector.Vector[float64], bool, error) {
	switch v := arg.(type) {
	case nil:
		return vector.Vector[float64]{}, false, nil
	case []byte:
		decoded, err := DecodeVector(v)
		if err != nil {
			return decoded, false, fmt.Errorf("%s: %w", name, err)
		}
		return decoded, true, nil
	default:
		return vector.Vector[float64]{}, false, fmt.Errorf("%s: unsupported argument type %T for vector; want BLOB", name, arg)
	}
}

func asFloat(name string, arg driver.Value) (float64, bool, error) {
	switch v := arg.(type) {
	case nil:
		return 0, false, nil
	case float64:
		return v, true, nil
	case int64:
		return float64(v), true, nil
	default:
		return 0, false, fmt.Errorf("%s: unsupported argument type %T for number", name, arg)
	}
}

func vec3Impl(_ *sqlite.FunctionContext, args []driver.Value) (driver.Value, error) {
	var c [3]float64
	for i, arg := range args {
		f, ok, err := asFloat("vec3", arg)
		if err != nil || !ok {
			return nil, err
		}
		c[i] = f
	}
	return vector.Encode(vector.FromArray(c)), nil
}

func componentImpl(name string, fn func(vector.Vector[float64]) float64) func(*sqlite.FunctionContext, []driver.Value) (driver.Value, error) {
	return func(_ *sqlite.FunctionContext, args []driver.Value) (driver.Value, error) {
		v, ok, err := asVector(name, args[0])
		if err != nil || !ok {
			return nil, err
		}
		return fn(v), nil
	}
}

func unaryImpl(name string, fn func(vector.Vector[float64]) vector.Vector[float64]) func(*sqlite.FunctionContext, []driver.Value) (driver.Value, error) {
	return func(_ *sqlite.FunctionContext, args []driver.Value) (driver.Value, error) {
		v, ok, err := asVector(name, args[0])
		if err != nil || !ok {
			return nil, err
		}
		return vector.Encode(fn(v)), nil
	}
}

func vectorPair(name string, args []driver.Value) (a, b vector.Vector[float64], ok bool, err error) {
	a, okA, err := asVector(name, args[0])
	if err != nil {
		return a, b, false, err
	}
	b, okB, err := asVector(name, args[1])
	if err != nil {
		return a, b, false, err
	}
	return a, b, okA && okB, nil
}

func binaryScalarImpl(name string, fn func(vector.Vector[float64], vector.Vector[float64]) float64) func(*sqlite.FunctionContext, []driver.Value) (driver.Value, error) {
	return func(_ *sqlite.FunctionContext, args []driver.Value) (driver.Value, error) {
		a, b, ok, err := vectorPair(name, args)
		if err != nil || !ok {
			return nil, err
		}
		return fn(a, b), nil
	}
}

func binaryImpl(name string, fn func(vector.Vector[float64], vector.Vector[float64]) vector.Vector[float64]) func(*sqlite.FunctionContext, []driver.Value) (driver.Value, error) {
	return func(_ *sqlite.FunctionContext, args []driver.Value) (driver.Value, error) {
		a, b, ok, err := vectorPair(name, args)
		if err != nil || !ok {
			return nil, err
		}
		return vector.Encode(fn(a, b)), nil
	}
}

func isCloseImpl(_ *sqlite.FunctionContext, args []driver.Value) (driver.Value, error) {
	v, reference, ok, err := vectorPair("vec3_is_close", args)
	if err != nil || !ok {
		return nil, err
	}
	if v.IsClose(reference) {
		return int64(1), nil
	}
	return int64(0), nil
}

// vec3_rotate(v, angle, axis)
func rotateImpl(_ *sqlite.FunctionContext, args []driver.Value) (driver.Value, error) {
	v, okV, err := asVector("vec3_rotate", args[0])
	if err != nil {
		return nil, err
	}
	angle, okAngle, err := asFloat("vec3_rotate", args[1])
	if err != nil {
		return nil, err
	}
	axis, okAxis, err := asVector("vec3_rotate", args[2])
	if err != nil {
		return nil, err
	}
	if !okV || !okAngle || !okAxis {
		return nil, nil
	}
	return vector.Encode(v.Rotated(angle, axis)), nil
}

// vec3_lerp(a, b, t)
func lerpImpl(_ *sqlite.FunctionContext, args []driver.Value) (driver.Value, error) {
	a, b, ok, err := vectorPair("vec3_lerp", args)
	if err != nil {
		return nil, err
	}
	t, okT, err := asFloat("vec3_lerp", args[2])
	if err != nil || !ok || !okT {
		return nil, err
	}
	return vector.Encode(a.Lerp(b, t)), nil
}
