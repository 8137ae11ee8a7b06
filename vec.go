package vmm

import (
	"fmt"
	"math"
	"strings"

	"github.com/oliverbestmann/vmm/internal/assert"
)

type Vec2[T Scalar] = Vector[T, [2]T]
type Vec3[T Scalar] = Vector[T, [3]T]
type Vec4[T Scalar] = Vector[T, [4]T]

type Vec2f = Vec2[float32]
type Vec3f = Vec3[float32]
type Vec4f = Vec4[float32]

type Vec2d = Vec2[float64]
type Vec3d = Vec3[float64]
type Vec4d = Vec4[float64]

type Vec2i = Vec2[int32]
type Vec3i = Vec3[int32]
type Vec4i = Vec4[int32]

// Vector is a fixed size sequence of scalars. The dimension is given by the
// backing array type A. The zero value is a vector of zeros.
//
// Vectors are values: all arithmetic returns a new vector and leaves the
// operands untouched. Only Fill, Set and the view returned by Ptr mutate.
type Vector[T Scalar, A Array[T]] struct {
	data A
}

// NewVector returns a vector with all components set to zero.
func NewVector[T Scalar, A Array[T]]() Vector[T, A] {
	return Vector[T, A]{}
}

// NewVectorWith returns a vector with all components set to value.
func NewVectorWith[T Scalar, A Array[T]](value T) Vector[T, A] {
	var v Vector[T, A]
	v.Fill(value)
	return v
}

// VectorFrom returns a vector holding a copy of data.
func VectorFrom[T Scalar, A Array[T]](data A) Vector[T, A] {
	return Vector[T, A]{data: data}
}

// VectorFromSlice copies values into a new vector. It panics
// if the number of values does not match the dimension of the vector.
func VectorFromSlice[T Scalar, A Array[T]](values []T) Vector[T, A] {
	var v Vector[T, A]
	assert.HasLength("VectorFromSlice", len(values), len(v.data))

	for i := range len(v.data) {
		v.data[i] = values[i]
	}

	return v
}

func Vec2Of[T Scalar](x, y T) Vec2[T] {
	return Vec2[T]{data: [2]T{x, y}}
}

func Vec3Of[T Scalar](x, y, z T) Vec3[T] {
	return Vec3[T]{data: [3]T{x, y, z}}
}

func Vec4Of[T Scalar](x, y, z, w T) Vec4[T] {
	return Vec4[T]{data: [4]T{x, y, z, w}}
}

// Extend2 appends z to a 2d vector.
func Extend2[T Scalar](v Vec2[T], z T) Vec3[T] {
	return Vec3Of(v.data[0], v.data[1], z)
}

// Extend3 appends w to a 3d vector.
func Extend3[T Scalar](v Vec3[T], w T) Vec4[T] {
	return Vec4Of(v.data[0], v.data[1], v.data[2], w)
}

// Truncate3 drops the last component of a 3d vector.
func Truncate3[T Scalar](v Vec3[T]) Vec2[T] {
	return Vec2Of(v.data[0], v.data[1])
}

// Truncate4 drops the last component of a 4d vector.
func Truncate4[T Scalar](v Vec4[T]) Vec3[T] {
	return Vec3Of(v.data[0], v.data[1], v.data[2])
}

// Len returns the dimension of the vector.
func (v Vector[T, A]) Len() int {
	return len(v.data)
}

// At returns the component at index i. It panics if i is out of range.
func (v Vector[T, A]) At(i int) T {
	return v.data[i]
}

// Get returns the component at index i, or an error
// wrapping ErrIndexOutOfBounds if i is out of range.
func (v Vector[T, A]) Get(i int) (T, error) {
	if i < 0 || i >= len(v.data) {
		var zero T
		return zero, fmt.Errorf("%w: index %d, length %d", ErrIndexOutOfBounds, i, len(v.data))
	}

	return v.data[i], nil
}

// Set updates the component at index i. It panics if i is out of range.
func (v *Vector[T, A]) Set(i int, value T) {
	v.data[i] = value
}

// Fill sets every component to value.
func (v *Vector[T, A]) Fill(value T) {
	for i := range len(v.data) {
		v.data[i] = value
	}
}

// Array returns a copy of the backing array.
func (v Vector[T, A]) Array() A {
	return v.data
}

// Ptr returns a pointer to the backing array. Writes through the pointer
// update the vector.
func (v *Vector[T, A]) Ptr() *A {
	return &v.data
}

func (v Vector[T, A]) Add(other Vector[T, A]) Vector[T, A] {
	for i := range len(v.data) {
		v.data[i] += other.data[i]
	}
	return v
}

func (v Vector[T, A]) Sub(other Vector[T, A]) Vector[T, A] {
	for i := range len(v.data) {
		v.data[i] -= other.data[i]
	}
	return v
}

// Mul multiplies the vectors component wise.
func (v Vector[T, A]) Mul(other Vector[T, A]) Vector[T, A] {
	for i := range len(v.data) {
		v.data[i] *= other.data[i]
	}
	return v
}

// Div divides the vectors component wise. Division by zero behaves
// like it does for T.
func (v Vector[T, A]) Div(other Vector[T, A]) Vector[T, A] {
	for i := range len(v.data) {
		v.data[i] /= other.data[i]
	}
	return v
}

func (v Vector[T, A]) AddScalar(scalar T) Vector[T, A] {
	for i := range len(v.data) {
		v.data[i] += scalar
	}
	return v
}

func (v Vector[T, A]) SubScalar(scalar T) Vector[T, A] {
	for i := range len(v.data) {
		v.data[i] -= scalar
	}
	return v
}

func (v Vector[T, A]) MulScalar(scalar T) Vector[T, A] {
	for i := range len(v.data) {
		v.data[i] *= scalar
	}
	return v
}

func (v Vector[T, A]) DivScalar(scalar T) Vector[T, A] {
	for i := range len(v.data) {
		v.data[i] /= scalar
	}
	return v
}

func (v Vector[T, A]) Neg() Vector[T, A] {
	for i := range len(v.data) {
		v.data[i] = -v.data[i]
	}
	return v
}

func (v Vector[T, A]) Equal(other Vector[T, A]) bool {
	return v.data == other.data
}

// ApproxEqual reports whether all components differ by at most epsilon.
func (v Vector[T, A]) ApproxEqual(other Vector[T, A], epsilon float64) bool {
	for i := range len(v.data) {
		if math.Abs(float64(v.data[i])-float64(other.data[i])) > epsilon {
			return false
		}
	}

	return true
}

func (v Vector[T, A]) String() string {
	var sb strings.Builder

	sb.WriteString("vec(")
	for i := range len(v.data) {
		if i > 0 {
			sb.WriteString(", ")
		}

		fmt.Fprint(&sb, v.data[i])
	}
	sb.WriteString(")")

	return sb.String()
}
