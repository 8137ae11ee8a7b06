// Package vmmgonum converts vmm values to and from gonum's mat and r3 packages.
package vmmgonum

import (
	"errors"
	"fmt"

	"github.com/oliverbestmann/vmm"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/spatial/r3"
)

var ErrDimensionMismatch = errors.New("vmmgonum: dimension mismatch")

func R3[T vmm.Scalar](v vmm.Vec3[T]) r3.Vec {
	return r3.Vec{X: float64(v.At(0)), Y: float64(v.At(1)), Z: float64(v.At(2))}
}

func FromR3[T vmm.Scalar](v r3.Vec) vmm.Vec3[T] {
	return vmm.Vec3Of(T(v.X), T(v.Y), T(v.Z))
}

// Dense copies the matrix into a new row major *mat.Dense.
func Dense[T vmm.Scalar, A vmm.Array[T], R vmm.RowArray[T, A]](m vmm.Matrix[T, A, R]) *mat.Dense {
	n := m.Dim()

	data := make([]float64, 0, n*n)
	for i := range n {
		for j := range n {
			data = append(data, float64(m.At(i, j)))
		}
	}

	return mat.NewDense(n, n, data)
}

// R3Mat copies the 3x3 matrix into an *r3.Mat.
func R3Mat[T vmm.Scalar](m vmm.Mat3[T]) *r3.Mat {
	var data [9]float64
	for i := range 3 {
		for j := range 3 {
			data[i*3+j] = float64(m.At(i, j))
		}
	}

	return r3.NewMat(data[:])
}

func fromDense[T vmm.Scalar, A vmm.Array[T], R vmm.RowArray[T, A]](source mat.Matrix) (vmm.Matrix[T, A, R], error) {
	var m vmm.Matrix[T, A, R]
	n := m.Dim()

	if rows, columns := source.Dims(); rows != n || columns != n {
		return m, fmt.Errorf("%w: expected %dx%d, got %dx%d", ErrDimensionMismatch, n, n, rows, columns)
	}

	for i := range n {
		for j := range n {
			m.Set(i, j, T(source.At(i, j)))
		}
	}

	return m, nil
}

// FromDense2 copies a gonum matrix into a Mat2. It returns an error wrapping
// ErrDimensionMismatch if the source is not 2x2.
func FromDense2[T vmm.Scalar](source mat.Matrix) (vmm.Mat2[T], error) {
	return fromDense[T, [2]T, [2]vmm.Vec2[T]](source)
}

func FromDense3[T vmm.Scalar](source mat.Matrix) (vmm.Mat3[T], error) {
	return fromDense[T, [3]T, [3]vmm.Vec3[T]](source)
}

func FromDense4[T vmm.Scalar](source mat.Matrix) (vmm.Mat4[T], error) {
	return fromDense[T, [4]T, [4]vmm.Vec4[T]](source)
}
