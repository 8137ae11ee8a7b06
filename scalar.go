package vmm

import "golang.org/x/exp/constraints"

// Scalar is the set of element types a Vector or Matrix can hold.
type Scalar interface {
	constraints.Signed | constraints.Float
}

// Array is the backing storage of a Vector. Its length is the
// dimension of the vector.
type Array[T Scalar] interface {
	[2]T | [3]T | [4]T
}

// RowArray is the backing storage of a Matrix. It must hold as many rows
// as each row holds values.
type RowArray[T Scalar, A Array[T]] interface {
	[2]Vector[T, A] | [3]Vector[T, A] | [4]Vector[T, A]
}
