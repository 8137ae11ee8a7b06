package vmm

import (
	"unsafe"

	"github.com/oliverbestmann/vmm/internal/assert"
)

// Bytes returns the memory of the vector as a byte slice. The slice
// aliases the vector.
func (v *Vector[T, A]) Bytes() []byte {
	ptr := (*byte)(unsafe.Pointer(&v.data))
	return unsafe.Slice(ptr, unsafe.Sizeof(v.data))
}

// Bytes returns the memory of the matrix as a byte slice in row major
// order. The slice aliases the matrix.
func (m *Matrix[T, A, R]) Bytes() []byte {
	ptr := (*byte)(unsafe.Pointer(&m.rows))
	return unsafe.Slice(ptr, unsafe.Sizeof(m.rows))
}

// VectorsAsScalars reinterprets a slice of vectors as a flat slice of their
// components without copying.
func VectorsAsScalars[T Scalar, A Array[T]](vectors []Vector[T, A]) []T {
	var zero Vector[T, A]

	ptr := (*T)(unsafe.Pointer(unsafe.SliceData(vectors)))
	return unsafe.Slice(ptr, len(vectors)*zero.Len())
}

// VectorsAsBytes reinterprets a slice of vectors as bytes, e.g. to upload
// vertex data.
func VectorsAsBytes[T Scalar, A Array[T]](vectors []Vector[T, A]) []byte {
	var zero Vector[T, A]

	ptr := (*byte)(unsafe.Pointer(unsafe.SliceData(vectors)))
	return unsafe.Slice(ptr, unsafe.Sizeof(zero)*uintptr(len(vectors)))
}

// BytesAsVectors reinterprets a byte buffer as a slice of vectors. Trailing bytes
// that do not form a full vector are ignored. It panics if the buffer is not
// aligned for T.
func BytesAsVectors[T Scalar, A Array[T]](buf []byte) []Vector[T, A] {
	var zero Vector[T, A]

	ptr := unsafe.Pointer(unsafe.SliceData(buf))
	assert.IsAligned("BytesAsVectors", uintptr(ptr), unsafe.Alignof(zero))

	return unsafe.Slice((*Vector[T, A])(ptr), uintptr(len(buf))/unsafe.Sizeof(zero))
}
