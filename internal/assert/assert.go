package assert

import (
	"fmt"
)

// HasLength panics if the length of some input does not match the
// dimension of the type it is copied into.
func HasLength(what string, got, want int) {
	if got != want {
		panic(fmt.Sprintf("%s: expected length %d, got %d", what, want, got))
	}
}

// IsSquare panics if the row count and the column count of a matrix differ.
func IsSquare(rows, columns int) {
	if rows != columns {
		panic(fmt.Sprintf("expected square matrix, got %dx%d", rows, columns))
	}
}

// IsAligned panics if the offset of a buffer is not a multiple of align.
func IsAligned(what string, ptr, align uintptr) {
	if ptr%align != 0 {
		panic(fmt.Sprintf("%s: buffer not aligned to %d bytes", what, align))
	}
}
