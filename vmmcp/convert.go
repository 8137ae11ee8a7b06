// Package vmmcp connects vmm vectors and transforms with the chipmunk physics port.
package vmmcp

import (
	"github.com/jakecoffman/cp/v2"
	"github.com/oliverbestmann/vmm"
)

func Vector[T vmm.Scalar](v vmm.Vec2[T]) cp.Vector {
	return cp.Vector{X: float64(v.At(0)), Y: float64(v.At(1))}
}

func FromVector[T vmm.Scalar](v cp.Vector) vmm.Vec2[T] {
	return vmm.Vec2Of(T(v.X), T(v.Y))
}

// BB converts the rect into a chipmunk bounding box.
func BB[T vmm.Scalar](rect vmm.Rect[T]) cp.BB {
	return cp.BB{
		L: float64(rect.Min.At(0)),
		B: float64(rect.Min.At(1)),
		R: float64(rect.Max.At(0)),
		T: float64(rect.Max.At(1)),
	}
}

func RectFromBB[T vmm.Scalar](bb cp.BB) vmm.Rect[T] {
	return vmm.Rect[T]{
		Min: vmm.Vec2Of(T(bb.L), T(bb.B)),
		Max: vmm.Vec2Of(T(bb.R), T(bb.T)),
	}
}

// TransformVerts applies the transform to each vertex and returns the
// transformed vertices in a new slice.
func TransformVerts[T vmm.Scalar](m vmm.Mat3[T], verts []cp.Vector) []cp.Vector {
	result := make([]cp.Vector, len(verts))

	for idx, vert := range verts {
		result[idx] = Vector(vmm.TransformPoint2D(m, FromVector[T](vert)))
	}

	return result
}

// BodyTransform returns the local to world transform of a body
// at the given position and angle.
func BodyTransform(position cp.Vector, angle float64) vmm.Mat3d {
	tr := vmm.Translation2D(FromVector[float64](position))
	return vmm.Rotate2D(tr, vmm.Rad(angle))
}

// BodyTransformOf returns the current local to world transform of the body.
func BodyTransformOf(body *cp.Body) vmm.Mat3d {
	return BodyTransform(body.Position(), body.Angle())
}
