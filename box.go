package vmm

import "fmt"

type Rect[T Scalar] = Box[T, [2]T]
type Cuboid[T Scalar] = Box[T, [3]T]

// Box is an axis aligned bounding box spanned by Min and Max.
type Box[T Scalar, A Array[T]] struct {
	Min, Max Vector[T, A]
}

// BoxOfPoints returns the smallest box containing all points. The
// zero box is returned if no points are given.
func BoxOfPoints[T Scalar, A Array[T]](points ...Vector[T, A]) Box[T, A] {
	if len(points) == 0 {
		return Box[T, A]{}
	}

	box := Box[T, A]{Min: points[0], Max: points[0]}
	for _, point := range points[1:] {
		box = box.Extend(point)
	}

	return box
}

func BoxWithCenterAndSize[T Scalar, A Array[T]](center, size Vector[T, A]) Box[T, A] {
	half := size.DivScalar(2)
	return Box[T, A]{
		Min: center.Sub(half),
		Max: center.Add(half),
	}
}

func (b Box[T, A]) Center() Vector[T, A] {
	return b.Min.Add(b.Max).DivScalar(2)
}

func (b Box[T, A]) Size() Vector[T, A] {
	return b.Max.Sub(b.Min)
}

// Extend grows the box so that it contains point.
func (b Box[T, A]) Extend(point Vector[T, A]) Box[T, A] {
	for i := range point.Len() {
		b.Min.data[i] = min(b.Min.data[i], point.data[i])
		b.Max.data[i] = max(b.Max.data[i], point.data[i])
	}

	return b
}

// Union returns the smallest box containing both boxes.
func (b Box[T, A]) Union(other Box[T, A]) Box[T, A] {
	return b.Extend(other.Min).Extend(other.Max)
}

func (b Box[T, A]) Translate(offset Vector[T, A]) Box[T, A] {
	return Box[T, A]{
		Min: b.Min.Add(offset),
		Max: b.Max.Add(offset),
	}
}

// Contains reports whether the point lies within the box, borders included.
func (b Box[T, A]) Contains(point Vector[T, A]) bool {
	for i := range point.Len() {
		if point.data[i] < b.Min.data[i] || point.data[i] > b.Max.data[i] {
			return false
		}
	}

	return true
}

func (b Box[T, A]) String() string {
	return fmt.Sprintf("Box(min=%s, max=%s)", b.Min, b.Max)
}
