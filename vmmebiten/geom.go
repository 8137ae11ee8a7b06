// Package vmmebiten converts between vmm matrices and ebiten's affine types.
package vmmebiten

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/oliverbestmann/vmm"
)

// GeoM converts the affine part of a 2d homogeneous matrix into an ebiten.GeoM.
// The last row of m is ignored.
func GeoM[T vmm.Scalar](m vmm.Mat3[T]) ebiten.GeoM {
	var g ebiten.GeoM

	for i := range 2 {
		for j := range 3 {
			g.SetElement(i, j, float64(m.At(i, j)))
		}
	}

	return g
}

// FromGeoM converts an ebiten.GeoM into a 2d homogeneous matrix.
func FromGeoM[T vmm.Scalar](g ebiten.GeoM) vmm.Mat3[T] {
	m := vmm.Identity3[T]()

	for i := range 2 {
		for j := range 3 {
			m.Set(i, j, T(g.Element(i, j)))
		}
	}

	return m
}

// DrawImageOptions returns options to draw an image using the given transform.
func DrawImageOptions[T vmm.Scalar](m vmm.Mat3[T]) *ebiten.DrawImageOptions {
	op := &ebiten.DrawImageOptions{}
	op.GeoM = GeoM(m)
	return op
}

// ImageSizeOf returns the size of the image in pixels.
func ImageSizeOf(image *ebiten.Image) vmm.Vec2d {
	return vmm.Vec2Of(
		float64(image.Bounds().Dx()),
		float64(image.Bounds().Dy()),
	)
}
