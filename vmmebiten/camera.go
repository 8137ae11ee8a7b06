package vmmebiten

import (
	"github.com/oliverbestmann/vmm"
)

// Camera is an orthographic 2d camera looking at a world.
type Camera struct {
	// Position of the camera in world units.
	Translation vmm.Vec2d

	Rotation vmm.Rad

	// Origin of the camera. Set this to (0.5, 0.5) to center the Camera.
	ViewportOrigin vmm.Vec2d

	ScalingMode ScalingMode

	// Extra scale to multiply on top of the ScalingMode. Can be used for zooming.
	Scale float64
}

// WorldToScreen calculates the transform that maps world coordinates
// onto a screen of the given size.
func (c Camera) WorldToScreen(screenSize vmm.Vec2d) vmm.Mat3d {
	scalingMode := c.ScalingMode
	if scalingMode == nil {
		scalingMode = ScalingModeWindowSize{}
	}

	scale := c.Scale
	if scale == 0 {
		scale = 1
	}

	// calculate the cameras viewport size in world units
	viewportSizeInWorld := scalingMode.
		ViewportSize(screenSize.At(0), screenSize.At(1)).
		MulScalar(scale)

	// and the offset from the center of the viewport in world units
	viewportOffsetInWorld := c.ViewportOrigin.Mul(viewportSizeInWorld)

	toScreen := vmm.Identity3[float64]()

	// scale the viewport
	toScreen = vmm.Scale2D(toScreen, screenSize.Div(viewportSizeInWorld))

	// move the viewport
	toScreen = vmm.Translate2D(toScreen, viewportOffsetInWorld)

	// now rotate everything around that point
	toScreen = vmm.Rotate2D(toScreen, -c.Rotation)

	// move the camera to the target position in world space
	toScreen = vmm.Translate2D(toScreen, c.Translation.Neg())

	return toScreen
}

// ScreenToWorld is the inverse of WorldToScreen.
func (c Camera) ScreenToWorld(screenSize vmm.Vec2d) vmm.Mat3d {
	return c.WorldToScreen(screenSize).Inverse()
}

type ScalingMode interface {
	ViewportSize(width, height float64) vmm.Vec2d
}

type ScalingModeWindowSize struct{}

func (s ScalingModeWindowSize) ViewportSize(width, height float64) vmm.Vec2d {
	return vmm.Vec2Of(width, height)
}

type ScalingModeFixed struct {
	Viewport vmm.Vec2d
}

func (s ScalingModeFixed) ViewportSize(width, height float64) vmm.Vec2d {
	return s.Viewport
}

// ScalingModeAutoMin keeps the aspect ratio while the axes can't be smaller than the given minimum.
type ScalingModeAutoMin struct {
	MinWidth, MinHeight float64
}

func (s ScalingModeAutoMin) ViewportSize(width, height float64) vmm.Vec2d {
	if width*s.MinHeight > s.MinWidth*height {
		return vmm.Vec2Of(width*s.MinHeight/height, s.MinHeight)
	}

	return vmm.Vec2Of(s.MinWidth, height*s.MinWidth/width)
}

// ScalingModeAutoMax keeps the aspect ratio while the axes can't be bigger than the given maximum.
type ScalingModeAutoMax struct {
	MaxWidth, MaxHeight float64
}

func (s ScalingModeAutoMax) ViewportSize(width, height float64) vmm.Vec2d {
	if width*s.MaxHeight < s.MaxWidth*height {
		return vmm.Vec2Of(width*s.MaxHeight/height, s.MaxHeight)
	}

	return vmm.Vec2Of(s.MaxWidth, height*s.MaxWidth/width)
}

type ScalingModeFixedVertical struct {
	ViewportHeight float64
}

func (s ScalingModeFixedVertical) ViewportSize(width, height float64) vmm.Vec2d {
	return vmm.Vec2Of(width*s.ViewportHeight/height, s.ViewportHeight)
}
