package vmmcp

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/jakecoffman/cp/v2"
	"github.com/oliverbestmann/vmm"
)

// DrawSpace renders a debug view of the space onto the image.
// Transform maps from world space to image space.
func DrawSpace(space *cp.Space, image *ebiten.Image, transform vmm.Mat3d) {
	cp.DrawSpace(space, DebugDrawer{Image: image, Transform: transform})
}

// DebugDrawer implements cp.Drawer for an ebiten image.
type DebugDrawer struct {
	Image     *ebiten.Image
	Transform vmm.Mat3d
}

func (d DebugDrawer) point(p cp.Vector) (float32, float32) {
	tp := vmm.TransformPoint2D(d.Transform, FromVector[float64](p))
	return float32(tp.At(0)), float32(tp.At(1))
}

// length converts a length in world space into image space.
func (d DebugDrawer) length(value float64) float32 {
	return float32(vmm.TransformVector2D(d.Transform, vmm.Vec2Of(value, 0)).Length())
}

func (d DebugDrawer) draw(p vector.Path, outline cp.FColor, fill cp.FColor) {
	dpo := &vector.DrawPathOptions{}
	dpo.ColorScale.Scale(fill.R*fill.A, fill.G*fill.A, fill.B*fill.A, fill.A)
	vector.FillPath(d.Image, &p, &vector.FillOptions{}, dpo)

	*dpo = vector.DrawPathOptions{}
	dpo.ColorScale.Scale(outline.R*outline.A, outline.G*outline.A, outline.B*outline.A, outline.A)
	vector.StrokePath(d.Image, &p, &vector.StrokeOptions{Width: 1}, dpo)
}

func (d DebugDrawer) DrawCircle(pos cp.Vector, angle, radius float64, outline, fill cp.FColor, data interface{}) {
	cx, cy := d.point(pos)

	// marker showing the rotation of the circle
	mx, my := d.point(pos.Add(cp.ForAngle(angle).Mult(radius)))

	var p vector.Path
	p.Arc(cx, cy, d.length(radius), 0, math.Pi*2, vector.Clockwise)
	p.MoveTo(cx, cy)
	p.LineTo(mx, my)

	d.draw(p, outline, fill)
}

func (d DebugDrawer) DrawSegment(a, b cp.Vector, fill cp.FColor, data interface{}) {
	d.stroke(a, b, 1, fill)
}

func (d DebugDrawer) DrawFatSegment(a, b cp.Vector, radius float64, outline, fill cp.FColor, data interface{}) {
	d.stroke(a, b, max(1, 2*d.length(radius)), fill)
}

func (d DebugDrawer) stroke(a, b cp.Vector, width float32, color cp.FColor) {
	ax, ay := d.point(a)
	bx, by := d.point(b)

	var p vector.Path
	p.MoveTo(ax, ay)
	p.LineTo(bx, by)

	dpo := &vector.DrawPathOptions{}
	dpo.ColorScale.Scale(color.R*color.A, color.G*color.A, color.B*color.A, color.A)
	vector.StrokePath(d.Image, &p, &vector.StrokeOptions{Width: width, LineCap: vector.LineCapRound}, dpo)
}

func (d DebugDrawer) DrawPolygon(count int, verts []cp.Vector, radius float64, outline, fill cp.FColor, data interface{}) {
	if count == 0 {
		return
	}

	var p vector.Path
	for idx, vert := range verts[:count] {
		x, y := d.point(vert)
		if idx == 0 {
			p.MoveTo(x, y)
		} else {
			p.LineTo(x, y)
		}
	}

	p.Close()

	d.draw(p, outline, fill)
}

func (d DebugDrawer) DrawDot(size float64, pos cp.Vector, fill cp.FColor, data interface{}) {
	d.DrawCircle(pos, 0, size/2, fill, fill, data)
}

func (d DebugDrawer) Flags() uint {
	return 0
}

func (d DebugDrawer) OutlineColor() cp.FColor {
	return cp.FColor{R: 1, G: 1, B: 1, A: 1}
}

func (d DebugDrawer) ShapeColor(shape *cp.Shape, data interface{}) cp.FColor {
	return cp.FColor{G: 1, A: 1}
}

func (d DebugDrawer) ConstraintColor() cp.FColor {
	return cp.FColor{R: 1, G: 0.75, A: 1}
}

func (d DebugDrawer) CollisionPointColor() cp.FColor {
	return cp.FColor{R: 1, A: 1}
}

func (d DebugDrawer) Data() interface{} {
	return nil
}
