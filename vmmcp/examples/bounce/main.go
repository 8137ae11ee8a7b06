package main

import (
	"log/slog"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/jakecoffman/cp/v2"
	"github.com/oliverbestmann/vmm"
	"github.com/oliverbestmann/vmm/vmmcp"
	"github.com/oliverbestmann/vmm/vmmebiten"
)

type game struct {
	space  *cp.Space
	camera vmmebiten.Camera
}

func (g *game) Update() error {
	g.space.Step(1.0 / 60.0)
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	toScreen := g.camera.WorldToScreen(vmmebiten.ImageSizeOf(screen))

	// the physics world has the y axis pointing up
	toScreen = vmm.Scale2D(toScreen, vmm.Vec2Of(1.0, -1.0))

	vmmcp.DrawSpace(g.space, screen, toScreen)
}

func (g *game) Layout(outsideWidth, outsideHeight int) (screenWidth, screenHeight int) {
	return outsideWidth, outsideHeight
}

func newSpace() *cp.Space {
	space := cp.NewSpace()
	space.SetGravity(cp.Vector{Y: -200})

	floor := cp.NewSegment(space.StaticBody, cp.Vector{X: -300, Y: -200}, cp.Vector{X: 300, Y: -200}, 2)
	floor.SetElasticity(0.8)
	floor.SetFriction(1)
	space.AddShape(floor)

	for range 20 {
		const size = 20

		body := space.AddBody(cp.NewBody(1, cp.MomentForBox(1, size, size)))
		body.SetPosition(vmmcp.Vector(vmm.RandomVec2[float64]().Mul(vmm.Vec2Of(250.0, 100.0)).Add(vmm.Vec2Of(0.0, 100.0))))
		body.SetAngle(float64(vmm.RandomAngle()))

		shape := space.AddShape(cp.NewBox(body, size, size, 0))
		shape.SetElasticity(0.5)
		shape.SetFriction(0.7)
	}

	return space
}

func main() {
	g := &game{
		space: newSpace(),
		camera: vmmebiten.Camera{
			ViewportOrigin: vmm.Vec2Of(0.5, 0.5),
			ScalingMode:    vmmebiten.ScalingModeAutoMin{MinWidth: 700, MinHeight: 500},
		},
	}

	ebiten.SetWindowTitle("bounce")
	ebiten.SetWindowSize(800, 600)

	if err := ebiten.RunGame(g); err != nil {
		slog.Error("Game stopped", slog.String("err", err.Error()))
		os.Exit(1)
	}
}
