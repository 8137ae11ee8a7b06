package main

import (
	"image/color"
	"log/slog"
	"math"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/oliverbestmann/vmm"
	"github.com/oliverbestmann/vmm/vmmebiten"
	"github.com/pkg/profile"
)

type sprite struct {
	Transform vmm.Transform2D[float64]
	Speed     vmm.Rad
	Tint      color.RGBA
}

type game struct {
	square  *ebiten.Image
	sprites []sprite
	camera  vmmebiten.Camera
}

func (g *game) Update() error {
	for idx := range g.sprites {
		g.sprites[idx].Transform.Rotation += g.sprites[idx].Speed
	}

	// slowly turn the world
	g.camera.Rotation += vmm.DegToRad(0.1)

	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	if g.square == nil {
		g.square = ebiten.NewImage(16, 16)
		g.square.Fill(color.White)
	}

	toScreen := g.camera.WorldToScreen(vmmebiten.ImageSizeOf(screen))

	// rotate around the center of the image
	anchor := vmmebiten.ImageSizeOf(g.square).DivScalar(2)

	for _, item := range g.sprites {
		tr := toScreen.Mul(item.Transform.Matrix())
		tr = vmm.Translate2D(tr, anchor.Neg())

		op := vmmebiten.DrawImageOptions(tr)
		op.ColorScale.ScaleWithColor(item.Tint)

		screen.DrawImage(g.square, op)
	}
}

func (g *game) Layout(outsideWidth, outsideHeight int) (screenWidth, screenHeight int) {
	return outsideWidth, outsideHeight
}

func main() {
	defer profile.Start(profile.CPUProfile).Stop()

	g := &game{
		camera: vmmebiten.Camera{
			ViewportOrigin: vmm.Vec2Of(0.5, 0.5),
			ScalingMode:    vmmebiten.ScalingModeAutoMin{MinWidth: 400, MinHeight: 400},
		},
	}

	for idx := range 64 {
		angle := vmm.Rad(float64(idx) / 64 * 2 * math.Pi)
		radius := 50 + 3*float64(idx)

		scale := 0.5 + vmm.RandomIn(0.0, 1.0)

		g.sprites = append(g.sprites, sprite{
			Transform: vmm.NewTransform2D[float64]().
				WithTranslation(vmm.Vec2Of(angle.Cos(), angle.Sin()).MulScalar(radius)).
				WithScale(vmm.Vec2Of(scale, scale)),
			Speed: vmm.RandomIn[vmm.Rad](-0.1, 0.1),
			Tint:  color.RGBA{R: uint8(idx * 4), G: 128, B: 255 - uint8(idx*4), A: 255},
		})
	}

	ebiten.SetWindowTitle("spin")
	ebiten.SetWindowSize(800, 600)

	if err := ebiten.RunGame(g); err != nil {
		slog.Error("Game stopped", slog.String("err", err.Error()))
		os.Exit(1)
	}
}
