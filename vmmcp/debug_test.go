package vmmcp

import (
	"testing"

	"github.com/jakecoffman/cp/v2"
	"github.com/oliverbestmann/vmm"
	"github.com/stretchr/testify/require"
)

func TestDebugDrawer_Length(t *testing.T) {
	d := DebugDrawer{Transform: vmm.Scaling2D(vmm.Vec2Of(2.0, 2.0))}
	require.InDelta(t, 6.0, d.length(3), 1e-6)

	// translation does not change lengths
	d.Transform = vmm.Translate2D(d.Transform, vmm.Vec2Of(100.0, 50.0))
	require.InDelta(t, 6.0, d.length(3), 1e-6)
}

func TestDebugDrawer_Point(t *testing.T) {
	d := DebugDrawer{Transform: vmm.Scale2D(vmm.Translation2D(vmm.Vec2Of(10.0, 20.0)), vmm.Vec2Of(1.0, -1.0))}

	x, y := d.point(cp.Vector{X: 1, Y: 2})
	require.Equal(t, float32(11), x)
	require.Equal(t, float32(18), y)
}
