package vmm

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func requireVecInDelta[T Scalar, A Array[T]](t *testing.T, expected, actual Vector[T, A]) {
	t.Helper()
	require.True(t, expected.ApproxEqual(actual, 1e-9), "expected %s, got %s", expected, actual)
}

func TestAffine_Transform2D(t *testing.T) {
	tr := Translate2D(Identity3[float64](), Vec2Of(2.0, 1.0))
	require.Equal(t, Vec2Of(12.0, 11.0), TransformPoint2D(tr, Vec2Of(10.0, 10.0)))

	// translate vector by (10, 0) first, then rotate by 90°
	tr = Rotate2D(Translate2D(Identity3[float64](), Vec2Of(10.0, 0.0)), DegToRad(90))
	requireVecInDelta(t, Vec2Of(10.0, 1.0), TransformPoint2D(tr, Vec2Of(1.0, 0.0)))

	// rotate by 90° first, then move by (in local space) (10, 0)
	tr = Translate2D(Rotate2D(Identity3[float64](), DegToRad(90)), Vec2Of(10.0, 0.0))
	requireVecInDelta(t, Vec2Of(0.0, 11.0), TransformPoint2D(tr, Vec2Of(1.0, 0.0)))

	// scale by 2 first, then move by local 5 (10 real)
	tr = Translate2D(Scale2D(Identity3[float64](), Vec2Of(2.0, 2.0)), Vec2Of(5.0, 0.0))
	requireVecInDelta(t, Vec2Of(30.0, 0.0), TransformPoint2D(tr, Vec2Of(10.0, 0.0)))
}

func TestAffine_TransformVector2D(t *testing.T) {
	tr := Translate2D(Scale2D(Identity3[float64](), Vec2Of(2.0, 3.0)), Vec2Of(5.0, 5.0))
	require.Equal(t, Vec2Of(2.0, 3.0), TransformVector2D(tr, Vec2Of(1.0, 1.0)))
}

func TestAffine_Builders2D(t *testing.T) {
	require.Equal(t, Mat3Of([3][3]float64{
		{1, 0, 4},
		{0, 1, 5},
		{0, 0, 1},
	}), Translation2D(Vec2Of(4.0, 5.0)))

	require.Equal(t, Mat3Of([3][3]float64{
		{2, 0, 0},
		{0, 3, 0},
		{0, 0, 1},
	}), Scaling2D(Vec2Of(2.0, 3.0)))

	// composing onto the identity yields the bare transform
	require.Equal(t, Translation2D(Vec2Of(4.0, 5.0)), Translate2D(Identity3[float64](), Vec2Of(4.0, 5.0)))
	require.Equal(t, Scaling2D(Vec2Of(2.0, 3.0)), Scale2D(Identity3[float64](), Vec2Of(2.0, 3.0)))
	require.Equal(t, Rotation2D[float64](1), Rotate2D(Identity3[float64](), 1))
}

func TestAffine_RotationInteger(t *testing.T) {
	// trig results are truncated for integer matrices
	require.Equal(t, Mat3Of([3][3]int32{
		{0, -1, 0},
		{1, 0, 0},
		{0, 0, 1},
	}), Rotation2D[int32](DegToRad(90)))

	require.Equal(t, Mat3Of([3][3]int32{
		{0, 0, 0},
		{0, 0, 0},
		{0, 0, 1},
	}), Rotation2D[int32](DegToRad(45)))
}

func TestAffine_Transform3D(t *testing.T) {
	tr := Translation3D(Vec3Of(4.0, 5.0, 6.0))
	require.Equal(t, Vec3Of(5.0, 7.0, 9.0), TransformPoint3D(tr, Vec3Of(1.0, 2.0, 3.0)))
	require.Equal(t, Vec3Of(1.0, 2.0, 3.0), TransformVector3D(tr, Vec3Of(1.0, 2.0, 3.0)))

	sc := Scaling3D(Vec3Of(2.0, 3.0, 4.0))
	require.Equal(t, 1.0, sc.At(3, 3))
	require.Equal(t, Vec3Of(2.0, 3.0, 4.0), TransformPoint3D(sc, Vec3Of(1.0, 1.0, 1.0)))

	require.Equal(t, tr, Translate3D(Identity4[float64](), Vec3Of(4.0, 5.0, 6.0)))
	require.Equal(t, sc, Scale3D(Identity4[float64](), Vec3Of(2.0, 3.0, 4.0)))

	// scale first, then translate
	tr = Scale3D(Translate3D(Identity4[float64](), Vec3Of(1.0, 0.0, 0.0)), Vec3Of(2.0, 2.0, 2.0))
	require.Equal(t, Vec3Of(3.0, 2.0, 2.0), TransformPoint3D(tr, Vec3Of(1.0, 1.0, 1.0)))
}

func TestAffine_ElementaryRotations(t *testing.T) {
	quarter := DegToRad(90)

	requireVecInDelta(t, Vec3Of(0.0, 0.0, 1.0), TransformPoint3D(RotationX[float64](quarter), Vec3Of(0.0, 1.0, 0.0)))
	requireVecInDelta(t, Vec3Of(1.0, 0.0, 0.0), TransformPoint3D(RotationY[float64](quarter), Vec3Of(0.0, 0.0, 1.0)))
	requireVecInDelta(t, Vec3Of(0.0, 1.0, 0.0), TransformPoint3D(RotationZ[float64](quarter), Vec3Of(1.0, 0.0, 0.0)))
}

func TestAffine_Rotation3D(t *testing.T) {
	for _, angle := range []Rad{0, 0.5, 1, math.Pi, -2} {
		require.True(t, Rotation3D(angle, Vec3Of(1.0, 0.0, 0.0)).ApproxEqual(RotationX[float64](angle), 1e-12))
		require.True(t, Rotation3D(angle, Vec3Of(0.0, 1.0, 0.0)).ApproxEqual(RotationY[float64](angle), 1e-12))
		require.True(t, Rotation3D(angle, Vec3Of(0.0, 0.0, 1.0)).ApproxEqual(RotationZ[float64](angle), 1e-12))

		// the axis does not need to be normalized
		require.True(t, Rotation3D(angle, Vec3Of(0.0, 0.0, 5.0)).ApproxEqual(RotationZ[float64](angle), 1e-12))
	}

	// points on the axis do not move
	axis := Vec3Of(1.0, 1.0, 1.0)
	requireVecInDelta(t, axis, TransformPoint3D(Rotation3D(2, axis), axis))

	// a third of a turn around the diagonal cycles the axes
	requireVecInDelta(t, Vec3Of(0.0, 1.0, 0.0), TransformPoint3D(Rotation3D(2*math.Pi/3, axis), Vec3Of(1.0, 0.0, 0.0)))

	// rotations keep lengths
	r := Rotation3D(0.7, Vec3Of(1.0, -2.0, 0.5))
	v := Vec3Of(3.0, 4.0, 5.0)
	require.InDelta(t, v.Length(), TransformVector3D(r, v).Length(), 1e-12)
}

func TestAffine_RotationXYZ(t *testing.T) {
	angles := Vec3Of(0.3, -1.2, 2.0)

	expected := RotationX[float64](0.3).Mul(RotationY[float64](-1.2)).Mul(RotationZ[float64](2.0))
	require.True(t, RotationXYZ(1, angles).ApproxEqual(expected, 1e-12))

	// the weights scale the angle per axis
	expected = RotationX[float64](0.15).Mul(RotationY[float64](-0.6)).Mul(RotationZ[float64](1.0))
	require.True(t, RotationXYZ(0.5, angles).ApproxEqual(expected, 1e-12))

	axis := Vec3Of(0.0, 0.0, 1.0)
	requireVecInDelta(t, Vec3Of(0.0, 1.0, 0.0),
		TransformPoint3D(RotationXYZ(math.Pi/2, axis), Vec3Of(1.0, 0.0, 0.0)))

	base := Translation3D(Vec3Of(1.0, 2.0, 3.0))
	require.Equal(t, base.Mul(RotationXYZ(0.7, angles)), RotateXYZ(base, 0.7, angles))
	require.Equal(t, base.Mul(Rotation3D(1, angles)), Rotate3D(base, 1, angles))
}

func TestAffine_RotationXYZInteger(t *testing.T) {
	// the angle is not truncated before the trig functions
	require.Equal(t, Mat4Of([4][4]int32{
		{0, -1, 0, 0},
		{1, 0, 0, 0},
		{0, 0, 1, 0},
		{0, 0, 0, 1},
	}), RotationXYZ(DegToRad(90), Vec3Of[int32](0, 0, 1)))

	require.Equal(t, Mat4Of([4][4]int32{
		{1, 0, 0, 0},
		{0, -1, 0, 0},
		{0, 0, -1, 0},
		{0, 0, 0, 1},
	}), RotationXYZ(DegToRad(90), Vec3Of[int32](2, 0, 0)))
}
