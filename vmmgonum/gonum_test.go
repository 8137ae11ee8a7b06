package vmmgonum

import (
	"math"
	"math/rand/v2"
	"testing"

	"github.com/oliverbestmann/vmm"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/spatial/r3"
)

func randomMat4() vmm.Mat4d {
	var m vmm.Mat4d
	for i := range 4 {
		for j := range 4 {
			m.Set(i, j, rand.Float64()*10-5)
		}
	}

	return m
}

func TestDense_RoundTrip(t *testing.T) {
	m := randomMat4()

	dense := Dense(m)
	rows, columns := dense.Dims()
	require.Equal(t, 4, rows)
	require.Equal(t, 4, columns)
	require.Equal(t, m.At(1, 2), dense.At(1, 2))

	back, err := FromDense4[float64](dense)
	require.NoError(t, err)
	require.Equal(t, m, back)
}

func TestFromDense_DimensionMismatch(t *testing.T) {
	_, err := FromDense3[float64](mat.NewDense(2, 3, nil))
	require.ErrorIs(t, err, ErrDimensionMismatch)

	_, err = FromDense4[float32](Dense(vmm.Identity3[float64]()))
	require.ErrorIs(t, err, ErrDimensionMismatch)

	m, err := FromDense2[int32](mat.NewDense(2, 2, []float64{1, 2, 3, 4}))
	require.NoError(t, err)
	require.Equal(t, vmm.Mat2Of([2][2]int32{{1, 2}, {3, 4}}), m)
}

func TestMul_MatchesGonum(t *testing.T) {
	for range 100 {
		a, b := randomMat4(), randomMat4()

		var expected mat.Dense
		expected.Mul(Dense(a), Dense(b))

		require.True(t, mat.EqualApprox(&expected, Dense(a.Mul(b)), 1e-9))
	}
}

func TestDeterminant_MatchesGonum(t *testing.T) {
	for range 100 {
		m := randomMat4()
		require.InDelta(t, mat.Det(Dense(m)), m.Determinant(), 1e-6)
	}
}

func TestInverse_MatchesGonum(t *testing.T) {
	for range 100 {
		m := randomMat4()
		if math.Abs(m.Determinant()) < 1 {
			continue
		}

		var expected mat.Dense
		if err := expected.Inverse(Dense(m)); err != nil {
			continue
		}

		inverse, ok := m.TryInverse()
		require.True(t, ok)
		require.True(t, mat.EqualApprox(&expected, Dense(inverse), 1e-6))
	}
}

func TestCross_MatchesR3(t *testing.T) {
	for range 100 {
		a, b := vmm.RandomVec3[float64](), vmm.RandomVec3[float64]()

		expected := FromR3[float64](r3.Cross(R3(a), R3(b)))
		require.True(t, expected.ApproxEqual(vmm.Cross(a, b), 1e-12))
		require.InDelta(t, r3.Dot(R3(a), R3(b)), a.Dot(b), 1e-12)
		require.InDelta(t, r3.Norm(R3(a)), a.Length(), 1e-12)
	}
}

func TestRotation3D_MatchesR3(t *testing.T) {
	for range 100 {
		axis := vmm.RandomVec3[float64]()
		if axis.Length() < 0.1 {
			continue
		}

		point := vmm.RandomVec3[float64]()
		angle := vmm.RandomAngle()

		expected := FromR3[float64](r3.Rotate(R3(point), angle.Radians(), R3(axis)))
		actual := vmm.TransformVector3D(vmm.Rotation3D(angle, axis), point)

		require.True(t, expected.ApproxEqual(actual, 1e-9), "expected %s, got %s", expected, actual)
	}
}

func TestR3Mat(t *testing.T) {
	m := vmm.Mat3Of([3][3]float64{
		{1, 2, 3},
		{4, 5, 6},
		{7, 8, 10},
	})

	v := vmm.Vec3Of(1.0, -1.0, 2.0)
	require.Equal(t, m.MulVec(v), FromR3[float64](R3Mat(m).MulVec(R3(v))))
}
