package vmm

import "math"

// Dot returns the sum of the component wise products, accumulated in T.
func (v Vector[T, A]) Dot(other Vector[T, A]) T {
	var sum T
	for i := range len(v.data) {
		sum += v.data[i] * other.data[i]
	}

	return sum
}

func (v Vector[T, A]) LengthSqr() T {
	return v.Dot(v)
}

// Length returns the euclidean length of the vector. The square root is taken
// in float64, the result is truncated for integer vectors.
func (v Vector[T, A]) Length() T {
	return T(math.Sqrt(float64(v.LengthSqr())))
}

func (v Vector[T, A]) Distance(other Vector[T, A]) T {
	return v.Sub(other).Length()
}

// Normalize divides each component by the length of the vector.
// A zero vector is not treated specially: float vectors become NaN and
// integer vectors panic with a division by zero.
func (v Vector[T, A]) Normalize() Vector[T, A] {
	return v.DivScalar(v.Length())
}

// Lerp interpolates linearly between v (t=0) and other (t=1).
func (v Vector[T, A]) Lerp(other Vector[T, A], t float64) Vector[T, A] {
	for i := range len(v.data) {
		a := float64(v.data[i])
		b := float64(other.data[i])
		v.data[i] = T(a + (b-a)*t)
	}

	return v
}

// Cross returns the right handed cross product of two 3d vectors.
func Cross[T Scalar](a, b Vec3[T]) Vec3[T] {
	return Vec3Of(
		a.data[1]*b.data[2]-a.data[2]*b.data[1],
		a.data[2]*b.data[0]-a.data[0]*b.data[2],
		a.data[0]*b.data[1]-a.data[1]*b.data[0],
	)
}
