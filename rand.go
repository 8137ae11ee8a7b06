package vmm

import (
	"math"
	"math/rand/v2"

	"golang.org/x/exp/constraints"
)

// RandomIn returns a random value uniformly sampled from the given range, excluding max.
func RandomIn[S Scalar](min, max S) S {
	return S(rand.Float64()*(float64(max)-float64(min))) + min
}

// RandomAngle returns a random angle uniformly sampled from the full circle
func RandomAngle() Rad {
	return Rad(RandomIn(0, 2*math.Pi))
}

// RandomVec returns a vector uniformly sampled from within the unit ball.
// Only float vectors are supported, integer components would always be zero.
func RandomVec[T constraints.Float, A Array[T]]() Vector[T, A] {
	for {
		var v Vector[T, A]
		for i := range v.Len() {
			v.data[i] = T(RandomIn(-1.0, 1.0))
		}

		if v.LengthSqr() <= 1 {
			return v
		}
	}
}

func RandomVec2[T constraints.Float]() Vec2[T] {
	return RandomVec[T, [2]T]()
}

func RandomVec3[T constraints.Float]() Vec3[T] {
	return RandomVec[T, [3]T]()
}
