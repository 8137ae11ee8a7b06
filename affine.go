package vmm

import "math"

// Translation2D returns a 2d affine transform that moves points by offset.
func Translation2D[T Scalar](offset Vec2[T]) Mat3[T] {
	m := Identity3[T]()
	m.rows[0].data[2] = offset.data[0]
	m.rows[1].data[2] = offset.data[1]
	return m
}

// Rotation2D returns a 2d affine transform that rotates points
// counter-clockwise around the origin.
func Rotation2D[T Scalar](angle Rad) Mat3[T] {
	sin, cos := math.Sincos(float64(angle))

	m := Identity3[T]()
	m.rows[0].data[0] = T(cos)
	m.rows[0].data[1] = T(-sin)
	m.rows[1].data[0] = T(sin)
	m.rows[1].data[1] = T(cos)
	return m
}

// Scaling2D returns a 2d affine transform that scales points along the axes.
func Scaling2D[T Scalar](scale Vec2[T]) Mat3[T] {
	m := Identity3[T]()
	m.rows[0].data[0] = scale.data[0]
	m.rows[1].data[1] = scale.data[1]
	return m
}

// Translate2D applies a translation before the transformation m.
func Translate2D[T Scalar](m Mat3[T], offset Vec2[T]) Mat3[T] {
	return m.Mul(Translation2D(offset))
}

// Rotate2D applies a rotation before the transformation m.
func Rotate2D[T Scalar](m Mat3[T], angle Rad) Mat3[T] {
	return m.Mul(Rotation2D[T](angle))
}

// Scale2D applies a scaling before the transformation m.
func Scale2D[T Scalar](m Mat3[T], scale Vec2[T]) Mat3[T] {
	return m.Mul(Scaling2D(scale))
}

// TransformPoint2D applies the affine transformation to the given point.
func TransformPoint2D[T Scalar](m Mat3[T], point Vec2[T]) Vec2[T] {
	return Truncate3(m.MulVec(Extend2(point, 1)))
}

// TransformVector2D applies the transformation to a vector. Other than
// TransformPoint2D, the translation part of m is ignored.
func TransformVector2D[T Scalar](m Mat3[T], vec Vec2[T]) Vec2[T] {
	return Truncate3(m.MulVec(Extend2(vec, 0)))
}

// Translation3D returns a 3d affine transform that moves points by offset.
func Translation3D[T Scalar](offset Vec3[T]) Mat4[T] {
	m := Identity4[T]()
	m.rows[0].data[3] = offset.data[0]
	m.rows[1].data[3] = offset.data[1]
	m.rows[2].data[3] = offset.data[2]
	return m
}

// Scaling3D returns a 3d affine transform that scales points along the axes.
func Scaling3D[T Scalar](scale Vec3[T]) Mat4[T] {
	m := Identity4[T]()
	m.rows[0].data[0] = scale.data[0]
	m.rows[1].data[1] = scale.data[1]
	m.rows[2].data[2] = scale.data[2]
	return m
}

// RotationX returns a rotation around the x axis.
func RotationX[T Scalar](angle Rad) Mat4[T] {
	return rotationIn[T](1, 2, angle)
}

// RotationY returns a rotation around the y axis.
func RotationY[T Scalar](angle Rad) Mat4[T] {
	return rotationIn[T](2, 0, angle)
}

// RotationZ returns a rotation around the z axis.
func RotationZ[T Scalar](angle Rad) Mat4[T] {
	return rotationIn[T](0, 1, angle)
}

// rotationIn rotates the plane spanned by the axes a and b, turning a towards b.
func rotationIn[T Scalar](a, b int, angle Rad) Mat4[T] {
	sin, cos := math.Sincos(float64(angle))

	m := Identity4[T]()
	m.rows[a].data[a] = T(cos)
	m.rows[a].data[b] = T(-sin)
	m.rows[b].data[a] = T(sin)
	m.rows[b].data[b] = T(cos)
	return m
}

// RotationXYZ returns the euler rotation Rx * Ry * Rz. The rotation around
// each axis is angle weighted by the matching component of weights, computed
// in float64.
func RotationXYZ[T Scalar](angle Rad, weights Vec3[T]) Mat4[T] {
	rx := RotationX[T](Rad(float64(weights.data[0]) * float64(angle)))
	ry := RotationY[T](Rad(float64(weights.data[1]) * float64(angle)))
	rz := RotationZ[T](Rad(float64(weights.data[2]) * float64(angle)))
	return rx.Mul(ry).Mul(rz)
}

// Rotation3D returns a rotation by angle around the given axis, following the
// right hand rule. The axis does not need to be normalized.
func Rotation3D[T Scalar](angle Rad, axis Vec3[T]) Mat4[T] {
	x, y, z := float64(axis.data[0]), float64(axis.data[1]), float64(axis.data[2])

	length := math.Sqrt(x*x + y*y + z*z)
	x, y, z = x/length, y/length, z/length

	sin, cos := math.Sincos(float64(angle))
	t := 1 - cos

	return Mat4Of([4][4]T{
		{T(t*x*x + cos), T(t*x*y - sin*z), T(t*x*z + sin*y), 0},
		{T(t*x*y + sin*z), T(t*y*y + cos), T(t*y*z - sin*x), 0},
		{T(t*x*z - sin*y), T(t*y*z + sin*x), T(t*z*z + cos), 0},
		{0, 0, 0, 1},
	})
}

// Translate3D applies a translation before the transformation m.
func Translate3D[T Scalar](m Mat4[T], offset Vec3[T]) Mat4[T] {
	return m.Mul(Translation3D(offset))
}

// Rotate3D applies an axis-angle rotation before the transformation m.
func Rotate3D[T Scalar](m Mat4[T], angle Rad, axis Vec3[T]) Mat4[T] {
	return m.Mul(Rotation3D(angle, axis))
}

// RotateXYZ applies an euler rotation before the transformation m.
func RotateXYZ[T Scalar](m Mat4[T], angle Rad, weights Vec3[T]) Mat4[T] {
	return m.Mul(RotationXYZ(angle, weights))
}

// Scale3D applies a scaling before the transformation m.
func Scale3D[T Scalar](m Mat4[T], scale Vec3[T]) Mat4[T] {
	return m.Mul(Scaling3D(scale))
}

// TransformPoint3D applies the affine transformation to the given point.
func TransformPoint3D[T Scalar](m Mat4[T], point Vec3[T]) Vec3[T] {
	return Truncate4(m.MulVec(Extend3(point, 1)))
}

// TransformVector3D applies the transformation to a vector, ignoring
// the translation part of m.
func TransformVector3D[T Scalar](m Mat4[T], vec Vec3[T]) Vec3[T] {
	return Truncate4(m.MulVec(Extend3(vec, 0)))
}
