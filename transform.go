package vmm

// Transform2D describes a 2d placement by its translation, rotation and scale.
// The scale is applied first, then the rotation, then the translation.
type Transform2D[T Scalar] struct {
	Translation Vec2[T]
	Rotation    Rad
	Scale       Vec2[T]
}

func NewTransform2D[T Scalar]() Transform2D[T] {
	return Transform2D[T]{
		Scale: NewVectorWith[T, [2]T](1),
	}
}

func TransformFromXY[T Scalar](x, y T) Transform2D[T] {
	return NewTransform2D[T]().WithTranslation(Vec2Of(x, y))
}

func (t Transform2D[T]) WithTranslation(translation Vec2[T]) Transform2D[T] {
	t.Translation = translation
	return t
}

func (t Transform2D[T]) WithRotation(rotation Rad) Transform2D[T] {
	t.Rotation = rotation
	return t
}

func (t Transform2D[T]) WithScale(scale Vec2[T]) Transform2D[T] {
	t.Scale = scale
	return t
}

// Matrix returns the homogeneous matrix of this transform.
func (t Transform2D[T]) Matrix() Mat3[T] {
	m := Translation2D(t.Translation)
	m = Rotate2D(m, t.Rotation)
	m = Scale2D(m, t.Scale)
	return m
}

// Transform3D describes a 3d placement by its translation, axis-angle rotation and scale.
type Transform3D[T Scalar] struct {
	Translation Vec3[T]
	Axis        Vec3[T]
	Angle       Rad
	Scale       Vec3[T]
}

func NewTransform3D[T Scalar]() Transform3D[T] {
	return Transform3D[T]{
		Axis:  Vec3Of[T](0, 0, 1),
		Scale: NewVectorWith[T, [3]T](1),
	}
}

func (t Transform3D[T]) Matrix() Mat4[T] {
	m := Translation3D(t.Translation)
	m = Rotate3D(m, t.Angle, t.Axis)
	m = Scale3D(m, t.Scale)
	return m
}
