// Package vmm provides fixed size vectors and square matrices over any
// signed integer or floating point scalar type.
//
// A Vector stores its N components in a plain array and a Matrix stores N
// row vectors, so both are value types without hidden state. Use the
// dimension aliases Vec2, Vec3, Vec4 and Mat2, Mat3, Mat4 to name them.
//
// Mat3 doubles as a 2d affine transformation and Mat4 as a 3d affine
// transformation, see Translate2D, Rotate2D, Scale2D and their 3d
// counterparts. Angles are passed as Rad.
package vmm
