package vmm

import (
	"encoding/binary"
	"math"
	"testing"
	"unsafe"

	"github.com/stretchr/testify/require"
)

func TestLayout(t *testing.T) {
	require.EqualValues(t, 12, unsafe.Sizeof(Vec3f{}))
	require.EqualValues(t, 32, unsafe.Sizeof(Vec4d{}))
	require.EqualValues(t, 64, unsafe.Sizeof(Mat4f{}))
	require.EqualValues(t, 72, unsafe.Sizeof(Mat3d{}))
}

func TestVector_Bytes(t *testing.T) {
	v := Vec3Of[float32](1, 2, 3)

	buf := v.Bytes()
	require.Len(t, buf, 12)
	require.Equal(t, float32(2), math.Float32frombits(binary.NativeEndian.Uint32(buf[4:8])))

	// the slice aliases the vector
	binary.NativeEndian.PutUint32(buf[8:12], math.Float32bits(5))
	require.Equal(t, float32(5), v.At(2))
}

func TestMatrix_Bytes(t *testing.T) {
	m := Identity4[float32]()

	buf := m.Bytes()
	require.Len(t, buf, 64)

	// row major: the second value of the second row is the 6th float
	require.Equal(t, float32(1), math.Float32frombits(binary.NativeEndian.Uint32(buf[20:24])))
	require.Equal(t, float32(0), math.Float32frombits(binary.NativeEndian.Uint32(buf[24:28])))
}

func TestVectorsAsScalars(t *testing.T) {
	vectors := []Vec3f{
		Vec3Of[float32](1, 2, 3),
		Vec3Of[float32](4, 5, 6),
	}

	scalars := VectorsAsScalars(vectors)
	require.Equal(t, []float32{1, 2, 3, 4, 5, 6}, scalars)

	scalars[4] = 50
	require.Equal(t, float32(50), vectors[1].At(1))

	require.Empty(t, VectorsAsScalars[float32, [3]float32](nil))
}

func TestBytesAsVectors(t *testing.T) {
	vectors := []Vec2d{Vec2Of(1.0, 2.0), Vec2Of(3.0, 4.0)}

	buf := VectorsAsBytes(vectors)
	require.Len(t, buf, 32)
	require.Equal(t, vectors, BytesAsVectors[float64, [2]float64](buf))

	// trailing bytes are ignored
	require.Len(t, BytesAsVectors[float64, [2]float64](buf[:24]), 1)

	require.Panics(t, func() {
		raw := make([]byte, 64)
		BytesAsVectors[float64, [2]float64](raw[1:])
	})
}
