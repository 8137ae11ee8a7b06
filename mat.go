package vmm

import (
	"fmt"
	"math"
	"strings"

	"github.com/oliverbestmann/vmm/internal/assert"
)

type Mat2[T Scalar] = Matrix[T, [2]T, [2]Vec2[T]]
type Mat3[T Scalar] = Matrix[T, [3]T, [3]Vec3[T]]
type Mat4[T Scalar] = Matrix[T, [4]T, [4]Vec4[T]]

type Mat2f = Mat2[float32]
type Mat3f = Mat3[float32]
type Mat4f = Mat4[float32]

type Mat2d = Mat2[float64]
type Mat3d = Mat3[float64]
type Mat4d = Mat4[float64]

// Matrix describes a square matrix in row major order. Each row is
// a Vector. The zero value is a matrix of zeros.
//
// Use the aliases Mat2, Mat3 and Mat4 instead of spelling out the
// type parameters.
type Matrix[T Scalar, A Array[T], R RowArray[T, A]] struct {
	rows R
}

// The generic constructors are unexported: nothing ties the length of R to
// the length of A, so only the Mat2, Mat3 and Mat4 shapes are handed out.

func newMatrixWith[T Scalar, A Array[T], R RowArray[T, A]](value T) Matrix[T, A, R] {
	var m Matrix[T, A, R]
	m.Fill(value)
	return m
}

func matrixFromArrays[T Scalar, A Array[T], R RowArray[T, A]](what string, rows []A) Matrix[T, A, R] {
	var m Matrix[T, A, R]
	assert.HasLength(what, len(rows), m.Dim())

	for i := range rows {
		m.rows[i] = VectorFrom[T](rows[i])
	}

	return m
}

func identity[T Scalar, A Array[T], R RowArray[T, A]]() Matrix[T, A, R] {
	var m Matrix[T, A, R]
	for i := range m.Dim() {
		m.rows[i].data[i] = 1
	}

	return m
}

// Mat2With returns a matrix with every cell set to value.
func Mat2With[T Scalar](value T) Mat2[T] {
	return newMatrixWith[T, [2]T, [2]Vec2[T]](value)
}

func Mat3With[T Scalar](value T) Mat3[T] {
	return newMatrixWith[T, [3]T, [3]Vec3[T]](value)
}

func Mat4With[T Scalar](value T) Mat4[T] {
	return newMatrixWith[T, [4]T, [4]Vec4[T]](value)
}

// Mat2FromRows returns a matrix holding a copy of the given row vectors.
func Mat2FromRows[T Scalar](rows [2]Vec2[T]) Mat2[T] {
	return Mat2[T]{rows: rows}
}

func Mat3FromRows[T Scalar](rows [3]Vec3[T]) Mat3[T] {
	return Mat3[T]{rows: rows}
}

func Mat4FromRows[T Scalar](rows [4]Vec4[T]) Mat4[T] {
	return Mat4[T]{rows: rows}
}

// Mat2FromArrays converts each raw row into a Vector. It panics if the number
// of rows is not 2.
func Mat2FromArrays[T Scalar](rows [][2]T) Mat2[T] {
	return matrixFromArrays[T, [2]T, [2]Vec2[T]]("Mat2FromArrays", rows)
}

func Mat3FromArrays[T Scalar](rows [][3]T) Mat3[T] {
	return matrixFromArrays[T, [3]T, [3]Vec3[T]]("Mat3FromArrays", rows)
}

func Mat4FromArrays[T Scalar](rows [][4]T) Mat4[T] {
	return matrixFromArrays[T, [4]T, [4]Vec4[T]]("Mat4FromArrays", rows)
}

func Mat2Of[T Scalar](rows [2][2]T) Mat2[T] {
	return Mat2FromArrays(rows[:])
}

func Mat3Of[T Scalar](rows [3][3]T) Mat3[T] {
	return Mat3FromArrays(rows[:])
}

func Mat4Of[T Scalar](rows [4][4]T) Mat4[T] {
	return Mat4FromArrays(rows[:])
}

// Identity2 returns a matrix with ones on the main diagonal and zeros elsewhere.
func Identity2[T Scalar]() Mat2[T] {
	return identity[T, [2]T, [2]Vec2[T]]()
}

func Identity3[T Scalar]() Mat3[T] {
	return identity[T, [3]T, [3]Vec3[T]]()
}

func Identity4[T Scalar]() Mat4[T] {
	return identity[T, [4]T, [4]Vec4[T]]()
}

// Dim returns the number of rows, which equals the number of columns.
func (m Matrix[T, A, R]) Dim() int {
	n := len(m.rows)
	assert.IsSquare(n, m.rows[0].Len())
	return n
}

// Row returns a copy of row i. It panics if i is out of range.
func (m Matrix[T, A, R]) Row(i int) Vector[T, A] {
	return m.rows[i]
}

// Column returns a copy of column j. It panics if j is out of range.
func (m Matrix[T, A, R]) Column(j int) Vector[T, A] {
	var column Vector[T, A]
	for i := range m.Dim() {
		column.data[i] = m.rows[i].data[j]
	}

	return column
}

// At returns the value in row i and column j.
func (m Matrix[T, A, R]) At(i, j int) T {
	return m.rows[i].data[j]
}

// Get returns the value in row i and column j, or an error
// wrapping ErrIndexOutOfBounds.
func (m Matrix[T, A, R]) Get(i, j int) (T, error) {
	n := m.Dim()
	if i < 0 || i >= n || j < 0 || j >= n {
		var zero T
		return zero, fmt.Errorf("%w: cell (%d, %d), dimension %d", ErrIndexOutOfBounds, i, j, n)
	}

	return m.rows[i].data[j], nil
}

func (m *Matrix[T, A, R]) Set(i, j int, value T) {
	m.rows[i].data[j] = value
}

func (m *Matrix[T, A, R]) SetRow(i int, row Vector[T, A]) {
	m.rows[i] = row
}

// Rows returns the row vectors of the matrix.
func (m Matrix[T, A, R]) Rows() R {
	return m.rows
}

// RowsPtr returns a pointer to the row storage. Writes through the pointer
// update the matrix.
func (m *Matrix[T, A, R]) RowsPtr() *R {
	return &m.rows
}

// Arrays copies the matrix into raw rows.
func (m Matrix[T, A, R]) Arrays() []A {
	result := make([]A, m.Dim())
	for i := range result {
		result[i] = m.rows[i].data
	}

	return result
}

// Fill sets every cell to value.
func (m *Matrix[T, A, R]) Fill(value T) {
	for i := range m.Dim() {
		m.rows[i].Fill(value)
	}
}

func (m Matrix[T, A, R]) Transpose() Matrix[T, A, R] {
	result := m

	n := m.Dim()
	for i := range n {
		for j := range n {
			result.rows[i].data[j] = m.rows[j].data[i]
		}
	}

	return result
}

func (m Matrix[T, A, R]) Add(other Matrix[T, A, R]) Matrix[T, A, R] {
	for i := range m.Dim() {
		m.rows[i] = m.rows[i].Add(other.rows[i])
	}
	return m
}

func (m Matrix[T, A, R]) Sub(other Matrix[T, A, R]) Matrix[T, A, R] {
	for i := range m.Dim() {
		m.rows[i] = m.rows[i].Sub(other.rows[i])
	}
	return m
}

func (m Matrix[T, A, R]) AddScalar(scalar T) Matrix[T, A, R] {
	for i := range m.Dim() {
		m.rows[i] = m.rows[i].AddScalar(scalar)
	}
	return m
}

func (m Matrix[T, A, R]) SubScalar(scalar T) Matrix[T, A, R] {
	for i := range m.Dim() {
		m.rows[i] = m.rows[i].SubScalar(scalar)
	}
	return m
}

func (m Matrix[T, A, R]) MulScalar(scalar T) Matrix[T, A, R] {
	for i := range m.Dim() {
		m.rows[i] = m.rows[i].MulScalar(scalar)
	}
	return m
}

func (m Matrix[T, A, R]) DivScalar(scalar T) Matrix[T, A, R] {
	for i := range m.Dim() {
		m.rows[i] = m.rows[i].DivScalar(scalar)
	}
	return m
}

// Mul returns the matrix product m * other.
func (m Matrix[T, A, R]) Mul(other Matrix[T, A, R]) Matrix[T, A, R] {
	var result Matrix[T, A, R]

	n := m.Dim()
	for i := range n {
		for j := range n {
			var sum T
			for k := range n {
				sum += m.rows[i].data[k] * other.rows[k].data[j]
			}

			result.rows[i].data[j] = sum
		}
	}

	return result
}

// MulVec returns the matrix vector product m * vec.
func (m Matrix[T, A, R]) MulVec(vec Vector[T, A]) Vector[T, A] {
	var result Vector[T, A]
	for i := range m.Dim() {
		result.data[i] = m.rows[i].Dot(vec)
	}

	return result
}

// Determinant is computed by gaussian elimination in float64 for float
// matrices. Integer matrices use cofactor expansion in T, which is exact
// as long as T does not overflow.
func (m Matrix[T, A, R]) Determinant() T {
	n := m.Dim()

	if isInteger[T]() {
		var cells [4][4]T
		for i := range n {
			for j := range n {
				cells[i][j] = m.rows[i].data[j]
			}
		}

		columns := [4]int{0, 1, 2, 3}
		return cofactorDeterminant(&cells, 0, columns[:n])
	}

	var work [4][4]float64
	for i := range n {
		for j := range n {
			work[i][j] = float64(m.rows[i].data[j])
		}
	}

	det := 1.0
	for col := range n {
		pivot := pivotRow(work[:n], col)
		if work[pivot][col] == 0 {
			return 0
		}

		if pivot != col {
			work[pivot], work[col] = work[col], work[pivot]
			det = -det
		}

		det *= work[col][col]

		for row := col + 1; row < n; row++ {
			f := work[row][col] / work[col][col]
			for j := col; j < n; j++ {
				work[row][j] -= f * work[col][j]
			}
		}
	}

	return T(det)
}

// Inverse returns the inverse of the matrix.
// This method will panic if an inverse can not be calculated.
func (m Matrix[T, A, R]) Inverse() Matrix[T, A, R] {
	inverse, ok := m.TryInverse()
	if !ok {
		panic("matrix is not invertible")
	}

	return inverse
}

// TryInverse returns the inverse of the matrix if possible. It runs a
// gauss-jordan elimination with partial pivoting in float64.
func (m Matrix[T, A, R]) TryInverse() (inverse Matrix[T, A, R], ok bool) {
	n := m.Dim()

	// the matrix on the left, identity on the right
	var work [4][8]float64
	for i := range n {
		for j := range n {
			work[i][j] = float64(m.rows[i].data[j])
		}

		work[i][n+i] = 1
	}

	for col := range n {
		pivot := pivotRow(work[:n], col)
		if work[pivot][col] == 0 {
			return Matrix[T, A, R]{}, false
		}

		work[pivot], work[col] = work[col], work[pivot]

		f := 1 / work[col][col]
		for j := range 2 * n {
			work[col][j] *= f
		}

		for row := range n {
			g := work[row][col]
			if row == col || g == 0 {
				continue
			}

			for j := range 2 * n {
				work[row][j] -= g * work[col][j]
			}
		}
	}

	for i := range n {
		for j := range n {
			inverse.rows[i].data[j] = T(work[i][n+j])
		}
	}

	return inverse, true
}

// cofactorDeterminant expands the minor made of the rows starting at row
// and the given columns along its first row.
func cofactorDeterminant[T Scalar](cells *[4][4]T, row int, columns []int) T {
	if len(columns) == 1 {
		return cells[row][columns[0]]
	}

	var det T
	var sign T = 1

	var buf [4]int
	for idx, col := range columns {
		minor := append(append(buf[:0], columns[:idx]...), columns[idx+1:]...)
		det += sign * cells[row][col] * cofactorDeterminant(cells, row+1, minor)
		sign = -sign
	}

	return det
}

func isInteger[T Scalar]() bool {
	half := 0.5
	return T(half) == 0
}

// pivotRow finds the row at or below col with the largest absolute value in column col.
func pivotRow[W [4]float64 | [8]float64](work []W, col int) int {
	pivot := col
	for row := col + 1; row < len(work); row++ {
		if math.Abs(work[row][col]) > math.Abs(work[pivot][col]) {
			pivot = row
		}
	}

	return pivot
}

func (m Matrix[T, A, R]) Equal(other Matrix[T, A, R]) bool {
	return m.rows == other.rows
}

// ApproxEqual reports whether all cells differ by at most epsilon.
func (m Matrix[T, A, R]) ApproxEqual(other Matrix[T, A, R], epsilon float64) bool {
	for i := range m.Dim() {
		if !m.rows[i].ApproxEqual(other.rows[i], epsilon) {
			return false
		}
	}

	return true
}

func (m Matrix[T, A, R]) String() string {
	var sb strings.Builder

	sb.WriteString("mat(")
	for i := range m.Dim() {
		if i > 0 {
			sb.WriteString(", ")
		}

		sb.WriteString(m.rows[i].String())
	}
	sb.WriteString(")")

	return sb.String()
}
