package predicates_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/cycles/predicates"
)

var tol = predicates.DefaultTolerance()

// Common fixtures: the Pauli matrices and a few structured matrices.
var (
	identity2 = [][]complex128{
		{1, 0},
		{0, 1},
	}
	pauliX = [][]complex128{
		{0, 1},
		{1, 0},
	}
	pauliY = [][]complex128{
		{0, -1i},
		{1i, 0},
	}
	pauliZ = [][]complex128{
		{1, 0},
		{0, -1},
	}
	ragged = [][]complex128{
		{1, 0},
		{0},
	}
	rect = [][]complex128{
		{1, 0, 0},
		{0, 1, 0},
	}
)

// rotation2 returns the planar rotation by angle theta.
func rotation2(theta float64) [][]complex128 {
	c, s := math.Cos(theta), math.Sin(theta)
	return [][]complex128{
		{complex(c, 0), complex(-s, 0)},
		{complex(s, 0), complex(c, 0)},
	}
}

// TestMatrixCommutes: a matrix commutes with itself and with the identity;
// distinct Pauli matrices anticommute, hence do not commute.
func TestMatrixCommutes(t *testing.T) {
	assert.True(t, predicates.MatrixCommutes(pauliX, pauliX, tol))
	assert.True(t, predicates.MatrixCommutes(pauliZ, identity2, tol))
	assert.False(t, predicates.MatrixCommutes(pauliX, pauliZ, tol))
	assert.False(t, predicates.MatrixCommutes(pauliY, pauliZ, tol))
}

// TestMatrixCommutes_ShapeMismatch: size mismatch, rectangular and ragged
// inputs are all negative results, never panics.
func TestMatrixCommutes_ShapeMismatch(t *testing.T) {
	three := [][]complex128{
		{1, 0, 0},
		{0, 1, 0},
		{0, 0, 1},
	}
	assert.False(t, predicates.MatrixCommutes(identity2, three, tol))
	assert.False(t, predicates.MatrixCommutes(rect, rect, tol))
	assert.False(t, predicates.MatrixCommutes(ragged, ragged, tol))
}

// TestIsDiagonal: Z is diagonal, X is not; rectangular matrices are judged
// on their off-diagonal entries; near-zero noise under Atol passes.
func TestIsDiagonal(t *testing.T) {
	assert.True(t, predicates.IsDiagonal(pauliZ, tol))
	assert.False(t, predicates.IsDiagonal(pauliX, tol))
	assert.True(t, predicates.IsDiagonal(rect, tol))

	noisy := [][]complex128{
		{1, 1e-12},
		{0, 2},
	}
	assert.True(t, predicates.IsDiagonal(noisy, tol))
	assert.False(t, predicates.IsDiagonal(ragged, tol))
}

// TestIsHermitian: every Pauli matrix is Hermitian; i·I is normal and
// diagonal but not Hermitian.
func TestIsHermitian(t *testing.T) {
	assert.True(t, predicates.IsHermitian(pauliX, tol))
	assert.True(t, predicates.IsHermitian(pauliY, tol))
	assert.True(t, predicates.IsHermitian(pauliZ, tol))

	iI := [][]complex128{
		{1i, 0},
		{0, 1i},
	}
	assert.False(t, predicates.IsHermitian(iI, tol))
	assert.True(t, predicates.IsDiagonal(iI, tol))
	assert.True(t, predicates.IsNormal(iI, tol))

	assert.False(t, predicates.IsHermitian(rect, tol))
}

// TestIsNormal: Hermitian and unitary matrices are normal; a Jordan block
// is the canonical non-normal matrix.
func TestIsNormal(t *testing.T) {
	assert.True(t, predicates.IsNormal(pauliY, tol))
	assert.True(t, predicates.IsNormal(identity2, tol))

	jordan := [][]complex128{
		{0, 1},
		{0, 0},
	}
	assert.False(t, predicates.IsNormal(jordan, tol))
}

// TestIsOrthogonal: rotations are orthogonal; Y has complex entries so it
// fails the real check even though it is unitary.
func TestIsOrthogonal(t *testing.T) {
	assert.True(t, predicates.IsOrthogonal(rotation2(0.7), tol))
	assert.True(t, predicates.IsOrthogonal(pauliX, tol))
	assert.False(t, predicates.IsOrthogonal(pauliY, tol))

	scaled := [][]complex128{
		{2, 0},
		{0, 2},
	}
	assert.False(t, predicates.IsOrthogonal(scaled, tol))
}

// TestIsSpecialOrthogonal: rotations have determinant one; a reflection
// (X) has determinant -1; the empty matrix qualifies vacuously.
func TestIsSpecialOrthogonal(t *testing.T) {
	assert.True(t, predicates.IsSpecialOrthogonal(rotation2(1.3), tol))
	assert.False(t, predicates.IsSpecialOrthogonal(pauliX, tol))
	assert.True(t, predicates.IsSpecialOrthogonal([][]complex128{}, tol))
}

// TestIsUnitary: all Pauli matrices are unitary; scaling breaks unitarity;
// shape defects are negative results.
func TestIsUnitary(t *testing.T) {
	assert.True(t, predicates.IsUnitary(identity2, tol))
	assert.True(t, predicates.IsUnitary(pauliX, tol))
	assert.True(t, predicates.IsUnitary(pauliY, tol))

	halfX := [][]complex128{
		{0, 0.5},
		{0.5, 0},
	}
	assert.False(t, predicates.IsUnitary(halfX, tol))
	assert.False(t, predicates.IsUnitary(rect, tol))
	assert.False(t, predicates.IsUnitary(ragged, tol))
}

// TestIsSpecialUnitary: X and Z are unitary with determinant -1, so they
// are excluded; iX has determinant 1 and qualifies.
func TestIsSpecialUnitary(t *testing.T) {
	assert.True(t, predicates.IsSpecialUnitary(identity2, tol))
	assert.False(t, predicates.IsSpecialUnitary(pauliX, tol))
	assert.False(t, predicates.IsSpecialUnitary(pauliZ, tol))

	iX := [][]complex128{
		{0, 1i},
		{1i, 0},
	}
	assert.True(t, predicates.IsSpecialUnitary(iX, tol))
	assert.True(t, predicates.IsSpecialUnitary([][]complex128{}, tol))
}

// TestIsCPTP: a single unitary Kraus operator is a channel; the
// depolarizing-style Pauli mixture with weights 1/2 each on I and X is a
// channel; dropping normalization breaks trace preservation.
func TestIsCPTP(t *testing.T) {
	assert.True(t, predicates.IsCPTP([][][]complex128{identity2}, tol))

	w := complex(math.Sqrt(0.5), 0)
	mix := [][][]complex128{
		{{w, 0}, {0, w}},
		{{0, w}, {w, 0}},
	}
	assert.True(t, predicates.IsCPTP(mix, tol))

	assert.False(t, predicates.IsCPTP([][][]complex128{pauliX, pauliX}, tol))
	assert.False(t, predicates.IsCPTP(nil, tol))
	assert.False(t, predicates.IsCPTP([][][]complex128{identity2, rect}, tol))
}

// TestTolerance_Zero: the zero tolerance compares exactly.
func TestTolerance_Zero(t *testing.T) {
	exact := predicates.Tolerance{}
	assert.True(t, predicates.IsUnitary(identity2, exact))

	offByEps := [][]complex128{
		{1 + 1e-12, 0},
		{0, 1},
	}
	assert.False(t, predicates.IsUnitary(offByEps, exact))
	assert.True(t, predicates.IsUnitary(offByEps, tol))
}
