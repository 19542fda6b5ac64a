package predicates

import "math/cmplx"

// MatrixCommutes determines whether two matrices approximately commute:
// both square, same size, and AB = BA within tolerance.
func MatrixCommutes(m1, m2 [][]complex128, tol Tolerance) bool {
	n1, ok1 := square(m1)
	n2, ok2 := square(m2)
	if !ok1 || !ok2 || n1 != n2 {
		return false
	}
	return allClose(mul(m1, m2), mul(m2, m1), tol)
}

// IsDiagonal determines whether a matrix is approximately diagonal: every
// off-diagonal entry is within Atol of zero.  Applies to rectangular
// matrices as well.
func IsDiagonal(m [][]complex128, tol Tolerance) bool {
	r, c, ok := shape(m)
	if !ok {
		return false
	}
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			if i != j && cmplx.Abs(m[i][j]) > tol.Atol {
				return false
			}
		}
	}
	return true
}

// IsHermitian determines whether a matrix is approximately Hermitian:
// square and equal to its own adjoint within tolerance.
func IsHermitian(m [][]complex128, tol Tolerance) bool {
	if _, ok := square(m); !ok {
		return false
	}
	return allClose(m, adjoint(m), tol)
}

// IsNormal determines whether a matrix is approximately normal: square and
// commuting with its adjoint.
func IsNormal(m [][]complex128, tol Tolerance) bool {
	if _, ok := square(m); !ok {
		return false
	}
	return MatrixCommutes(m, adjoint(m), tol)
}

// IsOrthogonal determines whether a matrix is approximately orthogonal:
// square, real, with its transpose as inverse.
func IsOrthogonal(m [][]complex128, tol Tolerance) bool {
	n, ok := square(m)
	if !ok {
		return false
	}
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if imag(m[i][j]) != 0 {
				return false
			}
		}
	}
	return allClose(mul(m, transpose(m)), eye(n), tol)
}

// IsSpecialOrthogonal determines whether a matrix is approximately special
// orthogonal: orthogonal with determinant one.  A 0×0 matrix qualifies
// vacuously (empty determinant is 1).
func IsSpecialOrthogonal(m [][]complex128, tol Tolerance) bool {
	if !IsOrthogonal(m, tol) {
		return false
	}
	return len(m) == 0 || closeTo(det(m), 1, tol)
}

// IsUnitary determines whether a matrix is approximately unitary: square
// with its adjoint as inverse.
func IsUnitary(m [][]complex128, tol Tolerance) bool {
	n, ok := square(m)
	if !ok {
		return false
	}
	return allClose(mul(m, adjoint(m)), eye(n), tol)
}

// IsSpecialUnitary determines whether a matrix is approximately unitary
// with unit determinant.  A 0×0 matrix qualifies vacuously.
func IsSpecialUnitary(m [][]complex128, tol Tolerance) bool {
	if !IsUnitary(m, tol) {
		return false
	}
	return len(m) == 0 || closeTo(det(m), 1, tol)
}

// IsCPTP determines whether the channel with the given Kraus operators is
// completely positive and trace preserving: Σ Kᵢ† Kᵢ = I within tolerance.
// All operators must share one square shape.
func IsCPTP(krausOps [][][]complex128, tol Tolerance) bool {
	if len(krausOps) == 0 {
		return false
	}
	n, ok := square(krausOps[0])
	if !ok {
		return false
	}
	sum := newMatrix(n, n)
	for _, k := range krausOps {
		kn, ok := square(k)
		if !ok || kn != n {
			return false
		}
		sum = add(sum, mul(adjoint(k), k))
	}
	return allClose(sum, eye(n), tol)
}

// transpose returns the plain (non-conjugated) transpose.
func transpose(m [][]complex128) [][]complex128 {
	r, c, _ := shape(m)
	out := newMatrix(c, r)
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			out[j][i] = m[i][j]
		}
	}
	return out
}
