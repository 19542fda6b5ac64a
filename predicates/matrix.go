// Package predicates: internal complex-matrix helpers.  Kept private on
// purpose — the public surface of this package is predicates only.
package predicates

import "math/cmplx"

// shape returns (rows, cols, ok); ok is false for ragged input.  A 0×0
// matrix is a valid shape with rows == cols == 0.
func shape(m [][]complex128) (int, int, bool) {
	rows := len(m)
	if rows == 0 {
		return 0, 0, true
	}
	cols := len(m[0])
	for _, row := range m {
		if len(row) != cols {
			return 0, 0, false
		}
	}
	return rows, cols, true
}

// square reports m being square (including 0×0) and returns its size.
func square(m [][]complex128) (int, bool) {
	r, c, ok := shape(m)
	if !ok || r != c {
		return 0, false
	}
	return r, true
}

// eye returns the n×n identity.
func eye(n int) [][]complex128 {
	out := newMatrix(n, n)
	for i := 0; i < n; i++ {
		out[i][i] = 1
	}
	return out
}

func newMatrix(r, c int) [][]complex128 {
	out := make([][]complex128, r)
	for i := range out {
		out[i] = make([]complex128, c)
	}
	return out
}

// mul returns a·b for conformable matrices; callers validate shapes first.
func mul(a, b [][]complex128) [][]complex128 {
	n, k, m := len(a), len(b), 0
	if k > 0 {
		m = len(b[0])
	}
	out := newMatrix(n, m)
	for i := 0; i < n; i++ {
		for l := 0; l < k; l++ {
			av := a[i][l]
			if av == 0 {
				continue
			}
			for j := 0; j < m; j++ {
				out[i][j] += av * b[l][j]
			}
		}
	}
	return out
}

// adjoint returns the conjugate transpose.
func adjoint(m [][]complex128) [][]complex128 {
	r, c, _ := shape(m)
	out := newMatrix(c, r)
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			out[j][i] = cmplx.Conj(m[i][j])
		}
	}
	return out
}

// add returns a+b for equal shapes.
func add(a, b [][]complex128) [][]complex128 {
	r, c, _ := shape(a)
	out := newMatrix(r, c)
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			out[i][j] = a[i][j] + b[i][j]
		}
	}
	return out
}

// allClose reports entrywise |a−b| ≤ atol + rtol·|b| over equal shapes.
func allClose(a, b [][]complex128, tol Tolerance) bool {
	ra, ca, oka := shape(a)
	rb, cb, okb := shape(b)
	if !oka || !okb || ra != rb || ca != cb {
		return false
	}
	for i := 0; i < ra; i++ {
		for j := 0; j < ca; j++ {
			if cmplx.Abs(a[i][j]-b[i][j]) > tol.Atol+tol.Rtol*cmplx.Abs(b[i][j]) {
				return false
			}
		}
	}
	return true
}

// closeTo reports |a−b| ≤ atol + rtol·|b| for scalars.
func closeTo(a, b complex128, tol Tolerance) bool {
	return cmplx.Abs(a-b) <= tol.Atol+tol.Rtol*cmplx.Abs(b)
}

// det computes the determinant by LU decomposition with partial pivoting
// (largest-modulus pivot per column; each row swap flips the sign).  The
// determinant of a 0×0 matrix is 1 by convention.
//
// Complexity: O(n³).
func det(m [][]complex128) complex128 {
	n := len(m)
	if n == 0 {
		return 1
	}
	// Work on a copy; the elimination is destructive.
	a := newMatrix(n, n)
	for i := range m {
		copy(a[i], m[i])
	}
	result := complex128(1)
	for col := 0; col < n; col++ {
		pivot := col
		for r := col + 1; r < n; r++ {
			if cmplx.Abs(a[r][col]) > cmplx.Abs(a[pivot][col]) {
				pivot = r
			}
		}
		if a[pivot][col] == 0 {
			return 0
		}
		if pivot != col {
			a[pivot], a[col] = a[col], a[pivot]
			result = -result
		}
		result *= a[col][col]
		for r := col + 1; r < n; r++ {
			f := a[r][col] / a[col][col]
			if f == 0 {
				continue
			}
			for c := col; c < n; c++ {
				a[r][c] -= f * a[col][c]
			}
		}
	}
	return result
}
