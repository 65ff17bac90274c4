// SPDX-License-Identifier: MIT
// Package matrix: dense Doolittle LU without pivoting.
//
// The factorisation skips pivoting exactly like Tridag, so on a tridiagonal
// matrix it performs the same eliminations and serves as its dense reference.

package matrix

// Operation tags for the dense solver.
const (
	opLU      = "LU"
	opLUSolve = "LUSolve"
)

// LU performs Doolittle LU decomposition on a square matrix m.
// It returns L (unit lower triangular) and U (upper triangular) matrices.
// No pivoting: a zero pivot yields ±Inf/NaN entries, as in Tridag.
//
// Errors: ErrNilMatrix, ErrDimensionMismatch (non-square).
// Complexity: Time O(n³), Space O(n²) for L and U.
func LU[T Real](m *Dense[T]) (l, u *Dense[T], err error) {
	// Stage 1: Validate input is square
	if m == nil {
		return nil, nil, matrixErrorf(opLU, ErrNilMatrix)
	}
	if m.r != m.c {
		return nil, nil, matrixErrorf(opLU, ErrDimensionMismatch)
	}
	n := m.r

	// Stage 2: Prepare L (unit diagonal) and U
	l, _ = NewDense[T](n, n)
	u, _ = NewDense[T](n, n)
	var i, j, k int
	for i = 0; i < n; i++ {
		l.data[i*n+i] = 1
	}

	// Stage 3: row i of U, then column i of L
	var sum T
	for i = 0; i < n; i++ {
		for j = i; j < n; j++ {
			sum = ZeroSum
			for k = 0; k < i; k++ {
				sum += l.data[i*n+k] * u.data[k*n+j]
			}
			u.data[i*n+j] = m.data[i*n+j] - sum
		}
		for j = i + 1; j < n; j++ {
			sum = ZeroSum
			for k = 0; k < i; k++ {
				sum += l.data[j*n+k] * u.data[k*n+i]
			}
			l.data[j*n+i] = (m.data[j*n+i] - sum) / u.data[i*n+i]
		}
	}

	return l, u, nil
}

// LUSolve solves L·U·x = b by forward then backward substitution.
// x may alias b.
//
// Errors: ErrNilMatrix, ErrDimensionMismatch.
// Complexity: O(n²).
func LUSolve[T Real](l, u *Dense[T], b, x []T) error {
	if l == nil || u == nil {
		return matrixErrorf(opLUSolve, ErrNilMatrix)
	}
	n := l.r
	if l.c != n || u.r != n || u.c != n {
		return matrixErrorf(opLUSolve, ErrDimensionMismatch)
	}
	if err := ValidateVecLen(b, n); err != nil {
		return matrixErrorf(opLUSolve, err)
	}
	if err := ValidateVecLen(x, n); err != nil {
		return matrixErrorf(opLUSolve, err)
	}

	var i, k int
	var sum T
	// L·y = b (unit diagonal)
	for i = 0; i < n; i++ {
		sum = b[i]
		for k = 0; k < i; k++ {
			sum -= l.data[i*n+k] * x[k]
		}
		x[i] = sum
	}
	// U·x = y
	for i = n - 1; i >= 0; i-- {
		sum = x[i]
		for k = i + 1; k < n; k++ {
			sum -= u.data[i*n+k] * x[k]
		}
		x[i] = sum / u.data[i*n+i]
	}

	return nil
}
