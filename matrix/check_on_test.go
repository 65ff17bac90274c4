//go:build fdmcheck

package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// TestCheckedAccessorsPanic runs only under -tags fdmcheck.
func TestCheckedAccessorsPanic(t *testing.T) {
	m := mustDense(t, 2, 3)

	require.PanicsWithValue(t, "matrix: Dense row subscript 2 out of range [0,2)", func() { m.Elem(2, 0) })
	require.PanicsWithValue(t, "matrix: Dense col subscript 3 out of range [0,3)", func() { m.SetElem(0, 3, 1) })
	require.PanicsWithValue(t, "matrix: Dense flat index 6 out of range [0,6)", func() { m.Index(6) })
	require.PanicsWithValue(t, "matrix: Dense row subscript -1 out of range [0,2)", func() { m.Row(-1) })

	v, err := m.View(0, 0, 1, 2)
	require.NoError(t, err)
	require.PanicsWithValue(t, "matrix: MatrixView col subscript 2 out of range [0,2)", func() { v.Elem(0, 2) })
	require.PanicsWithValue(t, "matrix: MatrixView flat index 2 out of range [0,2)", func() { v.Index(2) })
}
