package regression

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDiagnostics(t *testing.T) {
	tol := 1e-6
	m := specModel(t)

	rows, err := m.Diagnostics()
	require.Nil(t, err)
	require.Len(t, rows, 5)

	expectedLeverage := []float64{0.6, 0.3, 0.2, 0.3, 0.6}
	expectedStdRes := []float64{-1.4142136, 0.8017837, 1.25, -0.8017837, -0.3535534}

	for i, row := range rows {
		assert.Equal(t, float64(i+1), row.X)
		assert.InDelta(t, expectedLeverage[i], row.Leverage, tol)
		assert.InDelta(t, expectedStdRes[i], row.StdResidual, tol)
		assert.InDelta(t, row.Y-row.Fitted, row.Residual, tol)
	}
}

func TestDiagnosticsPerfectFit(t *testing.T) {
	tbl := testTable(t,
		[]float64{3, 5, 7, 9},
		[]float64{1, 2, 3, 4},
	)
	m, err := Fit(tbl, "y", "x")
	require.Nil(t, err)
	require.Equal(t, 0.0, m.ResidualStdErr())

	rows, err := m.Diagnostics()
	require.Nil(t, err)
	for _, row := range rows {
		assert.Equal(t, 0.0, row.Residual)
		assert.Equal(t, 0.0, row.StdResidual)
	}
}

func TestDiagnosticsLeverageSum(t *testing.T) {
	// leverages of a simple linear model sum to the number of coefficients
	tbl := testTable(t,
		[]float64{4.2, 4.9, 7.1, 6.8, 9.3, 10.4, 12.0},
		[]float64{0.5, 1.0, 2.5, 3.0, 4.5, 5.0, 6.5},
	)
	m, err := Fit(tbl, "y", "x")
	require.Nil(t, err)

	rows, err := m.Diagnostics()
	require.Nil(t, err)

	var sum float64
	for _, row := range rows {
		sum += row.Leverage
	}
	assert.InDelta(t, 2.0, sum, 1e-10)
}
