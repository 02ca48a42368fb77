package regression

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func specModel(t *testing.T) *FittedModel {
	t.Helper()
	tbl := testTable(t,
		[]float64{1, 2, 3, 4, 5},
		[]float64{2, 4, 5, 4, 5},
	)
	m, err := Fit(tbl, "y", "x")
	require.Nil(t, err)
	return m
}

func TestCoefficients(t *testing.T) {
	tol := 1e-4
	m := specModel(t)

	coefs, err := m.Coefficients(0.95)
	require.Nil(t, err)
	require.Len(t, coefs, 2)

	intercept := coefs[0]
	assert.Equal(t, "intercept", intercept.Name)
	assert.InDelta(t, 2.2, intercept.Estimate, tol)
	assert.InDelta(t, 0.9381, intercept.StdErr, tol)
	assert.InDelta(t, 2.3452, intercept.TStat, tol)
	assert.InDelta(t, 0.1009, intercept.PValue, 1e-3)
	assert.InDelta(t, 2.2-3.1824*0.9381, intercept.Lower, 1e-3)
	assert.InDelta(t, 2.2+3.1824*0.9381, intercept.Upper, 1e-3)

	slope := coefs[1]
	assert.Equal(t, "x", slope.Name)
	assert.InDelta(t, 0.6, slope.Estimate, tol)
	assert.InDelta(t, 0.2828, slope.StdErr, tol)
	assert.InDelta(t, 2.1213, slope.TStat, tol)
	assert.InDelta(t, 0.1241, slope.PValue, 1e-3)
	assert.InDelta(t, -0.3002, slope.Lower, 1e-3)
	assert.InDelta(t, 1.5002, slope.Upper, 1e-3)
}

func TestCoefficientsInvalidLevel(t *testing.T) {
	m := specModel(t)

	testData := map[string]float64{
		"zero":     0.0,
		"one":      1.0,
		"negative": -0.5,
		"above":    1.5,
	}
	for name, level := range testData {
		t.Run(name, func(t *testing.T) {
			_, err := m.Coefficients(level)
			assert.ErrorIs(t, err, ErrInvalidConfidenceLevel)
		})
	}
}

func TestCoefficientsIntervalWidening(t *testing.T) {
	m := specModel(t)

	levels := []float64{0.5, 0.8, 0.9, 0.95, 0.99, 0.999}
	var lastWidth float64
	for _, level := range levels {
		coefs, err := m.Coefficients(level)
		require.Nil(t, err)
		width := coefs[1].Upper - coefs[1].Lower
		assert.Greater(t, width, lastWidth, "level %f", level)
		lastWidth = width
	}
}
