package regression

import (
	"bytes"
	"strings"
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestModelRoundTrip(t *testing.T) {
	tol := 1e-12
	m := specModel(t)

	out, err := json.Marshal(m.Model())
	require.Nil(t, err)

	var model Model
	require.Nil(t, json.Unmarshal(out, &model))

	restored, err := NewFromModel(model)
	require.Nil(t, err)

	assert.Equal(t, m.Intercept(), restored.Intercept())
	assert.Equal(t, m.Slope(), restored.Slope())
	assert.Equal(t, m.NumObservations(), restored.NumObservations())
	assert.InDelta(t, m.ResidualStdErr(), restored.ResidualStdErr(), tol)
	assert.Equal(t, m.Scores(), restored.Scores())

	want, err := m.Predict([]float64{0.0, 2.5, 7.0}, 0.9)
	require.Nil(t, err)
	got, err := restored.Predict([]float64{0.0, 2.5, 7.0}, 0.9)
	require.Nil(t, err)
	for i := range want {
		assert.InDelta(t, want[i].Predicted, got[i].Predicted, tol)
		assert.InDelta(t, want[i].StdErr, got[i].StdErr, tol)
		assert.InDelta(t, want[i].Lower, got[i].Lower, tol)
		assert.InDelta(t, want[i].Upper, got[i].Upper, tol)
	}
}

func TestNewFromModelErrors(t *testing.T) {
	base := specModel(t).Model()

	short := base
	short.X = base.X[:2]

	mismatch := base
	mismatch.Y = base.Y[:4]

	constant := base
	constant.X = []float64{2, 2, 2, 2, 2}

	testData := map[string]struct {
		model Model
		err   error
	}{
		"too few observations": {short, ErrInsufficientData},
		"length mismatch":      {mismatch, ErrModelLenMismatch},
		"constant predictor":   {constant, ErrDegenerateModel},
	}
	for name, td := range testData {
		t.Run(name, func(t *testing.T) {
			_, err := NewFromModel(td.model)
			assert.ErrorIs(t, err, td.err)
		})
	}
}

func TestModelEq(t *testing.T) {
	m := specModel(t)
	assert.Equal(t, "y ~ 2.2000 + 0.6000*x", m.ModelEq())

	tbl := testTable(t,
		[]float64{1, 2, 3, 4},
		[]float64{10, 8, 6, 4},
	)
	neg, err := Fit(tbl, "y", "x")
	require.Nil(t, err)
	assert.Equal(t, "y ~ 12.0000 - 2.0000*x", neg.ModelEq())
}

func TestTablePrint(t *testing.T) {
	m := specModel(t)

	var buf bytes.Buffer
	require.Nil(t, m.TablePrint(&buf, 0.95, "", "  "))

	out := buf.String()
	assert.True(t, strings.Contains(out, "y ~ 2.2000 + 0.6000*x"))
	assert.True(t, strings.Contains(out, "intercept"))
	assert.True(t, strings.Contains(out, "R-squared: 0.6000"))
	assert.True(t, strings.Contains(out, "3 degrees of freedom"))
}
