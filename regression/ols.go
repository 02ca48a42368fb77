// Package regression fits an ordinary least squares model with a single
// predictor and derives coefficient inference, mean-response prediction
// intervals, and per-observation diagnostics from the fit.
package regression

import (
	"fmt"
	"math"

	"github.com/aouyang1/go-regressor/dataset"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// MinObservations is the fewest complete observations that still leave a
// positive residual degree of freedom, n-2.
const MinObservations = 3

// Scores tracks the fit quality of a model. R2Undefined flags a response
// with zero variance where r-squared carries no information and is
// reported as 0.
type Scores struct {
	RSS         float64 `json:"residual_sum_of_squares"`
	TSS         float64 `json:"total_sum_of_squares"`
	R2          float64 `json:"r_squared"`
	R2Undefined bool    `json:"r_squared_undefined,omitempty"`
}

// FittedModel is the immutable result of fitting one response column against
// one predictor column. All slice accessors return copies.
type FittedModel struct {
	response  string
	predictor string

	intercept float64
	slope     float64

	x        []float64
	y        []float64
	fitted   []float64
	residual []float64

	xMean float64
	sxx   float64
	rse   float64
	df    int

	scores Scores
}

// Fit computes the closed-form simple OLS solution of the response column
// against the predictor column. Rows missing either value are dropped before
// fitting.
func Fit(table *dataset.Table, responseCol, predictorCol string) (*FittedModel, error) {
	if table == nil {
		return nil, ErrNoTable
	}
	y, err := table.Column(responseCol)
	if err != nil {
		return nil, fmt.Errorf("unable to get response column, %w", err)
	}
	x, err := table.Column(predictorCol)
	if err != nil {
		return nil, fmt.Errorf("unable to get predictor column, %w", err)
	}

	x, y, err = dataset.CompleteCases(x, y)
	if err != nil {
		return nil, err
	}
	n := len(x)
	if n < MinObservations {
		return nil, fmt.Errorf("got %d complete observations, but need at least %d, %w", n, MinObservations, ErrInsufficientData)
	}

	xMean := stat.Mean(x, nil)
	yMean := stat.Mean(y, nil)

	var sxx, sxy float64
	for i := 0; i < n; i++ {
		dx := x[i] - xMean
		sxx += dx * dx
		sxy += dx * (y[i] - yMean)
	}
	if sxx == 0 {
		return nil, fmt.Errorf("predictor %q is constant, %w", predictorCol, ErrDegenerateModel)
	}

	slope := sxy / sxx
	intercept := yMean - slope*xMean

	fitted := make([]float64, n)
	residual := make([]float64, n)
	var tss float64
	for i := 0; i < n; i++ {
		fitted[i] = intercept + slope*x[i]
		residual[i] = y[i] - fitted[i]
		dy := y[i] - yMean
		tss += dy * dy
	}
	rss := floats.Dot(residual, residual)

	scores := Scores{
		RSS: rss,
		TSS: tss,
	}
	if tss == 0 {
		scores.R2Undefined = true
	} else {
		scores.R2 = 1.0 - rss/tss
	}

	df := n - 2
	m := &FittedModel{
		response:  responseCol,
		predictor: predictorCol,
		intercept: intercept,
		slope:     slope,
		x:         x,
		y:         y,
		fitted:    fitted,
		residual:  residual,
		xMean:     xMean,
		sxx:       sxx,
		rse:       math.Sqrt(rss / float64(df)),
		df:        df,
		scores:    scores,
	}
	return m, nil
}

// Intercept returns the fit intercept, b0.
func (m *FittedModel) Intercept() float64 {
	return m.intercept
}

// Slope returns the fit slope, b1.
func (m *FittedModel) Slope() float64 {
	return m.slope
}

// NumObservations returns the number of complete observations used in the fit.
func (m *FittedModel) NumObservations() int {
	return len(m.x)
}

// DegreesOfFreedom returns the residual degrees of freedom, n-2.
func (m *FittedModel) DegreesOfFreedom() int {
	return m.df
}

// ResidualStdErr returns the residual standard error, sqrt(RSS/(n-2)).
func (m *FittedModel) ResidualStdErr() float64 {
	return m.rse
}

// Scores returns the fit scores.
func (m *FittedModel) Scores() Scores {
	return m.scores
}

// PredictorValues returns a copy of the predictor values used in the fit.
func (m *FittedModel) PredictorValues() []float64 {
	out := make([]float64, len(m.x))
	copy(out, m.x)
	return out
}

// ResponseValues returns a copy of the response values used in the fit.
func (m *FittedModel) ResponseValues() []float64 {
	out := make([]float64, len(m.y))
	copy(out, m.y)
	return out
}

// FittedValues returns a copy of the fitted values, b0 + b1*x.
func (m *FittedModel) FittedValues() []float64 {
	out := make([]float64, len(m.fitted))
	copy(out, m.fitted)
	return out
}

// Residuals returns a copy of the raw residuals, y - fitted.
func (m *FittedModel) Residuals() []float64 {
	out := make([]float64, len(m.residual))
	copy(out, m.residual)
	return out
}
