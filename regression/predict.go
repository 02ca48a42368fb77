package regression

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// PredictionResult holds the predicted mean response at a single predictor
// value along with its standard error and confidence interval.
type PredictionResult struct {
	X         float64 `json:"x"`
	Predicted float64 `json:"predicted"`
	StdErr    float64 `json:"standard_error"`
	Lower     float64 `json:"lower"`
	Upper     float64 `json:"upper"`
}

// Predict computes the mean-response prediction and confidence interval for
// every queried predictor value, in input order. Queries outside the observed
// predictor range are allowed; use PredictorRange to flag extrapolation.
func (m *FittedModel) Predict(xs []float64, level float64) ([]PredictionResult, error) {
	if len(xs) == 0 {
		return nil, ErrEmptyQuery
	}
	if err := validateConfidenceLevel(level); err != nil {
		return nil, err
	}

	n := float64(len(m.x))
	crit := m.tDist().Quantile(0.5 + level/2.0)

	out := make([]PredictionResult, 0, len(xs))
	for _, x0 := range xs {
		dx := x0 - m.xMean
		se := m.rse * math.Sqrt(1.0/n+dx*dx/m.sxx)
		predicted := m.intercept + m.slope*x0
		out = append(out, PredictionResult{
			X:         x0,
			Predicted: predicted,
			StdErr:    se,
			Lower:     predicted - crit*se,
			Upper:     predicted + crit*se,
		})
	}
	return out, nil
}

// PredictorRange returns the minimum and maximum predictor values observed
// during the fit.
func (m *FittedModel) PredictorRange() (float64, float64) {
	return floats.Min(m.x), floats.Max(m.x)
}
