package regression

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/stat/distuv"
)

// DefaultConfidenceLevel is used whenever a caller passes no explicit level.
const DefaultConfidenceLevel = 0.95

// CoefficientInference holds the standard error, t-statistic, two-sided
// p-value, and confidence interval of a single fit coefficient.
type CoefficientInference struct {
	Name     string  `json:"name"`
	Estimate float64 `json:"estimate"`
	StdErr   float64 `json:"standard_error"`
	TStat    float64 `json:"t_statistic"`
	PValue   float64 `json:"p_value"`
	Lower    float64 `json:"lower"`
	Upper    float64 `json:"upper"`
	Level    float64 `json:"confidence_level"`
}

func validateConfidenceLevel(level float64) error {
	if level <= 0.0 || level >= 1.0 {
		return fmt.Errorf("got %f, %w", level, ErrInvalidConfidenceLevel)
	}
	return nil
}

// tDist returns the Student-t distribution with the model's residual degrees
// of freedom.
func (m *FittedModel) tDist() distuv.StudentsT {
	return distuv.StudentsT{
		Mu:    0,
		Sigma: 1,
		Nu:    float64(m.df),
	}
}

// Coefficients computes the inference statistics of the intercept and slope
// at the given confidence level. The returned slice is ordered intercept
// first.
func (m *FittedModel) Coefficients(level float64) ([]CoefficientInference, error) {
	if err := validateConfidenceLevel(level); err != nil {
		return nil, err
	}

	n := float64(len(m.x))
	seSlope := m.rse / math.Sqrt(m.sxx)
	seIntercept := m.rse * math.Sqrt(1.0/n+m.xMean*m.xMean/m.sxx)

	dist := m.tDist()
	crit := dist.Quantile(0.5 + level/2.0)

	coefs := []struct {
		name     string
		estimate float64
		se       float64
	}{
		{"intercept", m.intercept, seIntercept},
		{m.predictor, m.slope, seSlope},
	}

	out := make([]CoefficientInference, 0, len(coefs))
	for _, c := range coefs {
		tStat := c.estimate / c.se
		out = append(out, CoefficientInference{
			Name:     c.name,
			Estimate: c.estimate,
			StdErr:   c.se,
			TStat:    tStat,
			PValue:   2.0 * dist.CDF(-math.Abs(tStat)),
			Lower:    c.estimate - crit*c.se,
			Upper:    c.estimate + crit*c.se,
			Level:    level,
		})
	}
	return out, nil
}
