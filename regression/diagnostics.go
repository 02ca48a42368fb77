package regression

import (
	"fmt"
	"math"
)

// DiagnosticRow holds the per-observation values needed for residual and
// leverage diagnostic plots.
type DiagnosticRow struct {
	X           float64 `json:"x"`
	Y           float64 `json:"y"`
	Fitted      float64 `json:"fitted"`
	Residual    float64 `json:"residual"`
	StdResidual float64 `json:"standardized_residual"`
	Leverage    float64 `json:"leverage"`
}

// Diagnostics computes fitted values, raw and standardized residuals, and
// leverage for every observation of the fit, in original row order.
func (m *FittedModel) Diagnostics() ([]DiagnosticRow, error) {
	n := float64(len(m.x))

	out := make([]DiagnosticRow, 0, len(m.x))
	for i := 0; i < len(m.x); i++ {
		dx := m.x[i] - m.xMean
		h := 1.0/n + dx*dx/m.sxx
		if h >= 1.0 {
			return nil, fmt.Errorf("leverage is %f at observation %d, %w", h, i, ErrDegenerateModel)
		}

		// a perfect fit has zero residuals everywhere so the standardized
		// residual is 0 rather than 0/0
		var stdResidual float64
		if m.rse > 0 {
			stdResidual = m.residual[i] / (m.rse * math.Sqrt(1.0-h))
		}

		out = append(out, DiagnosticRow{
			X:           m.x[i],
			Y:           m.y[i],
			Fitted:      m.fitted[i],
			Residual:    m.residual[i],
			StdResidual: stdResidual,
			Leverage:    h,
		})
	}
	return out, nil
}
