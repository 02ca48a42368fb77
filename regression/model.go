package regression

import (
	"fmt"
	"io"
	"math"
	"text/tabwriter"
)

// Weights stores the two coefficients of a simple linear model.
type Weights struct {
	Intercept float64 `json:"intercept"`
	Slope     float64 `json:"slope"`
}

// Model represents a serializeable format of a fit storing the column
// selection, coefficients, design values, and scores. It can be used to
// reconstruct a FittedModel for immediate predictions skipping the fit step.
type Model struct {
	Response  string  `json:"response"`
	Predictor string  `json:"predictor"`
	Weights   Weights `json:"weights"`

	X        []float64 `json:"x"`
	Y        []float64 `json:"y"`
	Fitted   []float64 `json:"fitted"`
	Residual []float64 `json:"residual"`

	Scores Scores `json:"scores"`
}

// Model generates a serializeable representation of the fit.
func (m *FittedModel) Model() Model {
	return Model{
		Response:  m.response,
		Predictor: m.predictor,
		Weights: Weights{
			Intercept: m.intercept,
			Slope:     m.slope,
		},
		X:        m.PredictorValues(),
		Y:        m.ResponseValues(),
		Fitted:   m.FittedValues(),
		Residual: m.Residuals(),
		Scores:   m.scores,
	}
}

// NewFromModel reconstructs a FittedModel from a previously serialized Model.
func NewFromModel(model Model) (*FittedModel, error) {
	n := len(model.X)
	if n < MinObservations {
		return nil, fmt.Errorf("got %d observations, but need at least %d, %w", n, MinObservations, ErrInsufficientData)
	}
	if len(model.Y) != n || len(model.Fitted) != n || len(model.Residual) != n {
		return nil, ErrModelLenMismatch
	}

	var xSum float64
	for _, v := range model.X {
		xSum += v
	}
	xMean := xSum / float64(n)

	var sxx float64
	for _, v := range model.X {
		dx := v - xMean
		sxx += dx * dx
	}
	if sxx == 0 {
		return nil, fmt.Errorf("predictor %q is constant, %w", model.Predictor, ErrDegenerateModel)
	}

	df := n - 2
	m := &FittedModel{
		response:  model.Response,
		predictor: model.Predictor,
		intercept: model.Weights.Intercept,
		slope:     model.Weights.Slope,
		x:         append([]float64(nil), model.X...),
		y:         append([]float64(nil), model.Y...),
		fitted:    append([]float64(nil), model.Fitted...),
		residual:  append([]float64(nil), model.Residual...),
		xMean:     xMean,
		sxx:       sxx,
		rse:       math.Sqrt(model.Scores.RSS / float64(df)),
		df:        df,
		scores:    model.Scores,
	}
	return m, nil
}

// ModelEq returns a string representation of the fit model represented as
// y ~ b0 + b1*x.
func (m *FittedModel) ModelEq() string {
	sign := "+"
	slope := m.slope
	if slope < 0 {
		sign = "-"
		slope = -slope
	}
	return fmt.Sprintf("%s ~ %.4f %s %.4f*%s", m.response, m.intercept, sign, slope, m.predictor)
}

// TablePrint writes a formatted coefficient table at the given confidence
// level along with the fit scores.
func (m *FittedModel) TablePrint(w io.Writer, level float64, prefix, indent string) error {
	coefs, err := m.Coefficients(level)
	if err != nil {
		return err
	}

	if _, err := fmt.Fprintf(w, "%sModel: %s\n", prefix, m.ModelEq()); err != nil {
		return err
	}

	tbl := tabwriter.NewWriter(w, 0, 0, 1, ' ', tabwriter.AlignRight)
	if _, err := fmt.Fprintf(tbl, "%s%sCoefficient\tEstimate\tStd. Error\tt value\tPr(>|t|)\tLower\tUpper\t\n", prefix, indent); err != nil {
		return err
	}
	for _, c := range coefs {
		if _, err := fmt.Fprintf(tbl, "%s%s%s\t%.4f\t%.4f\t%.4f\t%.4f\t%.4f\t%.4f\t\n",
			prefix, indent,
			c.Name, c.Estimate, c.StdErr, c.TStat, c.PValue, c.Lower, c.Upper); err != nil {
			return err
		}
	}
	if err := tbl.Flush(); err != nil {
		return err
	}

	r2 := fmt.Sprintf("%.4f", m.scores.R2)
	if m.scores.R2Undefined {
		r2 = "undefined"
	}
	if _, err := fmt.Fprintf(w, "%s%sResidual standard error: %.4f on %d degrees of freedom\n",
		prefix, indent, m.rse, m.df); err != nil {
		return err
	}
	_, err = fmt.Fprintf(w, "%s%sR-squared: %s\n", prefix, indent, r2)
	return err
}
