// Package regressor runs a full simple-linear-regression analysis over a
// table of named columns: fit with optional outlier masking, coefficient
// inference, mean-response confidence bands, diagnostics, and chart output.
package regressor

import (
	"errors"
	"fmt"
	"io"
	"math"
	"sort"

	"github.com/aouyang1/go-regressor/dataset"
	"github.com/aouyang1/go-regressor/regression"
	"github.com/aouyang1/go-regressor/stats"
	"github.com/go-echarts/go-echarts/v2/components"
)

var (
	ErrEmptyTable         = errors.New("no table or uninitialized")
	ErrNoOptionsInModel   = errors.New("no options set in model")
	ErrUntrainedRegressor = errors.New("regression has not been fit yet")
)

// Regression fits a one-predictor linear model and serves predictions,
// inference, and diagnostics from the fit.
type Regression struct {
	opt *Options

	model *regression.FittedModel

	response  string
	predictor string

	fitTrainingData *dataset.Table
	fitResults      *Results
	residual        []float64
}

// New creates a new instance of a Regression using the provided options. If
// no options are provided a default is used.
func New(opt *Options) (*Regression, error) {
	if opt == nil {
		opt = NewDefaultOptions()
	}
	return &Regression{opt: opt}, nil
}

// NewFromModel creates a new instance of Regression from a pre-existing
// model. This should be generated from a previous call to Model().
func NewFromModel(model Model) (*Regression, error) {
	if model.Options == nil {
		return nil, ErrNoOptionsInModel
	}
	fm, err := regression.NewFromModel(model.Fit)
	if err != nil {
		return nil, fmt.Errorf("unable to load from fit model, %w", err)
	}
	r := &Regression{
		opt:       model.Options,
		model:     fm,
		response:  model.Fit.Response,
		predictor: model.Fit.Predictor,
		residual:  fm.Residuals(),
	}
	return r, nil
}

// Fit fits the response column against the predictor column of the input
// table. With outlier options set, rows whose residuals fall outside the
// Tukey fences are masked and the model refit up to NumPasses times.
func (r *Regression) Fit(table *dataset.Table, responseCol, predictorCol string) error {
	if table == nil || table.Len() == 0 {
		return ErrEmptyTable
	}
	y, err := table.Column(responseCol)
	if err != nil {
		return fmt.Errorf("unable to get response column, %w", err)
	}
	x, err := table.Column(predictorCol)
	if err != nil {
		return fmt.Errorf("unable to get predictor column, %w", err)
	}

	r.response = responseCol
	r.predictor = predictorCol
	r.fitTrainingData = table.Copy()

	if err := r.fitWithOutliers(x, y); err != nil {
		return err
	}

	trainX, _, err := r.TrainingXY()
	if err != nil {
		return err
	}
	r.fitResults, err = r.Predict(trainX)
	if err != nil {
		return fmt.Errorf("unable to get predicted values from training set, %w", err)
	}
	return nil
}

func (r *Regression) fitWithOutliers(x, y []float64) error {
	numPasses := 0
	if r.opt.OutlierOptions != nil {
		numPasses = r.opt.OutlierOptions.NumPasses
	}

	yMasked := make([]float64, len(y))
	copy(yMasked, y)

	var model *regression.FittedModel
	for i := 0; i <= numPasses; i++ {
		tbl, err := dataset.NewFromColumns(
			[]string{r.response, r.predictor},
			[][]float64{yMasked, x},
		)
		if err != nil {
			return err
		}
		model, err = regression.Fit(tbl, r.response, r.predictor)
		if err != nil {
			return fmt.Errorf("unable to fit regression, %w", err)
		}

		// the final pass keeps its fit as-is so residuals stay aligned with
		// the masked response
		if r.opt.OutlierOptions == nil || i == numPasses {
			break
		}

		residual := model.Residuals()
		outlierIdxs := stats.DetectOutliers(
			residual,
			r.opt.OutlierOptions.LowerPercentile,
			r.opt.OutlierOptions.UpperPercentile,
			r.opt.OutlierOptions.TukeyFactor,
		)

		// no more outliers detected with outlier options so break early
		if len(outlierIdxs) == 0 {
			break
		}

		// map complete-observation indexes back to original rows before masking
		rowIdx := make([]int, 0, len(residual))
		for j := 0; j < len(x); j++ {
			if math.IsNaN(x[j]) || math.IsNaN(yMasked[j]) {
				continue
			}
			rowIdx = append(rowIdx, j)
		}
		for _, idx := range outlierIdxs {
			yMasked[rowIdx[idx]] = math.NaN()
		}
	}
	r.model = model

	// align residuals to the original rows with NaN at missing or masked rows
	modelResidual := model.Residuals()
	r.residual = make([]float64, len(y))
	var j int
	for i := 0; i < len(y); i++ {
		if j < len(modelResidual) && !math.IsNaN(x[i]) && !math.IsNaN(yMasked[i]) {
			r.residual[i] = modelResidual[j]
			j++
			continue
		}
		r.residual[i] = math.NaN()
	}
	return nil
}

// Predict takes in any set of predictor samples and generates a predicted
// mean response with upper and lower confidence values per sample.
func (r *Regression) Predict(xs []float64) (*Results, error) {
	if r.model == nil {
		return nil, ErrUntrainedRegressor
	}
	preds, err := r.model.Predict(xs, r.opt.ConfidenceLevel)
	if err != nil {
		return nil, fmt.Errorf("unable to predict mean response, %w", err)
	}

	res := &Results{
		X:         make([]float64, 0, len(preds)),
		Predicted: make([]float64, 0, len(preds)),
		Upper:     make([]float64, 0, len(preds)),
		Lower:     make([]float64, 0, len(preds)),
	}
	for _, p := range preds {
		res.X = append(res.X, p.X)
		res.Predicted = append(res.Predicted, p.Predicted)
		res.Upper = append(res.Upper, p.Upper)
		res.Lower = append(res.Lower, p.Lower)
	}
	return res, nil
}

// PredictRange generates predictions over steps evenly spaced predictor
// values spanning [minVal, maxVal]. The range may extend beyond the observed
// predictor values.
func (r *Regression) PredictRange(minVal, maxVal float64, steps int) (*Results, error) {
	return r.Predict(dataset.GenerateXRange(minVal, maxVal, steps))
}

// Coefficients returns the inference statistics of the intercept and slope at
// the configured confidence level.
func (r *Regression) Coefficients() ([]regression.CoefficientInference, error) {
	if r.model == nil {
		return nil, ErrUntrainedRegressor
	}
	return r.model.Coefficients(r.opt.ConfidenceLevel)
}

// Diagnostics returns the per-observation diagnostic rows of the fit.
func (r *Regression) Diagnostics() ([]regression.DiagnosticRow, error) {
	if r.model == nil {
		return nil, ErrUntrainedRegressor
	}
	return r.model.Diagnostics()
}

// Residuals returns the fit residuals aligned to the original training rows.
// Rows dropped for missing values or masked as outliers hold NaN.
func (r *Regression) Residuals() []float64 {
	out := make([]float64, len(r.residual))
	copy(out, r.residual)
	return out
}

// Scores returns the fit scores.
func (r *Regression) Scores() (regression.Scores, error) {
	if r.model == nil {
		return regression.Scores{}, ErrUntrainedRegressor
	}
	return r.model.Scores(), nil
}

// PredictorRange returns the observed predictor minimum and maximum so
// callers can flag extrapolated queries.
func (r *Regression) PredictorRange() (float64, float64, error) {
	if r.model == nil {
		return 0, 0, ErrUntrainedRegressor
	}
	minVal, maxVal := r.model.PredictorRange()
	return minVal, maxVal, nil
}

// ModelEq returns a string representation of the fit model represented as
// y ~ b0 + b1*x.
func (r *Regression) ModelEq() (string, error) {
	if r.model == nil {
		return "", ErrUntrainedRegressor
	}
	return r.model.ModelEq(), nil
}

// TrainingData returns the table used to fit the current model.
func (r *Regression) TrainingData() *dataset.Table {
	return r.fitTrainingData
}

// TrainingXY returns the complete observations used in the final fit pass,
// sorted by predictor value.
func (r *Regression) TrainingXY() ([]float64, []float64, error) {
	if r.model == nil {
		return nil, nil, ErrUntrainedRegressor
	}
	x := r.model.PredictorValues()
	y := r.model.ResponseValues()

	idx := make([]int, len(x))
	for i := range idx {
		idx[i] = i
	}
	sort.SliceStable(idx, func(i, j int) bool {
		return x[idx[i]] < x[idx[j]]
	})

	xOut := make([]float64, len(x))
	yOut := make([]float64, len(y))
	for i, id := range idx {
		xOut[i] = x[id]
		yOut[i] = y[id]
	}
	return xOut, yOut, nil
}

// FitResults returns the predicted values with confidence bands over the
// sorted training predictor values.
func (r *Regression) FitResults() *Results {
	return r.fitResults
}

// Model generates a serializeable representation of the fit options and
// coefficients. This can be used to initialize a new Regression for immediate
// predictions skipping the fit step.
func (r *Regression) Model() (Model, error) {
	if r.model == nil {
		return Model{}, ErrUntrainedRegressor
	}
	return Model{
		Options: r.opt,
		Fit:     r.model.Model(),
	}, nil
}

// TablePrint writes the model equation, coefficient table, and fit scores.
func (r *Regression) TablePrint(w io.Writer) error {
	if r.model == nil {
		return ErrUntrainedRegressor
	}
	return r.model.TablePrint(w, r.opt.ConfidenceLevel, "", "  ")
}

// PlotFit uses the Apache Echarts library to generate an html page showing
// the fit with its confidence band, the residuals against fitted values, and
// the leverage of each observation.
func (r *Regression) PlotFit(w io.Writer) error {
	if r.model == nil {
		return ErrUntrainedRegressor
	}

	trainX, trainY, err := r.TrainingXY()
	if err != nil {
		return err
	}
	diag, err := r.Diagnostics()
	if err != nil {
		return fmt.Errorf("unable to compute diagnostics, %w", err)
	}

	fitted := make([]float64, 0, len(diag))
	residual := make([]float64, 0, len(diag))
	xVals := make([]float64, 0, len(diag))
	leverage := make([]float64, 0, len(diag))
	for _, row := range diag {
		fitted = append(fitted, row.Fitted)
		residual = append(residual, row.StdResidual)
		xVals = append(xVals, row.X)
		leverage = append(leverage, row.Leverage)
	}

	eq, err := r.ModelEq()
	if err != nil {
		return err
	}

	page := components.NewPage()
	page.AddCharts(
		LineRegression(eq, trainX, trainY, r.fitResults),
		ScatterDiagnostic("Standardized Residuals vs Fitted", "fitted", fitted, residual),
		ScatterDiagnostic("Leverage", r.predictor, xVals, leverage),
	)
	return page.Render(w)
}
