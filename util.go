package regressor

import (
	"math"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
)

// LineRegression generates an echart line chart for a fit result plotting the
// observed values along with the predicted, upper, lower values. The input x
// and y must be sorted the same way as the result, e.g. from TrainingXY.
func LineRegression(title string, x, y []float64, res *Results) *charts.Line {
	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithTitleOpts(
			opts.Title{
				Title: title,
			},
		),
	)

	lineDataActual := make([]opts.LineData, 0, len(y))
	lineDataFit := make([]opts.LineData, 0, len(res.X))
	lineDataUpper := make([]opts.LineData, 0, len(res.X))
	lineDataLower := make([]opts.LineData, 0, len(res.X))

	for i := 0; i < len(res.X); i++ {
		lineDataActual = append(lineDataActual, opts.LineData{Value: y[i]})
		lineDataFit = append(lineDataFit, opts.LineData{Value: res.Predicted[i]})
		lineDataUpper = append(lineDataUpper, opts.LineData{Value: res.Upper[i]})
		lineDataLower = append(lineDataLower, opts.LineData{Value: res.Lower[i]})
	}

	line.SetXAxis(res.X).
		AddSeries("Actual", lineDataActual).
		AddSeries("Fit", lineDataFit).
		AddSeries("Upper", lineDataUpper).
		AddSeries("Lower", lineDataLower)
	return line
}

// ScatterDiagnostic generates an echart scatter chart for some arbitrary x/y
// diagnostic combination, e.g. standardized residuals against fitted values.
func ScatterDiagnostic(title, seriesName string, x, y []float64) *charts.Scatter {
	scatter := charts.NewScatter()
	scatter.SetGlobalOptions(
		charts.WithTitleOpts(
			opts.Title{
				Title: title,
			},
		),
	)

	scatterData := make([]opts.ScatterData, 0, len(y))
	filteredX := make([]float64, 0, len(x))
	for i := 0; i < len(y); i++ {
		if math.IsNaN(y[i]) {
			continue
		}
		filteredX = append(filteredX, x[i])
		scatterData = append(scatterData, opts.ScatterData{Value: y[i]})
	}

	scatter.SetXAxis(filteredX).AddSeries(seriesName, scatterData)
	return scatter
}
