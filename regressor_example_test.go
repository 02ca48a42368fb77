package regressor

import (
	"fmt"
	"io"
	"math"

	"github.com/aouyang1/go-regressor/dataset"
)

func ExampleRegression() {
	// shell growth against water ph with one failed measurement
	ph := []float64{7.0, 7.2, 7.4, 7.6, 7.8, 8.0, 8.2}
	growth := []float64{0.61, 0.73, math.NaN(), 0.92, 1.01, 1.14, 1.22}

	table, err := dataset.NewFromColumns(
		[]string{"growth", "ph"},
		[][]float64{growth, ph},
	)
	if err != nil {
		panic(err)
	}

	r, err := New(nil)
	if err != nil {
		panic(err)
	}
	if err := r.Fit(table, "growth", "ph"); err != nil {
		panic(err)
	}

	eq, err := r.ModelEq()
	if err != nil {
		panic(err)
	}
	fmt.Println(eq)

	res, err := r.Predict([]float64{7.5})
	if err != nil {
		panic(err)
	}
	fmt.Printf("predicted growth at ph 7.5: %.3f\n", res.Predicted[0])

	if err := r.PlotFit(io.Discard); err != nil {
		panic(err)
	}

	// Output:
	// growth ~ -2.9329 + 0.5071*ph
	// predicted growth at ph 7.5: 0.871
}
