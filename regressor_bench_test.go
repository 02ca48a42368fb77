package regressor

import (
	"testing"

	"github.com/aouyang1/go-regressor/dataset"
	"github.com/goccy/go-json"
	"github.com/pkg/profile"
	"gonum.org/v1/gonum/floats"
)

var benchPredictRes *Results

func setupBenchData(n int) *dataset.Table {
	x := dataset.GenerateXRange(0.0, 100.0, n)
	y := dataset.GenerateLinearY(x, 3.4, -0.7)
	floats.Add(y, dataset.GenerateNoise(n, 1.3))

	tbl, err := dataset.NewFromColumns(
		[]string{"y", "x"},
		[][]float64{y, x},
	)
	if err != nil {
		panic(err)
	}
	return tbl
}

func BenchmarkFitToModel(b *testing.B) {
	tbl := setupBenchData(10000)

	var f *Regression
	var err error

	b.ResetTimer()
	for b.Loop() {
		f, err = New(nil)
		if err != nil {
			panic(err)
		}
		if err := f.Fit(tbl, "y", "x"); err != nil {
			panic(err)
		}
	}

	m, err := f.Model()
	if err != nil {
		panic(err)
	}
	if _, err := json.Marshal(m); err != nil {
		panic(err)
	}
}

func BenchmarkPredictFromModel(b *testing.B) {
	tbl := setupBenchData(10000)

	f, err := New(nil)
	if err != nil {
		panic(err)
	}
	if err := f.Fit(tbl, "y", "x"); err != nil {
		panic(err)
	}

	m, err := f.Model()
	if err != nil {
		panic(err)
	}
	bytes, err := json.Marshal(m)
	if err != nil {
		panic(err)
	}
	var model Model
	if err := json.Unmarshal(bytes, &model); err != nil {
		panic(err)
	}
	restored, err := NewFromModel(model)
	if err != nil {
		panic(err)
	}

	input := dataset.GenerateXRange(-10.0, 110.0, 500)

	b.ResetTimer()
	defer profile.Start(profile.CPUProfile, profile.ProfilePath(b.TempDir())).Stop()
	for b.Loop() {
		benchPredictRes, err = restored.Predict(input)
		if err != nil {
			panic(err)
		}
	}
}
