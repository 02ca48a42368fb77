package dataset

import (
	"math/rand/v2"
)

// GenerateXRange returns n evenly spaced predictor values spanning [minVal, maxVal].
func GenerateXRange(minVal, maxVal float64, n int) []float64 {
	x := make([]float64, 0, n)
	if n == 1 {
		return append(x, minVal)
	}
	step := (maxVal - minVal) / float64(n-1)
	for i := 0; i < n; i++ {
		x = append(x, minVal+step*float64(i))
	}
	return x
}

// GenerateLinearY returns intercept + slope*x for every x.
func GenerateLinearY(x []float64, intercept, slope float64) []float64 {
	y := make([]float64, 0, len(x))
	for i := 0; i < len(x); i++ {
		y = append(y, intercept+slope*x[i])
	}
	return y
}

// GenerateNoise returns n samples of gaussian noise scaled by noiseScale.
func GenerateNoise(n int, noiseScale float64) []float64 {
	y := make([]float64, 0, n)
	for i := 0; i < n; i++ {
		y = append(y, rand.NormFloat64()*noiseScale)
	}
	return y
}
