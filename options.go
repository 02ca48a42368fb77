package regressor

import (
	"github.com/aouyang1/go-regressor/regression"
)

// OutlierOptions configures the detection of response outliers to mask
// between fit passes.
type OutlierOptions struct {
	NumPasses       int     `json:"num_passes"`
	UpperPercentile float64 `json:"upper_percentile"`
	LowerPercentile float64 `json:"lower_percentile"`
	TukeyFactor     float64 `json:"tukey_factor"`
}

func NewOutlierOptions() *OutlierOptions {
	return &OutlierOptions{
		NumPasses:       3,
		UpperPercentile: 0.9,
		LowerPercentile: 0.1,
		TukeyFactor:     1.0,
	}
}

// Options configures a Regression. A nil OutlierOptions disables outlier
// masking.
type Options struct {
	ConfidenceLevel float64         `json:"confidence_level"`
	OutlierOptions  *OutlierOptions `json:"outlier_options,omitempty"`
}

func NewDefaultOptions() *Options {
	return &Options{
		ConfidenceLevel: regression.DefaultConfidenceLevel,
	}
}
