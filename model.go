package regressor

import "github.com/aouyang1/go-regressor/regression"

// Model is a serializeable representation of a fit Regression. It can be used
// to initialize a new Regression for immediate predictions skipping the fit
// step.
type Model struct {
	Options *Options         `json:"options"`
	Fit     regression.Model `json:"fit"`
}
