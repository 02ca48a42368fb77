package regressor

// Results holds the predicted mean response with its confidence band at each
// queried predictor value.
type Results struct {
	X         []float64 `json:"x"`
	Predicted []float64 `json:"predicted"`
	Upper     []float64 `json:"upper"`
	Lower     []float64 `json:"lower"`
}
