package regression

import (
	"errors"
)

var (
	ErrNoTable                = errors.New("no input table")
	ErrInsufficientData       = errors.New("insufficient complete observations to fit")
	ErrDegenerateModel        = errors.New("degenerate model")
	ErrInvalidConfidenceLevel = errors.New("confidence level must be between 0 and 1 exclusive")
	ErrEmptyQuery             = errors.New("no predictor values to predict on")
	ErrModelLenMismatch       = errors.New("model design values have inconsistent lengths")
)
