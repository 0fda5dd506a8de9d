package eval

import "errors"

// ErrInvalidInput is returned when the evaluation input slice's length does
// not match the expression's input count n.
var ErrInvalidInput = errors.New("eval: invalid input")
