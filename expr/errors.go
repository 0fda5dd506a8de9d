package expr

import "errors"

// ErrInvalidInput covers malformed construction parameters, a wrong-sized
// or out-of-bounds chromosome passed to Set, a wrong-sized evaluation
// input, or a derivative variable index outside [0, n).
var ErrInvalidInput = errors.New("expr: invalid input")
