package bounds

import "errors"

// ErrInvalidInput is returned by ComputeBounds when n, m, r, c, l or
// numFuncs is not positive, and by Validate when a chromosome's length or
// gene values don't match the bounds.
var ErrInvalidInput = errors.New("bounds: invalid input")
