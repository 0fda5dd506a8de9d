package funcset

import "errors"

// ErrUnknownFunction is returned by FromNames when a requested name has no
// entry in the supported table.
var ErrUnknownFunction = errors.New("funcset: unknown function name")
