package da

import "errors"

// ErrNotInitialized is returned by any DA constructor called before Init.
var ErrNotInitialized = errors.New("da: backend not initialized, call Init first")

// ErrAlreadyInitialized is returned by a second Init call with parameters
// that differ from the first. A repeat call with identical parameters is a
// no-op, since DA values are only ever safe to mix within one configuration
// and re-init must never silently redefine live state.
var ErrAlreadyInitialized = errors.New("da: already initialized with different parameters")

// ErrInvalidVariable is returned when a 1-based variable index falls outside [1, Vars()].
var ErrInvalidVariable = errors.New("da: variable index out of range")

// ErrDerivativeUndefined is returned by an elementary operation evaluated at
// a point where its closed-form derivative does not exist: div with divisor
// constant part 0; sqrt, log, pow at base constant part 0; asin, acos at
// |x| >= 1.
var ErrDerivativeUndefined = errors.New("da: derivative undefined at this point")
