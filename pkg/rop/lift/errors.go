package lift

import "errors"

// ErrNoResult is returned by Unwrap for a non-successful result that carries
// no error.
var ErrNoResult = errors.New("lift: result has neither value nor error")
