package intmap

import "errors"

// ErrNegativeKey indicates a negative key was passed to an operation
// that requires key >= 0.
var ErrNegativeKey = errors.New("intmap: key must be nonnegative")
