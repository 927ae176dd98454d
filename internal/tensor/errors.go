package tensor

import "errors"

// Sentinel errors. Callers match them with errors.Is; the returned errors
// wrap them with the offending values.
var (
	ErrDomain        = errors.New("extent values must be >= 1")
	ErrOutOfRange    = errors.New("index out of range")
	ErrInvalidExtent = errors.New("invalid extent")
	ErrShapeMismatch = errors.New("shape mismatch")
)
