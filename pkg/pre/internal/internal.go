// Package internal holds the handful of definitions shared by the arithmetic
// provider adapters.
package internal

import "errors"

// ErrInvalidElement is returned when decoded bytes do not represent a valid
// element of the group they were decoded for.
var ErrInvalidElement = errors.New("invalid group element")
