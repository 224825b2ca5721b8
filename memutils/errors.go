package memutils

import "github.com/pkg/errors"

// PowerOfTwoError is the error returned from CheckPow2 if the number being tested is not a power of two
var PowerOfTwoError error = errors.New("number must be a power of two")

// RowWidthError is the error returned from CheckPitch if a row pitch cannot hold a full row of elements
var RowWidthError error = errors.New("pitch must be at least as wide as a row")
