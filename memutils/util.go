package memutils

import (
	cerrors "github.com/cockroachdb/errors"
)

type Number interface {
	~int | ~uint
}

func CheckPow2[T Number](number T, name string) error {
	if number <= 0 || number&(number-1) != 0 {
		return cerrors.Wrapf(PowerOfTwoError, "%s is %d", name, number)
	}
	return nil
}

// CheckPitch verifies that pitch bytes are enough to hold rowBytes bytes of element data
func CheckPitch(pitch, rowBytes int, name string) error {
	if pitch < rowBytes {
		return cerrors.Wrapf(RowWidthError, "%s is %d but a row is %d bytes", name, pitch, rowBytes)
	}
	return nil
}

func AlignUp(value int, alignment uint) int {
	return (value + int(alignment) - 1) & int(^(alignment - 1))
}

// PitchedSpan returns the number of bytes touched by height rows of rowBytes bytes laid out
// pitch bytes apart. The final row is not padded out to the pitch.
func PitchedSpan(pitch, rowBytes, height int) int {
	if height <= 0 || rowBytes <= 0 {
		return 0
	}
	return pitch*(height-1) + rowBytes
}
