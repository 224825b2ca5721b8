//go:build debug_mem_utils

package memutils

import "unsafe"

const (
	// DebugMargin is the number of bytes of guard data placed after the last element of every
	// row of a pitched allocation
	DebugMargin int = 16
	// corruptionDetectionMagicValue is a 4-byte pattern copied across each row's guard bytes
	corruptionDetectionMagicValue uint32 = 0x7F84E666
)

// WriteRowMargins stamps the magic value into the DebugMargin bytes that follow each of height rows.
// Rows begin pitch bytes apart and hold rowBytes bytes of element data.
func WriteRowMargins(data unsafe.Pointer, pitch, rowBytes, height int) {
	for row := 0; row < height; row++ {
		dest := unsafe.Add(data, row*pitch+rowBytes)
		for i := 0; i < DebugMargin/4; i++ {
			*(*uint32)(dest) = corruptionDetectionMagicValue
			dest = unsafe.Add(dest, 4)
		}
	}
}

// ValidateRowMargins returns the index of the first row whose guard bytes no longer hold the
// magic value, or -1 when every row is intact.
func ValidateRowMargins(data unsafe.Pointer, pitch, rowBytes, height int) int {
	for row := 0; row < height; row++ {
		source := unsafe.Add(data, row*pitch+rowBytes)
		for i := 0; i < DebugMargin/4; i++ {
			if *(*uint32)(source) != corruptionDetectionMagicValue {
				return row
			}
			source = unsafe.Add(source, 4)
		}
	}

	return -1
}

// DebugValidate will call Validate on the provided object and panics if any errors are returned.
func DebugValidate(validatable Validatable) {
	err := validatable.Validate()
	if err != nil {
		panic(err)
	}
}
