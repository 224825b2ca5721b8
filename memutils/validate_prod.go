//go:build !debug_mem_utils

package memutils

import "unsafe"

// DebugMargin is zero outside of debug_mem_utils builds: rows carry no guard bytes
const DebugMargin int = 0

// WriteRowMargins no-ops unless the debug_mem_utils build tag is present.
func WriteRowMargins(data unsafe.Pointer, pitch, rowBytes, height int) {}

// ValidateRowMargins always reports intact rows unless the debug_mem_utils build tag is present.
func ValidateRowMargins(data unsafe.Pointer, pitch, rowBytes, height int) int {
	return -1
}

// DebugValidate no-ops unless the debug_mem_utils build tag is present.
func DebugValidate(validatable Validatable) {}
