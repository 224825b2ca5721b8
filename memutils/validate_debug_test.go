//go:build debug_mem_utils

package memutils_test

import (
	"testing"
	"unsafe"

	"github.com/gpuarsenal/pitched/memutils"
	"github.com/stretchr/testify/require"
)

func TestRowMarginsDetectOverrun(t *testing.T) {
	pitch := memutils.AlignUp(20+memutils.DebugMargin, 32)
	data := make([]byte, pitch*3)
	memutils.WriteRowMargins(unsafe.Pointer(&data[0]), pitch, 20, 3)

	data[pitch+20] ^= 0xFF
	require.Equal(t, 1, memutils.ValidateRowMargins(unsafe.Pointer(&data[0]), pitch, 20, 3))
}
