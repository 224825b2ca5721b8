package memutils_test

import (
	"testing"
	"unsafe"

	"github.com/cockroachdb/errors"
	"github.com/gpuarsenal/pitched/memutils"
	"github.com/launchdarkly/go-jsonstream/v3/jwriter"
	"github.com/stretchr/testify/require"
)

func TestCheckPow2(t *testing.T) {
	require.NoError(t, memutils.CheckPow2(1, "one"))
	require.NoError(t, memutils.CheckPow2(512, "pitch"))
	require.NoError(t, memutils.CheckPow2(uint(1<<20), "big"))

	for _, bad := range []int{0, -4, 3, 48, 513} {
		err := memutils.CheckPow2(bad, "alignment")
		require.Error(t, err)
		require.True(t, errors.Is(err, memutils.PowerOfTwoError))
		require.Contains(t, err.Error(), "alignment")
	}
}

func TestCheckPitch(t *testing.T) {
	require.NoError(t, memutils.CheckPitch(40, 40, "pitch"))
	require.NoError(t, memutils.CheckPitch(64, 40, "pitch"))

	err := memutils.CheckPitch(39, 40, "host pitch")
	require.True(t, errors.Is(err, memutils.RowWidthError))
	require.Contains(t, err.Error(), "host pitch is 39")
}

func TestAlignUp(t *testing.T) {
	require.Equal(t, 0, memutils.AlignUp(0, 512))
	require.Equal(t, 512, memutils.AlignUp(1, 512))
	require.Equal(t, 512, memutils.AlignUp(512, 512))
	require.Equal(t, 1024, memutils.AlignUp(513, 512))
	require.Equal(t, 7, memutils.AlignUp(7, 1))
}

func TestPitchedSpan(t *testing.T) {
	require.Equal(t, 0, memutils.PitchedSpan(64, 0, 4))
	require.Equal(t, 0, memutils.PitchedSpan(64, 10, 0))
	require.Equal(t, 10, memutils.PitchedSpan(64, 10, 1))
	require.Equal(t, 3*64+10, memutils.PitchedSpan(64, 10, 4))
}

func TestStatistics(t *testing.T) {
	var stats memutils.Statistics
	stats.AddAllocation(512, 100, 4)
	stats.AddAllocation(128, 128, 2)
	stats.TextureObjectCount = 1

	require.Equal(t, memutils.Statistics{
		AllocationCount:    2,
		AllocationBytes:    2304,
		RowBytes:           656,
		TextureObjectCount: 1,
	}, stats)
	require.Equal(t, 1648, stats.PaddingBytes())

	var total memutils.Statistics
	total.AddStatistics(&stats)
	total.AddStatistics(&stats)
	require.Equal(t, 4, total.AllocationCount)
	require.Equal(t, 2, total.TextureObjectCount)

	stats.RemoveAllocation(128, 128, 2)
	require.Equal(t, 1, stats.AllocationCount)
	require.Equal(t, 2048, stats.AllocationBytes)
	require.Equal(t, 400, stats.RowBytes)

	stats.Clear()
	require.Equal(t, memutils.Statistics{}, stats)
}

func TestStatisticsPrintJson(t *testing.T) {
	var stats memutils.Statistics
	stats.AddAllocation(64, 60, 2)

	writer := jwriter.NewWriter()
	obj := writer.Object()
	stats.PrintJson(&obj)
	obj.End()

	require.JSONEq(t, `{
		"Allocations": 1,
		"AllocationBytes": 128,
		"RowBytes": 120,
		"PaddingBytes": 8,
		"TextureObjects": 0
	}`, string(writer.Bytes()))
}

func TestRowMarginsIntactAfterWrite(t *testing.T) {
	pitch := memutils.AlignUp(20+memutils.DebugMargin, 32)
	data := make([]byte, pitch*3)

	memutils.WriteRowMargins(unsafe.Pointer(&data[0]), pitch, 20, 3)
	require.Equal(t, -1, memutils.ValidateRowMargins(unsafe.Pointer(&data[0]), pitch, 20, 3))
}
