//go:build cuda

package cuda_test

import (
	"testing"

	"github.com/gpuarsenal/pitched/cuda"
	"github.com/gpuarsenal/pitched/devbuf"
	"github.com/gpuarsenal/pitched/device"
	"github.com/stretchr/testify/require"
)

func TestSampleIntoRoundsNormalizedReads(t *testing.T) {
	d := cuda.New(nil)

	src := devbuf.New[uint8](nil, d, 1, 2, devbuf.CreateOptions{})
	defer src.Destroy()
	bytesDst := devbuf.New[uint8](nil, d, 1, 4, devbuf.CreateOptions{})
	defer bytesDst.Destroy()
	floatDst := devbuf.New[float32](nil, d, 1, 4, devbuf.CreateOptions{})
	defer floatDst.Destroy()

	src.Upload([]uint8{0, 255})

	texture := src.CreateTextureObject(devbuf.SamplerParams{
		AddressModeX:     device.AddressModeClamp,
		AddressModeY:     device.AddressModeClamp,
		FilterMode:       device.FilterModeLinear,
		ReadMode:         device.ReadModeNormalizedFloat,
		NormalizedCoords: true,
	})
	defer src.DestroyTextureObject(texture)
	bytesDst.SetToTexture(device.DefaultStream, texture)
	floatDst.SetToTexture(device.DefaultStream, texture)

	bytesResult := make([]uint8, 4)
	bytesDst.Download(bytesResult)
	require.Equal(t, []uint8{0, 64, 191, 255}, bytesResult)

	floatResult := make([]float32, 4)
	floatDst.Download(floatResult)
	require.InDeltaSlice(t, []float32{0, 0.25, 0.75, 1}, floatResult, 1e-2)
}
