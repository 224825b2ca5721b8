package emulated

import (
	"testing"

	"github.com/gpuarsenal/pitched/device"
	"github.com/stretchr/testify/require"
)

func TestResolveCoordinate(t *testing.T) {
	cases := []struct {
		mode   device.AddressMode
		i      int
		want   int
		inside bool
	}{
		{device.AddressModeWrap, -1, 3, true},
		{device.AddressModeWrap, 5, 1, true},
		{device.AddressModeWrap, -9, 3, true},
		{device.AddressModeMirror, -1, 0, true},
		{device.AddressModeMirror, 4, 3, true},
		{device.AddressModeMirror, 5, 2, true},
		{device.AddressModeMirror, 8, 0, true},
		{device.AddressModeClamp, -3, 0, true},
		{device.AddressModeClamp, 9, 3, true},
		{device.AddressModeClamp, 2, 2, true},
		{device.AddressModeBorder, -1, -1, false},
		{device.AddressModeBorder, 4, 4, false},
		{device.AddressModeBorder, 3, 3, true},
	}

	for _, c := range cases {
		got, inside := resolveCoordinate(c.i, 4, c.mode)
		require.Equal(t, c.inside, inside, "%s %d", c.mode, c.i)
		if inside {
			require.Equal(t, c.want, got, "%s %d", c.mode, c.i)
		}
	}
}

func rowTexture(mode device.AddressMode, normalized bool, values ...float64) *texture {
	channel := device.ChannelDesc{Bits: 32, Kind: device.ChannelFormatKindFloat}
	memory := make([]byte, 4*len(values))
	for i, value := range values {
		writeElement(channel, memory[4*i:4*i+4], value)
	}

	return &texture{
		resource: device.ResourceDesc{
			PitchedPtr: device.PitchedPtr{Pitch: len(memory), Width: len(values), Height: 1},
			Channel:    channel,
		},
		desc: device.TextureDesc{
			AddressMode:      [2]device.AddressMode{mode, device.AddressModeClamp},
			FilterMode:       device.FilterModePoint,
			ReadMode:         device.ReadModeElementType,
			NormalizedCoords: normalized,
		},
		memory: memory,
	}
}

func TestSampleWrapAndMirror(t *testing.T) {
	wrap := rowTexture(device.AddressModeWrap, true, 0, 1, 2, 3)
	require.Equal(t, 0.0, wrap.sample(1.125, 0.5))
	require.Equal(t, 3.0, wrap.sample(-0.125, 0.5))

	mirror := rowTexture(device.AddressModeMirror, true, 0, 1, 2, 3)
	require.Equal(t, 3.0, mirror.sample(1.125, 0.5))
	require.Equal(t, 0.0, mirror.sample(-0.125, 0.5))
}

func TestUnnormalizedWrapClamps(t *testing.T) {
	wrap := rowTexture(device.AddressModeWrap, false, 0, 1, 2, 3)
	require.Equal(t, device.AddressModeClamp, wrap.addressMode(0))
	require.Equal(t, 3.0, wrap.sample(4.5, 0.5))
	require.Equal(t, 0.0, wrap.sample(-2.5, 0.5))
}

func TestWriteElementSaturates(t *testing.T) {
	b := make([]byte, 2)

	signed := device.ChannelDesc{Bits: 16, Kind: device.ChannelFormatKindSigned}
	writeElement(signed, b, 40000)
	require.Equal(t, 32767.0, readElement(signed, b))
	writeElement(signed, b, -40000)
	require.Equal(t, -32768.0, readElement(signed, b))

	unsigned := device.ChannelDesc{Bits: 8, Kind: device.ChannelFormatKindUnsigned}
	writeElement(unsigned, b, -3)
	require.Equal(t, 0.0, readElement(unsigned, b))
	writeElement(unsigned, b, 2.5)
	require.Equal(t, 3.0, readElement(unsigned, b))

	half := device.ChannelDesc{Bits: 16, Kind: device.ChannelFormatKindFloat}
	writeElement(half, b, 0.5)
	require.Equal(t, 0.5, readElement(half, b))
}

func TestNormalize(t *testing.T) {
	signed := device.ChannelDesc{Bits: 8, Kind: device.ChannelFormatKindSigned}
	require.Equal(t, 1.0, normalize(signed, 127))
	require.Equal(t, -1.0, normalize(signed, -128))
	require.Equal(t, 127.0, denormalize(signed, 1))

	float := device.ChannelDesc{Bits: 32, Kind: device.ChannelFormatKindFloat}
	require.Equal(t, 7.5, normalize(float, 7.5))
}
