package emulated_test

import (
	"encoding/binary"
	"math"
	"testing"

	"github.com/gpuarsenal/pitched/device"
	"github.com/gpuarsenal/pitched/emulated"
	"github.com/stretchr/testify/require"
)

var (
	float32Channel = device.ChannelDesc{Bits: 32, Kind: device.ChannelFormatKindFloat}
	uint8Channel   = device.ChannelDesc{Bits: 8, Kind: device.ChannelFormatKindUnsigned}
)

func float32Bytes(values ...float32) []byte {
	b := make([]byte, 4*len(values))
	for i, value := range values {
		binary.NativeEndian.PutUint32(b[4*i:], math.Float32bits(value))
	}
	return b
}

func bytesFloat32(b []byte) []float32 {
	values := make([]float32, len(b)/4)
	for i := range values {
		values[i] = math.Float32frombits(binary.NativeEndian.Uint32(b[4*i:]))
	}
	return values
}

type deviceImage struct {
	ptr     device.PitchedPtr
	channel device.ChannelDesc
}

func uploadImage(t *testing.T, d *emulated.Device, channel device.ChannelDesc, width, height int, data []byte) deviceImage {
	rowBytes := width * channel.Size()
	ptr, pitch, status := d.MallocPitch(rowBytes, height)
	require.Equal(t, device.StatusSuccess, status)
	if data != nil {
		require.Equal(t, device.StatusSuccess, d.Memcpy2D(hostToDevice(ptr, pitch, data, rowBytes, height)))
	}
	return deviceImage{
		ptr:     device.PitchedPtr{Ptr: ptr, Pitch: pitch, Width: width, Height: height},
		channel: channel,
	}
}

func (i deviceImage) download(t *testing.T, d *emulated.Device) []byte {
	rowBytes := i.ptr.Width * i.channel.Size()
	data := make([]byte, rowBytes*i.ptr.Height)
	require.Equal(t, device.StatusSuccess, d.Memcpy2D(deviceToHost(i.ptr.Ptr, i.ptr.Pitch, data, rowBytes, i.ptr.Height)))
	return data
}

func (i deviceImage) resource() device.ResourceDesc {
	return device.ResourceDesc{PitchedPtr: i.ptr, Channel: i.channel}
}

func sampleInto(t *testing.T, d *emulated.Device, src, dst deviceImage, desc device.TextureDesc) {
	texture, status := d.CreateTextureObject(src.resource(), desc)
	require.Equal(t, device.StatusSuccess, status)
	require.Equal(t, device.StatusSuccess, d.LaunchSampleInto(dst.ptr, dst.channel, texture, device.DefaultStream))
	require.Equal(t, device.StatusSuccess, d.DestroyTextureObject(texture))
}

func addressing(mode device.AddressMode, filter device.FilterMode, read device.ReadMode, normalized bool) device.TextureDesc {
	return device.TextureDesc{
		AddressMode:      [2]device.AddressMode{mode, mode},
		FilterMode:       filter,
		ReadMode:         read,
		NormalizedCoords: normalized,
	}
}

func TestLaunchFillLeavesPadding(t *testing.T) {
	d := readyDevice(t, emulated.CreateOptions{PitchAlignment: 64})

	img := uploadImage(t, d, uint8Channel, 3, 4, nil)
	before := make([]byte, img.ptr.Pitch*4)
	require.Equal(t, device.StatusSuccess, d.Memcpy2D(deviceToHost(img.ptr.Ptr, img.ptr.Pitch, before, img.ptr.Pitch, 4)))

	require.Equal(t, device.StatusSuccess, d.LaunchFill(img.ptr, img.channel, []byte{7}, device.DefaultStream))

	after := make([]byte, img.ptr.Pitch*4)
	require.Equal(t, device.StatusSuccess, d.Memcpy2D(deviceToHost(img.ptr.Ptr, img.ptr.Pitch, after, img.ptr.Pitch, 4)))
	for row := 0; row < 4; row++ {
		start := row * img.ptr.Pitch
		require.Equal(t, []byte{7, 7, 7}, after[start:start+3])
		require.Equal(t, before[start+3:start+img.ptr.Pitch], after[start+3:start+img.ptr.Pitch])
	}

	require.Equal(t, device.StatusInvalidValue, d.LaunchFill(img.ptr, img.channel, []byte{7, 7}, device.DefaultStream))
	require.Equal(t, device.StatusInvalidChannelDesc, d.LaunchFill(img.ptr, device.ChannelDesc{Bits: 12}, []byte{7}, device.DefaultStream))
}

func TestLaunchFillFloat(t *testing.T) {
	d := readyDevice(t, emulated.CreateOptions{})

	img := uploadImage(t, d, float32Channel, 5, 2, nil)
	require.Equal(t, device.StatusSuccess, d.LaunchFill(img.ptr, img.channel, float32Bytes(-1.5), device.DefaultStream))
	require.Equal(t, []float32{-1.5, -1.5, -1.5, -1.5, -1.5, -1.5, -1.5, -1.5, -1.5, -1.5}, bytesFloat32(img.download(t, d)))
}

func TestSampleIntoPointCopies(t *testing.T) {
	d := readyDevice(t, emulated.CreateOptions{})

	src := uploadImage(t, d, float32Channel, 4, 2, float32Bytes(0, 1, 2, 3, 10, 11, 12, 13))
	dst := uploadImage(t, d, float32Channel, 4, 2, nil)

	sampleInto(t, d, src, dst, addressing(device.AddressModeClamp, device.FilterModePoint, device.ReadModeElementType, false))
	require.Equal(t, []float32{0, 1, 2, 3, 10, 11, 12, 13}, bytesFloat32(dst.download(t, d)))
}

func TestSampleIntoClampRepeatsEdges(t *testing.T) {
	d := readyDevice(t, emulated.CreateOptions{})

	src := uploadImage(t, d, float32Channel, 2, 2, float32Bytes(1, 2, 3, 4))
	dst := uploadImage(t, d, float32Channel, 3, 3, nil)

	sampleInto(t, d, src, dst, addressing(device.AddressModeClamp, device.FilterModePoint, device.ReadModeElementType, false))
	require.Equal(t, []float32{
		1, 2, 2,
		3, 4, 4,
		3, 4, 4,
	}, bytesFloat32(dst.download(t, d)))
}

func TestSampleIntoBorderReturnsZero(t *testing.T) {
	d := readyDevice(t, emulated.CreateOptions{})

	src := uploadImage(t, d, float32Channel, 2, 2, float32Bytes(1, 2, 3, 4))
	dst := uploadImage(t, d, float32Channel, 3, 3, nil)

	sampleInto(t, d, src, dst, addressing(device.AddressModeBorder, device.FilterModePoint, device.ReadModeElementType, false))
	require.Equal(t, []float32{
		1, 2, 0,
		3, 4, 0,
		0, 0, 0,
	}, bytesFloat32(dst.download(t, d)))
}

func TestSampleIntoLinearInterpolates(t *testing.T) {
	d := readyDevice(t, emulated.CreateOptions{})

	src := uploadImage(t, d, float32Channel, 2, 1, float32Bytes(0, 10))
	dst := uploadImage(t, d, float32Channel, 4, 1, nil)

	sampleInto(t, d, src, dst, addressing(device.AddressModeClamp, device.FilterModeLinear, device.ReadModeElementType, true))
	require.Equal(t, []float32{0, 2.5, 7.5, 10}, bytesFloat32(dst.download(t, d)))
}

func TestSampleIntoNormalizedRead(t *testing.T) {
	d := readyDevice(t, emulated.CreateOptions{})

	src := uploadImage(t, d, uint8Channel, 2, 1, []byte{0, 255})
	bytesDst := uploadImage(t, d, uint8Channel, 4, 1, nil)
	floatDst := uploadImage(t, d, float32Channel, 4, 1, nil)

	desc := addressing(device.AddressModeClamp, device.FilterModeLinear, device.ReadModeNormalizedFloat, true)
	sampleInto(t, d, src, bytesDst, desc)
	sampleInto(t, d, src, floatDst, desc)

	require.Equal(t, []byte{0, 64, 191, 255}, bytesDst.download(t, d))
	require.Equal(t, []float32{0, 0.25, 0.75, 1}, bytesFloat32(floatDst.download(t, d)))
}

func TestCreateTextureObjectValidation(t *testing.T) {
	d := readyDevice(t, emulated.CreateOptions{PitchAlignment: 64})

	img := uploadImage(t, d, uint8Channel, 8, 2, nil)
	point := addressing(device.AddressModeClamp, device.FilterModePoint, device.ReadModeElementType, false)

	_, status := d.CreateTextureObject(img.resource(), addressing(device.AddressModeClamp, device.FilterModeLinear, device.ReadModeElementType, false))
	require.Equal(t, device.StatusInvalidFilterSet, status)

	resource := img.resource()
	resource.Pitch = 32
	_, status = d.CreateTextureObject(resource, point)
	require.Equal(t, device.StatusInvalidPitchValue, status)

	resource = img.resource()
	resource.Channel = device.ChannelDesc{Bits: 24, Kind: device.ChannelFormatKindUnsigned}
	_, status = d.CreateTextureObject(resource, point)
	require.Equal(t, device.StatusInvalidChannelDesc, status)

	resource = img.resource()
	resource.Width = 0
	_, status = d.CreateTextureObject(resource, point)
	require.Equal(t, device.StatusInvalidValue, status)

	_, status = d.CreateTextureObject(img.resource(), addressing(device.AddressMode(9), device.FilterModePoint, device.ReadModeElementType, false))
	require.Equal(t, device.StatusInvalidValue, status)
}

func TestTextureObjectLifetime(t *testing.T) {
	d := readyDevice(t, emulated.CreateOptions{})

	img := uploadImage(t, d, float32Channel, 4, 4, nil)
	desc := addressing(device.AddressModeClamp, device.FilterModePoint, device.ReadModeElementType, false)

	first, status := d.CreateTextureObject(img.resource(), desc)
	require.Equal(t, device.StatusSuccess, status)
	second, status := d.CreateTextureObject(img.resource(), desc)
	require.Equal(t, device.StatusSuccess, status)
	require.NotEqual(t, first, second)
	require.Equal(t, 2, d.Statistics().TextureObjectCount)

	require.Equal(t, device.StatusSuccess, d.DestroyTextureObject(first))
	require.Equal(t, device.StatusInvalidResHandle, d.DestroyTextureObject(first))
	require.Equal(t, device.StatusInvalidResHandle, d.LaunchSampleInto(img.ptr, img.channel, first, device.DefaultStream))
	require.Equal(t, 1, d.Statistics().TextureObjectCount)

	require.Equal(t, device.StatusSuccess, d.DestroyTextureObject(second))
	require.Equal(t, 0, d.Statistics().TextureObjectCount)
}
