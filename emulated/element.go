package emulated

import (
	"encoding/binary"
	"math"

	"github.com/gpuarsenal/pitched/device"
	"github.com/x448/float16"
)

func validChannel(channel device.ChannelDesc) bool {
	switch channel.Kind {
	case device.ChannelFormatKindSigned, device.ChannelFormatKindUnsigned:
		return channel.Bits == 8 || channel.Bits == 16 || channel.Bits == 32
	case device.ChannelFormatKindFloat:
		return channel.Bits == 16 || channel.Bits == 32
	}
	return false
}

// channelRange is the representable range of an integer channel. Float channels report (0, 0).
func channelRange(channel device.ChannelDesc) (float64, float64) {
	switch channel.Kind {
	case device.ChannelFormatKindSigned:
		half := math.Ldexp(1, channel.Bits-1)
		return -half, half - 1
	case device.ChannelFormatKindUnsigned:
		return 0, math.Ldexp(1, channel.Bits) - 1
	}
	return 0, 0
}

// normalize maps an integer element onto [0, 1] for unsigned channels and [-1, 1] for signed ones
func normalize(channel device.ChannelDesc, value float64) float64 {
	_, high := channelRange(channel)
	if high == 0 {
		return value
	}
	return math.Max(value/high, -1)
}

func denormalize(channel device.ChannelDesc, value float64) float64 {
	_, high := channelRange(channel)
	if high == 0 {
		return value
	}
	return value * high
}

func readElement(channel device.ChannelDesc, b []byte) float64 {
	switch channel.Kind {
	case device.ChannelFormatKindFloat:
		if channel.Bits == 16 {
			return float64(float16.Frombits(binary.NativeEndian.Uint16(b)).Float32())
		}
		return float64(math.Float32frombits(binary.NativeEndian.Uint32(b)))
	case device.ChannelFormatKindSigned:
		switch channel.Bits {
		case 8:
			return float64(int8(b[0]))
		case 16:
			return float64(int16(binary.NativeEndian.Uint16(b)))
		}
		return float64(int32(binary.NativeEndian.Uint32(b)))
	}

	switch channel.Bits {
	case 8:
		return float64(b[0])
	case 16:
		return float64(binary.NativeEndian.Uint16(b))
	}
	return float64(binary.NativeEndian.Uint32(b))
}

// writeElement stores value into b. Integer channels round to nearest and saturate.
func writeElement(channel device.ChannelDesc, b []byte, value float64) {
	if channel.Kind == device.ChannelFormatKindFloat {
		if channel.Bits == 16 {
			binary.NativeEndian.PutUint16(b, float16.Fromfloat32(float32(value)).Bits())
			return
		}
		binary.NativeEndian.PutUint32(b, math.Float32bits(float32(value)))
		return
	}

	low, high := channelRange(channel)
	value = math.Min(math.Max(math.Round(value), low), high)

	if channel.Kind == device.ChannelFormatKindSigned {
		switch channel.Bits {
		case 8:
			b[0] = byte(int8(value))
		case 16:
			binary.NativeEndian.PutUint16(b, uint16(int16(value)))
		default:
			binary.NativeEndian.PutUint32(b, uint32(int32(value)))
		}
		return
	}

	switch channel.Bits {
	case 8:
		b[0] = byte(value)
	case 16:
		binary.NativeEndian.PutUint16(b, uint16(value))
	default:
		binary.NativeEndian.PutUint32(b, uint32(value))
	}
}
