package devbuf

import (
	"reflect"
	"unsafe"

	"github.com/gpuarsenal/pitched/device"
	"github.com/x448/float16"
)

// Element is the set of types a buffer can hold. float16.Float16 is accepted through its
// uint16 underlying type and described to the device as a 16-bit float.
type Element interface {
	~uint8 | ~int8 | ~uint16 | ~int16 | ~uint32 | ~int32 | ~float32
}

// ChannelDescOf returns the channel layout of T
func ChannelDescOf[T Element]() device.ChannelDesc {
	var zero T
	bits := int(unsafe.Sizeof(zero)) * 8

	if _, isHalf := any(zero).(float16.Float16); isHalf {
		return device.ChannelDesc{Bits: bits, Kind: device.ChannelFormatKindFloat}
	}

	switch reflect.TypeOf(zero).Kind() {
	case reflect.Float32:
		return device.ChannelDesc{Bits: bits, Kind: device.ChannelFormatKindFloat}
	case reflect.Int8, reflect.Int16, reflect.Int32:
		return device.ChannelDesc{Bits: bits, Kind: device.ChannelFormatKindSigned}
	}
	return device.ChannelDesc{Bits: bits, Kind: device.ChannelFormatKindUnsigned}
}

func elementSize[T Element]() int {
	var zero T
	return int(unsafe.Sizeof(zero))
}

func elementBytes[T Element](value T) []byte {
	raw := unsafe.Slice((*byte)(unsafe.Pointer(&value)), unsafe.Sizeof(value))
	return append([]byte(nil), raw...)
}
