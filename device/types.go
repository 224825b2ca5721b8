package device

import (
	"fmt"
	"unsafe"
)

// Ptr is an address in device memory. It is never dereferenced on the host.
type Ptr uintptr

// Stream identifies an execution stream. Work enqueued on one stream runs in enqueue order.
// The zero Stream is the runtime's default stream.
type Stream uintptr

// DefaultStream is the stream that synchronous operations are ordered against
const DefaultStream Stream = 0

// TextureObject is an opaque handle to a sampler object created by Runtime.CreateTextureObject.
// Zero is never a valid handle.
type TextureObject uint64

// ChannelFormatKind is the numeric interpretation of a channel's bits
type ChannelFormatKind int32

const (
	ChannelFormatKindSigned ChannelFormatKind = iota
	ChannelFormatKindUnsigned
	ChannelFormatKindFloat
)

var channelFormatKindMapping = map[ChannelFormatKind]string{
	ChannelFormatKindSigned:   "ChannelFormatKindSigned",
	ChannelFormatKindUnsigned: "ChannelFormatKindUnsigned",
	ChannelFormatKindFloat:    "ChannelFormatKindFloat",
}

func (k ChannelFormatKind) String() string {
	return channelFormatKindMapping[k]
}

// ChannelDesc describes the single channel stored in each element of an allocation
type ChannelDesc struct {
	Bits int
	Kind ChannelFormatKind
}

// Size is the size in bytes of one element
func (d ChannelDesc) Size() int {
	return d.Bits / 8
}

func (d ChannelDesc) String() string {
	return fmt.Sprintf("%s%d", d.Kind, d.Bits)
}

// PitchedPtr locates a pitched 2-D region of device memory. Width and Height are in elements,
// Pitch is the distance between rows in bytes.
type PitchedPtr struct {
	Ptr    Ptr
	Pitch  int
	Width  int
	Height int
}

// ResourceDesc describes the memory a sampler object reads from
type ResourceDesc struct {
	PitchedPtr
	Channel ChannelDesc
}

// AddressMode decides how out-of-range coordinates are resolved
type AddressMode int32

const (
	AddressModeWrap AddressMode = iota
	AddressModeClamp
	AddressModeMirror
	AddressModeBorder
)

var addressModeMapping = map[AddressMode]string{
	AddressModeWrap:   "AddressModeWrap",
	AddressModeClamp:  "AddressModeClamp",
	AddressModeMirror: "AddressModeMirror",
	AddressModeBorder: "AddressModeBorder",
}

func (m AddressMode) String() string {
	return addressModeMapping[m]
}

// FilterMode decides how a sampler combines neighbouring elements
type FilterMode int32

const (
	FilterModePoint FilterMode = iota
	FilterModeLinear
)

var filterModeMapping = map[FilterMode]string{
	FilterModePoint:  "FilterModePoint",
	FilterModeLinear: "FilterModeLinear",
}

func (m FilterMode) String() string {
	return filterModeMapping[m]
}

// ReadMode decides whether integer elements are returned as-is or promoted to normalized floats
type ReadMode int32

const (
	ReadModeElementType ReadMode = iota
	ReadModeNormalizedFloat
)

var readModeMapping = map[ReadMode]string{
	ReadModeElementType:     "ReadModeElementType",
	ReadModeNormalizedFloat: "ReadModeNormalizedFloat",
}

func (m ReadMode) String() string {
	return readModeMapping[m]
}

// TextureDesc is the sampling configuration of a sampler object
type TextureDesc struct {
	AddressMode      [2]AddressMode
	FilterMode       FilterMode
	ReadMode         ReadMode
	NormalizedCoords bool
}

// MemcpyKind is the direction of a 2-D copy
type MemcpyKind int32

const (
	MemcpyHostToDevice MemcpyKind = 1
	MemcpyDeviceToHost MemcpyKind = 2
)

var memcpyKindMapping = map[MemcpyKind]string{
	MemcpyHostToDevice: "MemcpyHostToDevice",
	MemcpyDeviceToHost: "MemcpyDeviceToHost",
}

func (k MemcpyKind) String() string {
	return memcpyKindMapping[k]
}

// Memcpy2DParams describes a rectangular copy between host memory and device memory.
// WidthBytes bytes are copied from each of Height rows. Rows are DevicePitch bytes apart on
// the device and HostPitch bytes apart on the host.
type Memcpy2DParams struct {
	Kind MemcpyKind

	Device      Ptr
	DevicePitch int

	Host      unsafe.Pointer
	HostPitch int

	WidthBytes int
	Height     int
}
