package devbuf

import (
	"github.com/gpuarsenal/pitched/device"
)

// Storage describes one pitched 2-D allocation: where it lives, how far apart its rows are, and
// how many elements of T it holds. The memory belongs to the Buffer that created the Storage.
type Storage[T Element] struct {
	runtime device.Runtime
	channel device.ChannelDesc

	address device.Ptr
	pitch   int
	width   int
	height  int
}

func (s *Storage[T]) Address() device.Ptr { return s.address }

// Pitch is the distance between the starts of consecutive rows in bytes
func (s *Storage[T]) Pitch() int  { return s.pitch }
func (s *Storage[T]) Width() int  { return s.width }
func (s *Storage[T]) Height() int { return s.height }

// RowBytes is the number of bytes of element data in each row, excluding padding
func (s *Storage[T]) RowBytes() int {
	return s.width * s.channel.Size()
}

func (s *Storage[T]) Channel() device.ChannelDesc { return s.channel }

func (s *Storage[T]) PitchedPtr() device.PitchedPtr {
	return device.PitchedPtr{
		Ptr:    s.address,
		Pitch:  s.pitch,
		Width:  s.width,
		Height: s.height,
	}
}

// Clear enqueues a fill of every element with value on stream. Row padding is left alone.
func (s *Storage[T]) Clear(stream device.Stream, value T) {
	check("LaunchFill", s.runtime.LaunchFill(s.PitchedPtr(), s.channel, elementBytes(value), stream))
}

// SetTo enqueues a kernel on stream that replaces every element with the value texture
// samples at that element's centre
func (s *Storage[T]) SetTo(stream device.Stream, texture device.TextureObject) {
	check("LaunchSampleInto", s.runtime.LaunchSampleInto(s.PitchedPtr(), s.channel, texture, stream))
}
