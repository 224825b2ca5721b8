// Package devbuf manages typed, pitched 2-D buffers in device memory.
//
// A Buffer allocates its memory once in New and frees it in Destroy. In between it copies data
// between the device and host slices or mat images, synchronously or on a stream, and hands
// out sampler objects over its memory. The most recently requested sampler configuration is
// cached so that asking for the same configuration again costs no runtime calls.
//
// Failures are not returned. Caller misuse panics with an error marked ErrPrecondition, and a
// failing runtime call panics with an error marked ErrDeviceRuntime.
package devbuf

import (
	"github.com/gpuarsenal/pitched/device"
	"github.com/gpuarsenal/pitched/internal/utils"
	"github.com/vkngwrapper/core/v2/common"
	"golang.org/x/exp/slog"
)

// CreateFlags indicate specific buffer behaviors to activate or deactivate
type CreateFlags int32

var createFlagsMapping = common.NewFlagStringMapping[CreateFlags]()

func (f CreateFlags) Register(str string) {
	createFlagsMapping.Register(f, str)
}
func (f CreateFlags) String() string {
	return createFlagsMapping.FlagsToString(f)
}

const (
	// BufferCreateInternallySynchronized guards the sampler cache and Destroy with a mutex. Without
	// it the consumer must not call CachedTextureObject or Destroy concurrently with any other
	// method.
	BufferCreateInternallySynchronized CreateFlags = 1 << iota
)

func init() {
	BufferCreateInternallySynchronized.Register("BufferCreateInternallySynchronized")
}

// CreateOptions contains optional settings when creating a buffer
type CreateOptions struct {
	Flags CreateFlags
}

type cachedSampler struct {
	params SamplerParams
	object device.TextureObject
}

// Buffer owns one pitched device allocation of height x width elements of T
type Buffer[T Element] struct {
	logger  *slog.Logger
	runtime device.Runtime
	storage Storage[T]

	mutex     utils.OptionalMutex
	sampler   *cachedSampler
	destroyed bool
}

// New allocates a height x width buffer on runtime. A nil logger discards all output.
func New[T Element](logger *slog.Logger, runtime device.Runtime, height, width int, options CreateOptions) *Buffer[T] {
	if runtime == nil {
		failPrecondition("devbuf.New: runtime must not be nil")
	}
	if height <= 0 || width <= 0 {
		failPrecondition("devbuf.New: buffer dimensions must be positive, got %d x %d", width, height)
	}

	b := &Buffer[T]{
		logger:  utils.LoggerOrNop(logger),
		runtime: runtime,
		storage: Storage[T]{
			runtime: runtime,
			channel: ChannelDescOf[T](),
			width:   width,
			height:  height,
		},
		mutex: utils.OptionalMutex{
			UseMutex: options.Flags&BufferCreateInternallySynchronized != 0,
		},
	}

	widthBytes := b.storage.RowBytes()
	address, pitch, status := runtime.MallocPitch(widthBytes, height)
	check("MallocPitch", status)
	b.storage.address = address
	b.storage.pitch = pitch

	b.logger.Debug("Buffer::New",
		slog.Int("Width", width),
		slog.Int("Height", height),
		slog.String("Channel", b.storage.channel.String()),
		slog.String("Flags", options.Flags.String()))

	if pitch != widthBytes {
		b.logger.Warn("pitch does not match width",
			slog.Int("WidthBytes", widthBytes),
			slog.Int("PitchBytes", pitch),
			slog.Int("Width", width),
			slog.Int("Height", height))
	}

	return b
}

// Destroy releases the cached sampler object, if any, and then the device allocation
func (b *Buffer[T]) Destroy() {
	b.mutex.Lock()
	defer b.mutex.Unlock()

	b.requireLive("Destroy")
	b.logger.Debug("Buffer::Destroy")

	if b.sampler != nil {
		check("DestroyTextureObject", b.runtime.DestroyTextureObject(b.sampler.object))
		b.sampler = nil
	}

	check("Free", b.runtime.Free(b.storage.address))
	b.destroyed = true
}

func (b *Buffer[T]) requireLive(op string) {
	if b.destroyed {
		failPrecondition("Buffer.%s: buffer has been destroyed", op)
	}
}

func (b *Buffer[T]) Width() int  { return b.storage.width }
func (b *Buffer[T]) Height() int { return b.storage.height }

// Storage returns the buffer's device storage descriptor
func (b *Buffer[T]) Storage() *Storage[T] {
	return &b.storage
}

// Clear enqueues a fill of every element with value on stream
func (b *Buffer[T]) Clear(stream device.Stream, value T) {
	b.requireLive("Clear")
	b.logger.Debug("Buffer::Clear")

	b.storage.Clear(stream, value)
}
