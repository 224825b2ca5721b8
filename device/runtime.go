// Package device defines the contract between pitched buffers and the runtime that owns device
// memory, streams, and sampler objects. Every call reports a Status instead of an error so that
// backends can surface the runtime's own codes unchanged.
package device

//go:generate mockgen -source=runtime.go -destination=mocks/mock_runtime.go -package=mocks

// Runtime is the device-runtime collaborator
type Runtime interface {
	// MallocPitch allocates height rows of at least widthBytes bytes each, returning the base
	// address and the pitch the runtime chose. The pitch is never less than widthBytes.
	MallocPitch(widthBytes, height int) (Ptr, int, Status)
	// Free releases memory returned by MallocPitch
	Free(ptr Ptr) Status

	// Memcpy2D performs a blocking copy ordered after all work already enqueued on DefaultStream
	Memcpy2D(params Memcpy2DParams) Status
	// Memcpy2DAsync enqueues a copy on stream and returns before it completes. The host memory
	// must stay untouched until the stream is synchronized.
	Memcpy2DAsync(params Memcpy2DParams, stream Stream) Status

	// LaunchFill enqueues a kernel writing value into every element of dst. value holds exactly
	// one element of channel's layout.
	LaunchFill(dst PitchedPtr, channel ChannelDesc, value []byte, stream Stream) Status
	// LaunchSampleInto enqueues a kernel replacing every element (x, y) of dst with the value
	// texture samples at the centre of element (x, y)
	LaunchSampleInto(dst PitchedPtr, channel ChannelDesc, texture TextureObject, stream Stream) Status

	CreateTextureObject(resource ResourceDesc, texture TextureDesc) (TextureObject, Status)
	DestroyTextureObject(texture TextureObject) Status

	StreamCreate() (Stream, Status)
	StreamSynchronize(stream Stream) Status
	StreamDestroy(stream Stream) Status
	DeviceSynchronize() Status
}
