//go:build cuda

package cuda

//go:generate nvcc -O3 -Xcompiler -fPIC -c kernels.cu -o kernels.o
//go:generate ar rcs libpitchedkernels.a kernels.o

/*
#cgo CFLAGS: -I/usr/local/cuda/include
#cgo LDFLAGS: -L${SRCDIR} -lpitchedkernels -lcudart -lstdc++ -L/usr/local/cuda/lib64/
#include <cuda_runtime.h>
#include "kernels.h"
*/
import "C"

import (
	"fmt"
	"unsafe"

	"github.com/dolthub/swiss"
	"github.com/gpuarsenal/pitched/device"
	"github.com/gpuarsenal/pitched/internal/utils"
	"golang.org/x/exp/slog"
)

// Device issues runtime calls against the current CUDA device of the calling thread
type Device struct {
	logger *slog.Logger

	streamMutex utils.OptionalRWMutex
	streams     *swiss.Map[device.Stream, C.cudaStream_t]
	nextStream  device.Stream
}

var _ device.Runtime = &Device{}

// New wraps the CUDA runtime. A nil logger discards all output.
func New(logger *slog.Logger) *Device {
	return &Device{
		logger:      utils.LoggerOrNop(logger),
		streamMutex: utils.OptionalRWMutex{UseMutex: true},
		streams:     swiss.NewMap[device.Stream, C.cudaStream_t](4),
		nextStream:  1,
	}
}

func status(err C.cudaError_t) device.Status {
	return device.Status(err)
}

func pointer(ptr device.Ptr) unsafe.Pointer {
	return unsafe.Pointer(uintptr(ptr))
}

func (d *Device) stream(handle device.Stream) (C.cudaStream_t, device.Status) {
	if handle == device.DefaultStream {
		return nil, device.StatusSuccess
	}

	d.streamMutex.RLock()
	defer d.streamMutex.RUnlock()

	s, ok := d.streams.Get(handle)
	if !ok {
		return nil, device.StatusInvalidResHandle
	}
	return s, device.StatusSuccess
}

func (d *Device) MallocPitch(widthBytes, height int) (device.Ptr, int, device.Status) {
	var ptr unsafe.Pointer
	var pitch C.size_t
	result := status(C.cudaMallocPitch(&ptr, &pitch, C.size_t(widthBytes), C.size_t(height)))
	if result != device.StatusSuccess {
		return 0, 0, result
	}

	d.logger.Debug("Device::MallocPitch",
		slog.String("Address", fmt.Sprintf("%#x", uintptr(ptr))),
		slog.Int("Pitch", int(pitch)),
		slog.Int("Height", height))

	return device.Ptr(uintptr(ptr)), int(pitch), device.StatusSuccess
}

func (d *Device) Free(ptr device.Ptr) device.Status {
	d.logger.Debug("Device::Free", slog.String("Address", fmt.Sprintf("%#x", uintptr(ptr))))
	return status(C.cudaFree(pointer(ptr)))
}

func copyEnds(params device.Memcpy2DParams) (dst unsafe.Pointer, dstPitch int, src unsafe.Pointer, srcPitch int) {
	if params.Kind == device.MemcpyDeviceToHost {
		return params.Host, params.HostPitch, pointer(params.Device), params.DevicePitch
	}
	return pointer(params.Device), params.DevicePitch, params.Host, params.HostPitch
}

func (d *Device) Memcpy2D(params device.Memcpy2DParams) device.Status {
	dst, dstPitch, src, srcPitch := copyEnds(params)
	return status(C.cudaMemcpy2D(dst, C.size_t(dstPitch), src, C.size_t(srcPitch),
		C.size_t(params.WidthBytes), C.size_t(params.Height), C.enum_cudaMemcpyKind(params.Kind)))
}

// Memcpy2DAsync enqueues a copy on handle. Host memory that is not page-locked is staged by the
// driver, so the copy may complete before the call returns.
func (d *Device) Memcpy2DAsync(params device.Memcpy2DParams, handle device.Stream) device.Status {
	s, result := d.stream(handle)
	if result != device.StatusSuccess {
		return result
	}

	dst, dstPitch, src, srcPitch := copyEnds(params)
	return status(C.cudaMemcpy2DAsync(dst, C.size_t(dstPitch), src, C.size_t(srcPitch),
		C.size_t(params.WidthBytes), C.size_t(params.Height), C.enum_cudaMemcpyKind(params.Kind), s))
}

func (d *Device) LaunchFill(dst device.PitchedPtr, channel device.ChannelDesc, value []byte, handle device.Stream) device.Status {
	if len(value) != channel.Size() {
		return device.StatusInvalidValue
	}
	s, result := d.stream(handle)
	if result != device.StatusSuccess {
		return result
	}

	return status(C.pitched_launch_fill(pointer(dst.Ptr), C.size_t(dst.Pitch), C.int(dst.Width), C.int(dst.Height),
		unsafe.Pointer(&value[0]), C.int(len(value)), s))
}

func (d *Device) LaunchSampleInto(dst device.PitchedPtr, channel device.ChannelDesc, texture device.TextureObject, handle device.Stream) device.Status {
	s, result := d.stream(handle)
	if result != device.StatusSuccess {
		return result
	}

	return status(C.pitched_launch_sample_into(pointer(dst.Ptr), C.size_t(dst.Pitch), C.int(dst.Width), C.int(dst.Height),
		C.int(channel.Bits), C.int(channel.Kind), C.cudaTextureObject_t(texture), s))
}

func (d *Device) CreateTextureObject(resource device.ResourceDesc, desc device.TextureDesc) (device.TextureObject, device.Status) {
	normalized := 0
	if desc.NormalizedCoords {
		normalized = 1
	}

	var texture C.cudaTextureObject_t
	result := status(C.pitched_create_texture(pointer(resource.Ptr), C.size_t(resource.Pitch),
		C.size_t(resource.Width), C.size_t(resource.Height),
		C.int(resource.Channel.Bits), C.int(resource.Channel.Kind),
		C.int(desc.AddressMode[0]), C.int(desc.AddressMode[1]),
		C.int(desc.FilterMode), C.int(desc.ReadMode), C.int(normalized),
		&texture))
	if result != device.StatusSuccess {
		return 0, result
	}

	d.logger.Debug("Device::CreateTextureObject", slog.Int("Texture", int(texture)))
	return device.TextureObject(texture), device.StatusSuccess
}

func (d *Device) DestroyTextureObject(texture device.TextureObject) device.Status {
	d.logger.Debug("Device::DestroyTextureObject", slog.Int("Texture", int(texture)))
	return status(C.cudaDestroyTextureObject(C.cudaTextureObject_t(texture)))
}

func (d *Device) StreamCreate() (device.Stream, device.Status) {
	var s C.cudaStream_t
	result := status(C.cudaStreamCreate(&s))
	if result != device.StatusSuccess {
		return 0, result
	}

	d.streamMutex.Lock()
	defer d.streamMutex.Unlock()

	handle := d.nextStream
	d.nextStream++
	d.streams.Put(handle, s)

	d.logger.Debug("Device::StreamCreate", slog.Int("Stream", int(handle)))
	return handle, device.StatusSuccess
}

func (d *Device) StreamSynchronize(handle device.Stream) device.Status {
	s, result := d.stream(handle)
	if result != device.StatusSuccess {
		return result
	}
	return status(C.cudaStreamSynchronize(s))
}

func (d *Device) StreamDestroy(handle device.Stream) device.Status {
	if handle == device.DefaultStream {
		return device.StatusInvalidResHandle
	}

	d.streamMutex.Lock()
	s, ok := d.streams.Get(handle)
	if ok {
		d.streams.Delete(handle)
	}
	d.streamMutex.Unlock()
	if !ok {
		return device.StatusInvalidResHandle
	}

	d.logger.Debug("Device::StreamDestroy", slog.Int("Stream", int(handle)))
	return status(C.cudaStreamDestroy(s))
}

func (d *Device) DeviceSynchronize() device.Status {
	return status(C.cudaDeviceSynchronize())
}
