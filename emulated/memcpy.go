package emulated

import (
	"unsafe"

	"github.com/gpuarsenal/pitched/device"
	"github.com/gpuarsenal/pitched/memutils"
)

// prepareCopy validates params and resolves both sides of the copy. The returned work closure
// performs the copy; it is nil when there is nothing to copy.
func (d *Device) prepareCopy(params device.Memcpy2DParams) (func(), device.Status) {
	if params.Kind != device.MemcpyHostToDevice && params.Kind != device.MemcpyDeviceToHost {
		return nil, device.StatusInvalidMemcpyDir
	}
	if params.WidthBytes < 0 || params.Height < 0 {
		return nil, device.StatusInvalidValue
	}
	if params.WidthBytes == 0 || params.Height == 0 {
		return nil, device.StatusSuccess
	}
	if params.Host == nil || params.Device == 0 {
		return nil, device.StatusInvalidValue
	}
	if params.DevicePitch < params.WidthBytes || params.HostPitch < params.WidthBytes {
		return nil, device.StatusInvalidPitchValue
	}

	deviceMemory, status := d.resolve(params.Device, memutils.PitchedSpan(params.DevicePitch, params.WidthBytes, params.Height))
	if status != device.StatusSuccess {
		return nil, status
	}
	hostMemory := unsafe.Slice((*byte)(params.Host), memutils.PitchedSpan(params.HostPitch, params.WidthBytes, params.Height))

	dst, dstPitch, src, srcPitch := deviceMemory, params.DevicePitch, hostMemory, params.HostPitch
	if params.Kind == device.MemcpyDeviceToHost {
		dst, dstPitch, src, srcPitch = hostMemory, params.HostPitch, deviceMemory, params.DevicePitch
	}

	return func() {
		for row := 0; row < params.Height; row++ {
			copy(dst[row*dstPitch:row*dstPitch+params.WidthBytes], src[row*srcPitch:row*srcPitch+params.WidthBytes])
		}
	}, device.StatusSuccess
}

func (d *Device) Memcpy2D(params device.Memcpy2DParams) device.Status {
	work, status := d.prepareCopy(params)
	if status != device.StatusSuccess || work == nil {
		return status
	}

	return d.submit(device.DefaultStream, work)
}

func (d *Device) Memcpy2DAsync(params device.Memcpy2DParams, stream device.Stream) device.Status {
	work, status := d.prepareCopy(params)
	if status != device.StatusSuccess || work == nil {
		return status
	}

	return d.submit(stream, work)
}
