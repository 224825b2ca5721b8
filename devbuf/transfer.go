package devbuf

import (
	"unsafe"

	"github.com/gpuarsenal/pitched/device"
	"github.com/gpuarsenal/pitched/mat"
	"github.com/gpuarsenal/pitched/memutils"
)

// hostData returns the address of data after checking it can hold height rows of rowBytes
// bytes laid out pitch bytes apart
func (b *Buffer[T]) hostData(op string, data []T, pitch, rowBytes, height int) unsafe.Pointer {
	if len(data) == 0 {
		failPrecondition("Buffer.%s: host data must not be empty", op)
	}
	err := memutils.CheckPitch(pitch, rowBytes, "host pitch")
	if err != nil {
		failPreconditionErr(err, "Buffer."+op)
	}
	if span := memutils.PitchedSpan(pitch, rowBytes, height); len(data)*elementSize[T]() < span {
		failPrecondition("Buffer.%s: host data holds %d bytes but the copy needs %d", op, len(data)*elementSize[T](), span)
	}
	return unsafe.Pointer(&data[0])
}

func (b *Buffer[T]) imageData(op string, image *mat.Mat[T]) unsafe.Pointer {
	if image.Empty() {
		failPrecondition("Buffer.%s: image must not be empty", op)
	}
	if image.Rows() < b.storage.height || image.Cols() < b.storage.width {
		failPrecondition("Buffer.%s: image is %d x %d but the buffer is %d x %d",
			op, image.Cols(), image.Rows(), b.storage.width, b.storage.height)
	}
	return image.Ptr(0, 0)
}

// fullCopy describes a copy of the whole buffer to or from host memory whose rows are
// hostPitch bytes apart
func (b *Buffer[T]) fullCopy(kind device.MemcpyKind, host unsafe.Pointer, hostPitch int) device.Memcpy2DParams {
	return device.Memcpy2DParams{
		Kind:        kind,
		Device:      b.storage.address,
		DevicePitch: b.storage.pitch,
		Host:        host,
		HostPitch:   hostPitch,
		WidthBytes:  b.storage.RowBytes(),
		Height:      b.storage.height,
	}
}

// partCopy describes a copy of length bytes starting start bytes into the single row
func (b *Buffer[T]) partCopy(op string, kind device.MemcpyKind, start, length int, data []T) device.Memcpy2DParams {
	if b.storage.height != 1 {
		failPrecondition("Buffer.%s: partial transfers need a buffer of height 1, but the height is %d", op, b.storage.height)
	}
	if len(data) == 0 {
		failPrecondition("Buffer.%s: host data must not be empty", op)
	}
	rowBytes := b.storage.RowBytes()
	if start < 0 || length < 0 || start+length > rowBytes {
		failPrecondition("Buffer.%s: byte range [%d, %d) lies outside the %d byte row", op, start, start+length, rowBytes)
	}
	if len(data)*elementSize[T]() < length {
		failPrecondition("Buffer.%s: host data holds %d bytes but the copy needs %d", op, len(data)*elementSize[T](), length)
	}

	return device.Memcpy2DParams{
		Kind:        kind,
		Device:      b.storage.address + device.Ptr(start),
		DevicePitch: b.storage.pitch,
		Host:        unsafe.Pointer(&data[0]),
		HostPitch:   rowBytes,
		WidthBytes:  length,
		Height:      1,
	}
}

func (b *Buffer[T]) copySync(op string, params device.Memcpy2DParams) {
	b.requireLive(op)
	b.logger.Debug("Buffer::" + op)

	check("Memcpy2D", b.runtime.Memcpy2D(params))
}

func (b *Buffer[T]) copyAsync(op string, stream device.Stream, params device.Memcpy2DParams) {
	b.requireLive(op)
	b.logger.Debug("Buffer::" + op)

	check("Memcpy2DAsync", b.runtime.Memcpy2DAsync(params, stream))
}

// Upload copies width x height tightly packed elements from data into the buffer and blocks
// until the copy is done
func (b *Buffer[T]) Upload(data []T) {
	rowBytes := b.storage.RowBytes()
	host := b.hostData("Upload", data, rowBytes, rowBytes, b.storage.height)
	b.copySync("Upload", b.fullCopy(device.MemcpyHostToDevice, host, rowBytes))
}

// UploadPitched is Upload for host data whose rows begin pitch bytes apart
func (b *Buffer[T]) UploadPitched(pitch int, data []T) {
	host := b.hostData("UploadPitched", data, pitch, b.storage.RowBytes(), b.storage.height)
	b.copySync("UploadPitched", b.fullCopy(device.MemcpyHostToDevice, host, pitch))
}

// UploadAsync enqueues an Upload on stream. data must not be modified until the stream has
// been synchronized.
func (b *Buffer[T]) UploadAsync(stream device.Stream, data []T) {
	rowBytes := b.storage.RowBytes()
	host := b.hostData("UploadAsync", data, rowBytes, rowBytes, b.storage.height)
	b.copyAsync("UploadAsync", stream, b.fullCopy(device.MemcpyHostToDevice, host, rowBytes))
}

func (b *Buffer[T]) UploadPitchedAsync(stream device.Stream, pitch int, data []T) {
	host := b.hostData("UploadPitchedAsync", data, pitch, b.storage.RowBytes(), b.storage.height)
	b.copyAsync("UploadPitchedAsync", stream, b.fullCopy(device.MemcpyHostToDevice, host, pitch))
}

// UploadPartAsync enqueues a copy of length bytes from the start of data to byte offset start
// of the buffer. Only buffers of height 1 support partial transfers.
func (b *Buffer[T]) UploadPartAsync(stream device.Stream, start, length int, data []T) {
	params := b.partCopy("UploadPartAsync", device.MemcpyHostToDevice, start, length, data)
	b.copyAsync("UploadPartAsync", stream, params)
}

// UploadImage copies the top-left width x height elements of image into the buffer
func (b *Buffer[T]) UploadImage(image *mat.Mat[T]) {
	host := b.imageData("UploadImage", image)
	b.copySync("UploadImage", b.fullCopy(device.MemcpyHostToDevice, host, image.Step()))
}

func (b *Buffer[T]) UploadImageAsync(stream device.Stream, image *mat.Mat[T]) {
	host := b.imageData("UploadImageAsync", image)
	b.copyAsync("UploadImageAsync", stream, b.fullCopy(device.MemcpyHostToDevice, host, image.Step()))
}

// Download copies the buffer into data as tightly packed rows and blocks until the copy is done
func (b *Buffer[T]) Download(data []T) {
	rowBytes := b.storage.RowBytes()
	host := b.hostData("Download", data, rowBytes, rowBytes, b.storage.height)
	b.copySync("Download", b.fullCopy(device.MemcpyDeviceToHost, host, rowBytes))
}

// DownloadPitched is Download into host memory whose rows begin pitch bytes apart. Bytes between
// the end of one row and the start of the next are left untouched.
func (b *Buffer[T]) DownloadPitched(pitch int, data []T) {
	host := b.hostData("DownloadPitched", data, pitch, b.storage.RowBytes(), b.storage.height)
	b.copySync("DownloadPitched", b.fullCopy(device.MemcpyDeviceToHost, host, pitch))
}

// DownloadAsync enqueues a Download on stream. data must not be read until the stream has been
// synchronized.
func (b *Buffer[T]) DownloadAsync(stream device.Stream, data []T) {
	rowBytes := b.storage.RowBytes()
	host := b.hostData("DownloadAsync", data, rowBytes, rowBytes, b.storage.height)
	b.copyAsync("DownloadAsync", stream, b.fullCopy(device.MemcpyDeviceToHost, host, rowBytes))
}

func (b *Buffer[T]) DownloadPitchedAsync(stream device.Stream, pitch int, data []T) {
	host := b.hostData("DownloadPitchedAsync", data, pitch, b.storage.RowBytes(), b.storage.height)
	b.copyAsync("DownloadPitchedAsync", stream, b.fullCopy(device.MemcpyDeviceToHost, host, pitch))
}

// DownloadPartAsync enqueues a copy of length bytes from byte offset start of the buffer to the
// start of data. Only buffers of height 1 support partial transfers.
func (b *Buffer[T]) DownloadPartAsync(stream device.Stream, start, length int, data []T) {
	params := b.partCopy("DownloadPartAsync", device.MemcpyDeviceToHost, start, length, data)
	b.copyAsync("DownloadPartAsync", stream, params)
}

// DownloadImage resizes image to the buffer's dimensions and copies the buffer into it
func (b *Buffer[T]) DownloadImage(image *mat.Mat[T]) {
	if image == nil {
		failPrecondition("Buffer.DownloadImage: image must not be nil")
	}
	image.Create(b.storage.height, b.storage.width)
	host := b.imageData("DownloadImage", image)
	b.copySync("DownloadImage", b.fullCopy(device.MemcpyDeviceToHost, host, image.Step()))
}

func (b *Buffer[T]) DownloadImageAsync(stream device.Stream, image *mat.Mat[T]) {
	if image == nil {
		failPrecondition("Buffer.DownloadImageAsync: image must not be nil")
	}
	image.Create(b.storage.height, b.storage.width)
	host := b.imageData("DownloadImageAsync", image)
	b.copyAsync("DownloadImageAsync", stream, b.fullCopy(device.MemcpyDeviceToHost, host, image.Step()))
}

// DownloadRectAsync enqueues a copy of the height x width rectangle whose top-left element is
// (srcY, srcX) in the buffer to the rectangle whose top-left element is (destY, destX) in image
func (b *Buffer[T]) DownloadRectAsync(stream device.Stream, srcY, srcX, height, width, destY, destX int, image *mat.Mat[T]) {
	if image.Empty() {
		failPrecondition("Buffer.DownloadRectAsync: image must not be empty")
	}
	if height < 0 || width < 0 ||
		srcY < 0 || srcX < 0 || srcY+height > b.storage.height || srcX+width > b.storage.width {
		failPrecondition("Buffer.DownloadRectAsync: source rectangle (%d, %d) %d x %d lies outside the %d x %d buffer",
			srcX, srcY, width, height, b.storage.width, b.storage.height)
	}
	if destY < 0 || destX < 0 || destY+height > image.Rows() || destX+width > image.Cols() {
		failPrecondition("Buffer.DownloadRectAsync: destination rectangle (%d, %d) %d x %d lies outside the %d x %d image",
			destX, destY, width, height, image.Cols(), image.Rows())
	}
	if height == 0 || width == 0 {
		return
	}

	size := elementSize[T]()
	b.copyAsync("DownloadRectAsync", stream, device.Memcpy2DParams{
		Kind:        device.MemcpyDeviceToHost,
		Device:      b.storage.address + device.Ptr(srcY*b.storage.pitch+srcX*size),
		DevicePitch: b.storage.pitch,
		Host:        image.Ptr(destY, destX),
		HostPitch:   image.Step(),
		WidthBytes:  width * size,
		Height:      height,
	})
}
