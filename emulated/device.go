// Package emulated implements device.Runtime over host memory. Allocations are ordinary Go byte
// slices addressed through synthetic device pointers, non-default streams run on their own
// goroutines in enqueue order, and sampler objects are evaluated in software with the same
// addressing, filtering and read-mode rules a GPU texture unit applies.
package emulated

import (
	"fmt"
	"unsafe"

	"github.com/cockroachdb/errors"
	"github.com/dolthub/swiss"
	"github.com/gpuarsenal/pitched/device"
	"github.com/gpuarsenal/pitched/internal/utils"
	"github.com/gpuarsenal/pitched/memutils"
	"github.com/launchdarkly/go-jsonstream/v3/jwriter"
	"github.com/vkngwrapper/core/v2/common"
	"golang.org/x/exp/slices"
	"golang.org/x/exp/slog"
)

// CreateFlags indicate specific device behaviors to activate or deactivate
type CreateFlags int32

var createFlagsMapping = common.NewFlagStringMapping[CreateFlags]()

func (f CreateFlags) Register(str string) {
	createFlagsMapping.Register(f, str)
}
func (f CreateFlags) String() string {
	return createFlagsMapping.FlagsToString(f)
}

const (
	// DeviceCreateExternallySynchronized ensures that the device's allocation, stream and texture
	// tables are not locked internally. The consumer must guarantee that runtime calls are made
	// from one goroutine at a time.
	DeviceCreateExternallySynchronized CreateFlags = 1 << iota
)

func init() {
	DeviceCreateExternallySynchronized.Register("DeviceCreateExternallySynchronized")
}

const (
	// DefaultPitchAlignment is the row alignment used when CreateOptions.PitchAlignment is zero.
	// It matches the texture pitch alignment of most discrete GPUs.
	DefaultPitchAlignment int = 512

	addressSpaceBase device.Ptr = 0x7f0000000000
	addressSpaceGap  uint       = 64 * 1024
)

// CreateOptions contains optional settings when creating a device. It is valid to leave every
// field blank.
type CreateOptions struct {
	Flags CreateFlags
	// PitchAlignment is the byte alignment of every row returned from MallocPitch. It must be a
	// power of two.
	PitchAlignment int
	// MemoryLimit is the maximum number of bytes that may be allocated at once, or 0 for no limit.
	// MallocPitch returns device.StatusMemoryAllocation when the limit would be exceeded.
	MemoryLimit int
}

type allocation struct {
	base     device.Ptr
	pitch    int
	rowBytes int
	height   int
	data     []byte
}

// Device is a software device
type Device struct {
	logger         *slog.Logger
	pitchAlignment int
	memoryLimit    int

	memoryMutex utils.OptionalRWMutex
	bases       []device.Ptr
	allocations *swiss.Map[device.Ptr, *allocation]
	nextAddress device.Ptr
	stats       memutils.Statistics

	textureMutex utils.OptionalRWMutex
	textures     *swiss.Map[device.TextureObject, *texture]
	nextTexture  device.TextureObject

	streamMutex utils.OptionalRWMutex
	streams     *swiss.Map[device.Stream, *stream]
	nextStream  device.Stream
}

var _ device.Runtime = &Device{}

// New creates a software device
func New(logger *slog.Logger, options CreateOptions) (*Device, error) {
	useMutex := options.Flags&DeviceCreateExternallySynchronized == 0

	d := &Device{
		logger:         utils.LoggerOrNop(logger),
		pitchAlignment: options.PitchAlignment,
		memoryLimit:    options.MemoryLimit,

		memoryMutex:  utils.OptionalRWMutex{UseMutex: useMutex},
		textureMutex: utils.OptionalRWMutex{UseMutex: useMutex},
		streamMutex:  utils.OptionalRWMutex{UseMutex: useMutex},

		allocations: swiss.NewMap[device.Ptr, *allocation](16),
		textures:    swiss.NewMap[device.TextureObject, *texture](8),
		streams:     swiss.NewMap[device.Stream, *stream](4),
		nextAddress: addressSpaceBase,
		nextTexture: 1,
		nextStream:  1,
	}

	if d.pitchAlignment == 0 {
		d.pitchAlignment = DefaultPitchAlignment
	}
	err := memutils.CheckPow2(d.pitchAlignment, "emulated.CreateOptions.PitchAlignment")
	if err != nil {
		return nil, err
	}
	if d.memoryLimit < 0 {
		return nil, errors.Newf("emulated.CreateOptions.MemoryLimit is %d, but must not be negative", d.memoryLimit)
	}

	d.logger.Debug("Device::New",
		slog.Int("PitchAlignment", d.pitchAlignment),
		slog.Int("MemoryLimit", d.memoryLimit),
		slog.String("Flags", options.Flags.String()))

	return d, nil
}

// PitchAlignment is the byte alignment of every row the device allocates
func (d *Device) PitchAlignment() int {
	return d.pitchAlignment
}

func (d *Device) MallocPitch(widthBytes, height int) (device.Ptr, int, device.Status) {
	if widthBytes <= 0 || height <= 0 {
		return 0, 0, device.StatusInvalidValue
	}

	pitch := memutils.AlignUp(widthBytes+memutils.DebugMargin, uint(d.pitchAlignment))
	size := pitch * height

	d.memoryMutex.Lock()
	defer d.memoryMutex.Unlock()

	if d.memoryLimit > 0 && d.stats.AllocationBytes+size > d.memoryLimit {
		d.logger.Debug("Device::MallocPitch FAILED", slog.Int("Size", size), slog.Int("AllocatedBytes", d.stats.AllocationBytes))
		return 0, 0, device.StatusMemoryAllocation
	}

	alloc := &allocation{
		base:     d.nextAddress,
		pitch:    pitch,
		rowBytes: widthBytes,
		height:   height,
		data:     make([]byte, size),
	}
	d.nextAddress += device.Ptr(memutils.AlignUp(size, addressSpaceGap) + int(addressSpaceGap))

	memutils.WriteRowMargins(unsafe.Pointer(&alloc.data[0]), pitch, widthBytes, height)

	index, _ := slices.BinarySearch(d.bases, alloc.base)
	d.bases = slices.Insert(d.bases, index, alloc.base)
	d.allocations.Put(alloc.base, alloc)
	d.stats.AddAllocation(pitch, widthBytes, height)

	d.logger.Debug("Device::MallocPitch",
		slog.String("Address", fmt.Sprintf("%#x", uintptr(alloc.base))),
		slog.Int("Pitch", pitch),
		slog.Int("Height", height))

	return alloc.base, pitch, device.StatusSuccess
}

// Free releases an allocation after waiting for all outstanding stream work, as the device
// cannot tell which streams still reference it
func (d *Device) Free(ptr device.Ptr) device.Status {
	if ptr == 0 {
		return device.StatusSuccess
	}

	status := d.DeviceSynchronize()
	if status != device.StatusSuccess {
		return status
	}

	d.memoryMutex.Lock()
	defer d.memoryMutex.Unlock()

	alloc, ok := d.allocations.Get(ptr)
	if !ok {
		return device.StatusInvalidDevicePtr
	}

	d.allocations.Delete(ptr)
	index, _ := slices.BinarySearch(d.bases, ptr)
	d.bases = slices.Delete(d.bases, index, index+1)
	d.stats.RemoveAllocation(alloc.pitch, alloc.rowBytes, alloc.height)

	d.logger.Debug("Device::Free", slog.String("Address", fmt.Sprintf("%#x", uintptr(ptr))))

	if row := memutils.ValidateRowMargins(unsafe.Pointer(&alloc.data[0]), alloc.pitch, alloc.rowBytes, alloc.height); row >= 0 {
		d.logger.Error("memory corruption detected past the end of a row", slog.Int("Row", row))
		return device.StatusIllegalAddress
	}

	return device.StatusSuccess
}

// resolve finds the allocation containing span bytes starting at ptr and returns the slice of
// its memory beginning at ptr
func (d *Device) resolve(ptr device.Ptr, span int) ([]byte, device.Status) {
	d.memoryMutex.RLock()
	defer d.memoryMutex.RUnlock()

	index, found := slices.BinarySearch(d.bases, ptr)
	if !found {
		index--
	}
	if index < 0 {
		return nil, device.StatusInvalidDevicePtr
	}

	alloc, ok := d.allocations.Get(d.bases[index])
	if !ok {
		panic(fmt.Sprintf("allocation table is missing base address %#x", uintptr(d.bases[index])))
	}

	offset := int(ptr - alloc.base)
	if offset+span > len(alloc.data) {
		return nil, device.StatusInvalidValue
	}

	return alloc.data[offset : offset+span], device.StatusSuccess
}

// Statistics returns a snapshot of live allocations and sampler objects
func (d *Device) Statistics() memutils.Statistics {
	d.memoryMutex.RLock()
	stats := d.stats
	d.memoryMutex.RUnlock()

	d.textureMutex.RLock()
	stats.TextureObjectCount = d.textures.Count()
	d.textureMutex.RUnlock()

	return stats
}

// CheckCorruption verifies the guard bytes after every row of every live allocation. Guard bytes
// are only present in builds with the debug_mem_utils tag; other builds always succeed.
func (d *Device) CheckCorruption() (device.Status, error) {
	status := d.DeviceSynchronize()
	if status != device.StatusSuccess {
		return status, status.ToError()
	}

	d.memoryMutex.RLock()
	defer d.memoryMutex.RUnlock()

	for _, base := range d.bases {
		alloc, _ := d.allocations.Get(base)
		if row := memutils.ValidateRowMargins(unsafe.Pointer(&alloc.data[0]), alloc.pitch, alloc.rowBytes, alloc.height); row >= 0 {
			return device.StatusIllegalAddress, errors.Wrapf(device.StatusIllegalAddress.ToError(),
				"memory corruption detected after row %d of allocation %#x", row, uintptr(base))
		}
	}

	return device.StatusSuccess, nil
}

// Validate reports corrupted row guard bytes in any live allocation
func (d *Device) Validate() error {
	_, err := d.CheckCorruption()
	return err
}

// PrintStatistics writes the device's statistics and allocation list as a json object
func (d *Device) PrintStatistics(writer *jwriter.Writer) {
	stats := d.Statistics()

	obj := writer.Object()
	defer obj.End()

	obj.Name("PitchAlignment").Int(d.pitchAlignment)
	stats.PrintJson(&obj)

	d.memoryMutex.RLock()
	defer d.memoryMutex.RUnlock()

	arr := obj.Name("AllocationList").Array()
	defer arr.End()

	for _, base := range d.bases {
		alloc, _ := d.allocations.Get(base)

		allocObj := arr.Object()
		allocObj.Name("Address").String(fmt.Sprintf("%#x", uintptr(alloc.base)))
		allocObj.Name("Pitch").Int(alloc.pitch)
		allocObj.Name("RowBytes").Int(alloc.rowBytes)
		allocObj.Name("Height").Int(alloc.height)
		allocObj.End()
	}
}

// Destroy stops every stream worker. Allocations and sampler objects still live are dropped.
func (d *Device) Destroy() {
	memutils.DebugValidate(d)

	d.streamMutex.Lock()
	defer d.streamMutex.Unlock()

	d.streams.Iter(func(handle device.Stream, s *stream) bool {
		s.destroy()
		return false
	})
	d.streams.Clear()

	d.logger.Debug("Device::Destroy")
}
