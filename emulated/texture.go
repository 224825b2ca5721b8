package emulated

import (
	"math"

	"github.com/gpuarsenal/pitched/device"
	"golang.org/x/exp/slog"
)

type texture struct {
	resource device.ResourceDesc
	desc     device.TextureDesc
	memory   []byte
}

// addressMode returns the effective mode along axis. Wrap and mirror are only honoured with
// normalized coordinates; unnormalized lookups clamp instead.
func (t *texture) addressMode(axis int) device.AddressMode {
	mode := t.desc.AddressMode[axis]
	if !t.desc.NormalizedCoords && (mode == device.AddressModeWrap || mode == device.AddressModeMirror) {
		return device.AddressModeClamp
	}
	return mode
}

func resolveCoordinate(i, n int, mode device.AddressMode) (int, bool) {
	switch mode {
	case device.AddressModeWrap:
		return ((i % n) + n) % n, true
	case device.AddressModeMirror:
		period := 2 * n
		i = ((i % period) + period) % period
		if i >= n {
			i = period - 1 - i
		}
		return i, true
	case device.AddressModeBorder:
		return i, i >= 0 && i < n
	}

	if i < 0 {
		return 0, true
	}
	if i >= n {
		return n - 1, true
	}
	return i, true
}

func (t *texture) normalizedRead() bool {
	return t.desc.ReadMode == device.ReadModeNormalizedFloat && t.resource.Channel.Kind != device.ChannelFormatKindFloat
}

func (t *texture) fetch(x, y int) float64 {
	x, insideX := resolveCoordinate(x, t.resource.Width, t.addressMode(0))
	y, insideY := resolveCoordinate(y, t.resource.Height, t.addressMode(1))
	if !insideX || !insideY {
		return 0
	}

	size := t.resource.Channel.Size()
	offset := y*t.resource.Pitch + x*size
	value := readElement(t.resource.Channel, t.memory[offset:offset+size])
	if t.normalizedRead() {
		value = normalize(t.resource.Channel, value)
	}
	return value
}

// sample looks the texture up at (u, v). Unnormalized coordinates address element (i, j) over
// [i, i+1) x [j, j+1); normalized coordinates cover the whole texture over [0, 1).
func (t *texture) sample(u, v float64) float64 {
	if t.desc.NormalizedCoords {
		u *= float64(t.resource.Width)
		v *= float64(t.resource.Height)
	}

	if t.desc.FilterMode == device.FilterModePoint {
		return t.fetch(int(math.Floor(u)), int(math.Floor(v)))
	}

	u -= 0.5
	v -= 0.5
	i, j := math.Floor(u), math.Floor(v)
	alpha, beta := u-i, v-j
	x, y := int(i), int(j)

	return (1-alpha)*(1-beta)*t.fetch(x, y) +
		alpha*(1-beta)*t.fetch(x+1, y) +
		(1-alpha)*beta*t.fetch(x, y+1) +
		alpha*beta*t.fetch(x+1, y+1)
}

func validTextureDesc(desc device.TextureDesc) bool {
	for _, mode := range desc.AddressMode {
		if mode < device.AddressModeWrap || mode > device.AddressModeBorder {
			return false
		}
	}
	if desc.FilterMode != device.FilterModePoint && desc.FilterMode != device.FilterModeLinear {
		return false
	}
	return desc.ReadMode == device.ReadModeElementType || desc.ReadMode == device.ReadModeNormalizedFloat
}

func (d *Device) CreateTextureObject(resource device.ResourceDesc, desc device.TextureDesc) (device.TextureObject, device.Status) {
	if !validChannel(resource.Channel) {
		return 0, device.StatusInvalidChannelDesc
	}
	if !validTextureDesc(desc) || resource.Width <= 0 || resource.Height <= 0 {
		return 0, device.StatusInvalidValue
	}
	rowBytes := resource.Width * resource.Channel.Size()
	if resource.Pitch < rowBytes || resource.Pitch%d.pitchAlignment != 0 {
		return 0, device.StatusInvalidPitchValue
	}
	// Interpolating raw integers is not supported; the element must be read as a normalized float
	if desc.FilterMode == device.FilterModeLinear &&
		desc.ReadMode == device.ReadModeElementType &&
		resource.Channel.Kind != device.ChannelFormatKindFloat {
		return 0, device.StatusInvalidFilterSet
	}

	memory, status := d.resolve(resource.Ptr, resource.Pitch*(resource.Height-1)+rowBytes)
	if status != device.StatusSuccess {
		return 0, status
	}

	d.textureMutex.Lock()
	defer d.textureMutex.Unlock()

	handle := d.nextTexture
	d.nextTexture++
	d.textures.Put(handle, &texture{
		resource: resource,
		desc:     desc,
		memory:   memory,
	})

	d.logger.Debug("Device::CreateTextureObject",
		slog.Int("Texture", int(handle)),
		slog.String("Channel", resource.Channel.String()),
		slog.String("AddressModeX", desc.AddressMode[0].String()),
		slog.String("AddressModeY", desc.AddressMode[1].String()),
		slog.String("FilterMode", desc.FilterMode.String()),
		slog.String("ReadMode", desc.ReadMode.String()),
		slog.Bool("NormalizedCoords", desc.NormalizedCoords))

	return handle, device.StatusSuccess
}

func (d *Device) DestroyTextureObject(handle device.TextureObject) device.Status {
	d.textureMutex.Lock()
	defer d.textureMutex.Unlock()

	if !d.textures.Delete(handle) {
		return device.StatusInvalidResHandle
	}

	d.logger.Debug("Device::DestroyTextureObject", slog.Int("Texture", int(handle)))
	return device.StatusSuccess
}

func (d *Device) lookupTexture(handle device.TextureObject) (*texture, device.Status) {
	d.textureMutex.RLock()
	defer d.textureMutex.RUnlock()

	tex, ok := d.textures.Get(handle)
	if !ok {
		return nil, device.StatusInvalidResHandle
	}
	return tex, device.StatusSuccess
}
