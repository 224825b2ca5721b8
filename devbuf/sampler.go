package devbuf

import (
	"github.com/gpuarsenal/pitched/device"
	"golang.org/x/exp/slog"
)

// SamplerParams is the sampling configuration of a sampler object. Two configurations are the
// same sampler exactly when they compare equal with ==.
type SamplerParams struct {
	AddressModeX     device.AddressMode
	AddressModeY     device.AddressMode
	FilterMode       device.FilterMode
	ReadMode         device.ReadMode
	NormalizedCoords bool
}

// CopySamplerParams reads elements back unchanged: clamped, point sampled, raw element values
// at unnormalized coordinates
var CopySamplerParams = SamplerParams{
	AddressModeX:     device.AddressModeClamp,
	AddressModeY:     device.AddressModeClamp,
	FilterMode:       device.FilterModePoint,
	ReadMode:         device.ReadModeElementType,
	NormalizedCoords: false,
}

func (p SamplerParams) textureDesc() device.TextureDesc {
	return device.TextureDesc{
		AddressMode:      [2]device.AddressMode{p.AddressModeX, p.AddressModeY},
		FilterMode:       p.FilterMode,
		ReadMode:         p.ReadMode,
		NormalizedCoords: p.NormalizedCoords,
	}
}

func (p SamplerParams) logAttrs() []any {
	return []any{
		slog.String("AddressModeX", p.AddressModeX.String()),
		slog.String("AddressModeY", p.AddressModeY.String()),
		slog.String("FilterMode", p.FilterMode.String()),
		slog.String("ReadMode", p.ReadMode.String()),
		slog.Bool("NormalizedCoords", p.NormalizedCoords),
	}
}

func (b *Buffer[T]) createTextureObject(params SamplerParams) device.TextureObject {
	resource := device.ResourceDesc{
		PitchedPtr: b.storage.PitchedPtr(),
		Channel:    b.storage.channel,
	}
	texture, status := b.runtime.CreateTextureObject(resource, params.textureDesc())
	check("CreateTextureObject", status)
	return texture
}

// CreateTextureObject creates a sampler object over the buffer's memory that is not cached.
// The caller must release it with DestroyTextureObject.
func (b *Buffer[T]) CreateTextureObject(params SamplerParams) device.TextureObject {
	b.requireLive("CreateTextureObject")
	b.logger.Debug("Buffer::CreateTextureObject", params.logAttrs()...)

	return b.createTextureObject(params)
}

// DestroyTextureObject releases a sampler object returned by CreateTextureObject. The cached
// sampler object belongs to the buffer and must not be passed here. Transient sampler objects
// read the buffer's memory, so they must be released before the buffer is destroyed.
func (b *Buffer[T]) DestroyTextureObject(texture device.TextureObject) {
	b.mutex.Lock()
	destroyed := b.destroyed
	cached := b.sampler != nil && b.sampler.object == texture
	b.mutex.Unlock()
	if destroyed {
		failPrecondition("Buffer.DestroyTextureObject: buffer has been destroyed")
	}
	if cached {
		failPrecondition("Buffer.DestroyTextureObject: texture %d is the buffer's cached sampler object", texture)
	}

	b.logger.Debug("Buffer::DestroyTextureObject")
	check("DestroyTextureObject", b.runtime.DestroyTextureObject(texture))
}

// CachedTextureObject returns a sampler object over the buffer's memory configured with params.
// Repeating the last configuration returns the same object without touching the runtime. A
// different configuration replaces the cached object. The object stays owned by the buffer and
// is valid until the next call with different params or until Destroy.
func (b *Buffer[T]) CachedTextureObject(params SamplerParams) device.TextureObject {
	b.mutex.Lock()
	defer b.mutex.Unlock()

	b.requireLive("CachedTextureObject")

	if b.sampler != nil {
		if b.sampler.params == params {
			return b.sampler.object
		}

		b.logger.Debug("Buffer::CachedTextureObject replacing sampler", b.sampler.params.logAttrs()...)
		check("DestroyTextureObject", b.runtime.DestroyTextureObject(b.sampler.object))
		b.sampler = nil
	}

	b.logger.Debug("Buffer::CachedTextureObject", params.logAttrs()...)
	b.sampler = &cachedSampler{
		params: params,
		object: b.createTextureObject(params),
	}
	return b.sampler.object
}

// SetToTexture enqueues a kernel on stream replacing every element with the value texture
// samples at that element's centre
func (b *Buffer[T]) SetToTexture(stream device.Stream, texture device.TextureObject) {
	b.requireLive("SetToTexture")
	b.logger.Debug("Buffer::SetToTexture")

	b.storage.SetTo(stream, texture)
}

// SetTo enqueues a copy of other into this buffer on stream. The copy reads other through a
// temporary CopySamplerParams sampler object, so other may differ in size: elements beyond
// other's edges repeat its edge elements.
func (b *Buffer[T]) SetTo(stream device.Stream, other *Buffer[T]) {
	if other == nil {
		failPrecondition("Buffer.SetTo: source buffer must not be nil")
	}
	b.requireLive("SetTo")
	other.requireLive("SetTo")
	b.logger.Debug("Buffer::SetTo")

	texture := other.createTextureObject(CopySamplerParams)
	b.storage.SetTo(stream, texture)
	check("DestroyTextureObject", other.runtime.DestroyTextureObject(texture))
}
