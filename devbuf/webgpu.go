package devbuf

import (
	"github.com/cockroachdb/errors"
	"github.com/gogpu/gputypes"
	"github.com/gpuarsenal/pitched/device"
)

var webGPUAddressModes = map[gputypes.AddressMode]device.AddressMode{
	gputypes.AddressModeClampToEdge:  device.AddressModeClamp,
	gputypes.AddressModeRepeat:       device.AddressModeWrap,
	gputypes.AddressModeMirrorRepeat: device.AddressModeMirror,
}

var webGPUFilterModes = map[gputypes.FilterMode]device.FilterMode{
	gputypes.FilterModeNearest: device.FilterModePoint,
	gputypes.FilterModeLinear:  device.FilterModeLinear,
}

// SamplerParamsFromWebGPU translates WebGPU sampler settings into SamplerParams for a buffer of
// T. Integer channels are read as normalized floats so that linear filtering is valid for them.
func SamplerParamsFromWebGPU[T Element](addressU, addressV gputypes.AddressMode, filter gputypes.FilterMode, normalized bool) (SamplerParams, error) {
	modeX, ok := webGPUAddressModes[addressU]
	if !ok {
		return SamplerParams{}, errors.Newf("address mode U %s has no device equivalent", addressU)
	}
	modeY, ok := webGPUAddressModes[addressV]
	if !ok {
		return SamplerParams{}, errors.Newf("address mode V %s has no device equivalent", addressV)
	}
	filterMode, ok := webGPUFilterModes[filter]
	if !ok {
		return SamplerParams{}, errors.Newf("filter mode %s has no device equivalent", filter)
	}

	readMode := device.ReadModeNormalizedFloat
	if ChannelDescOf[T]().Kind == device.ChannelFormatKindFloat {
		readMode = device.ReadModeElementType
	}

	return SamplerParams{
		AddressModeX:     modeX,
		AddressModeY:     modeY,
		FilterMode:       filterMode,
		ReadMode:         readMode,
		NormalizedCoords: normalized,
	}, nil
}

// SamplerParamsFromDescriptor is SamplerParamsFromWebGPU for a full sampler descriptor. The
// magnification filter selects the filter mode; W addressing, mipmaps, comparison and
// anisotropy do not apply to a 2-D buffer and must be left at their defaults.
func SamplerParamsFromDescriptor[T Element](desc gputypes.SamplerDescriptor, normalized bool) (SamplerParams, error) {
	if desc.Compare != gputypes.CompareFunctionUndefined {
		return SamplerParams{}, errors.Newf("sampler %q: comparison sampling is not supported", desc.Label)
	}
	if desc.MaxAnisotropy > 1 {
		return SamplerParams{}, errors.Newf("sampler %q: anisotropic filtering is not supported", desc.Label)
	}
	if desc.MinFilter != desc.MagFilter {
		return SamplerParams{}, errors.Newf("sampler %q: min filter %s differs from mag filter %s", desc.Label, desc.MinFilter, desc.MagFilter)
	}

	params, err := SamplerParamsFromWebGPU[T](desc.AddressModeU, desc.AddressModeV, desc.MagFilter, normalized)
	if err != nil {
		return SamplerParams{}, errors.Wrapf(err, "sampler %q", desc.Label)
	}
	return params, nil
}
