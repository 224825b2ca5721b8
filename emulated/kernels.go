package emulated

import (
	"github.com/gpuarsenal/pitched/device"
	"github.com/gpuarsenal/pitched/memutils"
)

func (d *Device) resolvePitched(dst device.PitchedPtr, channel device.ChannelDesc) ([]byte, device.Status) {
	if !validChannel(channel) {
		return nil, device.StatusInvalidChannelDesc
	}
	if dst.Width <= 0 || dst.Height <= 0 {
		return nil, device.StatusInvalidValue
	}
	rowBytes := dst.Width * channel.Size()
	if dst.Pitch < rowBytes {
		return nil, device.StatusInvalidPitchValue
	}

	return d.resolve(dst.Ptr, memutils.PitchedSpan(dst.Pitch, rowBytes, dst.Height))
}

func (d *Device) LaunchFill(dst device.PitchedPtr, channel device.ChannelDesc, value []byte, stream device.Stream) device.Status {
	memory, status := d.resolvePitched(dst, channel)
	if status != device.StatusSuccess {
		return status
	}
	size := channel.Size()
	if len(value) != size {
		return device.StatusInvalidValue
	}
	element := append([]byte(nil), value...)

	return d.submit(stream, func() {
		for y := 0; y < dst.Height; y++ {
			row := memory[y*dst.Pitch : y*dst.Pitch+dst.Width*size]
			for x := 0; x < len(row); x += size {
				copy(row[x:x+size], element)
			}
		}
	})
}

func (d *Device) LaunchSampleInto(dst device.PitchedPtr, channel device.ChannelDesc, handle device.TextureObject, stream device.Stream) device.Status {
	memory, status := d.resolvePitched(dst, channel)
	if status != device.StatusSuccess {
		return status
	}
	tex, status := d.lookupTexture(handle)
	if status != device.StatusSuccess {
		return status
	}
	rescale := tex.normalizedRead() && channel.Kind != device.ChannelFormatKindFloat

	return d.submit(stream, func() {
		size := channel.Size()
		for y := 0; y < dst.Height; y++ {
			v := float64(y) + 0.5
			if tex.desc.NormalizedCoords {
				v /= float64(dst.Height)
			}
			for x := 0; x < dst.Width; x++ {
				u := float64(x) + 0.5
				if tex.desc.NormalizedCoords {
					u /= float64(dst.Width)
				}

				value := tex.sample(u, v)
				if rescale {
					value = denormalize(channel, value)
				}
				offset := y*dst.Pitch + x*size
				writeElement(channel, memory[offset:offset+size], value)
			}
		}
	})
}
