package memutils

import "github.com/launchdarkly/go-jsonstream/v3/jwriter"

// Statistics tracks live pitched allocations and sampler objects on a single device
type Statistics struct {
	AllocationCount    int
	AllocationBytes    int
	RowBytes           int
	TextureObjectCount int
}

func (s *Statistics) Clear() {
	s.AllocationCount = 0
	s.AllocationBytes = 0
	s.RowBytes = 0
	s.TextureObjectCount = 0
}

// AddAllocation records an allocation of height rows, each pitch bytes apart, of which
// rowBytes bytes per row were requested by the caller
func (s *Statistics) AddAllocation(pitch, rowBytes, height int) {
	s.AllocationCount++
	s.AllocationBytes += pitch * height
	s.RowBytes += rowBytes * height
}

func (s *Statistics) RemoveAllocation(pitch, rowBytes, height int) {
	s.AllocationCount--
	s.AllocationBytes -= pitch * height
	s.RowBytes -= rowBytes * height
}

// PaddingBytes is the number of allocated bytes spent on row alignment
func (s *Statistics) PaddingBytes() int {
	return s.AllocationBytes - s.RowBytes
}

func (s *Statistics) AddStatistics(other *Statistics) {
	s.AllocationCount += other.AllocationCount
	s.AllocationBytes += other.AllocationBytes
	s.RowBytes += other.RowBytes
	s.TextureObjectCount += other.TextureObjectCount
}

// PrintJson writes the statistics as fields of an open json object
func (s *Statistics) PrintJson(json *jwriter.ObjectState) {
	json.Name("Allocations").Int(s.AllocationCount)
	json.Name("AllocationBytes").Int(s.AllocationBytes)
	json.Name("RowBytes").Int(s.RowBytes)
	json.Name("PaddingBytes").Int(s.PaddingBytes())
	json.Name("TextureObjects").Int(s.TextureObjectCount)
}
