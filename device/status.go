package device

import (
	"fmt"

	"github.com/cockroachdb/errors"
)

// Status is the result code returned by every Runtime call. The numeric values match the
// CUDA runtime's cudaError_t so that a cgo backend can pass them through unchanged.
type Status int32

const (
	StatusSuccess             Status = 0
	StatusInvalidValue        Status = 1
	StatusMemoryAllocation    Status = 2
	StatusInitializationError Status = 3
	StatusInvalidPitchValue   Status = 12
	StatusInvalidDevicePtr    Status = 17
	StatusInvalidMemcpyDir    Status = 21
	StatusInvalidChannelDesc  Status = 20
	StatusInvalidFilterSet    Status = 26
	StatusInvalidResHandle    Status = 400
	StatusNotReady            Status = 600
	StatusIllegalAddress      Status = 700
	StatusLaunchFailure       Status = 719
	StatusUnknown             Status = 999
)

var statusMapping = make(map[Status]string)

func init() {
	statusMapping[StatusSuccess] = "StatusSuccess"
	statusMapping[StatusInvalidValue] = "StatusInvalidValue"
	statusMapping[StatusMemoryAllocation] = "StatusMemoryAllocation"
	statusMapping[StatusInitializationError] = "StatusInitializationError"
	statusMapping[StatusInvalidPitchValue] = "StatusInvalidPitchValue"
	statusMapping[StatusInvalidDevicePtr] = "StatusInvalidDevicePtr"
	statusMapping[StatusInvalidMemcpyDir] = "StatusInvalidMemcpyDir"
	statusMapping[StatusInvalidChannelDesc] = "StatusInvalidChannelDesc"
	statusMapping[StatusInvalidFilterSet] = "StatusInvalidFilterSet"
	statusMapping[StatusInvalidResHandle] = "StatusInvalidResHandle"
	statusMapping[StatusNotReady] = "StatusNotReady"
	statusMapping[StatusIllegalAddress] = "StatusIllegalAddress"
	statusMapping[StatusLaunchFailure] = "StatusLaunchFailure"
	statusMapping[StatusUnknown] = "StatusUnknown"
}

func (s Status) String() string {
	str, ok := statusMapping[s]
	if !ok {
		return fmt.Sprintf("Status(%d)", int32(s))
	}
	return str
}

// ToError returns nil for StatusSuccess and an error describing the status otherwise
func (s Status) ToError() error {
	if s == StatusSuccess {
		return nil
	}
	return &StatusError{Status: s}
}

// StatusError wraps a non-success Status as an error
type StatusError struct {
	Status Status
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("device runtime returned %s (%d)", e.Status.String(), int32(e.Status))
}

// StatusOf extracts the Status carried by err, or StatusUnknown if err carries none
func StatusOf(err error) Status {
	if err == nil {
		return StatusSuccess
	}
	var statusErr *StatusError
	if errors.As(err, &statusErr) {
		return statusErr.Status
	}
	return StatusUnknown
}
