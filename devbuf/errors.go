package devbuf

import (
	"fmt"

	"github.com/cockroachdb/errors"
	"github.com/gpuarsenal/pitched/device"
)

// Buffers never return errors. Both failure kinds below panic, and the panic value is an error
// marked with one of these sentinels so that a harness recovering the panic can tell caller
// misuse apart from a failing device runtime with errors.Is.
var (
	// ErrPrecondition marks failures caused by the caller: empty host data, an under-sized image,
	// a partial transfer on a buffer taller than one row, use after Destroy
	ErrPrecondition = errors.New("precondition violated")
	// ErrDeviceRuntime marks failures reported by the device runtime
	ErrDeviceRuntime = errors.New("device runtime failure")
)

// DeviceRuntimeError is the panic value for a runtime call that did not return
// device.StatusSuccess. Retrieve it with errors.As.
type DeviceRuntimeError struct {
	Op     string
	Status device.Status
}

func (e *DeviceRuntimeError) Error() string {
	return fmt.Sprintf("%s returned %s (%d)", e.Op, e.Status, int32(e.Status))
}

func failPrecondition(format string, args ...any) {
	panic(errors.Mark(errors.AssertionFailedf(format, args...), ErrPrecondition))
}

func failPreconditionErr(err error, op string) {
	panic(errors.Mark(errors.WithAssertionFailure(errors.Wrap(err, op)), ErrPrecondition))
}

func check(op string, status device.Status) {
	if status == device.StatusSuccess {
		return
	}
	panic(errors.Mark(errors.WithStack(&DeviceRuntimeError{Op: op, Status: status}), ErrDeviceRuntime))
}
