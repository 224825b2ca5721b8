package emulated

import (
	"sync"

	"github.com/gpuarsenal/pitched/device"
	"golang.org/x/exp/slog"
)

// stream runs enqueued work on a dedicated goroutine, one item at a time, in enqueue order
type stream struct {
	mutex   sync.Mutex
	changed *sync.Cond
	work    []func()
	running bool
	closed  bool
	done    chan struct{}
}

func newStream() *stream {
	s := &stream{
		done: make(chan struct{}),
	}
	s.changed = sync.NewCond(&s.mutex)
	go s.run()
	return s
}

func (s *stream) run() {
	defer close(s.done)

	s.mutex.Lock()
	defer s.mutex.Unlock()

	for {
		for len(s.work) == 0 && !s.closed {
			s.changed.Wait()
		}
		if len(s.work) == 0 {
			return
		}

		work := s.work[0]
		s.work[0] = nil
		s.work = s.work[1:]
		s.running = true

		s.mutex.Unlock()
		work()
		s.mutex.Lock()

		s.running = false
		s.changed.Broadcast()
	}
}

// enqueue returns false once the stream has been destroyed
func (s *stream) enqueue(work func()) bool {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	if s.closed {
		return false
	}
	s.work = append(s.work, work)
	s.changed.Broadcast()
	return true
}

func (s *stream) synchronize() {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	for len(s.work) > 0 || s.running {
		s.changed.Wait()
	}
}

// destroy lets queued work finish and stops the worker
func (s *stream) destroy() {
	s.mutex.Lock()
	s.closed = true
	s.changed.Broadcast()
	s.mutex.Unlock()

	<-s.done
}

func (d *Device) StreamCreate() (device.Stream, device.Status) {
	d.streamMutex.Lock()
	defer d.streamMutex.Unlock()

	handle := d.nextStream
	d.nextStream++
	d.streams.Put(handle, newStream())

	d.logger.Debug("Device::StreamCreate", slog.Int("Stream", int(handle)))

	return handle, device.StatusSuccess
}

func (d *Device) StreamSynchronize(handle device.Stream) device.Status {
	if handle == device.DefaultStream {
		// Default stream work always completes before the enqueueing call returns
		return device.StatusSuccess
	}

	d.streamMutex.RLock()
	s, ok := d.streams.Get(handle)
	d.streamMutex.RUnlock()
	if !ok {
		return device.StatusInvalidResHandle
	}

	s.synchronize()
	return device.StatusSuccess
}

// StreamDestroy waits for outstanding work on the stream and releases its worker
func (d *Device) StreamDestroy(handle device.Stream) device.Status {
	if handle == device.DefaultStream {
		return device.StatusInvalidResHandle
	}

	d.streamMutex.Lock()
	s, ok := d.streams.Get(handle)
	if ok {
		d.streams.Delete(handle)
	}
	d.streamMutex.Unlock()
	if !ok {
		return device.StatusInvalidResHandle
	}

	s.destroy()

	d.logger.Debug("Device::StreamDestroy", slog.Int("Stream", int(handle)))
	return device.StatusSuccess
}

// DeviceSynchronize waits until every stream is idle
func (d *Device) DeviceSynchronize() device.Status {
	d.streamMutex.RLock()
	streams := make([]*stream, 0, d.streams.Count())
	d.streams.Iter(func(_ device.Stream, s *stream) bool {
		streams = append(streams, s)
		return false
	})
	d.streamMutex.RUnlock()

	for _, s := range streams {
		s.synchronize()
	}

	return device.StatusSuccess
}

// submit runs work on handle. Work submitted to the default stream waits for every other
// stream and runs before submit returns, which orders it against all streams the way the
// legacy default stream does.
func (d *Device) submit(handle device.Stream, work func()) device.Status {
	if handle == device.DefaultStream {
		status := d.DeviceSynchronize()
		if status != device.StatusSuccess {
			return status
		}
		work()
		return device.StatusSuccess
	}

	d.streamMutex.RLock()
	s, ok := d.streams.Get(handle)
	d.streamMutex.RUnlock()
	if !ok {
		return device.StatusInvalidResHandle
	}

	if !s.enqueue(work) {
		return device.StatusInvalidResHandle
	}
	return device.StatusSuccess
}
