//go:build darwin || dragonfly || freebsd || openbsd

// File: poll/waker_kqueue.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package poll

import (
	"sync/atomic"

	"golang.org/x/sys/unix"

	"github.com/momentics/hioload-poll/api"
)

// Waker releases a Selector blocked in Select from another goroutine. It is
// an ordinary registered source: the read end of a pipe, registered under a
// token the caller reserves for waking. Select intercepts that token during
// coalescing and reports it out-of-band instead of materializing an event.
type Waker struct {
	sel    *Selector
	rd, wr int
	closed atomic.Bool
}

// NewWaker builds the pipe pair, marks both ends close-on-exec and
// non-blocking, and registers the read end edge-triggered under tok.
// Edge-triggered keeps an undrained pipe from storming every later wait.
func NewWaker(s *Selector, tok api.Token) (*Waker, error) {
	var p [2]int
	if err := unix.Pipe(p[:]); err != nil {
		return nil, api.NewError(api.ErrCodeResource, "waker pipe", err)
	}
	for _, fd := range p {
		unix.CloseOnExec(fd)
		if err := unix.SetNonblock(fd, true); err != nil {
			unix.Close(p[0])
			unix.Close(p[1])
			return nil, api.NewError(api.ErrCodeResource, "waker nonblock", err)
		}
	}
	if err := s.Register(p[0], tok, api.ReadReady, api.EdgeTriggered); err != nil {
		unix.Close(p[0])
		unix.Close(p[1])
		return nil, err
	}
	return &Waker{sel: s, rd: p[0], wr: p[1]}, nil
}

// Wake queues one wake byte. A full pipe means wakes are already pending,
// which counts as success.
func (w *Waker) Wake() error {
	_, err := unix.Write(w.wr, []byte{0})
	if err == unix.EAGAIN {
		err = nil
	}
	if err != nil {
		return api.NewError(api.ErrCodeWait, "waker write", err)
	}
	return nil
}

// Drain empties the pipe once a wake has been observed.
func (w *Waker) Drain() {
	var buf [64]byte
	for {
		n, err := unix.Read(w.rd, buf[:])
		if n <= 0 || err != nil {
			return
		}
	}
}

// Close deregisters the read end and closes both pipe ends. Later calls are
// no-ops.
func (w *Waker) Close() error {
	if !w.closed.CompareAndSwap(false, true) {
		return nil
	}
	err := w.sel.Deregister(w.rd)
	unix.Close(w.rd)
	unix.Close(w.wr)
	return err
}
