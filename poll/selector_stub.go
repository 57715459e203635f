//go:build !darwin && !dragonfly && !freebsd && !openbsd

// File: poll/selector_stub.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Stub Selector for platforms without kqueue. Keeps dependents compiling;
// construction fails, so none of the other methods are ever reached in a
// correct program.

package poll

import (
	"time"

	"github.com/momentics/hioload-poll/api"
)

// Selector is unavailable on this platform.
type Selector struct{}

// New fails: there is no kqueue backend here.
func New() (*Selector, error) { return nil, api.ErrNotSupported }

// ID returns 0, the "unset" identifier.
func (s *Selector) ID() uint64 { return 0 }

func (s *Selector) Register(fd int, tok api.Token, interest api.Ready, opts api.PollOpt) error {
	return api.ErrNotSupported
}

func (s *Selector) Reregister(fd int, tok api.Token, interest api.Ready, opts api.PollOpt) error {
	return api.ErrNotSupported
}

func (s *Selector) Deregister(fd int) error { return api.ErrNotSupported }

func (s *Selector) Select(evs *Events, wake api.Token, timeout time.Duration) (bool, error) {
	return false, api.ErrNotSupported
}

func (s *Selector) Close() error { return nil }

// Waker is unavailable on this platform.
type Waker struct{}

// NewWaker fails alongside the Selector it would serve.
func NewWaker(s *Selector, tok api.Token) (*Waker, error) { return nil, api.ErrNotSupported }

func (w *Waker) Wake() error { return api.ErrNotSupported }

func (w *Waker) Drain() {}

func (w *Waker) Close() error { return nil }
