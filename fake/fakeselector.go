// Author: momentics <momentics@gmail.com>
// SPDX-License-Identifier: MIT

// Package fake provides an in-memory Selector double for testing readiness
// consumers without a kernel event queue.
package fake

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/eapache/queue"

	"github.com/momentics/hioload-poll/api"
	"github.com/momentics/hioload-poll/poll"
)

var nextID atomic.Uint64

// Selector mirrors the poll.Selector method set. Registrations are tracked
// in a map so Deregister reproduces the real not-found contract; readiness
// is injected with InjectReady and held in a FIFO until the next Select
// drains it. Select never blocks, whatever timeout it is given.
type Selector struct {
	mu         sync.Mutex
	id         uint64
	registered map[int]registration
	pending    *queue.Queue // of api.Event
}

type registration struct {
	token    api.Token
	interest api.Ready
	opts     api.PollOpt
}

// NewSelector returns an empty fake with its own unique id.
func NewSelector() *Selector {
	return &Selector{
		id:         nextID.Add(1),
		registered: make(map[int]registration),
		pending:    queue.New(),
	}
}

// ID returns the fake's unique identifier.
func (s *Selector) ID() uint64 { return s.id }

// Register records interest in fd under tok.
func (s *Selector) Register(fd int, tok api.Token, interest api.Ready, opts api.PollOpt) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.registered[fd] = registration{token: tok, interest: interest, opts: opts}
	return nil
}

// Reregister replaces an earlier registration, like the real backend.
func (s *Selector) Reregister(fd int, tok api.Token, interest api.Ready, opts api.PollOpt) error {
	return s.Register(fd, tok, interest, opts)
}

// Deregister drops fd's registration; a descriptor that was never
// registered yields the same not-found error class as the kqueue backend.
func (s *Selector) Deregister(fd int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.registered[fd]; !ok {
		return api.NewError(api.ErrCodeNotFound, "fake deregister", nil)
	}
	delete(s.registered, fd)
	return nil
}

// Registered reports the current registration for fd, if any.
func (s *Selector) Registered(fd int) (api.Token, api.Ready, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	reg, ok := s.registered[fd]
	return reg.token, reg.interest, ok
}

// InjectReady queues one readiness event for the next Select call. Events
// are delivered in injection order, uncoalesced.
func (s *Selector) InjectReady(ev api.Event) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pending.Add(ev)
}

// Select drains everything injected so far into evs, intercepting the wake
// token exactly as the real coalescing pass does: a wake is reported
// out-of-band and never materialized as an event. The timeout is ignored.
func (s *Selector) Select(evs *poll.Events, wake api.Token, _ time.Duration) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	evs.Clear()
	woken := false
	for s.pending.Length() > 0 {
		ev := s.pending.Remove().(api.Event)
		if ev.Token == wake {
			woken = true
			continue
		}
		evs.PushEvent(ev)
	}
	return woken, nil
}

// Close discards all state.
func (s *Selector) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.registered = make(map[int]registration)
	s.pending = queue.New()
	return nil
}
