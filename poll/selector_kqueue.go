//go:build darwin || dragonfly || freebsd || openbsd

// File: poll/selector_kqueue.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// kqueue(2)-backed Selector.

package poll

import (
	"fmt"
	"math"
	"sync/atomic"
	"time"

	"golang.org/x/sys/unix"

	"github.com/momentics/hioload-poll/api"
)

// nextID hands out process-wide Selector ids. The owning reactor records the
// id against each descriptor it registers, so a descriptor registered with
// one Selector is rejected if it later shows up at another. Ids start at 1
// (0 means "unset"), are never reused within the process, and carry no
// ordering semantics; compare them by equality only.
var nextID atomic.Uint64

// maxWait caps the kernel timeout; tv_sec is 32 bits wide on some of the
// supported systems.
const maxWait = math.MaxInt32 * time.Second

// Selector owns one kqueue descriptor for its whole lifetime. Registration
// calls may run concurrently with a Select blocked on the same Selector; the
// kernel serializes filter changes against a pending wait.
type Selector struct {
	id     uint64
	kq     int
	closed atomic.Bool
}

// New allocates a kernel event queue and wraps it in a Selector. The queue
// descriptor is marked close-on-exec so child processes never inherit it.
func New() (*Selector, error) {
	kq, err := unix.Kqueue()
	if err != nil {
		return nil, api.NewError(api.ErrCodeResource, "kqueue", err)
	}
	unix.CloseOnExec(kq)
	return &Selector{id: nextID.Add(1), kq: kq}, nil
}

// ID returns the Selector's process-wide unique identifier.
func (s *Selector) ID() uint64 { return s.id }

// Register installs interest in fd under tok. kqueue tracks readability and
// writability as two independent filters, so one registration becomes two
// changes: each direction present in interest is added, each absent one is
// deleted. Every change carries EV_RECEIPT so its result comes back
// per-change instead of being applied silently; receipts are then screened
// through the quirk table before any error propagates.
func (s *Selector) Register(fd int, tok api.Token, interest api.Ready, opts api.PollOpt) error {
	flags := unix.EV_RECEIPT
	if opts.IsEdge() {
		flags |= unix.EV_CLEAR
	}
	if opts.IsOneShot() {
		flags |= unix.EV_ONESHOT
	}

	r := unix.EV_DELETE
	if interest.IsReadable() {
		r = unix.EV_ADD
	}
	w := unix.EV_DELETE
	if interest.IsWritable() {
		w = unix.EV_ADD
	}

	var changes, receipts [2]unix.Kevent_t
	unix.SetKevent(&changes[0], fd, unix.EVFILT_READ, flags|r)
	unix.SetKevent(&changes[1], fd, unix.EVFILT_WRITE, flags|w)
	changes[0].Udata = tokenToUdata(tok)
	changes[1].Udata = tokenToUdata(tok)

	n, err := unix.Kevent(s.kq, changes[:], receipts[:], nil)
	if err != nil {
		return api.NewError(api.ErrCodeRegistration, "kevent register", err)
	}

	for i := 0; i < n; i++ {
		re := &receipts[i]
		if re.Data == 0 {
			continue
		}
		requested := r
		if int64(re.Filter) == unix.EVFILT_WRITE {
			requested = w
		}
		if suppressReceipt(int64(re.Filter), uint32(requested), unix.Errno(re.Data)) {
			continue
		}
		return api.NewError(api.ErrCodeRegistration, "kevent register", unix.Errno(re.Data))
	}
	return nil
}

// Reregister modifies an existing registration. EV_ADD doubles as an update
// for a filter that is already installed, so the changelist is identical to
// Register's.
func (s *Selector) Reregister(fd int, tok api.Token, interest api.Ready, opts api.PollOpt) error {
	return s.Register(fd, tok, interest, opts)
}

// Deregister removes both direction filters for fd. A descriptor with no
// active registration in either direction is a not-found error: callers are
// expected to deregister only descriptors they believe are registered. One
// absent direction alone is a legitimate one-directional interest and is
// tolerated.
func (s *Selector) Deregister(fd int) error {
	var changes, receipts [2]unix.Kevent_t
	unix.SetKevent(&changes[0], fd, unix.EVFILT_READ, unix.EV_DELETE|unix.EV_RECEIPT)
	unix.SetKevent(&changes[1], fd, unix.EVFILT_WRITE, unix.EV_DELETE|unix.EV_RECEIPT)

	n, err := unix.Kevent(s.kq, changes[:], receipts[:], nil)
	if err != nil {
		return api.NewError(api.ErrCodeRegistration, "kevent deregister", err)
	}

	if n == len(receipts) &&
		unix.Errno(receipts[0].Data) == unix.ENOENT &&
		unix.Errno(receipts[1].Data) == unix.ENOENT {
		return api.NewError(api.ErrCodeNotFound, "kevent deregister", unix.ENOENT)
	}
	for i := 0; i < n; i++ {
		re := &receipts[i]
		if re.Data != 0 && unix.Errno(re.Data) != unix.ENOENT {
			return api.NewError(api.ErrCodeRegistration, "kevent deregister", unix.Errno(re.Data))
		}
	}
	return nil
}

// Select blocks until at least one registered descriptor is ready, the
// timeout expires, or a wake arrives. A negative timeout blocks
// indefinitely; expiry with nothing ready is success with an empty buffer.
// The raw records land in evs' scratch region, are coalesced into the output
// sequence, and the return value reports whether the reserved wake token was
// among them. A failed wait (typically EINTR) is surfaced for the caller to
// judge; see api.Interrupted.
func (s *Selector) Select(evs *Events, wake api.Token, timeout time.Duration) (bool, error) {
	var ts *unix.Timespec
	if timeout >= 0 {
		if timeout > maxWait {
			timeout = maxWait
		}
		t := unix.NsecToTimespec(int64(timeout))
		ts = &t
	}

	raw := evs.sys[:cap(evs.sys)]
	n, err := unix.Kevent(s.kq, nil, raw, ts)
	if err != nil {
		return false, api.NewError(api.ErrCodeWait, "kevent wait", err)
	}

	// The kernel filled exactly n records; expose just those to coalescing.
	evs.sys = raw[:n]
	return evs.coalesce(wake), nil
}

// Close releases the kqueue descriptor. Only the first call closes the
// handle; later calls are no-ops. Per-descriptor kernel state is owned by
// the kernel and vanishes when descriptors are closed or deregistered, not
// here.
func (s *Selector) Close() error {
	if !s.closed.CompareAndSwap(false, true) {
		return nil
	}
	return unix.Close(s.kq)
}

// String renders the Selector for diagnostics.
func (s *Selector) String() string {
	return fmt.Sprintf("Selector{id: %d, kq: %d}", s.id, s.kq)
}
