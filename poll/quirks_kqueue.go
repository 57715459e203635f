//go:build darwin || dragonfly || freebsd || openbsd

// File: poll/quirks_kqueue.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Declarative suppression table for benign per-change kevent receipt errors.
// The policy is kqueue-specific; epoll and IOCP backends carry different
// tables, which is why it sits in its own file instead of inline checks.

package poll

import "golang.org/x/sys/unix"

// receiptQuirk matches one benign receipt error: the errno, the kernel
// filter it is scoped to, and the change flags that must have been requested
// for the suppression to apply.
type receiptQuirk struct {
	errno     unix.Errno
	filter    int64 // ignored when anyFilter is set
	anyFilter bool
	flags     uint32 // required bits in the requested change; 0 matches any
}

// receiptQuirks lists the receipt errors register swallows:
//
//   - EPIPE on the write filter. Older Darwin kernels (10.10/10.11) reject
//     registering the write side of a pipe whose peer already disappeared,
//     yet still deliver writable/hup events for that descriptor afterwards,
//     so propagating the rejection would fail working sockets spuriously.
//
//   - ENOENT on a requested delete. Removing a filter that was never added
//     is not an error for this contract; it is how a one-directional
//     interest clears the direction it does not want.
var receiptQuirks = []receiptQuirk{
	{errno: unix.EPIPE, filter: unix.EVFILT_WRITE},
	{errno: unix.ENOENT, anyFilter: true, flags: unix.EV_DELETE},
}

// suppressReceipt reports whether errno, raised on the receipt for one
// per-filter change, is a documented benign kernel quirk rather than a
// registration failure. requested is the flag set the change asked for.
func suppressReceipt(filter int64, requested uint32, errno unix.Errno) bool {
	for _, q := range receiptQuirks {
		if q.errno != errno {
			continue
		}
		if !q.anyFilter && q.filter != filter {
			continue
		}
		if q.flags != 0 && requested&q.flags == 0 {
			continue
		}
		return true
	}
	return false
}
