//go:build darwin || dragonfly || freebsd || openbsd

// File: poll/quirks_kqueue_test.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package poll

import (
	"testing"

	"golang.org/x/sys/unix"
)

func TestSuppressReceipt(t *testing.T) {
	cases := []struct {
		name      string
		filter    int64
		requested uint32
		errno     unix.Errno
		suppress  bool
	}{
		{"epipe on write filter", unix.EVFILT_WRITE, unix.EV_ADD, unix.EPIPE, true},
		{"epipe on read filter", unix.EVFILT_READ, unix.EV_ADD, unix.EPIPE, false},
		{"enoent on requested delete, read", unix.EVFILT_READ, unix.EV_DELETE, unix.ENOENT, true},
		{"enoent on requested delete, write", unix.EVFILT_WRITE, unix.EV_DELETE, unix.ENOENT, true},
		{"enoent on add", unix.EVFILT_READ, unix.EV_ADD, unix.ENOENT, false},
		{"unrelated errno", unix.EVFILT_READ, unix.EV_ADD, unix.EBADF, false},
		{"unrelated errno on delete", unix.EVFILT_WRITE, unix.EV_DELETE, unix.EBADF, false},
	}
	for _, tc := range cases {
		if got := suppressReceipt(tc.filter, tc.requested, tc.errno); got != tc.suppress {
			t.Errorf("%s: suppressReceipt = %v, want %v", tc.name, got, tc.suppress)
		}
	}
}
