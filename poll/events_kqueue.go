//go:build darwin || dragonfly || freebsd || openbsd

// File: poll/events_kqueue.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// kqueue scratch storage and the coalescing pass.

package poll

import (
	"golang.org/x/sys/unix"

	"github.com/momentics/hioload-poll/api"
)

// sysEventList is the raw kevent scratch region a wait call hands to the
// kernel. Its length after a wait is exactly the count the kernel reported.
type sysEventList []unix.Kevent_t

func newSysEventList(capacity int) sysEventList {
	return make(sysEventList, 0, capacity)
}

// coalesce folds the raw kevent records of one wait into the deduplicated
// output sequence. kqueue reports readability and writability as two
// independent records even though callers think in one readiness mask per
// token, so records sharing a token are merged by ORing their readiness into
// the slot created at the token's first occurrence. The reserved wake token
// is intercepted and never materialized; coalesce reports whether it was
// seen.
func (e *Events) coalesce(wake api.Token) bool {
	woken := false
	e.Clear()

	for i := range e.sys {
		ke := &e.sys[i]
		tok := udataToToken(ke.Udata)

		if tok == wake {
			// A spurious or error-carrying wake record is still just a wake.
			woken = true
			continue
		}

		idx, seen := e.eventMap[tok]
		if !seen {
			idx = len(e.events)
			e.eventMap[tok] = idx
			e.events = append(e.events, api.Event{Token: tok})
		}
		ev := &e.events[idx]

		if ke.Flags&unix.EV_ERROR != 0 {
			ev.Ready |= api.ErrorReady
		}

		switch int64(ke.Filter) {
		case unix.EVFILT_READ:
			ev.Ready |= api.ReadReady
		case unix.EVFILT_WRITE:
			ev.Ready |= api.WriteReady
		}

		if ke.Flags&unix.EV_EOF != 0 {
			ev.Ready |= api.HupReady
			// With EV_EOF set, fflags carries the socket error if there is
			// one; that separates a reset peer from a clean close.
			if ke.Fflags != 0 {
				ev.Ready |= api.ErrorReady
			}
		}
	}

	return woken
}
