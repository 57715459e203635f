//go:build darwin || dragonfly || freebsd || openbsd

// File: poll/udata_kqueue.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package poll

import (
	"unsafe"

	"github.com/momentics/hioload-poll/api"
)

// The kernel's per-event user-data slot is pointer-shaped on these
// platforms. The two conversions below are the only code that knows the
// slot's native representation; everything else trades in api.Token and
// must not depend on the slot's size or signedness.

func tokenToUdata(tok api.Token) *byte {
	return (*byte)(unsafe.Pointer(uintptr(tok)))
}

func udataToToken(udata *byte) api.Token {
	return api.Token(uintptr(unsafe.Pointer(udata)))
}
