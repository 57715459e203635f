//go:build !darwin && !dragonfly && !freebsd && !openbsd

// File: poll/events_stub.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Scratch storage placeholder for platforms without kqueue. The portable
// Events surface (Get/PushEvent/Clear) still works, which keeps fakes and
// consumers compiling everywhere.

package poll

type sysEventList struct{}

func newSysEventList(int) sysEventList { return sysEventList{} }
