// File: api/token.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package api

// Token is an opaque caller-supplied identifier correlating a registration
// with the events later delivered for it. The selector round-trips a Token
// through the kernel's per-event user-data slot unchanged; it never
// interprets the value.
//
// Two registrations may share a Token only if the caller intends their
// readiness to be merged into a single delivered event.
type Token uintptr
