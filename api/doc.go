// File: api/doc.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Package api defines the portable value types exchanged between the
// kernel-event selector backends and the reactor that owns them:
// registration tokens, readiness bitmasks, poll options, delivered
// events, and the structured error taxonomy shared by all backends.
//
// Everything in this package is platform-neutral. Backend-specific
// translation to and from kernel event records lives in the poll package.
package api
