// File: api/ready.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package api

import "strings"

// Ready is a bitmask describing which I/O operations are currently possible
// on a descriptor, plus the terminal conditions the kernel can attach to a
// delivered event.
type Ready uint8

const (
	// ReadReady indicates the descriptor is readable.
	ReadReady Ready = 1 << iota
	// WriteReady indicates the descriptor is writable.
	WriteReady
	// HupReady indicates the peer closed its end (half-close observed).
	HupReady
	// ErrorReady indicates the kernel reported a per-event error condition,
	// or a hangup that carried a nonzero error code.
	ErrorReady
)

// ReadyNone is the empty readiness set.
const ReadyNone Ready = 0

// Contains reports whether every bit in other is set in r.
func (r Ready) Contains(other Ready) bool { return r&other == other }

// IsReadable reports whether the read bit is set.
func (r Ready) IsReadable() bool { return r&ReadReady != 0 }

// IsWritable reports whether the write bit is set.
func (r Ready) IsWritable() bool { return r&WriteReady != 0 }

// IsHup reports whether the hangup bit is set.
func (r Ready) IsHup() bool { return r&HupReady != 0 }

// IsError reports whether the error bit is set.
func (r Ready) IsError() bool { return r&ErrorReady != 0 }

// String renders the set bits for diagnostics, e.g. "read|write".
func (r Ready) String() string {
	if r == ReadyNone {
		return "none"
	}
	var parts []string
	if r.IsReadable() {
		parts = append(parts, "read")
	}
	if r.IsWritable() {
		parts = append(parts, "write")
	}
	if r.IsHup() {
		parts = append(parts, "hup")
	}
	if r.IsError() {
		parts = append(parts, "error")
	}
	return strings.Join(parts, "|")
}
