// File: api/pollopt.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package api

import "strings"

// PollOpt selects the delivery mode of a registration.
type PollOpt uint8

const (
	// EdgeTriggered delivers an event only when a readiness condition
	// changes, not while it merely persists.
	EdgeTriggered PollOpt = 1 << iota
	// OneShot disarms the registration after its first delivery; the caller
	// must reregister to receive further events.
	OneShot
)

// LevelTriggered is the default mode: an event is delivered on every wait
// while the readiness condition remains true.
const LevelTriggered PollOpt = 0

// IsEdge reports whether edge-triggered delivery was requested.
func (o PollOpt) IsEdge() bool { return o&EdgeTriggered != 0 }

// IsOneShot reports whether one-shot delivery was requested.
func (o PollOpt) IsOneShot() bool { return o&OneShot != 0 }

// String renders the option set for diagnostics.
func (o PollOpt) String() string {
	var parts []string
	if o.IsEdge() {
		parts = append(parts, "edge")
	} else {
		parts = append(parts, "level")
	}
	if o.IsOneShot() {
		parts = append(parts, "oneshot")
	}
	return strings.Join(parts, "|")
}
