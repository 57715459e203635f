// File: poll/events.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Platform-neutral shell of the readiness buffer. The raw kernel scratch
// list type behind it is defined per platform.

package poll

import (
	"fmt"

	"github.com/momentics/hioload-poll/api"
)

// defaultEventsCapacity sizes the buffer when the caller passes no usable
// capacity hint.
const defaultEventsCapacity = 64

// Events is the per-wait working set of a Selector: a raw kernel-event
// scratch list sized once at construction, the deduplicated output sequence,
// and the token-to-slot map used only while coalescing. All three are reused
// on every wait; nothing in the buffer survives past the next Select call
// that uses it.
type Events struct {
	sys      sysEventList
	events   []api.Event
	eventMap map[api.Token]int
}

// NewEvents allocates a buffer able to receive up to capacity raw kernel
// events per wait call. The capacity bounds one batch, not how many
// descriptors the kernel tracks.
func NewEvents(capacity int) *Events {
	if capacity <= 0 {
		capacity = defaultEventsCapacity
	}
	return &Events{
		sys:      newSysEventList(capacity),
		events:   make([]api.Event, 0, capacity),
		eventMap: make(map[api.Token]int, capacity),
	}
}

// Len returns the number of coalesced events from the last wait.
func (e *Events) Len() int { return len(e.events) }

// Capacity returns the batch size the buffer was built for.
func (e *Events) Capacity() int { return cap(e.events) }

// IsEmpty reports whether the last wait produced no events.
func (e *Events) IsEmpty() bool { return len(e.events) == 0 }

// Get returns the event at position i in the output sequence. Order is the
// kernel's delivery order, with same-token records merged into their first
// occurrence. The second result is false when i is out of range.
func (e *Events) Get(i int) (api.Event, bool) {
	if i < 0 || i >= len(e.events) {
		return api.Event{}, false
	}
	return e.events[i], true
}

// PushEvent appends a synthetic event directly to the output sequence,
// bypassing coalescing. Callers use it to manufacture readiness not sourced
// from the kernel, such as forcing an immediate redelivery.
func (e *Events) PushEvent(ev api.Event) {
	e.events = append(e.events, ev)
}

// Clear empties the output sequence and the coalescing map. Every coalescing
// pass starts with a Clear so no event leaks across waits; fakes that feed
// the buffer through PushEvent follow the same discipline.
func (e *Events) Clear() {
	e.events = e.events[:0]
	clear(e.eventMap)
}

// String renders the buffer state for diagnostics.
func (e *Events) String() string {
	return fmt.Sprintf("Events{len: %d}", len(e.events))
}
