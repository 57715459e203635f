// File: api/event.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package api

import "fmt"

// Event is one delivered readiness notification: the Token supplied at
// registration time and the union of readiness conditions the kernel
// reported for it within a single wait call.
type Event struct {
	Token Token
	Ready Ready
}

// String renders the event for diagnostics.
func (e Event) String() string {
	return fmt.Sprintf("Event{token: %d, ready: %s}", e.Token, e.Ready)
}
