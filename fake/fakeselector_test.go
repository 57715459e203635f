// Author: momentics <momentics@gmail.com>
// SPDX-License-Identifier: MIT

package fake_test

import (
	"testing"

	"github.com/momentics/hioload-poll/api"
	"github.com/momentics/hioload-poll/fake"
	"github.com/momentics/hioload-poll/poll"
)

const wakeToken = api.Token(1 << 20)

func TestFakeSelectDrainsInjected(t *testing.T) {
	s := fake.NewSelector()
	s.InjectReady(api.Event{Token: 1, Ready: api.ReadReady})
	s.InjectReady(api.Event{Token: 2, Ready: api.WriteReady})

	evs := poll.NewEvents(4)
	woken, err := s.Select(evs, wakeToken, 0)
	if err != nil {
		t.Fatalf("Select: %v", err)
	}
	if woken {
		t.Error("spurious wake")
	}
	if evs.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", evs.Len())
	}
	ev, _ := evs.Get(0)
	if ev.Token != 1 || !ev.Ready.IsReadable() {
		t.Errorf("Get(0) = %s", ev)
	}

	// Everything was drained; the next call starts from an empty buffer.
	if _, err := s.Select(evs, wakeToken, 0); err != nil {
		t.Fatalf("Select: %v", err)
	}
	if !evs.IsEmpty() {
		t.Errorf("stale events after drain: %v", evs)
	}
}

func TestFakeWakeIntercepted(t *testing.T) {
	s := fake.NewSelector()
	s.InjectReady(api.Event{Token: wakeToken, Ready: api.ReadReady})
	s.InjectReady(api.Event{Token: 3, Ready: api.ReadReady})

	evs := poll.NewEvents(4)
	woken, err := s.Select(evs, wakeToken, 0)
	if err != nil {
		t.Fatalf("Select: %v", err)
	}
	if !woken {
		t.Error("wake not observed")
	}
	if evs.Len() != 1 {
		t.Fatalf("Len() = %d, want wake filtered out", evs.Len())
	}
	if ev, _ := evs.Get(0); ev.Token == wakeToken {
		t.Error("wake token materialized as an event")
	}
}

func TestFakeDeregisterContract(t *testing.T) {
	s := fake.NewSelector()
	if err := s.Register(10, 1, api.ReadReady, api.LevelTriggered); err != nil {
		t.Fatalf("Register: %v", err)
	}
	if tok, interest, ok := s.Registered(10); !ok || tok != 1 || !interest.IsReadable() {
		t.Errorf("Registered(10) = (%d, %s, %v)", tok, interest, ok)
	}
	if err := s.Deregister(10); err != nil {
		t.Fatalf("Deregister: %v", err)
	}
	if err := s.Deregister(10); !api.IsNotFound(err) {
		t.Errorf("second Deregister = %v, want not-found class", err)
	}
}

func TestFakeIDsUnique(t *testing.T) {
	a, b := fake.NewSelector(), fake.NewSelector()
	if a.ID() == 0 || a.ID() == b.ID() {
		t.Errorf("ids = %d, %d", a.ID(), b.ID())
	}
}
