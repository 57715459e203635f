// File: poll/doc.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Package poll implements the kernel-event notification core of the
// readiness multiplexer: a Selector owning one kernel event queue, and an
// Events buffer that folds the kernel's raw per-direction records into one
// deduplicated readiness event per token.
//
// The backend on BSD-derived systems is kqueue(2). Platforms without kqueue
// get a stub Selector whose constructor fails; epoll and IOCP backends are
// separate, interchangeable implementations of the same contract and are
// out of scope here.
//
// Selector registration calls are safe to issue concurrently with a wait
// blocked on the same Selector: the kernel queue accepts filter changes
// alongside a pending wait, so no in-process lock guards the handle. The
// Events buffer is not concurrency-safe; every Select call overwrites it
// wholesale, so it must have a single logical owner, typically one buffer
// per reactor loop.
package poll
