// Package api
// Author: momentics <momentics@gmail.com>
//
// Common error types shared by all selector backends.

package api

import (
	"errors"
	"fmt"
	"syscall"
)

// Common errors used across the library.
var (
	ErrNotSupported = fmt.Errorf("selector is not supported on this platform")
	ErrClosed       = fmt.Errorf("selector is closed")
)

// ErrorCode classifies selector failures so retry loops can branch on the
// class without parsing messages.
type ErrorCode int

const (
	ErrCodeOK ErrorCode = iota
	// ErrCodeResource: the kernel event queue could not be allocated.
	// Fatal to construction, never retried internally.
	ErrCodeResource
	// ErrCodeRegistration: a register/reregister/deregister call failed for
	// a reason other than the documented suppressed kernel quirks.
	ErrCodeRegistration
	// ErrCodeNotFound: a deregister found no active registration for the
	// descriptor in either direction.
	ErrCodeNotFound
	// ErrCodeWait: the blocking wait syscall itself failed. Whether an
	// interrupted wait is reissued is the caller's decision.
	ErrCodeWait
)

// Error is a structured selector error. Err preserves the kernel-reported
// errno (when there is one) so callers can reach it with errors.Is or
// errors.As through the usual unwrapping chain.
type Error struct {
	Code ErrorCode
	Op   string
	Err  error
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Err == nil {
		return e.Op
	}
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

// Unwrap exposes the underlying cause, typically a unix.Errno.
func (e *Error) Unwrap() error { return e.Err }

// NewError creates a structured error for the given class and operation.
func NewError(code ErrorCode, op string, err error) *Error {
	return &Error{Code: code, Op: op, Err: err}
}

// Code extracts the error class, or ErrCodeOK for nil / foreign errors.
func Code(err error) ErrorCode {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ErrCodeOK
}

// IsNotFound reports whether err is a deregister-of-unregistered failure.
func IsNotFound(err error) bool { return Code(err) == ErrCodeNotFound }

// Interrupted reports whether err is a retry-safe signal interruption of a
// blocking wait. Callers that want the wait to survive signals reissue the
// call when this returns true.
func Interrupted(err error) bool { return errors.Is(err, syscall.EINTR) }
