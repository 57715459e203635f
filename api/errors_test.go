// File: api/errors_test.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package api_test

import (
	"errors"
	"fmt"
	"syscall"
	"testing"

	"github.com/momentics/hioload-poll/api"
)

func TestErrorPreservesErrno(t *testing.T) {
	err := api.NewError(api.ErrCodeRegistration, "kevent register", syscall.EBADF)
	if !errors.Is(err, syscall.EBADF) {
		t.Error("underlying errno not reachable through Unwrap")
	}
	if api.Code(err) != api.ErrCodeRegistration {
		t.Errorf("Code() = %d", api.Code(err))
	}
	// Classification must survive further wrapping by callers.
	wrapped := fmt.Errorf("reactor: %w", err)
	if api.Code(wrapped) != api.ErrCodeRegistration {
		t.Error("Code() lost through fmt wrapping")
	}
}

func TestCodeForeignError(t *testing.T) {
	if api.Code(errors.New("unrelated")) != api.ErrCodeOK {
		t.Error("foreign error classified")
	}
	if api.Code(nil) != api.ErrCodeOK {
		t.Error("nil error classified")
	}
}

func TestIsNotFound(t *testing.T) {
	err := api.NewError(api.ErrCodeNotFound, "kevent deregister", syscall.ENOENT)
	if !api.IsNotFound(err) {
		t.Error("IsNotFound = false for a not-found error")
	}
	if api.IsNotFound(api.NewError(api.ErrCodeWait, "kevent wait", syscall.EINTR)) {
		t.Error("IsNotFound = true for a wait error")
	}
}

func TestInterrupted(t *testing.T) {
	err := api.NewError(api.ErrCodeWait, "kevent wait", syscall.EINTR)
	if !api.Interrupted(err) {
		t.Error("EINTR wait not reported retry-safe")
	}
	if api.Interrupted(api.NewError(api.ErrCodeWait, "kevent wait", syscall.EBADF)) {
		t.Error("EBADF wait reported retry-safe")
	}
}
