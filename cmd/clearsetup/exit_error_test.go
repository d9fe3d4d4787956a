// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"errors"
	"testing"
)

func TestExitErrorMessage(t *testing.T) {
	cause := errors.New("failed to install assistant packages")
	err := &ExitError{Code: 1, Err: cause}

	if err.Error() != cause.Error() {
		t.Errorf("Error() = %q, want the wrapped message", err.Error())
	}
	if !errors.Is(err, cause) {
		t.Error("errors.Is() should match the wrapped cause")
	}
}

func TestExitErrorWithoutCause(t *testing.T) {
	err := &ExitError{Code: 2}
	if err.Error() != "exit status 2" {
		t.Errorf("Error() = %q, want %q", err.Error(), "exit status 2")
	}
}
