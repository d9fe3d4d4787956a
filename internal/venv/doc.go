// SPDX-License-Identifier: MPL-2.0

// Package venv provisions the assistant's isolated Python environment and
// resolves its platform-specific activation entry points.
//
// Provisioning is idempotent: an existing valid environment is reused unless
// the caller forces re-creation. Activation never mutates the bootstrapper's
// own process environment; instead an ExecContext carrying the environment
// overrides is handed to every subsequent external call.
package venv
