// SPDX-License-Identifier: MPL-2.0

// Package execx runs the bootstrapper's external processes (the Python
// interpreter, venv creation, pip).
//
// Every call goes through the Runner interface and returns a Result instead
// of mutating ambient process state, so the orchestration sequence can be
// tested with a recording double and no real interpreter.
package execx
