// SPDX-License-Identifier: MPL-2.0

// Package pyruntime locates the Python interpreter the bootstrapper builds
// the environment with.
//
// The versioned binary name (python3) is preferred over the generic one
// (python); absence of both is a fatal, non-retryable condition surfaced as
// ErrRuntimeMissing.
package pyruntime
