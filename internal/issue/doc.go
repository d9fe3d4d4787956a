// SPDX-License-Identifier: MPL-2.0

// Package issue provides user-facing error types for the bootstrapper.
//
// ActionableError carries the failed operation, the resource involved, and
// remediation suggestions, so the CLI can print something the operator can
// act on instead of a bare error string.
package issue
