// SPDX-License-Identifier: MPL-2.0

// Package setup orchestrates the bootstrap sequence for the Clear assistant:
//
//	locate runtime → provision environment → activate → upgrade pip →
//	install packages → report next steps
//
// The sequence is a fail-fast chain: every stage returns an error and no
// stage runs after a failure, so a success report is only ever printed when
// every external call actually succeeded. Re-invocation is the recovery
// strategy for an interrupted run; the provisioner's reuse policy makes it
// idempotent.
package setup
