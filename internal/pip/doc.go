// SPDX-License-Identifier: MPL-2.0

// Package pip installs the assistant's dependency set into the provisioned
// environment.
//
// Two sequential calls through the environment's own interpreter: a pip
// self-upgrade first, then the fixed package set as one batch. Either call
// failing aborts the run; there is no per-package retry or partial-success
// reporting.
package pip
