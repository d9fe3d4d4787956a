// SPDX-License-Identifier: MPL-2.0

// Package testutil provides shared test helpers: a recording Runner double
// for asserting external-call order without spawning real processes, and
// small filesystem helpers.
package testutil
