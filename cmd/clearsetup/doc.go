// SPDX-License-Identifier: MPL-2.0

// Package cmd contains all CLI commands for clearsetup.
//
// This package implements the Cobra command hierarchy: the root command,
// `up` (the bootstrap sequence), `doctor` (runtime preflight), and the
// config inspection commands.
package cmd
