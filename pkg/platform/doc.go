// SPDX-License-Identifier: MPL-2.0

// Package platform classifies the host into the path and command conventions
// the bootstrapper has to follow.
//
// Classification collapses the host into one of three classes: plain POSIX,
// a POSIX shell emulation layer on Windows (MSYS/Git Bash), and native
// Windows. The class is resolved once at startup and consumed everywhere
// downstream instead of re-deriving it from runtime.GOOS ad hoc.
package platform
