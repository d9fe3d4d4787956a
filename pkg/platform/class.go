// SPDX-License-Identifier: MPL-2.0

package platform

import (
	"os"
	"runtime"
	"strings"
)

// Class identifies which filesystem path convention and command text variant
// applies on this host.
type Class int

const (
	// Posix covers Linux, macOS, and other Unix-likes.
	Posix Class = iota
	// WindowsShell is a POSIX shell emulation layer on Windows (MSYS2,
	// Git Bash). Virtual environments use the Windows Scripts/ layout but
	// activation happens from a POSIX-style shell.
	WindowsShell
	// WindowsNative is cmd.exe or PowerShell on Windows.
	WindowsNative
)

// String returns a short name for the class.
func (c Class) String() string {
	switch c {
	case WindowsShell:
		return "windows-shell-emulation"
	case WindowsNative:
		return "native-windows"
	default:
		return "posix"
	}
}

// IsWindows reports whether the class uses the Windows Scripts/ environment
// layout (both the native and shell-emulation variants do).
func (c Class) IsWindows() bool {
	return c == WindowsShell || c == WindowsNative
}

// Classify resolves a Class from an OS identifier and an OSTYPE-style marker.
// The marker wins over the OS identifier: an OSTYPE containing "msys" or
// "win32" means a POSIX shell running against the Windows layout.
func Classify(goos, ostype string) Class {
	marker := strings.ToLower(ostype)
	if strings.Contains(marker, "msys") || strings.Contains(marker, "win32") {
		return WindowsShell
	}
	if goos == Windows {
		return WindowsNative
	}
	return Posix
}

// Detect classifies the current host from runtime.GOOS and the OSTYPE
// environment variable.
func Detect() Class {
	return Classify(runtime.GOOS, os.Getenv("OSTYPE"))
}
