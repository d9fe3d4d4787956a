// SPDX-License-Identifier: MPL-2.0

// Package config loads the optional clearsetup configuration file.
//
// With no file present every default matches the documented bootstrap
// behavior (environment dir "venv", safe reuse, auto-detected interpreter);
// the file only exists to override those defaults. Flags override the file.
package config
