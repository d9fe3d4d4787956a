// SPDX-License-Identifier: MPL-2.0

package testutil

import (
	"context"
	"strings"

	"clearsetup/internal/execx"
)

// FakeRunner is a Runner double that records every invocation in order and
// replies from a scripted response table. Unscripted invocations succeed.
type FakeRunner struct {
	// Calls holds each invocation's spec in call order.
	Calls []execx.Spec

	// Responses maps a substring of the joined command line
	// (path + args, space separated) to the result to return.
	// The first matching entry wins.
	Responses map[string]*execx.Result
}

// NewFakeRunner creates an empty FakeRunner where every call succeeds.
func NewFakeRunner() *FakeRunner {
	return &FakeRunner{Responses: make(map[string]*execx.Result)}
}

// Respond scripts a result for any invocation whose command line contains
// the given substring.
func (f *FakeRunner) Respond(substr string, result *execx.Result) *FakeRunner {
	f.Responses[substr] = result
	return f
}

// Run records the invocation and replies from the response table.
func (f *FakeRunner) Run(_ context.Context, spec execx.Spec) *execx.Result {
	return f.record(spec)
}

// RunCapture records the invocation and replies from the response table.
func (f *FakeRunner) RunCapture(_ context.Context, spec execx.Spec) *execx.Result {
	return f.record(spec)
}

// CommandLines returns the recorded invocations as joined command lines,
// in call order.
func (f *FakeRunner) CommandLines() []string {
	lines := make([]string, 0, len(f.Calls))
	for _, spec := range f.Calls {
		lines = append(lines, commandLine(spec))
	}
	return lines
}

func (f *FakeRunner) record(spec execx.Spec) *execx.Result {
	f.Calls = append(f.Calls, spec)

	line := commandLine(spec)
	for substr, result := range f.Responses {
		if strings.Contains(line, substr) {
			return result
		}
	}
	return execx.NewSuccessResult()
}

func commandLine(spec execx.Spec) string {
	return strings.Join(append([]string{spec.Path}, spec.Args...), " ")
}
