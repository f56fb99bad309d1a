package backend

import (
	"context"

	"github.com/cuemby/burrow/pkg/executil"
)

// fakeRunner returns canned tool output and records the invocation
type fakeRunner struct {
	result   executil.Result
	lastName string
	lastArgs []string
}

func (f *fakeRunner) Run(_ context.Context, name string, args ...string) executil.Result {
	f.lastName = name
	f.lastArgs = args
	return f.result
}

// fakeFinder pretends the named binaries are installed
type fakeFinder struct {
	installed map[string]bool
}

func (f fakeFinder) Find(name string) (string, bool) {
	if f.installed[name] {
		return "/usr/bin/" + name, true
	}
	return "", false
}
