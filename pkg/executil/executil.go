// Package executil is the command-execution collaborator for the
// backend adapters: it runs an external binary, captures its output,
// and reports failure through the retcode rather than an error. Any
// timeout is imposed through the context; executil adds none itself.
package executil

import (
	"bytes"
	"context"
	"errors"
	"os/exec"
)

// Result carries everything a caller needs to classify a finished run.
// A non-zero Retcode is not an error at this layer; the adapters decide
// what it means from the output text.
type Result struct {
	Stdout  string
	Stderr  string
	Retcode int
	Pid     int
}

// Runner runs external commands. The interface exists so adapter tests
// can substitute canned output for real tool invocations.
type Runner interface {
	Run(ctx context.Context, name string, args ...string) Result
}

// Finder locates external binaries on the host. Satisfied by PathFinder
// in production and by fakes in tests.
type Finder interface {
	Find(name string) (string, bool)
}

// ExecRunner is the production Runner backed by os/exec
type ExecRunner struct{}

// Run executes the command and waits for it. Start failures (binary
// missing, permission denied) surface as Retcode -1 with the error text
// in Stderr, matching the run contract of never raising.
func (ExecRunner) Run(ctx context.Context, name string, args ...string) Result {
	cmd := exec.CommandContext(ctx, name, args...)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()

	res := Result{
		Stdout: stdout.String(),
		Stderr: stderr.String(),
	}
	if cmd.Process != nil {
		res.Pid = cmd.Process.Pid
	}
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			res.Retcode = exitErr.ExitCode()
		} else {
			res.Retcode = -1
			if res.Stderr == "" {
				res.Stderr = err.Error()
			}
		}
	}
	return res
}

// PathFinder resolves binaries against PATH
type PathFinder struct{}

func (PathFinder) Find(name string) (string, bool) {
	path, err := exec.LookPath(name)
	if err != nil {
		return "", false
	}
	return path, true
}
