// Package executor runs external programs on behalf of the release workflow.
// It is the only place kraken creates processes; every git and uv invocation
// goes through an Executor.
package executor

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os/exec"
	"strings"
)

// Executor runs external programs.
// This is the key abstraction point for testing: the release workflow only
// ever talks to an Executor, never to os/exec directly.
type Executor interface {
	// Run executes program with args and reports success or a *CommandError.
	// The program's stdout and stderr are never shown to the user.
	Run(ctx context.Context, program string, args ...string) error

	// Output executes program with args and returns its trimmed stdout.
	Output(ctx context.Context, program string, args ...string) (string, error)
}

// Compile-time check that CommandExecutor implements Executor.
var _ Executor = (*CommandExecutor)(nil)

// CommandExecutor implements Executor with os/exec.
type CommandExecutor struct {
	// Dir is the working directory for spawned programs. Empty means the
	// current process directory.
	Dir string
}

// New creates a CommandExecutor rooted at dir.
func New(dir string) *CommandExecutor {
	return &CommandExecutor{Dir: dir}
}

func (e *CommandExecutor) Run(ctx context.Context, program string, args ...string) error {
	_, err := e.run(ctx, io.Discard, program, args)
	return err
}

func (e *CommandExecutor) Output(ctx context.Context, program string, args ...string) (string, error) {
	var stdout bytes.Buffer
	if _, err := e.run(ctx, &stdout, program, args); err != nil {
		return "", err
	}
	return strings.TrimSpace(stdout.String()), nil
}

func (e *CommandExecutor) run(ctx context.Context, stdout io.Writer, program string, args []string) (int, error) {
	slog.Debug("running command", "program", program, "args", args, "dir", e.Dir)

	var stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, program, args...)
	cmd.Dir = e.Dir
	cmd.Stdout = stdout
	cmd.Stderr = &stderr

	if err := cmd.Start(); err != nil {
		return -1, &CommandError{
			Program: program,
			Args:    args,
			Reason:  ReasonSpawn,
			Code:    -1,
			Err:     err,
		}
	}

	err := cmd.Wait()
	if err == nil {
		return 0, nil
	}

	code := -1
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		code = exitErr.ExitCode()
	}

	return code, &CommandError{
		Program: program,
		Args:    args,
		Reason:  ReasonNonZero,
		Code:    code,
		Stderr:  strings.TrimSpace(stderr.String()),
		Err:     err,
	}
}

// Reason classifies why a command failed.
type Reason int

const (
	// ReasonSpawn means the program could not be started at all.
	ReasonSpawn Reason = iota
	// ReasonNonZero means the program ran and exited unsuccessfully.
	ReasonNonZero
)

func (r Reason) String() string {
	switch r {
	case ReasonSpawn:
		return "spawn"
	case ReasonNonZero:
		return "nonzero"
	default:
		return "unknown"
	}
}

// CommandError describes a failed external command.
type CommandError struct {
	Program string
	Args    []string
	Reason  Reason
	// Code is the exit code for ReasonNonZero, -1 otherwise.
	Code int
	// Stderr holds the captured error output, if any.
	Stderr string
	Err    error
}

// CommandLine returns the program and its arguments joined by spaces.
func (e *CommandError) CommandLine() string {
	return strings.TrimSpace(e.Program + " " + strings.Join(e.Args, " "))
}

func (e *CommandError) Error() string {
	var msg string
	switch e.Reason {
	case ReasonSpawn:
		msg = fmt.Sprintf("starting %q: %v", e.CommandLine(), e.Err)
	default:
		msg = fmt.Sprintf("%q exited with code %d", e.CommandLine(), e.Code)
	}
	if e.Stderr != "" {
		msg += ": " + lastLine(e.Stderr)
	}
	return msg
}

func (e *CommandError) Unwrap() error {
	return e.Err
}

// lastLine returns the final non-empty line of s. Tools like git and uv put
// the most useful diagnostic last.
func lastLine(s string) string {
	lines := strings.Split(strings.TrimSpace(s), "\n")
	return strings.TrimSpace(lines[len(lines)-1])
}
