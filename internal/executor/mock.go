package executor

import (
	"context"
	"strings"
)

// Compile-time check that MockExecutor implements Executor.
var _ Executor = (*MockExecutor)(nil)

// Call is one recorded invocation on a MockExecutor.
type Call struct {
	Program string
	Args    []string
}

// String returns the call as a single command line, e.g. "git add CHANGELOG.md".
func (c Call) String() string {
	return strings.TrimSpace(c.Program + " " + strings.Join(c.Args, " "))
}

// MockExecutor is a configurable mock implementation of Executor for testing.
// Every invocation is appended to Calls before the backing function runs.
// If the function field is nil, the method succeeds with empty output.
type MockExecutor struct {
	RunFunc    func(program string, args []string) error
	OutputFunc func(program string, args []string) (string, error)

	Calls []Call
}

func (m *MockExecutor) Run(_ context.Context, program string, args ...string) error {
	m.Calls = append(m.Calls, Call{Program: program, Args: args})
	if m.RunFunc != nil {
		return m.RunFunc(program, args)
	}
	return nil
}

func (m *MockExecutor) Output(_ context.Context, program string, args ...string) (string, error) {
	m.Calls = append(m.Calls, Call{Program: program, Args: args})
	if m.OutputFunc != nil {
		return m.OutputFunc(program, args)
	}
	return "", nil
}

// CommandLines returns every recorded call rendered with Call.String.
func (m *MockExecutor) CommandLines() []string {
	lines := make([]string, 0, len(m.Calls))
	for _, c := range m.Calls {
		lines = append(lines, c.String())
	}
	return lines
}
