// Package release sequences the external commands that turn a prepared
// working tree into a published release: staging, committing, pushing,
// tagging and the follow-up pre-release bump.
//
// Steps run strictly in order and the first failure aborts the sequence.
// Nothing is rolled back; whatever earlier steps did to the working tree or
// the remote stays done.
package release

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/MyCarrier-DevOps/go-kraken/internal/executor"
)

// GitProgram is the version-control executable.
const GitProgram = "git"

// Step is one external command in a release sequence.
type Step struct {
	Program        string
	Args           []string
	FailureMessage string
}

func (s Step) String() string {
	return executor.Call{Program: s.Program, Args: s.Args}.String()
}

// RunSteps executes steps in order and stops at the first failure, which is
// returned prefixed with the step's failure message.
func RunSteps(ctx context.Context, exec executor.Executor, steps []Step) error {
	for _, step := range steps {
		slog.Debug("release step", "command", step.String())
		if err := exec.Run(ctx, step.Program, step.Args...); err != nil {
			return fmt.Errorf("%s: %w", step.FailureMessage, err)
		}
	}
	return nil
}

// CommitSteps stages each file, commits with message and pushes the branch.
func CommitSteps(files []string, message string) []Step {
	steps := make([]Step, 0, len(files)+2)
	for _, f := range files {
		steps = append(steps, Step{
			Program:        GitProgram,
			Args:           []string{"add", f},
			FailureMessage: fmt.Sprintf("failed to add %s to git", f),
		})
	}
	return append(steps,
		Step{
			Program:        GitProgram,
			Args:           []string{"commit", "-m", message},
			FailureMessage: "failed to commit changes",
		},
		Step{
			Program:        GitProgram,
			Args:           []string{"push"},
			FailureMessage: "failed to push changes",
		},
	)
}

// TagSteps creates an annotated tag named and annotated with version, then
// pushes tags. The branch push is expected to have happened already.
func TagSteps(version string) []Step {
	return []Step{
		{
			Program:        GitProgram,
			Args:           []string{"tag", "-a", version, "-m", version},
			FailureMessage: fmt.Sprintf("failed to create tag %s", version),
		},
		{
			Program:        GitProgram,
			Args:           []string{"push", "--tags"},
			FailureMessage: "failed to push tags",
		},
	}
}
