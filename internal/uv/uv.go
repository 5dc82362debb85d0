// Package uv drives the uv package manager: it queries and sets the project
// version recorded in pyproject.toml and checks that uv itself is recent
// enough for the flags kraken relies on.
package uv

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/MyCarrier-DevOps/go-kraken/internal/executor"
	"github.com/MyCarrier-DevOps/go-kraken/internal/semver"
)

// Program is the uv executable name.
const Program = "uv"

// LockFile is the lockfile uv maintains next to pyproject.toml.
const LockFile = "uv.lock"

// MinimumVersion is the oldest uv supporting "uv version --bump".
var MinimumVersion = semver.MustParse("0.7.20")

// ErrVersionTooOld is returned when the installed uv is below MinimumVersion.
var ErrVersionTooOld = errors.New("uv version is too old")

// Tool runs uv commands through an Executor.
type Tool struct {
	exec executor.Executor
}

// New creates a Tool backed by exec.
func New(exec executor.Executor) *Tool {
	return &Tool{exec: exec}
}

// SelfVersion returns the version of the installed uv binary.
// "uv self version --short" prints e.g. "0.7.20 (abc1234 2025-07-01)";
// only the leading version is returned.
func (t *Tool) SelfVersion(ctx context.Context) (semver.SemanticVersion, error) {
	out, err := t.exec.Output(ctx, Program, "self", "version", "--short")
	if err != nil {
		return semver.SemanticVersion{}, fmt.Errorf("failed to get uv version: %w", err)
	}

	fields := strings.Fields(out)
	if len(fields) == 0 {
		return semver.SemanticVersion{}, errors.New("failed parsing uv version: empty output")
	}

	v, err := semver.Parse(fields[0])
	if err != nil {
		return semver.SemanticVersion{}, fmt.Errorf("failed parsing uv version: %w", err)
	}
	return v, nil
}

// CheckMinimumVersion fails with ErrVersionTooOld when the installed uv is
// older than MinimumVersion. It returns the detected version.
func (t *Tool) CheckMinimumVersion(ctx context.Context) (semver.SemanticVersion, error) {
	v, err := t.SelfVersion(ctx)
	if err != nil {
		return semver.SemanticVersion{}, err
	}
	if !v.AtLeast(MinimumVersion) {
		return v, fmt.Errorf("%w: uv version %s is less than the minimum required version %s",
			ErrVersionTooOld, v, MinimumVersion)
	}
	return v, nil
}

// PackageVersion returns the project version as uv reports it.
func (t *Tool) PackageVersion(ctx context.Context) (string, error) {
	out, err := t.exec.Output(ctx, Program, "version", "--short")
	if err != nil {
		return "", fmt.Errorf("failed to get package version: %w", err)
	}
	if out == "" {
		return "", errors.New("failed to get package version: uv printed nothing")
	}
	return out, nil
}

// SetVersion writes version into pyproject.toml (and uv.lock).
// The version string is passed through verbatim.
func (t *Tool) SetVersion(ctx context.Context, version string) error {
	if err := t.exec.Run(ctx, Program, "version", version); err != nil {
		return fmt.Errorf("failed to update version to %s: %w", version, err)
	}
	return nil
}

// BumpPreRelease advances the project to the next alpha of the next patch
// release, e.g. 1.4.0 -> 1.4.1a1.
func (t *Tool) BumpPreRelease(ctx context.Context) error {
	if err := t.exec.Run(ctx, Program, "version", "--bump", "patch", "--bump", "alpha"); err != nil {
		return fmt.Errorf("failed to bump version to pre-release: %w", err)
	}
	return nil
}
