// Package cmdexec abstracts external command execution for testability.
// Production code uses the Commander interface; tests inject FakeCommander from testutil.
package cmdexec

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
)

// ErrCommandNotFound is returned when the requested executable is not on PATH.
var ErrCommandNotFound = errors.New("command not found")

// Commander abstracts external command execution.
type Commander interface {
	// Run executes an external command in dir and returns its combined output.
	// An empty dir runs the command in the current working directory.
	Run(ctx context.Context, dir, name string, args ...string) ([]byte, error)
}

// RealCommander executes actual external commands via os/exec.
type RealCommander struct{}

// Run looks the command up on PATH and executes it using os/exec.CommandContext.
func (c *RealCommander) Run(ctx context.Context, dir, name string, args ...string) ([]byte, error) {
	if _, err := exec.LookPath(name); err != nil {
		if errors.Is(err, exec.ErrNotFound) {
			return nil, fmt.Errorf("cmdexec.Run: %q: %w", name, ErrCommandNotFound)
		}
		return nil, fmt.Errorf("cmdexec.Run: %w", err)
	}
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Dir = dir
	return cmd.CombinedOutput()
}
