package lvm

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"

	"github.com/cuemby/rlvm/pkg/log"
	"github.com/cuemby/rlvm/pkg/metrics"
)

// Runner executes host commands.
type Runner interface {
	// Run executes name with args and returns its standard output. A command
	// that exits non-zero is reported as a *CommandError.
	Run(ctx context.Context, name string, args ...string) ([]byte, error)
}

// CommandError describes a host command that exited with a non-zero status.
type CommandError struct {
	Name     string
	Args     []string
	ExitCode int
	Stderr   string
}

func (e *CommandError) Error() string {
	msg := strings.TrimSpace(e.Stderr)
	if msg == "" {
		return fmt.Sprintf("%s exited with status %d", e.Name, e.ExitCode)
	}
	return fmt.Sprintf("%s exited with status %d: %s", e.Name, e.ExitCode, msg)
}

// ExecRunner runs commands with os/exec.
type ExecRunner struct{}

// Run implements Runner.
func (ExecRunner) Run(ctx context.Context, name string, args ...string) ([]byte, error) {
	timer := metrics.NewTimer()
	defer timer.ObserveDurationVec(metrics.CommandDuration, name)

	var stdout, stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	log.Logger.Debug().
		Str("command", name).
		Strs("args", args).
		Msg("Running host command")

	err := cmd.Run()
	metrics.CommandsTotal.WithLabelValues(name, metrics.Result(err)).Inc()
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return stdout.Bytes(), &CommandError{
				Name:     name,
				Args:     args,
				ExitCode: exitErr.ExitCode(),
				Stderr:   stderr.String(),
			}
		}
		return stdout.Bytes(), fmt.Errorf("failed to run %s: %w", name, err)
	}

	return stdout.Bytes(), nil
}
