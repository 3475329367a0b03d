package lvm

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrNotFound is returned when a volume group or logical volume does not exist.
	ErrNotFound = errors.New("not found")
	// ErrAlreadyExists is returned when creating a logical volume whose name is taken.
	ErrAlreadyExists = errors.New("already exists")
	// ErrInvalidCommand is returned when an LVM tool rejects its command line.
	ErrInvalidCommand = errors.New("invalid command line")
)

// exitInvalidCmdLine is EINVALID_CMD_LINE from lvm2's errors.h.
const exitInvalidCmdLine = 3

// classify wraps a *CommandError with the sentinel that best describes it.
// Errors that are not command failures are returned unchanged.
func classify(err error) error {
	var cmdErr *CommandError
	if !errors.As(err, &cmdErr) {
		return err
	}

	if cmdErr.ExitCode == exitInvalidCmdLine {
		return fmt.Errorf("%w: %w", ErrInvalidCommand, err)
	}

	stderr := strings.ToLower(cmdErr.Stderr)
	switch {
	case strings.Contains(stderr, "already exists"):
		return fmt.Errorf("%w: %w", ErrAlreadyExists, err)
	case strings.Contains(stderr, "not found"),
		strings.Contains(stderr, "failed to find"):
		return fmt.Errorf("%w: %w", ErrNotFound, err)
	}
	return err
}
