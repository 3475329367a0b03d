package lvm

import (
	"context"
	"errors"
	"fmt"
)

// Formatter creates a filesystem on a block device.
type Formatter interface {
	Format(ctx context.Context, device string) error
}

// XFSFormatter formats devices with mkfs.xfs.
type XFSFormatter struct {
	runner Runner
}

// NewXFSFormatter returns a formatter running mkfs.xfs through runner. A nil
// runner executes the real binary.
func NewXFSFormatter(runner Runner) *XFSFormatter {
	if runner == nil {
		runner = ExecRunner{}
	}
	return &XFSFormatter{runner: runner}
}

// Format overwrites any existing filesystem signature on device.
func (f *XFSFormatter) Format(ctx context.Context, device string) error {
	out, err := f.runner.Run(ctx, "mkfs.xfs", "-f", device)
	if err != nil {
		var cmdErr *CommandError
		if errors.As(err, &cmdErr) {
			return fmt.Errorf("failed to format %s (exit status %d): stdout: %s, stderr: %s",
				device, cmdErr.ExitCode, string(out), cmdErr.Stderr)
		}
		return fmt.Errorf("failed to format %s: %w", device, err)
	}
	return nil
}
