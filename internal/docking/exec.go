package docking

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
	"time"

	"go.uber.org/zap"

	"plasmodocking/pkg/logger"
)

// Executor runs an external tool in dir and returns its standard output.
type Executor interface {
	Run(ctx context.Context, dir, binary string, args ...string) (string, error)
}

// ToolError reports a tool that exited unsuccessfully.
type ToolError struct {
	Tool     string
	ExitCode int
	Stderr   string
}

func (e *ToolError) Error() string {
	return fmt.Sprintf("%s failed (rc=%d)", e.Tool, e.ExitCode)
}

const outputPreview = 500

func preview(s string) string {
	s = strings.TrimSpace(s)
	if len(s) > outputPreview {
		return s[:outputPreview]
	}

	return s
}

type commandExecutor struct{}

// CommandExecutor runs tools with os/exec.
func CommandExecutor() Executor { return commandExecutor{} }

func (commandExecutor) Run(ctx context.Context, dir, binary string, args ...string) (string, error) {
	cmd := exec.CommandContext(ctx, binary, args...) //nolint: gosec
	cmd.Dir = dir

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	start := time.Now()
	logger.Info(ctx, "running tool",
		zap.String("binary", binary),
		zap.Strings("args", args),
		zap.String("cwd", dir),
	)

	err := cmd.Run()
	elapsed := time.Since(start)
	if err == nil {
		logger.Debug(ctx, "tool finished",
			zap.String("binary", binary),
			zap.Duration("elapsed", elapsed),
			zap.String("stdout", preview(stdout.String())),
			zap.String("stderr", preview(stderr.String())),
		)

		return stdout.String(), nil
	}

	if ctxErr := ctx.Err(); ctxErr != nil {
		logger.Error(ctx, "tool timed out", zap.String("binary", binary), zap.Duration("elapsed", elapsed))

		return stdout.String(), fmt.Errorf("%s: %w", binary, ctxErr)
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		logger.Error(ctx, "tool failed",
			zap.String("binary", binary),
			zap.Int("rc", exitErr.ExitCode()),
			zap.String("stderr", preview(stderr.String())),
		)

		return stdout.String(), &ToolError{Tool: binary, ExitCode: exitErr.ExitCode(), Stderr: preview(stderr.String())}
	}

	return stdout.String(), fmt.Errorf("could not run %s: %w", binary, err)
}

// runWithTimeout bounds a single tool invocation.
func runWithTimeout(ctx context.Context,
	e Executor,
	timeout time.Duration,
	dir, binary string,
	args ...string,
) (string, error) {
	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	out, err := e.Run(ctx, dir, binary, args...)
	if err != nil && errors.Is(err, context.DeadlineExceeded) {
		return out, fmt.Errorf("%s timeout after %s: %w", binary, timeout, err)
	}

	return out, err
}
