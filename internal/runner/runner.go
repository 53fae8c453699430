package runner

import (
	"bytes"
	"context"
	"errors"
	"os/exec"
	"time"

	"github.com/gofrs/flock"

	"reelkit/internal/services"
)

// Result captures everything the interpreters need from a finished run.
type Result struct {
	ExitCode int
	Stdout   string
	Stderr   string
}

// Executor abstracts command execution for testability.
type Executor interface {
	Run(ctx context.Context, binary string, args []string) (Result, error)
}

// Option configures the command runner.
type Option func(*CommandRunner)

// WithTimeout bounds each invocation. Zero disables the ceiling.
func WithTimeout(timeout time.Duration) Option {
	return func(r *CommandRunner) {
		r.timeout = timeout
	}
}

// WithLock serializes invocations through an advisory file lock.
func WithLock(path string) Option {
	return func(r *CommandRunner) {
		if path != "" {
			r.lockPath = path
		}
	}
}

// CommandRunner executes argument vectors with exec.CommandContext.
type CommandRunner struct {
	timeout  time.Duration
	lockPath string
}

// New constructs a CommandRunner with the provided options.
func New(opts ...Option) *CommandRunner {
	r := &CommandRunner{}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

const lockRetryDelay = 250 * time.Millisecond

// Run resolves and executes the binary, returning captured output and the
// exit code. Resolution failures and timeouts carry their sentinel
// markers, caller cancellation propagates as context.Canceled, and a
// non-zero exit is returned as a Result for classification.
func (r *CommandRunner) Run(ctx context.Context, binary string, args []string) (Result, error) {
	resolved, err := exec.LookPath(binary)
	if err != nil {
		return Result{}, services.Wrap(services.ErrExecutableNotFound, binary, "", "install DCP-o-matic or set an override under [tools]", err)
	}

	if r.lockPath != "" {
		lock := flock.New(r.lockPath)
		locked, err := lock.TryLockContext(ctx, lockRetryDelay)
		if err != nil {
			return Result{}, services.Wrap(nil, binary, "", "acquire tool lock", err)
		}
		if !locked {
			return Result{}, services.Wrap(nil, binary, "", "tool lock unavailable", nil)
		}
		defer func() {
			_ = lock.Unlock()
		}()
	}

	runCtx := ctx
	if r.timeout > 0 {
		var cancel context.CancelFunc
		runCtx, cancel = context.WithTimeout(ctx, r.timeout)
		defer cancel()
	}

	cmd := exec.CommandContext(runCtx, resolved, args...) //nolint:gosec
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	runErr := cmd.Run()
	result := Result{
		Stdout: stdout.String(),
		Stderr: stderr.String(),
	}

	if errors.Is(runCtx.Err(), context.DeadlineExceeded) {
		return Result{}, services.Wrap(services.ErrTimeout, binary, "", "exceeded "+r.timeout.String(), runCtx.Err())
	}
	if errors.Is(ctx.Err(), context.Canceled) {
		return Result{}, services.Wrap(ctx.Err(), binary, "", "run interrupted", nil)
	}
	if runErr != nil {
		var exitErr *exec.ExitError
		if errors.As(runErr, &exitErr) {
			result.ExitCode = exitErr.ExitCode()
			return result, nil
		}
		return Result{}, services.Wrap(nil, binary, "", "start command", runErr)
	}
	return result, nil
}

var _ Executor = (*CommandRunner)(nil)
