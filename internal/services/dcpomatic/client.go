package dcpomatic

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/google/uuid"

	"reelkit/internal/command"
	"reelkit/internal/logging"
	"reelkit/internal/runner"
	"reelkit/internal/services"
)

// Result reports a successful tool run. OutputPath is the path the
// request declared; the tools do not reliably echo it on stdout.
type Result struct {
	OutputPath string
	Stdout     string
	Stderr     string
}

// Option configures a tool client.
type Option func(*client)

// WithBinary overrides the default executable name.
func WithBinary(binary string) Option {
	return func(c *client) {
		if binary != "" {
			c.binary = binary
		}
	}
}

// WithExecutor injects a custom executor (primarily for tests).
func WithExecutor(exec runner.Executor) Option {
	return func(c *client) {
		if exec != nil {
			c.exec = exec
		}
	}
}

// WithLogger attaches a logger for invocation diagnostics.
func WithLogger(logger *slog.Logger) Option {
	return func(c *client) {
		if logger != nil {
			c.logger = logger
		}
	}
}

type client struct {
	binary string
	exec   runner.Executor
	logger *slog.Logger
}

func newClient(binary, component string, opts ...Option) client {
	c := client{
		binary: binary,
		exec:   runner.New(),
		logger: logging.NewNop(),
	}
	for _, opt := range opts {
		opt(&c)
	}
	c.logger = logging.NewComponentLogger(c.logger, component)
	return c
}

// execute runs a built command and interprets the outcome. Exit 0 yields
// a Result carrying the declared output path; non-zero exits classify by
// stderr and surface as tagged errors with the raw diagnostics attached.
func (c *client) execute(ctx context.Context, operation string, cmd command.Command, outputPath string) (Result, error) {
	cmd.Binary = c.binary

	logger := c.logger.With(
		logging.String("invocation_id", uuid.NewString()),
		logging.String("operation", operation),
		logging.String("binary", cmd.Binary),
	)
	logger.Debug("running tool", logging.Int("arg_count", len(cmd.Args)))

	res, err := c.exec.Run(ctx, cmd.Binary, cmd.Args)
	if err != nil {
		logger.Error("tool did not run", logging.Error(err))
		return Result{}, err
	}
	if res.ExitCode != 0 {
		marker := services.ClassifyExit(res.Stderr)
		err := services.Wrap(marker, cmd.Binary, operation,
			fmt.Sprintf("exit code %d: %s", res.ExitCode, strings.TrimSpace(res.Stderr)), nil)
		logger.Error("tool reported failure", logging.Int("exit_code", res.ExitCode), logging.Error(err))
		return Result{}, err
	}

	logger.Info("tool finished", logging.String("output", outputPath))
	return Result{OutputPath: outputPath, Stdout: res.Stdout, Stderr: res.Stderr}, nil
}

// ensureDir creates the directory a tool is about to write into. The
// tools fail with an opaque error when the output location is missing.
func ensureDir(operation, dir string) error {
	if dir == "" || dir == "." {
		return nil
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return services.Wrap(nil, "", operation, "create output directory "+dir, err)
	}
	return nil
}

// version runs the tool's version probe and returns the reported string.
func (c *client) version(ctx context.Context) (string, error) {
	res, err := c.execute(ctx, "version", command.Version(c.binary), "")
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(res.Stdout), nil
}
