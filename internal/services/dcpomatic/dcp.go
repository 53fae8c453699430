package dcpomatic

import (
	"context"

	"reelkit/internal/command"
	"reelkit/internal/request"
)

// DCPCreator wraps dcpomatic2_cli.
type DCPCreator struct {
	client
}

// NewDCPCreator constructs a creator using defaults.
func NewDCPCreator(opts ...Option) *DCPCreator {
	return &DCPCreator{client: newClient(command.DCPBinary, "dcp", opts...)}
}

// Create builds a DCP from an existing project.
func (c *DCPCreator) Create(ctx context.Context, req request.DCPBuild) (Result, error) {
	req.Normalize()
	if err := req.Validate(); err != nil {
		return Result{}, err
	}
	if err := ensureDir("create", req.Output); err != nil {
		return Result{}, err
	}
	return c.execute(ctx, "create", command.DCPBuild(req), req.Output)
}

// Version reports the DCP tool version.
func (c *DCPCreator) Version(ctx context.Context) (string, error) {
	return c.version(ctx)
}
