package dcpomatic

import (
	"context"
	"path/filepath"

	"reelkit/internal/command"
	"reelkit/internal/request"
)

// KDMGenerator wraps dcpomatic2_kdm_cli.
type KDMGenerator struct {
	client
}

// NewKDMGenerator constructs a generator using defaults.
func NewKDMGenerator(opts ...Option) *KDMGenerator {
	return &KDMGenerator{client: newClient(command.KDMBinary, "kdm", opts...)}
}

// Generate issues a KDM from either source variant of the request.
func (g *KDMGenerator) Generate(ctx context.Context, req request.KDM) (Result, error) {
	req.Normalize()
	if err := req.Validate(); err != nil {
		return Result{}, err
	}
	operation := "generate"
	if req.Source.IsDKDM() {
		operation = "generate-dkdm"
	}
	if err := ensureDir(operation, filepath.Dir(req.Output)); err != nil {
		return Result{}, err
	}
	return g.execute(ctx, operation, command.KDMGenerate(req), req.Output)
}

// CreateDKDM issues a DKDM from a project against the holder's own
// certificate.
func (g *KDMGenerator) CreateDKDM(ctx context.Context, req request.DKDMCreate) (Result, error) {
	req.Normalize()
	if err := req.Validate(); err != nil {
		return Result{}, err
	}
	if err := ensureDir("create-dkdm", filepath.Dir(req.Output)); err != nil {
		return Result{}, err
	}
	return g.execute(ctx, "create-dkdm", command.DKDMCreate(req), req.Output)
}

// Version reports the KDM tool version.
func (g *KDMGenerator) Version(ctx context.Context) (string, error) {
	return g.version(ctx)
}
