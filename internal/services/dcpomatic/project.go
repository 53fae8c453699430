package dcpomatic

import (
	"context"
	"path/filepath"

	"reelkit/internal/command"
	"reelkit/internal/request"
)

// ProjectCreator wraps dcpomatic2_create.
type ProjectCreator struct {
	client
}

// NewProjectCreator constructs a creator using defaults.
func NewProjectCreator(opts ...Option) *ProjectCreator {
	return &ProjectCreator{client: newClient(command.ProjectBinary, "project", opts...)}
}

// Create builds a project from content files. When the request carries
// the Build flag the tool performs the DCP build itself via --build.
func (p *ProjectCreator) Create(ctx context.Context, req request.ProjectCreate) (Result, error) {
	req.Normalize()
	if err := req.Validate(); err != nil {
		return Result{}, err
	}
	return p.execute(ctx, "create-from-video", command.ProjectCreate(req), req.Output)
}

// Version reports the project creation tool version.
func (p *ProjectCreator) Version(ctx context.Context) (string, error) {
	return p.version(ctx)
}

// ProjectBuildResult pairs the two stages of a combined create-and-build
// run. DCP is nil when the build stage did not complete, which keeps
// "project created, build failed" distinct from "both failed".
type ProjectBuildResult struct {
	Project Result
	DCP     *Result
}

// CreateAndBuild runs project creation and, only when it succeeds,
// immediately builds a DCP from the resulting project. The build tool is
// never invoked when creation fails. The two binaries are driven
// separately so each stage's diagnostics stay attributable.
func CreateAndBuild(ctx context.Context, projects *ProjectCreator, dcps *DCPCreator, req request.ProjectCreate) (ProjectBuildResult, error) {
	req.Normalize()

	dcpOutput := req.DCPOutput
	if dcpOutput == "" && req.Output != "" {
		dcpOutput = filepath.Join(req.Output, "dcp")
	}

	createReq := req
	createReq.Build = false
	createReq.DCPOutput = ""

	projectResult, err := projects.Create(ctx, createReq)
	if err != nil {
		return ProjectBuildResult{}, err
	}

	buildReq := request.DCPBuild{
		Project: req.Output,
		Output:  dcpOutput,
		Encrypt: req.Encrypt,
	}
	dcpResult, err := dcps.Create(ctx, buildReq)
	if err != nil {
		return ProjectBuildResult{Project: projectResult}, err
	}
	return ProjectBuildResult{Project: projectResult, DCP: &dcpResult}, nil
}
