package dcpomatic_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"reelkit/internal/dcp"
	"reelkit/internal/request"
	"reelkit/internal/runner"
	"reelkit/internal/services"
	"reelkit/internal/services/dcpomatic"
)

type stubExecutor struct {
	results  []runner.Result
	errs     []error
	calls    int
	binaries []string
	args     [][]string
}

func (s *stubExecutor) Run(ctx context.Context, binary string, args []string) (runner.Result, error) {
	idx := s.calls
	s.calls++
	s.binaries = append(s.binaries, binary)
	s.args = append(s.args, append([]string(nil), args...))
	var res runner.Result
	if idx < len(s.results) {
		res = s.results[idx]
	}
	var err error
	if idx < len(s.errs) {
		err = s.errs[idx]
	}
	return res, err
}

func writeFile(t *testing.T, dir, name string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte("fixture"), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	return path
}

func kdmRequest(t *testing.T) request.KDM {
	t.Helper()
	tmp := t.TempDir()
	return request.KDM{
		Source:      request.DCPSource(tmp),
		Certificate: writeFile(t, tmp, "screen.pem"),
		Output:      filepath.Join(tmp, "out.kdm.xml"),
		ValidFrom:   time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC),
		ValidTo:     time.Date(2026, 9, 8, 0, 0, 0, 0, time.UTC),
		Type:        dcp.ModifiedTransitional1,
	}
}

func TestGenerateReturnsDeclaredOutputPath(t *testing.T) {
	exec := &stubExecutor{results: []runner.Result{{}}}
	generator := dcpomatic.NewKDMGenerator(dcpomatic.WithExecutor(exec))

	req := kdmRequest(t)
	result, err := generator.Generate(context.Background(), req)
	if err != nil {
		t.Fatalf("Generate returned error: %v", err)
	}
	if result.OutputPath != req.Output {
		t.Fatalf("output path = %q, want %q", result.OutputPath, req.Output)
	}
	if exec.calls != 1 {
		t.Fatalf("expected one invocation, got %d", exec.calls)
	}
	if exec.binaries[0] != "dcpomatic2_kdm_cli" {
		t.Fatalf("unexpected binary %q", exec.binaries[0])
	}
}

func TestGenerateValidationFailureSkipsSubprocess(t *testing.T) {
	exec := &stubExecutor{}
	generator := dcpomatic.NewKDMGenerator(dcpomatic.WithExecutor(exec))

	req := kdmRequest(t)
	req.ValidFrom, req.ValidTo = req.ValidTo, req.ValidFrom
	_, err := generator.Generate(context.Background(), req)
	if !errors.Is(err, services.ErrValidation) {
		t.Fatalf("expected ErrValidation, got %v", err)
	}
	if exec.calls != 0 {
		t.Fatalf("validation failure must not spawn a subprocess, got %d calls", exec.calls)
	}
}

func TestGenerateClassifiesToolRejection(t *testing.T) {
	exec := &stubExecutor{results: []runner.Result{{ExitCode: 1, Stderr: "error: unrecognised option '-z'"}}}
	generator := dcpomatic.NewKDMGenerator(dcpomatic.WithExecutor(exec))

	_, err := generator.Generate(context.Background(), kdmRequest(t))
	if !errors.Is(err, services.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestGenerateUnrecognizedFailurePreservesStderr(t *testing.T) {
	exec := &stubExecutor{results: []runner.Result{{ExitCode: 2, Stderr: "glibc detected a heap smash"}}}
	generator := dcpomatic.NewKDMGenerator(dcpomatic.WithExecutor(exec))

	_, err := generator.Generate(context.Background(), kdmRequest(t))
	if !errors.Is(err, services.ErrUnknown) {
		t.Fatalf("expected ErrUnknown, got %v", err)
	}
	if !strings.Contains(err.Error(), "heap smash") {
		t.Fatalf("raw stderr missing from error: %v", err)
	}
	if !strings.Contains(err.Error(), "exit code 2") {
		t.Fatalf("exit code missing from error: %v", err)
	}
}

func TestGeneratePropagatesRunnerError(t *testing.T) {
	wrapped := services.Wrap(services.ErrExecutableNotFound, "dcpomatic2_kdm_cli", "", "install DCP-o-matic", nil)
	exec := &stubExecutor{errs: []error{wrapped}}
	generator := dcpomatic.NewKDMGenerator(dcpomatic.WithExecutor(exec))

	_, err := generator.Generate(context.Background(), kdmRequest(t))
	if !errors.Is(err, services.ErrExecutableNotFound) {
		t.Fatalf("expected ErrExecutableNotFound, got %v", err)
	}
}

func TestWithBinaryOverride(t *testing.T) {
	exec := &stubExecutor{results: []runner.Result{{}}}
	generator := dcpomatic.NewKDMGenerator(
		dcpomatic.WithExecutor(exec),
		dcpomatic.WithBinary("/opt/dcpomatic/bin/dcpomatic2_kdm_cli"),
	)

	if _, err := generator.Generate(context.Background(), kdmRequest(t)); err != nil {
		t.Fatalf("Generate returned error: %v", err)
	}
	if exec.binaries[0] != "/opt/dcpomatic/bin/dcpomatic2_kdm_cli" {
		t.Fatalf("binary override not applied: %q", exec.binaries[0])
	}
}

func TestGenerateCreatesOutputParent(t *testing.T) {
	exec := &stubExecutor{results: []runner.Result{{}}}
	generator := dcpomatic.NewKDMGenerator(dcpomatic.WithExecutor(exec))

	req := kdmRequest(t)
	req.Output = filepath.Join(t.TempDir(), "kdms", "september", "out.kdm.xml")
	if _, err := generator.Generate(context.Background(), req); err != nil {
		t.Fatalf("Generate returned error: %v", err)
	}
	info, err := os.Stat(filepath.Dir(req.Output))
	if err != nil || !info.IsDir() {
		t.Fatalf("output parent not prepared: %v", err)
	}
	if exec.calls != 1 {
		t.Fatalf("expected one invocation, got %d", exec.calls)
	}
}

func TestDCPCreateCreatesOutputDirectory(t *testing.T) {
	exec := &stubExecutor{results: []runner.Result{{}}}
	creator := dcpomatic.NewDCPCreator(dcpomatic.WithExecutor(exec))

	tmp := t.TempDir()
	req := request.DCPBuild{Project: tmp, Output: filepath.Join(tmp, "dcps", "feature")}
	if _, err := creator.Create(context.Background(), req); err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	info, err := os.Stat(req.Output)
	if err != nil || !info.IsDir() {
		t.Fatalf("output directory not prepared: %v", err)
	}
}

func TestCreateDKDM(t *testing.T) {
	exec := &stubExecutor{results: []runner.Result{{}}}
	generator := dcpomatic.NewKDMGenerator(dcpomatic.WithExecutor(exec))

	tmp := t.TempDir()
	req := request.DKDMCreate{
		Project:     tmp,
		Certificate: writeFile(t, tmp, "own.pem"),
		Output:      filepath.Join(tmp, "dkdms", "out.dkdm.xml"),
		ValidFrom:   time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC),
		ValidTo:     time.Date(2027, 9, 1, 0, 0, 0, 0, time.UTC),
	}
	result, err := generator.CreateDKDM(context.Background(), req)
	if err != nil {
		t.Fatalf("CreateDKDM returned error: %v", err)
	}
	if result.OutputPath != req.Output {
		t.Fatalf("output path = %q, want %q", result.OutputPath, req.Output)
	}
	args := exec.args[0]
	for i, arg := range args {
		if arg == "-F" && args[i+1] != "modified-transitional-1" {
			t.Fatalf("default type not applied: %v", args)
		}
	}
	if info, err := os.Stat(filepath.Dir(req.Output)); err != nil || !info.IsDir() {
		t.Fatalf("output parent not prepared: %v", err)
	}
}

func TestVersionTrimsOutput(t *testing.T) {
	exec := &stubExecutor{results: []runner.Result{{Stdout: "dcpomatic2_cli 2.18.1\n"}}}
	creator := dcpomatic.NewDCPCreator(dcpomatic.WithExecutor(exec))

	version, err := creator.Version(context.Background())
	if err != nil {
		t.Fatalf("Version returned error: %v", err)
	}
	if version != "dcpomatic2_cli 2.18.1" {
		t.Fatalf("version = %q", version)
	}
	if len(exec.args) != 1 || exec.args[0][0] != "--version" {
		t.Fatalf("unexpected version args: %v", exec.args)
	}
}

func projectRequest(t *testing.T) request.ProjectCreate {
	t.Helper()
	tmp := t.TempDir()
	return request.ProjectCreate{
		Content:        []string{writeFile(t, tmp, "feature.mp4")},
		Output:         filepath.Join(tmp, "project"),
		ContentType:    dcp.Feature,
		ContainerRatio: dcp.Flat,
		Standard:       dcp.SMPTE,
		Resolution:     dcp.TwoK,
	}
}

func TestCreateAndBuildRunsBothStages(t *testing.T) {
	projectExec := &stubExecutor{results: []runner.Result{{}}}
	dcpExec := &stubExecutor{results: []runner.Result{{}}}
	projects := dcpomatic.NewProjectCreator(dcpomatic.WithExecutor(projectExec))
	dcps := dcpomatic.NewDCPCreator(dcpomatic.WithExecutor(dcpExec))

	req := projectRequest(t)
	// The stub does not create the project directory the build stage
	// stats, so provide it up front.
	if err := os.MkdirAll(req.Output, 0o755); err != nil {
		t.Fatalf("prepare project dir: %v", err)
	}

	result, err := dcpomatic.CreateAndBuild(context.Background(), projects, dcps, req)
	if err != nil {
		t.Fatalf("CreateAndBuild returned error: %v", err)
	}
	if projectExec.calls != 1 || dcpExec.calls != 1 {
		t.Fatalf("expected one call per tool, got %d and %d", projectExec.calls, dcpExec.calls)
	}
	if result.Project.OutputPath != req.Output {
		t.Fatalf("project output = %q, want %q", result.Project.OutputPath, req.Output)
	}
	if result.DCP == nil {
		t.Fatal("expected DCP sub-result")
	}
	wantDCP := filepath.Join(req.Output, "dcp")
	if result.DCP.OutputPath != wantDCP {
		t.Fatalf("dcp output = %q, want %q", result.DCP.OutputPath, wantDCP)
	}
	// The create stage must not carry tool-side build flags; the facade
	// drives the build itself.
	for _, arg := range projectExec.args[0] {
		if arg == "--build" || arg == "--dcp-output" {
			t.Fatalf("create stage leaked build flags: %v", projectExec.args[0])
		}
	}
}

func TestCreateAndBuildSkipsBuildWhenCreationFails(t *testing.T) {
	projectExec := &stubExecutor{results: []runner.Result{{ExitCode: 1, Stderr: "could not open content file"}}}
	dcpExec := &stubExecutor{}
	projects := dcpomatic.NewProjectCreator(dcpomatic.WithExecutor(projectExec))
	dcps := dcpomatic.NewDCPCreator(dcpomatic.WithExecutor(dcpExec))

	result, err := dcpomatic.CreateAndBuild(context.Background(), projects, dcps, projectRequest(t))
	if !errors.Is(err, services.ErrExternalTool) {
		t.Fatalf("expected ErrExternalTool, got %v", err)
	}
	if dcpExec.calls != 0 {
		t.Fatalf("build tool must not run after creation failure, got %d calls", dcpExec.calls)
	}
	if result.Project.OutputPath != "" || result.DCP != nil {
		t.Fatalf("expected empty result after creation failure, got %+v", result)
	}
}

func TestCreateAndBuildReportsPartialSuccess(t *testing.T) {
	projectExec := &stubExecutor{results: []runner.Result{{}}}
	dcpExec := &stubExecutor{results: []runner.Result{{ExitCode: 1, Stderr: "could not load certificate"}}}
	projects := dcpomatic.NewProjectCreator(dcpomatic.WithExecutor(projectExec))
	dcps := dcpomatic.NewDCPCreator(dcpomatic.WithExecutor(dcpExec))

	req := projectRequest(t)
	if err := os.MkdirAll(req.Output, 0o755); err != nil {
		t.Fatalf("prepare project dir: %v", err)
	}

	result, err := dcpomatic.CreateAndBuild(context.Background(), projects, dcps, req)
	if !errors.Is(err, services.ErrExternalTool) {
		t.Fatalf("expected ErrExternalTool, got %v", err)
	}
	if result.Project.OutputPath != req.Output {
		t.Fatalf("partial success must keep the project result, got %+v", result)
	}
	if result.DCP != nil {
		t.Fatalf("failed build must leave DCP nil, got %+v", result.DCP)
	}
}

func TestCreateHonorsExplicitDCPOutput(t *testing.T) {
	projectExec := &stubExecutor{results: []runner.Result{{}}}
	projects := dcpomatic.NewProjectCreator(dcpomatic.WithExecutor(projectExec))

	req := projectRequest(t)
	req.Build = true
	req.DCPOutput = filepath.Join(req.Output, "custom-dcp")
	if _, err := projects.Create(context.Background(), req); err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	args := projectExec.args[0]
	found := false
	for i, arg := range args {
		if arg == "--dcp-output" {
			found = true
			if args[i+1] != req.DCPOutput {
				t.Fatalf("dcp output = %q, want %q", args[i+1], req.DCPOutput)
			}
		}
	}
	if !found {
		t.Fatalf("--dcp-output missing: %v", args)
	}
}
