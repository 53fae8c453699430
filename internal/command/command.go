package command

import (
	"reelkit/internal/dcp"
	"reelkit/internal/request"
)

// Default executable names, resolved through the environment's PATH.
// Config can substitute alternate paths without changing the grammar.
const (
	KDMBinary     = "dcpomatic2_kdm_cli"
	DCPBinary     = "dcpomatic2_cli"
	ProjectBinary = "dcpomatic2_create"
)

// dateFormat is the validity-window serialization the KDM tool expects.
// Time-of-day components are deliberately dropped.
const dateFormat = "2006-01-02"

// Command is the unit handed to the subprocess boundary.
type Command struct {
	Binary string
	Args   []string
}

// KDMGenerate builds the vector for KDM generation from either source
// variant. The source path is the single trailing positional.
func KDMGenerate(req request.KDM) Command {
	args := []string{
		"-o", req.Output,
		"-K", req.Type.Token(),
		"-c", req.Certificate,
		"-f", req.ValidFrom.Format(dateFormat),
		"-t", req.ValidTo.Format(dateFormat),
	}
	if req.CinemaName != "" {
		args = append(args, "--cinema-name", req.CinemaName)
	}
	if req.ScreenName != "" {
		args = append(args, "--screen-name", req.ScreenName)
	}
	args = append(args, req.Source.Path())
	return Command{Binary: KDMBinary, Args: args}
}

// DKDMCreate builds the vector for issuing a DKDM against the holder's
// own certificate. The tool distinguishes this mode with -F/-C.
func DKDMCreate(req request.DKDMCreate) Command {
	args := []string{
		"-o", req.Output,
		"-F", req.Type.Token(),
		"-C", req.Certificate,
		"-f", req.ValidFrom.Format(dateFormat),
		"-t", req.ValidTo.Format(dateFormat),
		req.Project,
	}
	return Command{Binary: KDMBinary, Args: args}
}

// DCPBuild builds the vector for creating a DCP from an existing project.
func DCPBuild(req request.DCPBuild) Command {
	args := []string{"-o", req.Output}
	if req.Encrypt {
		args = append(args, "-e")
	}
	args = append(args, req.Project)
	return Command{Binary: DCPBinary, Args: args}
}

// ProjectCreate builds the vector for creating a project from content
// files. Content paths keep caller order as trailing positionals.
func ProjectCreate(req request.ProjectCreate) Command {
	args := []string{
		"-o", req.Output,
		"-n", req.Name,
		"--content-type", req.ContentType.Token(),
		"--container-ratio", req.ContainerRatio.Token(),
		"--standard", req.Standard.Token(),
	}
	if req.Resolution == dcp.FourK {
		args = append(args, "--fourk")
	}
	if req.Encrypt {
		args = append(args, "-e")
	}
	if req.Build {
		args = append(args, "--build")
		if req.DCPOutput != "" {
			args = append(args, "--dcp-output", req.DCPOutput)
		}
	}
	args = append(args, req.Content...)
	return Command{Binary: ProjectBinary, Args: args}
}

// Version builds the no-argument version probe for any of the tools.
func Version(binary string) Command {
	return Command{Binary: binary, Args: []string{"--version"}}
}
