package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"reelkit/internal/dcp"
	"reelkit/internal/request"
	"reelkit/internal/services/dcpomatic"
)

func newDCPCommand(ctx *commandContext) *cobra.Command {
	dcpCmd := &cobra.Command{
		Use:   "dcp",
		Short: "DCP and project creation",
	}

	dcpCmd.AddCommand(newDCPCreateCommand(ctx))
	dcpCmd.AddCommand(newDCPCreateFromVideoCommand(ctx))
	dcpCmd.AddCommand(newDCPVersionCommand(ctx))
	dcpCmd.AddCommand(newDCPProjectVersionCommand(ctx))

	return dcpCmd
}

func newDCPCreateCommand(ctx *commandContext) *cobra.Command {
	var output string
	var encrypt bool

	cmd := &cobra.Command{
		Use:   "create <project>",
		Short: "Build a DCP from an existing project",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			req := request.DCPBuild{
				Project: args[0],
				Output:  output,
				Encrypt: encrypt,
			}

			creator, err := ctx.dcpCreator()
			if err != nil {
				return err
			}
			result, err := creator.Create(cmd.Context(), req)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "DCP created at %s\n", result.OutputPath)
			return nil
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "", "Output directory for the DCP")
	cmd.Flags().BoolVarP(&encrypt, "encrypt", "e", false, "Encrypt the DCP")
	_ = cmd.MarkFlagRequired("output")
	return cmd
}

func newDCPCreateFromVideoCommand(ctx *commandContext) *cobra.Command {
	var output string
	var name string
	var contentType string
	var containerRatio string
	var standard string
	var resolution string
	var encrypt bool
	var build bool
	var dcpOutput string

	cmd := &cobra.Command{
		Use:   "create-from-video <content>...",
		Short: "Create a project from video files, optionally building the DCP",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			parsedContentType, err := dcp.ParseContentType(contentType)
			if err != nil {
				return err
			}
			parsedRatio, err := dcp.ParseContainerRatio(containerRatio)
			if err != nil {
				return err
			}
			parsedStandard, err := dcp.ParseStandard(standard)
			if err != nil {
				return err
			}
			parsedResolution, err := dcp.ParseResolution(resolution)
			if err != nil {
				return err
			}

			req := request.ProjectCreate{
				Content:        args,
				Output:         output,
				Name:           name,
				ContentType:    parsedContentType,
				ContainerRatio: parsedRatio,
				Standard:       parsedStandard,
				Resolution:     parsedResolution,
				Encrypt:        encrypt,
				Build:          build,
				DCPOutput:      dcpOutput,
			}

			projects, err := ctx.projectCreator()
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if !build {
				result, err := projects.Create(cmd.Context(), req)
				if err != nil {
					return err
				}
				fmt.Fprintf(out, "Project created at %s\n", result.OutputPath)
				return nil
			}

			dcps, err := ctx.dcpCreator()
			if err != nil {
				return err
			}
			result, err := dcpomatic.CreateAndBuild(cmd.Context(), projects, dcps, req)
			if result.Project.OutputPath != "" {
				fmt.Fprintf(out, "Project created at %s\n", result.Project.OutputPath)
			}
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "DCP created at %s\n", result.DCP.OutputPath)
			return nil
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "", "Output directory for the project")
	cmd.Flags().StringVarP(&name, "name", "n", "", "Project name (defaults to the first content filename)")
	cmd.Flags().StringVar(&contentType, "content-type", string(dcp.Feature), "DCP content type")
	cmd.Flags().StringVar(&containerRatio, "container-ratio", string(dcp.Flat), "Container ratio")
	cmd.Flags().StringVar(&standard, "standard", string(dcp.SMPTE), "DCP standard (smpte or interop)")
	cmd.Flags().StringVar(&resolution, "resolution", string(dcp.TwoK), "Resolution (2k or 4k)")
	cmd.Flags().BoolVarP(&encrypt, "encrypt", "e", false, "Encrypt the DCP")
	cmd.Flags().BoolVar(&build, "build", false, "Build the DCP immediately after creating the project")
	cmd.Flags().StringVar(&dcpOutput, "dcp-output", "", "Output directory for the built DCP (with --build)")
	_ = cmd.MarkFlagRequired("output")
	return cmd
}

func newDCPVersionCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show the DCP tool version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			creator, err := ctx.dcpCreator()
			if err != nil {
				return err
			}
			version, err := creator.Version(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), version)
			return nil
		},
	}
}

func newDCPProjectVersionCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "project-version",
		Short: "Show the project creation tool version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			projects, err := ctx.projectCreator()
			if err != nil {
				return err
			}
			version, err := projects.Version(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), version)
			return nil
		},
	}
}
