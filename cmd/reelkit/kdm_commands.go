package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"reelkit/internal/dcp"
	"reelkit/internal/request"
)

func newKDMCommand(ctx *commandContext) *cobra.Command {
	kdmCmd := &cobra.Command{
		Use:   "kdm",
		Short: "KDM and DKDM generation",
	}

	kdmCmd.AddCommand(newKDMGenerateCommand(ctx))
	kdmCmd.AddCommand(newKDMGenerateDKDMCommand(ctx))
	kdmCmd.AddCommand(newKDMCreateDKDMCommand(ctx))
	kdmCmd.AddCommand(newKDMVersionCommand(ctx))

	return kdmCmd
}

type kdmFlags struct {
	certificate string
	output      string
	validFrom   string
	validTo     string
	kdmType     string
}

func (f *kdmFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.certificate, "certificate", "c", "", "Path to the target certificate (.pem)")
	cmd.Flags().StringVarP(&f.output, "output", "o", "", "Output path for the KDM file")
	cmd.Flags().StringVarP(&f.validFrom, "valid-from", "f", "", "Start of validity period (YYYY-MM-DD or YYYY-MM-DD HH:MM)")
	cmd.Flags().StringVarP(&f.validTo, "valid-to", "t", "", "End of validity period (YYYY-MM-DD or YYYY-MM-DD HH:MM)")
	cmd.Flags().StringVarP(&f.kdmType, "kdm-type", "K", string(dcp.ModifiedTransitional1), "KDM output format type")
	_ = cmd.MarkFlagRequired("certificate")
	_ = cmd.MarkFlagRequired("output")
	_ = cmd.MarkFlagRequired("valid-from")
	_ = cmd.MarkFlagRequired("valid-to")
}

func (f *kdmFlags) kdmRequest(source request.KDMSource) (request.KDM, error) {
	validFrom, err := parseValidity("valid-from", f.validFrom)
	if err != nil {
		return request.KDM{}, err
	}
	validTo, err := parseValidity("valid-to", f.validTo)
	if err != nil {
		return request.KDM{}, err
	}
	kdmType, err := dcp.ParseKDMType(f.kdmType)
	if err != nil {
		return request.KDM{}, err
	}
	return request.KDM{
		Source:      source,
		Certificate: f.certificate,
		Output:      f.output,
		ValidFrom:   validFrom,
		ValidTo:     validTo,
		Type:        kdmType,
	}, nil
}

func newKDMGenerateCommand(ctx *commandContext) *cobra.Command {
	var flags kdmFlags
	var cinemaName string
	var screenName string

	cmd := &cobra.Command{
		Use:   "generate <dcp>",
		Short: "Generate a KDM for an encrypted DCP",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			req, err := flags.kdmRequest(request.DCPSource(args[0]))
			if err != nil {
				return err
			}
			req.CinemaName = cinemaName
			req.ScreenName = screenName

			generator, err := ctx.kdmGenerator()
			if err != nil {
				return err
			}
			result, err := generator.Generate(cmd.Context(), req)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "KDM created at %s\n", result.OutputPath)
			return nil
		},
	}
	flags.register(cmd)
	cmd.Flags().StringVar(&cinemaName, "cinema-name", "", "Cinema name recorded in the KDM")
	cmd.Flags().StringVar(&screenName, "screen-name", "", "Screen name recorded in the KDM")
	return cmd
}

func newKDMGenerateDKDMCommand(ctx *commandContext) *cobra.Command {
	var flags kdmFlags

	cmd := &cobra.Command{
		Use:   "generate-dkdm <dkdm>",
		Short: "Generate a KDM from a DKDM",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			req, err := flags.kdmRequest(request.DKDMSource(args[0]))
			if err != nil {
				return err
			}

			generator, err := ctx.kdmGenerator()
			if err != nil {
				return err
			}
			result, err := generator.Generate(cmd.Context(), req)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "KDM created at %s\n", result.OutputPath)
			return nil
		},
	}
	flags.register(cmd)
	return cmd
}

func newKDMCreateDKDMCommand(ctx *commandContext) *cobra.Command {
	var flags kdmFlags

	cmd := &cobra.Command{
		Use:   "create-dkdm <project>",
		Short: "Create a DKDM from a project using your own certificate",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			validFrom, err := parseValidity("valid-from", flags.validFrom)
			if err != nil {
				return err
			}
			validTo, err := parseValidity("valid-to", flags.validTo)
			if err != nil {
				return err
			}
			kdmType, err := dcp.ParseKDMType(flags.kdmType)
			if err != nil {
				return err
			}
			req := request.DKDMCreate{
				Project:     args[0],
				Certificate: flags.certificate,
				Output:      flags.output,
				ValidFrom:   validFrom,
				ValidTo:     validTo,
				Type:        kdmType,
			}

			generator, err := ctx.kdmGenerator()
			if err != nil {
				return err
			}
			result, err := generator.CreateDKDM(cmd.Context(), req)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "DKDM created at %s\n", result.OutputPath)
			return nil
		},
	}
	flags.register(cmd)
	return cmd
}

func newKDMVersionCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show the KDM tool version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			generator, err := ctx.kdmGenerator()
			if err != nil {
				return err
			}
			version, err := generator.Version(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), version)
			return nil
		},
	}
}
