package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"reelkit/internal/deps"
)

func newDepsCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "deps",
		Short: "Check that the DCP-o-matic tools are available",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}

			statuses := deps.Check(deps.Toolset(
				cfg.Tools.KDMBinary,
				cfg.Tools.DCPBinary,
				cfg.Tools.CreateBinary,
			))

			rows := make([][]string, 0, len(statuses))
			missing := 0
			for _, status := range statuses {
				state := "ok"
				if !status.Available {
					state = "missing"
					missing++
				}
				rows = append(rows, []string{status.Name, status.Command, state, status.Detail})
			}

			fmt.Fprintln(cmd.OutOrStdout(), renderTable(
				[]string{"Tool", "Command", "Status", "Detail"},
				rows,
			))

			if missing > 0 {
				return errors.New("one or more DCP-o-matic tools are unavailable")
			}
			return nil
		},
	}
}
