package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"subfetch/internal/deps"
	"subfetch/internal/services"
)

func newDepsCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "deps",
		Short: "Check external tool availability",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}

			statuses := deps.CheckBinaries(deps.Requirements(cfg.Download.Tool))
			out := cmd.OutOrStdout()
			colorize := shouldColorize(out)

			missingRequired := false
			for _, status := range statuses {
				kind := statusOK
				message := status.Command
				if !status.Available {
					message = status.Detail
					if status.Optional {
						kind = statusWarn
					} else {
						kind = statusError
						missingRequired = true
					}
				}
				fmt.Fprintln(out, renderStatusLine(status.Name, kind, message, colorize))
				if status.Description != "" {
					fmt.Fprintf(out, "%s%s\n", statusIndent+statusIndent, status.Description)
				}
			}

			if missingRequired {
				return services.Wrap(services.ErrMissingTool, "deps", "check", "required tools are missing", nil)
			}
			fmt.Fprintln(out, "All required tools are available")
			return nil
		},
	}
}
