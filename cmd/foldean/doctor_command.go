package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"foldean/internal/preflight"
	"foldean/internal/services"
)

func newDoctorCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "doctor",
		Short: "Check that the target and lock directories are usable",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			results := preflight.RunAll(cfg)

			if cfg.Output.JSON {
				if err := writeJSON(cmd, results); err != nil {
					return err
				}
			} else {
				out := cmd.OutOrStdout()
				colorize := shouldColorize(out)
				for _, line := range renderSectionHeader("Preflight", colorize) {
					fmt.Fprintln(out, line)
				}
				for _, r := range results {
					fmt.Fprintln(out, renderStatusLine(r.Name, checkStatus(r), r.Detail, colorize))
				}
				fmt.Fprintln(out, renderStatusLine("Apply", statusInfo, yesNo(cfg.Apply), colorize))
			}

			if failed := preflight.Failed(results); len(failed) > 0 {
				return services.Wrap(services.ErrTargetUnavailable, "preflight", "doctor",
					fmt.Sprintf("%d check(s) failed", len(failed)), nil)
			}
			return nil
		},
	}
}
