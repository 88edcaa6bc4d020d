package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"cleave/internal/deps"
	"cleave/internal/preflight"
)

func newDepsCommand(cmdCtx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "deps",
		Short: "Check external tools and run environment",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := cmdCtx.ensureConfig()
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()

			toolRows := make([][]string, 0, 2)
			allAvailable := true
			for _, status := range deps.CheckBinaries(deps.Required(cfg.FFmpeg.Binary)) {
				state := "ok"
				if !status.Available {
					state = "missing"
					if !status.Optional {
						allAvailable = false
					}
				}
				toolRows = append(toolRows, []string{status.Name, status.Command, state, status.Detail})
			}
			fmt.Fprintln(out, renderTable(
				[]string{"Tool", "Command", "Status", "Detail"},
				toolRows,
				[]columnAlignment{alignLeft, alignLeft, alignLeft, alignLeft},
			))

			checkRows := make([][]string, 0, 4)
			allPassed := true
			for _, result := range preflight.RunAll(cfg) {
				state := "pass"
				if !result.Passed {
					state = "fail"
					allPassed = false
				}
				checkRows = append(checkRows, []string{result.Name, state, result.Detail})
			}
			fmt.Fprintln(out, renderTable(
				[]string{"Check", "Status", "Detail"},
				checkRows,
				[]columnAlignment{alignLeft, alignLeft, alignLeft},
			))

			if !allAvailable || !allPassed {
				return fmt.Errorf("environment is not ready; fix the failures above")
			}
			fmt.Fprintln(out, "Environment ready")
			return nil
		},
	}
}
