package commands

import (
	"fmt"

	"github.com/piwi3910/CratePack/internal/engine"
	"github.com/piwi3910/CratePack/internal/project"
	"github.com/piwi3910/CratePack/internal/ui"
	"github.com/spf13/cobra"
)

var compareCmd = &cobra.Command{
	Use:   "compare <project>",
	Short: "Compare rotation policies on the same job",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		proj, err := project.LoadProject(args[0])
		if err != nil {
			return err
		}

		scenarios := engine.BuildDefaultScenarios(proj.Settings)
		results := engine.CompareScenarios(scenarios, proj.Items, proj.Bins)
		for _, r := range results {
			logger.Debug("scenario packed", "scenario", r.Scenario.Name, "bins", r.BinsUsed, "unfit", r.UnfitCount, "error", r.Err)
		}

		out := cmd.OutOrStdout()
		fmt.Fprintln(out, ui.Title(fmt.Sprintf("Scenarios for %s", proj.Name)))
		fmt.Fprint(out, ui.RenderComparison(results))
		return nil
	},
}
