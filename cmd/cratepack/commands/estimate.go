package commands

import (
	"fmt"

	"github.com/piwi3910/CratePack/internal/model"
	"github.com/piwi3910/CratePack/internal/project"
	"github.com/piwi3910/CratePack/internal/ui"
	"github.com/spf13/cobra"
)

var estimateWaste float64

var estimateCmd = &cobra.Command{
	Use:   "estimate <project>",
	Short: "Volume lower bound on bins needed, per bin kind",
	Long: `Estimate how many bins of each kind the items would need if they were
poured in like liquid. Geometry is ignored, so a real packing can need more.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if estimateWaste < 0 || estimateWaste >= 100 {
			return fmt.Errorf("waste must be in [0, 100), got %g", estimateWaste)
		}
		proj, err := project.LoadProject(args[0])
		if err != nil {
			return err
		}
		if len(proj.Bins) == 0 {
			return fmt.Errorf("project %s has no bins", proj.Name)
		}

		estimates := make([]model.BinEstimate, len(proj.Bins))
		for i, b := range proj.Bins {
			estimates[i] = model.EstimateBins(proj.Items, b, estimateWaste)
		}

		out := cmd.OutOrStdout()
		fmt.Fprintln(out, ui.Title(fmt.Sprintf("Estimate for %s (%g%% waste)", proj.Name, estimateWaste)))
		fmt.Fprint(out, ui.RenderEstimates(proj.Bins, estimates))
		return nil
	},
}

func init() {
	estimateCmd.Flags().Float64Var(&estimateWaste, "waste", 10, "Expected waste percentage")
}
