package commands

import (
	"errors"
	"fmt"

	"github.com/piwi3910/CratePack/internal/engine"
	"github.com/piwi3910/CratePack/internal/export"
	"github.com/piwi3910/CratePack/internal/model"
	"github.com/piwi3910/CratePack/internal/project"
	"github.com/piwi3910/CratePack/internal/ui"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var packOpts struct {
	pdf    string
	labels string
	xlsx   string
	json   bool
}

var packCmd = &cobra.Command{
	Use:   "pack <project.json|project.yaml>",
	Short: "Pack a project and print the layout",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := args[0]
		proj, err := project.LoadProject(path)
		if err != nil {
			return err
		}

		settings := proj.Settings
		settings.Verify = settings.Verify || viper.GetBool("verify")

		logger.Info("packing", "project", proj.Name, "items", len(proj.Items), "bins", len(proj.Bins))
		result, err := engine.New(settings).WithLogger(logger).Optimize(proj.Items, proj.Bins)
		if errors.Is(err, engine.ErrVerification) {
			fmt.Fprint(cmd.ErrOrStderr(), ui.RenderViolations(engine.Verify(result, unitCount(proj.Items))))
			return err
		}
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		if packOpts.json {
			err = export.WriteJSON(out, result)
		} else {
			err = export.WriteSummary(out, result)
		}
		if err != nil {
			return err
		}

		if err := writeReports(cmd, result, settings); err != nil {
			return err
		}
		rememberProject(path)
		return nil
	},
}

func init() {
	f := packCmd.Flags()
	f.StringVar(&packOpts.pdf, "pdf", "", "Write a layout PDF to this path")
	f.StringVar(&packOpts.labels, "labels", "", "Write QR item labels (PDF) to this path")
	f.StringVar(&packOpts.xlsx, "xlsx", "", "Write an Excel report to this path")
	f.BoolVar(&packOpts.json, "json", false, "Print the result as JSON instead of a summary")
	f.Bool("verify", false, "Re-check containment, overlap and conservation after packing")
	_ = viper.BindPFlag("verify", f.Lookup("verify"))
}

func writeReports(cmd *cobra.Command, result model.PackResult, settings model.PackSettings) error {
	reports := []struct {
		path  string
		kind  string
		write func(string) error
	}{
		{packOpts.pdf, "layout PDF", func(p string) error { return export.ExportPDF(p, result, settings) }},
		{packOpts.labels, "labels", func(p string) error { return export.ExportLabels(p, result) }},
		{packOpts.xlsx, "Excel report", func(p string) error { return export.ExportExcel(p, result) }},
	}
	for _, r := range reports {
		if r.path == "" {
			continue
		}
		p := outputPath(r.path)
		if err := r.write(p); err != nil {
			return fmt.Errorf("write %s: %w", r.kind, err)
		}
		logger.Info("report written", "kind", r.kind, "path", p)
		fmt.Fprintln(cmd.ErrOrStderr(), ui.Muted(fmt.Sprintf("wrote %s to %s", r.kind, p)))
	}
	return nil
}

// unitCount is the number of item units a job expands to.
func unitCount(items []model.ItemSpec) int {
	n := 0
	for _, it := range items {
		if it.Quantity < 1 {
			n++
			continue
		}
		n += it.Quantity
	}
	return n
}
