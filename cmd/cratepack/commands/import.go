package commands

import (
	"fmt"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/piwi3910/CratePack/internal/importer"
	"github.com/piwi3910/CratePack/internal/model"
	"github.com/piwi3910/CratePack/internal/project"
	"github.com/piwi3910/CratePack/internal/ui"
	"github.com/spf13/cobra"
)

var importOpts struct {
	bins        []string
	catalogBins []string
	out         string
	name        string
}

var importCmd = &cobra.Command{
	Use:   "import <items.csv|items.xlsx>",
	Short: "Build a project from an item list",
	Long: `Build a project file from a CSV or Excel item list.

Bins are given inline with --bin NAME:WxHxD[:QTY] or taken from the preset
catalog with --catalog-bin NAME[:QTY].`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		src := args[0]
		res := importer.ImportFile(src)
		for _, w := range res.Warnings {
			fmt.Fprintln(cmd.ErrOrStderr(), ui.Warn("warning: "+w))
		}
		if len(res.Errors) > 0 {
			for _, e := range res.Errors {
				fmt.Fprintln(cmd.ErrOrStderr(), ui.Error(e))
			}
			return fmt.Errorf("import %s: %d error(s)", src, len(res.Errors))
		}

		bins, err := collectBins(importOpts.bins, importOpts.catalogBins)
		if err != nil {
			return err
		}
		if len(bins) == 0 {
			fmt.Fprintln(cmd.ErrOrStderr(), ui.Warn("warning: no bins given, every item will be unfit"))
		}

		proj := model.NewProject()
		proj.Name = importOpts.name
		if proj.Name == "" {
			proj.Name = strings.TrimSuffix(filepath.Base(src), filepath.Ext(src))
		}
		proj.Items = res.Items
		proj.Bins = bins
		appConfig.ApplyToSettings(&proj.Settings)

		out := importOpts.out
		if out == "" {
			out = strings.TrimSuffix(src, filepath.Ext(src)) + ".json"
		}
		if err := project.SaveProject(out, proj); err != nil {
			return err
		}
		logger.Info("project written", "path", out, "items", len(proj.Items), "bins", len(proj.Bins))
		fmt.Fprintf(cmd.OutOrStdout(), "Imported %d item kinds and %d bin kinds into %s\n", len(proj.Items), len(proj.Bins), out)
		return nil
	},
}

func init() {
	f := importCmd.Flags()
	f.StringArrayVar(&importOpts.bins, "bin", nil, "Bin as NAME:WxHxD[:QTY] (repeatable)")
	f.StringArrayVar(&importOpts.catalogBins, "catalog-bin", nil, "Catalog bin preset as NAME[:QTY] (repeatable)")
	f.StringVarP(&importOpts.out, "out", "o", "", "Project file to write (.json, .yaml or .yml)")
	f.StringVar(&importOpts.name, "name", "", "Project name (default: the input file name)")
}

// collectBins resolves inline and catalog bins, inline first.
func collectBins(inline, fromCatalog []string) ([]model.BinSpec, error) {
	var bins []model.BinSpec
	for _, s := range inline {
		b, err := importer.ParseBinSpec(s)
		if err != nil {
			return nil, err
		}
		bins = append(bins, b)
	}
	if len(fromCatalog) == 0 {
		return bins, nil
	}

	catalog, _, err := project.LoadOrCreateCatalog()
	if err != nil {
		return nil, fmt.Errorf("load catalog: %w", err)
	}
	for _, s := range fromCatalog {
		name, qty, err := splitQuantity(s)
		if err != nil {
			return nil, err
		}
		bp := catalog.FindBinByName(name)
		if bp == nil {
			return nil, fmt.Errorf("no bin preset named %q in the catalog", name)
		}
		bins = append(bins, bp.ToBinSpec(qty))
	}
	return bins, nil
}

// splitQuantity splits "NAME[:QTY]" on its last colon.
func splitQuantity(s string) (string, int, error) {
	i := strings.LastIndex(s, ":")
	if i < 0 {
		return strings.TrimSpace(s), 1, nil
	}
	qty, err := strconv.Atoi(strings.TrimSpace(s[i+1:]))
	if err != nil || qty < 1 {
		return "", 0, fmt.Errorf("catalog bin %q: invalid quantity %q", s, s[i+1:])
	}
	return strings.TrimSpace(s[:i]), qty, nil
}
