package commands

import (
	"fmt"

	"github.com/piwi3910/CratePack/internal/project"
	"github.com/piwi3910/CratePack/internal/ui"
	"github.com/spf13/cobra"
)

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Manage bin and item presets",
}

var catalogListCmd = &cobra.Command{
	Use:   "list",
	Short: "List presets",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		c, _, err := project.LoadOrCreateCatalog()
		if err != nil {
			return err
		}
		fmt.Fprint(cmd.OutOrStdout(), ui.RenderCatalog(c))
		return nil
	},
}

var catalogExportCmd = &cobra.Command{
	Use:   "export <file.json>",
	Short: "Write the catalog to a file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, _, err := project.LoadOrCreateCatalog()
		if err != nil {
			return err
		}
		if err := project.ExportCatalog(args[0], c); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Exported %d bin and %d item presets to %s\n", len(c.Bins), len(c.Items), args[0])
		return nil
	},
}

var catalogImportCmd = &cobra.Command{
	Use:   "import <file.json>",
	Short: "Merge presets from a file into the catalog",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, path, err := project.LoadOrCreateCatalog()
		if err != nil {
			return err
		}
		merged, added, err := project.ImportCatalog(args[0], c)
		if err != nil {
			return err
		}
		if err := project.SaveCatalog(path, merged); err != nil {
			return err
		}
		logger.Info("catalog merged", "from", args[0], "added", added)
		fmt.Fprintf(cmd.OutOrStdout(), "Added %d presets\n", added)
		return nil
	},
}

func init() {
	catalogCmd.AddCommand(catalogListCmd, catalogExportCmd, catalogImportCmd)
}
