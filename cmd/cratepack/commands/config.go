package commands

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/piwi3910/CratePack/internal/model"
	"github.com/piwi3910/CratePack/internal/project"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var configInitForce bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show, create, back up and restore settings",
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective configuration",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := appConfig
		cfg.LogLevel = viper.GetString("log-level")
		cfg.LogFormat = viper.GetString("log-format")
		cfg.OutputDir = viper.GetString("output-dir")
		cfg.DefaultVerify = viper.GetBool("verify")

		data, err := json.MarshalIndent(cfg, "", "  ")
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "# %s\n%s\n", configPath(), data)
		return nil
	},
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a default config file",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		path := configPath()
		if _, err := os.Stat(path); err == nil && !configInitForce {
			return fmt.Errorf("%s already exists (use --force to overwrite)", path)
		}
		if err := project.SaveAppConfig(path, model.DefaultAppConfig()); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", path)
		return nil
	},
}

var configExportCmd = &cobra.Command{
	Use:   "export <backup.json>",
	Short: "Back up config, catalog and templates to one file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		catalog, _, err := project.LoadOrCreateCatalog()
		if err != nil {
			return err
		}
		templates, err := project.LoadDefaultTemplates()
		if err != nil {
			return err
		}
		if err := project.ExportAllData(args[0], appConfig, catalog, templates); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Backed up to %s\n", args[0])
		return nil
	},
}

var configImportCmd = &cobra.Command{
	Use:   "import <backup.json>",
	Short: "Restore config, catalog and templates from a backup",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		backup, err := project.ImportAllData(args[0])
		if err != nil {
			return err
		}
		if err := project.SaveAppConfig(configPath(), backup.Config); err != nil {
			return err
		}
		if err := project.SaveCatalog(project.DefaultCatalogPath(), backup.Catalog); err != nil {
			return err
		}
		if err := project.SaveDefaultTemplates(backup.Templates); err != nil {
			return err
		}
		appConfig = backup.Config
		logger.Info("backup restored", "from", args[0], "version", backup.Version, "created", backup.CreatedAt)
		fmt.Fprintf(cmd.OutOrStdout(), "Restored backup from %s\n", backup.CreatedAt)
		return nil
	},
}

func init() {
	configInitCmd.Flags().BoolVar(&configInitForce, "force", false, "Overwrite an existing config file")
	configCmd.AddCommand(configShowCmd, configInitCmd, configExportCmd, configImportCmd)
}
