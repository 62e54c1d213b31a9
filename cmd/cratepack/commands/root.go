package commands

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/piwi3910/CratePack/internal/model"
	"github.com/piwi3910/CratePack/internal/project"
	"github.com/piwi3910/CratePack/internal/ui"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Version is set at build time with -ldflags "-X .../commands.Version=...".
var Version = "dev"

var (
	cfgFile   string
	appConfig model.AppConfig
	logger    = slog.New(slog.NewTextHandler(io.Discard, nil))
)

var rootCmd = &cobra.Command{
	Use:   "cratepack",
	Short: "3D bin packing for boxes, cartons and crates",
	Long: `CratePack - deterministic 3D bin packing

Place rectangular items into rectangular bins, then print or export the layout.`,
	Version:       Version,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		l, err := newLogger(viper.GetString("log-level"), viper.GetString("log-format"), cmd.ErrOrStderr())
		if err != nil {
			return err
		}
		logger = l
		return nil
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, ui.Error("Error: "+err.Error()))
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&cfgFile, "config", "", "Config file (default ~/.cratepack/config.json)")
	flags.String("log-level", "warn", "Log level: debug, info, warn, error")
	flags.String("log-format", "text", "Log format: text or json")
	flags.String("output-dir", ".", "Directory for reports given as relative paths")

	for _, name := range []string{"log-level", "log-format", "output-dir"} {
		_ = viper.BindPFlag(name, flags.Lookup(name))
	}

	rootCmd.SetHelpFunc(func(cmd *cobra.Command, args []string) {
		renderHelp(cmd)
	})

	rootCmd.AddCommand(packCmd)
	rootCmd.AddCommand(importCmd)
	rootCmd.AddCommand(compareCmd)
	rootCmd.AddCommand(estimateCmd)
	rootCmd.AddCommand(catalogCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(templateCmd)
}

// initConfig loads the JSON app config and layers CRATEPACK_* environment
// variables and explicit flags over it.
func initConfig() {
	cfg, err := project.LoadAppConfig(configPath())
	if err != nil {
		fmt.Fprintln(os.Stderr, ui.Warn(fmt.Sprintf("ignoring config: %v", err)))
		cfg = model.DefaultAppConfig()
	}
	appConfig = cfg

	viper.SetEnvPrefix("CRATEPACK")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	viper.SetDefault("log-level", cfg.LogLevel)
	viper.SetDefault("log-format", cfg.LogFormat)
	viper.SetDefault("output-dir", cfg.OutputDir)
	viper.SetDefault("verify", cfg.DefaultVerify)
}

func configPath() string {
	if cfgFile != "" {
		return cfgFile
	}
	return project.DefaultConfigPath()
}

// newLogger builds the stderr logger from the --log-level and --log-format values.
func newLogger(level, format string, w io.Writer) (*slog.Logger, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(strings.TrimSpace(level))); err != nil {
		return nil, fmt.Errorf("invalid log level %q", level)
	}
	opts := &slog.HandlerOptions{Level: lvl}

	switch strings.ToLower(strings.TrimSpace(format)) {
	case "", "text":
		return slog.New(slog.NewTextHandler(w, opts)), nil
	case "json":
		return slog.New(slog.NewJSONHandler(w, opts)), nil
	default:
		return nil, fmt.Errorf("invalid log format %q: want text or json", format)
	}
}

// outputPath resolves a report path against --output-dir.
func outputPath(p string) string {
	if p == "" || filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(viper.GetString("output-dir"), p)
}

// rememberProject records path in the recent project list. Failures are
// logged, never fatal.
func rememberProject(path string) {
	if abs, err := filepath.Abs(path); err == nil {
		path = abs
	}
	appConfig.AddRecentProject(path)
	if err := project.SaveAppConfig(configPath(), appConfig); err != nil {
		logger.Warn("could not update recent projects", "error", err)
	}
}

func renderHelp(cmd *cobra.Command) {
	out := cmd.OutOrStdout()

	fmt.Fprintln(out, ui.Title(fmt.Sprintf("CRATEPACK %s", Version)))
	if cmd.Long != "" {
		fmt.Fprintln(out, cmd.Long)
	} else {
		fmt.Fprintln(out, cmd.Short)
	}
	fmt.Fprintln(out)

	fmt.Fprintln(out, ui.Title("USAGE"))
	fmt.Fprintf(out, "  %s\n\n", cmd.UseLine())

	if cmd.HasAvailableSubCommands() {
		fmt.Fprintln(out, ui.Title("COMMANDS"))
		for _, c := range cmd.Commands() {
			if c.IsAvailableCommand() {
				fmt.Fprintf(out, "  %-12s %s\n", c.Name(), c.Short)
			}
		}
		fmt.Fprintln(out)
	}

	fmt.Fprintln(out, ui.Title("FLAGS"))
	visit := func(f *pflag.Flag) {
		if f.Hidden {
			return
		}
		line := fmt.Sprintf("  --%-15s %s", f.Name, f.Usage)
		if f.DefValue != "" && f.DefValue != "false" && f.DefValue != "0" && f.DefValue != "[]" {
			line += fmt.Sprintf(" (default %s)", f.DefValue)
		}
		fmt.Fprintln(out, ui.Flag(line))
	}
	cmd.LocalFlags().VisitAll(visit)
	cmd.InheritedFlags().VisitAll(visit)
	fmt.Fprintln(out)
}
