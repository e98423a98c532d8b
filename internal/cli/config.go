package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/Binkle/DefaultApplication/internal/config"
	apperrors "github.com/Binkle/DefaultApplication/internal/errors"
)

var configCmd = &cobra.Command{
	Use:     "config",
	Short:   "Manage defaultapp configuration",
	GroupID: GroupConfiguration,
	Long: `Manage defaultapp configuration settings.

Configuration is loaded with the following priority (highest to lowest):
  1. Environment variables (DEFAULTAPP_*)
  2. Project config (.defaultapp/config.yml)
  3. User config (~/.config/defaultapp/config.yml)
  4. Built-in defaults`,
	Example: `  # Write a commented starter config
  defaultapp config init

  # Show the effective configuration
  defaultapp config show`,
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a starter user config file",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := config.UserConfigPath()
		if err != nil {
			return apperrors.NewConfigError(err.Error())
		}
		if err := config.WriteStarterConfig(path); err != nil {
			return apperrors.NewConfigError(err.Error())
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", path)
		return nil
	},
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the effective configuration",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		configPath, _ := cmd.Flags().GetString("config")
		cfg, err := config.Load(configPath)
		if err != nil {
			return apperrors.NewConfigError(err.Error())
		}

		out, err := yaml.Marshal(map[string]interface{}{
			"applications_dir":  cfg.ApplicationsDir,
			"extensions_file":   cfg.ExtensionsFile,
			"no_color":          cfg.NoColor,
			"scripted":          cfg.Scripted,
			"watch_debounce_ms": cfg.WatchDebounceMS,
		})
		if err != nil {
			return err
		}
		fmt.Fprint(cmd.OutOrStdout(), string(out))
		return nil
	},
}

func init() {
	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configShowCmd)
	rootCmd.AddCommand(configCmd)
}
