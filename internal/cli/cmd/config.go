package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/bnema/rclayout/internal/cli"
	"github.com/bnema/rclayout/internal/cli/styles"
	"github.com/bnema/rclayout/internal/infrastructure/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage configuration",
	Long:  `Show where configuration and views live, change settings and watch for edits.`,
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Show the config file and database locations",
	Args:  cobra.NoArgs,
	RunE:  runConfigPath,
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set one configuration key",
	Long: `Validate and write one key, e.g.

  rclayout config set editor.hover_delay_ms 150
  rclayout config set logging.level debug`,
	Args: cobra.ExactArgs(2),
	RunE: runConfigSet,
}

var configResetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Rewrite the config file with defaults",
	Args:  cobra.NoArgs,
	RunE:  runConfigReset,
}

var configWatchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Print the effective settings each time the config file changes",
	Args:  cobra.NoArgs,
	RunE:  runConfigWatch,
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configPathCmd, configSetCmd, configResetCmd, configWatchCmd)
}

func configManager() (*cli.App, *config.Manager, error) {
	a, err := requireApp()
	if err != nil {
		return nil, nil, err
	}
	if a.Manager == nil {
		return nil, nil, cli.ErrNoConfigManager
	}
	return a, a.Manager, nil
}

func runConfigPath(cmd *cobra.Command, _ []string) error {
	a, mgr, err := configManager()
	if err != nil {
		return err
	}
	if jsonOut {
		return printJSON(cmd.OutOrStdout(), map[string]string{"config": mgr.GetConfigFile(), "database": a.DBPath()})
	}
	printLine(cmd, styles.NewConfigRenderer(a.Theme).RenderConfigInfo(mgr.GetConfigFile(), a.DBPath()))
	return nil
}

// parseConfigValue keeps integers and booleans typed so viper writes
// them unquoted.
func parseConfigValue(raw string) any {
	if n, err := strconv.Atoi(raw); err == nil {
		return n
	}
	if b, err := strconv.ParseBool(raw); err == nil {
		return b
	}
	return raw
}

func runConfigSet(cmd *cobra.Command, args []string) error {
	a, mgr, err := configManager()
	if err != nil {
		return err
	}
	renderer := styles.NewConfigRenderer(a.Theme)

	value := parseConfigValue(args[1])
	if err := mgr.Set(args[0], value); err != nil {
		printLine(cmd, renderer.RenderError(err))
		return err
	}
	printLine(cmd, renderer.RenderSet(args[0], value, mgr.GetConfigFile()))
	return nil
}

func runConfigReset(cmd *cobra.Command, _ []string) error {
	a, mgr, err := configManager()
	if err != nil {
		return err
	}
	ok, err := a.Confirmer.Confirm(a.Ctx(), "Reset the config file to defaults?")
	if err != nil || !ok {
		return err
	}
	if err := mgr.Reset(); err != nil {
		return err
	}
	printLine(cmd, a.Renderer.RenderSuccess("config reset to defaults"))
	return nil
}

func runConfigWatch(cmd *cobra.Command, _ []string) error {
	a, mgr, err := configManager()
	if err != nil {
		return err
	}
	renderer := styles.NewConfigRenderer(a.Theme)

	mgr.OnConfigChange(func(cfg *config.Config) {
		a.Editor.SetHoverDelay(cfg.Editor.HoverDelay())
		printLine(cmd, renderer.RenderReloaded(cfg.Editor.HoverDelayMs, cfg.Logging.Level))
	})
	if err := mgr.Watch(); err != nil {
		return fmt.Errorf("watch config: %w", err)
	}
	printLine(cmd, renderer.RenderWatching(mgr.GetConfigFile()))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	<-ctx.Done()
	return nil
}
