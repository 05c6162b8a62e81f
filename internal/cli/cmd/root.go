// Package cmd provides Cobra CLI commands for rclayout.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/bnema/rclayout/internal/cli"
)

var (
	app     *cli.App
	appOpts cli.Options
	jsonOut bool
	version = "dev"
	rootCmd = &cobra.Command{
		Use:   "rclayout",
		Short: "Drag-and-drop layout editor for remote control views",
		Long: `rclayout edits the layout of a remote control view: tabs holding
panels, lists and widgets, stored per preset in a local SQLite database.

Every structural edit goes through the same drag and drop pipeline the
interactive editor uses, so the commands below can script what the
editor does by hand.

Use 'rclayout edit' to open the interactive editor.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			// Skip initialization for commands that don't need app context
			switch cmd.Name() {
			case "help", "completion", "gen-docs", "version":
				return nil
			}

			var err error
			app, err = cli.NewApp(appOpts)
			if err != nil {
				return fmt.Errorf("initialize app: %w", err)
			}
			return nil
		},
		PersistentPostRun: func(_ *cobra.Command, _ []string) {
			if app != nil {
				_ = app.Close()
			}
		},
	}
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the rclayout version",
	Run: func(cmd *cobra.Command, _ []string) {
		fmt.Fprintln(cmd.OutOrStdout(), "rclayout "+version)
	},
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVarP(&appOpts.Preset, "preset", "p", "", "preset to edit (default: editor.default_preset)")
	pf.BoolVarP(&appOpts.Yes, "yes", "y", false, "answer yes to every confirmation prompt")
	pf.BoolVar(&jsonOut, "json", false, "print machine-readable JSON")

	rootCmd.AddCommand(versionCmd)
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// GetApp returns the initialized app (for use by subcommands).
func GetApp() *cli.App {
	return app
}

// SetVersion sets the version reported by `rclayout version`.
func SetVersion(v string) {
	if v != "" {
		version = v
	}
}
