package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bnema/rclayout/internal/application/port"
	"github.com/bnema/rclayout/internal/application/usecase"
	"github.com/bnema/rclayout/internal/cli/styles"
)

var schemaCmd = &cobra.Command{
	Use:   "schema <config|view>",
	Short: "Print the JSON schema of the config file or of a view document",
	Long: `Print a JSON schema editors can use to validate config.toml or the
documents written by 'rclayout view export'.`,
	Args:      cobra.ExactArgs(1),
	ValidArgs: []string{string(port.SchemaConfig), string(port.SchemaView)},
	RunE:      runSchema,
}

var configKeysCmd = &cobra.Command{
	Use:   "keys",
	Short: "List every configuration key with its default",
	Args:  cobra.NoArgs,
	RunE:  runConfigKeys,
}

func init() {
	rootCmd.AddCommand(schemaCmd)
	configCmd.AddCommand(configKeysCmd)
}

func runSchema(cmd *cobra.Command, args []string) error {
	a, err := requireApp()
	if err != nil {
		return err
	}
	out, err := a.GetSchemaUC.Execute(a.Ctx(), usecase.GetSchemaInput{Target: port.SchemaTarget(args[0])})
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), string(out.JSON))
	return err
}

func runConfigKeys(cmd *cobra.Command, _ []string) error {
	a, err := requireApp()
	if err != nil {
		return err
	}
	out, err := a.GetSchemaUC.Execute(a.Ctx(), usecase.GetSchemaInput{})
	if err != nil {
		return err
	}

	renderer := styles.NewConfigSchemaRenderer(a.Theme)
	if jsonOut {
		data, err := renderer.RenderJSON(out.Keys)
		if err != nil {
			return err
		}
		printLine(cmd, data)
		return nil
	}
	var current map[string]string
	if a.Config != nil {
		current = a.Config.Values()
	}
	printLine(cmd, renderer.Render(out.Keys, current))
	return nil
}
