package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bnema/rclayout/internal/domain/entity"
	"github.com/bnema/rclayout/internal/ui/coordinator"
)

var (
	widgetSelect string
	widgetTab    int
	widgetForce  bool
)

var widgetCmd = &cobra.Command{
	Use:   "widget",
	Short: "Edit placed widgets and panels",
}

var widgetDeleteCmd = &cobra.Command{
	Use:   "delete",
	Short: "Delete the item at a selection",
	Long: `Select an item in edit mode and press Delete, as in the editor.

The selection has the form path_index_property and is printed next to
every row of 'rclayout view show'. --force skips the confirmation, like
Shift+Delete.`,
	Args: cobra.NoArgs,
	RunE: runWidgetDelete,
}

func init() {
	rootCmd.AddCommand(widgetCmd)
	widgetCmd.AddCommand(widgetDeleteCmd)
	f := widgetDeleteCmd.Flags()
	f.StringVarP(&widgetSelect, "select", "s", "", "selection path_index_property")
	f.IntVarP(&widgetTab, "tab", "t", 0, "tab holding the selection")
	f.BoolVarP(&widgetForce, "force", "f", false, "skip the confirmation prompt")
	_ = widgetDeleteCmd.MarkFlagRequired("select")
}

func runWidgetDelete(cmd *cobra.Command, _ []string) error {
	a, err := requireApp()
	if err != nil {
		return err
	}
	sel, err := entity.ParseSelection(widgetSelect)
	if err != nil {
		return err
	}
	if err := a.Open(widgetTab); err != nil {
		return err
	}

	a.Editor.SetEditable(true)
	a.Editor.Select(&sel)
	if _, err := a.Editor.HandleKey(a.Ctx(), coordinator.KeyEvent{Key: "Delete", Shift: widgetForce}); err != nil {
		return err
	}

	deleted := a.Editor.State().Selected == nil
	if jsonOut {
		return printJSON(cmd.OutOrStdout(), map[string]any{"deleted": deleted, "selection": sel.String()})
	}
	if !deleted {
		printLine(cmd, a.Renderer.RenderNotice("nothing deleted"))
		return nil
	}
	printLine(cmd, a.Renderer.RenderSuccess(fmt.Sprintf("deleted %s", sel.String())))
	return nil
}
