package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/bnema/rclayout/internal/cli/styles"
	"github.com/bnema/rclayout/internal/domain/entity"
)

var viewShowTab int

var viewCmd = &cobra.Command{
	Use:   "view",
	Short: "Inspect, import and export preset views",
}

var viewShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the tabs and panel tree of the current preset",
	Long: `Render the tab bar and the panel tree of one tab.

Each node row ends with its selection string (path_index_property), the
form 'rclayout widget delete --select' expects.`,
	Args: cobra.NoArgs,
	RunE: runViewShow,
}

var viewListCmd = &cobra.Command{
	Use:   "list",
	Short: "List saved presets",
	Args:  cobra.NoArgs,
	RunE:  runViewList,
}

var viewExportCmd = &cobra.Command{
	Use:   "export [file]",
	Short: "Write the current preset view as JSON",
	Long:  `Write the view to file, or to stdout when no file or "-" is given.`,
	Args:  cobra.MaximumNArgs(1),
	RunE:  runViewExport,
}

var viewImportCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Replace the current preset view with a JSON document",
	Long: `Replace the view of the current preset. Use "-" to read stdin.

Tabs without a layout become stacks. Malformed documents are rejected
before anything is written.`,
	Args: cobra.ExactArgs(1),
	RunE: runViewImport,
}

var viewDeleteCmd = &cobra.Command{
	Use:   "delete [preset]",
	Short: "Delete a saved preset (default: the current one)",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runViewDelete,
}

func init() {
	rootCmd.AddCommand(viewCmd)
	viewCmd.AddCommand(viewShowCmd, viewListCmd, viewExportCmd, viewImportCmd, viewDeleteCmd)
	viewShowCmd.Flags().IntVarP(&viewShowTab, "tab", "t", 0, "tab to render")
}

func runViewShow(cmd *cobra.Command, _ []string) error {
	a, err := requireApp()
	if err != nil {
		return err
	}
	view, err := a.Store.Current(a.Ctx())
	if err != nil {
		return err
	}
	if jsonOut {
		return printJSON(cmd.OutOrStdout(), view)
	}

	state := a.Editor.State()
	printLine(cmd, a.Renderer.RenderTabBar(view, viewShowTab))
	printLine(cmd, "")
	printLine(cmd, a.Renderer.RenderTab(view, viewShowTab, styles.TreeMarks{Cursor: -1, Target: -1, Selected: selectedString(state.Selected)}))
	return nil
}

func selectedString(sel *entity.Selection) string {
	if sel == nil {
		return ""
	}
	return sel.String()
}

func runViewList(cmd *cobra.Command, _ []string) error {
	a, err := requireApp()
	if err != nil {
		return err
	}
	summaries, err := a.Views.List(a.Ctx())
	if err != nil {
		return err
	}
	if jsonOut {
		return printJSON(cmd.OutOrStdout(), summaries)
	}
	printLine(cmd, a.Renderer.RenderPresets(summaries, a.Store.Preset()))
	return nil
}

func runViewExport(cmd *cobra.Command, args []string) error {
	a, err := requireApp()
	if err != nil {
		return err
	}
	view, err := a.Store.Current(a.Ctx())
	if err != nil {
		return err
	}

	if len(args) == 0 || args[0] == "-" {
		return printJSON(cmd.OutOrStdout(), view)
	}
	f, err := os.Create(args[0])
	if err != nil {
		return fmt.Errorf("create export file: %w", err)
	}
	if err := printJSON(f, view); err != nil {
		_ = f.Close()
		return fmt.Errorf("write export file: %w", err)
	}
	if err := f.Close(); err != nil {
		return err
	}
	printLine(cmd, a.Renderer.RenderSuccess(fmt.Sprintf("exported %q to %s", a.Store.Preset(), args[0])))
	return nil
}

func runViewImport(cmd *cobra.Command, args []string) error {
	a, err := requireApp()
	if err != nil {
		return err
	}

	var data []byte
	if args[0] == "-" {
		data, err = io.ReadAll(cmd.InOrStdin())
	} else {
		data, err = os.ReadFile(args[0])
	}
	if err != nil {
		return fmt.Errorf("read view: %w", err)
	}

	view, err := decodeView(data)
	if err != nil {
		return err
	}
	if err := a.Store.Commit(a.Ctx(), view); err != nil {
		return err
	}
	printLine(cmd, a.Renderer.RenderSuccess(fmt.Sprintf("imported %d tabs, %d widgets into %q", len(view.Tabs), view.WidgetCount(), a.Store.Preset())))
	return nil
}

func decodeView(data []byte) (*entity.View, error) {
	view := entity.NewView()
	if err := json.Unmarshal(data, view); err != nil {
		return nil, fmt.Errorf("decode view: %w", err)
	}
	if err := view.Normalize(); err != nil {
		return nil, err
	}
	return view, nil
}

func runViewDelete(cmd *cobra.Command, args []string) error {
	a, err := requireApp()
	if err != nil {
		return err
	}
	preset := a.Store.Preset()
	if len(args) == 1 {
		preset = args[0]
	}

	ok, err := a.Confirmer.Confirm(a.Ctx(), fmt.Sprintf("Delete the %q view?", preset))
	if err != nil {
		return err
	}
	if !ok {
		printLine(cmd, a.Renderer.RenderNotice("nothing deleted"))
		return nil
	}
	if err := a.Views.Delete(a.Ctx(), preset); err != nil {
		return err
	}
	if preset == a.Store.Preset() {
		a.Store.Reload()
	}
	printLine(cmd, a.Renderer.RenderSuccess(fmt.Sprintf("deleted %q", preset)))
	return nil
}
