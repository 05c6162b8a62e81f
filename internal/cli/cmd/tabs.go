package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bnema/rclayout/internal/domain/entity"
	"github.com/bnema/rclayout/internal/ui/coordinator"
	"github.com/bnema/rclayout/internal/ui/dnd"
)

var tabDeleteForce bool

var tabsCmd = &cobra.Command{
	Use:   "tabs",
	Short: "Manage the tabs of the current preset",
}

var tabsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List tabs with their layout and widget count",
	Args:  cobra.NoArgs,
	RunE:  runTabsList,
}

var tabsAddCmd = &cobra.Command{
	Use:   "add",
	Short: `Append an empty stack tab named "Tab N"`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return runTabChange(cmd, "added", func(ctx context.Context, e *coordinator.EditorCoordinator) error { return e.NewTab(ctx) })
	},
}

var tabsDuplicateCmd = &cobra.Command{
	Use:   "duplicate <index>",
	Short: "Append a deep copy of a tab",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		index, err := parseIndex(args[0], "tab index")
		if err != nil {
			return err
		}
		return runTabChange(cmd, "duplicated", func(ctx context.Context, e *coordinator.EditorCoordinator) error {
			if err := e.ChangeTab(ctx, index); err != nil {
				return err
			}
			return e.DuplicateTab(ctx)
		})
	},
}

var tabsSnapshotCmd = &cobra.Command{
	Use:   "snapshot",
	Short: "Append the snapshot screen tab",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return runTabChange(cmd, "added", func(ctx context.Context, e *coordinator.EditorCoordinator) error {
			return e.AddScreenTab(ctx, entity.ScreenSnapshot)
		})
	},
}

var tabsSequencerCmd = &cobra.Command{
	Use:   "sequencer",
	Short: "Append the sequencer screen tab",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return runTabChange(cmd, "added", func(ctx context.Context, e *coordinator.EditorCoordinator) error {
			return e.AddScreenTab(ctx, entity.ScreenSequencer)
		})
	},
}

var tabsRenameCmd = &cobra.Command{
	Use:   "rename <index> <name>",
	Short: "Rename a tab",
	Args:  cobra.ExactArgs(2),
	RunE:  runTabsRename,
}

var tabsIconCmd = &cobra.Command{
	Use:   "icon <index> <icon>",
	Short: "Set the icon of a tab",
	Args:  cobra.ExactArgs(2),
	RunE:  runTabsIcon,
}

var tabsDeleteCmd = &cobra.Command{
	Use:   "delete <index>",
	Short: "Delete a tab after confirmation",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		index, err := parseIndex(args[0], "tab index")
		if err != nil {
			return err
		}
		return runTabChange(cmd, "now on", func(ctx context.Context, e *coordinator.EditorCoordinator) error {
			return e.DeleteTab(ctx, index, tabDeleteForce)
		})
	},
}

var tabsMoveCmd = &cobra.Command{
	Use:   "move <from> <to>",
	Short: "Move a tab by dragging its header",
	Long: `Move a tab the way dragging its header in the tab bar does. The moved
tab becomes the active one.`,
	Args: cobra.ExactArgs(2),
	RunE: runTabsMove,
}

func init() {
	rootCmd.AddCommand(tabsCmd)
	tabsCmd.AddCommand(
		tabsListCmd,
		tabsAddCmd,
		tabsDuplicateCmd,
		tabsSnapshotCmd,
		tabsSequencerCmd,
		tabsRenameCmd,
		tabsIconCmd,
		tabsDeleteCmd,
		tabsMoveCmd,
	)
	tabsDeleteCmd.Flags().BoolVarP(&tabDeleteForce, "force", "f", false, "skip the confirmation prompt")
}

func runTabsList(cmd *cobra.Command, _ []string) error {
	a, err := requireApp()
	if err != nil {
		return err
	}
	view, err := a.Store.Current(a.Ctx())
	if err != nil {
		return err
	}
	if jsonOut {
		return printJSON(cmd.OutOrStdout(), view.Tabs)
	}
	printLine(cmd, a.Renderer.RenderTabs(view, a.Editor.State().Tab))
	return nil
}

func runTabChange(cmd *cobra.Command, verb string, fn func(context.Context, *coordinator.EditorCoordinator) error) error {
	a, err := requireApp()
	if err != nil {
		return err
	}
	if err := a.Open(0); err != nil {
		return err
	}
	if err := fn(a.Ctx(), a.Editor); err != nil {
		return err
	}

	state := a.Editor.State()
	view, err := a.Store.Current(a.Ctx())
	if err != nil {
		return err
	}
	if jsonOut {
		return printJSON(cmd.OutOrStdout(), map[string]any{"tab": state.Tab, "editable": state.Editable, "tabs": len(view.Tabs)})
	}
	name := ""
	if tab := view.Tab(state.Tab); tab != nil {
		name = tab.Name
	}
	printLine(cmd, a.Renderer.RenderSuccess(fmt.Sprintf("%s tab %d %q", verb, state.Tab, name)))
	return nil
}

func runTabsRename(cmd *cobra.Command, args []string) error {
	a, err := requireApp()
	if err != nil {
		return err
	}
	index, err := parseIndex(args[0], "tab index")
	if err != nil {
		return err
	}
	changed, err := a.ManageTabsUC.Rename(a.Ctx(), index, args[1])
	if err != nil {
		return err
	}
	if !changed {
		printLine(cmd, a.Renderer.RenderNotice("name unchanged"))
		return nil
	}
	printLine(cmd, a.Renderer.RenderSuccess(fmt.Sprintf("renamed tab %d to %q", index, args[1])))
	return nil
}

func runTabsIcon(cmd *cobra.Command, args []string) error {
	a, err := requireApp()
	if err != nil {
		return err
	}
	index, err := parseIndex(args[0], "tab index")
	if err != nil {
		return err
	}
	changed, err := a.ManageTabsUC.SetIcon(a.Ctx(), index, args[1])
	if err != nil {
		return err
	}
	if !changed {
		printLine(cmd, a.Renderer.RenderNotice("icon unchanged"))
		return nil
	}
	printLine(cmd, a.Renderer.RenderSuccess(fmt.Sprintf("tab %d icon set to %q", index, args[1])))
	return nil
}

func runTabsMove(cmd *cobra.Command, args []string) error {
	a, err := requireApp()
	if err != nil {
		return err
	}
	from, err := parseIndex(args[0], "source index")
	if err != nil {
		return err
	}
	to, err := parseIndex(args[1], "destination index")
	if err != nil {
		return err
	}

	return runDrag(cmd, a, dragRequest{
		item:   dnd.ReorderID(from, dnd.HeaderDragType),
		origin: entity.Location{ZoneID: dnd.HeadersZoneID(), Index: from},
		dest:   &entity.Location{ZoneID: dnd.HeadersZoneID(), Index: to},
		kind:   entity.DropHeaderTabs,
		tab:    0,
		toTab:  -1,
	})
}
