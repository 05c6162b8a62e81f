package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bnema/rclayout/internal/application/port"
	"github.com/bnema/rclayout/internal/cli"
	"github.com/bnema/rclayout/internal/domain/entity"
	"github.com/bnema/rclayout/internal/logging"
)

var (
	dropItem     string
	dropFrom     string
	dropTo       string
	dropKind     string
	dropTab      int
	dropToTab    int
	dropTemplate string
	dropProperty string
)

var dropCmd = &cobra.Command{
	Use:   "drop",
	Short: "Perform one drag and drop on the current preset",
	Long: `Drag an item and release it over a drop zone, exactly as the editor
does. Zone ids come from 'rclayout zones'; item ids have the form
path_index_type ("0.widgets_1_Toggle"), "<path>_<index>_PANEL",
"<path>_<index>_LIST" or "REORDER_<index>_ITEM".

A destination zone that does not accept the dragged type is treated as
a release outside any zone and the drop is discarded.

Examples:
  # move the second widget of panel 0 to the end of panel 1
  rclayout drop --item 0.widgets_1_Toggle --from tab0:0.widgets:1 --to tab0:1.widgets:9

  # drop a new slider from the palette at the top of the tab
  rclayout drop --item palette_Slider --template Slider --property brightness --to tab0:root:0

  # move a widget from tab 0 to tab 2
  rclayout drop --item 0.widgets_0_Toggle --from tab0:0.widgets:0 --tab 0 --to-tab 2 --to tab2:root:0`,
	Args: cobra.NoArgs,
	RunE: runDrop,
}

func init() {
	rootCmd.AddCommand(dropCmd)
	f := dropCmd.Flags()
	f.StringVar(&dropItem, "item", "", "identifier of the dragged item")
	f.StringVar(&dropFrom, "from", "", "source location ZONE:INDEX")
	f.StringVar(&dropTo, "to", "", "destination location ZONE:INDEX (omit to release outside any zone)")
	f.StringVar(&dropKind, "kind", string(entity.DropGeneral), "drop kind: DEFAULT, HEADER_TABS, TABS-REORDER, LIST-REORDER")
	f.IntVarP(&dropTab, "tab", "t", 0, "tab the drag starts on")
	f.IntVar(&dropToTab, "to-tab", -1, "tab shown at release (default: --tab)")
	f.StringVar(&dropTemplate, "template", "", "widget type staged for palette drags")
	f.StringVar(&dropProperty, "property", "", "property bound to the --template widget")
	_ = dropCmd.MarkFlagRequired("item")
}

// dragRequest is one complete gesture.
type dragRequest struct {
	item     string
	origin   entity.Location
	dest     *entity.Location
	kind     entity.DropKind
	tab      int
	toTab    int
	template *entity.Node
}

func runDrop(cmd *cobra.Command, _ []string) error {
	a, err := requireApp()
	if err != nil {
		return err
	}
	kind, err := entity.ParseDropKind(dropKind)
	if err != nil {
		return err
	}

	req := dragRequest{item: dropItem, kind: kind, tab: dropTab, toTab: dropToTab}
	if dropFrom != "" {
		if req.origin, err = parseLocation(dropFrom); err != nil {
			return err
		}
	}
	if dropTo != "" {
		dest, err := parseLocation(dropTo)
		if err != nil {
			return err
		}
		req.dest = &dest
	}
	if dropTemplate != "" {
		req.template = entity.NewWidget(entity.WidgetType(dropTemplate), dropProperty)
	}
	return runDrag(cmd, a, req)
}

// runDrag replays a gesture through the editor: pick up on req.tab,
// optionally switch tabs mid-drag, hover the destination and release.
func runDrag(cmd *cobra.Command, a *cli.App, req dragRequest) error {
	ctx := a.Ctx()
	log := logging.FromContext(ctx)

	if err := a.Open(req.tab); err != nil {
		return err
	}
	if err := a.Editor.BeginDrag(ctx, req.item, req.origin, req.template); err != nil {
		return err
	}
	if req.toTab >= 0 && req.toTab != req.tab {
		if err := a.Editor.ChangeTab(ctx, req.toTab); err != nil {
			a.Editor.CancelDrag(ctx)
			return err
		}
	}

	dest := req.dest
	if dest != nil {
		a.Editor.MoveDrag([]port.HitElement{{ZoneID: dest.ZoneID}})
		if a.Editor.State().Droppable != dest.ZoneID {
			log.Debug().Str("zone", dest.ZoneID).Msg("destination does not accept the dragged item")
			dest = nil
		}
	}

	out, err := a.Editor.EndDrag(ctx, req.kind, dest)
	if err != nil {
		return fmt.Errorf("drop: %w", err)
	}
	if jsonOut {
		return printJSON(cmd.OutOrStdout(), dropJSON(out.Applied, out.Reason, out.Selection, out.ActiveTab))
	}
	printLine(cmd, a.Renderer.RenderDrop(out))
	return nil
}

func dropJSON(applied bool, reason string, sel *entity.Selection, active *int) map[string]any {
	m := map[string]any{"applied": applied}
	if reason != "" {
		m["reason"] = reason
	}
	if sel != nil {
		m["selection"] = sel.String()
	}
	if active != nil {
		m["active_tab"] = *active
	}
	return m
}
