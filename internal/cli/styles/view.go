package styles

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/charmbracelet/lipgloss/tree"

	"github.com/bnema/rclayout/internal/application/usecase"
	"github.com/bnema/rclayout/internal/domain/entity"
	"github.com/bnema/rclayout/internal/domain/repository"
)

// ViewRenderer renders views, zones and drop outcomes for the terminal.
type ViewRenderer struct {
	theme *Theme
}

// NewViewRenderer creates a new ViewRenderer.
func NewViewRenderer(theme *Theme) *ViewRenderer {
	return &ViewRenderer{theme: theme}
}

// RenderTabBar renders the tab headers with the active one highlighted.
func (r *ViewRenderer) RenderTabBar(view *entity.View, active int) string {
	if view == nil || len(view.Tabs) == 0 {
		return r.theme.Subtle.Render("No tabs")
	}
	headers := make([]string, 0, len(view.Tabs))
	for i, tab := range view.Tabs {
		style := r.theme.InactiveTab
		if i == active {
			style = r.theme.ActiveTab
		}
		headers = append(headers, style.Render(fmt.Sprintf("%d %s", i+1, tab.Name)))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, headers...)
}

// TreeMarks highlights rows of a rendered tab.
type TreeMarks struct {
	// Selected is the selection string of the selected node.
	Selected string
	// Cursor is the outline row index under the cursor, -1 for none.
	Cursor int
	// Target is the outline row a drop would land before, -1 for none.
	Target int
}

// RenderTab renders one tab as a tree. Each node row carries its
// selection string so it can be fed back to `widget delete --select`.
func (r *ViewRenderer) RenderTab(view *entity.View, index int, marks TreeMarks) string {
	tab := view.Tab(index)
	if tab == nil {
		return r.theme.ErrorStyle.Render(fmt.Sprintf("%s tab %d does not exist", IconX, index))
	}

	title := fmt.Sprintf("%s %s", IconTab, r.theme.Title.Render(tab.Name))
	if tab.Icon != "" {
		title += r.theme.Subtle.Render(" (" + tab.Icon + ")")
	}
	if tab.Layout == entity.TabLayoutScreen {
		screen := "unknown"
		if tab.Screen != nil {
			screen = string(tab.Screen.Type)
		}
		return title + "\n" + r.theme.Subtle.Render(fmt.Sprintf("  %s %s screen", IconScreen, screen))
	}

	rows := tab.Outline()
	if len(rows) == 0 {
		return title + "\n" + r.theme.Subtle.Render("  Empty tab: drop widgets here")
	}

	root := tree.Root(title).
		Enumerator(tree.RoundedEnumerator).
		EnumeratorStyle(r.theme.Subtle)

	// parents[d] is the subtree receiving rows of depth d.
	parents := []*tree.Tree{root}
	for i, row := range rows {
		label := r.rowLabel(row, marks, i)
		node := tree.Root(label)
		for len(parents) > row.Depth+1 {
			parents = parents[:len(parents)-1]
		}
		parents[len(parents)-1].Child(node)
		parents = append(parents, node)
	}
	return root.String()
}

func (r *ViewRenderer) rowLabel(row entity.OutlineRow, marks TreeMarks, i int) string {
	t := r.theme
	var label string
	switch {
	case row.Item != nil:
		label = fmt.Sprintf("%s %s", IconList, t.Normal.Render(row.Item.Label))
	case row.Node.IsWidget():
		label = fmt.Sprintf("%s %s %s", IconWidget, t.Normal.Bold(true).Render(string(row.Node.Widget)), t.Highlight.Render(row.Node.Property))
	default:
		kind := string(row.Node.Kind)
		if row.Node.Title != "" {
			kind += " " + strconv.Quote(row.Node.Title)
		}
		label = fmt.Sprintf("%s %s", IconPanel, t.Normal.Render(kind))
	}

	if row.Node != nil {
		sel := row.Selection().String()
		label += "  " + t.Subtle.Render(sel)
		if sel == marks.Selected {
			label = t.ListItemSelected.Render(label)
		}
	}
	if i == marks.Target {
		label = t.DropTarget.Render(IconGrab+" drop here ") + label
	}
	if i == marks.Cursor {
		label = t.HelpKey.Render("> ") + label
	}
	return label
}

// RenderTabs renders the tab list with counts.
func (r *ViewRenderer) RenderTabs(view *entity.View, active int) string {
	rows := make([][]string, 0, len(view.Tabs))
	for i, tab := range view.Tabs {
		marker := ""
		if i == active {
			marker = IconArrow
		}
		content := strconv.Itoa(tab.WidgetCount())
		if tab.Layout == entity.TabLayoutScreen && tab.Screen != nil {
			content = string(tab.Screen.Type)
		}
		rows = append(rows, []string{marker, strconv.Itoa(i), tab.Name, tab.Icon, string(tab.Layout), content})
	}
	return r.table([]string{"", "#", "Name", "Icon", "Layout", "Widgets"}, rows)
}

// RenderZones renders registered drop zones.
func (r *ViewRenderer) RenderZones(zones []entity.Zone) string {
	if len(zones) == 0 {
		return r.theme.Subtle.Render("No drop zones")
	}
	rows := make([][]string, 0, len(zones))
	for _, z := range zones {
		path := z.Path.String()
		if path == "" {
			path = "(root)"
		}
		rows = append(rows, []string{z.ID, string(z.Kind), path, strings.Join(z.Accept.Tags(), ", ")})
	}
	return r.table([]string{"Zone", "Kind", "Path", "Accepts"}, rows)
}

// RenderPresets renders persisted view summaries.
func (r *ViewRenderer) RenderPresets(summaries []repository.ViewSummary, active string) string {
	if len(summaries) == 0 {
		return r.theme.Subtle.Render("No saved views")
	}
	rows := make([][]string, 0, len(summaries))
	for _, s := range summaries {
		marker := ""
		if s.PresetID == active {
			marker = IconArrow
		}
		updated := ""
		if !s.UpdatedAt.IsZero() {
			updated = s.UpdatedAt.Local().Format(time.DateTime)
		}
		rows = append(rows, []string{
			marker,
			s.PresetID,
			strconv.Itoa(s.TabCount),
			strconv.Itoa(s.WidgetCount),
			strconv.FormatInt(s.Revision, 10),
			updated,
		})
	}
	return r.table([]string{"", "Preset", "Tabs", "Widgets", "Rev", "Updated"}, rows)
}

// RenderDrop renders the outcome of a drop.
func (r *ViewRenderer) RenderDrop(out *usecase.ResolveDropOutput) string {
	t := r.theme
	if out == nil {
		return ""
	}
	if !out.Applied {
		return t.WarningStyle.Render(fmt.Sprintf("%s drop discarded: %s", IconWarning, out.Reason))
	}
	msg := t.SuccessStyle.Render(IconCheck + " drop applied")
	if out.Selection != nil {
		msg += t.Subtle.Render("  selected ") + t.Highlight.Render(out.Selection.String())
	}
	if out.ActiveTab != nil {
		msg += t.Subtle.Render(fmt.Sprintf("  active tab %d", *out.ActiveTab))
	}
	return msg
}

// RenderSuccess renders a one-line success message.
func (r *ViewRenderer) RenderSuccess(msg string) string {
	return r.theme.SuccessStyle.Render(IconCheck + " " + msg)
}

// RenderNotice renders a one-line muted message.
func (r *ViewRenderer) RenderNotice(msg string) string {
	return r.theme.Subtle.Render(IconInfo + " " + msg)
}

func (r *ViewRenderer) table(headers []string, rows [][]string) string {
	t := r.theme
	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(t.Border)).
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return lipgloss.NewStyle().Foreground(t.Accent).Bold(true).Padding(0, 1)
			}
			return lipgloss.NewStyle().Foreground(t.Text).Padding(0, 1)
		}).
		String()
}
