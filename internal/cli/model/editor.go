// Package model provides Bubble Tea models for CLI commands.
package model

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/rclayout/internal/application/port"
	"github.com/bnema/rclayout/internal/cli/styles"
	"github.com/bnema/rclayout/internal/domain/entity"
	"github.com/bnema/rclayout/internal/logging"
	"github.com/bnema/rclayout/internal/ui/coordinator"
	"github.com/bnema/rclayout/internal/ui/dnd"
)

// EditorModel is the Bubble Tea model of the interactive layout editor.
type EditorModel struct {
	// UI components
	help    help.Model
	keys    editorKeyMap
	confirm *styles.ConfirmModel
	// onConfirm runs when the confirm dialog is answered yes.
	onConfirm func() error

	// State
	view   *entity.View
	state  coordinator.EditorState
	rows   []entity.OutlineRow
	cursor int
	drag   *dragState
	width  int
	height int
	err    error
	status string

	// Dependencies
	ctx      context.Context
	editor   *coordinator.EditorCoordinator
	store    port.ViewStore
	theme    *styles.Theme
	renderer *styles.ViewRenderer
}

// dragState is the keyboard drag in progress. target is the outline row
// the item would land before; len(rows) means the end of the tab.
type dragState struct {
	kind   entity.DropKind
	target int
}

type editorKeyMap struct {
	Up        key.Binding
	Down      key.Binding
	PrevTab   key.Binding
	NextTab   key.Binding
	GotoTab   key.Binding
	Edit      key.Binding
	Grab      key.Binding
	Drop      key.Binding
	Cancel    key.Binding
	Delete    key.Binding
	NewTab    key.Binding
	Duplicate key.Binding
	Snapshot  key.Binding
	Sequencer key.Binding
	DeleteTab key.Binding
	Help      key.Binding
	Quit      key.Binding
}

// ShortHelp returns keybindings for the short help view.
func (k editorKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Edit, k.Grab, k.Drop, k.Delete, k.Help, k.Quit}
}

// FullHelp returns keybindings for the full help view.
func (k editorKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.PrevTab, k.NextTab, k.GotoTab},
		{k.Edit, k.Grab, k.Drop, k.Cancel, k.Delete},
		{k.NewTab, k.Duplicate, k.Snapshot, k.Sequencer, k.DeleteTab},
		{k.Help, k.Quit},
	}
}

func defaultEditorKeyMap() editorKeyMap {
	return editorKeyMap{
		Up: key.NewBinding(
			key.WithKeys("k", "up"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("j", "down"),
			key.WithHelp("↓/j", "down"),
		),
		PrevTab: key.NewBinding(
			key.WithKeys("ctrl+left", "shift+tab"),
			key.WithHelp("ctrl+←", "previous tab"),
		),
		NextTab: key.NewBinding(
			key.WithKeys("ctrl+right", "tab"),
			key.WithHelp("ctrl+→", "next tab"),
		),
		GotoTab: key.NewBinding(
			key.WithKeys("alt+1", "alt+2", "alt+3", "alt+4", "alt+5", "alt+6", "alt+7", "alt+8", "alt+9", "alt+0"),
			key.WithHelp("alt+1..9", "go to tab"),
		),
		Edit: key.NewBinding(
			key.WithKeys("ctrl+e", "e"),
			key.WithHelp("e", "edit mode"),
		),
		Grab: key.NewBinding(
			key.WithKeys(" "),
			key.WithHelp("space", "grab"),
		),
		Drop: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "drop"),
		),
		Cancel: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "cancel drag"),
		),
		Delete: key.NewBinding(
			key.WithKeys("delete", "x"),
			key.WithHelp("del/x", "delete"),
		),
		NewTab: key.NewBinding(
			key.WithKeys("n"),
			key.WithHelp("n", "new tab"),
		),
		Duplicate: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "duplicate tab"),
		),
		Snapshot: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "snapshot tab"),
		),
		Sequencer: key.NewBinding(
			key.WithKeys("S"),
			key.WithHelp("S", "sequencer tab"),
		),
		DeleteTab: key.NewBinding(
			key.WithKeys("X"),
			key.WithHelp("X", "delete tab"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// EditorModelConfig holds configuration for the editor model.
type EditorModelConfig struct {
	Editor *coordinator.EditorCoordinator
	Store  port.ViewStore
}

// NewEditorModel creates a new editor model.
func NewEditorModel(ctx context.Context, theme *styles.Theme, cfg EditorModelConfig) EditorModel {
	return EditorModel{
		help:     help.New(),
		keys:     defaultEditorKeyMap(),
		width:    80,
		height:   24,
		ctx:      ctx,
		editor:   cfg.Editor,
		store:    cfg.Store,
		theme:    theme,
		renderer: styles.NewViewRenderer(theme),
	}
}

// RefreshMsg asks the model to re-read the editor state and the view.
// Send it from coordinator and store callbacks.
type RefreshMsg struct{}

// Init implements tea.Model.
func (m EditorModel) Init() tea.Cmd {
	return func() tea.Msg { return RefreshMsg{} }
}

// Update implements tea.Model.
func (m EditorModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// Handle confirm modal
	if m.confirm != nil {
		if k, ok := msg.(tea.KeyMsg); ok {
			return m.handleConfirmModal(k)
		}
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		return m.handleKeyMsg(msg)

	case RefreshMsg:
		m.refresh()
		return m, nil
	}

	return m, nil
}

func (m EditorModel) handleConfirmModal(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	confirm, cmd := m.confirm.Update(msg)
	m.confirm = &confirm
	if !m.confirm.Done() {
		return m, cmd
	}
	if m.confirm.Result() && m.onConfirm != nil {
		m.setErr(m.onConfirm())
	}
	m.confirm = nil
	m.onConfirm = nil
	m.refresh()
	return m, cmd
}

func (m EditorModel) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.drag != nil {
		return m.handleDragKey(msg)
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Up):
		m.moveCursor(-1)

	case key.Matches(msg, m.keys.Down):
		m.moveCursor(1)

	case key.Matches(msg, m.keys.PrevTab):
		m.routeKey(coordinator.KeyEvent{Key: "ArrowLeft", Ctrl: true})

	case key.Matches(msg, m.keys.NextTab):
		m.routeKey(coordinator.KeyEvent{Key: "ArrowRight", Ctrl: true})

	case key.Matches(msg, m.keys.GotoTab):
		m.routeKey(coordinator.KeyEvent{Key: strings.TrimPrefix(msg.String(), "alt+"), Meta: true})

	case key.Matches(msg, m.keys.Edit):
		m.routeKey(coordinator.KeyEvent{Key: "e", Ctrl: true})

	case key.Matches(msg, m.keys.Grab):
		m.beginDrag()

	case key.Matches(msg, m.keys.Delete):
		if m.state.Editable && m.state.Selected != nil {
			m.ask(styles.IconTrash+" Delete the selected item?", m.state.Selected.String(), func() error {
				_, err := m.editor.HandleKey(m.ctx, coordinator.KeyEvent{Key: "Delete", Shift: true})
				return err
			})
		}

	case key.Matches(msg, m.keys.NewTab):
		m.setErr(m.editor.NewTab(m.ctx))

	case key.Matches(msg, m.keys.Duplicate):
		m.setErr(m.editor.DuplicateTab(m.ctx))

	case key.Matches(msg, m.keys.Snapshot):
		m.setErr(m.editor.AddScreenTab(m.ctx, entity.ScreenSnapshot))

	case key.Matches(msg, m.keys.Sequencer):
		m.setErr(m.editor.AddScreenTab(m.ctx, entity.ScreenSequencer))

	case key.Matches(msg, m.keys.DeleteTab):
		tab := m.state.Tab
		m.ask(styles.IconTrash+" Delete this tab?", m.tabName(tab), func() error {
			return m.editor.DeleteTab(m.ctx, tab, true)
		})

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	}

	m.refresh()
	return m, nil
}

func (m EditorModel) handleDragKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.editor.CancelDrag(m.ctx)
		return m, tea.Quit

	case key.Matches(msg, m.keys.Cancel):
		m.editor.CancelDrag(m.ctx)
		m.drag = nil
		m.status = "drag cancelled"

	case key.Matches(msg, m.keys.Up):
		m.moveTarget(-1)

	case key.Matches(msg, m.keys.Down):
		m.moveTarget(1)

	case key.Matches(msg, m.keys.PrevTab):
		m.hoverTab(m.state.Tab - 1)

	case key.Matches(msg, m.keys.NextTab):
		m.hoverTab(m.state.Tab + 1)

	case key.Matches(msg, m.keys.Drop):
		m.endDrag()
	}

	m.refresh()
	return m, nil
}

// ask opens the confirm dialog. fn runs only on yes.
func (m *EditorModel) ask(message, detail string, fn func() error) {
	confirm := styles.NewConfirm(m.theme, message).WithDetail(detail)
	m.confirm = &confirm
	m.onConfirm = fn
}

func (m *EditorModel) tabName(index int) string {
	if m.view == nil || index < 0 || index >= len(m.view.Tabs) {
		return ""
	}
	return m.view.Tabs[index].Name
}

func (m *EditorModel) setErr(err error) {
	m.err = err
	if err != nil {
		logging.FromContext(m.ctx).Debug().Err(err).Msg("editor command failed")
	}
}

func (m *EditorModel) routeKey(ev coordinator.KeyEvent) {
	_, err := m.editor.HandleKey(m.ctx, ev)
	m.setErr(err)
}

// refresh re-reads the editor state and the committed view.
func (m *EditorModel) refresh() {
	m.state = m.editor.State()
	if m.store != nil {
		view, err := m.store.Current(m.ctx)
		if err != nil {
			m.setErr(err)
			return
		}
		m.view = view
	}
	m.rows = m.view.Tab(m.state.Tab).Outline()
	m.cursor = max(0, entity.ClampIndex(m.cursor, len(m.rows)-1))
	if m.drag != nil {
		m.drag.target = entity.ClampIndex(m.drag.target, len(m.rows))
	}
}

func (m *EditorModel) moveCursor(delta int) {
	if len(m.rows) == 0 {
		return
	}
	m.cursor = entity.ClampIndex(m.cursor+delta, len(m.rows)-1)
	row := m.rows[m.cursor]
	if row.Node == nil {
		return
	}
	sel := row.Selection()
	m.editor.Select(&sel)
}

func (m *EditorModel) beginDrag() {
	if !m.state.Editable || m.cursor >= len(m.rows) {
		return
	}
	row := m.rows[m.cursor]
	zone := dnd.ZoneID(m.state.Tab, row.Container)

	var (
		id   string
		kind = entity.DropGeneral
	)
	switch {
	case row.Item != nil:
		id = dnd.ReorderID(row.Index, dnd.ItemDragType)
		kind = entity.DropListReorder
		if last := row.Container[len(row.Container)-1]; last.String() == entity.KeyTabs {
			kind = entity.DropTabsReorder
		}
	default:
		id = dnd.DraggableID(row.Container, row.Index, row.Node)
	}

	if err := m.editor.BeginDrag(m.ctx, id, entity.Location{ZoneID: zone, Index: row.Index}, nil); err != nil {
		m.setErr(err)
		return
	}
	m.drag = &dragState{kind: kind, target: m.cursor}
	m.status = ""
	m.hoverTarget()
}

func (m *EditorModel) moveTarget(delta int) {
	m.drag.target = entity.ClampIndex(m.drag.target+delta, len(m.rows))
	m.hoverTarget()
}

// targetLocation maps the target row to the zone and index a release
// there would report.
func (m *EditorModel) targetLocation() entity.Location {
	if m.drag.target >= len(m.rows) {
		tab := m.view.Tab(m.state.Tab)
		n := 0
		if tab != nil {
			n = len(tab.Panels)
		}
		return entity.Location{ZoneID: dnd.ZoneID(m.state.Tab, nil), Index: n}
	}
	row := m.rows[m.drag.target]
	return entity.Location{ZoneID: dnd.ZoneID(m.state.Tab, row.Container), Index: row.Index}
}

func (m *EditorModel) hoverTarget() {
	m.editor.MoveDrag([]port.HitElement{{ZoneID: m.targetLocation().ZoneID}})
}

// hoverTab rests the dragged item on a tab header. The switch happens
// when the hover delay elapses and arrives as a RefreshMsg.
func (m *EditorModel) hoverTab(index int) {
	if index < 0 || m.view == nil || index >= len(m.view.Tabs) {
		return
	}
	m.editor.MoveDrag([]port.HitElement{{TabPrefix: dnd.TabBarPrefix, TabValue: strconv.Itoa(index)}})
	m.status = fmt.Sprintf("hold to switch to tab %d", index+1)
}

func (m *EditorModel) endDrag() {
	// A tab switch during the drag leaves the pointer on the tab bar.
	m.hoverTarget()
	loc := m.targetLocation()
	var dest *entity.Location
	if m.editor.State().Droppable == loc.ZoneID {
		dest = &loc
	}
	kind := m.drag.kind
	m.drag = nil

	out, err := m.editor.EndDrag(m.ctx, kind, dest)
	if err != nil {
		m.setErr(err)
		return
	}
	m.status = m.renderer.RenderDrop(out)
}

// View implements tea.Model.
func (m EditorModel) View() string {
	if m.confirm != nil {
		return m.confirm.View()
	}

	t := m.theme
	var b strings.Builder

	b.WriteString(m.renderHeader())
	b.WriteString("\n")
	if m.view != nil {
		b.WriteString(m.renderer.RenderTabBar(m.view, m.state.Tab))
		b.WriteString("\n\n")
		b.WriteString(m.renderer.RenderTab(m.view, m.state.Tab, m.marks()))
		b.WriteString("\n")
		if m.drag != nil && m.drag.target >= len(m.rows) {
			b.WriteString(t.DropTarget.Render(styles.IconGrab + " drop at the end of the tab "))
			b.WriteString("\n")
		}
	}
	b.WriteString("\n")

	if m.err != nil {
		b.WriteString(t.ErrorStyle.Render(fmt.Sprintf("%s Error: %v", styles.IconX, m.err)))
		b.WriteString("\n")
	}
	if m.status != "" {
		b.WriteString(m.status)
		b.WriteString("\n")
	}

	b.WriteString(m.help.View(m.keys))
	return b.String()
}

func (m EditorModel) marks() styles.TreeMarks {
	marks := styles.TreeMarks{Cursor: m.cursor, Target: -1}
	if m.state.Selected != nil {
		marks.Selected = m.state.Selected.String()
	}
	if m.drag != nil {
		marks.Cursor = -1
		marks.Target = m.drag.target
	}
	return marks
}

func (m EditorModel) renderHeader() string {
	t := m.theme

	iconStyle := lipgloss.NewStyle().Foreground(t.Accent)
	title := t.Title.MarginLeft(1).Render("Layout editor")

	mode := t.BadgeMuted.Render("view")
	if m.state.Editable {
		mode = t.Badge.Render("edit")
	}
	header := iconStyle.Render(styles.IconPanel) + title + "  " + mode
	if m.drag != nil {
		header += "  " + t.DropTarget.Render(styles.IconGrab+" "+m.state.Dragging)
	}
	return header
}
