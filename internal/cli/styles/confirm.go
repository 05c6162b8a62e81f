package styles

import (
	"context"
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// ConfirmModel asks yes or no before a destructive edit. It starts on No.
type ConfirmModel struct {
	Message string
	// Detail names what the edit affects, e.g. the selected widget.
	Detail string

	yes       bool
	confirmed bool
	canceled  bool
	keys      confirmKeyMap
	help      help.Model
	theme     *Theme
}

type confirmKeyMap struct {
	Yes     key.Binding
	No      key.Binding
	Toggle  key.Binding
	Confirm key.Binding
	Cancel  key.Binding
}

func (k confirmKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Yes, k.No, k.Toggle, k.Confirm, k.Cancel}
}

func (k confirmKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

// NewConfirm creates a confirmation dialog for message.
func NewConfirm(theme *Theme, message string) ConfirmModel {
	h := help.New()
	h.Styles.ShortKey = theme.Normal
	h.Styles.ShortDesc = theme.Subtle
	h.Styles.ShortSeparator = theme.Subtle

	return ConfirmModel{
		Message: message,
		theme:   theme,
		help:    h,
		keys: confirmKeyMap{
			Yes:     key.NewBinding(key.WithKeys("y"), key.WithHelp("y", "yes")),
			No:      key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "no")),
			Toggle:  key.NewBinding(key.WithKeys("left", "right", "h", "l", "tab"), key.WithHelp("←/→", "switch")),
			Confirm: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "confirm")),
			Cancel:  key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel")),
		},
	}
}

// WithDetail returns a copy showing detail under the message.
func (m ConfirmModel) WithDetail(detail string) ConfirmModel {
	m.Detail = detail
	return m
}

// Init implements tea.Model.
func (m ConfirmModel) Init() tea.Cmd {
	return nil
}

// Update handles a key. Other messages are ignored.
func (m ConfirmModel) Update(msg tea.Msg) (ConfirmModel, tea.Cmd) {
	k, ok := msg.(tea.KeyMsg)
	if !ok || m.Done() {
		return m, nil
	}

	switch {
	case key.Matches(k, m.keys.Yes):
		m.yes = true
	case key.Matches(k, m.keys.No):
		m.yes = false
	case key.Matches(k, m.keys.Toggle):
		// left/h select No and right/l select Yes; tab flips.
		switch k.String() {
		case "left", "h":
			m.yes = false
		case "right", "l":
			m.yes = true
		default:
			m.yes = !m.yes
		}
	case key.Matches(k, m.keys.Confirm):
		m.confirmed = true
	case key.Matches(k, m.keys.Cancel):
		m.canceled = true
	}
	return m, nil
}

// View renders the dialog box.
func (m ConfirmModel) View() string {
	t := m.theme

	yesStyle, noStyle := t.InactiveTab, t.ActiveTab
	if m.yes {
		yesStyle, noStyle = t.ActiveTab, t.InactiveTab
	}
	buttons := lipgloss.JoinHorizontal(lipgloss.Center, noStyle.Render(" No "), "  ", yesStyle.Render(" Yes "))

	lines := []string{t.Title.Render(m.Message)}
	if m.Detail != "" {
		lines = append(lines, t.Subtle.Render(m.Detail))
	}
	lines = append(lines, "", buttons, "", m.help.View(m.keys))

	return t.Box.Render(lipgloss.JoinVertical(lipgloss.Center, lines...))
}

// Done reports whether the dialog was answered or dismissed.
func (m ConfirmModel) Done() bool {
	return m.confirmed || m.canceled
}

// Result reports whether the user confirmed Yes.
func (m ConfirmModel) Result() bool {
	return m.confirmed && m.yes
}

// confirmProgram runs a ConfirmModel as a standalone program.
type confirmProgram struct {
	confirm ConfirmModel
}

func (p confirmProgram) Init() tea.Cmd { return nil }

func (p confirmProgram) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if k, ok := msg.(tea.KeyMsg); ok && k.Type == tea.KeyCtrlC {
		p.confirm.canceled = true
		return p, tea.Quit
	}
	confirm, cmd := p.confirm.Update(msg)
	p.confirm = confirm
	if confirm.Done() {
		return p, tea.Quit
	}
	return p, cmd
}

func (p confirmProgram) View() string {
	if p.confirm.Done() {
		return ""
	}
	return p.confirm.View() + "\n"
}

// RunConfirm shows a confirmation dialog and blocks until it is answered
// or ctx ends.
func RunConfirm(ctx context.Context, theme *Theme, message string, opts ...tea.ProgramOption) (bool, error) {
	opts = append(opts, tea.WithContext(ctx))
	final, err := tea.NewProgram(confirmProgram{confirm: NewConfirm(theme, message)}, opts...).Run()
	if err != nil {
		return false, fmt.Errorf("run confirm dialog: %w", err)
	}
	p, ok := final.(confirmProgram)
	if !ok {
		return false, nil
	}
	return p.confirm.Result(), nil
}
