package cmd

import (
	"context"
	"fmt"
	"io"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/bnema/rclayout/internal/cli"
	"github.com/bnema/rclayout/internal/cli/model"
	"github.com/bnema/rclayout/internal/domain/entity"
	"github.com/bnema/rclayout/internal/infrastructure/config"
	"github.com/bnema/rclayout/internal/logging"
	"github.com/bnema/rclayout/internal/ui/coordinator"
)

var editTab int

var editCmd = &cobra.Command{
	Use:   "edit",
	Short: "Edit the layout interactively",
	Long: `Open the layout editor in the terminal.

Press e to enter edit mode, space to grab the item under the cursor,
move with the arrows and drop with enter. While dragging, tab and
shift+tab rest the item on the neighbouring tab header; the editor
switches tabs once the hover delay elapses.`,
	Args: cobra.NoArgs,
	RunE: runEdit,
}

func init() {
	rootCmd.AddCommand(editCmd)
	editCmd.Flags().IntVarP(&editTab, "tab", "t", 0, "tab to open")
}

func runEdit(_ *cobra.Command, _ []string) error {
	a, err := requireApp()
	if err != nil {
		return err
	}
	if err := a.Open(editTab); err != nil {
		return err
	}

	ctx, logFile, err := editorLogContext(a)
	if err != nil {
		return err
	}
	defer logFile.Close()

	m := model.NewEditorModel(ctx, a.Theme, model.EditorModelConfig{
		Editor: a.Editor,
		Store:  a.Store,
	})
	p := tea.NewProgram(m, tea.WithAltScreen())

	// Callbacks fire on the drag, timer or watcher goroutines, or inside
	// Update itself; Send must never block them.
	refresh := func() { go p.Send(model.RefreshMsg{}) }

	a.Editor.SetOnChange(func(coordinator.EditorState) { refresh() })
	defer a.Editor.SetOnChange(nil)
	unsubscribe := a.Store.Subscribe(func(*entity.View) { refresh() })
	defer unsubscribe()

	if a.Manager != nil {
		a.Manager.OnConfigChange(func(cfg *config.Config) {
			a.Editor.SetHoverDelay(cfg.Editor.HoverDelay())
			refresh()
		})
		if err := a.Manager.Watch(); err != nil {
			logging.FromContext(ctx).Warn().Err(err).Msg("config watch unavailable")
		}
	}

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("editor: %w", err)
	}
	return nil
}

const (
	editorLogName       = "editor.log"
	editorLogMaxSize    = 5 << 20
	editorLogMaxBackups = 3
)

// editorLogContext sends logs to a rotating file while the editor owns
// the terminal.
func editorLogContext(a *cli.App) (context.Context, io.Closer, error) {
	dir, err := config.GetLogDir()
	if err != nil {
		return nil, nil, fmt.Errorf("resolve log dir: %w", err)
	}
	rotator, err := logging.NewLogRotator(logging.RotatorConfig{
		Dir:        dir,
		Name:       editorLogName,
		MaxSize:    editorLogMaxSize,
		MaxBackups: editorLogMaxBackups,
		Compress:   true,
	})
	if err != nil {
		return nil, nil, err
	}
	logger := logging.New(logging.Config{
		Level:  logging.ParseLevel(a.Config.Logging.Level),
		Format: "json",
		Output: rotator,
	})
	ctx := logging.WithComponent(logging.WithContext(a.Ctx(), logger), "editor")
	return ctx, rotator, nil
}
