// Package cli provides the rclayout command-line editor.
package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/mattn/go-isatty"

	"github.com/bnema/rclayout/internal/application/port"
	"github.com/bnema/rclayout/internal/application/usecase"
	"github.com/bnema/rclayout/internal/cli/styles"
	"github.com/bnema/rclayout/internal/domain/repository"
	"github.com/bnema/rclayout/internal/infrastructure/config"
	"github.com/bnema/rclayout/internal/infrastructure/persistence/sqlite"
	"github.com/bnema/rclayout/internal/infrastructure/viewstore"
	"github.com/bnema/rclayout/internal/logging"
	"github.com/bnema/rclayout/internal/ui/coordinator"
	"github.com/bnema/rclayout/internal/ui/dnd"
)

// ErrNoConfigManager is returned by config commands when the config
// directory could not be resolved.
var ErrNoConfigManager = errors.New("configuration manager unavailable")

// Options are the global flags that shape the App.
type Options struct {
	// Preset overrides editor.default_preset.
	Preset string
	// Yes answers every confirmation prompt with yes.
	Yes bool
}

// App holds CLI dependencies.
type App struct {
	Config   *config.Config
	Manager  *config.Manager
	Theme    *styles.Theme
	Renderer *styles.ViewRenderer

	db    port.DatabaseProvider
	Views repository.ViewRepository
	Store *viewstore.Store
	Zones *dnd.Registry

	Confirmer port.Confirmer

	// Use cases
	ResolveDropUC  *usecase.ResolveDropUseCase
	ManageTabsUC   *usecase.ManageTabsUseCase
	DeleteWidgetUC *usecase.DeleteWidgetUseCase
	GetSchemaUC    *usecase.GetSchemaUseCase

	Editor *coordinator.EditorCoordinator

	// Context with logger
	ctx context.Context
}

// NewApp creates a new CLI application with all dependencies. The
// database is opened on first use.
func NewApp(opts Options) (*App, error) {
	mgr, cfg := loadConfig()

	logger := logging.NewFromConfigValues(cfg.Logging.Level, logFormat(cfg.Logging.Format))
	ctx := logging.WithContext(context.Background(), logger)

	preset := strings.TrimSpace(opts.Preset)
	if preset == "" {
		preset = cfg.Editor.DefaultPreset
	}
	if preset == "" {
		return nil, viewstore.ErrPresetRequired
	}

	theme := styles.NewTheme()
	db := sqlite.NewLazyDB(cfg.Database.Path)
	views := sqlite.NewLazyViewRepository(db)
	store := viewstore.New(views, preset)
	zones := dnd.NewRegistry()
	confirmer := newConfirmer(theme, cfg, opts)

	resolveUC := usecase.NewResolveDropUseCase(store, zones)
	tabsUC := usecase.NewManageTabsUseCase(store, confirmer, tabIcon(cfg.Editor.NewTabIcon))
	deleteUC := usecase.NewDeleteWidgetUseCase(store, confirmer)

	editor := coordinator.NewEditorCoordinator(ctx, coordinator.EditorCoordinatorConfig{
		Store:      store,
		Registry:   zones,
		Resolver:   resolveUC,
		TabsUC:     tabsUC,
		DeleteUC:   deleteUC,
		HoverDelay: cfg.Editor.HoverDelay(),
	})

	logger.Debug().
		Str("preset", preset).
		Str("db_path", db.Path()).
		Msg("cli app ready")

	return &App{
		Config:         cfg,
		Manager:        mgr,
		Theme:          theme,
		Renderer:       styles.NewViewRenderer(theme),
		db:             db,
		Views:          views,
		Store:          store,
		Zones:          zones,
		Confirmer:      confirmer,
		ResolveDropUC:  resolveUC,
		ManageTabsUC:   tabsUC,
		DeleteWidgetUC: deleteUC,
		GetSchemaUC:    usecase.NewGetSchemaUseCase(config.NewSchemaProvider()),
		Editor:         editor,
		ctx:            ctx,
	}, nil
}

// newConfirmer picks how destructive edits are confirmed: --yes and a
// disabled editor.confirm_deletes skip prompts, a non-terminal stdin
// declines them.
func newConfirmer(theme *styles.Theme, cfg *config.Config, opts Options) port.Confirmer {
	switch {
	case opts.Yes || !cfg.Editor.ConfirmDeletes:
		return AutoConfirmer(true)
	case !isatty.IsTerminal(os.Stdin.Fd()) && !isatty.IsCygwinTerminal(os.Stdin.Fd()):
		return AutoConfirmer(false)
	default:
		return NewTeaConfirmer(theme)
	}
}

// Close releases all resources.
func (a *App) Close() error {
	if a.Store != nil {
		a.Store.Close()
	}
	if a.db != nil {
		return a.db.Close()
	}
	return nil
}

// Ctx returns the application context with logger.
func (a *App) Ctx() context.Context {
	return a.ctx
}

// DBPath returns the database file backing the views.
func (a *App) DBPath() string {
	return a.db.Path()
}

// Open loads the current view and mounts the zones of tab.
func (a *App) Open(tab int) error {
	if err := a.Editor.ChangeTab(a.ctx, tab); err != nil {
		return fmt.Errorf("open tab %d: %w", tab, err)
	}
	return nil
}

// loadConfig loads configuration from standard locations. A broken
// config file falls back to defaults so the editor stays usable.
func loadConfig() (*config.Manager, *config.Config) {
	mgr, err := config.NewManager()
	if err != nil {
		return nil, withDatabasePath(config.DefaultConfig())
	}
	if err := mgr.Load(); err != nil {
		log := logging.NewFromEnv()
		log.Warn().Err(err).Msg("using default configuration")
		return mgr, withDatabasePath(config.DefaultConfig())
	}
	return mgr, mgr.Get()
}

func withDatabasePath(cfg *config.Config) *config.Config {
	if cfg.Database.Path == "" {
		if path, err := config.GetDatabaseFile(); err == nil {
			cfg.Database.Path = path
		}
	}
	return cfg
}

// logFormat maps the config format to the logger format.
func logFormat(format string) string {
	if format == "json" {
		return "json"
	}
	return "console"
}
