package styles_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/bnema/rclayout/internal/cli/styles"
	"github.com/bnema/rclayout/internal/domain/entity"
)

func TestConfigRenderer_RenderConfigInfo(t *testing.T) {
	r := styles.NewConfigRenderer(styles.NewTheme())

	out := r.RenderConfigInfo("/tmp/rclayout/config.toml", "/tmp/rclayout/rclayout.sqlite")
	require.Contains(t, out, "config.toml")
	require.Contains(t, out, "rclayout.sqlite")
}

func TestConfigRenderer_RenderSet(t *testing.T) {
	r := styles.NewConfigRenderer(styles.NewTheme())

	out := r.RenderSet("editor.hover_delay_ms", 150, "/tmp/rclayout/config.toml")
	require.Contains(t, out, "editor.hover_delay_ms")
	require.Contains(t, out, "150")
	require.Contains(t, out, "config.toml")
	require.NotContains(t, out, "/tmp/rclayout")
}

func TestConfigRenderer_RenderError(t *testing.T) {
	r := styles.NewConfigRenderer(styles.NewTheme())
	require.Contains(t, r.RenderError(errors.New("boom")), "boom")
	require.Contains(t, r.RenderReloaded(300, "debug"), "300ms")
}

func TestConfigSchemaRenderer_Render(t *testing.T) {
	r := styles.NewConfigSchemaRenderer(styles.NewTheme())
	keys := []entity.ConfigKeyInfo{
		{Key: "logging.level", Type: "string", Default: "info", Values: []string{"debug", "info"}, Section: "Logging"},
		{Key: "editor.hover_delay_ms", Type: "int", Default: "300", Range: "0-5000", Section: "Editor"},
		{Key: "extra.flag", Type: "bool", Default: "false", Section: "Extra"},
	}

	t.Run("sections in order", func(t *testing.T) {
		out := r.Render(keys, nil)
		editor := strings.Index(out, "Editor")
		logging := strings.Index(out, "Logging")
		extra := strings.Index(out, "Extra")
		require.True(t, editor >= 0 && logging > editor && extra > logging)
		require.Contains(t, out, "0-5000")
		require.Contains(t, out, "debug, info")
		require.NotContains(t, out, "CURRENT")
	})

	t.Run("marks changed values", func(t *testing.T) {
		out := r.Render(keys, map[string]string{
			"logging.level":         "info",
			"editor.hover_delay_ms": "800",
			"extra.flag":            "false",
		})
		require.Contains(t, out, "CURRENT")
		require.Contains(t, out, styles.IconEdit+" 800")
		require.NotContains(t, out, styles.IconEdit+" info")
	})

	t.Run("empty", func(t *testing.T) {
		require.Contains(t, r.Render(nil, nil), "No configuration keys found")
	})
}
