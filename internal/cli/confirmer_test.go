package cli

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/rclayout/internal/cli/styles"
	"github.com/bnema/rclayout/internal/infrastructure/config"
)

func TestAutoConfirmer(t *testing.T) {
	ok, err := AutoConfirmer(true).Confirm(context.Background(), "Delete?")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = AutoConfirmer(false).Confirm(context.Background(), "Delete?")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestTabIcon(t *testing.T) {
	assert.Equal(t, "bolt", tabIcon("bolt").PickIcon())
	assert.Empty(t, tabIcon("").PickIcon())
}

func TestNewConfirmer_SkipsPrompts(t *testing.T) {
	theme := styles.NewTheme()

	cfg := config.DefaultConfig()
	assert.Equal(t, AutoConfirmer(true), newConfirmer(theme, cfg, Options{Yes: true}))

	cfg.Editor.ConfirmDeletes = false
	assert.Equal(t, AutoConfirmer(true), newConfirmer(theme, cfg, Options{}))
}
