package cli

import (
	"context"

	"github.com/bnema/rclayout/internal/application/port"
	"github.com/bnema/rclayout/internal/cli/styles"
)

// TeaConfirmer asks for confirmation with an inline bubbletea dialog.
type TeaConfirmer struct {
	theme *styles.Theme
}

// NewTeaConfirmer creates a new TeaConfirmer.
func NewTeaConfirmer(theme *styles.Theme) *TeaConfirmer {
	return &TeaConfirmer{theme: theme}
}

// Confirm implements port.Confirmer.
func (c *TeaConfirmer) Confirm(ctx context.Context, message string) (bool, error) {
	return styles.RunConfirm(ctx, c.theme, message)
}

// AutoConfirmer answers every prompt with a fixed value. It backs --yes
// and non-interactive runs.
type AutoConfirmer bool

// Confirm implements port.Confirmer.
func (a AutoConfirmer) Confirm(context.Context, string) (bool, error) {
	return bool(a), nil
}

// tabIcon picks the configured icon for new tabs.
type tabIcon string

// PickIcon implements port.IconPicker.
func (t tabIcon) PickIcon() string {
	return string(t)
}

var (
	_ port.Confirmer  = (*TeaConfirmer)(nil)
	_ port.Confirmer  = AutoConfirmer(false)
	_ port.IconPicker = tabIcon("")
)
