package port

import "github.com/bnema/rclayout/internal/domain/entity"

// SelectionListener is notified when the placed/selected item changes.
// A nil selection clears it.
type SelectionListener interface {
	SelectionChanged(sel *entity.Selection)
}

// ActiveTabListener is notified when the active tab index changes.
type ActiveTabListener interface {
	ActiveTabChanged(index int)
}
