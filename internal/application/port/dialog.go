package port

import "context"

// Confirmer asks the user to confirm a destructive edit.
type Confirmer interface {
	Confirm(ctx context.Context, message string) (bool, error)
}

// IconPicker supplies an icon identifier for newly created tabs.
type IconPicker interface {
	PickIcon() string
}
