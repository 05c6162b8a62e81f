package port

import "github.com/bnema/rclayout/internal/domain/entity"

// ZoneLookup resolves a drop-zone id to its registered metadata.
// Implementations return false for unknown or stale ids.
type ZoneLookup interface {
	Lookup(id string) (entity.Zone, bool)
}
