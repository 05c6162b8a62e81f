// Package dnd holds the drag and drop machinery of the layout editor:
// the drop-zone registry, the pointer-hover tracker and the drag controller.
package dnd

import (
	"sort"
	"sync"

	"github.com/bnema/rclayout/internal/domain/entity"
)

// Registry maps drop-zone ids to their metadata. Entries are overwritten
// on every render pass, so lookups must tolerate stale or missing ids.
type Registry struct {
	mu    sync.RWMutex
	zones map[string]entity.Zone
}

// Default is the process-wide registry used by the editor.
var Default = NewRegistry()

func NewRegistry() *Registry {
	return &Registry{zones: make(map[string]entity.Zone)}
}

// Register records a zone and returns its id.
func (r *Registry) Register(id string, path entity.Path, accept entity.AcceptFilter, kind entity.ZoneKind) string {
	r.mu.Lock()
	r.zones[id] = entity.Zone{ID: id, Path: path, Accept: accept, Kind: kind}
	r.mu.Unlock()
	return id
}

// Lookup returns the zone registered under id.
func (r *Registry) Lookup(id string) (entity.Zone, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	zone, ok := r.zones[id]
	return zone, ok
}

// Reset drops every registered zone.
func (r *Registry) Reset() {
	r.mu.Lock()
	r.zones = make(map[string]entity.Zone)
	r.mu.Unlock()
}

// Len returns the number of registered zones.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.zones)
}

// Zones returns the registered zones ordered by id.
func (r *Registry) Zones() []entity.Zone {
	r.mu.RLock()
	out := make([]entity.Zone, 0, len(r.zones))
	for _, z := range r.zones {
		out = append(out, z)
	}
	r.mu.RUnlock()

	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}
