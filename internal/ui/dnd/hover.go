package dnd

import (
	"sync"
	"time"

	"github.com/bnema/rclayout/internal/application/port"
	"github.com/bnema/rclayout/internal/domain/entity"
	"github.com/bnema/rclayout/internal/ui/mainloop"
)

// DefaultHoverDelay is how long a drag must rest on a tab header before
// the tab switches.
const DefaultHoverDelay = 300 * time.Millisecond

// HoverListener receives the reports of a HoverTracker. Reports are
// deduplicated: the same report is never delivered twice in a row.
type HoverListener interface {
	ZoneChanged(zone entity.Zone)
	NoEligibleZone(zoneID string)
	NoTarget()
	// TabHover fires once the pointer rested on a tab-switch target.
	TabHover(prefix, value string)
}

type reportKind int

const (
	reportNone reportKind = iota
	reportZone
	reportIneligible
	reportNoTarget
)

type report struct {
	kind   reportKind
	zoneID string
}

// HoverTracker resolves pointer samples of an active drag to drop zones
// and debounced tab hovers.
type HoverTracker struct {
	mu       sync.Mutex
	zones    port.ZoneLookup
	listener HoverListener
	debounce *mainloop.Debouncer

	dragging bool
	item     entity.DragItem
	last     report
}

// HoverOption configures a HoverTracker.
type HoverOption func(*hoverOptions)

type hoverOptions struct {
	delay time.Duration
	after mainloop.AfterFunc
}

// WithHoverDelay overrides DefaultHoverDelay.
func WithHoverDelay(d time.Duration) HoverOption {
	return func(o *hoverOptions) { o.delay = d }
}

// WithAfterFunc replaces the timer used for the tab-hover delay.
func WithAfterFunc(after mainloop.AfterFunc) HoverOption {
	return func(o *hoverOptions) { o.after = after }
}

func NewHoverTracker(zones port.ZoneLookup, listener HoverListener, opts ...HoverOption) *HoverTracker {
	o := hoverOptions{delay: DefaultHoverDelay}
	for _, opt := range opts {
		opt(&o)
	}
	return &HoverTracker{
		zones:    zones,
		listener: listener,
		debounce: mainloop.NewDebouncer(o.delay, o.after),
	}
}

// Start enters the dragging state for item.
func (h *HoverTracker) Start(item entity.DragItem) {
	h.mu.Lock()
	h.dragging = true
	h.item = item
	h.last = report{}
	h.mu.Unlock()
	h.debounce.Cancel()
}

// End leaves the dragging state. A pending tab hover never fires afterwards.
func (h *HoverTracker) End() {
	h.debounce.Cancel()
	h.mu.Lock()
	h.dragging = false
	h.last = report{}
	h.mu.Unlock()
}

// Dragging reports whether a drag is being tracked.
func (h *HoverTracker) Dragging() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.dragging
}

// Droppable returns the id of the eligible zone under the pointer.
func (h *HoverTracker) Droppable() (string, bool) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.last.kind != reportZone {
		return "", false
	}
	return h.last.zoneID, true
}

// MoveTo samples the elements under x, y.
func (h *HoverTracker) MoveTo(hits port.HitTester, x, y float64) {
	if hits == nil {
		return
	}
	h.Move(hits.ElementsAt(x, y))
}

// Move handles one pointer sample. elements are ordered topmost first.
func (h *HoverTracker) Move(elements []port.HitElement) {
	h.mu.Lock()
	if !h.dragging {
		h.mu.Unlock()
		return
	}
	item := h.item
	h.mu.Unlock()

	// Every sample supersedes a pending tab hover.
	h.debounce.Cancel()

	for _, el := range elements {
		if el.IsTabTarget() {
			prefix, value := el.TabPrefix, el.TabValue
			h.debounce.Trigger(func() { h.fireTabHover(prefix, value) })
			return
		}
	}

	var zoneID string
	for _, el := range elements {
		if el.ZoneID != "" {
			zoneID = el.ZoneID
			break
		}
	}
	if zoneID == "" {
		h.emit(report{kind: reportNoTarget}, entity.Zone{})
		return
	}

	zone, ok := h.lookup(zoneID)
	if !ok || !zone.Accept.Accepts(item.Type) {
		h.emit(report{kind: reportIneligible, zoneID: zoneID}, entity.Zone{})
		return
	}
	h.emit(report{kind: reportZone, zoneID: zoneID}, zone)
}

func (h *HoverTracker) lookup(id string) (entity.Zone, bool) {
	if h.zones == nil {
		return entity.Zone{}, false
	}
	return h.zones.Lookup(id)
}

func (h *HoverTracker) emit(r report, zone entity.Zone) {
	h.mu.Lock()
	if !h.dragging || h.last == r {
		h.mu.Unlock()
		return
	}
	h.last = r
	listener := h.listener
	h.mu.Unlock()

	if listener == nil {
		return
	}
	switch r.kind {
	case reportZone:
		listener.ZoneChanged(zone)
	case reportIneligible:
		listener.NoEligibleZone(r.zoneID)
	case reportNoTarget:
		listener.NoTarget()
	}
}

func (h *HoverTracker) fireTabHover(prefix, value string) {
	h.mu.Lock()
	active := h.dragging
	listener := h.listener
	h.mu.Unlock()

	if active && listener != nil {
		listener.TabHover(prefix, value)
	}
}

// SetDelay changes the tab-hover delay for later samples.
func (h *HoverTracker) SetDelay(d time.Duration) {
	h.debounce.SetDelay(d)
}
