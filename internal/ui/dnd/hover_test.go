package dnd

import (
	"sync"
	"testing"
	"time"

	"github.com/bnema/rclayout/internal/application/port"
	"github.com/bnema/rclayout/internal/domain/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingListener struct {
	mu     sync.Mutex
	events []string
}

func (l *recordingListener) add(e string) {
	l.mu.Lock()
	l.events = append(l.events, e)
	l.mu.Unlock()
}

func (l *recordingListener) ZoneChanged(zone entity.Zone) { l.add("zone:" + zone.ID) }
func (l *recordingListener) NoEligibleZone(zoneID string) { l.add("ineligible:" + zoneID) }
func (l *recordingListener) NoTarget()                    { l.add("none") }
func (l *recordingListener) TabHover(prefix, value string) {
	l.add("tab:" + prefix + "_" + value)
}

func (l *recordingListener) Events() []string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]string(nil), l.events...)
}

// manualTimers lets tests fire scheduled callbacks in order.
type manualTimers struct {
	mu     sync.Mutex
	delays []time.Duration
	fns    []func()
	live   []bool
}

func (m *manualTimers) AfterFunc(d time.Duration, fn func()) func() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	i := len(m.fns)
	m.delays = append(m.delays, d)
	m.fns = append(m.fns, fn)
	m.live = append(m.live, true)
	return func() bool {
		m.mu.Lock()
		defer m.mu.Unlock()
		was := m.live[i]
		m.live[i] = false
		return was
	}
}

// elapse fires every timer still live, as if the delay passed.
func (m *manualTimers) elapse() {
	m.mu.Lock()
	var due []func()
	for i, fn := range m.fns {
		if m.live[i] {
			m.live[i] = false
			due = append(due, fn)
		}
	}
	m.mu.Unlock()
	for _, fn := range due {
		fn()
	}
}

func hoverZones() *Registry {
	reg := NewRegistry()
	reg.Register("any", nil, entity.AcceptEverything(), entity.ZoneRoot)
	reg.Register("toggles", entity.ParsePath("0.widgets"), entity.AcceptWidgetTypes(entity.WidgetToggle), entity.ZoneWidgets)
	return reg
}

func tabHit(value string) []port.HitElement {
	return []port.HitElement{{TabPrefix: TabBarPrefix, TabValue: value}}
}

func zoneHit(id string) []port.HitElement {
	return []port.HitElement{{}, {ZoneID: id}}
}

func TestHoverTracker_ZoneEligibility(t *testing.T) {
	l := &recordingListener{}
	h := NewHoverTracker(hoverZones(), l)
	h.Start(entity.ParseDragItem("0.widgets_1_Dial"))

	h.Move(zoneHit("any"))
	h.Move(zoneHit("any"))
	h.Move(zoneHit("toggles"))
	h.Move(zoneHit("unknown"))
	h.Move(nil)
	h.Move(nil)

	assert.Equal(t, []string{"zone:any", "ineligible:toggles", "ineligible:unknown", "none"}, l.Events())
	_, ok := h.Droppable()
	assert.False(t, ok)
}

func TestHoverTracker_DroppableTracksEligibleZone(t *testing.T) {
	h := NewHoverTracker(hoverZones(), nil)
	h.Start(entity.ParseDragItem("palette_Toggle"))

	h.Move(zoneHit("toggles"))
	id, ok := h.Droppable()
	require.True(t, ok)
	assert.Equal(t, "toggles", id)
}

func TestHoverTracker_IgnoresSamplesWhenIdle(t *testing.T) {
	l := &recordingListener{}
	h := NewHoverTracker(hoverZones(), l)

	h.Move(zoneHit("any"))
	assert.Empty(t, l.Events())
	assert.False(t, h.Dragging())
}

func TestHoverTracker_TabHoverDebounce(t *testing.T) {
	timers := &manualTimers{}
	l := &recordingListener{}
	h := NewHoverTracker(hoverZones(), l, WithAfterFunc(timers.AfterFunc))
	h.Start(entity.ParseDragItem("0.widgets_0_Toggle"))

	h.Move(tabHit("0"))
	h.Move(tabHit("1"))
	h.Move(tabHit("2"))
	timers.elapse()

	assert.Equal(t, []string{"tab:" + TabBarPrefix + "_2"}, l.Events())
	for _, d := range timers.delays {
		assert.Equal(t, DefaultHoverDelay, d)
	}
}

func TestHoverTracker_EndCancelsPendingTabHover(t *testing.T) {
	timers := &manualTimers{}
	l := &recordingListener{}
	h := NewHoverTracker(hoverZones(), l, WithAfterFunc(timers.AfterFunc))
	h.Start(entity.ParseDragItem("0.widgets_0_Toggle"))

	h.Move(tabHit("1"))
	h.End()
	timers.elapse()

	assert.Empty(t, l.Events())
}

func TestHoverTracker_ZoneSampleSupersedesTabHover(t *testing.T) {
	timers := &manualTimers{}
	l := &recordingListener{}
	h := NewHoverTracker(hoverZones(), l, WithAfterFunc(timers.AfterFunc))
	h.Start(entity.ParseDragItem("0.widgets_0_Toggle"))

	h.Move(tabHit("1"))
	h.Move(zoneHit("any"))
	timers.elapse()

	assert.Equal(t, []string{"zone:any"}, l.Events())
}

func TestHoverTracker_RealTimerDebounce(t *testing.T) {
	l := &recordingListener{}
	h := NewHoverTracker(hoverZones(), l, WithHoverDelay(20*time.Millisecond))
	h.Start(entity.ParseDragItem("0.widgets_0_Toggle"))

	for _, v := range []string{"0", "1", "2", "3"} {
		h.Move(tabHit(v))
	}

	require.Eventually(t, func() bool { return len(l.Events()) == 1 }, time.Second, 5*time.Millisecond)
	time.Sleep(40 * time.Millisecond)
	assert.Equal(t, []string{"tab:" + TabBarPrefix + "_3"}, l.Events())
}
