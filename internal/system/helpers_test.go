// internal/system/helpers_test.go
package system

import (
	"go-wyrm-hunt/internal/component"
	"go-wyrm-hunt/internal/config"
	"go-wyrm-hunt/internal/entity"
	"go-wyrm-hunt/internal/event"
	"go-wyrm-hunt/internal/types"
)

// newTestState собирает состояние с геометрией боевой карты.
// Убежище по умолчанию выключено, чтобы не мешать зонным тестам.
func newTestState() *entity.State {
	st := &entity.State{Level: 1, SpeedMultiplier: 1}
	st.Volcanic.Bounds = types.Rect{X: 0, Y: 0, W: config.ZoneWidth, H: config.ZoneHeight}
	st.Glacial.Bounds = types.Rect{X: config.ZoneWidth, Y: 0, W: config.ZoneWidth, H: config.ZoneHeight}
	st.Canopy.Bounds = types.Rect{X: 0, Y: config.ZoneHeight, W: config.ZoneWidth, H: config.ZoneHeight}
	st.Reef.Bounds = types.Rect{X: config.ZoneWidth, Y: config.ZoneHeight, W: config.ZoneWidth, H: config.ZoneHeight}
	st.SafeZone = component.SafeZone{
		CenterX:      config.MapWidth / 2,
		CenterY:      config.MapHeight / 2,
		Radius:       config.SafeZoneRadius,
		MaxUses:      config.SafeZoneMaxUses,
		Active:       false,
		PlayerInside: true,
	}
	return st
}

func testPlayer(x, y float64) *component.Player {
	return &component.Player{X: x, Y: y, Radius: config.PlayerRadius}
}

// eventRecorder копит события для ассертов.
type eventRecorder struct {
	events []event.Event
}

func (r *eventRecorder) OnEvent(e event.Event) {
	r.events = append(r.events, e)
}

func (r *eventRecorder) count(t event.EventType) int {
	n := 0
	for _, e := range r.events {
		if e.Type == t {
			n++
		}
	}
	return n
}

func recordAll(d *event.Dispatcher) *eventRecorder {
	r := &eventRecorder{}
	for _, t := range []event.EventType{
		event.EggCollected, event.SafeZoneUsed, event.SafeZoneDepleted,
		event.EnemySplit, event.PlayerKilled, event.LevelCleared,
	} {
		d.Subscribe(t, r)
	}
	return r
}
