// internal/system/safe_zone.go
package system

import (
	"go-wyrm-hunt/internal/component"
	"go-wyrm-hunt/internal/config"
	"go-wyrm-hunt/internal/entity"
	"go-wyrm-hunt/internal/event"
)

// SafeZoneSystem управляет убежищем: расход входов, усадка радиуса и
// выталкивание врагов. Обновляется каждый кадр, даже до первого шага игрока.
type SafeZoneSystem struct {
	state      *entity.State
	dispatcher *event.Dispatcher
}

func NewSafeZoneSystem(state *entity.State, dispatcher *event.Dispatcher) *SafeZoneSystem {
	return &SafeZoneSystem{state: state, dispatcher: dispatcher}
}

// Update детектирует новый вход игрока (фронт снаружи→внутрь, не уровень).
// Каждый вход тратит использование и усаживает радиус на 20%.
func (s *SafeZoneSystem) Update(player *component.Player) {
	sz := &s.state.SafeZone
	if !sz.Active {
		return
	}
	inside := Dist(player.X, player.Y, sz.CenterX, sz.CenterY) < sz.Radius
	if inside && !sz.PlayerInside {
		sz.Uses++
		sz.Radius *= config.SafeZoneShrink
		s.dispatcher.Dispatch(event.Event{Type: event.SafeZoneUsed, Data: sz.UsesRemaining()})
		if sz.Uses >= sz.MaxUses || sz.Radius < config.SafeZoneMinRadius {
			sz.Active = false
			s.dispatcher.Dispatch(event.Event{Type: event.SafeZoneDepleted})
		}
	}
	sz.PlayerInside = inside
}

// Repel выталкивает врага на границу убежища вдоль вектора центр→враг.
// Зовётся после шага движения зоны: коррекция, а не ограничение — враг
// не может закончить кадр внутри.
func (s *SafeZoneSystem) Repel(core *component.EnemyCore) {
	sz := &s.state.SafeZone
	if !sz.Active {
		return
	}
	core.X, core.Y, _ = PushOutOfCircle(core.X, core.Y, core.Radius, sz.CenterX, sz.CenterY, sz.Radius)
}
