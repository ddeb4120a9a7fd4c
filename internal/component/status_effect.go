// internal/component/status_effect.go
package component

import "math"

// EffectType — тег статус-эффекта. Словарь общий для ядра и внешних
// способностей: чужой эффект с незнакомым тегом просто игнорируется.
type EffectType string

const (
	EffectFreeze        EffectType = "freeze"
	EffectStun          EffectType = "stun"
	EffectSlow          EffectType = "slow"
	EffectPermanentSlow EffectType = "permanentSlow"
	EffectDead          EffectType = "dead"
)

// StatusEffect — модификатор с временем жизни. Duration == +Inf означает
// постоянный эффект, он никогда не вычищается.
type StatusEffect struct {
	Type       EffectType
	Duration   float64
	Multiplier float64 // только для slow/permanentSlow
}

// Permanent возвращает бесконечную длительность для постоянных эффектов.
func Permanent() float64 {
	return math.Inf(1)
}

// TickEffects уменьшает таймеры и вычищает истёкшие эффекты.
// Срез модифицируется на месте; nil-срез — допустимый no-op.
func TickEffects(effects []StatusEffect, dt float64) []StatusEffect {
	out := effects[:0]
	for i := range effects {
		e := effects[i]
		if !math.IsInf(e.Duration, 1) {
			e.Duration -= dt
			if e.Duration <= 0 {
				continue
			}
		}
		out = append(out, e)
	}
	return out
}

// MovementBlocked сообщает, запрещает ли какой-либо эффект движение.
func MovementBlocked(effects []StatusEffect) bool {
	for i := range effects {
		switch effects[i].Type {
		case EffectFreeze, EffectStun:
			return true
		}
	}
	return false
}

// SpeedMultiplier перемножает все множители замедления. Эффекты
// складываются мультипликативно, порядок не важен.
func SpeedMultiplier(effects []StatusEffect) float64 {
	mult := 1.0
	for i := range effects {
		switch effects[i].Type {
		case EffectSlow, EffectPermanentSlow:
			if effects[i].Multiplier > 0 {
				mult *= effects[i].Multiplier
			}
		}
	}
	return mult
}

// HasEffect проверяет наличие эффекта с данным тегом.
func HasEffect(effects []StatusEffect, t EffectType) bool {
	for i := range effects {
		if effects[i].Type == t {
			return true
		}
	}
	return false
}
