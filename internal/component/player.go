// internal/component/player.go
package component

// Player — общая запись игрока. Ядро симуляции двигает её толчками и
// дописывает эффекты; перемещение по вводу и тик собственных эффектов —
// обязанность хозяйского цикла.
type Player struct {
	X, Y            float64
	Radius          float64
	Facing          float64 // угол в радианах, только для отрисовки
	AbilityCooldown float64
	ActiveEffects   []StatusEffect
}

// AddEffect дописывает эффект в список игрока.
func (p *Player) AddEffect(e StatusEffect) {
	p.ActiveEffects = append(p.ActiveEffects, e)
}

// TickEffects — покадровый тик эффектов игрока. Вызывается из хозяйского
// цикла, не из ядра.
func (p *Player) TickEffects(dt float64) {
	p.ActiveEffects = TickEffects(p.ActiveEffects, dt)
}

// IsDead проверяет сторожевой эффект мгновенной смерти.
func (p *Player) IsDead() bool {
	return HasEffect(p.ActiveEffects, EffectDead)
}
