// internal/component/enemy.go
package component

// EnemyCore — общая часть всех четырёх архетипов. Frozen — одноразовое
// подавление до первого шага игрока, не путать с эффектом freeze.
type EnemyCore struct {
	X, Y      float64
	Radius    float64
	BaseSpeed float64 // скорость архетипа с учётом множителя уровня
	Alive     bool
	Frozen    bool
	Effects   []StatusEffect
}

// TickEffects — покадровый тик эффектов врага.
func (e *EnemyCore) TickEffects(dt float64) {
	e.Effects = TickEffects(e.Effects, dt)
}

// CanMove — может ли враг двигаться в этом кадре.
func (e *EnemyCore) CanMove() bool {
	return !e.Frozen && !MovementBlocked(e.Effects)
}

// EffectSpeedMult — произведение множителей замедления.
func (e *EnemyCore) EffectSpeedMult() float64 {
	return SpeedMultiplier(e.Effects)
}

// AddEffect дописывает эффект в список врага.
func (e *EnemyCore) AddEffect(eff StatusEffect) {
	e.Effects = append(e.Effects, eff)
}

// Magmawyrm — вулканический преследователь. Делится от всплеска
// способности игрока, оставляет лавовый след.
type Magmawyrm struct {
	EnemyCore
	SizeMult       float64
	SpeedBoostMult float64 // накопленный постоянный буст, наследуется детьми
	TrailTimer     float64
}

// Speed — текущая скорость с бустом и эффектами.
func (m *Magmawyrm) Speed() float64 {
	return m.BaseSpeed * m.SpeedBoostMult * m.EffectSpeedMult()
}

// Frostwyrm — ледниковая «турель»: не преследует, расползается кольцом
// замёрзших плит и стреляет ледяными снарядами.
type Frostwyrm struct {
	EnemyCore
	ExpandTimer  float64
	ExpandRadius float64
	ShotTimer    float64
	NextShotLong bool // кулдаун чередуется 2с/0.5с
}

// Thornwyrm — невидимый засадник зоны крон.
type Thornwyrm struct {
	EnemyCore
	Visible       bool
	Lunging       bool
	LungeVX       float64 // вектор рывка фиксируется в момент обнаружения
	LungeVY       float64
	TeleportRange float64 // общезонное значение, растёт со временем
}

// Speed — текущая скорость погони (без множителя рывка).
func (t *Thornwyrm) Speed() float64 {
	return t.BaseSpeed * t.EffectSpeedMult()
}

// Tidewyrm — участник рифовой стаи. WaveOffset — фазовый сдвиг в общей
// формации.
type Tidewyrm struct {
	EnemyCore
	WaveOffset float64
}

// Speed — текущая скорость с эффектами.
func (t *Tidewyrm) Speed() float64 {
	return t.BaseSpeed * t.EffectSpeedMult()
}
