// internal/app/sim.go
package app

import (
	"math"

	"go-wyrm-hunt/internal/component"
	"go-wyrm-hunt/internal/config"
	"go-wyrm-hunt/internal/entity"
	"go-wyrm-hunt/internal/event"
	"go-wyrm-hunt/internal/system"
	"go-wyrm-hunt/internal/types"
	"go-wyrm-hunt/internal/utils"

	"github.com/hajimehoshi/ebiten/v2"
)

// Simulation — ядро симуляции врагов и опасностей: четыре зонных
// симулятора, убежище и общий драйвер кадра. Один экземпляр на сессию,
// состояние перестраивается целиком в Init(level).
type Simulation struct {
	state      *entity.State
	rng        *utils.PRNGService
	dispatcher *event.Dispatcher

	volcanic *system.VolcanicSystem
	glacial  *system.GlacialSystem
	canopy   *system.CanopySystem
	reef     *system.ReefSystem
	safeZone *system.SafeZoneSystem
	render   *system.RenderSystem
}

// NewSimulation создаёт симуляцию с управляемым рандомом.
// Сид 0 — от текущего времени (поведение оригинала); в тестах сид
// фиксируется для воспроизводимости.
func NewSimulation(seed int64) *Simulation {
	return &Simulation{
		rng:        utils.NewPRNGService(seed),
		dispatcher: event.NewDispatcher(),
	}
}

// Events — диспетчер для подписки хозяйского цикла.
func (s *Simulation) Events() *event.Dispatcher {
	return s.dispatcher
}

// State отдаёт живое состояние по ссылке: хозяйский цикл читает его для
// коллизий и HUD. Внешняя мутация — неопределённое поведение.
func (s *Simulation) State() *entity.State {
	return s.state
}

// Init перестраивает всё состояние для уровня (нумерация с 1).
// Между уровнями не выживает ни одна сущность.
func (s *Simulation) Init(level int) {
	if level < 1 {
		level = 1
	}
	st := &entity.State{
		Level:           level,
		SpeedMultiplier: math.Pow(config.LevelSpeedGrowth, float64(level-1)),
	}

	st.Volcanic.Bounds = types.Rect{X: 0, Y: 0, W: config.ZoneWidth, H: config.ZoneHeight}
	st.Glacial.Bounds = types.Rect{X: config.ZoneWidth, Y: 0, W: config.ZoneWidth, H: config.ZoneHeight}
	st.Canopy.Bounds = types.Rect{X: 0, Y: config.ZoneHeight, W: config.ZoneWidth, H: config.ZoneHeight}
	st.Reef.Bounds = types.Rect{X: config.ZoneWidth, Y: config.ZoneHeight, W: config.ZoneWidth, H: config.ZoneHeight}

	st.SafeZone = component.SafeZone{
		CenterX: config.MapWidth / 2,
		CenterY: config.MapHeight / 2,
		Radius:  config.SafeZoneRadius,
		MaxUses: config.SafeZoneMaxUses,
		Active:  true,
		// Игрок рождается в центре; стартовое нахождение внутри не
		// считается входом — только фронт снаружи→внутрь.
		PlayerInside: true,
	}

	s.state = st
	s.safeZone = system.NewSafeZoneSystem(st, s.dispatcher)
	s.volcanic = system.NewVolcanicSystem(st, s.rng, s.dispatcher, s.safeZone)
	s.glacial = system.NewGlacialSystem(st, s.rng, s.dispatcher, s.safeZone)
	s.canopy = system.NewCanopySystem(st, s.rng, s.dispatcher, s.safeZone)
	s.reef = system.NewReefSystem(st, s.rng, s.dispatcher, s.safeZone)
	s.render = system.NewRenderSystem(st)

	s.volcanic.Reset()
	s.glacial.Reset()
	s.canopy.Reset()
	s.reef.Reset()
}

// Update продвигает симуляцию на один кадр. Полностью синхронный
// единственный проход; порядок зон фиксирован, потому что каждая может
// сдвинуть игрока до того, как следующая прочитает его позицию.
func (s *Simulation) Update(dt float64, player *component.Player) {
	st := s.state
	if st == nil {
		return
	}
	st.ElapsedTime += dt

	// Фронт первого шага: до него зоны стоят, враги заморожены.
	if st.HasPrevPlayerPos {
		if !st.PlayerMoved && (player.X != st.PrevPlayerX || player.Y != st.PrevPlayerY) {
			st.PlayerMoved = true
			st.UnfreezeAll()
		}
	} else {
		st.HasPrevPlayerPos = true
	}
	st.PrevPlayerX, st.PrevPlayerY = player.X, player.Y

	// Фронт срабатывания способности: кулдаун был нулевым и стал положительным.
	abilityJustUsed := st.PrevAbilityCD == 0 && player.AbilityCooldown > 0
	st.PrevAbilityCD = player.AbilityCooldown

	// Убежище живёт всегда, даже до первого шага.
	s.safeZone.Update(player)

	if st.PlayerMoved {
		s.volcanic.Update(dt, player, abilityJustUsed)
		s.glacial.Update(dt, player)
		s.canopy.Update(dt, player)
		s.reef.Update(dt, player)
	} else {
		// Гейзеры и остывание лавы тикают и до первого шага,
		// но никого не двигают.
		s.volcanic.UpdateAmbient(dt)
	}

	// Чисто визуальные фазы, на геймплей не влияют.
	st.VolcanicGlowPhase += dt
	st.CanopySwayPhase += dt * 0.8
	st.ReefShimmerPhase += dt * 1.3

	if !st.Cleared && st.EggsCollected() == 4 {
		st.Cleared = true
		s.dispatcher.Dispatch(event.Event{Type: event.LevelCleared, Data: st.Level})
	}
}

// Draw — чистый проход отрисовки состояния со смещением камеры.
func (s *Simulation) Draw(screen *ebiten.Image, camX, camY float64) {
	if s.state == nil {
		return
	}
	s.render.Draw(screen, camX, camY)
}
