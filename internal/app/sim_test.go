// internal/app/sim_test.go
package app

import (
	"testing"

	"go-wyrm-hunt/internal/component"
	"go-wyrm-hunt/internal/config"
	"go-wyrm-hunt/internal/event"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recorder struct {
	events []event.Event
}

func (r *recorder) OnEvent(e event.Event) {
	r.events = append(r.events, e)
}

func (r *recorder) count(t event.EventType) int {
	n := 0
	for _, e := range r.events {
		if e.Type == t {
			n++
		}
	}
	return n
}

func centerPlayer() *component.Player {
	return &component.Player{
		X:      config.MapWidth / 2,
		Y:      config.MapHeight / 2,
		Radius: config.PlayerRadius,
	}
}

func TestInitPopulatesAllZones(t *testing.T) {
	sim := NewSimulation(1)
	sim.Init(1)
	st := sim.State()

	assert.Len(t, st.Volcanic.Enemies, 3)
	assert.Len(t, st.Glacial.Enemies, 3)
	assert.Len(t, st.Canopy.Enemies, 2)
	assert.Len(t, st.Reef.Enemies, 2)
	assert.Len(t, st.Volcanic.Geysers, 5)
	assert.Len(t, st.Reef.Bouncers, 3)

	require.NotNil(t, st.Volcanic.Egg)
	require.NotNil(t, st.Glacial.Egg)
	require.NotNil(t, st.Canopy.Egg)
	require.NotNil(t, st.Reef.Egg)

	// Все враги рождаются замороженными до первого шага игрока.
	for _, e := range st.Volcanic.Enemies {
		assert.True(t, e.Frozen)
	}
	for _, e := range st.Glacial.Enemies {
		assert.True(t, e.Frozen)
	}
	for _, e := range st.Canopy.Enemies {
		assert.True(t, e.Frozen)
	}
	for _, e := range st.Reef.Enemies {
		assert.True(t, e.Frozen)
	}

	assert.True(t, st.SafeZone.Active)
	assert.True(t, st.SafeZone.PlayerInside)
	assert.Equal(t, 0, st.SafeZone.Uses)
	assert.InDelta(t, config.SafeZoneRadius, st.SafeZone.Radius, 1e-9)
	assert.InDelta(t, 1.0, st.SpeedMultiplier, 1e-9)
}

func TestInitScalesEnemySpeedPerLevel(t *testing.T) {
	sim := NewSimulation(1)
	sim.Init(3)
	st := sim.State()

	assert.InDelta(t, 1.5625, st.SpeedMultiplier, 1e-9) // 1.25^2
	assert.InDelta(t, config.MagmawyrmSpeed*1.5625, st.Volcanic.Enemies[0].BaseSpeed, 1e-9)
}

func TestZonesHoldUntilFirstMove(t *testing.T) {
	sim := NewSimulation(1)
	sim.Init(1)
	st := sim.State()

	player := centerPlayer()
	w := st.Volcanic.Enemies[0]
	wx, wy := w.X, w.Y

	for i := 0; i < 3; i++ {
		sim.Update(0.1, player)
	}

	assert.False(t, st.PlayerMoved)
	assert.True(t, w.Frozen)
	assert.Equal(t, wx, w.X)
	assert.Equal(t, wy, w.Y)
	assert.InDelta(t, 0.3, st.ElapsedTime, 1e-9)
}

func TestGeysersTickBeforeFirstMove(t *testing.T) {
	sim := NewSimulation(1)
	sim.Init(1)
	st := sim.State()

	before := make([]float64, len(st.Volcanic.Geysers))
	for i, g := range st.Volcanic.Geysers {
		before[i] = g.Timer
	}

	sim.Update(1.0, centerPlayer())

	// Гейзеры живут и до первого шага, враги при этом стоят.
	for i, g := range st.Volcanic.Geysers {
		assert.NotEqual(t, before[i], g.Timer)
	}
	assert.False(t, st.PlayerMoved)
}

func TestFirstMoveUnfreezesEveryone(t *testing.T) {
	sim := NewSimulation(1)
	sim.Init(1)
	st := sim.State()

	player := centerPlayer()
	sim.Update(0.016, player) // запоминаем позицию

	player.X += 10
	sim.Update(0.016, player)

	assert.True(t, st.PlayerMoved)
	for _, e := range st.Volcanic.Enemies {
		assert.False(t, e.Frozen)
	}
	for _, e := range st.Glacial.Enemies {
		assert.False(t, e.Frozen)
	}
	for _, e := range st.Canopy.Enemies {
		assert.False(t, e.Frozen)
	}
	for _, e := range st.Reef.Enemies {
		assert.False(t, e.Frozen)
	}
}

func TestAbilityEdgeTriggersSplit(t *testing.T) {
	sim := NewSimulation(1)
	sim.Init(1)
	st := sim.State()

	rec := &recorder{}
	sim.Events().Subscribe(event.EnemySplit, rec)

	player := centerPlayer()
	sim.Update(0.016, player)
	player.X += 10
	sim.Update(0.016, player)

	// Подставляем магмавирма под всплеск и имитируем срабатывание
	// способности: кулдаун был нулевым и стал положительным.
	w := st.Volcanic.Enemies[0]
	w.X, w.Y = player.X, player.Y
	st.Volcanic.Enemies[1].X, st.Volcanic.Enemies[1].Y = 100, 100
	st.Volcanic.Enemies[2].X, st.Volcanic.Enemies[2].Y = 200, 100
	player.AbilityCooldown = config.AbilityCooldownTime
	sim.Update(0.016, player)

	assert.Equal(t, 1, rec.count(event.EnemySplit))
	assert.Len(t, st.Volcanic.Enemies, 4) // 3 - родитель + два ребёнка

	// Пока кулдаун держится, повторного фронта нет.
	player.AbilityCooldown -= 0.016
	sim.Update(0.016, player)
	assert.Equal(t, 1, rec.count(event.EnemySplit))
}

func TestLevelClearedFiresOnce(t *testing.T) {
	sim := NewSimulation(1)
	sim.Init(1)
	st := sim.State()

	rec := &recorder{}
	sim.Events().Subscribe(event.LevelCleared, rec)

	st.Volcanic.Egg.Collected = true
	st.Glacial.Egg.Collected = true
	st.Canopy.Egg.Collected = true
	st.Reef.Egg.Collected = true

	player := centerPlayer()
	sim.Update(0.016, player)
	assert.True(t, st.Cleared)
	assert.Equal(t, 1, rec.count(event.LevelCleared))

	sim.Update(0.016, player)
	assert.Equal(t, 1, rec.count(event.LevelCleared))
}

func TestUpdateBeforeInitIsNoop(t *testing.T) {
	sim := NewSimulation(1)
	assert.NotPanics(t, func() {
		sim.Update(0.016, centerPlayer())
	})
}

func TestInitResetsEverything(t *testing.T) {
	sim := NewSimulation(1)
	sim.Init(1)
	st := sim.State()
	st.Volcanic.Egg.Collected = true
	st.Cleared = true

	sim.Init(2)
	st2 := sim.State()

	assert.NotSame(t, st, st2)
	assert.False(t, st2.Cleared)
	assert.False(t, st2.Volcanic.Egg.Collected)
	assert.Equal(t, 2, st2.Level)
	assert.InDelta(t, 1.25, st2.SpeedMultiplier, 1e-9)
}
