// internal/system/canopy_test.go
package system

import (
	"testing"

	"go-wyrm-hunt/internal/component"
	"go-wyrm-hunt/internal/event"
	"go-wyrm-hunt/internal/types"
	"go-wyrm-hunt/internal/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCanopy(t *testing.T) (*CanopySystem, *eventRecorder) {
	t.Helper()
	st := newTestState()
	st.Canopy.TeleportRange = 150
	d := event.NewDispatcher()
	rec := recordAll(d)
	safe := NewSafeZoneSystem(st, d)
	return NewCanopySystem(st, utils.NewPRNGService(1), d, safe), rec
}

func thornwyrm(x, y float64) *component.Thornwyrm {
	return &component.Thornwyrm{
		EnemyCore: component.EnemyCore{
			X: x, Y: y,
			Radius:    14,
			BaseSpeed: 110,
			Alive:     true,
		},
		TeleportRange: 150,
	}
}

func TestThornwyrmRevealsAndLocksLunge(t *testing.T) {
	sys, _ := newCanopy(t)
	z := &sys.state.Canopy
	w := thornwyrm(300, 1500)
	z.Enemies = []*component.Thornwyrm{w}

	sys.Update(0.016, testPlayer(400, 1500))

	assert.True(t, w.Visible)
	assert.True(t, w.Lunging)
	// Вектор рывка: скорость погони × 2.5, нацелен на игрока в момент
	// обнаружения.
	assert.InDelta(t, 275, w.LungeVX, 1e-9)
	assert.InDelta(t, 0, w.LungeVY, 1e-9)
}

func TestThornwyrmStaysHiddenOutOfRange(t *testing.T) {
	sys, _ := newCanopy(t)
	z := &sys.state.Canopy
	w := thornwyrm(300, 1500)
	z.Enemies = []*component.Thornwyrm{w}

	sys.Update(0.016, testPlayer(600, 1500))

	assert.False(t, w.Visible)
	assert.Equal(t, 300.0, w.X)
}

func TestThornwyrmTeleportCatchesRunner(t *testing.T) {
	sys, _ := newCanopy(t)
	z := &sys.state.Canopy
	w := thornwyrm(500, 1500)
	w.Visible = true
	w.Lunging = true
	w.LungeVX = 100 // рывок мимо: враг удаляется от игрока
	z.Enemies = []*component.Thornwyrm{w}

	player := testPlayer(200, 1500)
	sys.Update(0.016, player)

	// Побег за радиус телепорта подтягивает врага на 0.75 радиуса.
	assert.InDelta(t, 150*0.75, Dist(w.X, w.Y, player.X, player.Y), 1e-9)
	assert.True(t, w.Lunging)
}

func TestThornwyrmLungeEndsOnContact(t *testing.T) {
	sys, _ := newCanopy(t)
	z := &sys.state.Canopy
	w := thornwyrm(220, 1500)
	w.Visible = true
	w.Lunging = true
	w.LungeVX = -100
	z.Enemies = []*component.Thornwyrm{w}

	player := testPlayer(200, 1500)
	sys.Update(0.016, player)
	assert.False(t, w.Lunging)

	// После рывка — обычная погоня.
	x := w.X
	sys.Update(0.1, player)
	assert.InDelta(t, x-11, w.X, 1e-9) // 110 * 0.1
}

func TestCanopySpawnsOnlyWhilePlayerAway(t *testing.T) {
	sys, _ := newCanopy(t)
	z := &sys.state.Canopy

	// Игрок в зоне — тихий таймер стоит.
	sys.Update(11, testPlayer(400, 1500))
	assert.Empty(t, z.Enemies)

	// Игрок ушёл — зона доращивает население.
	sys.Update(11, testPlayer(1500, 500))
	require.Len(t, z.Enemies, 1)
	assert.False(t, z.Enemies[0].Frozen)
}

func TestCanopySpawnRespectsCap(t *testing.T) {
	sys, _ := newCanopy(t)
	z := &sys.state.Canopy
	for i := 0; i < 6; i++ {
		w := thornwyrm(300+float64(i)*50, 1500)
		w.Frozen = true
		z.Enemies = append(z.Enemies, w)
	}

	sys.Update(10.5, testPlayer(1500, 500))
	assert.Len(t, z.Enemies, 6)
}

func TestTeleportRangeGrowsZoneWide(t *testing.T) {
	sys, _ := newCanopy(t)
	z := &sys.state.Canopy
	w := thornwyrm(300, 1500)
	w.Frozen = true
	z.Enemies = []*component.Thornwyrm{w}

	sys.Update(5.0, testPlayer(400, 1500))

	assert.InDelta(t, 200, z.TeleportRange, 1e-9)
	assert.InDelta(t, 200, w.TeleportRange, 1e-9)
}

func TestStunnedThornwyrmStillExpelledFromSafeZone(t *testing.T) {
	sys, _ := newCanopy(t)
	sys.state.SafeZone.Active = true
	z := &sys.state.Canopy
	w := thornwyrm(950, 1050)
	w.AddEffect(component.StatusEffect{Type: component.EffectStun, Duration: 1})
	z.Enemies = []*component.Thornwyrm{w}

	sys.Update(0.016, testPlayer(100, 1900))

	sz := &sys.state.SafeZone
	assert.InDelta(t, sz.Radius+w.Radius, Dist(w.X, w.Y, sz.CenterX, sz.CenterY), 1e-6)
}

func TestFoliageWavesCapAtThree(t *testing.T) {
	sys, _ := newCanopy(t)
	z := &sys.state.Canopy

	player := testPlayer(400, 1500)
	for i := 0; i < 5; i++ {
		sys.Update(5.0, player)
	}

	// Волны: 1+2+3, дальше по три куста за волну.
	assert.Equal(t, 3, z.WaveCount)
	assert.Len(t, z.Obstacles, 12)
}

func TestCanopyEggRidesHostAndCollects(t *testing.T) {
	sys, rec := newCanopy(t)
	z := &sys.state.Canopy
	z.Obstacles = []*component.Foliage{{X: 600, Y: 1600, Radius: 22}}
	z.Egg = &component.CanopyEgg{
		Egg:       component.Egg{Radius: 12},
		HostIndex: 0,
	}

	// Далеко — яйцо спрятано.
	sys.Update(0.016, testPlayer(800, 1600))
	assert.False(t, z.Egg.Visible)
	assert.False(t, z.Egg.Collected)

	// Касание носителя собирает яйцо.
	sys.Update(0.016, testPlayer(600, 1600))
	assert.True(t, z.Egg.Collected)
	require.Equal(t, 1, rec.count(event.EggCollected))
	assert.Equal(t, types.ZoneCanopy, rec.events[len(rec.events)-1].Data)
}
