// internal/system/glacial_test.go
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

func newGlacial(t *testing.T) (*GlacialSystem, *eventRecorder) {
	t.Helper()
	st := newTestState()
	d := event.NewDispatcher()
	rec := recordAll(d)
	safe := NewSafeZoneSystem(st, d)
	return NewGlacialSystem(st, utils.NewPRNGService(1), d, safe), rec
}

func frostwyrm(x, y float64) *component.Frostwyrm {
	return &component.Frostwyrm{
		EnemyCore: component.EnemyCore{
			X: x, Y: y,
			Radius: 18,
			Alive:  true,
		},
		ExpandRadius: 40,
	}
}

func TestGlacialEggThawsNearPlayer(t *testing.T) {
	sys, rec := newGlacial(t)
	z := &sys.state.Glacial
	z.Egg = &component.GlacialEgg{Egg: component.Egg{X: 1500, Y: 500, Radius: 12}}

	player := testPlayer(1510, 500)
	sys.Update(1.0, player)
	assert.False(t, z.Egg.Collected)
	assert.InDelta(t, 1.0, z.Egg.ThawTimer, 1e-9)

	sys.Update(1.0, player)
	assert.True(t, z.Egg.Collected)
	require.Equal(t, 1, rec.count(event.EggCollected))
	assert.Equal(t, types.ZoneGlacial, rec.events[len(rec.events)-1].Data)
}

func TestGlacialEggThawDecaysAtHalfRate(t *testing.T) {
	sys, _ := newGlacial(t)
	z := &sys.state.Glacial
	z.Egg = &component.GlacialEgg{Egg: component.Egg{X: 1500, Y: 500, Radius: 12}}
	z.Egg.ThawTimer = 1.0

	// Вдали прогресс тает вдвое медленнее и не уходит ниже нуля.
	far := testPlayer(1900, 900)
	sys.Update(1.0, far)
	assert.InDelta(t, 0.5, z.Egg.ThawTimer, 1e-9)

	sys.Update(5.0, far)
	assert.Equal(t, 0.0, z.Egg.ThawTimer)
	assert.False(t, z.Egg.Collected)
}

func TestIceBulletKillsPlayer(t *testing.T) {
	sys, rec := newGlacial(t)
	z := &sys.state.Glacial
	z.Bullets = []*component.IceBullet{{X: 1500, Y: 500, Radius: 8}}

	player := testPlayer(1500, 500)
	sys.Update(0.001, player)

	assert.True(t, player.IsDead())
	assert.Empty(t, z.Bullets)
	assert.Equal(t, 1, rec.count(event.PlayerKilled))
}

func TestIceBulletDespawnsOffMap(t *testing.T) {
	sys, _ := newGlacial(t)
	z := &sys.state.Glacial
	z.Bullets = []*component.IceBullet{{X: 2100, Y: 500, VX: 210, Radius: 8}}

	sys.Update(0.016, testPlayer(1200, 800))
	assert.Empty(t, z.Bullets)
}

func TestFrozenTileBlocksPlayer(t *testing.T) {
	sys, _ := newGlacial(t)
	z := &sys.state.Glacial
	z.Tiles = []component.FrozenTile{{X: 1500, Y: 500, W: 40, H: 40}}

	player := testPlayer(1495, 520)
	sys.Update(0.001, player)

	// Выталкивание по оси минимального проникновения — влево.
	assert.InDelta(t, 1487, player.X, 1e-9)
	assert.InDelta(t, 520, player.Y, 1e-9)
}

func TestFrostwyrmShotCadenceAlternates(t *testing.T) {
	sys, _ := newGlacial(t)
	z := &sys.state.Glacial
	w := frostwyrm(1500, 500)
	w.ShotTimer = 0.01
	z.Enemies = []*component.Frostwyrm{w}

	player := testPlayer(1540, 500)
	sys.Update(0.02, player)
	require.Len(t, z.Bullets, 1)
	assert.InDelta(t, 0.5, w.ShotTimer, 1e-9) // первый кулдаун короткий
	assert.True(t, w.NextShotLong)

	sys.Update(0.6, player)
	assert.Len(t, z.Bullets, 2)
	assert.InDelta(t, 2.0, w.ShotTimer, 1e-9) // второй — длинный
	assert.False(t, w.NextShotLong)
}

func TestFrostwyrmHoldsFireOutOfRange(t *testing.T) {
	sys, _ := newGlacial(t)
	z := &sys.state.Glacial
	w := frostwyrm(1500, 500)
	w.ShotTimer = 0
	z.Enemies = []*component.Frostwyrm{w}

	// Игрок за пределами 300px: истёкший таймер ждёт цель.
	sys.Update(0.016, testPlayer(1200, 900))
	assert.Empty(t, z.Bullets)
	assert.LessOrEqual(t, w.ShotTimer, 0.0)
}

func TestFrostwyrmDropsTilesOnGrowingRing(t *testing.T) {
	sys, _ := newGlacial(t)
	z := &sys.state.Glacial
	w := frostwyrm(1500, 500)
	w.ShotTimer = 100 // стрельбу в этом тесте глушим
	z.Enemies = []*component.Frostwyrm{w}

	sys.Update(1.5, testPlayer(1900, 900))

	assert.Len(t, z.Tiles, 1)
	assert.InDelta(t, 46, w.ExpandRadius, 1e-9)

	sys.Update(1.5, testPlayer(1900, 900))
	assert.Len(t, z.Tiles, 2)
	assert.InDelta(t, 52, w.ExpandRadius, 1e-9)
}

func TestIceBulletDoesNotReKillDeadPlayer(t *testing.T) {
	sys, rec := newGlacial(t)
	z := &sys.state.Glacial
	z.Bullets = []*component.IceBullet{{X: 1500, Y: 500, Radius: 8}}

	player := testPlayer(1500, 500)
	player.AddEffect(component.StatusEffect{Type: component.EffectDead, Duration: component.Permanent()})

	sys.Update(0.001, player)

	// Снаряд гаснет, но второго сторожевого эффекта и события нет.
	assert.Empty(t, z.Bullets)
	assert.Equal(t, 0, rec.count(event.PlayerKilled))
	assert.Len(t, player.ActiveEffects, 1)
}

func TestImmobilizedFrostwyrmStillExpelledFromSafeZone(t *testing.T) {
	sys, _ := newGlacial(t)
	sys.state.SafeZone.Active = true
	z := &sys.state.Glacial
	w := frostwyrm(1050, 950)
	w.AddEffect(component.StatusEffect{Type: component.EffectFreeze, Duration: 2.5})
	z.Enemies = []*component.Frostwyrm{w}

	sys.Update(0.016, testPlayer(1900, 100))

	assert.InDelta(t, sys.state.SafeZone.Radius+w.Radius,
		Dist(w.X, w.Y, sys.state.SafeZone.CenterX, sys.state.SafeZone.CenterY), 1e-6)
}

func TestFrozenWyrmIsInert(t *testing.T) {
	sys, _ := newGlacial(t)
	z := &sys.state.Glacial
	w := frostwyrm(1500, 500)
	w.Frozen = true
	w.ShotTimer = 0
	z.Enemies = []*component.Frostwyrm{w}

	sys.Update(2.0, testPlayer(1520, 500))

	assert.Empty(t, z.Bullets)
	assert.Empty(t, z.Tiles)
}
