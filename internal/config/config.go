// internal/config/config.go
package config

import "image/color"

const (
	ScreenWidth  = 1200
	ScreenHeight = 900
	MaxDeltaTime = 0.06

	MapWidth  = 2000.0
	MapHeight = 2000.0

	// Зоны — четыре квадранта карты.
	ZoneWidth  = MapWidth / 2
	ZoneHeight = MapHeight / 2

	PlayerRadius          = 13.0
	PlayerSpeed           = 170.0
	AbilityCooldownTime   = 5.0
	AbilityNovaRadius     = 250.0
	AbilityFreezeDuration = 2.5

	// Множитель скорости врагов на уровне: 1.25^(level-1)
	LevelSpeedGrowth = 1.25

	ZoneEnemyCap = 6

	SafeZoneRadius    = 120.0
	SafeZoneMaxUses   = 3
	SafeZoneShrink    = 0.8 // доля радиуса после каждого входа
	SafeZoneMinRadius = 18.0

	EggRadius       = 12.0
	EggPickupMargin = 18.0

	// Вулканическая зона
	MagmawyrmCount        = 3
	MagmawyrmSpeed        = 95.0
	MagmawyrmRadius       = 16.0
	VolcanicBoostInterval = 5.0
	VolcanicBoostFactor   = 1.15
	LavaTrailInterval     = 0.3
	LavaTrailLife         = 5.0
	LavaTrailRadiusFactor = 0.9
	GeyserCount           = 5
	GeyserDormantTime     = 5.0
	GeyserEruptTime       = 1.5
	GeyserRadius          = 34.0
	GeyserGridOffset      = 250.0
	SplitTriggerRange     = 200.0
	SplitMinSizeMult      = 0.4
	SplitChildSizeFactor  = 0.6
	SplitChildSpeedBoost  = 1.3

	// Ледниковая зона
	FrostwyrmCount       = 3
	FrostwyrmRadius      = 18.0
	FrostTileInterval    = 1.5
	FrostTileSize        = 40.0
	FrostExpandStart     = 40.0
	FrostExpandStep      = 6.0
	FrostExpandCap       = 220.0
	FrostJitter          = 14.0
	IceBulletSpeed       = 210.0
	IceBulletRadius      = 8.0
	IceShotRange         = 300.0
	IceShotCooldownLong  = 2.0
	IceShotCooldownShort = 0.5
	EggThawRange         = 30.0
	EggThawRequired      = 2.0
	EggThawDecayFactor   = 0.5

	// Зона крон
	ThornwyrmCount        = 2
	ThornwyrmSpeed        = 110.0
	ThornwyrmRadius       = 14.0
	CanopySpawnInterval   = 10.0
	TeleportRangeBase     = 150.0
	TeleportRangeStep     = 50.0
	TeleportRangeInterval = 5.0
	TeleportDropFactor    = 0.75
	ThornRevealRange      = 150.0
	ThornLungeFactor      = 2.5
	ThornLungeStopMargin  = 8.0
	FoliageWaveInterval   = 5.0
	FoliageWaveCap        = 3
	FoliageRadius         = 22.0
	FoliageJostleChance   = 0.8 // умножается на dt
	FoliageJostleRange    = 35.0
	CanopyEggRevealRange  = 100.0

	// Рифовая зона
	TidewyrmCount     = 2
	TidewyrmSpeed     = 120.0
	TidewyrmRadius    = 12.0
	ReefSpawnInterval = 10.0
	WaveTierInterval  = 5.0
	WaveTierCap       = 4
	ReefEllipseA      = 320.0
	ReefEllipseB      = 200.0
	ReefAngularSpeed  = 0.5
	BouncerCount      = 3
	BouncerRadius     = 20.0
	BouncerSpeedMin   = 70.0
	BouncerSpeedMax   = 100.0
	BouncerKnockback  = 40.0
	ReefEggSpeed      = 45.0
	ReefEggMargin     = 20.0
)

var (
	BackgroundColor = color.RGBA{14, 14, 22, 255}

	VolcanicFloorColor = color.RGBA{56, 24, 20, 255}
	GlacialFloorColor  = color.RGBA{26, 40, 56, 255}
	CanopyFloorColor   = color.RGBA{22, 44, 26, 255}
	ReefFloorColor     = color.RGBA{18, 34, 52, 255}
	ZoneBorderColor    = color.RGBA{90, 90, 110, 255}

	PlayerColor     = color.RGBA{235, 235, 245, 255}
	PlayerDeadColor = color.RGBA{120, 60, 60, 255}

	MagmawyrmColor = color.RGBA{235, 90, 40, 255}
	FrostwyrmColor = color.RGBA{120, 190, 235, 255}
	ThornwyrmColor = color.RGBA{70, 160, 70, 255}
	TidewyrmColor  = color.RGBA{80, 130, 220, 255}
	FrozenTint     = color.RGBA{150, 200, 240, 255}

	LavaTrailColor   = color.RGBA{240, 120, 30, 160}
	GeyserColor      = color.RGBA{120, 60, 40, 200}
	GeyserEruptColor = color.RGBA{250, 160, 60, 230}
	FrozenTileColor  = color.RGBA{160, 210, 240, 110}
	IceBulletColor   = color.RGBA{200, 235, 255, 255}
	FoliageColor     = color.RGBA{34, 80, 40, 255}
	BouncerColor     = color.RGBA{200, 180, 90, 255}

	SafeZoneColor         = color.RGBA{240, 230, 140, 60}
	SafeZoneOutlineColor  = color.RGBA{240, 230, 140, 200}
	SafeZoneInactiveColor = color.RGBA{120, 120, 120, 40}

	EggColor       = color.RGBA{250, 245, 220, 255}
	EggStrokeColor = color.RGBA{160, 140, 60, 255}

	TextLightColor = color.RGBA{240, 240, 240, 255}
	PauseColor     = color.RGBA{70, 130, 180, 220}
	PlayColor      = color.RGBA{220, 60, 60, 220}
)
