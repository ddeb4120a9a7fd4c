// internal/event/types.go
package event

const (
	EggCollected     EventType = "EggCollected"     // Яйцо собрано, Data — types.ZoneID
	SafeZoneUsed     EventType = "SafeZoneUsed"     // Потрачен вход в убежище
	SafeZoneDepleted EventType = "SafeZoneDepleted" // Убежище деактивировано
	EnemySplit       EventType = "EnemySplit"       // Магмавирм разделился
	PlayerKilled     EventType = "PlayerKilled"     // Игроку дописан эффект dead
	LevelCleared     EventType = "LevelCleared"     // Все четыре яйца собраны
)
