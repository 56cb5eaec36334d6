// internal/event/types.go
package event

const (
	EnemyDestroyed EventType = "EnemyDestroyed" // Враг уничтожен
	LootDropped    EventType = "LootDropped"    // Выпала добыча
	ScoreChanged   EventType = "ScoreChanged"   // Счет изменился
	MatchLevelUp   EventType = "MatchLevelUp"   // Уровень матча вырос
	PlayerDied     EventType = "PlayerDied"     // Игрок погиб
	SpellCast      EventType = "SpellCast"      // Заклинание выпущено
)
