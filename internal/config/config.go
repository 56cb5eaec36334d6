// internal/config/config.go
package config

import "image/color"

const (
	ScreenWidth  = 1200
	ScreenHeight = 900
	MaxDeltaTime = 0.06

	// Арена: квадрат со стороной 2*ArenaHalfSize с центром в нуле.
	ArenaHalfSize = 100.0
	WorldScale    = 4.0 // Пикселей на единицу мира при отрисовке.

	PlayerSpeed        = 6.0
	PlayerHealth       = 100.0
	PlayerRadius       = 1.5
	PlayerPickupRadius = 3.0

	// Контактный урон по игроку: не чаще одного раза в окно,
	// не более одного врага за шаг.
	ContactDamageCooldown = 0.5
	ContactSlowDuration   = 3.0
	ContactSlowFactor     = 0.6

	InvincibilityDuration = 1.0

	EnemyBaseHealth       = 25.0
	EnemyHealthPerLevel   = 15.0
	EnemyHealthMatchBoost = 0.10 // Прирост здоровья за уровень матча.
	EnemyBaseStrength     = 10.0
	EnemyStrengthPerLevel = 5.0
	EnemySpeed            = 1.7
	EnemyRadius           = 0.5

	// Спавн: темп удваивается каждые SpawnRampInterval секунд.
	BaseSpawnRate     = 1.25
	SpawnRampInterval = 20.0
	SpawnDistanceMin  = 18.0
	SpawnDistanceVar  = 5.0

	KillsPerMatchLevel = 20

	// Прокачка заклинаний: урон растет линейно с уровнем, перезарядка
	// сжимается до половины к десятому уровню.
	SpellMaxLevel        = 10
	SpellDamagePerLevel  = 1.25
	SpellCooldownScaling = 0.5
	CastTargetPool       = 5 // Случайная цель из стольких ближайших.

	// Яд: стаки до предела, урон пропорционален числу стаков.
	PoisonMaxStacks      = 5
	PoisonDamagePerStack = 3.0
	PoisonTickInterval   = 0.5
	PoisonDuration       = 4.0

	// Накопление заморозки: на пределе стаков цель замерзает.
	FreezeMaxStacks     = 5
	FreezeDecayInterval = 3.0
	FrozenDuration      = 2.0

	// Бонусный урон по целям под контролем. Заморозка приоритетнее.
	SynergyFrozenMultiplier = 3.0
	SynergySlowMultiplier   = 2.0

	// Замешательство: периодическая смена цели или блуждание.
	ConfusionRetargetInterval = 0.5
	ConfusionWanderChance     = 0.3
	ConfusionSearchRange      = 15.0
	ConfusionAttackRange      = 1.5
	ConfusionSpeedFactor      = 1.2

	// Нейротоксин: дрожание направления движения.
	NeurotoxinDuration       = 5.0
	NeurotoxinJitter         = 0.5 // Максимальное отклонение в радианах.
	NeurotoxinJitterInterval = 0.2

	// Заразная метка, оставляемая уроном ядом.
	VirulenceSpreadRadius = 100.0
	VirulenceFalloff      = 0.7
	VirulenceMaxChain     = 3
)

var (
	BackgroundColor = color.RGBA{16, 14, 24, 255}
	ArenaEdgeColor  = color.RGBA{60, 56, 80, 255}
	PlayerColor     = color.RGBA{230, 230, 240, 255}
	EnemyColor      = color.RGBA{180, 60, 60, 255}
	TextLightColor  = color.RGBA{240, 240, 240, 255}
	HealthBarColor  = color.RGBA{90, 200, 90, 255}
	HealthBackColor = color.RGBA{50, 50, 60, 255}
)
