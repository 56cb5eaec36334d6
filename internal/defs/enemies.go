// internal/defs/enemies.go
package defs

import "go-spell-arena/internal/config"

// EnemyDefinition holds all the static data for a specific type of enemy.
type EnemyDefinition struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Health   float64 `json:"health"`   // Здоровье первого уровня.
	Speed    float64 `json:"speed"`
	Strength float64 `json:"strength"` // Контактный урон первого уровня.
	Radius   float64 `json:"radius"`
	Weight   int     `json:"weight"` // Вес в таблице спавна.
	Visuals  Visuals `json:"visuals"`
}

// ScaledHealth — здоровье врага с учетом его уровня и уровня матча.
func (d *EnemyDefinition) ScaledHealth(enemyLevel, matchLevel int) float64 {
	if enemyLevel < 1 {
		enemyLevel = 1
	}
	if matchLevel < 1 {
		matchLevel = 1
	}
	base := d.Health + float64(enemyLevel-1)*config.EnemyHealthPerLevel
	return base * (1.0 + float64(matchLevel-1)*config.EnemyHealthMatchBoost)
}

// ScaledStrength — контактный урон врага с учетом его уровня.
func (d *EnemyDefinition) ScaledStrength(enemyLevel int) float64 {
	if enemyLevel < 1 {
		enemyLevel = 1
	}
	return d.Strength + float64(enemyLevel-1)*config.EnemyStrengthPerLevel
}

// EnemyLibrary is a map to hold all enemy definitions, keyed by their ID.
var EnemyLibrary = defaultEnemyLibrary()

func defaultEnemyLibrary() map[string]EnemyDefinition {
	enemies := []EnemyDefinition{
		{
			ID: "ENEMY_GRUNT", Name: "Grunt",
			Health: config.EnemyBaseHealth, Speed: config.EnemySpeed,
			Strength: config.EnemyBaseStrength, Radius: config.EnemyRadius,
			Weight:  8,
			Visuals: Visuals{Radius: config.EnemyRadius},
		},
		{
			ID: "ENEMY_RUNNER", Name: "Runner",
			Health: config.EnemyBaseHealth * 0.6, Speed: config.EnemySpeed * 1.6,
			Strength: config.EnemyBaseStrength * 0.7, Radius: config.EnemyRadius * 0.8,
			Weight:  3,
			Visuals: Visuals{Radius: config.EnemyRadius * 0.8},
		},
		{
			ID: "ENEMY_BRUTE", Name: "Brute",
			Health: config.EnemyBaseHealth * 2.4, Speed: config.EnemySpeed * 0.7,
			Strength: config.EnemyBaseStrength * 1.5, Radius: config.EnemyRadius * 1.5,
			Weight:  1,
			Visuals: Visuals{Radius: config.EnemyRadius * 1.5},
		},
	}

	lib := make(map[string]EnemyDefinition, len(enemies))
	for _, def := range enemies {
		lib[def.ID] = def
	}
	return lib
}
