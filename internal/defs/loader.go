// internal/defs/loader.go
package defs

import (
	"encoding/json"
	"fmt"
	"os"
)

// LoadSpellDefinitions reads a spell configuration file and merges it into
// the SpellLibrary. Записи из файла перекрывают встроенные по ID.
func LoadSpellDefinitions(path string) error {
	file, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read spell definitions file: %w", err)
	}

	var spellDefs []SpellDefinition
	if err := json.Unmarshal(file, &spellDefs); err != nil {
		return fmt.Errorf("failed to unmarshal spell definitions: %w", err)
	}

	for _, def := range spellDefs {
		if def.ID == "" {
			return fmt.Errorf("spell definition without id in %s", path)
		}
		SpellLibrary[def.ID] = def
	}
	return nil
}

// LoadEnemyDefinitions reads an enemy configuration file and merges it into
// the EnemyLibrary. Записи из файла перекрывают встроенные по ID.
func LoadEnemyDefinitions(path string) error {
	file, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read enemy definitions file: %w", err)
	}

	var enemyDefs []EnemyDefinition
	if err := json.Unmarshal(file, &enemyDefs); err != nil {
		return fmt.Errorf("failed to unmarshal enemy definitions: %w", err)
	}

	for _, def := range enemyDefs {
		if def.ID == "" {
			return fmt.Errorf("enemy definition without id in %s", path)
		}
		EnemyLibrary[def.ID] = def
	}
	return nil
}
