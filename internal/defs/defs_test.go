package defs

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"go-spell-arena/internal/element"
)

func TestSpellLibraryComplete(t *testing.T) {
	if len(SpellLibrary) < 15 {
		t.Fatalf("library holds %d spells, want at least 15", len(SpellLibrary))
	}
	archetypes := make(map[Archetype]bool)
	for id, def := range SpellLibrary {
		if def.ID != id {
			t.Errorf("spell %q keyed under %q", def.ID, id)
		}
		if element.ByName(def.Element) == element.None {
			t.Errorf("spell %q has unknown element %q", id, def.Element)
		}
		if def.FireRate <= 0 {
			t.Errorf("spell %q has non-positive fire rate", id)
		}
		archetypes[def.Archetype] = true
	}
	for _, a := range []Archetype{
		ArchetypeBurst, ArchetypeVortex, ArchetypeZone, ArchetypeArc,
		ArchetypeCone, ArchetypeTurret, ArchetypeWraith, ArchetypeVirulence,
		ArchetypeBolt, ArchetypeBurn,
	} {
		if !archetypes[a] {
			t.Errorf("no spell exercises archetype %s", a)
		}
	}
}

func TestSpellLibraryCoversAllElements(t *testing.T) {
	seen := make(map[string]bool)
	for _, def := range SpellLibrary {
		seen[def.Element] = true
	}
	for _, e := range element.All() {
		if !seen[e.Name()] {
			t.Errorf("no spell of element %s", e.Name())
		}
	}
}

func TestDamageScaling(t *testing.T) {
	def := SpellLibrary["SPELL_NOVA"]
	if got := def.Damage(1); math.Abs(got-18.0*1.25) > 1e-9 {
		t.Errorf("level 1 damage = %v, want %v", got, 18.0*1.25)
	}
	if got := def.Damage(4); math.Abs(got-18.0*4*1.25) > 1e-9 {
		t.Errorf("level 4 damage = %v, want %v", got, 18.0*4*1.25)
	}
	// Уровень зажимается в допустимый диапазон.
	if def.Damage(0) != def.Damage(1) {
		t.Error("level below 1 must clamp to 1")
	}
	if def.Damage(99) != def.Damage(10) {
		t.Error("level above cap must clamp to cap")
	}
}

func TestFireRateScaling(t *testing.T) {
	def := SpellLibrary["SPELL_NOVA"]
	if got := def.EffectiveFireRate(1); math.Abs(got-1.0) > 1e-9 {
		t.Errorf("level 1 rate = %v, want base", got)
	}
	// К десятому уровню перезарядка сокращается ровно вдвое.
	if got := def.EffectiveFireRate(10); math.Abs(got-0.5) > 1e-9 {
		t.Errorf("level 10 rate = %v, want 0.5", got)
	}
	if cd := def.Cooldown(10); math.Abs(cd-2.0) > 1e-9 {
		t.Errorf("level 10 cooldown = %v, want 2.0", cd)
	}
}

func TestEnemyScaling(t *testing.T) {
	def := EnemyLibrary["ENEMY_GRUNT"]
	if got := def.ScaledHealth(1, 1); math.Abs(got-25.0) > 1e-9 {
		t.Errorf("level 1 health = %v, want 25", got)
	}
	if got := def.ScaledHealth(3, 1); math.Abs(got-55.0) > 1e-9 {
		t.Errorf("level 3 health = %v, want 55", got)
	}
	// Уровень матча добавляет 10% за ступень.
	if got := def.ScaledHealth(1, 3); math.Abs(got-30.0) > 1e-9 {
		t.Errorf("match level 3 health = %v, want 30", got)
	}
	if got := def.ScaledStrength(2); math.Abs(got-15.0) > 1e-9 {
		t.Errorf("level 2 strength = %v, want 15", got)
	}
}

func TestLoadSpellDefinitionsOverride(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "spells.json")
	payload := `[{"id":"SPELL_NOVA","name":"Big Nova","element":"Fire","archetype":"BURST","base_damage":50,"fire_rate":0.5,"burst":{"radius":10,"duration":0.5}}]`
	if err := os.WriteFile(path, []byte(payload), 0o644); err != nil {
		t.Fatal(err)
	}

	original := SpellLibrary["SPELL_NOVA"]
	defer func() { SpellLibrary["SPELL_NOVA"] = original }()

	if err := LoadSpellDefinitions(path); err != nil {
		t.Fatalf("load: %v", err)
	}
	def := SpellLibrary["SPELL_NOVA"]
	if def.BaseDamage != 50 || def.Burst == nil || def.Burst.Radius != 10 {
		t.Errorf("override not applied: %+v", def)
	}
	// Остальные записи не тронуты.
	if _, ok := SpellLibrary["SPELL_SHATTER"]; !ok {
		t.Error("untouched entries must survive the merge")
	}
}

func TestLoadSpellDefinitionsErrors(t *testing.T) {
	if err := LoadSpellDefinitions("no-such-file.json"); err == nil {
		t.Error("missing file must error")
	}

	dir := t.TempDir()
	bad := filepath.Join(dir, "bad.json")
	if err := os.WriteFile(bad, []byte("{not json"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := LoadSpellDefinitions(bad); err == nil {
		t.Error("malformed JSON must error")
	}

	noID := filepath.Join(dir, "noid.json")
	if err := os.WriteFile(noID, []byte(`[{"name":"Ghost"}]`), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := LoadSpellDefinitions(noID); err == nil {
		t.Error("entry without id must error")
	}
}
