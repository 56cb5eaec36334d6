// internal/system/damage_test.go
package system

import (
	"testing"

	"go-spell-arena/internal/component"
	"go-spell-arena/internal/config"
	"go-spell-arena/internal/element"
)

func TestDamageReducesHealth(t *testing.T) {
	ecs, bus := newWorld()
	enemy := addEnemy(ecs, 0, 0)
	sys := NewDamageSystem(ecs, bus)

	sys.Damage(enemy, 30, element.None, 0)
	sys.Update(0.016)

	if got := ecs.Healths[enemy].Value; got != 70 {
		t.Errorf("health after hit = %v, want 70", got)
	}
	if bus.PendingDamage() != 0 {
		t.Errorf("damage queue not drained, %d events left", bus.PendingDamage())
	}
}

func TestInvincibilitySkipsDamageAndSecondaries(t *testing.T) {
	ecs, bus := newWorld()
	enemy := addEnemy(ecs, 0, 0)
	ecs.Invincibilities[enemy] = &component.Invincibility{Timer: 1}
	sys := NewDamageSystem(ecs, bus)

	sys.Damage(enemy, 30, element.Poison, 0)
	sys.Update(0.016)

	if got := ecs.Healths[enemy].Value; got != 100 {
		t.Errorf("invincible target lost health: %v", got)
	}
	if _, ok := ecs.Neurotoxins[enemy]; ok {
		t.Error("invincible target received neurotoxin")
	}
	if _, ok := ecs.VirulentMarks[enemy]; ok {
		t.Error("invincible target received virulent mark")
	}
}

func TestDamageToMissingTargetIgnored(t *testing.T) {
	ecs, bus := newWorld()
	sys := NewDamageSystem(ecs, bus)

	sys.Damage(999, 30, element.Fire, 0)
	sys.Update(0.016)

	if bus.PendingDamage() != 0 {
		t.Errorf("queue not drained after hitting missing target")
	}
}

func TestFrostDamageBuildsFreezeStacks(t *testing.T) {
	ecs, bus := newWorld()
	enemy := addEnemy(ecs, 0, 0)
	sys := NewDamageSystem(ecs, bus)

	sys.Damage(enemy, 5, element.Frost, 0)
	sys.Damage(enemy, 5, element.Frost, 0)
	sys.Damage(enemy, 5, element.Frost, 0)
	sys.Update(0.016)

	buildup, ok := ecs.FreezeBuildups[enemy]
	if !ok {
		t.Fatal("no freeze buildup after frost damage")
	}
	if buildup.Stacks != 3 {
		t.Errorf("freeze stacks = %d, want 3", buildup.Stacks)
	}
	if got := ecs.Healths[enemy].Value; got != 85 {
		t.Errorf("health = %v, want 85", got)
	}
}

func TestPoisonDamageLeavesNeurotoxinAndMark(t *testing.T) {
	ecs, bus := newWorld()
	enemy := addEnemy(ecs, 0, 0)
	sys := NewDamageSystem(ecs, bus)

	sys.Damage(enemy, 12, element.Poison, 0)
	sys.Update(0.016)

	toxin, ok := ecs.Neurotoxins[enemy]
	if !ok {
		t.Fatal("no neurotoxin after poison damage")
	}
	if toxin.TimeLeft != config.NeurotoxinDuration {
		t.Errorf("neurotoxin duration = %v, want %v", toxin.TimeLeft, config.NeurotoxinDuration)
	}

	mark, ok := ecs.VirulentMarks[enemy]
	if !ok {
		t.Fatal("no virulent mark after poison damage")
	}
	if mark.SpreadDamage != 12 {
		t.Errorf("mark damage = %v, want 12", mark.SpreadDamage)
	}
	if mark.ChainDepth != 0 || mark.MaxChainDepth != config.VirulenceMaxChain {
		t.Errorf("mark depth = %d/%d, want 0/%d", mark.ChainDepth, mark.MaxChainDepth, config.VirulenceMaxChain)
	}
	if mark.SpreadRadius != config.VirulenceSpreadRadius || mark.Falloff != config.VirulenceFalloff {
		t.Errorf("mark spread = %v/%v, want config defaults", mark.SpreadRadius, mark.Falloff)
	}
}

func TestVirulentMarkUpgradesOnlyWithStrongerHit(t *testing.T) {
	ecs, bus := newWorld()
	enemy := addEnemy(ecs, 0, 0)
	sys := NewDamageSystem(ecs, bus)

	sys.Damage(enemy, 12, element.Poison, 0)
	sys.Update(0.016)
	sys.Damage(enemy, 8, element.Poison, 0)
	sys.Update(0.016)

	if got := ecs.VirulentMarks[enemy].SpreadDamage; got != 12 {
		t.Errorf("weaker hit changed mark damage to %v, want 12", got)
	}

	sys.Damage(enemy, 20, element.Poison, 0)
	sys.Update(0.016)

	if got := ecs.VirulentMarks[enemy].SpreadDamage; got != 20 {
		t.Errorf("stronger hit left mark damage at %v, want 20", got)
	}
	if got := ecs.VirulentMarks[enemy].ChainDepth; got != 0 {
		t.Errorf("upgrade changed chain depth to %d", got)
	}
}

func TestPoisonSecondariesSkipPlayer(t *testing.T) {
	ecs, bus := newWorld()
	player := addPlayer(ecs, 0, 0)
	sys := NewDamageSystem(ecs, bus)

	sys.Damage(player, 12, element.Poison, 0)
	sys.Update(0.016)

	if got := ecs.Healths[player].Value; got != 88 {
		t.Errorf("player health = %v, want 88", got)
	}
	if _, ok := ecs.Neurotoxins[player]; ok {
		t.Error("player received neurotoxin")
	}
	if _, ok := ecs.VirulentMarks[player]; ok {
		t.Error("player received virulent mark")
	}
}
