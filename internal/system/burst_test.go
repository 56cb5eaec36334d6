// internal/system/burst_test.go
package system

import (
	"testing"

	"go-spell-arena/pkg/geom"

	"go-spell-arena/internal/component"
	"go-spell-arena/internal/defs"
	"go-spell-arena/internal/element"
)

func TestBurstHitsEachEnemyOnce(t *testing.T) {
	ecs, bus := newWorld()
	enemy := addEnemy(ecs, 2, 0)
	id := ecs.NewEntity()
	ecs.Bursts[id] = component.NewBurst(geom.V(0, 0), 10, 1.0, 8, element.Fire)
	sys := NewBurstSystem(ecs, bus)

	// Радиус 5 после половины длительности накрывает врага.
	sys.Update(0.5)
	first := bus.DrainDamage()
	if len(first) != 1 || first[0].Target != enemy || first[0].Amount != 8 {
		t.Fatalf("first expansion = %+v, want one hit of 8", first)
	}

	// Полный радиус: враг уже задет, волна исчезает.
	sys.Update(0.5)
	if got := bus.PendingDamage(); got != 0 {
		t.Errorf("second expansion queued %d hits", got)
	}
	if _, ok := ecs.Bursts[id]; ok {
		t.Error("finished burst still in world")
	}
}

func TestInstantBurstLivesOneStep(t *testing.T) {
	ecs, bus := newWorld()
	enemy := addEnemy(ecs, 5, 0)
	id := ecs.NewEntity()
	ecs.Bursts[id] = component.NewBurst(geom.V(0, 0), 6, 0, 10, element.Psychic)
	sys := NewBurstSystem(ecs, bus)

	sys.Update(0.016)

	events := bus.DrainDamage()
	if len(events) != 1 || events[0].Target != enemy || events[0].Amount != 10 {
		t.Fatalf("instant burst = %+v, want one hit of 10", events)
	}
	if _, ok := ecs.Bursts[id]; ok {
		t.Error("instant burst survived its single step")
	}
}

func TestStunBurstAppliesStunWithoutDamage(t *testing.T) {
	ecs, bus := newWorld()
	enemy := addEnemy(ecs, 3, 0)
	CastBurst(ecs, geom.V(0, 0), &defs.BurstParams{
		Radius: 8, Effect: defs.BurstEffectStun, EffectTime: 2.0,
	}, 12, element.Psychic)
	sys := NewBurstSystem(ecs, bus)

	sys.Update(0.016)

	stun, ok := ecs.Stuns[enemy]
	if !ok {
		t.Fatal("stun burst left no stun")
	}
	if stun.TimeLeft != 2.0 {
		t.Errorf("stun duration = %v, want 2.0", stun.TimeLeft)
	}
	if got := bus.PendingDamage(); got != 0 {
		t.Errorf("stun burst queued %d hits", got)
	}
}

func TestConfuseBurstAppliesConfusionWithoutDamage(t *testing.T) {
	ecs, bus := newWorld()
	enemy := addEnemy(ecs, 3, 0)
	CastBurst(ecs, geom.V(0, 0), &defs.BurstParams{
		Radius: 7, Effect: defs.BurstEffectConfuse, EffectTime: 4.0,
	}, 28, element.Chaos)
	sys := NewBurstSystem(ecs, bus)

	sys.Update(0.016)

	confusion, ok := ecs.Confusions[enemy]
	if !ok {
		t.Fatal("confuse burst left no confusion")
	}
	if confusion.TimeLeft != 4.0 {
		t.Errorf("confusion duration = %v, want 4.0", confusion.TimeLeft)
	}
	if got := bus.PendingDamage(); got != 0 {
		t.Errorf("confuse burst queued %d hits", got)
	}
}

func TestJitterBurstDamagesAndPoisonsMovement(t *testing.T) {
	ecs, bus := newWorld()
	enemy := addEnemy(ecs, 3, 0)
	CastBurst(ecs, geom.V(0, 0), &defs.BurstParams{
		Radius: 12, Effect: defs.BurstEffectJitter, EffectTime: 3.0,
	}, 35, element.Psychic)
	sys := NewBurstSystem(ecs, bus)

	sys.Update(0.016)

	toxin, ok := ecs.Neurotoxins[enemy]
	if !ok {
		t.Fatal("jitter burst left no neurotoxin")
	}
	if toxin.TimeLeft != 3.0 {
		t.Errorf("neurotoxin duration = %v, want 3.0", toxin.TimeLeft)
	}
	events := bus.DrainDamage()
	if len(events) != 1 || events[0].Amount != 35 {
		t.Errorf("jitter burst hits = %+v, want one of 35", events)
	}
}
