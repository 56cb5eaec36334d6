// internal/entity/ecs_test.go
package entity

import (
	"testing"

	"go-spell-arena/internal/component"
)

func TestNewEntityMonotonic(t *testing.T) {
	ecs := NewECS()
	first := ecs.NewEntity()
	second := ecs.NewEntity()
	third := ecs.NewEntity()
	if first != 1 || second != 2 || third != 3 {
		t.Errorf("entity ids = %d, %d, %d, want 1, 2, 3", first, second, third)
	}
}

func TestActivationIDsReproducible(t *testing.T) {
	a := NewECS()
	b := NewECS()
	for i := 0; i < 3; i++ {
		idA := a.NewActivationID()
		idB := b.NewActivationID()
		if idA != idB {
			t.Fatalf("activation ids diverged: %d vs %d", idA, idB)
		}
		if idA != uint64(i+1) {
			t.Errorf("activation id #%d = %d, want %d", i, idA, i+1)
		}
	}
}

func TestRemoveEntityClearsAllTables(t *testing.T) {
	ecs := NewECS()
	id := ecs.NewEntity()
	ecs.Positions[id] = &component.Position{X: 1, Y: 2}
	ecs.Healths[id] = component.NewHealth(50)
	ecs.Enemies[id] = &component.Enemy{Speed: 5}
	ecs.PoisonStacks[id] = &component.PoisonStack{Stacks: 2}
	ecs.WraithMarks[id] = &component.WraithMark{ActivationID: 7}
	ecs.VirulentMarks[id] = &component.VirulentMark{ChainDepth: 1}

	ecs.RemoveEntity(id)

	if _, ok := ecs.Positions[id]; ok {
		t.Error("position survived removal")
	}
	if _, ok := ecs.Healths[id]; ok {
		t.Error("health survived removal")
	}
	if _, ok := ecs.Enemies[id]; ok {
		t.Error("enemy survived removal")
	}
	if _, ok := ecs.PoisonStacks[id]; ok {
		t.Error("poison stack survived removal")
	}
	if _, ok := ecs.WraithMarks[id]; ok {
		t.Error("wraith mark survived removal")
	}
	if _, ok := ecs.VirulentMarks[id]; ok {
		t.Error("virulent mark survived removal")
	}

	// Удаление несуществующей сущности — тихий no-op.
	ecs.RemoveEntity(9999)
}
