// internal/app/simulation_test.go
package app

import (
	"math"
	"sort"
	"strings"
	"testing"

	"go-spell-arena/pkg/geom"

	"go-spell-arena/internal/component"
	"go-spell-arena/internal/config"
	"go-spell-arena/internal/types"
)

func testSettings(seed int64) *config.Settings {
	return &config.Settings{
		Seed:        seed,
		StepSeconds: 1.0 / 60.0,
		Loadout:     "SPELL_NOVA,SPELL_VENOM_SPRAY,SPELL_STATIC_ORB",
		SpellLevel:  1,
	}
}

func TestNewSimulationEquipsLoadout(t *testing.T) {
	sim, err := NewSimulation(testSettings(1), nil, nil)
	if err != nil {
		t.Fatalf("new simulation: %v", err)
	}
	spells := sim.CastingSystem.Spells()
	if len(spells) != 3 {
		t.Fatalf("equipped %d spells, want 3", len(spells))
	}
	if spells[0].Def.ID != "SPELL_NOVA" {
		t.Errorf("first spell = %q, want SPELL_NOVA", spells[0].Def.ID)
	}
	if _, ok := sim.ECS.Players[sim.PlayerID]; !ok {
		t.Error("no player entity after construction")
	}
	if _, ok := sim.ECS.Invincibilities[sim.PlayerID]; !ok {
		t.Error("player spawned without starting invincibility")
	}
}

func TestNewSimulationRejectsUnknownSpell(t *testing.T) {
	settings := testSettings(1)
	settings.Loadout = "SPELL_NOVA,SPELL_BOGUS"
	_, err := NewSimulation(settings, nil, nil)
	if err == nil {
		t.Fatal("unknown spell accepted")
	}
	if !strings.Contains(err.Error(), "SPELL_BOGUS") {
		t.Errorf("error %q does not name the spell", err)
	}
}

func TestStepIgnoresNonPositiveDelta(t *testing.T) {
	sim, err := NewSimulation(testSettings(1), nil, nil)
	if err != nil {
		t.Fatalf("new simulation: %v", err)
	}

	sim.Step(0)
	sim.Step(-1)

	if sim.Steps() != 0 {
		t.Errorf("steps = %d, want 0", sim.Steps())
	}
	if sim.ECS.GameTime != 0 {
		t.Errorf("game time = %v, want 0", sim.ECS.GameTime)
	}
}

func TestStepClampsOversizedDelta(t *testing.T) {
	sim, err := NewSimulation(testSettings(1), nil, nil)
	if err != nil {
		t.Fatalf("new simulation: %v", err)
	}

	sim.Step(1.0)

	if got := sim.ECS.GameTime; got != config.MaxDeltaTime {
		t.Errorf("game time after clamped step = %v, want %v", got, config.MaxDeltaTime)
	}
	if got := sim.ECS.Stats.SurvivalTime; got != config.MaxDeltaTime {
		t.Errorf("survival time = %v, want %v", got, config.MaxDeltaTime)
	}
}

func TestStepLeavesQueuesEmpty(t *testing.T) {
	settings := testSettings(5)
	// Урон распространения заразы намеренно переживает шаг, поэтому
	// здесь набор без яда.
	settings.Loadout = "SPELL_NOVA,SPELL_STATIC_ORB"
	sim, err := NewSimulation(settings, nil, nil)
	if err != nil {
		t.Fatalf("new simulation: %v", err)
	}

	for i := 0; i < 600; i++ {
		sim.Step(1.0 / 60.0)
		if got := sim.Bus.PendingDamage(); got != 0 {
			t.Fatalf("step %d left %d damage events queued", i, got)
		}
	}
	if got := len(sim.Bus.DrainDeaths()); got != 0 {
		t.Errorf("death queue holds %d events", got)
	}
	if got := len(sim.Bus.DrainEnemyDeaths()); got != 0 {
		t.Errorf("enemy death queue holds %d events", got)
	}
	if got := len(sim.Bus.DrainLoot()); got != 0 {
		t.Errorf("loot queue holds %d events", got)
	}
}

func TestSeededRunsAreIdentical(t *testing.T) {
	run := func() *Simulation {
		sim, err := NewSimulation(testSettings(99), nil, nil)
		if err != nil {
			t.Fatalf("new simulation: %v", err)
		}
		for i := 0; i < 600; i++ {
			sim.Step(1.0 / 60.0)
		}
		return sim
	}

	a := run()
	b := run()

	if a.ECS.Stats.Score != b.ECS.Stats.Score {
		t.Errorf("scores diverged: %d vs %d", a.ECS.Stats.Score, b.ECS.Stats.Score)
	}
	if a.ECS.Stats.Kills != b.ECS.Stats.Kills {
		t.Errorf("kills diverged: %d vs %d", a.ECS.Stats.Kills, b.ECS.Stats.Kills)
	}
	if a.ECS.GameTime != b.ECS.GameTime {
		t.Errorf("game time diverged: %v vs %v", a.ECS.GameTime, b.ECS.GameTime)
	}
	if len(a.ECS.Enemies) != len(b.ECS.Enemies) {
		t.Fatalf("enemy counts diverged: %d vs %d", len(a.ECS.Enemies), len(b.ECS.Enemies))
	}

	ids := make([]types.EntityID, 0, len(a.ECS.Enemies))
	for id := range a.ECS.Enemies {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	for _, id := range ids {
		pa, ok := a.ECS.Positions[id]
		if !ok {
			t.Fatalf("run A enemy %d has no position", id)
		}
		pb, ok := b.ECS.Positions[id]
		if !ok {
			t.Fatalf("run B lacks enemy %d", id)
		}
		if pa.X != pb.X || pa.Y != pb.Y {
			t.Errorf("enemy %d positions diverged: (%v, %v) vs (%v, %v)", id, pa.X, pa.Y, pb.X, pb.Y)
		}
	}
}

func TestPlayerDeathEndsRun(t *testing.T) {
	sim, err := NewSimulation(testSettings(1), nil, nil)
	if err != nil {
		t.Fatalf("new simulation: %v", err)
	}
	ecs := sim.ECS
	ecs.Healths[sim.PlayerID].Value = 1
	delete(ecs.Invincibilities, sim.PlayerID)

	// Враг вплотную к игроку бьет контактом в первом же шаге.
	id := ecs.NewEntity()
	ecs.Positions[id] = &component.Position{X: 0, Y: 0}
	ecs.Enemies[id] = &component.Enemy{DefID: "ENEMY_GRUNT", Strength: 50, Radius: 0.5}
	ecs.Healths[id] = component.NewHealth(1000)
	ecs.Mortals[id] = &component.Mortal{Cause: component.CauseEnemy}

	sim.Step(1.0 / 60.0)

	if !sim.GameOver() {
		t.Fatal("run not over after lethal contact")
	}
	if _, ok := ecs.Players[sim.PlayerID]; !ok {
		t.Error("player entity removed on death")
	}
}

func TestSetPlayerInputScalesToSpeed(t *testing.T) {
	sim, err := NewSimulation(testSettings(1), nil, nil)
	if err != nil {
		t.Fatalf("new simulation: %v", err)
	}

	sim.SetPlayerInput(geom.V(3, 4))

	vel := sim.ECS.Velocities[sim.PlayerID]
	if math.Abs(vel.X-3.6) > 1e-9 || math.Abs(vel.Y-4.8) > 1e-9 {
		t.Errorf("velocity = (%v, %v), want (3.6, 4.8)", vel.X, vel.Y)
	}
	aim := sim.ECS.Players[sim.PlayerID].AimDirection
	if math.Abs(aim.Length()-1) > 1e-9 {
		t.Errorf("aim length = %v, want unit", aim.Length())
	}

	// Остановка обнуляет скорость, но прицел остается.
	sim.SetPlayerInput(geom.V(0, 0))
	if vel.X != 0 || vel.Y != 0 {
		t.Errorf("velocity after stop = (%v, %v)", vel.X, vel.Y)
	}
	if sim.ECS.Players[sim.PlayerID].AimDirection.IsZero() {
		t.Error("stopping cleared the aim")
	}
}
