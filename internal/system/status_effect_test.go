// internal/system/status_effect_test.go
package system

import (
	"testing"

	"go-spell-arena/internal/component"
	"go-spell-arena/internal/config"
	"go-spell-arena/internal/element"
	"go-spell-arena/internal/utils"
)

func TestBurnTicksThenExpires(t *testing.T) {
	ecs, bus := newWorld()
	enemy := addEnemy(ecs, 0, 0)
	applyBurn(ecs, enemy, 5, 1.0, 0.5)
	sys := NewStatusEffectSystem(ecs, bus, utils.NewPRNGService(1))

	sys.Update(0.5)
	first := bus.DrainDamage()
	if len(first) != 1 || first[0].Amount != 5 || first[0].Element != element.Fire {
		t.Fatalf("first tick = %+v, want one fire hit of 5", first)
	}

	// Тик на границе длительности еще срабатывает, затем эффект снимается.
	sys.Update(0.5)
	second := bus.DrainDamage()
	if len(second) != 1 || second[0].Amount != 5 {
		t.Fatalf("expiry tick = %+v, want one hit of 5", second)
	}
	if _, ok := ecs.Burns[enemy]; ok {
		t.Error("burn survived its duration")
	}
}

func TestBurnReapplyRefreshesDuration(t *testing.T) {
	ecs, bus := newWorld()
	enemy := addEnemy(ecs, 0, 0)
	applyBurn(ecs, enemy, 5, 1.0, 0.5)
	sys := NewStatusEffectSystem(ecs, bus, utils.NewPRNGService(1))

	sys.Update(0.5)
	applyBurn(ecs, enemy, 50, 1.0, 0.5)

	burn := ecs.Burns[enemy]
	if burn.TimeLeft != 1.0 {
		t.Errorf("refreshed duration = %v, want 1.0", burn.TimeLeft)
	}
	if burn.DamagePerTick != 5 {
		t.Errorf("reapply changed tick damage to %v", burn.DamagePerTick)
	}
}

func TestPoisonTickScalesWithStacks(t *testing.T) {
	ecs, bus := newWorld()
	enemy := addEnemy(ecs, 0, 0)
	applyPoisonStack(ecs, enemy)
	applyPoisonStack(ecs, enemy)
	applyPoisonStack(ecs, enemy)
	sys := NewStatusEffectSystem(ecs, bus, utils.NewPRNGService(1))

	sys.Update(config.PoisonTickInterval)

	events := bus.DrainDamage()
	if len(events) != 1 {
		t.Fatalf("drained %d events, want 1", len(events))
	}
	want := 3 * config.PoisonDamagePerStack
	if events[0].Amount != want || events[0].Element != element.Poison {
		t.Errorf("poison tick = %+v, want %v poison", events[0], want)
	}
}

func TestPoisonStacksCapped(t *testing.T) {
	ecs, _ := newWorld()
	enemy := addEnemy(ecs, 0, 0)
	for i := 0; i < 7; i++ {
		applyPoisonStack(ecs, enemy)
	}
	if got := ecs.PoisonStacks[enemy].Stacks; got != config.PoisonMaxStacks {
		t.Errorf("stacks = %d, want cap %d", got, config.PoisonMaxStacks)
	}
}

func TestFreezeBuildupConvertsAtMax(t *testing.T) {
	ecs, bus := newWorld()
	enemy := addEnemy(ecs, 0, 0)
	for i := 0; i < config.FreezeMaxStacks; i++ {
		applyFreezeStack(ecs, enemy)
	}
	sys := NewStatusEffectSystem(ecs, bus, utils.NewPRNGService(1))

	sys.Update(0.016)

	frozen, ok := ecs.Frozens[enemy]
	if !ok {
		t.Fatal("full buildup did not freeze the target")
	}
	if frozen.TimeLeft != config.FrozenDuration {
		t.Errorf("frozen duration = %v, want %v", frozen.TimeLeft, config.FrozenDuration)
	}
	if _, ok := ecs.FreezeBuildups[enemy]; ok {
		t.Error("buildup survived conversion")
	}

	// Замороженная цель стаки не копит: счет начнется заново после
	// оттаивания.
	applyFreezeStack(ecs, enemy)
	if _, ok := ecs.FreezeBuildups[enemy]; ok {
		t.Error("frozen target accumulated new buildup")
	}
}

func TestFreezeBuildupDecays(t *testing.T) {
	ecs, bus := newWorld()
	enemy := addEnemy(ecs, 0, 0)
	applyFreezeStack(ecs, enemy)
	applyFreezeStack(ecs, enemy)
	sys := NewStatusEffectSystem(ecs, bus, utils.NewPRNGService(1))

	sys.Update(config.FreezeDecayInterval)
	if got := ecs.FreezeBuildups[enemy].Stacks; got != 1 {
		t.Errorf("stacks after decay = %d, want 1", got)
	}

	sys.Update(config.FreezeDecayInterval)
	if _, ok := ecs.FreezeBuildups[enemy]; ok {
		t.Error("buildup survived full decay")
	}
}

func TestControlTimersExpire(t *testing.T) {
	ecs, bus := newWorld()
	enemy := addEnemy(ecs, 0, 0)
	ecs.SlowEffects[enemy] = &component.SlowEffect{Timer: 1.0, SlowFactor: 0.6}
	ecs.Stuns[enemy] = &component.Stun{TimeLeft: 1.0}
	ecs.Frozens[enemy] = &component.Frozen{TimeLeft: 1.0}
	sys := NewStatusEffectSystem(ecs, bus, utils.NewPRNGService(1))

	sys.Update(0.5)
	if len(ecs.SlowEffects) != 1 || len(ecs.Stuns) != 1 || len(ecs.Frozens) != 1 {
		t.Fatal("control effects expired early")
	}

	sys.Update(0.5)
	if len(ecs.SlowEffects) != 0 || len(ecs.Stuns) != 0 || len(ecs.Frozens) != 0 {
		t.Error("control effects survived their duration")
	}
}

func TestConfusedStrikeHitsAdjacentTarget(t *testing.T) {
	ecs, bus := newWorld()
	attacker := addEnemy(ecs, 0, 0)
	victim := addEnemy(ecs, 1, 0)
	ecs.Confusions[attacker] = &component.Confusion{
		TimeLeft:         10,
		RetargetTimer:    0.5,
		RetargetInterval: 0.5,
		TargetID:         victim,
		SpeedFactor:      config.ConfusionSpeedFactor,
	}
	sys := NewStatusEffectSystem(ecs, bus, utils.NewPRNGService(1))

	sys.Update(0.5)

	events := bus.DrainDamage()
	if len(events) != 1 {
		t.Fatalf("drained %d events, want 1", len(events))
	}
	if events[0].Target != victim || events[0].Amount != 10 || events[0].Source != attacker {
		t.Errorf("confused strike = %+v", events[0])
	}
}

func TestConfusedStrikeSkipsDistantTarget(t *testing.T) {
	ecs, bus := newWorld()
	attacker := addEnemy(ecs, 0, 0)
	victim := addEnemy(ecs, config.ConfusionAttackRange+1, 0)
	ecs.Confusions[attacker] = &component.Confusion{
		TimeLeft:         10,
		RetargetTimer:    0.5,
		RetargetInterval: 0.5,
		TargetID:         victim,
	}
	sys := NewStatusEffectSystem(ecs, bus, utils.NewPRNGService(1))

	sys.Update(0.5)

	if got := bus.PendingDamage(); got != 0 {
		t.Errorf("distant target took %d hits", got)
	}
}

func TestConfusionExpires(t *testing.T) {
	ecs, bus := newWorld()
	enemy := addEnemy(ecs, 0, 0)
	ecs.Confusions[enemy] = &component.Confusion{TimeLeft: 0.3, RetargetTimer: 0.1, RetargetInterval: 0.5}
	sys := NewStatusEffectSystem(ecs, bus, utils.NewPRNGService(1))

	sys.Update(0.5)

	if _, ok := ecs.Confusions[enemy]; ok {
		t.Error("confusion survived its duration")
	}
	if got := bus.PendingDamage(); got != 0 {
		t.Errorf("expiring confusion queued %d hits", got)
	}
}

func TestNeurotoxinRerollsJitterAndExpires(t *testing.T) {
	ecs, bus := newWorld()
	enemy := addEnemy(ecs, 0, 0)
	ecs.Neurotoxins[enemy] = &component.Neurotoxin{
		TimeLeft:       1.0,
		JitterAmount:   config.NeurotoxinJitter,
		JitterTimer:    0.2,
		JitterInterval: 0.2,
	}
	sys := NewStatusEffectSystem(ecs, bus, utils.NewPRNGService(1))

	sys.Update(0.2)
	toxin := ecs.Neurotoxins[enemy]
	if toxin.CurrentJitter.IsZero() {
		t.Error("jitter not rerolled on timer boundary")
	}
	if toxin.TimeLeft != 0.8 {
		t.Errorf("time left = %v, want 0.8", toxin.TimeLeft)
	}

	sys.Update(1.0)
	if _, ok := ecs.Neurotoxins[enemy]; ok {
		t.Error("neurotoxin survived its duration")
	}
}
