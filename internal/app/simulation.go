// internal/app/simulation.go
package app

import (
	"context"
	"fmt"

	"go-spell-arena/internal/assets"
	"go-spell-arena/internal/component"
	"go-spell-arena/internal/config"
	"go-spell-arena/internal/defs"
	"go-spell-arena/internal/entity"
	"go-spell-arena/internal/event"
	"go-spell-arena/internal/system"
	"go-spell-arena/internal/types"
	"go-spell-arena/internal/utils"
	"go-spell-arena/pkg/geom"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"
)

// Simulation владеет миром ECS и продвигает бой на один шаг за вызов.
type Simulation struct {
	ECS        *entity.ECS
	Bus        *event.Bus
	Dispatcher *event.Dispatcher
	Rng        *utils.PRNGService
	RunID      uuid.UUID
	PlayerID   types.EntityID

	SpawnSystem         *system.SpawnSystem
	CastingSystem       *system.CastingSystem
	BurstSystem         *system.BurstSystem
	VortexSystem        *system.VortexSystem
	ZoneSystem          *system.ZoneSystem
	ArcSystem           *system.ArcSystem
	ConeSystem          *system.ConeSystem
	TurretSystem        *system.TurretSystem
	WraithSystem        *system.WraithSystem
	BoltSystem          *system.BoltSystem
	StatusEffectSystem  *system.StatusEffectSystem
	MovementSystem      *system.MovementSystem
	PlayerContactSystem *system.PlayerContactSystem
	DamageSystem        *system.DamageSystem
	DeathSystem         *system.DeathSystem
	DeathResolution     *system.DeathResolutionSystem
	CleanupSystem       *system.CleanupSystem

	tracer   trace.Tracer
	steps    uint64
	gameOver bool
}

// NewSimulation собирает мир: игрока в центре арены, выбранные заклинания
// и все системы. handles может быть nil (headless-режим без визуальных
// компонентов), tracer может быть nil (телеметрия выключена).
func NewSimulation(settings *config.Settings, handles *assets.Handles, tracer trace.Tracer) (*Simulation, error) {
	if tracer == nil {
		tracer = noop.NewTracerProvider().Tracer("spell-arena/simulation")
	}

	ids := settings.LoadoutIDs()
	spells := make([]*system.EquippedSpell, 0, len(ids))
	for _, id := range ids {
		def, ok := defs.SpellLibrary[id]
		if !ok {
			return nil, fmt.Errorf("unknown spell %q in loadout", id)
		}
		// Библиотека хранит значения; снаряжение ссылается на свою копию.
		d := def
		spells = append(spells, &system.EquippedSpell{Def: &d, Level: settings.SpellLevel})
	}

	ecs := entity.NewECS()
	bus := event.NewBus()
	dispatcher := event.NewDispatcher()
	rng := utils.NewPRNGService(settings.Seed)

	s := &Simulation{
		ECS:        ecs,
		Bus:        bus,
		Dispatcher: dispatcher,
		Rng:        rng,
		RunID:      uuid.New(),
		tracer:     tracer,
	}

	s.SpawnSystem = system.NewSpawnSystem(ecs, rng, handles)
	s.CastingSystem = system.NewCastingSystem(ecs, bus, dispatcher, rng, spells)
	s.BurstSystem = system.NewBurstSystem(ecs, bus)
	s.VortexSystem = system.NewVortexSystem(ecs, bus)
	s.ZoneSystem = system.NewZoneSystem(ecs, bus, rng)
	s.ArcSystem = system.NewArcSystem(ecs, bus, rng)
	s.ConeSystem = system.NewConeSystem(ecs, bus)
	s.TurretSystem = system.NewTurretSystem(ecs, bus)
	s.WraithSystem = system.NewWraithSystem(ecs, bus)
	s.BoltSystem = system.NewBoltSystem(ecs, bus)
	s.StatusEffectSystem = system.NewStatusEffectSystem(ecs, bus, rng)
	s.MovementSystem = system.NewMovementSystem(ecs)
	s.PlayerContactSystem = system.NewPlayerContactSystem(ecs, bus)
	s.DamageSystem = system.NewDamageSystem(ecs, bus)
	s.DeathSystem = system.NewDeathSystem(ecs, bus)
	s.DeathResolution = system.NewDeathResolutionSystem(ecs, bus, dispatcher)
	s.CleanupSystem = system.NewCleanupSystem(ecs)

	s.createPlayer(handles)

	listener := &simulationListener{sim: s}
	dispatcher.Subscribe(event.PlayerDied, listener)

	return s, nil
}

func (s *Simulation) createPlayer(handles *assets.Handles) {
	id := s.ECS.NewEntity()
	s.ECS.Positions[id] = &component.Position{}
	s.ECS.Velocities[id] = &component.Velocity{}
	s.ECS.Players[id] = &component.Player{
		Speed:        config.PlayerSpeed,
		PickupRadius: config.PlayerPickupRadius,
		Radius:       config.PlayerRadius,
	}
	s.ECS.Healths[id] = component.NewHealth(config.PlayerHealth)
	s.ECS.Mortals[id] = &component.Mortal{Cause: component.CausePlayer}
	// Стартовая неуязвимость: первые враги появляются рядом с игроком.
	s.ECS.Invincibilities[id] = &component.Invincibility{Timer: config.InvincibilityDuration}
	if handles != nil {
		s.ECS.Renderables[id] = &component.Renderable{
			Color:  config.PlayerColor,
			Radius: config.PlayerRadius,
		}
	}
	s.PlayerID = id
}

// Step продвигает симуляцию на deltaTime секунд. Шаг длиннее
// config.MaxDeltaTime усекается, чтобы рывок после паузы или лага
// не разорвал контактные проверки.
func (s *Simulation) Step(deltaTime float64) {
	if deltaTime <= 0 {
		return
	}
	if deltaTime > config.MaxDeltaTime {
		deltaTime = config.MaxDeltaTime
	}

	_, span := s.tracer.Start(context.Background(), "simulation.step")
	defer span.End()

	s.steps++
	s.ECS.GameTime += deltaTime
	s.ECS.Stats.SurvivalTime += deltaTime

	// Порядок фиксирован: источники урона пишут в очередь событий,
	// DamageSystem разбирает ее целиком, затем фиксируются смерти.
	s.SpawnSystem.Update(deltaTime)
	s.CastingSystem.Update(deltaTime)
	s.BurstSystem.Update(deltaTime)
	s.VortexSystem.Update(deltaTime)
	s.ZoneSystem.Update(deltaTime)
	s.ArcSystem.Update(deltaTime)
	s.ConeSystem.Update(deltaTime)
	s.TurretSystem.Update(deltaTime)
	s.WraithSystem.Update(deltaTime)
	s.BoltSystem.Update(deltaTime)
	s.StatusEffectSystem.Update(deltaTime)
	s.MovementSystem.Update(deltaTime)
	s.PlayerContactSystem.Update(deltaTime)
	s.DamageSystem.Update(deltaTime)
	s.DeathSystem.Update(deltaTime)
	s.DeathResolution.Update(deltaTime)
	s.CleanupSystem.Update(deltaTime)

	span.SetAttributes(
		attribute.String("run.id", s.RunID.String()),
		attribute.Int64("step", int64(s.steps)),
		attribute.Int("enemies", len(s.ECS.Enemies)),
		attribute.Float64("game_time", s.ECS.GameTime),
		attribute.Int("score", s.ECS.Stats.Score),
	)
}

// SetPlayerInput задает направление движения игрока до следующего вызова.
// Ненулевое направление также обновляет прицел.
func (s *Simulation) SetPlayerInput(dir geom.Vec2) {
	vel, ok := s.ECS.Velocities[s.PlayerID]
	if !ok {
		return
	}
	player, ok := s.ECS.Players[s.PlayerID]
	if !ok {
		return
	}
	v := dir.Normalize().Scale(player.Speed)
	vel.X = v.X
	vel.Y = v.Y
	if !dir.IsZero() {
		player.AimDirection = dir.Normalize()
	}
}

// GameOver сообщает, погиб ли игрок.
func (s *Simulation) GameOver() bool {
	return s.gameOver
}

// Steps возвращает число выполненных шагов.
func (s *Simulation) Steps() uint64 {
	return s.steps
}

// simulationListener следит за событиями, завершающими прогон.
type simulationListener struct {
	sim *Simulation
}

// OnEvent реализует интерфейс event.Listener.
func (l *simulationListener) OnEvent(e event.Event) {
	if e.Type == event.PlayerDied {
		l.sim.gameOver = true
	}
}
