// internal/entity/ecs.go
package entity

import (
	"go-spell-arena/internal/component"
	"go-spell-arena/internal/config"
	"go-spell-arena/internal/types"
)

type ECS struct {
	GameTime         float64
	NextID           types.EntityID
	NextActivationID uint64 // Монотонный счетчик активаций проходных баффов.

	Positions   map[types.EntityID]*component.Position
	Velocities  map[types.EntityID]*component.Velocity
	Healths     map[types.EntityID]*component.Health
	Mortals     map[types.EntityID]*component.Mortal
	Renderables map[types.EntityID]*component.Renderable
	Enemies     map[types.EntityID]*component.Enemy
	Players     map[types.EntityID]*component.Player

	// Статусные эффекты: таблицы с ключом по цели. Вставка всегда
	// означает перезапись или обновление, никогда дублирование.
	Invincibilities map[types.EntityID]*component.Invincibility
	Burns           map[types.EntityID]*component.Burn
	PoisonStacks    map[types.EntityID]*component.PoisonStack
	SlowEffects     map[types.EntityID]*component.SlowEffect
	Frozens         map[types.EntityID]*component.Frozen
	FreezeBuildups  map[types.EntityID]*component.FreezeBuildup
	Stuns           map[types.EntityID]*component.Stun
	Confusions      map[types.EntityID]*component.Confusion
	Neurotoxins     map[types.EntityID]*component.Neurotoxin
	VirulentMarks   map[types.EntityID]*component.VirulentMark
	WraithMarks     map[types.EntityID]*component.WraithMark

	// Эффекты заклинаний: эфемерные сущности, ровно один компонент на каждую.
	Bursts         map[types.EntityID]*component.Burst
	Vortexes       map[types.EntityID]*component.Vortex
	Zones          map[types.EntityID]*component.Zone
	Droplets       map[types.EntityID]*component.Droplet
	ArcProjectiles map[types.EntityID]*component.ArcProjectile
	Fragments      map[types.EntityID]*component.Fragment
	Cones          map[types.EntityID]*component.Cone
	Turrets        map[types.EntityID]*component.Turret
	WraithForms    map[types.EntityID]*component.WraithForm
	Bolts          map[types.EntityID]*component.Bolt

	Stats *component.MatchStats
}

func NewECS() *ECS {
	return &ECS{
		NextID:           1,
		NextActivationID: 0,

		Positions:   make(map[types.EntityID]*component.Position),
		Velocities:  make(map[types.EntityID]*component.Velocity),
		Healths:     make(map[types.EntityID]*component.Health),
		Mortals:     make(map[types.EntityID]*component.Mortal),
		Renderables: make(map[types.EntityID]*component.Renderable),
		Enemies:     make(map[types.EntityID]*component.Enemy),
		Players:     make(map[types.EntityID]*component.Player),

		Invincibilities: make(map[types.EntityID]*component.Invincibility),
		Burns:           make(map[types.EntityID]*component.Burn),
		PoisonStacks:    make(map[types.EntityID]*component.PoisonStack),
		SlowEffects:     make(map[types.EntityID]*component.SlowEffect),
		Frozens:         make(map[types.EntityID]*component.Frozen),
		FreezeBuildups:  make(map[types.EntityID]*component.FreezeBuildup),
		Stuns:           make(map[types.EntityID]*component.Stun),
		Confusions:      make(map[types.EntityID]*component.Confusion),
		Neurotoxins:     make(map[types.EntityID]*component.Neurotoxin),
		VirulentMarks:   make(map[types.EntityID]*component.VirulentMark),
		WraithMarks:     make(map[types.EntityID]*component.WraithMark),

		Bursts:         make(map[types.EntityID]*component.Burst),
		Vortexes:       make(map[types.EntityID]*component.Vortex),
		Zones:          make(map[types.EntityID]*component.Zone),
		Droplets:       make(map[types.EntityID]*component.Droplet),
		ArcProjectiles: make(map[types.EntityID]*component.ArcProjectile),
		Fragments:      make(map[types.EntityID]*component.Fragment),
		Cones:          make(map[types.EntityID]*component.Cone),
		Turrets:        make(map[types.EntityID]*component.Turret),
		WraithForms:    make(map[types.EntityID]*component.WraithForm),
		Bolts:          make(map[types.EntityID]*component.Bolt),

		Stats: &component.MatchStats{MatchLevel: 1, KillsPerLevel: config.KillsPerMatchLevel},
	}
}

func (ecs *ECS) NewEntity() types.EntityID {
	id := ecs.NextID
	ecs.NextID++
	return id
}

// NewActivationID выдает следующий номер активации. Счетчик принадлежит
// миру, поэтому номера воспроизводимы от запуска к запуску.
func (ecs *ECS) NewActivationID() uint64 {
	ecs.NextActivationID++
	return ecs.NextActivationID
}

// RemoveEntity удаляет сущность из всех таблиц. Повторное удаление
// уже отсутствующей сущности безвредно.
func (ecs *ECS) RemoveEntity(id types.EntityID) {
	delete(ecs.Positions, id)
	delete(ecs.Velocities, id)
	delete(ecs.Healths, id)
	delete(ecs.Mortals, id)
	delete(ecs.Renderables, id)
	delete(ecs.Enemies, id)
	delete(ecs.Players, id)

	delete(ecs.Invincibilities, id)
	delete(ecs.Burns, id)
	delete(ecs.PoisonStacks, id)
	delete(ecs.SlowEffects, id)
	delete(ecs.Frozens, id)
	delete(ecs.FreezeBuildups, id)
	delete(ecs.Stuns, id)
	delete(ecs.Confusions, id)
	delete(ecs.Neurotoxins, id)
	delete(ecs.VirulentMarks, id)
	delete(ecs.WraithMarks, id)

	delete(ecs.Bursts, id)
	delete(ecs.Vortexes, id)
	delete(ecs.Zones, id)
	delete(ecs.Droplets, id)
	delete(ecs.ArcProjectiles, id)
	delete(ecs.Fragments, id)
	delete(ecs.Cones, id)
	delete(ecs.Turrets, id)
	delete(ecs.WraithForms, id)
	delete(ecs.Bolts, id)
}
