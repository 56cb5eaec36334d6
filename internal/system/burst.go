// internal/system/burst.go
package system

import (
	"go-spell-arena/internal/component"
	"go-spell-arena/internal/entity"
	"go-spell-arena/internal/event"
	"go-spell-arena/internal/types"
)

// BurstSystem расширяет волны и обрабатывает задетых врагов. Каждый
// враг обрабатывается не более одного раза за все время жизни волны;
// волна исчезает, достигнув максимального радиуса.
type BurstSystem struct {
	ecs *entity.ECS
	bus *event.Bus
}

func NewBurstSystem(ecs *entity.ECS, bus *event.Bus) *BurstSystem {
	return &BurstSystem{ecs: ecs, bus: bus}
}

func (s *BurstSystem) Update(deltaTime float64) {
	for _, id := range sortedIDs(s.ecs.Bursts) {
		burst := s.ecs.Bursts[id]
		burst.Expand(deltaTime)
		for _, enemyID := range sortedIDs(s.ecs.Enemies) {
			pos, ok := s.ecs.Positions[enemyID]
			if !ok {
				continue
			}
			if !burst.ShouldHit(enemyID, burst.Center.Distance(pos.Vec())) {
				continue
			}
			burst.MarkHit(enemyID)
			s.affect(burst, id, enemyID)
		}
		if burst.IsFinished() {
			s.ecs.RemoveEntity(id)
		}
	}
}

func (s *BurstSystem) affect(burst *component.Burst, source, enemyID types.EntityID) {
	switch burst.Kind {
	case component.BurstStun:
		applyStun(s.ecs, enemyID, burst.EffectTime)
	case component.BurstConfuse:
		applyConfusion(s.ecs, enemyID, burst.EffectTime)
	case component.BurstJitter:
		applyNeurotoxin(s.ecs, enemyID, burst.EffectTime)
		s.damage(burst, source, enemyID)
	default:
		s.damage(burst, source, enemyID)
	}
}

func (s *BurstSystem) damage(burst *component.Burst, source, enemyID types.EntityID) {
	if burst.Damage <= 0 {
		return
	}
	s.bus.PushDamage(event.DamageEvent{
		Target:  enemyID,
		Amount:  burst.Damage,
		Element: burst.Element,
		Source:  source,
	})
}
