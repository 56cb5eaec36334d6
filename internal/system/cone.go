// internal/system/cone.go
package system

import (
	"go-spell-arena/internal/entity"
	"go-spell-arena/internal/event"
)

// ConeSystem обрабатывает секторные атаки: каждый враг внутри сектора
// задевается не более одного раза за каст. Попадания засчитываются и
// на последнем кадре жизни сектора.
type ConeSystem struct {
	ecs *entity.ECS
	bus *event.Bus
}

func NewConeSystem(ecs *entity.ECS, bus *event.Bus) *ConeSystem {
	return &ConeSystem{ecs: ecs, bus: bus}
}

func (s *ConeSystem) Update(deltaTime float64) {
	for _, id := range sortedIDs(s.ecs.Cones) {
		cone := s.ecs.Cones[id]
		cone.TimeLeft -= deltaTime

		for _, enemyID := range sortedIDs(s.ecs.Enemies) {
			pos, ok := s.ecs.Positions[enemyID]
			if !ok {
				continue
			}
			if !cone.CanDamage(enemyID, pos.Vec()) {
				continue
			}
			cone.MarkHit(enemyID)
			s.bus.PushDamage(event.DamageEvent{
				Target:  enemyID,
				Amount:  cone.Damage,
				Element: cone.Element,
				Source:  id,
			})
			if cone.Poison {
				applyPoisonStack(s.ecs, enemyID)
			}
		}

		if cone.TimeLeft <= 0 {
			s.ecs.RemoveEntity(id)
		}
	}
}
