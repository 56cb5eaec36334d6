// internal/system/bolt.go
package system

import (
	"go-spell-arena/internal/component"
	"go-spell-arena/internal/entity"
	"go-spell-arena/internal/event"
	"go-spell-arena/internal/types"
)

// BoltSystem ведет прямолинейные снаряды. Обычный снаряд бьет первого
// встреченного врага напрямую, с учетом синергии по целям под
// контролем; разрывной вместо прямого удара оставляет волну, которая
// накрывает и саму цель.
type BoltSystem struct {
	ecs *entity.ECS
	bus *event.Bus
}

func NewBoltSystem(ecs *entity.ECS, bus *event.Bus) *BoltSystem {
	return &BoltSystem{ecs: ecs, bus: bus}
}

func (s *BoltSystem) Update(deltaTime float64) {
	for _, id := range sortedIDs(s.ecs.Bolts) {
		bolt := s.ecs.Bolts[id]
		bolt.TimeLeft -= deltaTime
		if bolt.TimeLeft <= 0 {
			s.ecs.RemoveEntity(id)
			continue
		}
		pos, ok := s.ecs.Positions[id]
		if !ok {
			s.ecs.RemoveEntity(id)
			continue
		}
		target, hit := s.firstContact(id, bolt, pos)
		if !hit {
			continue
		}
		if bolt.ExplodeRadius > 0 {
			s.explode(bolt, pos)
		} else {
			mult := 1.0
			if bolt.Synergy {
				mult = synergyMultiplier(s.ecs, target)
			}
			s.bus.PushDamage(event.DamageEvent{
				Target:  target,
				Amount:  bolt.Damage * mult,
				Element: bolt.Element,
				Source:  id,
			})
		}
		s.ecs.RemoveEntity(id)
	}
}

func (s *BoltSystem) firstContact(id types.EntityID, bolt *component.Bolt, pos *component.Position) (types.EntityID, bool) {
	for _, enemyID := range sortedIDs(s.ecs.Enemies) {
		enemyPos, ok := s.ecs.Positions[enemyID]
		if !ok {
			continue
		}
		if pos.Vec().Distance(enemyPos.Vec()) <= bolt.ContactRange {
			return enemyID, true
		}
	}
	return 0, false
}

func (s *BoltSystem) explode(bolt *component.Bolt, pos *component.Position) {
	burstID := s.ecs.NewEntity()
	s.ecs.Bursts[burstID] = component.NewBurst(
		pos.Vec(), bolt.ExplodeRadius, bolt.ExplodeDuration, bolt.Damage, bolt.Element,
	)
}
