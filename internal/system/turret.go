// internal/system/turret.go
package system

import (
	"go-spell-arena/internal/entity"
	"go-spell-arena/internal/event"
)

// TurretSystem ведет стационарные турели: по таймеру разряд в
// ближайшего врага в радиусе, урон плюс замедление.
type TurretSystem struct {
	ecs *entity.ECS
	bus *event.Bus
}

func NewTurretSystem(ecs *entity.ECS, bus *event.Bus) *TurretSystem {
	return &TurretSystem{ecs: ecs, bus: bus}
}

func (s *TurretSystem) Update(deltaTime float64) {
	for _, id := range sortedIDs(s.ecs.Turrets) {
		turret := s.ecs.Turrets[id]
		turret.TimeLeft -= deltaTime
		if turret.TimeLeft <= 0 {
			s.ecs.RemoveEntity(id)
			continue
		}
		turret.ZapTimer -= deltaTime
		if turret.ZapTimer > 0 {
			continue
		}
		turret.ZapTimer += turret.ZapInterval

		target, ok := nearestEnemy(s.ecs, turret.Position, turret.Range)
		if !ok {
			continue
		}
		s.bus.PushDamage(event.DamageEvent{
			Target:  target,
			Amount:  turret.Damage,
			Element: turret.Element,
			Source:  id,
		})
		applySlow(s.ecs, target, turret.SlowDuration, turret.SlowFactor)
	}
}
