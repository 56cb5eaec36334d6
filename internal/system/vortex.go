// internal/system/vortex.go
package system

import (
	"go-spell-arena/internal/entity"
	"go-spell-arena/internal/event"
)

// VortexSystem тянет врагов к центрам воронок и наносит урон по
// независимому тику. Притяжение действует каждый шаг на всех врагов
// в радиусе, урон — только на границе тика.
type VortexSystem struct {
	ecs *entity.ECS
	bus *event.Bus
}

func NewVortexSystem(ecs *entity.ECS, bus *event.Bus) *VortexSystem {
	return &VortexSystem{ecs: ecs, bus: bus}
}

func (s *VortexSystem) Update(deltaTime float64) {
	for _, id := range sortedIDs(s.ecs.Vortexes) {
		vortex := s.ecs.Vortexes[id]
		vortex.TimeLeft -= deltaTime
		if vortex.TimeLeft <= 0 {
			s.ecs.RemoveEntity(id)
			continue
		}
		vortex.Rotation += vortex.RotationSpeed * deltaTime

		vortex.TickTimer -= deltaTime
		damageTick := vortex.TickTimer <= 0
		if damageTick {
			vortex.TickTimer += vortex.TickInterval
		}

		for _, enemyID := range sortedIDs(s.ecs.Enemies) {
			pos, ok := s.ecs.Positions[enemyID]
			if !ok {
				continue
			}
			shift := vortex.Pull(pos.Vec(), deltaTime)
			if !shift.IsZero() {
				pos.SetVec(pos.Vec().Add(shift))
			}
			if damageTick && vortex.Center.Distance(pos.Vec()) <= vortex.PullRadius {
				s.bus.PushDamage(event.DamageEvent{
					Target:  enemyID,
					Amount:  vortex.DamagePerTick,
					Element: vortex.Element,
					Source:  id,
				})
			}
		}
	}
}
