// internal/system/movement.go
package system

import (
	"go-spell-arena/pkg/geom"

	"go-spell-arena/internal/component"
	"go-spell-arena/internal/config"
	"go-spell-arena/internal/entity"
)

// MovementSystem двигает сущности: интегрирует скорости свободно
// летящих тел и ведет врагов к их целям с учетом модификаторов.
// Отсутствие модификатора означает движение по умолчанию.
type MovementSystem struct {
	ecs *entity.ECS
}

func NewMovementSystem(ecs *entity.ECS) *MovementSystem {
	return &MovementSystem{ecs: ecs}
}

func (s *MovementSystem) Update(deltaTime float64) {
	s.integrateVelocities(deltaTime)
	s.moveEnemies(deltaTime)
}

// integrateVelocities — снаряды, осколки и игрок. Замедление игрока
// масштабирует его скорость; границы арены держат только игрока,
// снаряды истекают по собственным таймерам.
func (s *MovementSystem) integrateVelocities(deltaTime float64) {
	for _, id := range sortedIDs(s.ecs.Velocities) {
		pos, ok := s.ecs.Positions[id]
		if !ok {
			continue
		}
		vel := s.ecs.Velocities[id]
		scale := 1.0
		_, isPlayer := s.ecs.Players[id]
		if isPlayer {
			if slow, ok := s.ecs.SlowEffects[id]; ok {
				scale = slow.SlowFactor
			}
		}
		pos.X += vel.X * deltaTime * scale
		pos.Y += vel.Y * deltaTime * scale
		if isPlayer {
			clampToArena(pos)
		}
	}
}

func (s *MovementSystem) moveEnemies(deltaTime float64) {
	var playerPos geom.Vec2
	hasPlayer := false
	if id, ok := playerID(s.ecs); ok {
		if p, ok := s.ecs.Positions[id]; ok {
			playerPos = p.Vec()
			hasPlayer = true
		}
	}

	for _, id := range sortedIDs(s.ecs.Enemies) {
		enemy := s.ecs.Enemies[id]
		pos, ok := s.ecs.Positions[id]
		if !ok {
			continue
		}
		// Заморозка и оглушение останавливают врага полностью,
		// включая дрожание нейротоксина.
		if _, ok := s.ecs.Frozens[id]; ok {
			continue
		}
		if _, ok := s.ecs.Stuns[id]; ok {
			continue
		}

		var dir geom.Vec2
		speed := enemy.Speed
		if confusion, ok := s.ecs.Confusions[id]; ok {
			dir = s.confusedDirection(pos.Vec(), confusion)
			speed *= confusion.SpeedFactor
		} else if hasPlayer {
			dir = playerPos.Sub(pos.Vec()).Normalize()
		}
		if slow, ok := s.ecs.SlowEffects[id]; ok {
			speed *= slow.SlowFactor
		}

		next := pos.Vec().Add(dir.Scale(speed * deltaTime))
		if toxin, ok := s.ecs.Neurotoxins[id]; ok {
			// Смещение дрожания идет с двойным шагом времени.
			next = next.Add(toxin.CurrentJitter.Scale(2 * deltaTime))
		}
		pos.SetVec(next)
		clampToArena(pos)
	}
}

// confusedDirection — к цели замешательства, если она еще жива,
// иначе блуждание.
func (s *MovementSystem) confusedDirection(from geom.Vec2, confusion *component.Confusion) geom.Vec2 {
	if confusion.TargetID != 0 {
		if target, ok := s.ecs.Positions[confusion.TargetID]; ok {
			return target.Vec().Sub(from).Normalize()
		}
	}
	return confusion.WanderDirection
}

func clampToArena(pos *component.Position) {
	pos.X = geom.Clamp(pos.X, -config.ArenaHalfSize, config.ArenaHalfSize)
	pos.Y = geom.Clamp(pos.Y, -config.ArenaHalfSize, config.ArenaHalfSize)
}
