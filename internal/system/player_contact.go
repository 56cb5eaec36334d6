// internal/system/player_contact.go
package system

import (
	"go-spell-arena/internal/config"
	"go-spell-arena/internal/entity"
	"go-spell-arena/internal/event"
	"go-spell-arena/internal/types"
)

// PlayerContactSystem — контактный урон по игроку. Касание замедляет
// игрока каждый кадр; урон проходит не чаще одного раза в окно
// перезарядки и не более чем от одного врага за шаг. Пока на игроке
// бафф неосязаемости, касания не засчитываются вовсе.
type PlayerContactSystem struct {
	ecs *entity.ECS
	bus *event.Bus
}

func NewPlayerContactSystem(ecs *entity.ECS, bus *event.Bus) *PlayerContactSystem {
	return &PlayerContactSystem{ecs: ecs, bus: bus}
}

func (s *PlayerContactSystem) Update(deltaTime float64) {
	id, ok := playerID(s.ecs)
	if !ok {
		return
	}
	player := s.ecs.Players[id]
	pos, ok := s.ecs.Positions[id]
	if !ok {
		return
	}

	touching := types.EntityID(0)
	if _, intangible := s.ecs.WraithForms[id]; !intangible {
		for _, enemyID := range sortedIDs(s.ecs.Enemies) {
			enemy := s.ecs.Enemies[enemyID]
			enemyPos, ok := s.ecs.Positions[enemyID]
			if !ok {
				continue
			}
			if pos.Vec().Distance(enemyPos.Vec()) < player.Radius+enemy.Radius {
				touching = enemyID
				break
			}
		}
	}

	if touching != 0 {
		applySlow(s.ecs, id, config.ContactSlowDuration, config.ContactSlowFactor)
		if !player.DamagedOnce || player.DamageTimer >= config.ContactDamageCooldown {
			s.bus.PushDamage(event.DamageEvent{
				Target: id,
				Amount: s.ecs.Enemies[touching].Strength,
				Source: touching,
			})
			player.DamagedOnce = true
			if player.DamageTimer >= config.ContactDamageCooldown {
				player.DamageTimer = 0
			}
		}
	} else {
		player.DamageTimer = 0
		player.DamagedOnce = false
	}
	player.DamageTimer += deltaTime
}
