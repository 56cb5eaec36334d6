// internal/system/cleanup.go
package system

import "go-spell-arena/internal/entity"

// CleanupSystem закрывает шаг: снимает истекшие окна неуязвимости.
type CleanupSystem struct {
	ecs *entity.ECS
}

func NewCleanupSystem(ecs *entity.ECS) *CleanupSystem {
	return &CleanupSystem{ecs: ecs}
}

func (s *CleanupSystem) Update(deltaTime float64) {
	for _, id := range sortedIDs(s.ecs.Invincibilities) {
		inv := s.ecs.Invincibilities[id]
		inv.Timer -= deltaTime
		if inv.Timer <= 0 {
			delete(s.ecs.Invincibilities, id)
		}
	}
}
