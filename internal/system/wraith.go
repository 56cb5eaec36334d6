// internal/system/wraith.go
package system

import (
	"go-spell-arena/internal/component"
	"go-spell-arena/internal/entity"
	"go-spell-arena/internal/event"
)

// WraithSystem ведет баффы неосязаемости. Враг в радиусе носителя
// получает урон один раз за активацию: отметка хранит номер активации,
// и только совпадающий номер защищает от повторного урона. По
// истечении баффа снимается компонент, носитель остается в мире.
type WraithSystem struct {
	ecs *entity.ECS
	bus *event.Bus
}

func NewWraithSystem(ecs *entity.ECS, bus *event.Bus) *WraithSystem {
	return &WraithSystem{ecs: ecs, bus: bus}
}

func (s *WraithSystem) Update(deltaTime float64) {
	for _, id := range sortedIDs(s.ecs.WraithForms) {
		form := s.ecs.WraithForms[id]
		form.TimeLeft -= deltaTime
		if form.TimeLeft <= 0 {
			delete(s.ecs.WraithForms, id)
			continue
		}
		pos, ok := s.ecs.Positions[id]
		if !ok {
			delete(s.ecs.WraithForms, id)
			continue
		}
		for _, enemyID := range sortedIDs(s.ecs.Enemies) {
			enemyPos, ok := s.ecs.Positions[enemyID]
			if !ok {
				continue
			}
			if pos.Vec().Distance(enemyPos.Vec()) > form.ContactRange {
				continue
			}
			if mark, ok := s.ecs.WraithMarks[enemyID]; ok && mark.ActivationID == form.ActivationID {
				continue
			}
			s.ecs.WraithMarks[enemyID] = &component.WraithMark{ActivationID: form.ActivationID}
			s.bus.PushDamage(event.DamageEvent{
				Target:  enemyID,
				Amount:  form.Damage,
				Element: form.Element,
				Source:  id,
			})
		}
	}

	// Когда активных баффов не осталось, устаревшие отметки никому
	// не нужны.
	if len(s.ecs.WraithForms) == 0 && len(s.ecs.WraithMarks) > 0 {
		for id := range s.ecs.WraithMarks {
			delete(s.ecs.WraithMarks, id)
		}
	}
}
