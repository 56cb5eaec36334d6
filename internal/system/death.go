// internal/system/death.go
package system

import (
	"go-spell-arena/pkg/geom"

	"go-spell-arena/internal/component"
	"go-spell-arena/internal/element"
	"go-spell-arena/internal/entity"
	"go-spell-arena/internal/event"
	"go-spell-arena/internal/types"
)

// DeathSystem находит смертные сущности с исчерпанным здоровьем и
// публикует события смерти. Компонент Mortal удаляется вместе с
// публикацией: одна смерть дает ровно одно событие, сколько бы шагов
// тело ни оставалось в мире.
type DeathSystem struct {
	ecs *entity.ECS
	bus *event.Bus
}

func NewDeathSystem(ecs *entity.ECS, bus *event.Bus) *DeathSystem {
	return &DeathSystem{ecs: ecs, bus: bus}
}

func (s *DeathSystem) Update(deltaTime float64) {
	for _, id := range sortedIDs(s.ecs.Mortals) {
		health, ok := s.ecs.Healths[id]
		if !ok || !health.IsDead() {
			continue
		}
		var pos geom.Vec2
		if p, ok := s.ecs.Positions[id]; ok {
			pos = p.Vec()
		}
		s.bus.PushDeath(event.DeathEvent{
			Entity:   id,
			Position: pos,
			Cause:    s.ecs.Mortals[id].Cause,
		})
		delete(s.ecs.Mortals, id)
	}
}

// DeathResolutionSystem разбирает события смерти: враги распространяют
// заразные метки, засчитываются в счет и удаляются из мира; смерть
// игрока уходит внешним слушателям. Урон от распространения попадает
// в очередь следующего шага — цепочка двигается на одно звено за шаг.
type DeathResolutionSystem struct {
	ecs        *entity.ECS
	bus        *event.Bus
	dispatcher *event.Dispatcher
}

func NewDeathResolutionSystem(ecs *entity.ECS, bus *event.Bus, dispatcher *event.Dispatcher) *DeathResolutionSystem {
	return &DeathResolutionSystem{ecs: ecs, bus: bus, dispatcher: dispatcher}
}

func (s *DeathResolutionSystem) Update(deltaTime float64) {
	for _, death := range s.bus.DrainDeaths() {
		switch death.Cause {
		case component.CausePlayer:
			s.dispatcher.Dispatch(event.Event{Type: event.PlayerDied, Data: death})
		case component.CauseEnemy:
			s.resolveEnemy(death)
		}
	}

	// Раздача свершившихся фактов внешним слушателям. После раздачи
	// очереди шага пусты.
	for _, e := range s.bus.DrainEnemyDeaths() {
		s.dispatcher.Dispatch(event.Event{Type: event.EnemyDestroyed, Data: e})
	}
	for _, e := range s.bus.DrainLoot() {
		s.dispatcher.Dispatch(event.Event{Type: event.LootDropped, Data: e})
	}
}

func (s *DeathResolutionSystem) resolveEnemy(death event.DeathEvent) {
	enemy, ok := s.ecs.Enemies[death.Entity]
	if !ok {
		return
	}
	s.spreadVirulence(death.Entity, death.Position)

	s.bus.PushEnemyDeath(event.EnemyDeathEvent{
		Entity:   death.Entity,
		Position: death.Position,
		Level:    enemy.Level,
	})
	s.bus.PushLoot(event.LootDropEvent{Position: death.Position, Level: enemy.Level})
	s.ecs.RemoveEntity(death.Entity)

	levelUp := s.ecs.Stats.RegisterKill()
	s.dispatcher.Dispatch(event.Event{Type: event.ScoreChanged, Data: s.ecs.Stats.Score})
	if levelUp {
		s.dispatcher.Dispatch(event.Event{Type: event.MatchLevelUp, Data: s.ecs.Stats.MatchLevel})
	}
}

// spreadVirulence передает метку погибшего каждому живому врагу в
// радиусе. Копия ослаблена затуханием; на предельной глубине цепочка
// обрывается. Метка соседа перезаписывается: зараза переходит дальше
// в своем текущем виде.
func (s *DeathResolutionSystem) spreadVirulence(id types.EntityID, from geom.Vec2) {
	mark, ok := s.ecs.VirulentMarks[id]
	if !ok || !mark.CanSpread() {
		return
	}
	for _, other := range sortedIDs(s.ecs.Enemies) {
		if other == id {
			continue
		}
		pos, ok := s.ecs.Positions[other]
		if !ok {
			continue
		}
		if from.Distance(pos.Vec()) > mark.SpreadRadius {
			continue
		}
		next := mark.SpreadCopy()
		s.ecs.VirulentMarks[other] = next
		s.bus.PushDamage(event.DamageEvent{
			Target:  other,
			Amount:  next.SpreadDamage,
			Element: element.Poison,
			Source:  id,
		})
	}
}
