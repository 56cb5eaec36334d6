// internal/system/damage.go
package system

import (
	"go-spell-arena/internal/component"
	"go-spell-arena/internal/config"
	"go-spell-arena/internal/element"
	"go-spell-arena/internal/entity"
	"go-spell-arena/internal/event"
	"go-spell-arena/internal/types"
)

// DamageSystem выбирает очередь урона ровно один раз за шаг и
// применяет каждое событие к цели. Работает строго до системы смерти:
// добивающий удар виден в том же шаге.
type DamageSystem struct {
	ecs *entity.ECS
	bus *event.Bus
}

func NewDamageSystem(ecs *entity.ECS, bus *event.Bus) *DamageSystem {
	return &DamageSystem{ecs: ecs, bus: bus}
}

func (s *DamageSystem) Update(deltaTime float64) {
	for _, e := range s.bus.DrainDamage() {
		s.apply(e)
	}
}

func (s *DamageSystem) apply(e event.DamageEvent) {
	// Неуязвимость гасит весь входящий урон вместе с вторичными
	// эффектами стихий.
	if _, ok := s.ecs.Invincibilities[e.Target]; ok {
		return
	}
	health, ok := s.ecs.Healths[e.Target]
	if !ok {
		// Цель уже исчезла из мира. Это гонка урона с удалением
		// внутри шага, а не ошибка.
		return
	}
	health.TakeDamage(e.Amount)

	switch e.Element {
	case element.Frost:
		applyFreezeStack(s.ecs, e.Target)
	case element.Poison:
		s.applyPoisonSecondary(e)
	}
}

// applyPoisonSecondary — вторичные эффекты урона ядом по врагу:
// нейротоксин и заразная метка.
func (s *DamageSystem) applyPoisonSecondary(e event.DamageEvent) {
	if _, isEnemy := s.ecs.Enemies[e.Target]; !isEnemy {
		return
	}
	applyNeurotoxin(s.ecs, e.Target, config.NeurotoxinDuration)

	if mark, ok := s.ecs.VirulentMarks[e.Target]; ok {
		// Существующая метка усиливается только более сильным ударом.
		if e.Amount > mark.SpreadDamage {
			mark.SpreadDamage = e.Amount
		}
		return
	}
	s.ecs.VirulentMarks[e.Target] = &component.VirulentMark{
		SpreadDamage:  e.Amount,
		SpreadRadius:  config.VirulenceSpreadRadius,
		MaxChainDepth: config.VirulenceMaxChain,
		Falloff:       config.VirulenceFalloff,
	}
}

// Damage кладет событие урона в очередь текущего шага.
func (s *DamageSystem) Damage(target types.EntityID, amount float64, elem element.Element, source types.EntityID) {
	s.bus.PushDamage(event.DamageEvent{Target: target, Amount: amount, Element: elem, Source: source})
}
