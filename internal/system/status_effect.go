// internal/system/status_effect.go
package system

import (
	"go-spell-arena/pkg/geom"

	"go-spell-arena/internal/component"
	"go-spell-arena/internal/config"
	"go-spell-arena/internal/element"
	"go-spell-arena/internal/entity"
	"go-spell-arena/internal/event"
	"go-spell-arena/internal/types"
	"go-spell-arena/internal/utils"
)

// StatusEffectSystem ведет жизненный цикл всех статусных эффектов.
// Общий контракт таймеров: тик, пересекающий границу длительности,
// еще срабатывает; удаление компонента происходит после.
type StatusEffectSystem struct {
	ecs *entity.ECS
	bus *event.Bus
	rng *utils.PRNGService
}

func NewStatusEffectSystem(ecs *entity.ECS, bus *event.Bus, rng *utils.PRNGService) *StatusEffectSystem {
	return &StatusEffectSystem{ecs: ecs, bus: bus, rng: rng}
}

func (s *StatusEffectSystem) Update(deltaTime float64) {
	s.updateBurns(deltaTime)
	s.updatePoison(deltaTime)
	s.updateSlows(deltaTime)
	s.updateFrozen(deltaTime)
	s.updateFreezeBuildup(deltaTime)
	s.updateStuns(deltaTime)
	s.updateConfusion(deltaTime)
	s.updateNeurotoxin(deltaTime)
}

func (s *StatusEffectSystem) updateBurns(deltaTime float64) {
	for _, id := range sortedIDs(s.ecs.Burns) {
		burn := s.ecs.Burns[id]
		burn.TimeLeft -= deltaTime
		burn.TickTimer -= deltaTime
		if burn.TickTimer <= 0 {
			burn.TickTimer += burn.TickInterval
			s.bus.PushDamage(event.DamageEvent{
				Target:  id,
				Amount:  burn.DamagePerTick,
				Element: element.Fire,
			})
		}
		if burn.TimeLeft <= 0 {
			delete(s.ecs.Burns, id)
		}
	}
}

func (s *StatusEffectSystem) updatePoison(deltaTime float64) {
	for _, id := range sortedIDs(s.ecs.PoisonStacks) {
		poison := s.ecs.PoisonStacks[id]
		poison.TimeLeft -= deltaTime
		poison.TickTimer -= deltaTime
		if poison.TickTimer <= 0 {
			poison.TickTimer += poison.TickInterval
			s.bus.PushDamage(event.DamageEvent{
				Target:  id,
				Amount:  poison.TickDamage(),
				Element: element.Poison,
			})
		}
		if poison.TimeLeft <= 0 {
			delete(s.ecs.PoisonStacks, id)
		}
	}
}

func (s *StatusEffectSystem) updateSlows(deltaTime float64) {
	for _, id := range sortedIDs(s.ecs.SlowEffects) {
		effect := s.ecs.SlowEffects[id]
		effect.Timer -= deltaTime
		if effect.Timer <= 0 {
			delete(s.ecs.SlowEffects, id)
		}
	}
}

func (s *StatusEffectSystem) updateFrozen(deltaTime float64) {
	for _, id := range sortedIDs(s.ecs.Frozens) {
		frozen := s.ecs.Frozens[id]
		frozen.TimeLeft -= deltaTime
		if frozen.TimeLeft <= 0 {
			delete(s.ecs.Frozens, id)
		}
	}
}

func (s *StatusEffectSystem) updateFreezeBuildup(deltaTime float64) {
	for _, id := range sortedIDs(s.ecs.FreezeBuildups) {
		buildup := s.ecs.FreezeBuildups[id]
		// На пределе стаков накопление превращается в заморозку.
		// Превращение происходит ровно один раз: запись накопления
		// исчезает вместе с ним.
		if buildup.IsMax() {
			s.ecs.Frozens[id] = &component.Frozen{TimeLeft: config.FrozenDuration}
			delete(s.ecs.FreezeBuildups, id)
			continue
		}
		buildup.DecayTimer -= deltaTime
		if buildup.DecayTimer <= 0 {
			buildup.DecayTimer += buildup.DecayInterval
			buildup.Stacks--
			if buildup.Stacks <= 0 {
				delete(s.ecs.FreezeBuildups, id)
			}
		}
	}
}

func (s *StatusEffectSystem) updateStuns(deltaTime float64) {
	for _, id := range sortedIDs(s.ecs.Stuns) {
		stun := s.ecs.Stuns[id]
		stun.TimeLeft -= deltaTime
		if stun.TimeLeft <= 0 {
			delete(s.ecs.Stuns, id)
		}
	}
}

func (s *StatusEffectSystem) updateConfusion(deltaTime float64) {
	for _, id := range sortedIDs(s.ecs.Confusions) {
		confusion := s.ecs.Confusions[id]
		confusion.TimeLeft -= deltaTime
		if confusion.TimeLeft <= 0 {
			delete(s.ecs.Confusions, id)
			continue
		}
		confusion.RetargetTimer -= deltaTime
		if confusion.RetargetTimer <= 0 {
			confusion.RetargetTimer += confusion.RetargetInterval
			s.confusedStrike(id, confusion)
			s.retarget(id, confusion)
		}
	}
}

// confusedStrike — укус текущей цели замешательства, если она в упор.
// Бьет собственной силой свихнувшегося врага.
func (s *StatusEffectSystem) confusedStrike(id types.EntityID, confusion *component.Confusion) {
	if confusion.TargetID == 0 {
		return
	}
	self, ok := s.ecs.Enemies[id]
	if !ok {
		return
	}
	selfPos, ok := s.ecs.Positions[id]
	if !ok {
		return
	}
	targetPos, ok := s.ecs.Positions[confusion.TargetID]
	if !ok {
		// Цель исчезла; до следующего выбора враг блуждает.
		confusion.TargetID = 0
		return
	}
	if selfPos.Vec().Distance(targetPos.Vec()) <= config.ConfusionAttackRange {
		s.bus.PushDamage(event.DamageEvent{
			Target: confusion.TargetID,
			Amount: self.Strength,
			Source: id,
		})
	}
}

// retarget выбирает новую цель: случайного врага поблизости либо
// блуждание. Шанс блуждания срабатывает и при наличии целей.
func (s *StatusEffectSystem) retarget(id types.EntityID, confusion *component.Confusion) {
	if s.rng.Chance(config.ConfusionWanderChance) {
		s.wander(confusion)
		return
	}
	selfPos, ok := s.ecs.Positions[id]
	if !ok {
		return
	}
	var candidates []types.EntityID
	for _, other := range sortedIDs(s.ecs.Enemies) {
		if other == id {
			continue
		}
		pos, ok := s.ecs.Positions[other]
		if !ok {
			continue
		}
		if selfPos.Vec().Distance(pos.Vec()) <= config.ConfusionSearchRange {
			candidates = append(candidates, other)
		}
	}
	if len(candidates) == 0 {
		s.wander(confusion)
		return
	}
	confusion.TargetID = candidates[s.rng.Intn(len(candidates))]
}

func (s *StatusEffectSystem) wander(confusion *component.Confusion) {
	confusion.TargetID = 0
	confusion.WanderDirection = geom.FromAngle(s.rng.Angle())
}

func (s *StatusEffectSystem) updateNeurotoxin(deltaTime float64) {
	for _, id := range sortedIDs(s.ecs.Neurotoxins) {
		toxin := s.ecs.Neurotoxins[id]
		toxin.TimeLeft -= deltaTime
		if toxin.TimeLeft <= 0 {
			delete(s.ecs.Neurotoxins, id)
			continue
		}
		toxin.JitterTimer -= deltaTime
		if toxin.JitterTimer <= 0 {
			toxin.JitterTimer += toxin.JitterInterval
			angle := s.rng.FloatRange(-toxin.JitterAmount, toxin.JitterAmount)
			toxin.CurrentJitter = geom.FromAngle(angle).Scale(s.rng.Float64())
		}
	}
}
