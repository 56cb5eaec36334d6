// internal/system/arc_projectile.go
package system

import (
	"go-spell-arena/pkg/geom"

	"go-spell-arena/internal/component"
	"go-spell-arena/internal/entity"
	"go-spell-arena/internal/event"
	"go-spell-arena/internal/types"
	"go-spell-arena/internal/utils"
)

// ArcSystem ведет дуговые снаряды и их осколки. Снаряд взрывается при
// первом контакте с врагом или в точке цели; взрыв бьет задетого врага
// полным уроном и разбрасывает осколки в случайных направлениях.
type ArcSystem struct {
	ecs *entity.ECS
	bus *event.Bus
	rng *utils.PRNGService
}

func NewArcSystem(ecs *entity.ECS, bus *event.Bus, rng *utils.PRNGService) *ArcSystem {
	return &ArcSystem{ecs: ecs, bus: bus, rng: rng}
}

func (s *ArcSystem) Update(deltaTime float64) {
	s.updateArcs(deltaTime)
	s.updateFragments(deltaTime)
}

func (s *ArcSystem) updateArcs(deltaTime float64) {
	for _, id := range sortedIDs(s.ecs.ArcProjectiles) {
		arc := s.ecs.ArcProjectiles[id]
		arc.Elapsed += deltaTime
		ground := arc.GroundPosition()
		if pos, ok := s.ecs.Positions[id]; ok {
			pos.SetVec(ground)
		}

		struck, hit := s.contact(ground, arc.ContactRange)
		if hit || arc.IsComplete() {
			s.explode(id, arc, ground, struck)
		}
	}
}

// contact — первый враг в радиусе контакта от точки на плоскости.
func (s *ArcSystem) contact(at geom.Vec2, contactRange float64) (types.EntityID, bool) {
	for _, enemyID := range sortedIDs(s.ecs.Enemies) {
		pos, ok := s.ecs.Positions[enemyID]
		if !ok {
			continue
		}
		if at.Distance(pos.Vec()) <= contactRange {
			return enemyID, true
		}
	}
	return 0, false
}

func (s *ArcSystem) explode(id types.EntityID, arc *component.ArcProjectile, at geom.Vec2, struck types.EntityID) {
	if struck != 0 {
		s.bus.PushDamage(event.DamageEvent{
			Target:  struck,
			Amount:  arc.Damage,
			Element: arc.Element,
			Source:  id,
		})
	}
	for i := 0; i < arc.FragmentCount; i++ {
		dir := geom.FromAngle(s.rng.Angle())
		fid := s.ecs.NewEntity()
		s.ecs.Positions[fid] = &component.Position{X: at.X, Y: at.Y}
		s.ecs.Velocities[fid] = &component.Velocity{
			X: dir.X * arc.FragmentSpeed,
			Y: dir.Y * arc.FragmentSpeed,
		}
		s.ecs.Fragments[fid] = &component.Fragment{
			Damage:       arc.FragmentDamage,
			TimeLeft:     arc.FragmentLife,
			ContactRange: arc.FragmentRange,
			Element:      arc.Element,
		}
	}
	s.ecs.RemoveEntity(id)
}

func (s *ArcSystem) updateFragments(deltaTime float64) {
	for _, id := range sortedIDs(s.ecs.Fragments) {
		fragment := s.ecs.Fragments[id]
		fragment.TimeLeft -= deltaTime
		if fragment.TimeLeft <= 0 {
			s.ecs.RemoveEntity(id)
			continue
		}
		pos, ok := s.ecs.Positions[id]
		if !ok {
			s.ecs.RemoveEntity(id)
			continue
		}
		// Осколок исчезает на первом же попадании.
		if target, hit := s.contact(pos.Vec(), fragment.ContactRange); hit {
			s.bus.PushDamage(event.DamageEvent{
				Target:  target,
				Amount:  fragment.Damage,
				Element: fragment.Element,
				Source:  id,
			})
			s.ecs.RemoveEntity(id)
		}
	}
}
