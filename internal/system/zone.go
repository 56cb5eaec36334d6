// internal/system/zone.go
package system

import (
	"math"

	"go-spell-arena/pkg/geom"

	"go-spell-arena/internal/component"
	"go-spell-arena/internal/entity"
	"go-spell-arena/internal/event"
	"go-spell-arena/internal/types"
	"go-spell-arena/internal/utils"
)

// ZoneSystem ведет области периодического урона и порожденные ими
// капли. Обычная зона бьет всех в радиусе не чаще раза за тик; зона
// капель прямого урона не наносит и вместо этого сеет падающие капли
// в случайных точках внутри радиуса.
type ZoneSystem struct {
	ecs *entity.ECS
	bus *event.Bus
	rng *utils.PRNGService
}

func NewZoneSystem(ecs *entity.ECS, bus *event.Bus, rng *utils.PRNGService) *ZoneSystem {
	return &ZoneSystem{ecs: ecs, bus: bus, rng: rng}
}

func (s *ZoneSystem) Update(deltaTime float64) {
	s.updateZones(deltaTime)
	s.updateDroplets(deltaTime)
}

func (s *ZoneSystem) updateZones(deltaTime float64) {
	for _, id := range sortedIDs(s.ecs.Zones) {
		zone := s.ecs.Zones[id]
		zone.TimeLeft -= deltaTime
		if zone.TimeLeft <= 0 {
			s.ecs.RemoveEntity(id)
			continue
		}

		if zone.IsDropZone() {
			zone.SpawnTimer -= deltaTime
			for zone.SpawnTimer <= 0 {
				zone.SpawnTimer += zone.SpawnInterval
				s.spawnDroplet(zone)
			}
			continue
		}

		// Граница тика открывает новый набор задетых целей.
		zone.TickTimer -= deltaTime
		if zone.TickTimer <= 0 {
			zone.TickTimer += zone.TickInterval
			zone.ResetTick()
		}
		for _, enemyID := range sortedIDs(s.ecs.Enemies) {
			pos, ok := s.ecs.Positions[enemyID]
			if !ok {
				continue
			}
			if !zone.CanDamage(enemyID, pos.Vec()) {
				continue
			}
			zone.MarkHit(enemyID)
			s.bus.PushDamage(event.DamageEvent{
				Target:  enemyID,
				Amount:  zone.TickDamage,
				Element: zone.Element,
				Source:  id,
			})
		}
	}
}

// spawnDroplet сеет каплю в случайной точке круга зоны. Квадратный
// корень дает равномерное распределение по площади, а не по радиусу.
func (s *ZoneSystem) spawnDroplet(zone *component.Zone) {
	dist := zone.Radius * math.Sqrt(s.rng.Float64())
	at := zone.Center.Add(geom.FromAngle(s.rng.Angle()).Scale(dist))

	id := s.ecs.NewEntity()
	s.ecs.Positions[id] = &component.Position{X: at.X, Y: at.Y}
	s.ecs.Droplets[id] = &component.Droplet{
		Height:       zone.DropHeight,
		FallSpeed:    zone.FallSpeed,
		Damage:       zone.DropDamage,
		ContactRange: zone.DropContact,
		HeightBand:   zone.HeightBand,
		Element:      zone.Element,
		Poison:       zone.DropPoison,
	}
}

func (s *ZoneSystem) updateDroplets(deltaTime float64) {
	for _, id := range sortedIDs(s.ecs.Droplets) {
		droplet := s.ecs.Droplets[id]
		pos, ok := s.ecs.Positions[id]
		if !ok {
			s.ecs.RemoveEntity(id)
			continue
		}
		droplet.Height -= droplet.FallSpeed * deltaTime

		if target, ok := s.dropletTarget(droplet, pos.Vec()); ok {
			s.bus.PushDamage(event.DamageEvent{
				Target:  target,
				Amount:  droplet.Damage,
				Element: droplet.Element,
				Source:  id,
			})
			if droplet.Poison {
				applyPoisonStack(s.ecs, target)
			}
			s.ecs.RemoveEntity(id)
			continue
		}
		if droplet.OnGround() {
			s.ecs.RemoveEntity(id)
		}
	}
}

// dropletTarget — первый враг под каплей, когда она опустилась
// достаточно низко.
func (s *ZoneSystem) dropletTarget(droplet *component.Droplet, at geom.Vec2) (types.EntityID, bool) {
	for _, enemyID := range sortedIDs(s.ecs.Enemies) {
		pos, ok := s.ecs.Positions[enemyID]
		if !ok {
			continue
		}
		if droplet.CanHit(at, pos.Vec()) {
			return enemyID, true
		}
	}
	return 0, false
}
