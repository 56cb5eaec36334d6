// internal/system/casting.go
package system

import (
	"log"
	"math"

	"go-spell-arena/pkg/geom"

	"go-spell-arena/internal/component"
	"go-spell-arena/internal/config"
	"go-spell-arena/internal/defs"
	"go-spell-arena/internal/element"
	"go-spell-arena/internal/entity"
	"go-spell-arena/internal/event"
	"go-spell-arena/internal/types"
	"go-spell-arena/internal/utils"
)

// EquippedSpell — заклинание в руках игрока: определение, уровень
// и текущая перезарядка.
type EquippedSpell struct {
	Def      *defs.SpellDefinition
	Level    int
	Cooldown float64
}

// CastingSystem автоматически выпускает снаряженные заклинания по
// их перезарядкам. Цель выбирается случайно из ближайших врагов;
// без врагов заклинания не стреляют и остаются готовыми.
type CastingSystem struct {
	ecs        *entity.ECS
	bus        *event.Bus
	dispatcher *event.Dispatcher
	rng        *utils.PRNGService
	spells     []*EquippedSpell
}

func NewCastingSystem(ecs *entity.ECS, bus *event.Bus, dispatcher *event.Dispatcher, rng *utils.PRNGService, spells []*EquippedSpell) *CastingSystem {
	return &CastingSystem{
		ecs:        ecs,
		bus:        bus,
		dispatcher: dispatcher,
		rng:        rng,
		spells:     spells,
	}
}

// Spells — снаряжение игрока, для HUD и тестов.
func (s *CastingSystem) Spells() []*EquippedSpell {
	return s.spells
}

func (s *CastingSystem) Update(deltaTime float64) {
	casterID, ok := playerID(s.ecs)
	if !ok {
		return
	}
	player := s.ecs.Players[casterID]
	casterPos, ok := s.ecs.Positions[casterID]
	if !ok {
		return
	}

	for _, spell := range s.spells {
		spell.Cooldown -= deltaTime
		if spell.Cooldown > 0 {
			continue
		}
		target, ok := s.pickTarget(casterPos.Vec())
		if !ok {
			continue
		}
		targetPos := s.ecs.Positions[target].Vec()

		aim := targetPos.Sub(casterPos.Vec()).Normalize()
		if aim.IsZero() {
			aim = player.AimOr(geom.V(1, 0))
		} else {
			player.AimDirection = aim
		}

		s.cast(casterID, casterPos.Vec(), target, targetPos, aim, spell)
		spell.Cooldown = spell.Def.Cooldown(spell.Level)
		s.dispatcher.Dispatch(event.Event{Type: event.SpellCast, Data: spell.Def.ID})
	}
}

// pickTarget — равновероятный выбор из нескольких ближайших врагов.
func (s *CastingSystem) pickTarget(from geom.Vec2) (types.EntityID, bool) {
	pool := closestEnemies(s.ecs, from, config.CastTargetPool)
	if len(pool) == 0 {
		return 0, false
	}
	return pool[s.rng.Intn(len(pool))], true
}

func (s *CastingSystem) cast(casterID types.EntityID, casterPos geom.Vec2, target types.EntityID, targetPos, aim geom.Vec2, spell *EquippedSpell) {
	def := spell.Def
	damage := def.Damage(spell.Level)
	elem := element.ByName(def.Element)

	switch {
	case def.Archetype == defs.ArchetypeBurst && def.Burst != nil:
		CastBurst(s.ecs, casterPos, def.Burst, damage, elem)
	case def.Archetype == defs.ArchetypeVortex && def.Vortex != nil:
		dps := def.Vortex.DamageRate * damage / def.BaseDamage
		CastVortex(s.ecs, targetPos, def.Vortex, dps, elem)
	case def.Archetype == defs.ArchetypeZone && def.Zone != nil:
		CastZone(s.ecs, casterPos, aim, def.Zone, damage, elem)
	case def.Archetype == defs.ArchetypeArc && def.Arc != nil:
		CastArc(s.ecs, s.rng, casterPos, targetPos, def.Arc, damage, elem)
	case def.Archetype == defs.ArchetypeCone && def.Cone != nil:
		CastCone(s.ecs, casterPos, aim, def.Cone, damage, elem)
	case def.Archetype == defs.ArchetypeTurret && def.Turret != nil:
		CastTurret(s.ecs, targetPos, def.Turret, damage, elem)
	case def.Archetype == defs.ArchetypeWraith && def.Wraith != nil:
		CastWraith(s.ecs, casterID, def.Wraith, damage, elem)
	case def.Archetype == defs.ArchetypeVirulence && def.Virulence != nil:
		CastVirulence(s.ecs, s.bus, target, def.Virulence, damage)
	case def.Archetype == defs.ArchetypeBolt && def.Bolt != nil:
		CastBolt(s.ecs, casterPos, aim, def.Bolt, damage, elem)
	case def.Archetype == defs.ArchetypeBurn && def.Burn != nil:
		CastBurn(s.ecs, target, def.Burn, damage)
	default:
		log.Printf("CastingSystem: spell %s has no parameters for archetype %s", def.ID, def.Archetype)
	}
}

// CastBurst выпускает расширяющуюся волну из точки. Волны со статусом
// оглушения или замешательства урона не несут.
func CastBurst(ecs *entity.ECS, at geom.Vec2, p *defs.BurstParams, damage float64, elem element.Element) types.EntityID {
	b := component.NewBurst(at, p.Radius, p.Duration, damage, elem)
	switch p.Effect {
	case defs.BurstEffectStun:
		b.Kind = component.BurstStun
		b.EffectTime = p.EffectTime
		b.Damage = 0
	case defs.BurstEffectConfuse:
		b.Kind = component.BurstConfuse
		b.EffectTime = p.EffectTime
		b.Damage = 0
	case defs.BurstEffectJitter:
		b.Kind = component.BurstJitter
		b.EffectTime = p.EffectTime
	}
	id := ecs.NewEntity()
	ecs.Bursts[id] = b
	return id
}

// CastVortex ставит воронку в точке. dps — урон в секунду с учетом
// уровня заклинания; за тик воронка наносит dps, умноженный на
// интервал тика.
func CastVortex(ecs *entity.ECS, at geom.Vec2, p *defs.VortexParams, dps float64, elem element.Element) types.EntityID {
	id := ecs.NewEntity()
	ecs.Vortexes[id] = &component.Vortex{
		Center:        at,
		PullRadius:    p.PullRadius,
		PullStrength:  p.PullStrength,
		DamagePerTick: dps * p.TickInterval,
		TickTimer:     p.TickInterval,
		TickInterval:  p.TickInterval,
		TimeLeft:      p.Duration,
		Element:       elem,
		RotationSpeed: p.RotationSpeed,
	}
	return id
}

// CastZone ставит область впереди кастера по направлению прицела.
// Нулевой прицел оставляет область под кастером.
func CastZone(ecs *entity.ECS, caster, aim geom.Vec2, p *defs.ZoneParams, damage float64, elem element.Element) types.EntityID {
	z := &component.Zone{
		Center:       caster.Add(aim.Scale(p.PlaceAhead)),
		Radius:       p.Radius,
		TickDamage:   damage * p.DamageRatio,
		TickTimer:    p.TickInterval,
		TickInterval: p.TickInterval,
		TimeLeft:     p.Duration,
		Element:      elem,
		HitThisTick:  make(map[types.EntityID]bool),
	}
	if p.SpawnInterval > 0 {
		z.SpawnInterval = p.SpawnInterval
		z.DropHeight = p.DropHeight
		z.DropDamage = damage * p.DamageRatio
		z.FallSpeed = p.FallSpeed
		z.DropContact = p.DropContact
		z.HeightBand = p.HeightBand
		z.DropPoison = p.DropPoison
	}
	id := ecs.NewEntity()
	ecs.Zones[id] = z
	return id
}

// CastArc запускает дуговой снаряд от кастера к точке цели. Число
// осколков выбирается при касте, направления разлета — при взрыве.
func CastArc(ecs *entity.ECS, rng *utils.PRNGService, from, to geom.Vec2, p *defs.ArcParams, damage float64, elem element.Element) types.EntityID {
	id := ecs.NewEntity()
	ecs.Positions[id] = &component.Position{X: from.X, Y: from.Y}
	ecs.ArcProjectiles[id] = &component.ArcProjectile{
		Start:          from,
		Target:         to,
		Duration:       to.Distance(from) / p.Speed,
		PeakHeight:     p.PeakHeight,
		Damage:         damage,
		ContactRange:   p.ContactRange,
		Element:        elem,
		FragmentCount:  rng.IntRange(p.FragmentsMin, p.FragmentsMax),
		FragmentDamage: damage * p.FragmentRatio,
		FragmentSpeed:  p.FragmentSpeed,
		FragmentLife:   p.FragmentLife,
		FragmentRange:  p.FragmentRange,
	}
	return id
}

// CastCone разворачивает сектор от кастера по направлению прицела.
func CastCone(ecs *entity.ECS, origin, dir geom.Vec2, p *defs.ConeParams, damage float64, elem element.Element) types.EntityID {
	id := ecs.NewEntity()
	ecs.Cones[id] = &component.Cone{
		Origin:    origin,
		Direction: dir.Normalize(),
		HalfAngle: p.FullAngle * math.Pi / 180 / 2,
		Range:     p.Range,
		TimeLeft:  p.Lifetime,
		Damage:    damage,
		Element:   elem,
		Poison:    p.ApplyPoison,
		Hit:       make(map[types.EntityID]bool),
	}
	return id
}

// CastTurret ставит турель в точке цели.
func CastTurret(ecs *entity.ECS, at geom.Vec2, p *defs.TurretParams, damage float64, elem element.Element) types.EntityID {
	id := ecs.NewEntity()
	ecs.Positions[id] = &component.Position{X: at.X, Y: at.Y}
	ecs.Turrets[id] = &component.Turret{
		Position:     at,
		Range:        p.Range,
		Damage:       damage,
		ZapInterval:  p.ZapInterval,
		TimeLeft:     p.Duration,
		Element:      elem,
		SlowDuration: p.SlowDuration,
		SlowFactor:   p.SlowFactor,
	}
	return id
}

// CastWraith вешает бафф неосязаемости на кастера. Повторный каст
// начинает новую активацию: старые отметки врагов перестают защищать.
func CastWraith(ecs *entity.ECS, casterID types.EntityID, p *defs.WraithParams, damage float64, elem element.Element) {
	ecs.WraithForms[casterID] = &component.WraithForm{
		TimeLeft:     p.Duration,
		Damage:       damage,
		ContactRange: p.ContactRange,
		Element:      elem,
		ActivationID: ecs.NewActivationID(),
	}
}

// CastVirulence — прямой удар ядом с заразной меткой. Существующая
// метка на цели уступает место только более сильной.
func CastVirulence(ecs *entity.ECS, bus *event.Bus, target types.EntityID, p *defs.VirulenceParams, damage float64) {
	if _, ok := ecs.Enemies[target]; !ok {
		return
	}
	if existing, ok := ecs.VirulentMarks[target]; !ok || damage > existing.SpreadDamage {
		ecs.VirulentMarks[target] = &component.VirulentMark{
			SpreadDamage:  damage,
			SpreadRadius:  p.SpreadRadius,
			MaxChainDepth: p.MaxChainDepth,
			Falloff:       p.Falloff,
		}
	}
	bus.PushDamage(event.DamageEvent{
		Target:  target,
		Amount:  damage,
		Element: element.Poison,
	})
}

// CastBolt выпускает прямолинейный снаряд по направлению прицела.
func CastBolt(ecs *entity.ECS, from, dir geom.Vec2, p *defs.BoltParams, damage float64, elem element.Element) types.EntityID {
	id := ecs.NewEntity()
	velocity := dir.Normalize().Scale(p.Speed)
	ecs.Positions[id] = &component.Position{X: from.X, Y: from.Y}
	ecs.Velocities[id] = &component.Velocity{X: velocity.X, Y: velocity.Y}
	ecs.Bolts[id] = &component.Bolt{
		Damage:          damage,
		TimeLeft:        p.Lifetime,
		ContactRange:    p.ContactRange,
		Element:         elem,
		Synergy:         p.Synergy,
		ExplodeRadius:   p.ExplodeRadius,
		ExplodeDuration: p.ExplodeDuration,
	}
	return id
}

// CastBurn поджигает цель: полный урон заклинания размазывается
// равными тиками по всей длительности горения.
func CastBurn(ecs *entity.ECS, target types.EntityID, p *defs.BurnParams, damage float64) {
	ticks := p.Duration / p.TickInterval
	if ticks <= 0 {
		return
	}
	applyBurn(ecs, target, damage/ticks, p.Duration, p.TickInterval)
}
