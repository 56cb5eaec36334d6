// internal/component/zone.go
package component

import (
	"go-spell-arena/pkg/geom"

	"go-spell-arena/internal/element"
	"go-spell-arena/internal/types"
)

// Zone — стационарная область периодического урона. Набор задетых
// целей очищается на границе каждого тика: повторные попадания
// возможны между тиками, но не внутри одного.
type Zone struct {
	Center       geom.Vec2
	Radius       float64
	TickDamage   float64
	TickTimer    float64
	TickInterval float64
	TimeLeft     float64
	Element      element.Element
	HitThisTick  map[types.EntityID]bool

	// Параметры варианта с падающими каплями. SpawnInterval <= 0
	// означает обычную зону с прямым уроном по тику.
	SpawnInterval float64
	SpawnTimer    float64
	DropHeight    float64
	DropDamage    float64
	FallSpeed     float64
	DropContact   float64
	HeightBand    float64
	DropPoison    bool
}

// IsDropZone — зона порождает падающие капли вместо прямого урона.
func (z *Zone) IsDropZone() bool {
	return z.SpawnInterval > 0
}

// CanDamage — цель в радиусе и еще не задета в текущем тике.
func (z *Zone) CanDamage(id types.EntityID, pos geom.Vec2) bool {
	return z.Center.Distance(pos) <= z.Radius && !z.HitThisTick[id]
}

// MarkHit помечает цель задетой в текущем тике.
func (z *Zone) MarkHit(id types.EntityID) {
	z.HitThisTick[id] = true
}

// ResetTick очищает набор задетых целей на границе тика.
func (z *Zone) ResetTick() {
	z.HitThisTick = make(map[types.EntityID]bool)
}

// Droplet — падающая капля, порожденная зоной: летит вниз с фиксированной
// скоростью, наносит урон первому врагу на своем пути и исчезает при
// контакте или при достижении земли.
type Droplet struct {
	Height       float64
	FallSpeed    float64
	Damage       float64
	ContactRange float64 // Дистанция на плоскости, на которой засчитывается попадание.
	HeightBand   float64 // Допуск по высоте для попадания.
	Element      element.Element
	Poison       bool // Попадание добавляет цели стак яда.
}

// OnGround — капля достигла земли.
func (d *Droplet) OnGround() bool {
	return d.Height <= 0
}

// CanHit — капля достаточно низко, чтобы задеть врага на плоскости.
func (d *Droplet) CanHit(dropletPos, enemyPos geom.Vec2) bool {
	return d.Height <= d.HeightBand && dropletPos.Distance(enemyPos) < d.ContactRange
}
