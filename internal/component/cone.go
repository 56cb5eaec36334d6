// internal/component/cone.go
package component

import (
	"go-spell-arena/pkg/geom"

	"go-spell-arena/internal/element"
	"go-spell-arena/internal/types"
)

// Cone — короткоживущий статичный конус: задет каждый враг, попавший
// внутрь сектора, но не более одного раза за каст.
type Cone struct {
	Origin    geom.Vec2
	Direction geom.Vec2 // Единичный вектор оси конуса.
	HalfAngle float64   // Половина угла раскрытия в радианах.
	Range     float64
	TimeLeft  float64
	Damage    float64
	Element   element.Element
	Poison    bool // Попадание добавляет цели стак яда.
	Hit       map[types.EntityID]bool
}

// Contains проверяет, лежит ли точка внутри сектора конуса.
// Точка вплотную к вершине не засчитывается: направление на нее
// не определено.
func (c *Cone) Contains(point geom.Vec2) bool {
	toPoint := point.Sub(c.Origin)
	dist := toPoint.Length()
	if dist > c.Range || dist < 0.001 {
		return false
	}
	return geom.AngleBetween(c.Direction, toPoint) <= c.HalfAngle
}

// CanDamage — враг внутри конуса и еще не задет этим кастом.
func (c *Cone) CanDamage(id types.EntityID, pos geom.Vec2) bool {
	return c.Contains(pos) && !c.Hit[id]
}

// MarkHit помечает врага задетым этим кастом.
func (c *Cone) MarkHit(id types.EntityID) {
	c.Hit[id] = true
}
