// internal/component/movement.go
package component

import "go-spell-arena/pkg/geom"

// Position — позиция сущности на плоскости арены.
type Position struct {
	X, Y float64
}

// Vec возвращает позицию как вектор.
func (p *Position) Vec() geom.Vec2 {
	return geom.V(p.X, p.Y)
}

// SetVec записывает вектор в позицию.
func (p *Position) SetVec(v geom.Vec2) {
	p.X = v.X
	p.Y = v.Y
}

// Velocity — линейная скорость. Интегрируется системой движения
// для осколков, капель и прочих свободно летящих сущностей.
type Velocity struct {
	X, Y float64
}

// Vec возвращает скорость как вектор.
func (v *Velocity) Vec() geom.Vec2 {
	return geom.V(v.X, v.Y)
}
