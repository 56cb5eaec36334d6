// internal/component/vortex.go
package component

import (
	"go-spell-arena/pkg/geom"

	"go-spell-arena/internal/element"
)

// Vortex — стационарная воронка: постоянная сила притяжения для всех
// врагов в радиусе и собственный независимый тик урона.
type Vortex struct {
	Center        geom.Vec2
	PullRadius    float64
	PullStrength  float64 // Постоянная скорость притяжения, не зависит от дистанции.
	DamagePerTick float64
	TickTimer     float64
	TickInterval  float64
	TimeLeft      float64
	Element       element.Element
	Rotation      float64 // Текущий угол вращения для отрисовки.
	RotationSpeed float64
}

// Pull возвращает смещение врага к центру за кадр. Враг вне радиуса
// или уже в центре не притягивается. Смещение не перелетает центр.
func (v *Vortex) Pull(from geom.Vec2, deltaTime float64) geom.Vec2 {
	toCenter := v.Center.Sub(from)
	dist := toCenter.Length()
	if dist <= 0.01 || dist > v.PullRadius {
		return geom.Vec2{}
	}
	step := v.PullStrength * deltaTime
	if step > dist {
		step = dist
	}
	return toCenter.Normalize().Scale(step)
}
