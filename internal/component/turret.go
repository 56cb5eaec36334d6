// internal/component/turret.go
package component

import (
	"go-spell-arena/pkg/geom"

	"go-spell-arena/internal/element"
)

// Turret — стационарная турель: по таймеру бьет током ближайшего
// врага в радиусе, нанося урон и замедление. Исчезает по истечении
// собственного времени жизни.
type Turret struct {
	Position     geom.Vec2
	Range        float64
	Damage       float64
	ZapTimer     float64 // Время до следующего разряда.
	ZapInterval  float64
	TimeLeft     float64
	Element      element.Element
	SlowDuration float64
	SlowFactor   float64
}
