// internal/component/arc_projectile.go
package component

import (
	"go-spell-arena/pkg/geom"

	"go-spell-arena/internal/element"
)

// ArcProjectile — снаряд, летящий по параболической дуге: позиция на
// плоскости интерполируется от старта к цели, высота следует кривой
// y(t) = 4·h·t·(1−t). Взрывается при контакте с врагом или в точке цели.
type ArcProjectile struct {
	Start        geom.Vec2
	Target       geom.Vec2
	Elapsed      float64
	Duration     float64 // Дистанция, деленная на скорость полета.
	PeakHeight   float64
	Damage       float64
	ContactRange float64
	Element      element.Element

	// Осколки, порождаемые при взрыве.
	FragmentCount  int
	FragmentDamage float64
	FragmentSpeed  float64
	FragmentLife   float64
	FragmentRange  float64
}

// Progress — доля пройденного пути в [0, 1].
func (a *ArcProjectile) Progress() float64 {
	if a.Duration <= 0 {
		return 1
	}
	return geom.Clamp(a.Elapsed/a.Duration, 0, 1)
}

// GroundPosition — текущая позиция на плоскости арены.
func (a *ArcProjectile) GroundPosition() geom.Vec2 {
	return geom.Lerp(a.Start, a.Target, a.Progress())
}

// Height — текущая высота над плоскостью.
func (a *ArcProjectile) Height() float64 {
	return geom.ArcHeight(a.PeakHeight, a.Progress())
}

// IsComplete — снаряд долетел до точки цели.
func (a *ArcProjectile) IsComplete() bool {
	return a.Elapsed >= a.Duration
}

// Fragment — осколок после взрыва дугового снаряда: летит по прямой,
// живет недолго и исчезает при первом попадании.
type Fragment struct {
	Damage       float64
	TimeLeft     float64
	ContactRange float64
	Element      element.Element
}
