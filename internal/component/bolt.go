// internal/component/bolt.go
package component

import "go-spell-arena/internal/element"

// Bolt — прямолинейный снаряд: летит с постоянной скоростью, исчезает
// при первом попадании или по истечении времени жизни.
type Bolt struct {
	Damage       float64
	TimeLeft     float64
	ContactRange float64
	Element      element.Element

	// Урон умножается на 3 по замороженной цели, иначе на 2 по
	// замедленной. Заморозка имеет приоритет.
	Synergy bool

	// При ExplodeRadius > 0 попадание или истечение времени порождает
	// волну урона вместо одиночного удара.
	ExplodeRadius   float64
	ExplodeDuration float64
}
