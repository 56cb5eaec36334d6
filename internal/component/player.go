// internal/component/player.go
package component

import "go-spell-arena/pkg/geom"

// Player — компонент игрока.
type Player struct {
	Speed         float64 // Скорость перемещения.
	PickupRadius  float64 // Радиус притягивания добычи.
	Radius        float64 // Радиус тела для контактных столкновений.
	AimDirection  geom.Vec2
	DamageTimer   float64 // Время с последнего контактного удара.
	DamagedOnce   bool    // Был ли уже получен контактный урон в текущей серии.
}

// AimOr возвращает направление прицеливания, либо запасное направление,
// если игрок никуда не целится.
func (p *Player) AimOr(fallback geom.Vec2) geom.Vec2 {
	if p.AimDirection.IsZero() {
		return fallback
	}
	return p.AimDirection
}
