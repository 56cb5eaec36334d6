// internal/component/burst.go
package component

import (
	"go-spell-arena/pkg/geom"

	"go-spell-arena/internal/element"
	"go-spell-arena/internal/types"
)

// BurstKind определяет, что расширяющаяся волна делает с задетыми врагами.
type BurstKind int

const (
	BurstDamage BurstKind = iota
	BurstStun
	BurstConfuse
	BurstJitter
)

// Burst — расширяющаяся волна: радиус линейно растет до максимума,
// каждый враг внутри текущего радиуса обрабатывается ровно один раз
// за все время жизни волны.
type Burst struct {
	Center        geom.Vec2
	CurrentRadius float64
	MaxRadius     float64
	ExpansionRate float64 // Радиус в секунду: MaxRadius / длительность.
	Damage        float64
	Element       element.Element
	Kind          BurstKind
	EffectTime    float64 // Длительность накладываемого статуса (оглушение и т.п.).
	Hit           map[types.EntityID]bool
}

// NewBurst создает волну, расширяющуюся до maxRadius за duration секунд.
// Нулевая длительность дает мгновенную вспышку: волна рождается сразу
// на полном радиусе и живет ровно один шаг.
func NewBurst(center geom.Vec2, maxRadius, duration, damage float64, elem element.Element) *Burst {
	b := &Burst{
		Center:    center,
		MaxRadius: maxRadius,
		Damage:    damage,
		Element:   elem,
		Kind:      BurstDamage,
		Hit:       make(map[types.EntityID]bool),
	}
	if duration > 0 {
		b.ExpansionRate = maxRadius / duration
	} else {
		b.CurrentRadius = maxRadius
	}
	return b
}

// Expand увеличивает текущий радиус, не превышая максимум.
func (b *Burst) Expand(deltaTime float64) {
	b.CurrentRadius += b.ExpansionRate * deltaTime
	if b.CurrentRadius > b.MaxRadius {
		b.CurrentRadius = b.MaxRadius
	}
}

// IsFinished — волна достигла максимального радиуса.
func (b *Burst) IsFinished() bool {
	return b.CurrentRadius >= b.MaxRadius
}

// ShouldHit — враг внутри текущего радиуса и еще не задет этой волной.
func (b *Burst) ShouldHit(id types.EntityID, distance float64) bool {
	return distance <= b.CurrentRadius && !b.Hit[id]
}

// MarkHit помечает врага задетым этой волной.
func (b *Burst) MarkHit(id types.EntityID) {
	b.Hit[id] = true
}
